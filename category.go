package dbg

import (
	"container/list"
	"fmt"
	"reflect"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/maps/treebidimap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/trees/btree"
	"github.com/emirpasic/gods/trees/redblacktree"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// Category is the structural class of a type. It selects the rendering rule.
type Category uint8

const (
	CategoryScalar         Category = iota // rendered as its own text
	CategoryPair                           // (first, second)
	CategoryTuple                          // (e0, e1, ...)
	CategoryContainer                      // has iteration boundaries
	CategoryFixedAggregate                 // Go array, size fixed by its type
	CategoryAdapter                        // stack or queue, drained to render
)

var categoryNames = [...]string{
	CategoryScalar:         "scalar",
	CategoryPair:           "pair",
	CategoryTuple:          "tuple",
	CategoryContainer:      "container",
	CategoryFixedAggregate: "fixed-aggregate",
	CategoryAdapter:        "adapter",
}

// String returns the category name.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", c)
}

// Kind refines a Category into the layout policy applied to it.
type Kind uint8

const (
	KindNone Kind = iota
	KindSequence
	KindOrderedSet
	KindUnorderedSet
	KindMultiset
	KindOrderedMap
	KindUnorderedMap
	KindMultimap
	KindStack
	KindQueue
	KindPriorityQueue
	KindBitVector
	KindDynamic // interface type, resolved from each value's dynamic type
)

var kindNames = [...]string{
	KindNone:          "none",
	KindSequence:      "sequence",
	KindOrderedSet:    "ordered-set",
	KindUnorderedSet:  "unordered-set",
	KindMultiset:      "multiset",
	KindOrderedMap:    "ordered-map",
	KindUnorderedMap:  "unordered-map",
	KindMultimap:      "multimap",
	KindStack:         "stack",
	KindQueue:         "queue",
	KindPriorityQueue: "priority-queue",
	KindBitVector:     "bit-vector",
	KindDynamic:       "dynamic",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Shape is the classification of one type.
type Shape struct {
	Category Category
	Kind     Kind
	// Indirect is set for pointer types that are rendered through their
	// pointee; Category and Kind then describe the pointee.
	Indirect bool
}

func (s Shape) containerLike() bool {
	return s.Category == CategoryContainer || s.Category == CategoryFixedAggregate
}

// Classify reports the shape of t. It returns an error wrapping
// [ErrUnsupportedType] for types no rule can render.
func Classify(t reflect.Type) (Shape, error) {
	if t == nil {
		return Shape{}, fmt.Errorf("%w: nil type", ErrUnsupportedType)
	}
	p := planFor(t)
	return p.shape, p.err
}

// ClassifyOf reports the shape of T.
func ClassifyOf[T any]() (Shape, error) {
	return Classify(reflect.TypeFor[T]())
}

// plan is the cached outcome of classifying a type.
type plan struct {
	shape  Shape
	scalar func(reflect.Value) string
	err    error
}

var plans = cmap.NewWithCustomShardingFunction[reflect.Type, plan](shardType)

func planFor(t reflect.Type) plan {
	if p, ok := plans.Get(t); ok {
		return p
	}
	p := classify(t)
	plans.Set(t, p)
	return p
}

var (
	pairerType    = reflect.TypeFor[Pairer]()
	tuplerType    = reflect.TypeFor[Tupler]()
	stackType     = reflect.TypeFor[Stack]()
	queueType     = reflect.TypeFor[Queue]()
	listType      = reflect.TypeFor[List]()
	setType       = reflect.TypeFor[Set]()
	multisetType  = reflect.TypeFor[Multiset]()
	mapType       = reflect.TypeFor[Map]()
	multimapType  = reflect.TypeFor[Multimap]()
	bitVectorType = reflect.TypeFor[BitVector]()
	orderedType   = reflect.TypeFor[Ordered]()
	stringerType  = reflect.TypeFor[fmt.Stringer]()
	errorType     = reflect.TypeFor[error]()
	linkedType    = reflect.TypeFor[*list.List]()
)

// Containers whose iteration order is sorted or otherwise meaningful.
var orderedTypes = map[reflect.Type]bool{
	reflect.TypeFor[*treeset.Set]():       true,
	reflect.TypeFor[*linkedhashset.Set]():  true,
	reflect.TypeFor[*treemap.Map]():        true,
	reflect.TypeFor[*linkedhashmap.Map]():  true,
	reflect.TypeFor[*treebidimap.Map]():    true,
	reflect.TypeFor[*redblacktree.Tree](): true,
	reflect.TypeFor[*avltree.Tree]():      true,
	reflect.TypeFor[*btree.Tree]():        true,
}

var priorityTypes = map[reflect.Type]bool{
	reflect.TypeFor[*priorityqueue.Queue](): true,
	reflect.TypeFor[*binaryheap.Heap]():     true,
}

func shaped(c Category, k Kind) plan {
	return plan{shape: Shape{Category: c, Kind: k}}
}

func scalar(fn func(reflect.Value) string) plan {
	return plan{shape: Shape{Category: CategoryScalar}, scalar: fn}
}

func isOrdered(t reflect.Type) bool {
	return orderedTypes[t] || t.Implements(orderedType)
}

func classify(t reflect.Type) plan {
	if fn, ok := registry.Get(t); ok {
		return scalar(fn)
	}
	if t.Kind() == reflect.Interface {
		return shaped(CategoryScalar, KindDynamic)
	}

	switch {
	case t.Implements(bitVectorType):
		return plan{shape: Shape{Category: CategoryScalar, Kind: KindBitVector}, scalar: bitText}
	case t.Implements(pairerType):
		return shaped(CategoryPair, KindNone)
	case t.Implements(tuplerType):
		return shaped(CategoryTuple, KindNone)
	case priorityTypes[t]:
		return shaped(CategoryAdapter, KindPriorityQueue)
	case t.Implements(stackType):
		return shaped(CategoryAdapter, KindStack)
	case t.Implements(queueType):
		return shaped(CategoryAdapter, KindQueue)
	case t.Implements(multimapType):
		return shaped(CategoryContainer, KindMultimap)
	case t.Implements(mapType):
		if isOrdered(t) {
			return shaped(CategoryContainer, KindOrderedMap)
		}
		return shaped(CategoryContainer, KindUnorderedMap)
	case t.Implements(listType), t == linkedType:
		return shaped(CategoryContainer, KindSequence)
	case t.Implements(multisetType):
		return shaped(CategoryContainer, KindMultiset)
	case t.Implements(setType):
		if isOrdered(t) {
			return shaped(CategoryContainer, KindOrderedSet)
		}
		return shaped(CategoryContainer, KindUnorderedSet)
	case t.Implements(errorType):
		return scalar(errorText)
	case t.Implements(stringerType):
		return scalar(stringerText)
	}

	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return scalar(basicText)
	case reflect.Slice:
		return shaped(CategoryContainer, KindSequence)
	case reflect.Array:
		// Character arrays are text, not aggregates.
		if t.Elem().Kind() == reflect.Uint8 {
			return scalar(charArrayText)
		}
		return shaped(CategoryFixedAggregate, KindNone)
	case reflect.Map:
		if isEmptyStruct(t.Elem()) {
			return shaped(CategoryContainer, KindUnorderedSet)
		}
		return shaped(CategoryContainer, KindUnorderedMap)
	case reflect.Func:
		switch {
		case t.CanSeq2():
			return shaped(CategoryContainer, KindOrderedMap)
		case t.CanSeq():
			return shaped(CategoryContainer, KindSequence)
		}
	case reflect.Struct:
		if t.NumField() == 1 && isInteger(t.Field(0).Type.Kind()) {
			return scalar(underlyingText)
		}
		return scalar(structText)
	case reflect.Pointer:
		if pointerCycle(t) {
			return plan{err: fmt.Errorf("%w: self-referential pointer %s", ErrUnsupportedType, t)}
		}
		p := planFor(t.Elem())
		if p.err != nil {
			return p
		}
		p.shape.Indirect = true
		p.scalar = nil
		return p
	}
	return plan{err: fmt.Errorf("%w: %s", ErrUnsupportedType, t)}
}

// pointerCycle reports whether following t's element types through pointers
// leads back to a type already seen, as with "type P *P".
func pointerCycle(t reflect.Type) bool {
	seen := map[reflect.Type]bool{}
	for ; t.Kind() == reflect.Pointer; t = t.Elem() {
		if seen[t] {
			return true
		}
		seen[t] = true
	}
	return false
}

func isEmptyStruct(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.NumField() == 0
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
