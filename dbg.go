package dbg

import (
	"errors"
	"hash/fnv"
	"reflect"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Layout thresholds. A collection switches to the multi-line layout once its
// element count exceeds the threshold.
const (
	SetThreshold = 10
	MapThreshold = 5
)

// --- Structural capability interfaces ---
//
// The classifier matches a type against these method sets. The containers in
// github.com/emirpasic/gods satisfy them without adaptation.

// Pairer is a two-element product type. Rendered as "(first, second)".
type Pairer interface {
	Pair() (any, any)
}

// Tupler is a fixed-arity product type. Rendered as "(e0, e1, ...)".
type Tupler interface {
	Elems() []any
}

// Stack is a LIFO adapter. Rendering pops every element, leaving it empty.
type Stack interface {
	Pop() (any, bool)
	Empty() bool
}

// Queue is a FIFO adapter. Rendering dequeues every element, leaving it empty.
type Queue interface {
	Dequeue() (any, bool)
	Empty() bool
}

// List is a sequential container with positional access.
type List interface {
	Get(index int) (any, bool)
	Values() []any
}

// Set is a container of unique elements.
type Set interface {
	Values() []any
	Contains(items ...any) bool
}

// Multiset is a set that permits duplicate elements.
type Multiset interface {
	Values() []any
	Count(item any) int
}

// Map is an associative container with unique keys.
type Map interface {
	Keys() []any
	Get(key any) (any, bool)
}

// Multimap is an associative container that permits duplicate keys.
type Multimap interface {
	Entries() []Entry
}

// BitVector is a fixed-width sequence of bits, such as *bitset.BitSet.
type BitVector interface {
	Len() uint
	Test(i uint) bool
}

// Ordered marks a Set or Map whose Values or Keys come back in a meaningful
// order. Without it the elements are sorted before rendering.
type Ordered interface {
	Ordered()
}

// --- Value Types ---

// Pair holds two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns the pair (a, b).
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Pair implements [Pairer].
func (p Pair[A, B]) Pair() (any, any) { return p.First, p.Second }

// Tuple is a heterogeneous fixed-arity sequence.
type Tuple []any

// MakeTuple returns a tuple of the given elements.
func MakeTuple(elems ...any) Tuple { return Tuple(elems) }

// Elems implements [Tupler].
func (t Tuple) Elems() []any { return t }

// Entry is one key-value association of a [Multimap].
type Entry struct {
	Key   any
	Value any
}

// Pair implements [Pairer], so a lone Entry renders as "(key, value)".
func (e Entry) Pair() (any, any) { return e.Key, e.Value }

// --- Extension registry ---

var registry = cmap.NewWithCustomShardingFunction[reflect.Type, func(reflect.Value) string](shardType)

// Register installs fn as the textual representation of T. Registered types
// are classified as scalars and take precedence over every other rule.
// Register T itself, not an interface T implements.
func Register[T any](fn func(T) string) {
	registry.Set(reflect.TypeFor[T](), func(v reflect.Value) string {
		return fn(v.Interface().(T))
	})
	plans.Clear()
}

// IsSupported reports whether values of type T can be rendered.
func IsSupported[T any]() bool {
	_, err := ClassifyOf[T]()
	return err == nil
}

func shardType(t reflect.Type) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(t.String()))
	return h.Sum32()
}
