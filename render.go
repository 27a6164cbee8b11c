package dbg

import (
	"container/list"
	"io"
	"reflect"
)

const defaultIndent = "  "

// Sprint renders v. Values of unsupported types render as
// "<unsupported T>"; use [Render] to detect them.
func Sprint(v any) string {
	r := renderer{indent: defaultIndent}
	return r.any(v)
}

// Render writes the rendering of v to w. It returns an error wrapping
// [ErrUnsupportedType] if v or any value reachable from it cannot be
// rendered, in which case nothing is written.
//
// Stacks and queues reachable from v are drained.
func Render(w io.Writer, v any) error {
	r := renderer{indent: defaultIndent}
	text := r.any(v)
	if r.err != nil {
		return r.err
	}
	_, err := io.WriteString(w, text)
	return err
}

// renderer carries the layout settings of one rendering, the first
// classification error met on the way and whether any block was laid out
// over several lines.
type renderer struct {
	indent string
	err    error
	multi  bool
}

func (r *renderer) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *renderer) any(v any) string {
	return r.value(reflect.ValueOf(v))
}

func (r *renderer) value(v reflect.Value) string {
	for {
		if !v.IsValid() {
			return "nil"
		}
		switch v.Kind() {
		case reflect.Interface:
			if v.IsNil() {
				return "nil"
			}
			v = v.Elem()
			continue
		case reflect.Pointer, reflect.Func:
			if v.IsNil() {
				return "nil"
			}
		}
		p := planFor(v.Type())
		if p.err != nil {
			r.fail(p.err)
			return "<unsupported " + v.Type().String() + ">"
		}
		if p.shape.Indirect {
			v = v.Elem()
			continue
		}
		return r.dispatch(v, p)
	}
}

func (r *renderer) dispatch(v reflect.Value, p plan) string {
	switch p.shape.Category {
	case CategoryPair:
		first, second := v.Interface().(Pairer).Pair()
		return "(" + r.any(first) + ", " + r.any(second) + ")"
	case CategoryTuple:
		return inline("(", ")", r.all(v.Interface().(Tupler).Elems()))
	case CategoryFixedAggregate:
		items := make([]string, v.Len())
		for i := range items {
			items[i] = r.value(v.Index(i))
		}
		return inline("[", "]", items)
	case CategoryContainer:
		return r.container(v, p.shape.Kind)
	case CategoryAdapter:
		return r.drain(v, p.shape.Kind)
	default:
		return p.scalar(v)
	}
}

func (r *renderer) all(xs []any) []string {
	items := make([]string, len(xs))
	for i, x := range xs {
		items[i] = r.any(x)
	}
	return items
}

func (r *renderer) values(vs []reflect.Value) []string {
	items := make([]string, len(vs))
	for i, v := range vs {
		items[i] = r.value(v)
	}
	return items
}

func (r *renderer) container(v reflect.Value, k Kind) string {
	switch k {
	case KindSequence:
		elems, elemType := sequence(v)
		nested := structured(elemType, elems, func(s Shape) bool {
			return s.containerLike() || s.Category == CategoryPair
		})
		return r.block("[", "]", r.values(elems), nested)

	case KindOrderedSet:
		items := r.all(v.Interface().(Set).Values())
		return r.block("{", "}", items, len(items) > SetThreshold)

	case KindUnorderedSet:
		return inline("{", "}", sortedTexts(r.setElems(v)))

	case KindMultiset:
		return inline("{", "}", r.all(v.Interface().(Multiset).Values()))

	case KindOrderedMap, KindUnorderedMap:
		entries, valueType := mapEntries(v)
		nested := structured(valueType, entryValues(entries), Shape.containerLike)
		items := r.entries(entries, k == KindUnorderedMap)
		return r.block("{", "}", items, len(items) > MapThreshold || nested)

	case KindMultimap:
		var entries []entry
		for _, e := range v.Interface().(Multimap).Entries() {
			entries = append(entries, entry{key: reflect.ValueOf(e.Key), value: reflect.ValueOf(e.Value)})
		}
		return inline("{", "}", r.entries(entries, false))
	}
	return "<" + v.Type().String() + ">"
}

func (r *renderer) setElems(v reflect.Value) []keyed {
	var elems []keyed
	if v.Kind() == reflect.Map {
		for _, key := range v.MapKeys() {
			elems = append(elems, keyed{v: key, text: r.value(key)})
		}
		return elems
	}
	for _, x := range v.Interface().(Set).Values() {
		elems = append(elems, keyed{v: reflect.ValueOf(x), text: r.any(x)})
	}
	return elems
}

// entries renders each entry as "key: value", sorting by key when the
// container has no meaningful order of its own.
func (r *renderer) entries(entries []entry, sorted bool) []string {
	keys := make([]keyed, len(entries))
	for i, e := range entries {
		keys[i] = keyed{v: e.key, text: r.value(e.key), pos: i}
	}
	if sorted {
		sortKeyed(keys)
	}
	items := make([]string, len(keys))
	for i, k := range keys {
		items[i] = k.text + ": " + r.value(entries[k.pos].value)
	}
	return items
}

// drain empties an adapter, rendering elements in the order it yields them.
func (r *renderer) drain(v reflect.Value, k Kind) string {
	var next func() (any, bool)
	switch k {
	case KindStack:
		next = v.Interface().(Stack).Pop
	case KindQueue:
		next = v.Interface().(Queue).Dequeue
	default:
		switch a := v.Interface().(type) {
		case Queue:
			next = a.Dequeue
		case Stack:
			next = a.Pop
		}
	}
	var items []string
	for {
		x, ok := next()
		if !ok {
			break
		}
		items = append(items, r.any(x))
	}
	if k == KindPriorityQueue {
		return inline("{", "}", items)
	}
	return inline("[", "]", items)
}

type entry struct {
	key, value reflect.Value
}

func entryValues(entries []entry) []reflect.Value {
	vs := make([]reflect.Value, len(entries))
	for i, e := range entries {
		vs[i] = e.value
	}
	return vs
}

// sequence returns the elements of a sequential container in iteration
// order, plus their static type when the container declares one.
func sequence(v reflect.Value) ([]reflect.Value, reflect.Type) {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]reflect.Value, v.Len())
		for i := range elems {
			elems[i] = v.Index(i)
		}
		return elems, v.Type().Elem()
	case reflect.Func:
		var elems []reflect.Value
		for x := range v.Seq() {
			elems = append(elems, x)
		}
		return elems, v.Type().In(0).In(0)
	}
	if l, ok := v.Interface().(*list.List); ok {
		var elems []reflect.Value
		for e := l.Front(); e != nil; e = e.Next() {
			elems = append(elems, reflect.ValueOf(e.Value))
		}
		return elems, nil
	}
	return reflectAll(v.Interface().(List).Values()), nil
}

// mapEntries returns the entries of an associative container plus the
// static type of its values when the container declares one.
func mapEntries(v reflect.Value) ([]entry, reflect.Type) {
	switch v.Kind() {
	case reflect.Map:
		entries := make([]entry, 0, v.Len())
		for it := v.MapRange(); it.Next(); {
			entries = append(entries, entry{key: it.Key(), value: it.Value()})
		}
		return entries, v.Type().Elem()
	case reflect.Func:
		var entries []entry
		for k, val := range v.Seq2() {
			entries = append(entries, entry{key: k, value: val})
		}
		return entries, v.Type().In(0).In(1)
	}
	m := v.Interface().(Map)
	keys := m.Keys()
	entries := make([]entry, len(keys))
	for i, k := range keys {
		val, _ := m.Get(k)
		entries[i] = entry{key: reflect.ValueOf(k), value: reflect.ValueOf(val)}
	}
	return entries, nil
}

func reflectAll(xs []any) []reflect.Value {
	vs := make([]reflect.Value, len(xs))
	for i, x := range xs {
		vs[i] = reflect.ValueOf(x)
	}
	return vs
}

// structured reports whether the elements satisfy pred. A concrete static
// type decides for all of them; otherwise each dynamic value is classified.
func structured(static reflect.Type, vs []reflect.Value, pred func(Shape) bool) bool {
	if static != nil && static.Kind() != reflect.Interface {
		s, err := Classify(static)
		return err == nil && pred(s)
	}
	for _, v := range vs {
		if v.IsValid() && v.Kind() == reflect.Interface {
			v = v.Elem()
		}
		if !v.IsValid() {
			continue
		}
		if s, err := Classify(v.Type()); err == nil && pred(s) {
			return true
		}
	}
	return false
}

func sortedTexts(elems []keyed) []string {
	sortKeyed(elems)
	items := make([]string, len(elems))
	for i, e := range elems {
		items[i] = e.text
	}
	return items
}
