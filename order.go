package dbg

import (
	"cmp"
	"reflect"
	"slices"

	"github.com/maruel/natural"
)

// keyed is an element of an unordered container awaiting sorting. pos is
// its position before sorting.
type keyed struct {
	v    reflect.Value
	text string
	pos  int
}

// sortKeyed orders elements of hash-based containers so renderings are
// stable. Numbers and booleans compare by value; everything else compares
// by rendered text in natural order, so "k2" sorts before "k10".
func sortKeyed(ks []keyed) {
	slices.SortStableFunc(ks, compareKeyed)
}

func compareKeyed(a, b keyed) int {
	av, bv := concrete(a.v), concrete(b.v)
	if av.IsValid() && bv.IsValid() && av.Kind() == bv.Kind() {
		switch av.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(av.Int(), bv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(av.Uint(), bv.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(av.Float(), bv.Float())
		case reflect.Bool:
			return cmp.Compare(boolRank(av.Bool()), boolRank(bv.Bool()))
		}
	}
	switch {
	case natural.Less(a.text, b.text):
		return -1
	case natural.Less(b.text, a.text):
		return 1
	}
	return 0
}

func concrete(v reflect.Value) reflect.Value {
	if v.IsValid() && v.Kind() == reflect.Interface {
		return v.Elem()
	}
	return v
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
