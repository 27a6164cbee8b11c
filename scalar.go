package dbg

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/sanity-io/litter"
)

// Plain structs fall back to litter's compact Go-syntax dump.
var structDumper = litter.Options{
	Compact:           true,
	StripPackageNames: true,
}

func basicText(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Complex64:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 64)
	case reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	case reflect.String:
		return v.String()
	}
	return fmt.Sprint(v)
}

func stringerText(v reflect.Value) string {
	return v.Interface().(fmt.Stringer).String()
}

func errorText(v reflect.Value) string {
	return v.Interface().(error).Error()
}

// charArrayText renders a byte array as C-style text ending at the first NUL.
func charArrayText(v reflect.Value) string {
	b := make([]byte, 0, v.Len())
	for i := range v.Len() {
		c := byte(v.Index(i).Uint())
		if c == 0 {
			break
		}
		b = append(b, c)
	}
	return string(b)
}

// underlyingText renders a struct wrapping a single integer, such as a
// modular-arithmetic value, as that integer.
func underlyingText(v reflect.Value) string {
	f := v.Field(0)
	if f.CanInt() {
		return strconv.FormatInt(f.Int(), 10)
	}
	return strconv.FormatUint(f.Uint(), 10)
}

func structText(v reflect.Value) string {
	if !v.CanInterface() {
		return fmt.Sprint(v)
	}
	return strings.TrimSpace(structDumper.Sdump(v.Interface()))
}

// bitText renders a bit vector most significant bit first.
func bitText(v reflect.Value) string {
	bits := v.Interface().(BitVector)
	n := bits.Len()
	var b strings.Builder
	b.Grow(int(n))
	for i := n; i > 0; i-- {
		if bits.Test(i - 1) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
