package optics

import "reflect"

// Same reports whether x and y are the same value in the sense used by the
// no-op check of [Lens.Set].
//
// Scalars, strings, structs and arrays compare by value. Maps, pointers and
// channels compare by address, slices by backing array, length and capacity.
// Functions are never the same unless both are nil. Interface values compare
// their dynamic values.
func Same[T any](x, y T) bool {
	return identical(reflect.ValueOf(&x).Elem(), reflect.ValueOf(&y).Elem())
}

func identical(x, y reflect.Value) bool {
	if !x.IsValid() || !y.IsValid() {
		return x.IsValid() == y.IsValid()
	}
	if x.Type() != y.Type() {
		return false
	}

	switch x.Kind() {
	case reflect.Interface:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() && y.IsNil()
		}
		return identical(x.Elem(), y.Elem())
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return x.Pointer() == y.Pointer()
	case reflect.Slice:
		return x.Pointer() == y.Pointer() && x.Len() == y.Len() && x.Cap() == y.Cap()
	case reflect.Func:
		return x.IsNil() && y.IsNil()
	case reflect.Struct:
		for i := range x.NumField() {
			if !identical(x.Field(i), y.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := range x.Len() {
			if !identical(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	default:
		return x.Equal(y)
	}
}
