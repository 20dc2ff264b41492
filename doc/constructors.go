package doc

import (
	"maps"

	"github.com/superwatermelon/focalize/optics"
)

// Identity returns the lens focusing the whole document.
func Identity() Lens {
	return Lens{lens: optics.Identity[any]()}
}

// Prop focuses the named property of an object.
func Prop(name string) Lens {
	return NewLens(
		func(s any) any {
			switch obj := s.(type) {
			case nil:
				return nil
			case map[string]any:
				return obj[name]
			default:
				shapePanic("prop", "object", s)
				return nil
			}
		},
		func(s, v any) any {
			switch obj := s.(type) {
			case nil:
				return nil
			case map[string]any:
				result := make(map[string]any, len(obj)+1)
				maps.Copy(result, obj)
				result[name] = v
				return result
			default:
				shapePanic("prop", "object", s)
				return nil
			}
		},
	)
}

// ObjectPropertyLens is Prop.
func ObjectPropertyLens(name string) Lens {
	return Prop(name)
}

// Element focuses the array element at index. Reads past the end are nil;
// writes past the end grow the array and leave nil holes before index.
func Element(index int) Lens {
	return NewLens(
		func(s any) any {
			arr := asArray("element", s)
			if index >= len(arr) {
				return nil
			}
			return arr[index]
		},
		func(s, v any) any {
			if s == nil {
				return nil
			}
			return replace(asArray("element", s), index, v)
		},
	)
}

// ArrayElementLens is Element.
func ArrayElementLens(index int) Lens {
	return Element(index)
}

// Head focuses the first array element.
func Head() Lens {
	return Element(0)
}

// First is Head.
func First() Lens {
	return Element(0)
}

// Second focuses the second array element.
func Second() Lens {
	return Element(1)
}

// Third focuses the third array element.
func Third() Lens {
	return Element(2)
}

// Last focuses the last array element, resolved from the length of each
// target.
func Last() Lens {
	return NewLens(
		func(s any) any {
			arr := asArray("last", s)
			if len(arr) == 0 {
				return nil
			}
			return arr[len(arr)-1]
		},
		func(s, v any) any {
			if s == nil {
				return nil
			}
			arr := asArray("last", s)
			return replace(arr, max(len(arr)-1, 0), v)
		},
	)
}

// Select traverses the array elements matching pred. Targets that are not
// arrays are returned unchanged.
func Select(pred func(any) bool) Traversal {
	return overArray(optics.Select(pred))
}

// Every traverses every array element. Targets that are not arrays are
// returned unchanged.
func Every() Traversal {
	return overArray(optics.Every[any]())
}

// Path focuses a chain of properties, outermost first.
func Path(names ...string) Lens {
	acc := Identity()
	for _, name := range names {
		acc = Prop(name).ComposeLens(acc)
	}
	return acc
}

// Compose chains optics given innermost first. The result is a Lens when
// every optic is a Lens and a Traversal otherwise.
func Compose(chain ...Optic) Optic {
	var acc Optic = Identity()
	for _, o := range chain {
		acc = o.Scope(acc)
	}
	return acc
}

func overArray(t optics.Traversal[[]any, any]) Traversal {
	return NewTraversal(func(s any, f func(any) any) any {
		arr, ok := s.([]any)
		if !ok {
			return s
		}
		return t.Modify(arr, f)
	})
}

func asArray(op string, s any) []any {
	switch arr := s.(type) {
	case nil:
		return nil
	case []any:
		return arr
	default:
		shapePanic(op, "array", s)
		return nil
	}
}

func replace(arr []any, index int, v any) []any {
	result := make([]any, max(len(arr), index+1))
	copy(result, arr)
	result[index] = v
	return result
}
