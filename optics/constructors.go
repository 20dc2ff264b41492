package optics

import "maps"

// Record is the capability of a keyed record type R whose fields of type V
// are addressed by keys of type K. WithField returns a new record.
type Record[R any, K comparable, V any] interface {
	Field(key K) V
	WithField(key K, value V) R
}

// Sequence is the capability of an indexed sequence type Q of T. WithAt
// returns a new sequence, grown when index is past the end.
type Sequence[Q any, T any] interface {
	Len() int
	At(index int) T
	WithAt(index int, value T) Q
}

// Identity creates an identity lens.
func Identity[S any]() Lens[S, S] {
	return NewLens(
		func(s S) S { return s },
		func(_ S, s S) S { return s },
	)
}

// ComposeAll chains lenses given innermost first. ComposeAll(a, b, c)
// focuses c, then b within it, then a.
func ComposeAll[S any](lenses ...Lens[S, S]) Lens[S, S] {
	acc := Identity[S]()
	for _, l := range lenses {
		acc = ScopeLens(l, acc)
	}
	return acc
}

// Prop creates a lens for a map value at key. A missing key reads as the
// zero value.
func Prop[K comparable, V any](key K) Lens[map[K]V, V] {
	return NewLens(
		func(m map[K]V) V {
			return m[key]
		},
		func(m map[K]V, v V) map[K]V {
			result := make(map[K]V, len(m)+1)
			maps.Copy(result, m)
			result[key] = v
			return result
		},
	)
}

// PropOf creates a lens for a field of any Record.
func PropOf[R Record[R, K, V], K comparable, V any](key K) Lens[R, V] {
	return NewLens(
		func(r R) V { return r.Field(key) },
		func(r R, v V) R { return r.WithField(key, v) },
	)
}

// Element creates a lens for the slice element at index. Reads past the end
// yield the zero value; writes past the end grow the slice and leave zero
// values in the gap.
func Element[T any](index int) Lens[[]T, T] {
	return NewLens(
		func(s []T) T { return elementAt(s, index) },
		func(s []T, v T) []T { return replace(s, index, v) },
	)
}

// Head creates a lens for the first element of a slice.
func Head[T any]() Lens[[]T, T] {
	return Element[T](0)
}

// First is Head.
func First[T any]() Lens[[]T, T] {
	return Element[T](0)
}

// Second creates a lens for the second element of a slice.
func Second[T any]() Lens[[]T, T] {
	return Element[T](1)
}

// Third creates a lens for the third element of a slice.
func Third[T any]() Lens[[]T, T] {
	return Element[T](2)
}

// Last creates a lens for the last element of a slice. The index is taken
// from the length of each target; on an empty slice it is 0.
func Last[T any]() Lens[[]T, T] {
	return NewLens(
		func(s []T) T {
			if len(s) == 0 {
				var zero T
				return zero
			}
			return s[len(s)-1]
		},
		func(s []T, v T) []T {
			return replace(s, max(len(s)-1, 0), v)
		},
	)
}

// ElementOf creates a lens for the element at index of any Sequence.
func ElementOf[Q Sequence[Q, T], T any](index int) Lens[Q, T] {
	return NewLens(
		func(q Q) T {
			if index >= q.Len() {
				var zero T
				return zero
			}
			return q.At(index)
		},
		func(q Q, v T) Q { return q.WithAt(index, v) },
	)
}

// Select creates a traversal over the slice elements matching pred.
func Select[T any](pred func(T) bool) Traversal[[]T, T] {
	return NewTraversal(func(s []T, f func(T) T) []T {
		return mapSlice(s, func(v T) T {
			if pred(v) {
				return f(v)
			}
			return v
		})
	})
}

// Every creates a traversal over every slice element.
func Every[T any]() Traversal[[]T, T] {
	return NewTraversal(mapSlice[T])
}

// SelectOf creates a traversal over the elements of any Sequence matching pred.
func SelectOf[Q Sequence[Q, T], T any](pred func(T) bool) Traversal[Q, T] {
	return NewTraversal(func(q Q, f func(T) T) Q {
		return mapSequence(q, func(v T) T {
			if pred(v) {
				return f(v)
			}
			return v
		})
	})
}

// EveryOf creates a traversal over every element of any Sequence.
func EveryOf[Q Sequence[Q, T], T any]() Traversal[Q, T] {
	return NewTraversal(mapSequence[Q, T])
}

// At creates a traversal over the slice element at index, if present. It
// never grows the slice.
func At[T any](index int) Traversal[[]T, T] {
	return NewTraversal(func(s []T, f func(T) T) []T {
		if index < 0 || index >= len(s) {
			return s
		}
		next := f(s[index])
		if Same(s[index], next) {
			return s
		}
		return replace(s, index, next)
	})
}

// Key creates a traversal over the map value at key, if present.
func Key[K comparable, V any](key K) Traversal[map[K]V, V] {
	return NewTraversal(func(m map[K]V, f func(V) V) map[K]V {
		v, ok := m[key]
		if !ok {
			return m
		}
		next := f(v)
		if Same(v, next) {
			return m
		}
		result := maps.Clone(m)
		result[key] = next
		return result
	})
}

func elementAt[T any](s []T, index int) T {
	if index >= len(s) {
		var zero T
		return zero
	}
	return s[index]
}

func replace[T any](s []T, index int, v T) []T {
	result := make([]T, max(len(s), index+1))
	copy(result, s)
	result[index] = v
	return result
}

// mapSlice returns s itself when fn leaves every element the same.
func mapSlice[T any](s []T, fn func(T) T) []T {
	var result []T
	for i, v := range s {
		next := fn(v)
		if result == nil {
			if Same(v, next) {
				continue
			}
			result = make([]T, len(s))
			copy(result, s[:i])
		}
		result[i] = next
	}
	if result == nil {
		return s
	}
	return result
}

func mapSequence[Q Sequence[Q, T], T any](q Q, fn func(T) T) Q {
	for i := range q.Len() {
		v := q.At(i)
		if next := fn(v); !Same(v, next) {
			q = q.WithAt(i, next)
		}
	}
	return q
}
