// Package opticstest provides rapid generators for documents and checks for
// the lens and traversal laws.
package opticstest

import "pgregory.net/rapid"

func toAny[T any](v T) any {
	return v
}

// Key generates property names from a small alphabet so that generated
// names collide with generated documents often.
func Key() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{"a", "b", "c", "name", "staff"})
}

// Value generates non-nil scalar values.
func Value() *rapid.Generator[any] {
	return rapid.OneOf(
		rapid.Map(rapid.Bool(), toAny[bool]),
		rapid.Map(rapid.IntRange(-1000, 1000), toAny[int]),
		rapid.Map(rapid.StringMatching(`[a-z]{0,8}`), toAny[string]),
	)
}

// Scalar generates scalar values including nil.
func Scalar() *rapid.Generator[any] {
	return rapid.OneOf(rapid.Just[any](nil), Value())
}

// Document generates documents nested at most depth levels deep.
func Document(depth int) *rapid.Generator[any] {
	if depth <= 0 {
		return Scalar()
	}
	return rapid.OneOf(
		Scalar(),
		rapid.Map(Object(depth-1), toAny[map[string]any]),
		rapid.Map(Array(depth-1), toAny[[]any]),
	)
}

// Object generates an object whose values are documents of the given depth.
func Object(depth int) *rapid.Generator[map[string]any] {
	return rapid.MapOfN(Key(), Document(depth), 0, 4)
}

// Array generates an array whose elements are documents of the given depth.
func Array(depth int) *rapid.Generator[[]any] {
	return rapid.SliceOfN(Document(depth), 0, 4)
}

// ObjectDocument generates an object typed as a document.
func ObjectDocument(depth int) *rapid.Generator[any] {
	return rapid.Map(Object(depth), toAny[map[string]any])
}

// ArrayDocument generates an array typed as a document.
func ArrayDocument(depth int) *rapid.Generator[any] {
	return rapid.Map(Array(depth), toAny[[]any])
}
