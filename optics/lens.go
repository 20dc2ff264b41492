package optics

import "slices"

// Lens focuses exactly one value A inside a structure S.
type Lens[S, A any] struct {
	getter func(S) A
	setter func(S, A) S
	equal  func(A, A) bool
}

// NewLens creates a lens from get and set functions.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{getter: get, setter: set, equal: Same[A]}
}

// WithEqual returns a copy of the lens that uses equal for the no-op check.
func (l Lens[S, A]) WithEqual(equal func(A, A) bool) Lens[S, A] {
	l.equal = equal
	return l
}

// Equal reports whether two focus values are equal for this lens.
func (l Lens[S, A]) Equal(x, y A) bool {
	if l.equal == nil {
		return Same(x, y)
	}
	return l.equal(x, y)
}

// Get retrieves the focused value.
func (l Lens[S, A]) Get(source S) A {
	return l.getter(source)
}

// Set returns a new structure with the focused value replaced. When the
// focus already equals value the source itself is returned.
func (l Lens[S, A]) Set(source S, value A) S {
	if l.Equal(l.getter(source), value) {
		return source
	}
	return l.setter(source, value)
}

// Modify applies fn to the focused value.
func (l Lens[S, A]) Modify(source S, fn func(A) A) S {
	return l.Set(source, fn(l.getter(source)))
}

// AsTraversal widens the lens into a traversal with exactly one focus.
func (l Lens[S, A]) AsTraversal() Traversal[S, A] {
	return NewTraversal(func(s S, f func(A) A) S {
		return l.Set(s, f(l.Get(s)))
	})
}

// Kind reports KindLens.
func (Lens[S, A]) Kind() Kind {
	return KindLens
}

func (Lens[S, A]) sealed() {}

// Push appends values to the end of the slice focused by l. The focused
// slice is never appended to in place.
func Push[S, E any](l Lens[S, []E], source S, values ...E) S {
	if len(values) == 0 {
		return source
	}
	return l.Modify(source, func(seq []E) []E {
		return slices.Concat(seq, values)
	})
}

// ComposeLens focuses inner within the value focused by outer.
func ComposeLens[T, S, A any](inner Lens[S, A], outer Lens[T, S]) Lens[T, A] {
	return Lens[T, A]{
		getter: func(t T) A {
			return inner.Get(outer.Get(t))
		},
		setter: func(t T, a A) T {
			return outer.Modify(t, func(s S) S {
				return inner.Set(s, a)
			})
		},
		equal: inner.equal,
	}
}

// ComposeLensTraversal widens inner and focuses it within every focus of outer.
func ComposeLensTraversal[T, S, A any](inner Lens[S, A], outer Traversal[T, S]) Traversal[T, A] {
	return ComposeTraversal(inner.AsTraversal(), outer)
}

// ScopeLens reads outer-to-inner: focus outer, then inner within it.
func ScopeLens[T, S, A any](outer Lens[T, S], inner Lens[S, A]) Lens[T, A] {
	return scopeLens(outer, inner)
}

// AndThenLens is ScopeLens.
func AndThenLens[T, S, A any](outer Lens[T, S], inner Lens[S, A]) Lens[T, A] {
	return scopeLens(outer, inner)
}

func scopeLens[T, S, A any](outer Lens[T, S], inner Lens[S, A]) Lens[T, A] {
	return ComposeLens(inner, outer)
}
