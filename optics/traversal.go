package optics

import (
	"iter"

	"github.com/superwatermelon/focalize/functional"
)

// Traversal focuses zero or more values A inside a structure S.
//
// The modifier applies a function to every focus and rebuilds S. Reading
// operations run the modifier with an identity function that observes each
// focus on the way through.
type Traversal[S, A any] struct {
	modifier func(S, func(A) A) S
}

// NewTraversal creates a traversal from a modifier function.
func NewTraversal[S, A any](modifier func(S, func(A) A) S) Traversal[S, A] {
	return Traversal[S, A]{modifier: modifier}
}

// GetAll returns every focused value in visitation order.
func (t Traversal[S, A]) GetAll(source S) []A {
	values := make([]A, 0)
	t.modifier(source, func(a A) A {
		values = append(values, a)
		return a
	})
	return values
}

// All returns an iterator over the focused values in visitation order.
func (t Traversal[S, A]) All(source S) iter.Seq[A] {
	return func(yield func(A) bool) {
		stopped := false
		t.modifier(source, func(a A) A {
			if !stopped && !yield(a) {
				stopped = true
			}
			return a
		})
	}
}

// Set overwrites every focus with value.
func (t Traversal[S, A]) Set(source S, value A) S {
	return t.modifier(source, func(A) A { return value })
}

// Modify applies fn to every focus and rebuilds the structure.
func (t Traversal[S, A]) Modify(source S, fn func(A) A) S {
	return t.modifier(source, fn)
}

// On binds the traversal to a single target.
func (t Traversal[S, A]) On(target S) AppliedTraversal[S, A] {
	return AppliedTraversal[S, A]{target: target, traversal: t}
}

// AsTraversal returns the traversal itself.
func (t Traversal[S, A]) AsTraversal() Traversal[S, A] {
	return t
}

// Kind reports KindTraversal.
func (Traversal[S, A]) Kind() Kind {
	return KindTraversal
}

func (Traversal[S, A]) sealed() {}

// Reduce folds combine over every focus from left to right.
func Reduce[S, A, R any](t Traversal[S, A], source S, combine func(R, A) R, initial R) R {
	acc := initial
	t.modifier(source, func(a A) A {
		acc = combine(acc, a)
		return a
	})
	return acc
}

// Preview returns the first focus, if any.
func Preview[S, A any](t Traversal[S, A], source S) functional.Option[A] {
	for a := range t.All(source) {
		return functional.Some(a)
	}
	return functional.None[A]()
}

// ComposeTraversal focuses inner within every focus of outer.
func ComposeTraversal[T, S, A any](inner Traversal[S, A], outer Traversal[T, S]) Traversal[T, A] {
	return NewTraversal(func(t T, f func(A) A) T {
		return outer.modifier(t, func(s S) S {
			return inner.modifier(s, f)
		})
	})
}

// ComposeTraversalLens focuses inner within the value focused by outer.
func ComposeTraversalLens[T, S, A any](inner Traversal[S, A], outer Lens[T, S]) Traversal[T, A] {
	return ComposeTraversal(inner, outer.AsTraversal())
}

// ScopeTraversal reads outer-to-inner: traverse outer, then inner within each focus.
func ScopeTraversal[T, S, A any](outer Traversal[T, S], inner Traversal[S, A]) Traversal[T, A] {
	return scopeTraversal(outer, inner)
}

// AndThenTraversal is ScopeTraversal.
func AndThenTraversal[T, S, A any](outer Traversal[T, S], inner Traversal[S, A]) Traversal[T, A] {
	return scopeTraversal(outer, inner)
}

func scopeTraversal[T, S, A any](outer Traversal[T, S], inner Traversal[S, A]) Traversal[T, A] {
	return ComposeTraversal(inner, outer)
}

// AppliedTraversal is a traversal bound to one target.
type AppliedTraversal[S, A any] struct {
	target    S
	traversal Traversal[S, A]
}

// Target returns the bound target.
func (a AppliedTraversal[S, A]) Target() S {
	return a.target
}

// Modify applies fn to every focus of the bound target.
func (a AppliedTraversal[S, A]) Modify(fn func(A) A) S {
	return a.traversal.Modify(a.target, fn)
}

// Set overwrites every focus of the bound target.
func (a AppliedTraversal[S, A]) Set(value A) S {
	return a.traversal.Set(a.target, value)
}

// GetAll returns the foci of the bound target.
func (a AppliedTraversal[S, A]) GetAll() []A {
	return a.traversal.GetAll(a.target)
}
