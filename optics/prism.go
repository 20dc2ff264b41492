package optics

import (
	"strconv"

	"github.com/superwatermelon/focalize/functional"
)

// Prism focuses a value that is present only for some shapes of S and can
// rebuild an S from it. It composes as a zero-or-one-focus Traversal.
type Prism[S, A any] struct {
	getOption  func(S) functional.Option[A]
	reverseGet func(A) S
}

// NewPrism creates a prism from getOption and reverseGet functions.
func NewPrism[S, A any](getOption func(S) functional.Option[A], reverseGet func(A) S) Prism[S, A] {
	return Prism[S, A]{getOption: getOption, reverseGet: reverseGet}
}

// GetOption returns the focus if the source matches.
func (p Prism[S, A]) GetOption(source S) functional.Option[A] {
	return p.getOption(source)
}

// ReverseGet builds a source from a focus value.
func (p Prism[S, A]) ReverseGet(value A) S {
	return p.reverseGet(value)
}

// Modify applies fn to the focused value if present.
func (p Prism[S, A]) Modify(source S, fn func(A) A) S {
	a, ok := p.getOption(source).Get()
	if !ok {
		return source
	}
	next := fn(a)
	if Same(a, next) {
		return source
	}
	return p.reverseGet(next)
}

// Set sets the focused value if the prism matches.
func (p Prism[S, A]) Set(source S, value A) S {
	return p.Modify(source, func(A) A { return value })
}

// AsTraversal widens the prism into a traversal with zero or one focus.
func (p Prism[S, A]) AsTraversal() Traversal[S, A] {
	return NewTraversal(p.Modify)
}

// Kind reports KindPrism.
func (Prism[S, A]) Kind() Kind {
	return KindPrism
}

func (Prism[S, A]) sealed() {}

// SomePrism creates a prism for Option[T] that focuses on the Some case.
func SomePrism[T any]() Prism[functional.Option[T], T] {
	return NewPrism(
		func(o functional.Option[T]) functional.Option[T] { return o },
		functional.Some[T],
	)
}

// IntString creates a prism from decimal strings to int.
func IntString() Prism[string, int] {
	return NewPrism(
		func(s string) functional.Option[int] {
			n, err := strconv.Atoi(s)
			return functional.FromOk(n, err == nil)
		},
		strconv.Itoa,
	)
}

// Iso represents an isomorphism between two types.
type Iso[S, A any] struct {
	get     func(S) A
	reverse func(A) S
}

// NewIso creates a new isomorphism.
func NewIso[S, A any](get func(S) A, reverse func(A) S) Iso[S, A] {
	return Iso[S, A]{get: get, reverse: reverse}
}

// Get converts forwards.
func (i Iso[S, A]) Get(source S) A {
	return i.get(source)
}

// Reverse converts backwards.
func (i Iso[S, A]) Reverse(value A) S {
	return i.reverse(value)
}

// AsLens converts the Iso to a Lens.
func (i Iso[S, A]) AsLens() Lens[S, A] {
	return NewLens(i.get, func(_ S, a A) S { return i.reverse(a) })
}

// AsPrism converts the Iso to a Prism that always matches.
func (i Iso[S, A]) AsPrism() Prism[S, A] {
	return NewPrism(
		func(s S) functional.Option[A] { return functional.Some(i.get(s)) },
		i.reverse,
	)
}
