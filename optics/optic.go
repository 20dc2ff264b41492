package optics

// Kind identifies the variant of an Optic.
type Kind int

const (
	// KindLens is a single-focus optic.
	KindLens Kind = iota
	// KindTraversal is a zero-or-more-focus optic.
	KindTraversal
	// KindPrism is a zero-or-one-focus optic that can rebuild its source.
	KindPrism
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindLens:
		return "lens"
	case KindTraversal:
		return "traversal"
	case KindPrism:
		return "prism"
	default:
		return "unknown"
	}
}

// Optic is the closed set of optic variants: Lens, Traversal and Prism.
type Optic[S, A any] interface {
	Kind() Kind
	AsTraversal() Traversal[S, A]
	sealed()
}

// Compose focuses inner within outer. Two lenses compose into a Lens; every
// other pairing composes into a Traversal.
func Compose[T, S, A any](inner Optic[S, A], outer Optic[T, S]) Optic[T, A] {
	if in, ok := inner.(Lens[S, A]); ok {
		if out, ok := outer.(Lens[T, S]); ok {
			return ComposeLens(in, out)
		}
	}
	return ComposeTraversal(inner.AsTraversal(), outer.AsTraversal())
}

// Scope reads outer-to-inner: focus outer, then inner within it.
func Scope[T, S, A any](outer Optic[T, S], inner Optic[S, A]) Optic[T, A] {
	return scope(outer, inner)
}

// AndThen is Scope.
func AndThen[T, S, A any](outer Optic[T, S], inner Optic[S, A]) Optic[T, A] {
	return scope(outer, inner)
}

func scope[T, S, A any](outer Optic[T, S], inner Optic[S, A]) Optic[T, A] {
	return Compose(inner, outer)
}

// AsLens narrows o back to a Lens when it is one.
func AsLens[S, A any](o Optic[S, A]) (Lens[S, A], bool) {
	l, ok := o.(Lens[S, A])
	return l, ok
}
