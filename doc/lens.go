package doc

import (
	"slices"

	"github.com/superwatermelon/focalize/optics"
)

// Optic is either a Lens or a Traversal over documents.
type Optic interface {
	Kind() optics.Kind
	Set(target, value any) any
	Modify(target any, fn func(any) any) any
	Scope(inner Optic) Optic
	AndThen(inner Optic) Optic
	AsTraversal() Traversal
	composeLens(outer Lens) Optic
	composeTraversal(outer Traversal) Traversal
}

// Lens focuses exactly one value of a document.
type Lens struct {
	lens optics.Lens[any, any]
}

// NewLens creates a lens from get and set functions.
func NewLens(get func(any) any, set func(any, any) any) Lens {
	return Lens{lens: optics.NewLens(get, set)}
}

// FromLens adapts a typed lens over documents.
func FromLens(l optics.Lens[any, any]) Lens {
	return Lens{lens: l}
}

// Unwrap returns the underlying typed lens.
func (l Lens) Unwrap() optics.Lens[any, any] {
	return l.lens
}

// Get returns the focused value.
func (l Lens) Get(target any) any {
	return l.lens.Get(target)
}

// Set replaces the focused value. The target itself is returned when the
// focus already holds value.
func (l Lens) Set(target, value any) any {
	return l.lens.Set(target, value)
}

// Modify applies fn to the focused value.
func (l Lens) Modify(target any, fn func(any) any) any {
	return l.lens.Modify(target, fn)
}

// Push appends values to the []any focused by the lens.
func (l Lens) Push(target any, values ...any) any {
	return l.lens.Modify(target, func(v any) any {
		seq, ok := v.([]any)
		if !ok {
			shapePanic("push", "array", v)
		}
		if len(values) == 0 {
			return seq
		}
		return slices.Concat(seq, values)
	})
}

// ComposeLens focuses l within the value focused by outer.
func (l Lens) ComposeLens(outer Lens) Lens {
	return Lens{lens: optics.ComposeLens(l.lens, outer.lens)}
}

// ComposeTraversal focuses l within every focus of outer.
func (l Lens) ComposeTraversal(outer Traversal) Traversal {
	return Traversal{traversal: optics.ComposeLensTraversal(l.lens, outer.traversal)}
}

// Scope focuses inner within the value focused by l. The result is a Lens
// when inner is a Lens and a Traversal otherwise.
func (l Lens) Scope(inner Optic) Optic {
	return inner.composeLens(l)
}

// AndThen is Scope.
func (l Lens) AndThen(inner Optic) Optic {
	return inner.composeLens(l)
}

// AsTraversal widens the lens into a traversal with exactly one focus.
func (l Lens) AsTraversal() Traversal {
	return Traversal{traversal: l.lens.AsTraversal()}
}

// Kind reports optics.KindLens.
func (l Lens) Kind() optics.Kind {
	return optics.KindLens
}

func (l Lens) composeLens(outer Lens) Optic {
	return l.ComposeLens(outer)
}

func (l Lens) composeTraversal(outer Traversal) Traversal {
	return l.ComposeTraversal(outer)
}
