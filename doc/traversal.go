package doc

import "github.com/superwatermelon/focalize/optics"

// Traversal focuses zero or more values of a document.
type Traversal struct {
	traversal optics.Traversal[any, any]
}

// NewTraversal creates a traversal from a modifier function.
func NewTraversal(modifier func(any, func(any) any) any) Traversal {
	return Traversal{traversal: optics.NewTraversal(modifier)}
}

// FromTraversal adapts a typed traversal over documents.
func FromTraversal(t optics.Traversal[any, any]) Traversal {
	return Traversal{traversal: t}
}

// Unwrap returns the underlying typed traversal.
func (t Traversal) Unwrap() optics.Traversal[any, any] {
	return t.traversal
}

// GetAll returns every focused value in visitation order.
func (t Traversal) GetAll(target any) []any {
	return t.traversal.GetAll(target)
}

// Reduce folds combine over every focus from left to right.
func (t Traversal) Reduce(target any, combine func(acc, value any) any, initial any) any {
	return optics.Reduce(t.traversal, target, combine, initial)
}

// Set overwrites every focus with value.
func (t Traversal) Set(target, value any) any {
	return t.traversal.Set(target, value)
}

// Modify applies fn to every focus.
func (t Traversal) Modify(target any, fn func(any) any) any {
	return t.traversal.Modify(target, fn)
}

// On binds the traversal to target.
func (t Traversal) On(target any) optics.AppliedTraversal[any, any] {
	return t.traversal.On(target)
}

// ComposeLens focuses t within the value focused by outer.
func (t Traversal) ComposeLens(outer Lens) Traversal {
	return Traversal{traversal: optics.ComposeTraversalLens(t.traversal, outer.lens)}
}

// ComposeTraversal focuses t within every focus of outer.
func (t Traversal) ComposeTraversal(outer Traversal) Traversal {
	return Traversal{traversal: optics.ComposeTraversal(t.traversal, outer.traversal)}
}

// Scope focuses inner within every focus of t. The result is always a
// Traversal.
func (t Traversal) Scope(inner Optic) Optic {
	return inner.composeTraversal(t)
}

// AndThen is Scope.
func (t Traversal) AndThen(inner Optic) Optic {
	return inner.composeTraversal(t)
}

// AsTraversal returns t.
func (t Traversal) AsTraversal() Traversal {
	return t
}

// Kind reports optics.KindTraversal.
func (t Traversal) Kind() optics.Kind {
	return optics.KindTraversal
}

func (t Traversal) composeLens(outer Lens) Optic {
	return t.ComposeLens(outer)
}

func (t Traversal) composeTraversal(outer Traversal) Traversal {
	return t.ComposeTraversal(outer)
}
