// Package optics provides generic lenses and traversals for reading and
// rewriting values nested inside immutable structures.
//
// A [Lens] focuses exactly one value and supports Get, Set and Modify. A
// [Traversal] focuses zero or more values and supports GetAll, Reduce, Set
// and Modify. Every Lens widens into a Traversal with [Lens.AsTraversal].
//
// Composition always takes the inner (more specific) optic first and the
// outer optic, the one that knows how to rebuild the containing structure,
// second:
//
//	salary := optics.ComposeLens(salaryLens, employeeLens)
//
// Lens composed with Lens stays a Lens; any composition involving a
// Traversal is a Traversal. [Compose] performs the same dispatch on the
// [Optic] variant at runtime.
//
// Setting a value that is already [Same] as the current focus returns the
// target itself, so repeated idempotent updates never allocate. The check
// holds transitively through composed chains.
package optics
