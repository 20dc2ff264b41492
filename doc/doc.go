// Package doc applies lenses and traversals to dynamic documents: trees of
// map[string]any, []any and scalar values such as those produced by decoding
// JSON or YAML.
//
// Optics compose inner first. Raising one salary deep inside a company:
//
//	raise := doc.Prop("salary").
//		ComposeTraversal(doc.Select(func(e any) bool { return doc.Prop("name").Get(e) == "Sidney" })).
//		ComposeLens(doc.Prop("staff")).
//		ComposeTraversal(doc.Select(func(d any) bool { return doc.Prop("name").Get(d) == "Human Resources" })).
//		ComposeLens(doc.Prop("departments"))
//
//	company = raise.Modify(company, func(s any) any { return s.(int) + 3000 })
//
// Scope and AndThen read in the opposite, outer-to-inner order:
//
//	doc.Prop("departments").AndThen(doc.Every()).AndThen(doc.Prop("name"))
//
// Updates never mutate their input. Containers off the updated path are
// shared with the input, and an update that changes nothing returns the
// input itself.
//
// A nil target passes through Prop and Element setters unchanged and reads
// as nil, so a chain applied to a document missing part of its path is a
// no-op. A non-nil target of the wrong shape panics with a *ShapeError.
package doc
