package opticstest

import (
	"reflect"

	"pgregory.net/rapid"

	"github.com/superwatermelon/focalize/optics"
)

// LensLaws returns a rapid property checking get-set, set-get and set-set
// for l over sources and values drawn from the generators.
//
// Setting the zero value onto a missing focus is a no-op, so for lenses that
// insert missing foci (map keys, slice growth) value must not produce the
// zero value or set-set fails.
func LensLaws[S, A any](l optics.Lens[S, A], source *rapid.Generator[S], value *rapid.Generator[A]) func(*rapid.T) {
	return func(t *rapid.T) {
		s := source.Draw(t, "source")
		v1 := value.Draw(t, "v1")
		v2 := value.Draw(t, "v2")

		if got := l.Get(l.Set(s, v1)); !reflect.DeepEqual(got, v1) {
			t.Fatalf("get-set: got %#v, want %#v", got, v1)
		}
		if !optics.Same(l.Set(s, l.Get(s)), s) {
			t.Fatalf("set-get: setting the current focus rebuilt %#v", s)
		}
		if twice, once := l.Set(l.Set(s, v1), v2), l.Set(s, v2); !reflect.DeepEqual(twice, once) {
			t.Fatalf("set-set: %#v != %#v", twice, once)
		}
	}
}

// TraversalLaws returns a rapid property checking that modifying with the
// identity function is a no-op and that Reduce visits the same foci as
// GetAll.
func TraversalLaws[S, A any](tr optics.Traversal[S, A], source *rapid.Generator[S]) func(*rapid.T) {
	return func(t *rapid.T) {
		s := source.Draw(t, "source")

		if got := tr.Modify(s, func(a A) A { return a }); !reflect.DeepEqual(got, s) {
			t.Fatalf("identity modify changed %#v into %#v", s, got)
		}

		all := tr.GetAll(s)
		reduced := optics.Reduce(tr, s, func(acc []A, a A) []A {
			return append(acc, a)
		}, []A{})
		if !reflect.DeepEqual(reduced, all) {
			t.Fatalf("reduce visited %#v, getAll returned %#v", reduced, all)
		}

		visits := 0
		tr.Modify(s, func(a A) A {
			visits++
			return a
		})
		if visits != len(all) {
			t.Fatalf("modify visited %d foci, getAll returned %d", visits, len(all))
		}
	}
}
