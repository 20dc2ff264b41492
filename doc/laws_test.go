package doc_test

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/superwatermelon/focalize/doc"
	"github.com/superwatermelon/focalize/opticstest"
)

func isObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func TestLensLaws(t *testing.T) {
	t.Run("prop", func(t *testing.T) {
		rapid.Check(t, opticstest.LensLaws(doc.Prop("name").Unwrap(), opticstest.ObjectDocument(2), opticstest.Value()))
	})

	t.Run("element", func(t *testing.T) {
		rapid.Check(t, opticstest.LensLaws(doc.Second().Unwrap(), opticstest.ArrayDocument(2), opticstest.Value()))
	})

	t.Run("last", func(t *testing.T) {
		rapid.Check(t, opticstest.LensLaws(doc.Last().Unwrap(), opticstest.ArrayDocument(1), opticstest.Value()))
	})

	t.Run("identity", func(t *testing.T) {
		rapid.Check(t, opticstest.LensLaws(doc.Identity().Unwrap(), opticstest.Document(2), opticstest.Value()))
	})
}

func TestTraversalLaws(t *testing.T) {
	t.Run("every", func(t *testing.T) {
		rapid.Check(t, opticstest.TraversalLaws(doc.Every().Unwrap(), opticstest.Document(2)))
	})

	t.Run("select objects then prop", func(t *testing.T) {
		tr := doc.Prop("name").ComposeTraversal(doc.Select(isObject))
		rapid.Check(t, opticstest.TraversalLaws(tr.Unwrap(), opticstest.ArrayDocument(2)))
	})

	t.Run("every of every", func(t *testing.T) {
		tr := doc.Every().AndThen(doc.Every()).AsTraversal()
		rapid.Check(t, opticstest.TraversalLaws(tr.Unwrap(), opticstest.ArrayDocument(2)))
	})
}

func nested() *rapid.Generator[any] {
	return rapid.Custom(func(t *rapid.T) any {
		return map[string]any{
			"x": map[string]any{
				"y": map[string]any{
					"z":     opticstest.Value().Draw(t, "z"),
					"other": opticstest.Value().Draw(t, "other"),
				},
			},
		}
	})
}

func TestCompositionAssociativity(t *testing.T) {
	x, y, z := doc.Prop("x"), doc.Prop("y"), doc.Prop("z")
	left := z.ComposeLens(y).ComposeLens(x)
	right := z.ComposeLens(y.ComposeLens(x))

	rapid.Check(t, func(t *rapid.T) {
		s := nested().Draw(t, "source")
		v := opticstest.Value().Draw(t, "value")

		if l, r := left.Get(s), right.Get(s); l != r {
			t.Fatalf("get: %v != %v", l, r)
		}
		if l, r := left.Set(s, v), right.Set(s, v); !reflect.DeepEqual(l, r) {
			t.Fatalf("set: %v != %v", l, r)
		}
	})
}
