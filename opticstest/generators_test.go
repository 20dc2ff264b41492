package opticstest_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/superwatermelon/focalize/opticstest"
)

func depth(v any) int {
	switch x := v.(type) {
	case map[string]any:
		d := 0
		for _, child := range x {
			d = max(d, depth(child))
		}
		return d + 1
	case []any:
		d := 0
		for _, child := range x {
			d = max(d, depth(child))
		}
		return d + 1
	default:
		return 0
	}
}

// Property: generated documents respect the depth bound
func TestProperty_DocumentDepthBound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bound := rapid.IntRange(0, 3).Draw(t, "bound")
		doc := opticstest.Document(bound).Draw(t, "doc")

		if got := depth(doc); got > bound {
			t.Fatalf("depth %d exceeds bound %d", got, bound)
		}
	})
}

// Property: Value never produces nil
func TestProperty_ValueNeverNil(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		if opticstest.Value().Draw(t, "value") == nil {
			t.Fatalf("Value produced nil")
		}
	})
}

// Property: object and array documents have the advertised shape
func TestProperty_ShapedDocuments(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		if _, ok := opticstest.ObjectDocument(1).Draw(t, "object").(map[string]any); !ok {
			t.Fatalf("ObjectDocument must produce map[string]any")
		}
		if _, ok := opticstest.ArrayDocument(1).Draw(t, "array").([]any); !ok {
			t.Fatalf("ArrayDocument must produce []any")
		}
	})
}
