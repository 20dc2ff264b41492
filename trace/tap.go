package trace

import (
	"log/slog"

	"github.com/rs/zerolog"

	"github.com/superwatermelon/focalize/optics"
)

// Tap returns an identity function that logs each value it sees. Use it as a
// Modify callback or inside a getter to watch values flow through an optic.
func Tap[A any](logger zerolog.Logger, label string) func(A) A {
	return func(v A) A {
		logger.Debug().
			Str("label", label).
			Interface("value", v).
			Msg("tap")
		return v
	}
}

// SlogTap is Tap for a log/slog logger.
func SlogTap[A any](logger *slog.Logger, label string) func(A) A {
	return func(v A) A {
		logger.Debug("tap", "label", label, "value", v)
		return v
	}
}

// Lens wraps l so every get and set is logged. The equality of l is kept,
// so a set that changes nothing still returns the source itself.
func Lens[S, A any](logger zerolog.Logger, label string, l optics.Lens[S, A]) optics.Lens[S, A] {
	return optics.NewLens(
		func(s S) A {
			a := l.Get(s)
			logger.Debug().
				Str("label", label).
				Str("op", "get").
				Interface("value", a).
				Msg("lens")
			return a
		},
		func(s S, a A) S {
			logger.Debug().
				Str("label", label).
				Str("op", "set").
				Interface("value", a).
				Msg("lens")
			return l.Set(s, a)
		},
	).WithEqual(l.Equal)
}

// Traversal wraps t so every visited focus is logged.
func Traversal[S, A any](logger zerolog.Logger, label string, t optics.Traversal[S, A]) optics.Traversal[S, A] {
	return optics.NewTraversal(func(s S, f func(A) A) S {
		return t.Modify(s, func(a A) A {
			logger.Debug().
				Str("label", label).
				Str("op", "visit").
				Interface("value", a).
				Msg("traversal")
			return f(a)
		})
	})
}
