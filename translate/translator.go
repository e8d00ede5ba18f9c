// Package translate defines the translation service contract and the
// wrappers the pipeline composes around it: bounded retries, rate
// limiting, and a single-flight memoizing cache.
package translate

import (
	"context"
	"errors"

	"github.com/tsawler/shatranj/model"
)

// ErrEmptyResult is returned when the backing service produced no text.
// An empty translation is treated as a failure so the caller can fall
// back to the original text.
var ErrEmptyResult = errors.New("translate: empty result")

// Translator turns source-language text into the target language.
// Implementations must be safe for concurrent use.
type Translator interface {
	Translate(ctx context.Context, text string, source, target model.Language) (string, error)
}

// Func adapts an ordinary function to the Translator interface.
type Func func(ctx context.Context, text string, source, target model.Language) (string, error)

// Translate calls f.
func (f Func) Translate(ctx context.Context, text string, source, target model.Language) (string, error) {
	return f(ctx, text, source, target)
}

// NoOp returns a translator that echoes its input. Useful for
// layout-only runs where no translation backend is wired.
func NoOp() Translator {
	return Func(func(ctx context.Context, text string, source, target model.Language) (string, error) {
		return text, nil
	})
}
