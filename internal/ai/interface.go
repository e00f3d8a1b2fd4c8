package ai

import (
	"context"
	"errors"
)

// Model failures split into two kinds: responses we could not make
// sense of, and calls that never produced a response. Both are returned
// wrapped so callers can use errors.Is.
var (
	// ErrParse means the model response contained no usable JSON or the
	// JSON was missing required fields.
	ErrParse = errors.New("model response not parseable")

	// ErrTransport means the model call itself failed or timed out after
	// the bounded retries were exhausted.
	ErrTransport = errors.New("model transport error")
)

// GenParams are the per-call generation knobs passed to the model.
type GenParams struct {
	Temperature float32
	MaxTokens   int32
}

// TextGenerator is the contract for the hosted text-generation endpoint.
// It carries no business logic; it takes a prompt and returns raw text.
// The interface allows swapping providers and stubbing in tests.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, params GenParams) (string, error)
}
