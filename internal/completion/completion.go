package completion

import (
	"context"
	"errors"
	"fmt"
)

// Completer turns a prompt into the text of a single completion choice.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

var (
	ErrMissingAPIKey = errors.New("key was not provided for the completion provider")
	ErrNoChoices     = errors.New("completion provider returned no choices")
)

// ProviderError is returned for every failed provider call. StatusCode is
// the upstream HTTP status, or 0 when no response was received.
type ProviderError struct {
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("completion provider: %v", e.Err)
	}
	return fmt.Sprintf("completion provider returned %d: %v", e.StatusCode, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
