package tags

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogtags/internal/completion"
	"blogtags/pkg/logger"
)

var (
	ErrMissingParams  = errors.New("title and size are required")
	ErrInvalidSize    = errors.New("invalid tag count")
	ErrProviderFailed = errors.New("tag provider failed")
)

type Service interface {
	// GenerateTags returns the cleaned, comma-joined tag string for a request
	GenerateTags(ctx context.Context, req TagRequest) (string, error)
}

type service struct {
	completer completion.Completer
	log       *logger.Logger
}

func NewService(completer completion.Completer, log *logger.Logger) Service {
	return &service{completer: completer, log: log}
}

func (s *service) GenerateTags(ctx context.Context, req TagRequest) (string, error) {
	start := time.Now()

	text, err := s.completer.Complete(ctx, req.Prompt())
	if err != nil {
		status := 0
		var providerErr *completion.ProviderError
		if errors.As(err, &providerErr) {
			status = providerErr.StatusCode
		}
		s.log.LogProviderFailure(ctx, status, err)
		return "", fmt.Errorf("%w: %w", ErrProviderFailed, err)
	}

	s.log.LogTagsGenerated(ctx, req.Size, modelOf(s.completer), time.Since(start))
	return CleanTags(text), nil
}

func modelOf(c completion.Completer) string {
	if m, ok := c.(interface{ Model() string }); ok {
		return m.Model()
	}
	return "unknown"
}
