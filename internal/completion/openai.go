package completion

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"blogtags/internal/shared/config"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAICompleter calls the legacy text completion endpoint of any
// OpenAI-compatible provider.
type OpenAICompleter struct {
	cl        *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
}

func NewOpenAICompleter(cfg config.OpenAIConfig) (*OpenAICompleter, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	httpClient := &http.Client{}
	if cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, err
		}
		httpClient.Transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL),
		}
	}
	clientConfig.HTTPClient = httpClient

	return &OpenAICompleter{
		cl:        openai.NewClientWithConfig(clientConfig),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
	}, nil
}

// Model reports the model identifier sent with every request
func (o *OpenAICompleter) Model() string {
	return o.model
}

func (o *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	resp, err := o.cl.CreateCompletion(ctx, openai.CompletionRequest{
		Model:     o.model,
		Prompt:    prompt,
		MaxTokens: o.maxTokens,
		N:         1,
	})
	if err != nil {
		return "", &ProviderError{StatusCode: upstreamStatus(err), Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{StatusCode: http.StatusOK, Err: ErrNoChoices}
	}

	return resp.Choices[0].Text, nil
}

func upstreamStatus(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
