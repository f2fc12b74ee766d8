package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"blogtags/internal/shared/utils/response"
)

var (
	DefaultTimeout = 45 * time.Second
)

// APIError is a non-2xx answer from the tag endpoint. Message is the
// endpoint's error text, shown to the user as-is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tag endpoint: %s (%d)", e.Message, e.StatusCode)
}

// Client calls the tag endpoint of a running server
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// WithHTTPClient swaps the underlying client, mostly for tests
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// GenerateTags asks the server for size tags for title and returns the
// comma-joined tag string.
func (c *Client) GenerateTags(ctx context.Context, title string, size int) (string, error) {
	q := url.Values{}
	q.Set("title", title)
	q.Set("size", strconv.Itoa(size))
	endpoint := c.baseURL + "/api/gpt?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", err
	}

	var out response.TagApiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return "", &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		}
		return "", fmt.Errorf("decode tag response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !out.Success {
		msg := out.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if out.Tags == nil {
		return "", nil
	}
	return *out.Tags, nil
}
