package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTags(t *testing.T) {
	var gotPath, gotTitle, gotSize string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTitle = r.URL.Query().Get("title")
		gotSize = r.URL.Query().Get("size")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"tags":"Monorepo,Google,VersionControl"}`))
	}))
	defer srv.Close()

	tags, err := New(srv.URL+"/").GenerateTags(context.Background(), "Monorepos & you", 3)
	require.NoError(t, err)

	assert.Equal(t, "Monorepo,Google,VersionControl", tags)
	assert.Equal(t, "/api/gpt", gotPath)
	assert.Equal(t, "Monorepos & you", gotTitle)
	assert.Equal(t, "3", gotSize)
}

func TestGenerateTagsEmptySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"tags":""}`))
	}))
	defer srv.Close()

	tags, err := New(srv.URL).GenerateTags(context.Background(), "x", 0)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestGenerateTagsErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":"Please provide the relevant query parameters."}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GenerateTags(context.Background(), "x", 1)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Please provide the relevant query parameters.", apiErr.Message)
}

func TestGenerateTagsNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).GenerateTags(context.Background(), "x", 1)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestGenerateTagsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL).WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond})
	_, err := c.GenerateTags(context.Background(), "x", 1)

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
