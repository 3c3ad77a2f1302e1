// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package gemini

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

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-key").WithBaseURL(srv.URL).WithHTTPClient(srv.Client())
}

func TestGenerateExtractsFirstCandidate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"O Centro tem 8 escolas."}]}}]}`))
	})

	text, err := client.Generate(context.Background(), "Quantas escolas tem o Centro?")
	require.NoError(t, err)
	assert.Equal(t, "O Centro tem 8 escolas.", text)
}

func TestGenerateNoCandidatesYieldsFallback(t *testing.T) {
	cases := []string{
		`{}`,
		`{"candidates":[]}`,
		`{"candidates":[{"content":{}}]}`,
		`{"candidates":[{"content":{"parts":[]}}]}`,
		`{"candidates":[{"content":{"parts":[{"text":""}]}}]}`,
	}

	for _, body := range cases {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})

		text, err := client.Generate(context.Background(), "oi")
		require.NoError(t, err, body)
		assert.Equal(t, FallbackText, text, body)
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"code":503,"message":"overloaded"}}`))
	})

	_, err := client.Generate(context.Background(), "oi")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Equal(t, "overloaded", apiErr.Message)
}

func TestGenerateMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.Generate(context.Background(), "oi")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGenerateNoAPIKey(t *testing.T) {
	client := NewClient("")
	_, err := client.Generate(context.Background(), "oi")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestGenerateEmptyPrompt(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.Generate(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
	assert.False(t, called, "empty prompt must not reach upstream")
}

func TestGenerateTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient("test-key").WithBaseURL(srv.URL)
	_, err := client.Generate(context.Background(), "oi")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGenerateHonorsContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Generate(ctx, "oi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream) || errors.Is(err, context.DeadlineExceeded))
}

func TestAPIKeyMasked(t *testing.T) {
	client := NewClient("super-secret-key")
	masked := client.APIKeyMasked()
	assert.NotContains(t, masked, "super-secret-key")
	assert.Contains(t, masked, "REDACTED")

	assert.Equal(t, "[not set]", NewClient("").APIKeyMasked())
}
