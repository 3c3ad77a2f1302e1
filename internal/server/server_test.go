// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digai/digai-tui/internal/gemini"
)

// stubGenerator records calls and returns a canned answer or error.
type stubGenerator struct {
	calls int64
	text  string
	err   error
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	atomic.AddInt64(&g.calls, 1)
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

func postGemini(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/gemini", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGenerateSuccess(t *testing.T) {
	stub := &stubGenerator{text: "O Centro tem 8 escolas."}
	srv := NewServer(0, stub)

	rec := postGemini(t, srv, `{"prompt": "Quantas escolas tem o Centro?"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "O Centro tem 8 escolas.", decodeBody(t, rec)["text"])
	assert.Equal(t, int64(1), atomic.LoadInt64(&stub.calls))
}

func TestGenerateEmptyPromptNeverReachesUpstream(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty string", `{"prompt": ""}`},
		{"whitespace only", `{"prompt": "   "}`},
		{"missing field", `{}`},
		{"malformed json", `{"prompt"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubGenerator{text: "never"}
			srv := NewServer(0, stub)

			rec := postGemini(t, srv, tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Prompt is required", decodeBody(t, rec)["error"])
			assert.Equal(t, int64(0), atomic.LoadInt64(&stub.calls), "rejected request must not call upstream")
		})
	}
}

func TestGenerateUpstreamFailureIsGeneric(t *testing.T) {
	stub := &stubGenerator{err: &gemini.APIError{Status: 503, Message: "quota exceeded for key AIza-secret"}}
	srv := NewServer(0, stub)

	rec := postGemini(t, srv, `{"prompt": "oi"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Erro ao conectar ao Gemini.", body["error"])
	assert.NotContains(t, rec.Body.String(), "AIza-secret", "upstream detail must not leak to callers")
}

func TestGenerateTransportFailureIsGeneric(t *testing.T) {
	stub := &stubGenerator{err: errors.New("dial tcp: connection refused")}
	srv := NewServer(0, stub)

	rec := postGemini(t, srv, `{"prompt": "oi"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Erro ao conectar ao Gemini.", decodeBody(t, rec)["error"])
}

func TestGenerateFallbackTextIsSuccess(t *testing.T) {
	stub := &stubGenerator{text: gemini.FallbackText}
	srv := NewServer(0, stub)

	rec := postGemini(t, srv, `{"prompt": "oi"}`)

	assert.Equal(t, http.StatusOK, rec.Code, "an empty upstream answer is not a proxy error")
	assert.Equal(t, "Sem resposta.", decodeBody(t, rec)["text"])
}

func TestGenerateMethodNotAllowed(t *testing.T) {
	srv := NewServer(0, &stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/gemini", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	srv := NewServer(0, &stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
}

func TestDefaultPortApplied(t *testing.T) {
	srv := NewServer(0, &stubGenerator{})
	assert.Equal(t, DefaultPort, srv.Port())
}

func TestRateLimitMiddleware(t *testing.T) {
	srv := NewServer(0, &stubGenerator{text: "ok"}).WithRateLimiter(NewRateLimiter(2))

	var last int
	for i := 0; i < 3; i++ {
		rec := postGemini(t, srv, `{"prompt": "oi"}`)
		last = rec.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestCORSPreflight(t *testing.T) {
	srv := NewServer(0, &stubGenerator{})

	req := httptest.NewRequest(http.MethodOptions, "/api/gemini", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestIsOriginAllowed(t *testing.T) {
	assert.True(t, isOriginAllowed("http://any.example", []string{"*"}))
	assert.True(t, isOriginAllowed("https://app.digai.dev", []string{"*.digai.dev"}))
	assert.False(t, isOriginAllowed("https://evil.dev", []string{"https://app.digai.dev"}))
}
