// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

// Package server provides the HTTP generation proxy.
//
// Endpoints:
//   - POST /api/gemini  - forward a prompt to the generative-language API
//   - GET  /api/health  - health check
//
// The proxy owns the upstream credential. Callers never supply it and
// error responses never echo it or the raw upstream failure.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/digai/digai-tui/internal/gemini"
)

// ============================================================================
// CONSTANTS
// ============================================================================

const (
	// DefaultPort is the default port for the proxy.
	DefaultPort = 3001

	// MaxRequestBodySize caps the request body (1MB).
	MaxRequestBodySize = 1 * 1024 * 1024

	// MaxPromptLength caps a single prompt.
	MaxPromptLength = 100000

	// Version is the server version.
	Version = "0.1.0"

	// upstreamErrorMessage is the fixed user-facing message for any
	// upstream failure. The underlying cause stays in the server log.
	upstreamErrorMessage = "Erro ao conectar ao Gemini."
)

// Generator is the upstream text generation dependency.
// *gemini.Client satisfies it; tests substitute stubs.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ============================================================================
// SERVER STATS
// ============================================================================

// Stats tracks proxy usage counters.
type Stats struct {
	TotalRequests  int64     `json:"total_requests"`
	UpstreamErrors int64     `json:"upstream_errors"`
	BadRequests    int64     `json:"bad_requests"`
	StartTime      time.Time `json:"start_time"`
}

// NewStats creates a Stats with the start time set.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Uptime returns the server uptime.
func (s *Stats) Uptime() time.Duration {
	return time.Since(s.StartTime)
}

// ============================================================================
// SERVER
// ============================================================================

// Server is the HTTP generation proxy.
type Server struct {
	port   int
	router *http.ServeMux
	server *http.Server

	generator Generator
	cors      *CORSConfig
	limiter   *RateLimiter
	stats     *Stats

	mu sync.RWMutex
}

// NewServer creates a proxy listening on port, forwarding to generator.
// If port is 0, DefaultPort is used.
func NewServer(port int, generator Generator) *Server {
	if port == 0 {
		port = DefaultPort
	}

	s := &Server{
		port:      port,
		router:    http.NewServeMux(),
		generator: generator,
		cors:      DefaultCORSConfig(),
		limiter:   DefaultRateLimiter(),
		stats:     NewStats(),
	}

	s.setupRoutes()
	return s
}

// WithCORS sets a custom CORS configuration.
func (s *Server) WithCORS(cfg *CORSConfig) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cors = cfg
	return s
}

// WithRateLimiter sets a custom rate limiter.
func (s *Server) WithRateLimiter(rl *RateLimiter) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiter = rl
	return s
}

// Port returns the server port.
func (s *Server) Port() int {
	return s.port
}

// Handler returns the fully wired handler, used by httptest servers.
func (s *Server) Handler() http.Handler {
	return Chain(
		RecoveryMiddleware(),
		SecurityHeadersMiddleware(),
		RequestIDMiddleware(),
		LoggingMiddleware(log.Default()),
		RateLimitMiddleware(s.limiter),
		CORSMiddleware(s.cors),
	)(s.router)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.HandleFunc("POST /api/gemini", s.handleGenerate)
	s.router.HandleFunc("GET /api/health", s.handleHealth)
}

// ============================================================================
// GENERATE HANDLER
// ============================================================================

// generateRequest is the proxy request body.
type generateRequest struct {
	Prompt string `json:"prompt"`
}

// generateResponse is the proxy success body.
type generateResponse struct {
	Text string `json:"text"`
}

// handleGenerate handles POST /api/gemini.
//
// Contract: empty or missing prompt is a 400 and never reaches upstream;
// any upstream failure is a 500 with a fixed generic message; a
// successful upstream call returns 200 even when the answer is the
// fallback text.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt64(&s.stats.TotalRequests, 1)

	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodySize)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		atomic.AddInt64(&s.stats.BadRequests, 1)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Request body exceeds maximum size of %d bytes", MaxRequestBodySize))
			return
		}
		log.Printf("INVALID_BODY | error=%v", err)
		s.writeError(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		atomic.AddInt64(&s.stats.BadRequests, 1)
		s.writeError(w, http.StatusBadRequest, "Prompt is required")
		return
	}
	if len(req.Prompt) > MaxPromptLength {
		atomic.AddInt64(&s.stats.BadRequests, 1)
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Prompt exceeds maximum length of %d", MaxPromptLength))
		return
	}

	s.mu.RLock()
	generator := s.generator
	s.mu.RUnlock()

	start := time.Now()
	text, err := generator.Generate(r.Context(), req.Prompt)
	if err != nil {
		atomic.AddInt64(&s.stats.UpstreamErrors, 1)
		// Full cause stays server-side; the caller gets the fixed message.
		log.Printf("UPSTREAM_ERROR | latency=%dms error=%v", time.Since(start).Milliseconds(), err)
		s.writeError(w, http.StatusInternalServerError, upstreamErrorMessage)
		return
	}

	log.Printf("GENERATE_COMPLETE | latency=%dms chars=%d", time.Since(start).Milliseconds(), len(text))
	s.writeJSON(w, http.StatusOK, generateResponse{Text: text})
}

// ============================================================================
// HEALTH HANDLER
// ============================================================================

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// handleHealth handles GET /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:        "ok",
		Version:       Version,
		UptimeSeconds: int64(s.stats.Uptime().Seconds()),
	})
}

// ============================================================================
// SERVER LIFECYCLE
// ============================================================================

// Start starts the HTTP server and blocks until it exits.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("SERVER_START | addr=%s version=%s", addr, Version)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	log.Printf("SERVER_SHUTDOWN | requests=%d", atomic.LoadInt64(&s.stats.TotalRequests))
	return s.server.Shutdown(ctx)
}

// ============================================================================
// HELPERS
// ============================================================================

// writeJSON writes a JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response of the shape {"error": msg}.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// Ensure the real client satisfies the dependency.
var _ Generator = (*gemini.Client)(nil)
