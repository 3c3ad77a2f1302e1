// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

// Package gemini provides the client for the Google generative-language API.
//
// The client performs single-turn generateContent requests and extracts the
// first candidate's text. It never logs or echoes the API key; diagnostics
// use a SHA-256 fingerprint instead.
package gemini

import (
	"bytes"
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Configuration constants for the generative-language API.
const (
	// DefaultBaseURL is the base URL for the generative-language API.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the model used for generateContent requests.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout bounds a generateContent call. The upstream contract
	// itself specifies no timeout; an unbounded hung call would pin the UI
	// in a loading state forever, so requests are capped here.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	MaxResponseSize = 4 * 1024 * 1024

	// FallbackText is returned when the upstream answers successfully but
	// carries no extractable candidate text. Absence of an answer is not
	// an error.
	FallbackText = "Sem resposta."
)

// sharedHTTPClient pools connections across all Gemini requests.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	},
	Timeout: DefaultTimeout,
}

// Error variables for common client errors.
var (
	// ErrNoAPIKey indicates the API key is not configured.
	ErrNoAPIKey = errors.New("Gemini API key not configured")

	// ErrEmptyPrompt indicates a generate call with a blank prompt.
	ErrEmptyPrompt = errors.New("prompt must not be empty")

	// ErrUpstream indicates a transport or protocol failure talking to the
	// generative-language service.
	ErrUpstream = errors.New("upstream request failed")
)

// APIError represents an error response from the generative-language API.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("Gemini error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("Gemini error (HTTP %d)", e.Status)
}

// Unwrap lets callers match the error with errors.Is(err, ErrUpstream).
func (e *APIError) Unwrap() error {
	return ErrUpstream
}

// generateRequest is the single-turn generateContent request body.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse mirrors the subset of the generateContent response the
// client extracts. Every level is optional on the wire.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// firstCandidateText walks candidates[0].content.parts[0].text. A missing
// level at any depth yields FallbackText.
func (r *generateResponse) firstCandidateText() string {
	if len(r.Candidates) == 0 {
		return FallbackText
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return FallbackText
	}
	return parts[0].Text
}

// apiErrorResponse is the error envelope the API returns on non-200.
type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client is a client for the generative-language API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a new Gemini client with the given API key.
//
// If the key is empty the client is still created but Generate requests
// fail with ErrNoAPIKey.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    DefaultBaseURL,
		model:      DefaultModel,
		timeout:    DefaultTimeout,
		httpClient: sharedHTTPClient,
	}
}

// WithBaseURL sets a custom base URL for the API.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = strings.TrimSuffix(u, "/")
	return c
}

// WithModel sets the model used for generateContent requests.
func (c *Client) WithModel(model string) *Client {
	c.model = model
	return c
}

// WithTimeout sets the per-request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.timeout = timeout
	c.httpClient = &http.Client{
		Transport: sharedHTTPClient.Transport,
		Timeout:   timeout,
	}
	return c
}

// WithHTTPClient sets a custom HTTP client, used by tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// IsConfigured returns true if the client has an API key.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// APIKeyMasked returns a displayable form of the API key.
// The key itself never appears in output.
func (c *Client) APIKeyMasked() string {
	if c.apiKey == "" {
		return "[not set]"
	}
	return fmt.Sprintf("[REDACTED, length=%d, fingerprint=%s]", len(c.apiKey), c.keyFingerprint())
}

// keyFingerprint returns a short SHA-256 fingerprint of the API key for logs.
func (c *Client) keyFingerprint() string {
	if c.apiKey == "" {
		return "none"
	}
	h := sha256.Sum256([]byte(c.apiKey))
	return hex.EncodeToString(h[:4])
}

// Generate performs a single-turn generateContent request and returns the
// first candidate's text, or FallbackText when the response carries none.
//
// There is no retry: a failed call surfaces immediately so the caller can
// show its error state.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNoAPIKey
	}
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "digai/0.1.0")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("GEMINI_ERROR | key=%s error=%v", c.keyFingerprint(), err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := readResponse(resp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// Raw upstream body is logged for diagnostics. The key travels only in
	// the query string built by endpoint() and is never part of the body.
	log.Printf("GEMINI_RESPONSE | status=%d latency=%dms body=%s",
		resp.StatusCode, time.Since(start).Milliseconds(), truncate(string(body), 2000))

	if resp.StatusCode != http.StatusOK {
		return "", c.handleErrorResponse(resp.StatusCode, body)
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("%w: failed to parse response: %v", ErrUpstream, err)
	}

	return genResp.firstCandidateText(), nil
}

// endpoint builds the generateContent URL with the key as a query parameter.
func (c *Client) endpoint() string {
	return c.baseURL + "/models/" + c.model + ":generateContent?key=" + url.QueryEscape(c.apiKey)
}

// handleErrorResponse converts a non-200 upstream response into an APIError.
func (c *Client) handleErrorResponse(statusCode int, body []byte) error {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return &APIError{Status: statusCode, Message: apiErr.Error.Message}
	}
	return &APIError{Status: statusCode}
}

// readResponse reads the response body with a size cap.
func readResponse(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// truncate shortens a string for log lines, rune-safe.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
