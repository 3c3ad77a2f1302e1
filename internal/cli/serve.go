// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/digai/digai-tui/internal/config"
	"github.com/digai/digai-tui/internal/gemini"
	"github.com/digai/digai-tui/internal/server"
)

// HandleServe runs the HTTP generation proxy until interrupted.
func HandleServe(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// The proxy refuses to start without a credential. There is no
	// built-in fallback key.
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}
	config.SetGlobal(cfg)

	port := cfg.Server.Port
	if args.Port != 0 {
		port = args.Port
	}

	client := gemini.NewClient(cfg.Gemini.APIKey).
		WithBaseURL(cfg.Gemini.BaseURL).
		WithModel(cfg.Gemini.Model).
		WithTimeout(cfg.Gemini.Timeout())

	srv := server.NewServer(port, client).
		WithCORS(&server.CORSConfig{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         86400,
		}).
		WithRateLimiter(server.NewRateLimiter(cfg.Server.RateLimit))

	// Reload config edits while running.
	watcher, err := config.NewWatcher()
	if err != nil {
		log.Printf("CONFIG_WATCH_UNAVAILABLE | error=%v", err)
	} else {
		if err := watcher.Watch(); err != nil {
			log.Printf("CONFIG_WATCH_UNAVAILABLE | error=%v", err)
		}
		defer watcher.Close()
	}

	log.Printf("PROXY_READY | port=%d model=%s key=%s", port, cfg.Gemini.Model, client.APIKeyMasked())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case sig := <-sigCh:
		log.Printf("SIGNAL_RECEIVED | signal=%v", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
