package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmaslov/probank/internal/api"
	"github.com/dmaslov/probank/internal/auth"
	"github.com/dmaslov/probank/internal/config"
	"github.com/dmaslov/probank/internal/loader"
	"github.com/dmaslov/probank/internal/problem"
	"github.com/dmaslov/probank/internal/progress"
	"github.com/dmaslov/probank/internal/render"
	"github.com/dmaslov/probank/internal/typeset"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Load the problem bank. A manifest wins over a bare directory.
	var (
		bank []problem.Problem
		err  error
	)
	if cfg.ManifestPath != "" {
		bank, err = loader.Load(cfg.ManifestPath)
	} else {
		bank, err = loader.LoadDir(cfg.CollectionsDir)
	}
	if err != nil {
		log.Error("load problem bank", "error", err)
		os.Exit(1)
	}
	log.Info("problem bank loaded", "problems", len(bank))

	prog, err := progress.Open(cfg.ProgressPath)
	if err != nil {
		log.Error("open progress store", "error", err)
		os.Exit(1)
	}

	gate := auth.NewGate(cfg.PasswordHash, cfg.SessionTTL)

	opts := []render.Option{render.WithPrecision(cfg.RenderPrecision)}
	if cfg.SanitizeOutput {
		opts = append(opts, render.WithSanitizer(typeset.Sanitize))
	}
	renderer := render.New(typeset.MathML{}, opts...)

	srv := api.NewServer(bank, renderer, prog, gate, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting probank", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
