// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

// goshawk is the marketing site backend for Goshawk Logistics: public
// content and form endpoints plus the admin panel API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/goshawklogistics/goshawk-go/internal/auth"
	"github.com/goshawklogistics/goshawk-go/internal/config"
	"github.com/goshawklogistics/goshawk-go/internal/handler"
	"github.com/goshawklogistics/goshawk-go/internal/repo"
	"github.com/goshawklogistics/goshawk-go/internal/storage"
	"github.com/goshawklogistics/goshawk-go/internal/store"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	hashPassword := flag.String("hash-password", "",
		"print an argon2id hash of the given password for GOSHAWK_ADMIN_PASSWORD_HASH and exit")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := auth.HashArgon2(*hashPassword)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}
		fmt.Println(hash)
		return nil
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("starting goshawk", "version", appVersion, "commit", appGitCommit, "env", cfg.Env)

	// Initialize database when configured. Without one the repositories run
	// on JSON documents and images land on disk or in the blob bucket.
	var db *sql.DB
	if cfg.UseDatabase() {
		slog.Info("initializing database")
		db, err = store.NewDB(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("initializing database: %w", err)
		}
		defer func(db *sql.DB) {
			if err := db.Close(); err != nil {
				slog.Error("error closing database connection", "error", err)
			}
		}(db)

		slog.Info("running database migrations")
		if err := store.Migrate(db); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database ready")
	} else {
		slog.Info("no database configured, using file storage", "data_dir", cfg.DataDir)
	}

	// Repositories
	contentRepo := repo.NewContent(db, cfg.DataDir, logger)
	servicesRepo := repo.NewServices(db, cfg.DataDir, logger)
	testimonialsRepo := repo.NewTestimonials(db, cfg.DataDir, logger)

	// Image storage backends
	var dbStore *storage.DatabaseStore
	if db != nil {
		dbStore = storage.NewDatabaseStore(db)
	}
	var blobStore *storage.BlobStore
	if cfg.BlobEnabled() {
		blobStore, err = storage.NewBlobStore(context.Background(), cfg)
		if err != nil {
			return fmt.Errorf("initializing blob storage: %w", err)
		}
		slog.Info("blob storage enabled", "bucket", cfg.BlobBucket)
	}
	images := storage.NewManager(dbStore, blobStore, storage.NewLocalStore(cfg.UploadsDir), logger)
	slog.Info("image storage ready", "backend", images.ActiveBackend())

	h := handler.New(cfg, db, contentRepo, servicesRepo, testimonialsRepo, images, logger)

	// Create router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(30 * time.Second))

	h.Register(r)

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // Longer to allow for uploads and slow connections
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
