// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

// Package config loads application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerHost string `env:"GOSHAWK_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"GOSHAWK_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"GOSHAWK_ENV" envDefault:"development"`
	LogLevel   string `env:"GOSHAWK_LOG_LEVEL" envDefault:"info"`

	// Admin credentials. The defaults match the shipped admin panel and must
	// be overridden in production. When AdminPasswordHash is set it takes
	// precedence over AdminPassword and is verified as argon2id.
	AdminUsername     string `env:"GOSHAWK_ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword     string `env:"GOSHAWK_ADMIN_PASSWORD" envDefault:"admin123"`
	AdminPasswordHash string `env:"GOSHAWK_ADMIN_PASSWORD_HASH"`

	// Persistence. When DatabaseURL is empty the repositories fall back to
	// JSON documents under DataDir.
	DatabaseURL string `env:"GOSHAWK_DATABASE_URL"`
	DataDir     string `env:"GOSHAWK_DATA_DIR" envDefault:"./data"`
	UploadsDir  string `env:"GOSHAWK_UPLOADS_DIR" envDefault:"./public/uploads"`

	// Blob storage configuration (S3-compatible). Bucket plus both keys must
	// be set for the backend to be considered available.
	BlobEndpoint  string `env:"GOSHAWK_BLOB_ENDPOINT"`
	BlobRegion    string `env:"GOSHAWK_BLOB_REGION" envDefault:"us-east-1"`
	BlobBucket    string `env:"GOSHAWK_BLOB_BUCKET"`
	BlobAccessKey string `env:"GOSHAWK_BLOB_ACCESS_KEY"`
	BlobSecretKey string `env:"GOSHAWK_BLOB_SECRET_KEY"`
	BlobPublicURL string `env:"GOSHAWK_BLOB_PUBLIC_URL"` // public base URL for stored objects
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseDatabase returns true if a database connection is configured.
func (c Config) UseDatabase() bool {
	return c.DatabaseURL != ""
}

// BlobEnabled returns true if blob storage is fully configured.
func (c Config) BlobEnabled() bool {
	return c.BlobBucket != "" && c.BlobAccessKey != "" && c.BlobSecretKey != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
