// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// hive server and the synchronizer.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds signing keys and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings. The hive server uses the DSN for
	// its PostgreSQL exchange journal, the synchronizer for its SQLite file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener addresses and worker pool sizing.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the synchronizer's view of the hive endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds intervals of background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HS256 secret used to verify manager tokens.
	// Manager routes are unauthenticated when empty.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of manager tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// HashKey is the HMAC key used for the HashSHA256 integrity header.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network, timeout and concurrency settings of the hive.
type Server struct {
	// HTTPAddress is the HTTP listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the gRPC listen address. The gRPC transport is
	// disabled when empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxWorkers is the number of goroutines serving background tasks.
	// Env: SERVER_MAX_WORKERS
	MaxWorkers int `env:"MAX_WORKERS"`

	// MaxQueuedTasks bounds the task queue. Tasks offered to a full queue
	// run on the caller's goroutine.
	// Env: SERVER_MAX_QUEUED_TASKS
	MaxQueuedTasks int `env:"MAX_QUEUED_TASKS"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is either a PostgreSQL connection string (hive journal) or a
	// SQLite file path (synchronizer resources).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the synchronizer's outbound transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the hive (e.g. "http://localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RequestedType is the payload media type announced next to every
	// digest. The hive echoes it when it asks this synchronizer for data.
	// Env: ADAPTER_REQUESTED_TYPE
	RequestedType string `env:"REQUESTED_TYPE"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SyncInterval is the synchronizer tick.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// RetentionInterval is how often the hive prunes per-client history.
	// Zero disables the retention worker.
	// Env: WORKERS_RETENTION_INTERVAL
	RetentionInterval time.Duration `env:"RETENTION_INTERVAL"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the hive server
// configuration from environment variables, flags, an optional JSON file and
// the built-in defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
