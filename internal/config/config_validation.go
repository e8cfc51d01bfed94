// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged hive server configuration.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.MaxWorkers < 1 || cfg.Server.MaxQueuedTasks < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.RetentionInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.TokenSignKey != "" && cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}

func (cfg *SynchronizerConfig) validate() error {
	if cfg.DSN == "" || strings.Contains(cfg.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.HiveAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}
