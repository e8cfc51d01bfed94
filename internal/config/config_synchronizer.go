package config

import (
	"fmt"
	"time"
)

// SynchronizerConfig is the synchronizer's view of [StructuredConfig].
type SynchronizerConfig struct {
	// HashKey signs outbound bodies with the HashSHA256 header when set.
	HashKey string
	// HiveAddress is the base URL of the hive.
	HiveAddress string
	// RequestTimeout bounds a single outbound request.
	RequestTimeout time.Duration
	// RequestedType is announced next to every digest.
	RequestedType string
	// DSN is the SQLite file holding local resources.
	DSN string
	// SyncInterval is the tick of the sync job.
	SyncInterval time.Duration
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetSynchronizerConfig builds and validates the synchronizer config from
// the merged structured configuration.
func GetSynchronizerConfig() (*SynchronizerConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	syncCfg := synchronizerView(cfg)
	return syncCfg, syncCfg.validate()
}

func synchronizerView(cfg *StructuredConfig) *SynchronizerConfig {
	return &SynchronizerConfig{
		HashKey:        cfg.App.HashKey,
		HiveAddress:    cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		RequestedType:  cfg.Adapter.RequestedType,
		DSN:            cfg.Storage.DB.DSN,
		SyncInterval:   cfg.Workers.SyncInterval,
		LogLevel:       cfg.Log.Level,
	}
}
