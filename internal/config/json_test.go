package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := writeTempJSONConfig(t, `{
		"app": {"token_sign_key": "jwt", "token_issuer": "hive", "hash_key": "h", "version": "0.1.0"},
		"server": {"http_address": ":8000", "grpc_address": ":9000", "request_timeout": "30s", "max_workers": 3, "max_queued_tasks": 7},
		"storage": {"db": {"dsn": "postgres://localhost/hive"}},
		"adapter": {"http_address": "http://hive", "request_timeout": 1000000000, "requested_type": "application/json"},
		"workers": {"sync_interval": "2s", "retention_interval": "5m"},
		"log": {"level": "error"}
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "jwt", cfg.App.TokenSignKey)
	assert.Equal(t, "hive", cfg.App.TokenIssuer)
	assert.Equal(t, "h", cfg.App.HashKey)
	assert.Equal(t, "0.1.0", cfg.App.Version)
	assert.Equal(t, ":8000", cfg.Server.HTTPAddress)
	assert.Equal(t, ":9000", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3, cfg.Server.MaxWorkers)
	assert.Equal(t, 7, cfg.Server.MaxQueuedTasks)
	assert.Equal(t, "postgres://localhost/hive", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://hive", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RetentionInterval)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed", body: `{"server": `},
		{name: "bad duration", body: `{"server": {"request_timeout": "later"}}`},
		{name: "duration of wrong kind", body: `{"workers": {"sync_interval": true}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseJSON(writeTempJSONConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
