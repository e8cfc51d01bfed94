package config

import (
	"time"

	"github.com/MKhiriev/go-hivemind/models"
)

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "dev",
		},
		Server: Server{
			HTTPAddress:    ":8000",
			RequestTimeout: 30 * time.Second,
			MaxWorkers:     4,
			MaxQueuedTasks: 64,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
			RequestedType:  models.MediaTypeJSON,
		},
		Workers: Workers{
			SyncInterval: 5 * time.Second,
		},
		Log: Log{
			Level: "debug",
		},
	}
}
