package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-hivemind/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// Coordinator decides, for every submission, what the submitting client
// must do next.
type Coordinator interface {
	// Submit validates and applies one submission and returns the action for
	// its sender. Validation errors leave the hive untouched.
	Submit(ctx context.Context, submission models.Submission) (models.Action, error)
}

// SessionManager resets the hive's state.
type SessionManager interface {
	// Clear dispatches to ClearTransientState or ClearAllState.
	Clear(ctx context.Context, mode models.ClearMode) error
	// ClearTransientState trims every client's history to its two most
	// recent entries.
	ClearTransientState(ctx context.Context)
	// ClearAllState forgets everything: the latest digest, history, pending
	// fetches, staged payloads and forced updates.
	ClearAllState(ctx context.Context)
}

// CoordinatorWrapper defines middleware composition for Coordinator.
// Implementations wrap an existing Coordinator to add behavior such as
// metrics or journaling.
type CoordinatorWrapper interface {
	Wrap(Coordinator) Coordinator
}

// JournalService reads the exchange journal.
type JournalService interface {
	// Recent returns up to limit exchanges, newest first. A zero limit means
	// the default page size.
	Recent(ctx context.Context, limit uint64) ([]models.Exchange, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Synchronizer keeps a local resource table in step with the hive.
type Synchronizer interface {
	// Sync performs one exchange with the hive: it sends either the staged
	// payload or the digest of local resources, and applies the reply.
	Sync(ctx context.Context) error
	// ClientID returns the traceparent assigned by the hive, empty before
	// the first exchange.
	ClientID() string
}

// SyncJob runs a Synchronizer periodically.
type SyncJob interface {
	// Start launches the background loop, replacing a running one.
	Start(ctx context.Context, interval time.Duration)
	// Stop cancels the loop and waits for it to exit.
	Stop()
}
