package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/mock/servicemock"
	"github.com/MKhiriev/go-hivemind/internal/service"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestNewApp_RequiresSyncJob(t *testing.T) {
	_, err := NewApp(nil, nil, time.Second, logger.Nop())
	assert.ErrorIs(t, err, ErrNoSyncJob)

	_, err = NewApp(&service.SynchronizerServices{}, nil, time.Second, logger.Nop())
	assert.ErrorIs(t, err, ErrNoSyncJob)
}

func TestApp_RunContext(t *testing.T) {
	closeErr := errors.New("disk full")

	tests := []struct {
		name     string
		closeErr error
	}{
		{name: "clean shutdown"},
		{name: "storage close failure", closeErr: closeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			job := servicemock.NewMockSyncJob(ctrl)
			synchronizer := servicemock.NewMockSynchronizer(ctrl)

			ctx, cancel := context.WithCancel(context.Background())

			gomock.InOrder(
				job.EXPECT().Start(ctx, 3*time.Second).Do(func(context.Context, time.Duration) { cancel() }),
				job.EXPECT().Stop(),
			)
			synchronizer.EXPECT().ClientID().Return("00-abc")

			closed := false
			storage := closerFunc(func() error {
				closed = true
				return tt.closeErr
			})

			app, err := NewApp(&service.SynchronizerServices{Synchronizer: synchronizer, SyncJob: job}, storage, 3*time.Second, logger.Nop())
			require.NoError(t, err)

			err = app.RunContext(ctx)
			assert.True(t, closed)
			if tt.closeErr != nil {
				assert.ErrorIs(t, err, tt.closeErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
