package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/mock"
	"github.com/MKhiriev/go-hivemind/internal/store"
	"github.com/MKhiriev/go-hivemind/models"
)

func TestJournalService_Recent(t *testing.T) {
	page := []models.Exchange{{ID: 2, ClientID: "00-b"}, {ID: 1, ClientID: "00-a"}}

	tests := []struct {
		name      string
		limit     uint64
		wantLimit uint64
		result    []models.Exchange
		storeErr  error
		wantErr   error
	}{
		{name: "zero means default page", limit: 0, wantLimit: defaultJournalPage, result: page},
		{name: "explicit limit", limit: 2, wantLimit: 2, result: page},
		{name: "upper bound accepted", limit: maxJournalPage, wantLimit: maxJournalPage, result: page},
		{name: "limit too large", limit: maxJournalPage + 1, wantErr: ErrJournalLimitTooLarge},
		{name: "journal disabled", limit: 5, wantLimit: 5, storeErr: store.ErrJournalDisabled, wantErr: store.ErrJournalDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			journal := mock.NewMockExchangeJournal(ctrl)
			if tt.wantLimit > 0 {
				journal.EXPECT().Recent(gomock.Any(), tt.wantLimit).Return(tt.result, tt.storeErr)
			}

			got, err := NewJournalService(journal, logger.Nop()).Recent(context.Background(), tt.limit)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.result, got)
		})
	}
}
