package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/store"
	"github.com/MKhiriev/go-hivemind/models"
)

const (
	defaultJournalPage = 20
	maxJournalPage     = 500
)

type journalService struct {
	journal store.ExchangeJournal
	logger  *logger.Logger
}

func NewJournalService(journal store.ExchangeJournal, log *logger.Logger) JournalService {
	return &journalService{journal: journal, logger: log}
}

func (s *journalService) Recent(ctx context.Context, limit uint64) ([]models.Exchange, error) {
	if limit == 0 {
		limit = defaultJournalPage
	}
	if limit > maxJournalPage {
		return nil, fmt.Errorf("%w: %d > %d", ErrJournalLimitTooLarge, limit, maxJournalPage)
	}

	exchanges, err := s.journal.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("reading exchange journal: %w", err)
	}

	return exchanges, nil
}
