package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-hivemind/internal/essence"
	"github.com/MKhiriev/go-hivemind/internal/metrics"
	"github.com/MKhiriev/go-hivemind/internal/validators"
	"github.com/MKhiriev/go-hivemind/models"
)

// CoordinatorMetricsService counts submissions, actions and rejections.
type CoordinatorMetricsService struct {
	inner Coordinator
}

func NewCoordinatorMetricsService() CoordinatorWrapper {
	return &CoordinatorMetricsService{}
}

func (m *CoordinatorMetricsService) Submit(ctx context.Context, submission models.Submission) (models.Action, error) {
	metrics.ReportSubmission(submission.Content.Kind)

	action, err := m.inner.Submit(ctx, submission)
	if err != nil {
		metrics.ReportRejected(rejectionReason(err))
		return action, err
	}

	metrics.ReportAction(action.Kind)
	return action, nil
}

func (m *CoordinatorMetricsService) Wrap(coordinator Coordinator) Coordinator {
	m.inner = coordinator
	return m
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, essence.ErrInvalidDigest):
		return "invalid_digest"
	case errors.Is(err, validators.ErrEmptyClientID):
		return "empty_client_id"
	case errors.Is(err, validators.ErrUnknownContentKind):
		return "unknown_content_kind"
	default:
		return "other"
	}
}
