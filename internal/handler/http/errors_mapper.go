package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-hivemind/internal/essence"
	"github.com/MKhiriev/go-hivemind/internal/service"
	"github.com/MKhiriev/go-hivemind/internal/store"
	"github.com/MKhiriev/go-hivemind/internal/validators"
	"github.com/MKhiriev/go-hivemind/models"
)

var errorStatusMap = map[error]int{
	essence.ErrInvalidDigest:           http.StatusBadRequest,
	validators.ErrEmptyClientID:        http.StatusBadRequest,
	validators.ErrUnknownContentKind:   http.StatusBadRequest,
	models.ErrUnrecognizedControlValue: http.StatusBadRequest,
	service.ErrJournalLimitTooLarge:    http.StatusBadRequest,
	ErrEmptyControlValue:               http.StatusBadRequest,
	ErrInvalidLimit:                    http.StatusBadRequest,

	store.ErrJournalDisabled:    http.StatusNotFound,
	store.ErrJournalNotMigrated: http.StatusServiceUnavailable,

	essence.ErrUnsupportedValueKind: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:       http.StatusInternalServerError,
	store.ErrExecutingQuery:         http.StatusInternalServerError,
	store.ErrScanningRows:           http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
