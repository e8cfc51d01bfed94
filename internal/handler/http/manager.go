package http

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/utils"
	"github.com/MKhiriev/go-hivemind/models"
)

// clear resets the coordinator. The body is "inert" or "all".
func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("failed to read manager request body")
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		http.Error(w, ErrEmptyControlValue.Error(), statusFromError(ErrEmptyControlValue))
		return
	}

	mode, err := models.ParseClearMode(string(body))
	if err != nil {
		log.Warn().Err(err).Msg("manager request rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if err = h.services.Sessions.Clear(r.Context(), mode); err != nil {
		log.Err(err).Str("mode", mode.String()).Msg("failed to clear hive state")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	subject, _ := utils.GetManagerSubjectFromContext(r.Context())
	log.Info().Str("mode", mode.String()).Str("subject", subject).Msg("hive state cleared")

	w.WriteHeader(http.StatusOK)
}

// recentExchanges lists the newest journal entries, newest first.
func (h *Handler) recentExchanges(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, ErrInvalidLimit.Error(), statusFromError(ErrInvalidLimit))
			return
		}
		limit = n
	}

	exchanges, err := h.services.JournalService.Recent(r.Context(), limit)
	if err != nil {
		log.Err(err).Msg("failed to read exchange journal")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if exchanges == nil {
		exchanges = []models.Exchange{}
	}

	if _, err = utils.WriteJSON(w, exchanges, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write exchanges")
	}
}
