package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/utils"
	"github.com/MKhiriev/go-hivemind/models"
)

// submit passes one synchronizer exchange to the coordinator and renders the
// resulting action.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("failed to read submission body")
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	clientID, _ := utils.GetTraceparentFromContext(ctx)
	submission := models.Submission{
		ClientID: clientID,
		Body:     body,
		Content:  models.DescribeContent(r.Header.Values(headerContentType)...),
	}

	action, err := h.services.Coordinator.Submit(ctx, submission)
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeAction(w, action)
}

// writeAction maps an action onto the response: None is 204, a delivered
// payload or a fetch request is 200 and a forced update is 409.
func writeAction(w http.ResponseWriter, action models.Action) {
	var status int

	switch action.Kind {
	case models.ActionDeliverPayload:
		mediaType := action.MediaType
		if mediaType == "" {
			mediaType = models.MediaTypeOther
		}
		w.Header().Set(headerContentType, mediaType)
		status = http.StatusOK

	case models.ActionRequestFetch:
		contentType := models.MediaTypeDigest
		if action.RequestedType != "" {
			contentType += ", " + action.RequestedType
		}
		w.Header().Set(headerContentType, contentType)
		status = http.StatusOK

	case models.ActionForceUpdate:
		w.Header().Set(headerContentType, models.MediaTypeDigest)
		status = http.StatusConflict

	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(status)
	w.Write(action.Body)
}
