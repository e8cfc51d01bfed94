package grpc

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-hivemind/internal/utils"
	"github.com/MKhiriev/go-hivemind/models"
)

// Metadata keys of the Hive service.
const (
	MetadataTraceparent = "traceparent"
	MetadataContentType = "hive-content-type"
	MetadataStatus      = "hive-status"
)

// Values of the hive-status response header, matching the HTTP statuses
// 200, 204 and 409.
const (
	StatusOK        = "ok"
	StatusNoContent = "no-content"
	StatusConflict  = "conflict"
)

// Submit implements HiveServer. Identity and content type come from request
// metadata; the action is described in response header metadata and its
// body is the response message.
func (h *Handler) Submit(ctx context.Context, body []byte) ([]byte, error) {
	md, _ := metadata.FromIncomingContext(ctx)

	traceparent := lastValue(md, MetadataTraceparent)
	if traceparent == "" {
		traceparent = utils.NewTraceparent()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("traceparent", traceparent).Str("transport", "grpc")
	})
	ctx = l.WithContext(ctx)
	ctx = context.WithValue(ctx, utils.TraceparentCtxKey, traceparent)

	submission := models.Submission{
		ClientID: traceparent,
		Body:     body,
		Content:  models.DescribeContent(md.Get(MetadataContentType)...),
	}

	action, err := h.services.Coordinator.Submit(ctx, submission)
	if err != nil {
		return nil, status.Error(codeFromError(err), err.Error())
	}

	header := metadata.Pairs(MetadataTraceparent, traceparent)
	contentType, hiveStatus := describeAction(action)
	header.Set(MetadataStatus, hiveStatus)
	if contentType != "" {
		header.Set(MetadataContentType, contentType)
	}
	if err = grpc.SetHeader(ctx, header); err != nil {
		l.Warn().Err(err).Msg("failed to set response metadata")
	}

	return action.Body, nil
}

func describeAction(action models.Action) (contentType, hiveStatus string) {
	switch action.Kind {
	case models.ActionDeliverPayload:
		if action.MediaType == "" {
			return models.MediaTypeOther, StatusOK
		}
		return action.MediaType, StatusOK
	case models.ActionRequestFetch:
		if action.RequestedType != "" {
			return models.MediaTypeDigest + ", " + action.RequestedType, StatusOK
		}
		return models.MediaTypeDigest, StatusOK
	case models.ActionForceUpdate:
		return models.MediaTypeDigest, StatusConflict
	default:
		return "", StatusNoContent
	}
}

func lastValue(md metadata.MD, key string) string {
	values := md.Get(key)
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[len(values)-1])
}
