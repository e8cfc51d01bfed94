package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-hivemind/internal/utils"
)

// withTraceparent settles the caller's identity. The last traceparent header
// wins; a missing or blank one is replaced by a freshly generated value. The
// result is echoed in the response and attached to the request logger.
func (h *Handler) withTraceparent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var traceparent string
		if values := r.Header.Values(headerTraceparent); len(values) > 0 {
			traceparent = strings.TrimSpace(values[len(values)-1])
		}
		if traceparent == "" {
			traceparent = utils.NewTraceparent()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("traceparent", traceparent)
		})

		ctx := l.WithContext(r.Context())
		ctx = context.WithValue(ctx, utils.TraceparentCtxKey, traceparent)

		w.Header().Set(headerTraceparent, traceparent)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
