package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/utils"
)

// auth guards the manager routes with an HS256 bearer token issued for the
// configured issuer. Without a sign key the routes are open.
func (h *Handler) auth(next http.Handler) http.Handler {
	if h.tokenSignKey == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get(headerAuth)
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Msg("manager request without token")
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		subject, err := utils.ValidateAndParseJWTToken(token, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Warn().Err(err).Msg("manager token rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ManagerSubjectCtxKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
