package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/utils"
)

// withHashing verifies the HashSHA256 header of requests that carry one and
// signs every response body. It is a no-op without a hash key.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	if h.hashKey == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if got := r.Header.Get(headerHash); got != "" {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Msg("failed to read request body")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			want := hex.EncodeToString(utils.Hash(body))
			if !hmac.Equal([]byte(got), []byte(want)) {
				log.Warn().
					Str("hash from request", got).
					Str("hashed body", want).
					Msg("hashes are not equal")
				http.Error(w, ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
				return
			}
		}

		bw := &bufferedResponseWriter{ResponseWriter: w}
		next.ServeHTTP(bw, r)

		if bw.body.Len() > 0 {
			w.Header().Set(headerHash, hex.EncodeToString(utils.Hash(bw.body.Bytes())))
		}
		bw.flush()
	})
}
