package utils

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// NewTraceparent returns a fresh W3C traceparent of the form
// "00-<32 hex trace id>-<16 hex parent id>-00". Both ids come from random
// (version 4) UUIDs, which draw on crypto/rand.
func NewTraceparent() string {
	traceID := uuid.New()
	parentID := uuid.New()

	return fmt.Sprintf("00-%s-%s-00", hex.EncodeToString(traceID[:]), hex.EncodeToString(parentID[:8]))
}
