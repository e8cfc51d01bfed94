package models

import "encoding/json"

// Resource is one digest record. ID and Version hold uint64 for decimal
// fields, []byte for anything else, and nil when the field is absent.
type Resource struct {
	ID      any
	Version any
}

// HiveResource is a resource as held by a synchronizer and exchanged as a
// JSON payload.
type HiveResource struct {
	ID      uint64          `json:"id"`
	Version uint64          `json:"version"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// DigestEntry returns the digest record of r.
func (r HiveResource) DigestEntry() Resource {
	return Resource{ID: r.ID, Version: r.Version}
}
