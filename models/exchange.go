package models

import "time"

// Exchange is a journal record of one completed submission.
type Exchange struct {
	ID          int64     `json:"id"`
	ClientID    string    `json:"client_id"`
	ContentKind string    `json:"content_kind"`
	Action      string    `json:"action"`
	BodySize    int       `json:"body_size"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"created_at"`
}
