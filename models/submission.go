package models

// Submission is one inbound exchange: a digest or a payload from a client.
type Submission struct {
	// ClientID is the client's traceparent.
	ClientID string
	// Body is the raw request body. The coordinator copies what it keeps.
	Body []byte
	// Content describes the body.
	Content ContentDescriptor
}
