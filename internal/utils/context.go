// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and traceparent generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceparentCtxKey is the key used to store the caller's traceparent, which
// doubles as its client identity.
//
//	ctx := context.WithValue(ctx, utils.TraceparentCtxKey, traceparent)
var TraceparentCtxKey = contextKey("traceparent")

// ManagerSubjectCtxKey holds the subject of a verified manager token.
var ManagerSubjectCtxKey = contextKey("managerSubject")

// GetTraceparentFromContext retrieves the traceparent from the context.
// ok is false when the value is missing, empty or of an unexpected type.
func GetTraceparentFromContext(ctx context.Context) (string, bool) {
	traceparent, ok := ctx.Value(TraceparentCtxKey).(string)
	return traceparent, ok && traceparent != ""
}

// GetManagerSubjectFromContext retrieves the manager token subject.
func GetManagerSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(ManagerSubjectCtxKey).(string)
	return subject, ok
}
