// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when a protected manager route
	// is called without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrEmptyControlValue is returned for a manager request without a body.
	ErrEmptyControlValue = errors.New("empty control value")

	// ErrInvalidLimit is returned for a non-numeric limit query parameter.
	ErrInvalidLimit = errors.New("invalid limit")
)
