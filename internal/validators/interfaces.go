// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for submissions entering the
// coordinator.
//
// A Validator checks arbitrary values and can be scoped to a subset of named
// fields. Implementations are injected into services so transports and
// storage stay free of validation rules.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
