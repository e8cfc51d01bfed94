// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// hive.
//
// [HiveAdapter] carries a synchronizer's submissions; [ManagerAdapter]
// drives the hive's manager routes. Both ship as HTTP/REST implementations
// built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling. The protocol statuses 200, 204 and 409 are not errors: they come
// back as a [models.Reply].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-hivemind/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// HiveAdapter sends submissions to the hive on behalf of one client.
type HiveAdapter interface {
	// SetClientID fixes the traceparent sent with every later request.
	SetClientID(clientID string)

	// ClientID returns the traceparent in use, empty until the hive assigned
	// one or SetClientID was called.
	ClientID() string

	// SendDigest submits a digest. A non-empty requestedType is announced as
	// the payload media type this client wants back.
	SendDigest(ctx context.Context, digest []byte, requestedType string) (models.Reply, error)

	// SendPayload submits resource data answering a fetch request.
	SendPayload(ctx context.Context, payload []byte, mediaType string) (models.Reply, error)
}

// ManagerAdapter calls the hive's manager routes.
type ManagerAdapter interface {
	// Clear resets the hive's state.
	Clear(ctx context.Context, mode models.ClearMode) error

	// RecentExchanges lists the newest journal entries.
	RecentExchanges(ctx context.Context, limit uint64) ([]models.Exchange, error)
}
