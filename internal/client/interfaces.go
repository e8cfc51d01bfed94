// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of a runnable synchronizer.
type Client interface {
	// Run starts the synchronizer and blocks until SIGTERM, SIGINT or
	// SIGQUIT.
	Run() error

	// RunContext blocks until ctx is done.
	RunContext(ctx context.Context) error
}
