// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the server's one-shot startup jobs.
//
// Each Worker runs once, in registration order, before the transports start.
// Worker failures are logged and never stop the server.
package workers

import "context"

// Worker is a background job run at startup.
type Worker interface {
	// Name identifies the worker in logs.
	Name() string
	Run(ctx context.Context) error
}
