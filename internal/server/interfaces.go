// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle shared by every transport in this package.
type Server interface {
	// RunServer serves until ctx is cancelled or the process receives a stop
	// signal, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops serving and waits for in-flight requests up to the
	// shutdown timeout.
	Shutdown(ctx context.Context) error
}
