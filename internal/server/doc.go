// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the eco-ideas HTTP API and the gRPC health service.
//
// It owns listener setup, signal handling and graceful shutdown of every
// enabled transport.
package server
