// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the eco-ideas server.
//
// It wires routes, request handlers and middleware. Tracing, access logging,
// authentication, the administrator check, rate limiting and response
// compression are handled here before requests reach the service layer.
// Every error response has the form {"error": message} with a message from
// package app.
package http
