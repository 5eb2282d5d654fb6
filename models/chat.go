// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChatRequest is the body accepted by the assistant endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries either the assistant reply or an error message.
type ChatResponse struct {
	Reply string `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}
