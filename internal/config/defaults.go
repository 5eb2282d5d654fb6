// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:     "eco-ideas",
			TokenDuration:   15 * time.Minute,
			RefreshDuration: 30 * 24 * time.Hour,
			Version:         "dev",
		},
		Storage: Storage{
			Files:   Files{PublicURL: "http://localhost:8080"},
			Objects: Objects{Bucket: "idea-attachments"},
			State:   State{DSN: "eco-ideas.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			MaxUploadSize:  10 << 20,
			SignInRate:     1,
			SignInBurst:    5,
			ChatRate:       0.2,
			ChatBurst:      3,
		},
		AI: AI{
			Endpoint: "https://generativelanguage.googleapis.com",
			Model:    "gemini-pro",
			Timeout:  30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			RefreshInterval: 10 * time.Minute,
		},
	}
}
