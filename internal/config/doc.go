// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates eco-ideas configuration.
//
// Sources, from highest to lowest priority:
//  1. Environment variables (a .env file named by ENV_FILE, or ./.env, is
//     loaded first without overriding variables already set)
//  2. Command-line flags
//  3. JSON config file (-c / CONFIG)
//  4. Built-in defaults
//
// [GetStructuredConfig] returns the validated server configuration and
// [GetClientConfig] the client view.
package config
