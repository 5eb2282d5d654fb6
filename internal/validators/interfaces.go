// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "context"

// Validator checks domain objects before they reach storage or the network.
type Validator interface {
	// Validate checks obj. When fields is empty every field of obj is
	// checked; otherwise only the named ones.
	Validate(ctx context.Context, obj any, fields ...string) error
}
