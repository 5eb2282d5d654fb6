// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrUnknownValue is returned when a raw backend value does not map to any
// known enumeration member (role, status, category or period).
var ErrUnknownValue = errors.New("unknown enumeration value")
