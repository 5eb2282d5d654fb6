// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every field error below.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle       = fmt.Errorf("%w: title is required", ErrValidation)
	ErrEmptyDescription = fmt.Errorf("%w: description is required", ErrValidation)
	ErrInvalidCategory  = fmt.Errorf("%w: invalid category", ErrValidation)
	ErrInvalidStatus    = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidPeriod    = fmt.Errorf("%w: invalid period", ErrValidation)
	ErrInvalidGoalValue = fmt.Errorf("%w: goal value must be a positive number", ErrValidation)
	ErrEmptyEmail       = fmt.Errorf("%w: email is required", ErrValidation)
	ErrShortPassword    = fmt.Errorf("%w: password is too short", ErrValidation)
	ErrInvalidRole      = fmt.Errorf("%w: invalid role", ErrValidation)
	ErrEmptyFileName    = fmt.Errorf("%w: file name is required", ErrValidation)
	ErrForeignFile      = fmt.Errorf("%w: attachment was not uploaded by the author", ErrValidation)
)
