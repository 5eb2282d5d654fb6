// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"serialization failure wrapped", fmt.Errorf("tx: %w", pgError(pgerrcode.SerializationFailure)), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"syntax error", pgError(pgerrcode.SyntaxError), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_classify(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}

	assert.ErrorIs(t, db.classify(pgError(pgerrcode.CannotConnectNow)), ErrRetryable)
	assert.NotErrorIs(t, db.classify(pgError(pgerrcode.CheckViolation)), ErrRetryable)
	assert.NoError(t, db.classify(nil))
}
