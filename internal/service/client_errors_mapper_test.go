// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/eco-ideas/internal/adapter"
	"github.com/MKhiriev/eco-ideas/internal/app"
	"github.com/MKhiriev/eco-ideas/internal/validators"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"transport", fmt.Errorf("get: %w", adapter.ErrTransport), ErrBackendUnavailable},
		{"decode", adapter.ErrDecodeResponse, ErrBackendUnavailable},
		{"500", adapter.NewStatusError(http.StatusInternalServerError, ""), ErrBackendUnavailable},
		{"503 generic", adapter.NewStatusError(http.StatusServiceUnavailable, app.MsgServiceUnavailable), ErrBackendUnavailable},
		{"503 chat", adapter.NewStatusError(http.StatusServiceUnavailable, app.MsgChatNotConfigured), ErrAssistantUnavailable},
		{"502", adapter.NewStatusError(http.StatusBadGateway, ""), ErrAssistantUnavailable},
		{"400", adapter.NewStatusError(http.StatusBadRequest, ""), validators.ErrValidation},
		{"413", adapter.NewStatusError(http.StatusRequestEntityTooLarge, ""), validators.ErrValidation},
		{"401 credentials", adapter.NewStatusError(http.StatusUnauthorized, app.MsgInvalidLoginPassword), ErrInvalidCredentials},
		{"401 token", adapter.NewStatusError(http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid), ErrNotAuthenticated},
		{"403", adapter.NewStatusError(http.StatusForbidden, ""), ErrForbidden},
		{"404", adapter.NewStatusError(http.StatusNotFound, ""), ErrNotFound},
		{"409 email", adapter.NewStatusError(http.StatusConflict, app.MsgEmailAlreadyExists), ErrEmailTaken},
		{"409 other", adapter.NewStatusError(http.StatusConflict, app.MsgStatusTransition), ErrConflict},
		{"429", adapter.NewStatusError(http.StatusTooManyRequests, ""), ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
	other := errors.New("boom")
	assert.Same(t, other, mapAdapterError(other))
}

func TestReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("%w: %w", ErrInsertFailed, ErrBackendUnavailable), "Erro ao enviar a ideia. Tente novamente."},
		{fmt.Errorf("%w: %w", ErrUploadFailed, ErrBackendUnavailable), "Erro ao enviar o arquivo. Tente novamente."},
		{fmt.Errorf("%w: %w", ErrInsertFailed, validators.ErrEmptyTitle), "O título é obrigatório."},
		{validators.ErrShortPassword, "A senha deve ter pelo menos 6 caracteres."},
		{ErrEmailTaken, "Este email já está cadastrado."},
		{ErrRateLimited, "Muitas tentativas. Aguarde um momento."},
		{errors.New("boom"), "Erro inesperado."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Reason(tt.err))
	}
}
