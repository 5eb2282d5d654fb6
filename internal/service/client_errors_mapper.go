// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/eco-ideas/internal/adapter"
	"github.com/MKhiriev/eco-ideas/internal/app"
	"github.com/MKhiriev/eco-ideas/internal/validators"
)

// ErrRateLimited is returned when the server throttled the request.
var ErrRateLimited = errors.New("rate limited")

// mapAdapterError translates the adapter's transport error into a client
// business error. The adapter error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.Message(err)

	var kind error
	switch {
	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrServiceUnavailable) && msg != app.MsgChatNotConfigured,
		errors.Is(err, adapter.ErrDecodeResponse),
		errors.Is(err, adapter.ErrUnexpectedStatus):
		kind = ErrBackendUnavailable

	case errors.Is(err, adapter.ErrServiceUnavailable), errors.Is(err, adapter.ErrBadGateway):
		kind = ErrAssistantUnavailable

	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrPayloadTooLarge):
		kind = validators.ErrValidation

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidLoginPassword {
			kind = ErrInvalidCredentials
		} else {
			kind = ErrNotAuthenticated
		}

	case errors.Is(err, adapter.ErrForbidden):
		kind = ErrForbidden

	case errors.Is(err, adapter.ErrNotFound):
		kind = ErrNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgEmailAlreadyExists {
			kind = ErrEmailTaken
		} else {
			kind = ErrConflict
		}

	case errors.Is(err, adapter.ErrTooManyRequests):
		kind = ErrRateLimited

	default:
		return err
	}

	return fmt.Errorf("%w: %w", kind, err)
}

// Reason returns the message shown to the user for err, in Portuguese.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""

	case errors.Is(err, ErrUploadFailed):
		if errors.Is(err, validators.ErrValidation) {
			return "Arquivo inválido ou muito grande"
		}
		return "Erro ao enviar o arquivo. Tente novamente."
	case errors.Is(err, ErrInsertFailed) && !errors.Is(err, validators.ErrValidation):
		return "Erro ao enviar a ideia. Tente novamente."

	case errors.Is(err, validators.ErrEmptyTitle):
		return "O título é obrigatório."
	case errors.Is(err, validators.ErrEmptyDescription):
		return "A descrição é obrigatória."
	case errors.Is(err, validators.ErrInvalidCategory):
		return "Selecione uma categoria válida."
	case errors.Is(err, validators.ErrEmptyEmail):
		return "Informe um email válido."
	case errors.Is(err, validators.ErrShortPassword):
		return fmt.Sprintf("A senha deve ter pelo menos %d caracteres.", validators.MinPasswordLength)
	case errors.Is(err, validators.ErrInvalidGoalValue):
		return "O valor da meta deve ser maior que zero."
	case errors.Is(err, validators.ErrValidation):
		return "Por favor, preencha todos os campos obrigatórios."

	case errors.Is(err, ErrInvalidCredentials):
		return "Email ou senha incorretos."
	case errors.Is(err, ErrEmailTaken):
		return "Este email já está cadastrado."
	case errors.Is(err, ErrNotAuthenticated):
		return "Você precisa estar logado para continuar."
	case errors.Is(err, ErrForbidden):
		return "Acesso negado."
	case errors.Is(err, ErrNotFound):
		return "Registro não encontrado."
	case errors.Is(err, ErrConflict):
		return "Esta alteração não é permitida."
	case errors.Is(err, ErrRateLimited):
		return "Muitas tentativas. Aguarde um momento."
	case errors.Is(err, ErrAssistantUnavailable):
		return "Não foi possível obter resposta do assistente. Tente novamente."
	case errors.Is(err, ErrBackendUnavailable):
		return "Erro de conexão com o servidor. Tente novamente."

	default:
		return "Erro inesperado."
	}
}
