// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/eco-ideas/internal/config"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/utils"
)

// FallbackReply is returned when the model answers without any candidate.
const FallbackReply = "Desculpe, não consegui gerar uma resposta."

const sustainabilityContext = `Você é um assistente especializado em sustentabilidade para uma plataforma de eco-ideias. Seu papel é:

1. ORIENTAR sobre categorias de impacto:
   - Conservação de Água
   - Eficiência Energética
   - Redução de Resíduos
   - Transporte Sustentável
   - Materiais Sustentáveis
   - Biodiversidade

2. SUGERIR melhorias e alternativas sustentáveis
3. EXPLICAR impactos ambientais e benefícios
4. FORNECER dados e estatísticas quando relevante
5. AUXILIAR na quantificação de impactos (litros, kWh, kg, toneladas, %, unidades)

Seja sempre positivo, educativo e prático. Responda em português brasileiro.`

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// chatService is a stateless proxy to the Gemini generateContent API.
type chatService struct {
	client *utils.HTTPClient
	apiKey string
	model  string
	logger *logger.Logger
}

func NewChatService(cfg config.AI, logger *logger.Logger) ChatService {
	return &chatService{
		client: utils.NewHTTPClient(cfg.Endpoint, cfg.Timeout),
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		logger: logger,
	}
}

// Chat sends message prefixed with the sustainability context and returns
// the first candidate's text.
func (s *chatService) Chat(ctx context.Context, message string) (string, error) {
	log := logger.FromContext(ctx)

	if s.apiKey == "" {
		log.Error().Msg("assistant API key is not configured")
		return "", ErrAssistantNotConfigured
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyChatMessage
	}

	body := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: sustainabilityContext + "\n\nPergunta do usuário: " + message}},
		}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
	}

	var out geminiResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", s.apiKey).
		SetPathParam("model", s.model).
		SetBody(body).
		SetResult(&out).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		log.Err(err).Msg("assistant request failed")
		return "", fmt.Errorf("%w: %w", ErrAssistantFailed, err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("assistant answered with error")
		return "", fmt.Errorf("%w: status %d", ErrAssistantFailed, resp.StatusCode())
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 || out.Candidates[0].Content.Parts[0].Text == "" {
		return FallbackReply, nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
