// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/eco-ideas/internal/service"
)

// ErrUserQuit is returned by Run when the user closes the program.
var ErrUserQuit = errors.New("usuário saiu do programa")

// statusLine is the single line shown after a user action: ok when err is
// nil, the human-readable reason otherwise.
type statusLine struct {
	text  string
	isErr bool
}

func newStatus(err error, ok string) statusLine {
	if err != nil {
		return statusLine{text: service.Reason(err), isErr: true}
	}
	return statusLine{text: ok}
}

func errorStatus(text string) statusLine {
	return statusLine{text: text, isErr: true}
}

func (s statusLine) View() string {
	switch {
	case s.text == "":
		return ""
	case s.isErr:
		return errorStyle.Render("Erro: " + s.text)
	default:
		return okStyle.Render("OK: " + s.text)
	}
}
