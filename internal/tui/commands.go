// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/eco-ideas/internal/service"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func cmdRefreshIdeas(ctx context.Context, ideas service.IdeaCache) tea.Cmd {
	return func() tea.Msg {
		return ideasLoadedMsg{err: ideas.Refresh(ctx)}
	}
}

func cmdLoadGoals(ctx context.Context, goals service.GoalStore) tea.Cmd {
	return func() tea.Msg {
		return goalsLoadedMsg{err: goals.Load(ctx)}
	}
}

func cmdSignOut(ctx context.Context, sessions service.SessionStore) tea.Cmd {
	return func() tea.Msg {
		// revocation is best effort, the local session always ends
		_ = sessions.SignOut(ctx)
		return signOutDoneMsg{}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

// principalName returns the display name of the signed-in principal.
func principalName(sessions service.SessionStore) string {
	if p, ok := sessions.CurrentPrincipal(); ok && p.Name != "" {
		return p.Name
	}
	return "-"
}

func copyStatus(err error) statusLine {
	if err != nil {
		return errorStatus("Não foi possível copiar para a área de transferência.")
	}
	return statusLine{text: "URL do anexo copiada."}
}
