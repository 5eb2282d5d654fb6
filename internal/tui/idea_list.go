// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/eco-ideas/models"
)

// ideaList is the cursor, table and detail rendering shared by the user's
// and the administrator's idea pages.
type ideaList struct {
	idx      int
	expanded bool
}

func (l *ideaList) selected(ideas []models.Idea) (models.Idea, bool) {
	if len(ideas) == 0 {
		return models.Idea{}, false
	}
	l.idx = clampIndex(l.idx, len(ideas))
	return ideas[l.idx], true
}

func (l *ideaList) move(key string, n int) {
	l.idx = moveCursor(key, l.idx, n)
}

func (l *ideaList) view(ideas []models.Idea, reg models.CategoryRegistry, withAuthor bool) string {
	if len(ideas) == 0 {
		return "Nenhuma ideia encontrada."
	}
	l.idx = clampIndex(l.idx, len(ideas))

	var b strings.Builder
	if withAuthor {
		fmt.Fprintf(&b, "%-5s │ %-28s │ %-14s │ %-11s │ %-16s │ %s\n", "#", "Título", "Categoria", "Status", "Autor", "Criada em")
	} else {
		fmt.Fprintf(&b, "%-5s │ %-28s │ %-14s │ %-11s │ %s\n", "#", "Título", "Categoria", "Status", "Criada em")
	}
	b.WriteString(strings.Repeat("─", 90))
	b.WriteString("\n")

	for i, idea := range ideas {
		fmt.Fprintf(&b, "%-5s │ %-28s │ %-14s │ %-11s │ ",
			cursorCell(i, l.idx),
			fitText(idea.Title, 28),
			fitText(categoryLabel(reg, idea.Category), 14),
			idea.Status.Label(),
		)
		if withAuthor {
			fmt.Fprintf(&b, "%-16s │ ", fitText(authorOrDash(idea.Author), 16))
		}
		b.WriteString(formatDate(idea.CreatedAt))
		b.WriteString("\n")
	}

	if l.expanded {
		b.WriteString("\n")
		b.WriteString(ideaDetail(ideas[l.idx], reg))
	}
	return strings.TrimRight(b.String(), "\n")
}

func ideaDetail(idea models.Idea, reg models.CategoryRegistry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Título:     %s\n", idea.Title)
	fmt.Fprintf(&b, "Categoria:  %s\n", categoryLabel(reg, idea.Category))
	fmt.Fprintf(&b, "Status:     %s\n", idea.Status.Label())
	fmt.Fprintf(&b, "Autor:      %s\n", authorOrDash(idea.Author))
	fmt.Fprintf(&b, "Impacto:    %s\n", dashIfEmpty(idea.Impact))
	fmt.Fprintf(&b, "Anexo:      %s\n", valueOrDash(idea.FileName))
	fmt.Fprintf(&b, "URL:        %s\n", valueOrDash(idea.FileURL))
	fmt.Fprintf(&b, "Descrição:\n%s", idea.Description)
	return b.String()
}

func authorOrDash(s string) string {
	if s == "" {
		return "Usuário"
	}
	return s
}

func dashIfEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
