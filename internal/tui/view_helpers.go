// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/eco-ideas/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: sair"))

	return b.String()
}

// renderMenu draws a numbered single-column table with a cursor.
func renderMenu(header string, items []string, idx int) string {
	var b strings.Builder

	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(items))) + 2
	colWidth := lipgloss.Width(header)
	for _, item := range items {
		colWidth = max(colWidth, lipgloss.Width(item))
	}

	b.WriteString(fmt.Sprintf("%-*s │ %s\n", idColWidth, "#", header))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", colWidth))
	b.WriteString("\n")

	for i, item := range items {
		b.WriteString(fmt.Sprintf("%-*s │ %s\n", idColWidth, cursorCell(i, idx), item))
	}
	return strings.TrimRight(b.String(), "\n")
}

func cursorCell(i, idx int) string {
	cursor := " "
	if i == idx {
		cursor = ">"
	}
	return fmt.Sprintf("%s %d", cursor, i+1)
}

// moveCursor applies up/down keys to idx within [0, n).
func moveCursor(key string, idx, n int) int {
	switch key {
	case "up", "k":
		if idx > 0 {
			idx--
		}
	case "down", "j":
		if idx < n-1 {
			idx++
		}
	}
	return clampIndex(idx, n)
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// progressBar renders percent (0..100) as a bar of width cells.
func progressBar(percent, width int) string {
	percent = min(max(percent, 0), 100)
	full := percent * width / 100
	return barFullStyle.Render(strings.Repeat("█", full)) +
		barEmptyStyle.Render(strings.Repeat("░", width-full))
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02/01/2006 15:04")
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func categoryLabel(reg models.CategoryRegistry, c models.Category) string {
	if reg == nil {
		return string(c)
	}
	return reg.Label(c)
}
