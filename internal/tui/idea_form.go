// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/eco-ideas/internal/gate"
	"github.com/MKhiriev/eco-ideas/internal/service"
	"github.com/MKhiriev/eco-ideas/models"
)

// Field order of the idea form. The category row is a selector, the others
// are text inputs.
const (
	fieldTitle = iota
	fieldDescription
	fieldCategory
	fieldImpact
	fieldAttachment
	fieldCount
)

// IdeaFormModel submits a new idea with an optional attachment read from a
// local file.
type IdeaFormModel struct {
	ctx      context.Context
	services *service.ClientServices

	inputs     map[int]*textinput.Model
	category   int
	focus      int
	submitting bool
	status     statusLine
}

func NewIdeaFormModel(ctx context.Context, services *service.ClientServices) *IdeaFormModel {
	title := newInput("título da ideia", 200, false)
	description := newInput("o que muda e como", 2000, false)
	impactIn := newInput("ex.: 200 litros por semana", 200, false)
	attachment := newInput("caminho do arquivo (opcional)", 1024, false)

	m := &IdeaFormModel{
		ctx:      ctx,
		services: services,
		inputs: map[int]*textinput.Model{
			fieldTitle:       &title,
			fieldDescription: &description,
			fieldImpact:      &impactIn,
			fieldAttachment:  &attachment,
		},
	}
	m.setFocus(fieldTitle)
	return m
}

func (m *IdeaFormModel) Init() tea.Cmd {
	m.status = statusLine{}
	m.submitting = false
	return textinput.Blink
}

func (m *IdeaFormModel) setFocus(field int) {
	for f, in := range m.inputs {
		if f == field {
			in.Focus()
		} else {
			in.Blur()
		}
	}
	m.focus = field
}

func (m *IdeaFormModel) reset() {
	for _, in := range m.inputs {
		in.SetValue("")
	}
	m.category = 0
	m.setFocus(fieldTitle)
}

func (m *IdeaFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ideaCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.status = newStatus(msg.err, "")
			return m, nil
		}
		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: "/ideas", Payload: notice{Text: "Ideia \"" + msg.idea.Title + "\" enviada para análise."}}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, navigate(gate.UserHome)
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			draft, closer, err := m.draft()
			if err != nil {
				m.status = errorStatus(err.Error())
				return m, nil
			}
			m.status = statusLine{}
			m.submitting = true
			return m, m.cmdCreate(draft, closer)
		}

		if m.focus == fieldCategory {
			n := len(models.Categories)
			switch msg.String() {
			case "left", "h":
				m.category = (m.category - 1 + n) % n
			case "right", "l", " ":
				m.category = (m.category + 1) % n
			}
			return m, nil
		}
	}

	if in, ok := m.inputs[m.focus]; ok {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

// draft builds the idea from the form. The returned closer releases the
// attachment file and is never nil.
func (m *IdeaFormModel) draft() (models.IdeaDraft, func(), error) {
	draft := models.IdeaDraft{
		Title:       strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Description: strings.TrimSpace(m.inputs[fieldDescription].Value()),
		Category:    models.Categories[m.category],
		Impact:      strings.TrimSpace(m.inputs[fieldImpact].Value()),
	}

	path := strings.TrimSpace(m.inputs[fieldAttachment].Value())
	if path == "" {
		return draft, func() {}, nil
	}

	upload, closer, err := openAttachment(path)
	if err != nil {
		return models.IdeaDraft{}, nil, err
	}
	draft.Attachment = upload
	return draft, closer, nil
}

func openAttachment(path string) (*models.AttachmentUpload, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("não foi possível abrir o arquivo %q", path)
	}
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%q não é um arquivo", path)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	upload := &models.AttachmentUpload{
		FileName:    filepath.Base(path),
		ContentType: contentType,
		Size:        info.Size(),
		Body:        f,
	}
	return upload, func() { _ = f.Close() }, nil
}

func (m *IdeaFormModel) cmdCreate(draft models.IdeaDraft, closer func()) tea.Cmd {
	ctx, ideas := m.ctx, m.services.Ideas
	return func() tea.Msg {
		defer closer()
		idea, err := ideas.Create(ctx, draft)
		return ideaCreatedMsg{idea: idea, err: err}
	}
}

func (m *IdeaFormModel) View() string {
	reg := m.services.Goals.Registry()

	row := func(field int, label, value string) string {
		cursor := " "
		if m.focus == field {
			cursor = ">"
		}
		return fmt.Sprintf("%s %-18s │ %s\n", cursor, label, value)
	}

	var b strings.Builder
	b.WriteString(row(fieldTitle, "Título", m.inputs[fieldTitle].View()))
	b.WriteString(row(fieldDescription, "Descrição", m.inputs[fieldDescription].View()))
	b.WriteString(row(fieldCategory, "Categoria", "◀ "+categoryLabel(reg, models.Categories[m.category])+" ▶"))
	b.WriteString(row(fieldImpact, "Impacto estimado", m.inputs[fieldImpact].View()))
	b.WriteString(row(fieldAttachment, "Anexo", m.inputs[fieldAttachment].View()))

	if m.submitting {
		b.WriteString("\n[Enviando...]")
	} else {
		b.WriteString("\n[Enviar ideia]")
	}
	if s := m.status.View(); s != "" {
		b.WriteString("\n\n")
		b.WriteString(s)
	}

	return renderPage("NOVA IDEIA", b.String(),
		"tab/↑/↓: campo │ ←/→: categoria │ enter: enviar │ esc: voltar")
}
