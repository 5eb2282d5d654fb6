// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/eco-ideas/internal/gate"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/service"
	"github.com/MKhiriev/eco-ideas/models"
)

// sessionEventsBuffer bounds the session changes waiting for the program.
const sessionEventsBuffer = 16

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Pages returns every page of the program keyed by path.
func (t *TUI) Pages(ctx context.Context) map[string]tea.Model {
	s := t.services
	return map[string]tea.Model{
		WelcomePath:      NewMenuModel(),
		gate.LoginPath:   NewLoginModel(ctx, s.Sessions),
		SignUpPath:       NewRegisterModel(ctx, s.Sessions),
		gate.UserHome:    NewDashboardModel(ctx, s),
		"/ideas":         NewIdeasModel(ctx, s),
		"/ideas/new":     NewIdeaFormModel(ctx, s),
		gate.AdminHome:   NewAdminModel(ctx, s),
		"/admin/ideas":   NewAdminIdeasModel(ctx, s),
		"/admin/goals":   NewAdminGoalsModel(ctx, s),
		"/admin/users":   NewAdminUsersModel(ctx, s),
		"/chat":          NewChatModel(ctx, s),
		"/notifications": NewNotificationsModel(ctx, s),
	}
}

// Run blocks until the user quits or ctx is cancelled. ErrUserQuit is
// returned when the user closed the program.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services.Sessions, t.Pages(ctx), t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	// Subscribers must not block: changes are queued and forwarded to the
	// program from a separate goroutine.
	events := make(chan service.SessionChange, sessionEventsBuffer)
	unsubscribe := t.services.Sessions.Subscribe(func(change service.SessionChange) {
		select {
		case events <- change:
		default:
			t.logger.Warn().Str("kind", string(change.Kind)).Msg("session change dropped, ui is busy")
		}
	})
	defer unsubscribe()

	forwardCtx, stopForward := context.WithCancel(ctx)
	defer stopForward()
	go func() {
		for {
			select {
			case <-forwardCtx.Done():
				return
			case change := <-events:
				program.Send(sessionChangedMsg{change: change})
			}
		}
	}()

	finalModel, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
