// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/eco-ideas/internal/config"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/service"
	"github.com/MKhiriev/eco-ideas/internal/tui"
)

type uiFunc func(ctx context.Context) error

func (f uiFunc) Run(ctx context.Context) error { return f(ctx) }

type ideasStub struct {
	service.IdeaCache
	events *[]string
}

func (s ideasStub) Watch(context.Context) func() {
	*s.events = append(*s.events, "watch")
	return func() { *s.events = append(*s.events, "unwatch") }
}

func (s ideasStub) Wait() { *s.events = append(*s.events, "ideas wait") }

type sessionsStub struct {
	service.SessionStore
	events *[]string
}

func (s sessionsStub) Wait() { *s.events = append(*s.events, "sessions wait") }

type refreshStub struct {
	events   *[]string
	interval time.Duration
}

func (r *refreshStub) Start(_ context.Context, interval time.Duration) {
	r.interval = interval
	*r.events = append(*r.events, "start")
}

func (r *refreshStub) Stop() { *r.events = append(*r.events, "stop") }

func newTestApp(t *testing.T, ui UI) (*App, *[]string, *refreshStub) {
	t.Helper()

	events := &[]string{}
	refresh := &refreshStub{events: events}
	services := &service.ClientServices{
		Sessions:   sessionsStub{events: events},
		Ideas:      ideasStub{events: events},
		RefreshJob: refresh,
	}

	app, err := NewApp(services, ui, config.ClientWorkers{RefreshInterval: 3 * time.Minute}, logger.Nop())
	require.NoError(t, err)
	return app, events, refresh
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr bool
	}{
		{name: "clean exit"},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: errors.New("terminal gone"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var app *App
			var events *[]string
			app, events, refresh := newTestApp(t, uiFunc(func(ctx context.Context) error {
				*events = append(*events, "ui")
				return tt.uiErr
			}))

			err := app.Run(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.uiErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, []string{"watch", "start", "ui", "stop", "unwatch", "ideas wait", "sessions wait"}, *events)
			assert.Equal(t, 3*time.Minute, refresh.interval)
		})
	}
}

func TestApp_UIGetsLoggerInContext(t *testing.T) {
	var got *logger.Logger
	app, _, _ := newTestApp(t, uiFunc(func(ctx context.Context) error {
		got = logger.FromContext(ctx)
		return nil
	}))

	require.NoError(t, app.Run(context.Background()))
	assert.NotNil(t, got)
}

func TestNewApp_RequiresUI(t *testing.T) {
	_, err := NewApp(&service.ClientServices{}, nil, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)
}
