// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/eco-ideas/internal/config"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/service"
	"github.com/MKhiriev/eco-ideas/internal/tui"
)

// App runs the terminal client: the idea cache follows the session, the
// token pair is rotated in the background and the UI owns the foreground.
type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and a ui")
	}
	return &App{services: services, ui: ui, workers: workers, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = a.logger.WithContext(ctx)

	stopWatch := a.services.Ideas.Watch(ctx)
	a.services.RefreshJob.Start(ctx, a.workers.RefreshInterval)

	err := a.ui.Run(ctx)

	a.services.RefreshJob.Stop()
	stopWatch()
	a.services.Ideas.Wait()
	a.services.Sessions.Wait()

	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	default:
		return fmt.Errorf("run ui: %w", err)
	}
}
