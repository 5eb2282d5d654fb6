// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/eco-ideas/internal/config"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/service"
)

const workerTimeout = 30 * time.Second

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers registers the workers enabled in cfg.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}
	if cfg.ReconcileGoals {
		w.workers = append(w.workers, NewGoalReconciler(services.GoalService, logger))
	}
	return w
}

// Run executes every worker in order, each bounded by its own timeout.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		if ctx.Err() != nil {
			return
		}

		runCtx, cancel := context.WithTimeout(ctx, workerTimeout)
		start := time.Now()
		err := worker.Run(runCtx)
		cancel()

		if err != nil {
			w.logger.Err(err).Str("worker", worker.Name()).Msg("worker failed")
			continue
		}
		w.logger.Info().Str("worker", worker.Name()).Dur("duration", time.Since(start)).Msg("worker finished")
	}
}

type goalReconciler struct {
	goals  service.GoalService
	logger *logger.Logger
}

// NewGoalReconciler re-creates the missing period goals of every category
// whose goals are tracked.
func NewGoalReconciler(goals service.GoalService, logger *logger.Logger) Worker {
	return &goalReconciler{goals: goals, logger: logger}
}

func (g *goalReconciler) Name() string {
	return "goal-reconciler"
}

func (g *goalReconciler) Run(ctx context.Context) error {
	return g.goals.ReconcileGoals(ctx)
}
