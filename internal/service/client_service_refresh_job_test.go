// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/eco-ideas/models"
)

type countingSessions struct {
	fakeSessions
	refreshes atomic.Int32
}

func (c *countingSessions) RefreshToken(context.Context) error {
	c.refreshes.Add(1)
	return nil
}

func TestTokenRefreshJob_RefreshesOnTick(t *testing.T) {
	sessions := &countingSessions{
		fakeSessions: fakeSessions{principal: &models.Principal{ID: "u-1"}, generation: 1},
	}

	job := NewTokenRefreshJob(sessions)
	job.Start(context.Background(), 5*time.Millisecond)

	assert.Eventually(t, func() bool { return sessions.refreshes.Load() >= 2 }, time.Second, 5*time.Millisecond)
	job.Stop()

	n := sessions.refreshes.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, sessions.refreshes.Load())
}

func TestTokenRefreshJob_SkipsWithoutSession(t *testing.T) {
	sessions := &countingSessions{}

	job := NewTokenRefreshJob(sessions)
	job.Start(context.Background(), 2*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Zero(t, sessions.refreshes.Load())
}

func TestTokenRefreshJob_StopIsSafe(t *testing.T) {
	job := NewTokenRefreshJob(&countingSessions{})
	job.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 0)
	job.Start(ctx, time.Hour)
	cancel()
	job.Stop()
	job.Stop()
}
