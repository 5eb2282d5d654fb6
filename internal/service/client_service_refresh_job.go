// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/eco-ideas/internal/logger"
)

// DefaultRefreshInterval is used when Start receives a non-positive interval.
const DefaultRefreshInterval = 10 * time.Minute

type tokenRefreshJob struct {
	sessions SessionStore

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTokenRefreshJob creates a job that rotates the session's tokens on a
// ticker. The job is idle until Start is called.
func NewTokenRefreshJob(sessions SessionStore) TokenRefreshJob {
	return &tokenRefreshJob{sessions: sessions}
}

// Start implements TokenRefreshJob. Ticks without a session are skipped.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *tokenRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, ok := j.sessions.CurrentSession(); !ok {
					continue
				}
				if err := j.sessions.RefreshToken(jobCtx); err != nil {
					logger.FromContext(jobCtx).Warn().Err(err).Msg("scheduled token refresh failed")
				}
			}
		}
	}()
}

// Stop implements TokenRefreshJob. Safe to call when the job is not running.
func (j *tokenRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
