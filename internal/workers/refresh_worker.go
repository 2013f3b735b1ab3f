// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/project-pilot/internal/logger"
	"github.com/MKhiriev/project-pilot/internal/service"
)

// RefreshWorker calls Refresh on a ticker so a long-running session picks up
// renamed or newly created projects.
type RefreshWorker struct {
	refresher Refresher
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshWorker creates a RefreshWorker. It is idle until Start is called;
// a non-positive interval keeps it idle forever.
func NewRefreshWorker(refresher Refresher, interval time.Duration, logger *logger.Logger) *RefreshWorker {
	return &RefreshWorker{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
	}
}

// Start implements [Worker]. Any previously running loop is stopped first.
func (r *RefreshWorker) Start(ctx context.Context) {
	if r.interval <= 0 {
		r.logger.Debug().Str("func", "RefreshWorker.Start").Msg("refresh disabled")
		return
	}

	r.Stop()

	r.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		t := time.NewTicker(r.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				r.tick(jobCtx)
			}
		}
	}()
}

func (r *RefreshWorker) tick(ctx context.Context) {
	err := r.refresher.Refresh(ctx)
	switch {
	case err == nil:
		r.logger.Debug().Str("func", "RefreshWorker.tick").Msg("projects refreshed")
	case errors.Is(err, service.ErrBusy):
		r.logger.Debug().Str("func", "RefreshWorker.tick").Msg("sync busy, tick skipped")
	default:
		r.logger.Warn().Err(err).Str("func", "RefreshWorker.tick").Msg("background refresh failed")
	}
}

// Stop implements [Worker].
func (r *RefreshWorker) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}
