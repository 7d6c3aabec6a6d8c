package app

import (
	"context"
	"log"
	"time"

	"github.com/pawhaven/pawdeck/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute
)

// StartPoller launches a background goroutine that keeps the dashboard
// counters and the inbox fresh while a session is active. It returns
// immediately. Failures back off exponentially so an unreachable backend is
// not hammered; these background slices are outside the notification feed,
// so the retries stay silent.
func StartPoller(ctx context.Context, store *state.Store, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		failures := 0
		for {
			wait := calculateBackoff(failures, interval)
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}

			if !store.Snapshot().Auth.LoggedIn {
				failures = 0
				continue
			}
			if err := refresh(ctx, store); err != nil {
				failures++
				log.Printf("background refresh failed: %v", err)
				continue
			}
			failures = 0
		}
	}()
}

func refresh(ctx context.Context, store *state.Store) error {
	if err := store.FetchDashboardStats(ctx); err != nil {
		return err
	}
	return store.FetchMessages(ctx)
}

// calculateBackoff doubles the base interval per consecutive failure,
// capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
