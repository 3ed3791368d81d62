package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/liftbook/internal/catalog"
	"github.com/five82/liftbook/internal/state"
)

const (
	defaultRefreshInterval = 5 * time.Minute
	maxBackoff             = 30 * time.Minute
)

// StartRefresher launches a background goroutine that reloads the catalog
// into store at a fixed cadence, backing off while every program fails. It
// returns immediately.
func StartRefresher(ctx context.Context, store *state.Store, cat *catalog.Catalog, log *slog.Logger, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	go func() {
		failures := 0
		for {
			if refreshCatalog(ctx, store, cat) {
				failures = 0
			} else {
				failures++
				log.Warn("catalog refresh failed", "failures", failures)
			}

			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// refreshCatalog loads every catalog program into store. It reports false
// when nothing loaded.
func refreshCatalog(ctx context.Context, store *state.Store, cat *catalog.Catalog) bool {
	if ctx.Err() != nil {
		return false
	}
	ids := cat.List()
	summaries := cat.LoadSummaries(ctx, ids)
	store.Update(summaries, len(ids))
	return len(summaries) > 0 || len(ids) == 0
}

// calculateBackoff doubles the interval per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	backoff := interval
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
