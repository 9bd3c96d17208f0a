package app

import (
	"context"
	"time"

	"github.com/five82/lrrview/internal/logging"
	"github.com/five82/lrrview/internal/results"
	"github.com/five82/lrrview/internal/state"
)

// StartLoader fetches the results artifact in a background
// goroutine and publishes the outcome to the store. It returns immediately;
// the returned channel closes once the store has been updated.
func StartLoader(ctx context.Context, store *state.Store, fetcher results.Fetcher, location string, logger *logging.Logger) <-chan struct{} {
	store.Begin(location)
	done := make(chan struct{})
	go func() {
		defer close(done)
		load(ctx, store, fetcher, location, logger)
	}()
	return done
}

func load(ctx context.Context, store *state.Store, fetcher results.Fetcher, location string, logger *logging.Logger) {
	logger = logger.With("component", "loader", "source", location)
	started := time.Now()

	records, err := fetcher.Fetch(ctx, location)
	if err != nil {
		store.Update(nil, time.Since(started), err)
		logger.Error("results load failed", "error", err)
		return
	}

	elapsed := time.Since(started)
	store.Update(records, elapsed, nil)
	logger.Info("results loaded", "records", len(records), "elapsed", elapsed)
}
