package seed

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 200 * time.Millisecond

// Waiter blocks until the SeedCrackerX log reports a seed. It watches the
// log's directory so that a log created after the wait started is noticed.
type Waiter struct {
	provider *FileStatusProvider
	debounce time.Duration
	logger   *zap.Logger
}

func NewWaiter(provider *FileStatusProvider, logger *zap.Logger) *Waiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Waiter{provider: provider, debounce: defaultDebounce, logger: logger}
}

// Wait returns the first cracked status, or the last status seen together
// with the context error once ctx ends.
func (w *Waiter) Wait(ctx context.Context) (domain.SeedKnowledge, error) {
	status, err := w.provider.SeedStatus(ctx)
	if err != nil {
		return status, err
	}
	if status.Cracked() {
		return status, nil
	}
	if w.provider.Path() == "" {
		return status, fmt.Errorf("wait for seed: %w", domain.ErrSeedNotCracked)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return status, fmt.Errorf("create seed log watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.provider.Path())
	if err := fsw.Add(dir); err != nil {
		return status, fmt.Errorf("watch directory %s: %w", dir, err)
	}

	// The log may have changed between the first read and Add.
	if status, err = w.provider.SeedStatus(ctx); err != nil || status.Cracked() {
		return status, err
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		var fire <-chan time.Time
		if timer != nil {
			fire = timer.C
		}

		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return status, fmt.Errorf("seed log watcher closed")
			}
			if !w.isLogEvent(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			next, err := w.provider.SeedStatus(ctx)
			if err != nil {
				w.logger.Debug("re-read seed log", zap.Error(err))
				continue
			}
			status = next
			if status.Cracked() {
				return status, nil
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return status, fmt.Errorf("seed log watcher closed")
			}
			w.logger.Warn("seed log watcher", zap.Error(err))

		case <-ctx.Done():
			return status, ctx.Err()
		}
	}
}

func (w *Waiter) isLogEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == w.provider.Path()
}
