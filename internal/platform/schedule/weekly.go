package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/pingpong-league/internal/platform/logging"
)

const defaultMisfireGrace = time.Hour

// Job is the unit of work a Weekly trigger runs on each firing.
type Job func(ctx context.Context) error

// Weekly fires a job at every Sunday 00:00 boundary in the local timezone.
// A single goroutine owns the timer, so firings never overlap. If the
// process starts within the misfire grace after a boundary it missed, the
// job runs once immediately as a catch-up.
type Weekly struct {
	job    Job
	logger *logging.Logger
	grace  time.Duration
	now    func() time.Time

	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
}

// Option tweaks a Weekly trigger; used by tests to inject a clock.
type Option func(*Weekly)

func WithNow(now func() time.Time) Option {
	return func(w *Weekly) {
		if now != nil {
			w.now = now
		}
	}
}

func WithMisfireGrace(grace time.Duration) Option {
	return func(w *Weekly) {
		w.grace = grace
	}
}

func NewWeekly(job Job, logger *logging.Logger, opts ...Option) *Weekly {
	if logger == nil {
		logger = logging.Default()
	}
	w := &Weekly{
		job:    job,
		logger: logger,
		grace:  defaultMisfireGrace,
		now:    time.Now,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// NextBoundary returns the next Sunday 00:00:00 strictly after now.
func NextBoundary(now time.Time) time.Time {
	daysUntilSunday := (7 - int(now.Weekday())) % 7
	day := now.AddDate(0, 0, daysUntilSunday)
	next := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 7)
	}

	return next
}

// Start launches the trigger loop until the context is cancelled or Stop
// is called. Calling Start twice is a no-op.
func (w *Weekly) Start(ctx context.Context) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	go w.run(ctx)
}

// Stop halts the trigger loop. A firing already in progress finishes.
func (w *Weekly) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
	})
}

func (w *Weekly) run(ctx context.Context) {
	now := w.now()
	next := NextBoundary(now)

	// Catch-up for a boundary missed while the process was down.
	missed := next.AddDate(0, 0, -7)
	if w.grace > 0 && now.Sub(missed) >= 0 && now.Sub(missed) <= w.grace {
		w.logger.Info("weekly trigger catch-up firing", "missed_boundary", missed)
		w.fire(ctx)
	}

	w.logger.Info("weekly trigger started", "next_run", next)

	for {
		timer := time.NewTimer(next.Sub(w.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			w.logger.Info("weekly trigger stopped")
			return
		case <-w.done:
			timer.Stop()
			w.logger.Info("weekly trigger stopped")
			return
		case <-timer.C:
			w.fire(ctx)
			next = NextBoundary(w.now())
			w.logger.Info("weekly trigger scheduled", "next_run", next)
		}
	}
}

func (w *Weekly) fire(ctx context.Context) {
	if err := w.job(ctx); err != nil {
		w.logger.ErrorContext(ctx, "weekly trigger job failed", "error", err)
	}
}
