// Package notify renders customer and owner messages and fans them out to the
// delivery gateways. Dispatch is all-settled: every channel is attempted and
// a failing channel never blocks or cancels the others.
package notify

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Task is one channel delivery attempt.
type Task struct {
	Channel string
	Run     func(ctx context.Context) error
}

// Result is the settled outcome of one task.
type Result struct {
	Channel string
	Err     error
}

// Dispatcher runs notification tasks concurrently and records outcomes.
type Dispatcher struct {
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

// Dispatch runs every task and waits for all of them to settle. Each failure
// is logged exactly once with its channel name. The returned results are in
// task order. Dispatch itself never fails: callers treat notifications as
// best-effort side effects.
func (d *Dispatcher) Dispatch(ctx context.Context, tasks ...Task) []Result {
	results := make([]Result, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	for i, task := range tasks {
		g.Go(func() error {
			err := task.Run(gctx)
			results[i] = Result{Channel: task.Channel, Err: err}
			if err != nil {
				d.logger.ErrorContext(ctx, "notification channel failed",
					slog.String("channel", task.Channel),
					slog.String("error", err.Error()),
				)
			}
			// Swallow the error so sibling tasks keep running.
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Failed returns the subset of results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
