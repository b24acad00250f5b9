// Package timebox races a call against a fixed budget. The call runs on its own
// goroutine; when the budget elapses first the caller gets ErrTimeout and the
// call is abandoned with its context cancelled.
package timebox

import (
	"context"
	"fmt"
	"time"

	"storefront-backend/internal/pkg/errs"
)

var ErrTimeout = errs.Sentinel("timebox: budget exceeded", errs.ErrDependencyUnavailable)

type result[T any] struct {
	val T
	err error
}

// Run returns fn's result if it finishes within budget. fn receives a context
// detached from ctx's cancellation but bounded by budget, so an abandoned call
// does not outlive the budget if it honours its context.
func Run[T any](ctx context.Context, budget time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), budget)
	done := make(chan result[T], 1)

	go func() {
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				done <- result[T]{err: errs.Newf("timebox: call panicked: %v", r)}
			}
		}()
		v, err := fn(callCtx)
		done <- result[T]{val: v, err: err}
	}()

	timer := time.NewTimer(budget)
	defer timer.Stop()

	select {
	case r := <-done:
		return r.val, r.err
	case <-timer.C:
		cancel()
		return zero, ErrTimeout
	case <-ctx.Done():
		cancel()
		return zero, fmt.Errorf("timebox: caller gave up: %w", ctx.Err())
	}
}

// Do is Run for calls without a result value.
func Do(ctx context.Context, budget time.Duration, fn func(context.Context) error) error {
	_, err := Run(ctx, budget, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
