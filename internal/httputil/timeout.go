// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides request helpers shared by the API client.
package httputil

import (
	"context"
	"fmt"
	"time"
)

// TimeoutError is returned when a request loses the race against its timeout.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Request took too long. Timeout after %s seconds.", formatSeconds(e.After))
}

// Timeout reports true so TimeoutError satisfies net.Error-style checks.
func (e *TimeoutError) Timeout() bool { return true }

func formatSeconds(d time.Duration) string {
	s := d.Seconds()
	if s == float64(int64(s)) {
		return fmt.Sprintf("%d", int64(s))
	}
	return fmt.Sprintf("%g", s)
}

// Wait returns a channel that receives a *TimeoutError once d has elapsed,
// and a stop func that cancels the pending timer. The channel is buffered
// so the timer never blocks if nobody reads it.
func Wait(d time.Duration) (<-chan error, func() bool) {
	ch := make(chan error, 1)
	t := time.AfterFunc(d, func() {
		ch <- &TimeoutError{After: d}
	})
	return ch, t.Stop
}

// Race runs fn and returns its result unless the timeout d or ctx wins
// first. Race does not cancel fn when it loses: fn keeps running until the
// context the caller passed in is cancelled, and its result is dropped.
// A non-positive d disables the timeout.
func Race[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn(ctx)
		done <- result{v: v, err: err}
	}()

	var timeout <-chan error
	if d > 0 {
		var stop func() bool
		timeout, stop = Wait(d)
		defer stop()
	}

	var zero T
	select {
	case r := <-done:
		return r.v, r.err
	case err := <-timeout:
		return zero, err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
