// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package browser implements the recipe browser's components and the
// coordinator that wires them together. Each component owns its own state
// (loading flag, error message, data) behind a mutex and fetches
// independently; a newer request of the same kind cancels and supersedes
// an older one so only the last-issued request's result is ever kept.
package browser

import (
	"context"
	"errors"

	"github.com/pdiddy/forkify/pkg/types"
)

// ErrSuperseded is returned by a fetch whose result was discarded because a
// newer request of the same kind was issued, or whose context was
// cancelled. It is never shown to the user.
var ErrSuperseded = errors.New("request superseded")

var errNoRecipe = errors.New("no recipe loaded")

// Searcher finds recipe summaries for a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]types.Recipe, error)
}

// Fetcher loads one full recipe.
type Fetcher interface {
	Recipe(ctx context.Context, id string) (types.Recipe, error)
}

// Uploader stores a new recipe and returns it as the API saved it.
type Uploader interface {
	Upload(ctx context.Context, r types.NewRecipe) (types.Recipe, error)
}

// API is everything the browser needs from the recipe service.
type API interface {
	Searcher
	Fetcher
	Uploader
}

// request tracks the in-flight request of one component. begin cancels the
// previous request and returns a sequence number; current reports whether
// that number still belongs to the newest request. Callers hold the
// component's mutex.
type request struct {
	seq    uint64
	cancel context.CancelFunc
}

func (r *request) begin(parent context.Context) (context.Context, uint64) {
	if r.cancel != nil {
		r.cancel()
	}
	r.seq++
	ctx, cancel := context.WithCancel(parent)
	r.cancel = cancel
	return ctx, r.seq
}

func (r *request) current(seq uint64) bool { return seq == r.seq }

func (r *request) finish(seq uint64) {
	if r.current(seq) && r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// stop cancels the in-flight request, if any, and invalidates its result.
func (r *request) stop() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.seq++
}

// errorMessage is the user-visible text for err.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, ErrSuperseded)
}
