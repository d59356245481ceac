// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browser

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/pdiddy/forkify/internal/recipe"
	"github.com/pdiddy/forkify/pkg/types"
)

// SearchState is a snapshot of the search results pane.
type SearchState struct {
	// Query is the search currently in flight; empty when idle.
	Query   string
	Loading bool
	Err     string

	// Results holds every result of the last successful search.
	Results  []types.Recipe
	Page     int
	PageSize int
}

// NumPages returns the number of result pages.
func (s SearchState) NumPages() int { return recipe.NumPages(len(s.Results), s.PageSize) }

// PageResults returns the results on the active page.
func (s SearchState) PageResults() []types.Recipe {
	return recipe.Page(s.Results, s.Page, s.PageSize)
}

// Visible reports whether results should be rendered: not loading, no
// error, and at least one result.
func (s SearchState) Visible() bool {
	return !s.Loading && s.Err == "" && len(s.Results) > 0
}

// SearchView runs searches and pages through their results.
type SearchView struct {
	api    Searcher
	logger *zap.Logger

	mu    sync.Mutex
	req   request
	state SearchState
}

// NewSearchView returns a search pane with the given page size.
func NewSearchView(api Searcher, pageSize int, logger *zap.Logger) *SearchView {
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchView{
		api:    api,
		logger: logger,
		state:  SearchState{Page: 1, PageSize: pageSize},
	}
}

// Submit searches for query and blocks until the request settles. An empty
// query does nothing. A newer Submit cancels this one; the superseded call
// returns ErrSuperseded and leaves the state to the newer request. Any other
// failure, including zero results, becomes the pane's error message and is
// returned.
func (v *SearchView) Submit(ctx context.Context, query string) error {
	if query == "" {
		return nil
	}

	v.mu.Lock()
	ctx, seq := v.req.begin(ctx)
	v.state.Query = query
	v.state.Loading = true
	v.state.Err = ""
	v.state.Page = 1
	v.mu.Unlock()

	v.logger.Debug("search started", zap.String("query", query), zap.Uint64("seq", seq))
	results, err := v.api.Search(ctx, query)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.req.current(seq) {
		v.logger.Debug("search superseded", zap.String("query", query), zap.Uint64("seq", seq))
		return ErrSuperseded
	}
	v.req.finish(seq)

	if err != nil && isCancellation(err) {
		v.state.Loading = false
		v.state.Query = ""
		return ErrSuperseded
	}

	v.state.Loading = false
	v.state.Query = ""
	if err != nil {
		v.state.Err = errorMessage(err)
		v.logger.Debug("search failed", zap.String("query", query), zap.Error(err))
		return err
	}
	v.state.Results = results
	v.state.Page = 1
	v.logger.Debug("search completed", zap.String("query", query), zap.Int("results", len(results)))
	return nil
}

// Cancel abandons the in-flight search, if any, without an error message.
func (v *SearchView) Cancel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.req.stop()
	v.state.Loading = false
	v.state.Query = ""
}

// SetPage makes page active without refetching. It is clamped to the
// available pages.
func (v *SearchView) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Page = recipe.ClampPage(page, len(v.state.Results), v.state.PageSize)
}

// NextPage and PrevPage step the active page by one.
func (v *SearchView) NextPage() {
	v.mu.Lock()
	page := v.state.Page + 1
	v.mu.Unlock()
	v.SetPage(page)
}

func (v *SearchView) PrevPage() {
	v.mu.Lock()
	page := v.state.Page - 1
	v.mu.Unlock()
	v.SetPage(page)
}

// State returns a snapshot of the pane.
func (v *SearchView) State() SearchState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	s.Results = slices.Clone(v.state.Results)
	return s
}
