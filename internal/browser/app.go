// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pdiddy/forkify/internal/bookmarks"
	"github.com/pdiddy/forkify/internal/upload"
	"github.com/pdiddy/forkify/pkg/types"
)

// App is the top-level coordinator. It holds the selected recipe id, the
// bookmark list, and the pending search query, and routes user actions to
// the search, recipe, and upload components.
type App struct {
	Search    *SearchView
	Recipe    *RecipeView
	Upload    *UploadView
	Bookmarks *bookmarks.Bookmarks

	logger *zap.Logger

	mu         sync.Mutex
	selectedID string
	query      string
}

// New wires the components to api and the loaded bookmark list.
func New(api API, bm *bookmarks.Bookmarks, cfg types.BrowserConfig, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		Search:    NewSearchView(api, cfg.PageSize, logger.Named("search")),
		Recipe:    NewRecipeView(api, logger.Named("recipe")),
		Upload:    NewUploadView(api, cfg.DismissDelay, logger.Named("upload")),
		Bookmarks: bm,
		logger:    logger,
	}
}

// SubmitSearch sets the pending query and runs the search. The query is
// cleared once the search settles, whether it succeeded or failed.
func (a *App) SubmitSearch(ctx context.Context, query string) error {
	a.mu.Lock()
	a.query = query
	a.mu.Unlock()

	err := a.Search.Submit(ctx, query)
	if errors.Is(err, ErrSuperseded) {
		return err
	}

	a.mu.Lock()
	if a.query == query {
		a.query = ""
	}
	a.mu.Unlock()
	return err
}

// CancelSearch abandons the pending search and clears its query.
func (a *App) CancelSearch() {
	a.Search.Cancel()
	a.mu.Lock()
	a.query = ""
	a.mu.Unlock()
}

// Query returns the pending search query.
func (a *App) Query() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.query
}

// Select makes id the selected recipe and loads it.
func (a *App) Select(ctx context.Context, id string) error {
	a.mu.Lock()
	a.selectedID = id
	a.mu.Unlock()
	return a.Recipe.Select(ctx, id)
}

// SelectedID returns the selected recipe id, or "" when nothing is selected.
func (a *App) SelectedID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selectedID
}

// ToggleBookmark toggles the recipe shown in the recipe pane. It reports
// whether the recipe is now bookmarked.
func (a *App) ToggleBookmark(ctx context.Context) (bool, error) {
	st := a.Recipe.State()
	if st.Recipe == nil {
		return false, errNoRecipe
	}
	return a.Bookmarks.Toggle(ctx, *st.Recipe)
}

// IsBookmarked reports whether id is in the bookmark list.
func (a *App) IsBookmarked(id string) bool {
	return a.Bookmarks.Contains(id)
}

// SubmitUpload uploads form. On success the stored recipe is shown in the
// recipe pane, bookmarked, and selected.
func (a *App) SubmitUpload(ctx context.Context, form upload.Form) (types.Recipe, error) {
	r, err := a.Upload.Submit(ctx, form)
	if err != nil {
		return types.Recipe{}, err
	}

	a.Recipe.Set(r)
	if _, err := a.Bookmarks.Toggle(ctx, r); err != nil {
		return r, fmt.Errorf("bookmarking uploaded recipe: %w", err)
	}

	a.mu.Lock()
	a.selectedID = r.ID
	a.mu.Unlock()

	a.logger.Info("recipe uploaded", zap.String("id", r.ID), zap.String("title", r.Title))
	return r, nil
}
