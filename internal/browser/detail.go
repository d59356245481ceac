// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browser

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/pdiddy/forkify/internal/recipe"
	"github.com/pdiddy/forkify/pkg/types"
)

// RecipeState is a snapshot of the recipe pane.
type RecipeState struct {
	// SelectedID is the identifier last passed to Select.
	SelectedID string
	Loading    bool
	Err        string

	// Recipe is nil until a recipe has been loaded.
	Recipe *types.Recipe
}

// Placeholder reports whether the pane should show the start message.
func (s RecipeState) Placeholder() bool {
	return !s.Loading && s.Err == "" && s.Recipe == nil
}

// RecipeView loads the selected recipe and rescales its servings.
type RecipeView struct {
	api    Fetcher
	logger *zap.Logger

	mu    sync.Mutex
	req   request
	state RecipeState
}

// NewRecipeView returns an empty recipe pane.
func NewRecipeView(api Fetcher, logger *zap.Logger) *RecipeView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeView{api: api, logger: logger}
}

// Select fetches the recipe with the given id and blocks until the request
// settles. An empty id does nothing. A newer Select cancels this one, which
// then returns ErrSuperseded without touching the pane.
func (v *RecipeView) Select(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}

	v.mu.Lock()
	ctx, seq := v.req.begin(ctx)
	v.state.SelectedID = id
	v.state.Loading = true
	v.state.Err = ""
	v.mu.Unlock()

	v.logger.Debug("recipe fetch started", zap.String("id", id), zap.Uint64("seq", seq))
	r, err := v.api.Recipe(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.req.current(seq) {
		return ErrSuperseded
	}
	v.req.finish(seq)
	v.state.Loading = false

	if err != nil {
		if isCancellation(err) {
			return ErrSuperseded
		}
		v.state.Err = errorMessage(err)
		v.logger.Debug("recipe fetch failed", zap.String("id", id), zap.Error(err))
		return err
	}
	v.state.Recipe = &r
	return nil
}

// Set replaces the held recipe without fetching, cancelling any in-flight
// Select. It is used after an upload returns the stored recipe.
func (v *RecipeView) Set(r types.Recipe) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.req.stop()
	v.state = RecipeState{SelectedID: r.ID, Recipe: &r}
}

// UpdateServings rescales the held recipe to servings. The ingredient list
// and servings count are replaced together; the previous recipe value is
// not modified.
func (v *RecipeView) UpdateServings(servings int) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state.Recipe == nil {
		return errNoRecipe
	}
	scaled, err := recipe.Rescale(*v.state.Recipe, servings)
	if err != nil {
		return err
	}
	v.state.Recipe = &scaled
	return nil
}

// IncreaseServings adds one serving.
func (v *RecipeView) IncreaseServings() error {
	s, ok := v.servings()
	if !ok {
		return errNoRecipe
	}
	return v.UpdateServings(s + 1)
}

// DecreaseServings removes one serving. It does nothing at one serving.
func (v *RecipeView) DecreaseServings() error {
	s, ok := v.servings()
	if !ok {
		return errNoRecipe
	}
	if s <= 1 {
		return nil
	}
	return v.UpdateServings(s - 1)
}

func (v *RecipeView) servings() (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state.Recipe == nil {
		return 0, false
	}
	return v.state.Recipe.Servings, true
}

// State returns a snapshot of the pane. The recipe is copied.
func (v *RecipeView) State() RecipeState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	if s.Recipe != nil {
		r := *s.Recipe
		s.Recipe = &r
	}
	return s
}
