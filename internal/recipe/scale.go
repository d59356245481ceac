// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package recipe holds the arithmetic the browser performs on recipes:
// servings rescaling, fraction rendering of quantities, and client-side
// pagination of search results. It also renders recipes as text.
package recipe

import (
	"errors"
	"fmt"

	"github.com/pdiddy/forkify/pkg/types"
)

// ErrInvalidServings is returned when a rescale target is below one.
var ErrInvalidServings = errors.New("servings must be at least 1")

// Rescale returns a copy of r with Servings set to servings and every
// ingredient quantity multiplied by servings/r.Servings. r and its
// ingredient slice are never modified. Null quantities stay null.
func Rescale(r types.Recipe, servings int) (types.Recipe, error) {
	if servings < 1 {
		return r, ErrInvalidServings
	}
	if r.Servings < 1 {
		return r, fmt.Errorf("recipe %s has no servings to scale from", r.ID)
	}

	out := r
	out.Ingredients = make([]types.Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ing.Quantity = ing.Quantity.Scale(int64(servings), int64(r.Servings))
		out.Ingredients[i] = ing
	}
	out.Servings = servings
	return out, nil
}
