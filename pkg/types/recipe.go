// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the forkify client:
// recipes as held by the browser, the upload payload, and configuration.
package types

// Recipe is a recipe as the client holds it after key transformation.
// Search results are summaries: they carry no ingredients, servings, or
// cooking time.
type Recipe struct {
	// ID is the API identifier.
	ID string `json:"id" yaml:"id" mapstructure:"id"`

	Title     string `json:"title" yaml:"title" mapstructure:"title"`
	Publisher string `json:"publisher" yaml:"publisher" mapstructure:"publisher"`

	// ImageURL and SourceURL come from image_url and source_url.
	ImageURL  string `json:"imageUrl" yaml:"image_url" mapstructure:"imageUrl"`
	SourceURL string `json:"sourceUrl,omitempty" yaml:"source_url,omitempty" mapstructure:"sourceUrl"`

	// CookingTime is in minutes.
	CookingTime int `json:"cookingTime,omitempty" yaml:"cooking_time,omitempty" mapstructure:"cookingTime"`
	Servings    int `json:"servings,omitempty" yaml:"servings,omitempty" mapstructure:"servings"`

	Ingredients []Ingredient `json:"ingredients,omitempty" yaml:"ingredients,omitempty" mapstructure:"ingredients"`

	// Key is set only on user-generated recipes uploaded with an API key.
	Key string `json:"key,omitempty" yaml:"key,omitempty" mapstructure:"key"`
}

// IsUserGenerated reports whether the recipe carries the upload marker key.
func (r Recipe) IsUserGenerated() bool { return r.Key != "" }

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Quantity    Quantity `json:"quantity" yaml:"quantity" mapstructure:"quantity"`
	Unit        string   `json:"unit" yaml:"unit" mapstructure:"unit"`
	Description string   `json:"description" yaml:"description" mapstructure:"description"`
}

// NewRecipe is the request body for uploading a recipe. Field names follow
// the API's underscore convention.
type NewRecipe struct {
	Title       string          `json:"title"`
	SourceURL   string          `json:"source_url"`
	ImageURL    string          `json:"image_url"`
	Publisher   string          `json:"publisher"`
	CookingTime int             `json:"cooking_time"`
	Servings    int             `json:"servings"`
	Ingredients []NewIngredient `json:"ingredients"`
}

// NewIngredient is an ingredient in an upload request. Quantity is sent as
// a plain number, or null when the typed quantity was not a number.
type NewIngredient struct {
	Quantity    *float64 `json:"quantity"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
}
