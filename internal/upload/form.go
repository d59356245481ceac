// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package upload models the add-recipe form: its fields, the
// "quantity,unit,description" ingredient lines, validation, and conversion
// into the API's upload payload.
package upload

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/forkify/pkg/types"
)

// MaxIngredients is the number of ingredient lines the form offers.
const MaxIngredients = 6

// LineFormat describes the expected ingredient line shape.
const LineFormat = "Format: 'Quantity,Unit,Description'"

// Form holds the raw text of the add-recipe form. Numeric fields are kept
// as text, the way they were typed.
type Form struct {
	Title       string   `yaml:"title"`
	SourceURL   string   `yaml:"source_url"`
	ImageURL    string   `yaml:"image_url"`
	Publisher   string   `yaml:"publisher"`
	CookingTime string   `yaml:"cooking_time"`
	Servings    string   `yaml:"servings"`
	Ingredients []string `yaml:"ingredients"`
}

// DefaultForm returns the form prefilled with its placeholder values.
func DefaultForm() Form {
	return Form{
		Title:       "TEST",
		SourceURL:   "TEST",
		ImageURL:    "TEST",
		Publisher:   "TEST",
		CookingTime: "23",
		Servings:    "23",
		Ingredients: []string{"0.5,kg,Rice", "1,,Avocado", ",,salt", "", "", ""},
	}
}

// LoadFile reads a form from a YAML file.
func LoadFile(path string) (Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Form{}, fmt.Errorf("reading form file: %w", err)
	}
	var f Form
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Form{}, fmt.Errorf("parsing form file %s: %w", path, err)
	}
	return f, nil
}

// ValidationError lists the form fields that are missing or invalid.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid recipe form: " + strings.Join(e.Fields, ", ")
}

// Validate checks the required fields: title, source URL, image URL,
// publisher, numeric cooking time, servings of at least one, a first
// ingredient line, and no more than MaxIngredients lines.
func (f Form) Validate() error {
	var bad []string
	required := []struct {
		name, value string
	}{
		{"title", f.Title},
		{"source URL", f.SourceURL},
		{"image URL", f.ImageURL},
		{"publisher", f.Publisher},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			bad = append(bad, r.name+" is required")
		}
	}
	if n, err := strconv.Atoi(strings.TrimSpace(f.CookingTime)); err != nil || n < 0 {
		bad = append(bad, "cooking time must be a number of minutes")
	}
	if n, err := strconv.Atoi(strings.TrimSpace(f.Servings)); err != nil || n < 1 {
		bad = append(bad, "servings must be a whole number of at least 1")
	}
	if len(f.Ingredients) == 0 || strings.TrimSpace(f.Ingredients[0]) == "" {
		bad = append(bad, "ingredient 1 is required")
	}
	if len(f.Ingredients) > MaxIngredients {
		bad = append(bad, fmt.Sprintf("at most %d ingredients", MaxIngredients))
	}
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}

// Recipe validates the form and assembles the upload payload. Ingredient
// lines with fewer than three parts are dropped; a null quantity is sent
// as JSON null.
func (f Form) Recipe() (types.NewRecipe, error) {
	if err := f.Validate(); err != nil {
		return types.NewRecipe{}, err
	}
	cookingTime, _ := strconv.Atoi(strings.TrimSpace(f.CookingTime))
	servings, _ := strconv.Atoi(strings.TrimSpace(f.Servings))

	parsed := ParseIngredients(f.Ingredients)
	ingredients := make([]types.NewIngredient, len(parsed))
	for i, ing := range parsed {
		var q *float64
		if f, ok := ing.Quantity.Float64(); ok {
			q = &f
		}
		ingredients[i] = types.NewIngredient{
			Quantity:    q,
			Unit:        ing.Unit,
			Description: ing.Description,
		}
	}

	return types.NewRecipe{
		Title:       f.Title,
		SourceURL:   f.SourceURL,
		ImageURL:    f.ImageURL,
		Publisher:   f.Publisher,
		CookingTime: cookingTime,
		Servings:    servings,
		Ingredients: ingredients,
	}, nil
}
