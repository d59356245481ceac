// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/forkify/pkg/types"
)

func TestKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"cooking_time", "cookingTime"},
		{"title", "title"},
		{"image_url", "imageUrl"},
		{"source_url", "sourceUrl"},
		{"Image_URL", "imageUrl"},
		{"a_b_c", "aB"},
		{"prep_time_minutes", "prepTime"},
		{"trailing_", "trailing"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Key(tt.in); got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestObject(t *testing.T) {
	in := map[string]any{
		"cooking_time": 45,
		"title":        "Pizza",
		"ingredients":  []any{map[string]any{"quantity": 1}},
	}
	got := Object(in)

	assert.Equal(t, 45, got["cookingTime"])
	assert.Equal(t, "Pizza", got["title"])
	assert.NotContains(t, got, "cooking_time")
	assert.Len(t, got, 3)
	// Input is not modified.
	assert.Contains(t, in, "cooking_time")
}

const detailJSON = `{
  "id": "5ed6604591c37cdc054bc886",
  "title": "Spicy Chicken and Pepper Jack Pizza",
  "publisher": "My Baking Addiction",
  "source_url": "http://www.mybakingaddiction.com/spicy-chicken",
  "image_url": "http://forkify-api.herokuapp.com/images/FlatBread21of1a180.jpg",
  "servings": 4,
  "cooking_time": 45,
  "ingredients": [
    {"quantity": 1, "unit": "", "description": "tbsp. canola or olive oil"},
    {"quantity": 0.5, "unit": "cup", "description": "chopped sweet onion"},
    {"quantity": null, "unit": "", "description": "salt and pepper"}
  ]
}`

func decodeMap(t *testing.T, s string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var m map[string]any
	require.NoError(t, dec.Decode(&m))
	return m
}

func TestDecodeRecipe(t *testing.T) {
	r, err := DecodeRecipe(decodeMap(t, detailJSON))
	require.NoError(t, err)

	assert.Equal(t, "5ed6604591c37cdc054bc886", r.ID)
	assert.Equal(t, "My Baking Addiction", r.Publisher)
	assert.Equal(t, "http://www.mybakingaddiction.com/spicy-chicken", r.SourceURL)
	assert.Equal(t, "http://forkify-api.herokuapp.com/images/FlatBread21of1a180.jpg", r.ImageURL)
	assert.Equal(t, 4, r.Servings)
	assert.Equal(t, 45, r.CookingTime)
	assert.False(t, r.IsUserGenerated())

	require.Len(t, r.Ingredients, 3)
	assert.True(t, r.Ingredients[0].Quantity.Equal(types.NewQuantity(1, 1)))
	assert.True(t, r.Ingredients[1].Quantity.Equal(types.NewQuantity(1, 2)))
	assert.Equal(t, "cup", r.Ingredients[1].Unit)
	assert.True(t, r.Ingredients[2].Quantity.IsNull())
	assert.Equal(t, "salt and pepper", r.Ingredients[2].Description)
}

func TestDecodeRecipe_Summary(t *testing.T) {
	r, err := DecodeRecipe(map[string]any{
		"id":        "abc",
		"title":     "Pasta",
		"publisher": "Closet Cooking",
		"image_url": "http://img/pasta.jpg",
		"key":       "user-key",
	})
	require.NoError(t, err)

	assert.Equal(t, "abc", r.ID)
	assert.Equal(t, "http://img/pasta.jpg", r.ImageURL)
	assert.True(t, r.IsUserGenerated())
	assert.Zero(t, r.Servings)
	assert.Empty(t, r.Ingredients)
}

func TestDecodeRecipe_FloatQuantities(t *testing.T) {
	r, err := DecodeRecipe(map[string]any{
		"id":       "x",
		"servings": 2.0,
		"ingredients": []any{
			map[string]any{"quantity": 0.1, "unit": "kg", "description": "rice"},
			map[string]any{"quantity": "1/3", "unit": "", "description": "lemon"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, r.Servings)
	require.Len(t, r.Ingredients, 2)
	assert.True(t, r.Ingredients[0].Quantity.Equal(types.NewQuantity(1, 10)))
	assert.True(t, r.Ingredients[1].Quantity.Equal(types.NewQuantity(1, 3)))
}

func TestDecodeRecipe_BadQuantity(t *testing.T) {
	_, err := DecodeRecipe(map[string]any{
		"id":          "x",
		"ingredients": []any{map[string]any{"quantity": "lots"}},
	})
	assert.Error(t, err)
}

func TestDecodeRecipes(t *testing.T) {
	rs, err := DecodeRecipes([]map[string]any{
		{"id": "a", "title": "A"},
		{"id": "b", "title": "B"},
	})
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "a", rs[0].ID)
	assert.Equal(t, "B", rs[1].Title)
}
