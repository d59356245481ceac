// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upload

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/forkify/pkg/types"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		ok       bool
		quantity types.Quantity
		unit     string
		desc     string
	}{
		{"full line", "0.5,kg,Rice", true, types.NewQuantity(1, 2), "kg", "Rice"},
		{"empty unit", "1,,Avocado", true, types.NewQuantity(1, 1), "", "Avocado"},
		{"empty quantity", ",,salt", true, types.NewQuantity(0, 1), "", "salt"},
		{"fraction quantity", "1/3,cup,sugar", true, types.NewQuantity(1, 3), "cup", "sugar"},
		{"description with comma", "2,cloves,garlic, minced", true, types.NewQuantity(2, 1), "cloves", "garlic, minced"},
		{"spaces trimmed", " 3 , tbsp , olive oil ", true, types.NewQuantity(3, 1), "tbsp", "olive oil"},
		{"one comma", "1,Avocado", false, types.Quantity{}, "", ""},
		{"no comma", "Avocado", false, types.Quantity{}, "", ""},
		{"empty line", "", false, types.Quantity{}, "", ""},
		{"non-numeric quantity", "a pinch,kg,Rice", true, types.NullQuantity(), "kg", "Rice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ing, ok := ParseLine(tt.line)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.True(t, tt.quantity.Equal(ing.Quantity), "quantity %s", ing.Quantity)
			assert.Equal(t, tt.unit, ing.Unit)
			assert.Equal(t, tt.desc, ing.Description)
		})
	}
}

func TestParseIngredients_DropsMalformed(t *testing.T) {
	got := ParseIngredients([]string{"0.5,kg,Rice", "bad line", ",,salt", ""})
	require.Len(t, got, 2)
	assert.Equal(t, "Rice", got[0].Description)
	assert.Equal(t, "salt", got[1].Description)
}

func TestParseIngredients_AtMostSix(t *testing.T) {
	lines := make([]string, 8)
	for i := range lines {
		lines[i] = "1,,egg"
	}
	assert.Len(t, ParseIngredients(lines), MaxIngredients)
}

func TestDefaultForm_Recipe(t *testing.T) {
	r, err := DefaultForm().Recipe()
	require.NoError(t, err)

	assert.Equal(t, "TEST", r.Title)
	assert.Equal(t, 23, r.CookingTime)
	assert.Equal(t, 23, r.Servings)
	assert.Equal(t, []types.NewIngredient{
		{Quantity: float(0.5), Unit: "kg", Description: "Rice"},
		{Quantity: float(1), Unit: "", Description: "Avocado"},
		{Quantity: float(0), Unit: "", Description: "salt"},
	}, r.Ingredients)
}

func float(f float64) *float64 { return &f }

func TestParseIngredients_KeepsNonNumericQuantity(t *testing.T) {
	got := ParseIngredients([]string{"0.5,kg,Rice", "a pinch,,salt", "two,,eggs"})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Rice", "salt", "eggs"},
		[]string{got[0].Description, got[1].Description, got[2].Description})
	assert.True(t, got[1].Quantity.IsNull())
	assert.True(t, got[2].Quantity.IsNull())
}

func TestRecipe_NonNumericQuantitySentAsNull(t *testing.T) {
	f := DefaultForm()
	f.Ingredients = []string{"a pinch,,salt", "2,,eggs"}
	r, err := f.Recipe()
	require.NoError(t, err)
	require.Len(t, r.Ingredients, 2)
	assert.Nil(t, r.Ingredients[0].Quantity)
	require.NotNil(t, r.Ingredients[1].Quantity)
	assert.Equal(t, 2.0, *r.Ingredients[1].Quantity)

	data, err := json.Marshal(r.Ingredients[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"quantity":null,"unit":"","description":"salt"}`, string(data))
}

func TestValidate(t *testing.T) {
	f := Form{CookingTime: "abc", Servings: "0", Ingredients: []string{""}}
	err := f.Validate()

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "title is required")
	assert.Contains(t, ve.Fields, "publisher is required")
	assert.Contains(t, ve.Fields, "cooking time must be a number of minutes")
	assert.Contains(t, ve.Fields, "servings must be a whole number of at least 1")
	assert.Contains(t, ve.Fields, "ingredient 1 is required")
	assert.Contains(t, err.Error(), "invalid recipe form")

	_, err = f.Recipe()
	assert.ErrorAs(t, err, &ve)
}

func TestValidate_TooManyIngredients(t *testing.T) {
	f := DefaultForm()
	f.Ingredients = []string{"1,,a", "1,,b", "1,,c", "1,,d", "1,,e", "1,,f", "1,,g"}

	var ve *ValidationError
	require.ErrorAs(t, f.Validate(), &ve)
	assert.Equal(t, []string{"at most 6 ingredients"}, ve.Fields)

	f.Ingredients = f.Ingredients[:MaxIngredients]
	assert.NoError(t, f.Validate())
}


func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.yaml")
	content := `title: Grandma's soup
source_url: http://example.com/soup
image_url: http://example.com/soup.jpg
publisher: Grandma
cooking_time: "90"
servings: "6"
ingredients:
  - "2,l,water"
  - "1,,onion"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Grandma's soup", f.Title)
	assert.Equal(t, "90", f.CookingTime)

	r, err := f.Recipe()
	require.NoError(t, err)
	assert.Equal(t, 6, r.Servings)
	assert.Len(t, r.Ingredients, 2)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
