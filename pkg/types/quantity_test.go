// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"0.5", "1/2", false},
		{"1/3", "1/3", false},
		{"2", "2", false},
		{"", "0", false},
		{" 1.25 ", "5/4", false},
		{"1e-3", "1/1000", false},
		{"abc", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			q, err := ParseQuantity(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.String())
		})
	}
}

func TestQuantity_NullAndZero(t *testing.T) {
	var q Quantity
	assert.True(t, q.IsNull())
	assert.True(t, q.IsZero())
	assert.Nil(t, q.Rat())
	_, ok := q.Float64()
	assert.False(t, ok)
	assert.True(t, q.Scale(2, 1).IsNull())

	zero := NewQuantity(0, 1)
	assert.False(t, zero.IsNull())
	assert.True(t, zero.IsZero())
	assert.False(t, zero.Equal(q))
}

func TestQuantity_Scale(t *testing.T) {
	q := NewQuantity(1, 2)
	got := q.Scale(3, 4)
	assert.Equal(t, "3/8", got.String())
	assert.Equal(t, "1/2", q.String(), "Scale must not modify the receiver")
}

func TestQuantity_RatIsCopy(t *testing.T) {
	q := NewQuantity(1, 2)
	r := q.Rat()
	r.SetInt64(9)
	assert.Equal(t, "1/2", q.String())
}

func TestQuantityFromFloat(t *testing.T) {
	q, err := QuantityFromFloat(0.1)
	require.NoError(t, err)
	assert.True(t, q.Equal(NewQuantity(1, 10)))
}

func TestQuantity_JSON(t *testing.T) {
	tests := []struct {
		name string
		q    Quantity
		want string
	}{
		{"null", NullQuantity(), "null"},
		{"integer", NewQuantity(3, 1), "3"},
		{"decimal", NewQuantity(1, 2), "0.5"},
		{"long decimal", NewQuantity(9, 8), "1.125"},
		{"negative", NewQuantity(-1, 4), "-0.25"},
		{"repeating", NewQuantity(1, 3), `"1/3"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))

			var back Quantity
			require.NoError(t, json.Unmarshal(data, &back))
			assert.True(t, tt.q.Equal(back), "got %s", back)
		})
	}
}

func TestQuantity_UnmarshalJSONString(t *testing.T) {
	var q Quantity
	require.NoError(t, json.Unmarshal([]byte(`"0.75"`), &q))
	assert.Equal(t, "3/4", q.String())

	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &q))
}

func TestIngredient_YAML(t *testing.T) {
	in := []Ingredient{
		{Quantity: NewQuantity(1, 2), Unit: "kg", Description: "Rice"},
		{Quantity: NewQuantity(2, 1), Unit: "", Description: "eggs"},
		{Quantity: NewQuantity(2, 3), Unit: "cup", Description: "milk"},
		{Quantity: NullQuantity(), Unit: "", Description: "salt"},
	}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	var back []Ingredient
	require.NoError(t, yaml.Unmarshal(data, &back))
	require.Len(t, back, len(in))
	for i := range in {
		assert.True(t, in[i].Quantity.Equal(back[i].Quantity), "ingredient %d: %s != %s", i, in[i].Quantity, back[i].Quantity)
		assert.Equal(t, in[i].Description, back[i].Description)
	}
}

func TestRecipe_IsUserGenerated(t *testing.T) {
	assert.True(t, Recipe{ID: "1", Key: "k"}.IsUserGenerated())
	assert.False(t, Recipe{ID: "1"}.IsUserGenerated())
}

func TestRecipe_JSONKeys(t *testing.T) {
	data, err := json.Marshal(Recipe{ID: "1", ImageURL: "img", SourceURL: "src", CookingTime: 10, Servings: 2})
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"imageUrl":"img"`)
	assert.Contains(t, s, `"sourceUrl":"src"`)
	assert.Contains(t, s, `"cookingTime":10`)
}
