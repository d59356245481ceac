// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform converts API records from the underscore field naming
// the recipe API uses ("cooking_time") to the camelCase naming the client
// holds ("cookingTime"), and decodes them into types.Recipe.
package transform

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/forkify/pkg/types"
)

// Key converts an underscore-separated key to camelCase. The key is
// lower-cased first and only its first two segments are kept: "cooking_time"
// becomes "cookingTime" and "a_b_c" becomes "aB". Keys without an
// underscore are returned lower-cased.
func Key(key string) string {
	parts := strings.Split(strings.ToLower(key), "_")
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + cases.Title(language.Und, cases.NoLower).String(parts[1])
}

// Object returns a new map with every top-level key converted by Key.
// Values pass through untouched; nested objects keep their keys.
func Object(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[Key(k)] = v
	}
	return out
}

// DecodeRecipe transforms obj's keys and decodes the result into a Recipe.
func DecodeRecipe(obj map[string]any) (types.Recipe, error) {
	var r types.Recipe
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       quantityHook,
		WeaklyTypedInput: true,
		Result:           &r,
	})
	if err != nil {
		return types.Recipe{}, fmt.Errorf("creating decoder: %w", err)
	}
	if err := dec.Decode(Object(obj)); err != nil {
		return types.Recipe{}, fmt.Errorf("decoding recipe: %w", err)
	}
	return r, nil
}

// DecodeRecipes decodes each element of objs with DecodeRecipe.
func DecodeRecipes(objs []map[string]any) ([]types.Recipe, error) {
	out := make([]types.Recipe, 0, len(objs))
	for i, obj := range objs {
		r, err := DecodeRecipe(obj)
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

var quantityType = reflect.TypeOf(types.Quantity{})

// quantityHook turns the number and string forms a JSON decoder produces
// into types.Quantity.
func quantityHook(from, to reflect.Type, data any) (any, error) {
	if to != quantityType {
		return data, nil
	}
	switch v := data.(type) {
	case nil:
		return types.NullQuantity(), nil
	case json.Number:
		return types.ParseQuantity(v.String())
	case string:
		return types.ParseQuantity(v)
	case float64:
		return types.QuantityFromFloat(v)
	case int:
		return types.NewQuantity(int64(v), 1), nil
	case int64:
		return types.NewQuantity(v, 1), nil
	case types.Quantity:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported quantity %T", data)
	}
}
