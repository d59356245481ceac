// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upload

import (
	"strings"

	"github.com/pdiddy/forkify/pkg/types"
)

// ParseLine parses "quantity,unit,description". The line is split on the
// first two commas, so the description may itself contain commas. ok is
// false only for lines with fewer than three parts. An empty quantity
// parses as zero and a quantity that is not a number as null; unit may be
// empty.
func ParseLine(line string) (ing types.Ingredient, ok bool) {
	parts := strings.SplitN(line, ",", 3)
	if len(parts) < 3 {
		return types.Ingredient{}, false
	}
	q, err := types.ParseQuantity(parts[0])
	if err != nil {
		q = types.NullQuantity()
	}
	return types.Ingredient{
		Quantity:    q,
		Unit:        strings.TrimSpace(parts[1]),
		Description: strings.TrimSpace(parts[2]),
	}, true
}

// ParseIngredients parses each line with ParseLine, silently dropping the
// ones that do not parse. At most MaxIngredients lines are read.
func ParseIngredients(lines []string) []types.Ingredient {
	if len(lines) > MaxIngredients {
		lines = lines[:MaxIngredients]
	}
	out := make([]types.Ingredient, 0, len(lines))
	for _, line := range lines {
		if ing, ok := ParseLine(line); ok {
			out = append(out, ing)
		}
	}
	return out
}
