// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipe

import (
	"bytes"
	"math/big"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/forkify/pkg/types"
)

func sampleRecipe() types.Recipe {
	return types.Recipe{
		ID:          "5ed6604591c37cdc054bc886",
		Title:       "Spicy Chicken and Pepper Jack Pizza",
		Publisher:   "My Baking Addiction",
		SourceURL:   "http://www.mybakingaddiction.com/spicy-chicken",
		CookingTime: 45,
		Servings:    4,
		Ingredients: []types.Ingredient{
			{Quantity: types.NewQuantity(1, 1), Unit: "pound", Description: "pizza dough"},
			{Quantity: types.NewQuantity(1, 2), Unit: "cup", Description: "chopped sweet onion"},
			{Quantity: types.NewQuantity(3, 4), Unit: "tsp", Description: "chili powder"},
			{Quantity: types.NullQuantity(), Unit: "", Description: "salt and pepper"},
		},
	}
}

// --- Rescale ---

func TestRescale(t *testing.T) {
	r := sampleRecipe()

	got, err := Rescale(r, 6)
	require.NoError(t, err)

	assert.Equal(t, 6, got.Servings)
	assert.True(t, got.Ingredients[0].Quantity.Equal(types.NewQuantity(3, 2)))
	assert.True(t, got.Ingredients[1].Quantity.Equal(types.NewQuantity(3, 4)))
	assert.True(t, got.Ingredients[2].Quantity.Equal(types.NewQuantity(9, 8)))
	assert.True(t, got.Ingredients[3].Quantity.IsNull())
	assert.Equal(t, "pizza dough", got.Ingredients[0].Description)
}

func TestRescale_DoesNotMutate(t *testing.T) {
	r := sampleRecipe()
	before := r.Ingredients[1].Quantity.String()

	_, err := Rescale(r, 1)
	require.NoError(t, err)

	assert.Equal(t, 4, r.Servings)
	assert.Equal(t, before, r.Ingredients[1].Quantity.String())
}

// quantityEqual compares quantities by value; cmp cannot see inside big.Rat.
var quantityEqual = cmp.Comparer(func(a, b types.Quantity) bool { return a.Equal(b) })

func TestRescale_RoundTrip(t *testing.T) {
	r := sampleRecipe()
	for _, s := range []int{1, 2, 3, 5, 7, 13, 100} {
		scaled, err := Rescale(r, s)
		require.NoError(t, err)
		back, err := Rescale(scaled, r.Servings)
		require.NoError(t, err)

		if diff := cmp.Diff(r, back, quantityEqual); diff != "" {
			t.Errorf("round trip through %d servings (-want +got):\n%s", s, diff)
		}
	}
}

func TestRescale_Invalid(t *testing.T) {
	_, err := Rescale(sampleRecipe(), 0)
	assert.ErrorIs(t, err, ErrInvalidServings)

	_, err = Rescale(types.Recipe{ID: "summary"}, 2)
	assert.Error(t, err)
}

// --- fractions ---

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.5", "1/2"},
		{"0.333", "1/3"},
		{"0.3", "3/10"},
		{"1.5", "3/2"},
		{"2", "2"},
		{"0.6667", "2/3"},
		{"-0.25", "-1/4"},
		{"0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			x, ok := new(big.Rat).SetString(tt.in)
			require.True(t, ok)
			got := Simplify(x, SimplifyEpsilon)
			if got.RatString() != tt.want {
				t.Errorf("Simplify(%s) = %s, want %s", tt.in, got.RatString(), tt.want)
			}
		})
	}
}

func TestSimplify_Nil(t *testing.T) {
	assert.Nil(t, Simplify(nil, SimplifyEpsilon))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "1/2", FormatQuantity(types.NewQuantity(1, 2)))
	assert.Equal(t, "3", FormatQuantity(types.NewQuantity(3, 1)))
	assert.Equal(t, "", FormatQuantity(types.NewQuantity(0, 1)))
	assert.Equal(t, "", FormatQuantity(types.NullQuantity()))
	assert.Equal(t, "", FormatQuantity(types.NewQuantity(1, 100000)))
	assert.Equal(t, "1/3", FormatQuantity(types.NewQuantity(1, 3)))
}

func TestFormatIngredient(t *testing.T) {
	assert.Equal(t, "1/2 cup rice", FormatIngredient(types.Ingredient{
		Quantity: types.NewQuantity(1, 2), Unit: "cup", Description: "rice",
	}))
	assert.Equal(t, "salt", FormatIngredient(types.Ingredient{Description: "salt"}))
	assert.Equal(t, "1 Avocado", FormatIngredient(types.Ingredient{
		Quantity: types.NewQuantity(1, 1), Description: "Avocado",
	}))
}

// --- pagination ---

func TestPagination(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	assert.Equal(t, 3, NumPages(len(items), 10))
	assert.Len(t, Page(items, 1, 10), 10)
	assert.Len(t, Page(items, 2, 10), 10)
	last := Page(items, 3, 10)
	assert.Equal(t, []int{20, 21, 22}, last)
	assert.Empty(t, Page(items, 4, 10))
	assert.Empty(t, Page(items, 0, 10))
}

func TestNumPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{23, 10, 3},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := NumPages(tt.n, tt.size); got != tt.want {
			t.Errorf("NumPages(%d, %d) = %d, want %d", tt.n, tt.size, got, tt.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 23, 10))
	assert.Equal(t, 2, ClampPage(2, 23, 10))
	assert.Equal(t, 3, ClampPage(9, 23, 10))
	assert.Equal(t, 1, ClampPage(3, 0, 10))
}

// --- formatting ---

func TestFormatRecipe(t *testing.T) {
	var buf bytes.Buffer
	FormatRecipe(sampleRecipe(), true, &buf)
	out := buf.String()

	assert.Contains(t, out, "SPICY CHICKEN AND PEPPER JACK PIZZA")
	assert.Contains(t, out, "45 minutes  |  4 servings  |  bookmarked")
	assert.Contains(t, out, "  - 1/2 cup chopped sweet onion\n")
	assert.Contains(t, out, "  - salt and pepper\n")
	assert.Contains(t, out, "tested by My Baking Addiction.")
	assert.Contains(t, out, "http://www.mybakingaddiction.com/spicy-chicken")
}

func TestFormatMarkdown(t *testing.T) {
	r := sampleRecipe()
	r.Key = "abc"
	var buf bytes.Buffer
	FormatMarkdown(r, true, &buf)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Spicy Chicken and Pepper Jack Pizza\n"))
	assert.Contains(t, out, "**45** minutes · **4** servings · bookmarked · user-generated")
	assert.Contains(t, out, "- 1/2 cup chopped sweet onion\n")
	assert.Contains(t, out, "- salt and pepper\n")
	assert.Contains(t, out, "[their website](http://www.mybakingaddiction.com/spicy-chicken)")
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable([]types.Recipe{
		{ID: "a1", Title: "Pasta with tomato", Publisher: "Closet Cooking"},
		{ID: "b2", Title: "Mine", Publisher: "me", Key: "k"},
	}, "a1", &buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "> "))
	assert.Contains(t, lines[2], "Pasta with tomato")
	assert.True(t, strings.HasPrefix(lines[3], " *"))
}

func TestFormatPagination(t *testing.T) {
	var buf bytes.Buffer
	FormatPagination(2, 3, &buf)
	assert.Contains(t, buf.String(), "Page 2 of 3   1 [2] 3 ")

	buf.Reset()
	FormatPagination(1, 0, &buf)
	assert.Empty(t, buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "Jalapeño", Truncate("Jalapeño", 8))
	assert.Equal(t, "Crème...", Truncate("Crème Fraîche Tart", 8))
	assert.Equal(t, "Jé...", Truncate("Jéé and more", 5))
}

func TestFormatTable_MultiByteTitles(t *testing.T) {
	title := "Spicy Chicken and Pepper Jack Pizza with Jéé and Crème Fraîche"
	var buf bytes.Buffer
	FormatTable([]types.Recipe{{ID: "5ed6604591c37cdc054bcd09", Title: title, Publisher: "Crème Fraîche Cooking Company"}}, "", &buf)

	out := buf.String()
	assert.True(t, utf8.ValidString(out), "table output must stay valid UTF-8")
	assert.Contains(t, out, "...")
}

func TestFormatRecipe_UnderlineMatchesWidth(t *testing.T) {
	var buf bytes.Buffer
	FormatRecipe(types.Recipe{Title: "Jalapeño"}, false, &buf)
	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "JALAPEÑO", lines[0])
	assert.Equal(t, strings.Repeat("=", 8), lines[1])
}
