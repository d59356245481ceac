// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipe

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/pdiddy/forkify/pkg/types"
)

// Placeholder is shown when no recipe is selected.
const Placeholder = "Start by searching for a recipe or an ingredient. Have fun!"

// NoBookmarks is shown when the bookmark list is empty.
const NoBookmarks = "No bookmarks yet. Find a nice recipe and bookmark it :)"

// FormatTable writes a page of recipe summaries as a table. selectedID
// marks the active row; user-generated recipes carry a "*" marker.
func FormatTable(recipes []types.Recipe, selectedID string, w io.Writer) {
	fmt.Fprintf(w, "%-2s %-26s  %-46s  %s\n", "", "ID", "Title", "Publisher")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, r := range recipes {
		mark := " "
		if r.ID == selectedID {
			mark = ">"
		}
		if r.IsUserGenerated() {
			mark += "*"
		} else {
			mark += " "
		}
		fmt.Fprintf(w, "%-2s %-26s  %-46s  %s\n", mark, Truncate(r.ID, 26), Truncate(r.Title, 46), Truncate(r.Publisher, 24))
	}
}

// FormatPagination writes "Page p of n" followed by the page numbers with
// the active one bracketed.
func FormatPagination(page, numPages int, w io.Writer) {
	if numPages <= 0 {
		return
	}
	buttons := make([]string, numPages)
	for i := range buttons {
		if i+1 == page {
			buttons[i] = fmt.Sprintf("[%d]", i+1)
		} else {
			buttons[i] = fmt.Sprintf(" %d ", i+1)
		}
	}
	fmt.Fprintf(w, "\nPage %d of %d  %s\n", page, numPages, strings.Join(buttons, ""))
}

// FormatRecipe writes the recipe detail view: title, time, servings,
// markers, ingredient list with simplified quantities, and directions link.
func FormatRecipe(r types.Recipe, bookmarked bool, w io.Writer) {
	fmt.Fprintln(w, strings.ToUpper(r.Title))
	fmt.Fprintln(w, strings.Repeat("=", min(ansi.StringWidth(r.Title), 80)))

	var flags []string
	if bookmarked {
		flags = append(flags, "bookmarked")
	}
	if r.IsUserGenerated() {
		flags = append(flags, "user-generated")
	}
	fmt.Fprintf(w, "%d minutes  |  %d servings", r.CookingTime, r.Servings)
	if len(flags) > 0 {
		fmt.Fprintf(w, "  |  %s", strings.Join(flags, ", "))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "\nRecipe ingredients")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(w, "  - %s\n", FormatIngredient(ing))
	}

	fmt.Fprintln(w, "\nHow to cook it")
	fmt.Fprintf(w, "This recipe was carefully designed and tested by %s.\n", r.Publisher)
	fmt.Fprintf(w, "Please check out directions at their website: %s\n", r.SourceURL)
}

// FormatMarkdown writes the recipe detail view as Markdown for rendering
// with a terminal Markdown renderer.
func FormatMarkdown(r types.Recipe, bookmarked bool, w io.Writer) {
	fmt.Fprintf(w, "# %s\n\n", r.Title)
	fmt.Fprintf(w, "**%d** minutes · **%d** servings", r.CookingTime, r.Servings)
	if bookmarked {
		fmt.Fprint(w, " · bookmarked")
	}
	if r.IsUserGenerated() {
		fmt.Fprint(w, " · user-generated")
	}
	fmt.Fprint(w, "\n\n## Recipe ingredients\n\n")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(w, "- %s\n", FormatIngredient(ing))
	}
	fmt.Fprint(w, "\n## How to cook it\n\n")
	fmt.Fprintf(w, "This recipe was carefully designed and tested by **%s**. ", r.Publisher)
	fmt.Fprintf(w, "Please check out directions at [their website](%s).\n", r.SourceURL)
}

// FormatIngredient renders one ingredient line: quantity, unit, description,
// skipping the empty parts.
func FormatIngredient(ing types.Ingredient) string {
	var parts []string
	if q := FormatQuantity(ing.Quantity); q != "" {
		parts = append(parts, q)
	}
	if ing.Unit != "" {
		parts = append(parts, ing.Unit)
	}
	parts = append(parts, ing.Description)
	return strings.Join(parts, " ")
}

// FormatJSON writes v as indented JSON to w.
func FormatJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Truncate shortens s to at most width terminal cells, ending it with
// "..." when it was cut. Multi-byte and wide runes are never split.
func Truncate(s string, width int) string {
	return ansi.Truncate(s, width, "...")
}
