// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/forkify/internal/forkify"
	"github.com/pdiddy/forkify/internal/recipe"
	"github.com/pdiddy/forkify/pkg/types"
)

// maxConcurrentFetches bounds parallel recipe lookups.
const maxConcurrentFetches = 4

var showCmd = &cobra.Command{
	Use:   "show <id...>",
	Short: "Show recipes, optionally scaled to a number of servings",
	Long: `Show fetches one or more recipes by identifier and prints their
ingredients. With --servings every ingredient quantity is rescaled from the
recipe's own servings; quantities are shown as simplified fractions.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	servings, _ := cmd.Flags().GetInt("servings")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	markdown, _ := cmd.Flags().GetBool("markdown")

	cfg := currentConfig()
	recipes, err := fetchRecipes(cmd.Context(), newClient(cfg), args)
	if err != nil {
		return err
	}

	if servings > 0 {
		for i, r := range recipes {
			scaled, err := recipe.Rescale(r, servings)
			if err != nil {
				return fmt.Errorf("rescaling %s: %w", r.ID, err)
			}
			recipes[i] = scaled
		}
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		if len(recipes) == 1 {
			return recipe.FormatJSON(recipes[0], w)
		}
		return recipe.FormatJSON(recipes, w)
	}

	bm, store, err := openBookmarks(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if markdown {
		return renderMarkdown(recipes, bm.Contains, w)
	}
	for i, r := range recipes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		recipe.FormatRecipe(r, bm.Contains(r.ID), w)
	}
	return nil
}

// renderMarkdown renders recipes through glamour, styled for the terminal.
func renderMarkdown(recipes []types.Recipe, bookmarked func(string) bool, w io.Writer) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	var md strings.Builder
	for i, r := range recipes {
		if i > 0 {
			md.WriteString("\n---\n\n")
		}
		recipe.FormatMarkdown(r, bookmarked(r.ID), &md)
	}
	out, err := renderer.Render(md.String())
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// fetchRecipes loads ids concurrently and returns them in argument order.
// The first failure cancels the rest.
func fetchRecipes(ctx context.Context, client *forkify.Client, ids []string) ([]types.Recipe, error) {
	recipes := make([]types.Recipe, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, id := range ids {
		g.Go(func() error {
			r, err := client.Recipe(ctx, id)
			if err != nil {
				return fmt.Errorf("fetching recipe %s: %w", id, err)
			}
			recipes[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return recipes, nil
}

func init() {
	showCmd.Flags().Int("servings", 0, "rescale ingredients to this many servings")
	showCmd.Flags().Bool("json", false, "output recipes as JSON")
	showCmd.Flags().Bool("markdown", false, "render recipes as styled Markdown")

	rootCmd.AddCommand(showCmd)
}
