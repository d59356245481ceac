// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/forkify/internal/browser"
	"github.com/pdiddy/forkify/internal/recipe"
)

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search the recipe API",
	Long: `Search queries the recipe API for recipes matching a free-text query
such as "pizza" or "avocado". Results are paged client-side; use --page to
pick a page. User-generated recipes are marked with "*".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	page, _ := cmd.Flags().GetInt("page")
	all, _ := cmd.Flags().GetBool("all")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	query := strings.Join(args, " ")

	cfg := currentConfig()
	view := browser.NewSearchView(newClient(cfg), cfg.Browser.PageSize, logger.Named("search"))
	if err := view.Submit(cmd.Context(), query); err != nil {
		return err
	}
	view.SetPage(page)
	st := view.State()
	logger.Debug("search finished", zap.String("query", query), zap.Int("results", len(st.Results)))

	results := st.PageResults()
	if all {
		results = st.Results
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		return recipe.FormatJSON(results, w)
	}
	recipe.FormatTable(results, "", w)
	if !all {
		recipe.FormatPagination(st.Page, st.NumPages(), w)
	}
	fmt.Fprintf(w, "\n%d results\n", len(st.Results))
	return nil
}

func init() {
	searchCmd.Flags().Int("page", 1, "result page to show")
	searchCmd.Flags().Bool("all", false, "show every result instead of one page")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
