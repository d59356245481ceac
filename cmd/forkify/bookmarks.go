// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/forkify/internal/bookmarks"
	"github.com/pdiddy/forkify/internal/recipe"
	"github.com/pdiddy/forkify/pkg/types"
)

// --- bookmark (toggle) ---

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark <id>",
	Short: "Toggle a recipe in the bookmark list",
	Long: `Bookmark adds the recipe to the local bookmark list, or removes it if it
is already there. Adding fetches the full recipe so it can be shown offline
from the list.`,
	Args: cobra.ExactArgs(1),
	RunE: runBookmark,
}

func runBookmark(cmd *cobra.Command, args []string) error {
	id := args[0]
	cfg := currentConfig()
	bm, store, err := openBookmarks(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	r, ok := findBookmark(bm.List(), id)
	if !ok {
		r, err = newClient(cfg).Recipe(cmd.Context(), id)
		if err != nil {
			return err
		}
	}

	added, err := bm.Toggle(cmd.Context(), r)
	if err != nil {
		return err
	}
	logger.Debug("bookmark toggled", zap.String("id", id), zap.Bool("added", added))

	w := cmd.OutOrStdout()
	if added {
		fmt.Fprintf(w, "Bookmarked %q (%d bookmarks)\n", r.Title, bm.Len())
	} else {
		fmt.Fprintf(w, "Removed %q from bookmarks (%d bookmarks)\n", r.Title, bm.Len())
	}
	return nil
}

func findBookmark(list []types.Recipe, id string) (types.Recipe, bool) {
	for _, r := range list {
		if r.ID == id {
			return r, true
		}
	}
	return types.Recipe{}, false
}

// --- bookmarks (list, export) ---

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List bookmarked recipes",
	Long: `Bookmarks prints the local bookmark list in the order recipes were
added. Use the export subcommand to write it to YAML or JSON.`,
	Args: cobra.NoArgs,
	RunE: runBookmarksList,
}

func runBookmarksList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	bm, store, err := openBookmarks(cmd.Context(), currentConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	w := cmd.OutOrStdout()
	list := bm.List()
	if jsonOutput {
		return recipe.FormatJSON(list, w)
	}
	if len(list) == 0 {
		fmt.Fprintln(w, recipe.NoBookmarks)
		return nil
	}
	recipe.FormatTable(list, "", w)
	fmt.Fprintf(w, "\n%d bookmarks\n", len(list))
	return nil
}

var bookmarksExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export bookmarks to YAML or JSON",
	Long: `Export writes every bookmarked recipe, with its ingredients, to stdout
or to the file given by --out.`,
	Args: cobra.NoArgs,
	RunE: runBookmarksExport,
}

func runBookmarksExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	bm, store, err := openBookmarks(cmd.Context(), currentConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	if out == "" {
		return bm.Export(cmd.OutOrStdout(), bookmarks.Format(format))
	}
	if err := bm.ExportFile(out, bookmarks.Format(format)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bookmarks to %s\n", bm.Len(), out)
	return nil
}

func init() {
	bookmarksCmd.Flags().Bool("json", false, "output bookmarks as JSON")

	bookmarksExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	bookmarksExportCmd.Flags().String("out", "", "output file (default: stdout)")

	bookmarksCmd.AddCommand(bookmarksExportCmd)
	rootCmd.AddCommand(bookmarkCmd)
	rootCmd.AddCommand(bookmarksCmd)
}
