// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pdiddy/forkify/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse recipes interactively",
	Long: `Browse opens the interactive recipe browser: a search box, paged
results, the selected recipe with adjustable servings, the bookmark list,
and the add-recipe form. Logs go to a file next to the bookmark database.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	app, store, err := openApp(cmd.Context(), currentConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	p := tea.NewProgram(tui.New(cmd.Context(), app), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err = p.Run()
	return err
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
