// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/forkify/internal/recipe"
	"github.com/pdiddy/forkify/internal/upload"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a new recipe",
	Long: `Upload submits a recipe to the recipe API. Fields come from a YAML form
file (--file), from the built-in sample form (--sample), or from flags;
flags override the file. Each --ingredient is a "quantity,unit,description"
line. Up to six may be given; a seventh is rejected. Lines with fewer than
three parts are skipped, and a quantity that is not a number is sent as
null.

The uploaded recipe is added to the bookmark list.`,
	Args: cobra.NoArgs,
	RunE: runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	form, err := uploadForm(cmd)
	if err != nil {
		return err
	}

	cfg := currentConfig()
	app, store, err := openApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := app.SubmitUpload(cmd.Context(), form)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, app.Upload.State().Success)
	fmt.Fprintln(w)
	recipe.FormatRecipe(r, app.IsBookmarked(r.ID), w)
	return nil
}

// uploadForm assembles the form from --file or --sample, then flags.
func uploadForm(cmd *cobra.Command) (upload.Form, error) {
	var form upload.Form
	file, _ := cmd.Flags().GetString("file")
	sample, _ := cmd.Flags().GetBool("sample")
	switch {
	case file != "":
		f, err := upload.LoadFile(file)
		if err != nil {
			return upload.Form{}, err
		}
		form = f
	case sample:
		form = upload.DefaultForm()
	}

	fields := []struct {
		flag string
		dst  *string
	}{
		{"title", &form.Title},
		{"source-url", &form.SourceURL},
		{"image-url", &form.ImageURL},
		{"publisher", &form.Publisher},
		{"cooking-time", &form.CookingTime},
		{"servings", &form.Servings},
	}
	for _, f := range fields {
		if cmd.Flags().Changed(f.flag) {
			*f.dst, _ = cmd.Flags().GetString(f.flag)
		}
	}
	if cmd.Flags().Changed("ingredient") {
		form.Ingredients, _ = cmd.Flags().GetStringArray("ingredient")
	}
	return form, nil
}

func addUploadFlags(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "YAML form file")
	cmd.Flags().Bool("sample", false, "start from the sample form")
	cmd.Flags().String("title", "", "recipe title")
	cmd.Flags().String("source-url", "", "link to the directions")
	cmd.Flags().String("image-url", "", "image link")
	cmd.Flags().String("publisher", "", "publisher name")
	cmd.Flags().String("cooking-time", "", "preparation time in minutes")
	cmd.Flags().String("servings", "", "number of servings")
	cmd.Flags().StringArray("ingredient", nil, fmt.Sprintf(`ingredient line "quantity,unit,description" (repeatable, at most %d)`, upload.MaxIngredients))
}

func init() {
	addUploadFlags(uploadCmd)
	rootCmd.AddCommand(uploadCmd)
}
