package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alorle/streamline/internal/application"
	"github.com/alorle/streamline/internal/favorite"
)

func newListCommand(ctx *cliContext) *cobra.Command {
	var (
		q        application.Query
		jsonMode bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Download the playlist and list normalized channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if q.Category == application.CategoryFavorites {
				return fmt.Errorf("category %q is only available through the HTTP API", q.Category)
			}

			channels, err := ctx.newCatalog().Filter(cmd.Context(), q, favorite.Set{})
			if err != nil {
				return err
			}

			if jsonMode {
				return writeJSON(cmd, channels)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderChannelTable(channels))
			return err
		},
	}

	cmd.Flags().StringVar(&q.Category, "category", "", "Only show channels in this category (or All, Popular)")
	cmd.Flags().StringVarP(&q.Search, "search", "s", "", "Case-insensitive match against name or category")
	cmd.Flags().BoolVar(&q.AdultEnabled, "adult", false, "Include channels in the Adults category")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Output JSON")

	return cmd
}

func newCategoriesCommand(ctx *cliContext) *cobra.Command {
	var jsonMode bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Count normalized channels per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := ctx.newCatalog()
			counts, err := catalog.Categories(cmd.Context())
			if err != nil {
				return err
			}

			if jsonMode {
				return writeJSON(cmd, counts)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderCategoryTable(counts))
			_, err = fmt.Fprintf(out, "Loaded at %s\n", formatTime(catalog.Status().LoadedAt))
			return err
		},
	}

	cmd.Flags().BoolVar(&jsonMode, "json", false, "Output JSON")

	return cmd
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
