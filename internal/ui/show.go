package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool
	var favorites string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one movie",
		Long:  `Display every field of a catalog record, including the poster URI.`,
		Example: `  reelview show 7
  reelview show 7 --fav=7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			id, err := ParseID(args[0])
			if err != nil {
				return err
			}
			favs, err := ParseIDs(favorites)
			if err != nil {
				return err
			}

			repo, err := a.repository()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			m, err := repo.GetMovie(ctx, id)
			if err != nil {
				return fmt.Errorf("fetching movie: %w", err)
			}
			if m == nil {
				return fmt.Errorf("movie %d not found", id)
			}

			favorite := false
			for _, f := range favs {
				if f == id {
					favorite = true
					break
				}
			}

			PrintMovie(cmd.OutOrStdout(), *m, favorite)
			return nil
		},
	}

	cmd.Flags().StringVar(&favorites, "fav", "", "Comma-separated favorite ids")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
