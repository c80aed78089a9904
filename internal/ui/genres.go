package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/reelview/internal/movie"
)

func (a *App) genresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List genres in selector order",
		Long:  `List the genre filter values in the order the selector cycles through them, with the number of catalog movies in each.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := a.repository()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			movies, err := repo.ListMovies(ctx)
			if err != nil {
				return fmt.Errorf("listing movies: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, g := range movie.Genres() {
				n := len(movie.Filter(movies, "", g))
				fmt.Fprintf(out, "%s %s\n", formatGenre(fmt.Sprintf("%-12s", g)), formatMuted(strconv.Itoa(n)))
			}
			return nil
		},
	}
}
