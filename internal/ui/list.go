package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/reelview/internal/browse"
	"github.com/javiermolinar/reelview/internal/movie"
)

type listOptions struct {
	search    string
	genre     string
	page      int
	watchlist bool
	favorites string
	table     bool
	noColor   bool
}

func (a *App) listCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the catalog",
		Long: `Print the movies a browse screen would show for the given query.

Search matches titles case-insensitively. Pages hold 9 movies and
out-of-range pages are clamped. In watchlist mode only the movies
passed with --fav are shown and search, genre and page are ignored.`,
		Example: `  reelview list
  reelview list --search=midnight
  reelview list --genre=action --page=1
  reelview list --watchlist --fav=1,7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.noColor {
				DisableColor()
			}

			s, err := a.listSession(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.table && !s.View().Empty {
				fmt.Fprintln(out, RenderTable(s))
				fmt.Fprintln(out, formatPage(FooterLine(s)))
				return nil
			}
			PrintView(out, s, TitleWidth(termWidth()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Title search (case-insensitive)")
	cmd.Flags().StringVarP(&opts.genre, "genre", "g", "", "Genre filter (default all)")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Page number")
	cmd.Flags().BoolVarP(&opts.watchlist, "watchlist", "w", false, "Show the watchlist instead of the catalog")
	cmd.Flags().StringVar(&opts.favorites, "fav", "", "Comma-separated favorite ids (e.g. 1,7)")
	cmd.Flags().BoolVar(&opts.table, "table", false, "Render as a table")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable color output")

	return cmd
}

// listSession loads the catalog and applies the requested query.
func (a *App) listSession(ctx context.Context, opts listOptions) (*browse.Session, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	favorites, err := ParseIDs(opts.favorites)
	if err != nil {
		return nil, err
	}

	repo, err := a.repository()
	if err != nil {
		return nil, err
	}
	movies, err := repo.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing movies: %w", err)
	}

	mode := movie.ModeCatalog
	if opts.watchlist {
		mode = movie.ModeWatchlist
	}

	s := browse.New(movies)
	if err := s.Restore(browse.State{
		Search:    opts.search,
		Genre:     opts.genre,
		Mode:      mode.String(),
		Page:      opts.page,
		Favorites: favorites,
	}); err != nil {
		return nil, err
	}
	return s, nil
}
