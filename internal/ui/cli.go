package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/reelview/internal/browse"
	"github.com/javiermolinar/reelview/internal/config"
	"github.com/javiermolinar/reelview/internal/movie"
	"github.com/javiermolinar/reelview/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   movie.Repository
	owned  bool // repo was opened by the app and must be closed
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging

	// Initial TUI state
	search    string
	genre     string
	watchlist bool
}

// NewApp creates a new CLI application. A nil repo opens the configured catalog store on first use.
func NewApp(repo movie.Repository, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "reelview",
		Short: "Browse a movie catalog from the terminal",
		Long: `Reelview is a terminal movie browser.

Search by title, filter by genre, page through the catalog and keep
a watchlist of favorites for the current session.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := a.initialState()
			if err != nil {
				return err
			}
			repo, err := a.repository()
			if err != nil {
				return err
			}
			return tui.RunWithDebug(repo, a.config, a.debug, tui.WithState(st))
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")

	a.root.Flags().StringVarP(&a.search, "search", "s", "", "Start with a title search")
	a.root.Flags().StringVarP(&a.genre, "genre", "g", "", "Start with a genre filter")
	a.root.Flags().BoolVarP(&a.watchlist, "watchlist", "w", false, "Start in watchlist mode")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.genresCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reelview %s (commit: %s)\n", Version, Commit)
		},
	}
}

// initialState builds the browse state requested by the root flags.
func (a *App) initialState() (browse.State, error) {
	if _, err := movie.ParseGenre(a.genre); err != nil {
		return browse.State{}, err
	}
	st := browse.State{Search: a.search, Genre: a.genre, Page: 1}
	if a.watchlist {
		st.Mode = movie.ModeWatchlist.String()
	}
	return st, nil
}

// repository returns the catalog repository, opening the configured store if needed.
func (a *App) repository() (movie.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	repo, err := tui.OpenRepository(a.config)
	if err != nil {
		return nil, err
	}
	a.repo = repo
	a.owned = true
	return repo, nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if the app opened it.
func (a *App) Close() error {
	if a.owned && a.repo != nil {
		err := a.repo.Close()
		a.repo = nil
		a.owned = false
		return err
	}
	return nil
}
