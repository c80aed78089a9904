// Package browse owns the mutable browsing state and derives the view from it.
package browse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/javiermolinar/reelview/internal/movie"
)

// ErrUnknownMode is returned when restoring a state with an unknown mode.
var ErrUnknownMode = errors.New("mode must be 'catalog' or 'watchlist'")

// Session holds the query and favorites for one run of the browser.
// Every mutation leaves the stored page inside the range of the current view.
type Session struct {
	catalog   []movie.Movie
	query     movie.Query
	favorites movie.FavoriteSet
	view      movie.View
}

// New creates a session over the given catalog with the default query.
func New(catalog []movie.Movie) *Session {
	s := &Session{
		catalog: catalog,
		query:   movie.DefaultQuery(),
	}
	s.refresh()
	return s
}

// SetCatalog replaces the catalog (after an async load) and keeps the query.
// Favorites that no longer exist in the catalog are dropped.
func (s *Session) SetCatalog(catalog []movie.Movie) {
	s.catalog = catalog
	kept := movie.FavoriteSet{}
	for _, id := range s.favorites.IDs() {
		if _, ok := movie.FindByID(catalog, id); ok {
			kept = kept.Toggle(id)
		}
	}
	s.favorites = kept
	s.refresh()
}

// Catalog returns the catalog the session browses.
func (s *Session) Catalog() []movie.Movie {
	return s.catalog
}

// Query returns the current query.
func (s *Session) Query() movie.Query {
	return s.query
}

// Favorites returns the current favorite set.
func (s *Session) Favorites() movie.FavoriteSet {
	return s.favorites
}

// View returns the view derived from the current state.
func (s *Session) View() movie.View {
	return s.view
}

// SetSearch updates the search text and returns to the first page.
func (s *Session) SetSearch(text string) {
	if text == s.query.Search {
		return
	}
	s.query.Search = text
	s.query.Page = 1
	s.refresh()
}

// SetGenre selects a genre filter and returns to the first page.
func (s *Session) SetGenre(g movie.Genre) {
	if g == "" {
		g = movie.AllGenres
	}
	if g == s.query.Genre {
		return
	}
	s.query.Genre = g
	s.query.Page = 1
	s.refresh()
}

// CycleGenre moves the genre selector by delta positions, wrapping around.
func (s *Session) CycleGenre(delta int) {
	genres := movie.Genres()
	idx := 0
	for i, g := range genres {
		if g == s.query.Genre {
			idx = i
			break
		}
	}
	n := len(genres)
	idx = ((idx+delta)%n + n) % n
	s.SetGenre(genres[idx])
}

// NextPage advances one page if possible.
func (s *Session) NextPage() bool {
	if !s.CanNext() {
		return false
	}
	s.query.Page++
	s.refresh()
	return true
}

// PrevPage goes back one page if possible.
func (s *Session) PrevPage() bool {
	if !s.CanPrev() {
		return false
	}
	s.query.Page--
	s.refresh()
	return true
}

// CanPrev reports whether the previous-page control is enabled.
func (s *Session) CanPrev() bool {
	return s.view.HasPrev()
}

// CanNext reports whether the next-page control is enabled.
func (s *Session) CanNext() bool {
	return s.view.HasNext()
}

// SetMode switches between catalog and watchlist. The catalog page is kept.
func (s *Session) SetMode(m movie.Mode) {
	if m == s.query.Mode {
		return
	}
	s.query.Mode = m
	s.refresh()
}

// ToggleWatchlist flips between catalog and watchlist mode.
func (s *Session) ToggleWatchlist() movie.Mode {
	if s.query.Mode == movie.ModeWatchlist {
		s.SetMode(movie.ModeCatalog)
	} else {
		s.SetMode(movie.ModeWatchlist)
	}
	return s.query.Mode
}

// ToggleFavorite flips the favorite flag of a catalog movie.
// It returns the new flag, or false if id is not in the catalog.
func (s *Session) ToggleFavorite(id int64) bool {
	if _, ok := movie.FindByID(s.catalog, id); !ok {
		return false
	}
	s.favorites = movie.ToggleFavorite(s.favorites, id)
	s.refresh()
	return s.favorites.Has(id)
}

// IsFavorite reports whether id is in the watchlist.
func (s *Session) IsFavorite(id int64) bool {
	return s.favorites.Has(id)
}

// WatchlistCount returns the number of favorites.
func (s *Session) WatchlistCount() int {
	return s.favorites.Len()
}

// ShowPagination reports whether pagination controls should render.
func (s *Session) ShowPagination() bool {
	return s.view.Paginated && s.view.TotalPages > 1
}

// ShowGenreFilter reports whether the genre selector should render.
func (s *Session) ShowGenreFilter() bool {
	return s.query.Mode != movie.ModeWatchlist
}

// PageLabel returns the "Page X of Y" label.
func (s *Session) PageLabel() string {
	return "Page " + strconv.Itoa(s.view.CurrentPage) + " of " + strconv.Itoa(s.view.TotalPages)
}

func (s *Session) refresh() {
	s.view = movie.ComputeView(s.catalog, s.query, s.favorites)
	if s.view.Paginated {
		s.query.Page = max(1, s.view.CurrentPage)
	}
	if s.query.Page < 1 {
		s.query.Page = 1
	}
}

// State is a serializable snapshot of a session.
type State struct {
	Search    string  `json:"search" toml:"search"`
	Genre     string  `json:"genre" toml:"genre"`
	Mode      string  `json:"mode" toml:"mode"`
	Page      int     `json:"page" toml:"page"`
	Favorites []int64 `json:"favorites" toml:"favorites"`
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	return State{
		Search:    s.query.Search,
		Genre:     string(s.query.Genre),
		Mode:      s.query.Mode.String(),
		Page:      s.query.Page,
		Favorites: s.favorites.IDs(),
	}
}

// Restore loads a snapshot. Unknown favorite ids are ignored.
func (s *Session) Restore(st State) error {
	genre, err := movie.ParseGenre(st.Genre)
	if err != nil {
		return fmt.Errorf("restoring genre: %w", err)
	}
	mode, err := parseMode(st.Mode)
	if err != nil {
		return err
	}

	favorites := movie.FavoriteSet{}
	for _, id := range st.Favorites {
		if _, ok := movie.FindByID(s.catalog, id); ok && !favorites.Has(id) {
			favorites = favorites.Toggle(id)
		}
	}

	s.query = movie.Query{Search: st.Search, Genre: genre, Mode: mode, Page: st.Page}
	s.favorites = favorites
	s.refresh()
	return nil
}

func parseMode(s string) (movie.Mode, error) {
	switch s {
	case "", "catalog":
		return movie.ModeCatalog, nil
	case "watchlist":
		return movie.ModeWatchlist, nil
	default:
		return 0, fmt.Errorf("%w, got %q", ErrUnknownMode, s)
	}
}
