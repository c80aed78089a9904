package movie

import "strings"

// PageSize is the number of cards per page in catalog mode.
const PageSize = 9

// Mode selects which movies the view is built from.
type Mode int

const (
	ModeCatalog   Mode = iota // Filtered, paginated catalog
	ModeWatchlist             // Favorites only, unpaginated
)

// String returns a lowercase name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeWatchlist:
		return "watchlist"
	default:
		return "catalog"
	}
}

// Query holds the user's browsing state.
type Query struct {
	Search string
	Genre  Genre
	Mode   Mode
	Page   int
}

// DefaultQuery returns the query a session starts with.
func DefaultQuery() Query {
	return Query{Genre: AllGenres, Mode: ModeCatalog, Page: 1}
}

// View is the derived result rendered for a query.
type View struct {
	Items       []Movie
	TotalPages  int  // 0 when empty or in watchlist mode
	CurrentPage int  // clamped page, 0 when TotalPages is 0
	Paginated   bool // false in watchlist mode
	Empty       bool
}

// HasPrev reports whether a previous page exists.
func (v View) HasPrev() bool {
	return v.Paginated && v.CurrentPage > 1
}

// HasNext reports whether a next page exists.
func (v View) HasNext() bool {
	return v.Paginated && v.CurrentPage < v.TotalPages
}

// ComputeView derives the visible movies and pagination for a query.
// It never fails: out-of-range pages are clamped and an empty result
// is reported through View.Empty.
func ComputeView(catalog []Movie, q Query, favorites FavoriteSet) View {
	if q.Mode == ModeWatchlist {
		items := make([]Movie, 0, favorites.Len())
		for _, m := range catalog {
			if favorites.Has(m.ID) {
				items = append(items, m)
			}
		}
		return View{Items: items, Empty: len(items) == 0}
	}

	filtered := Filter(catalog, q.Search, q.Genre)
	totalPages := TotalPages(len(filtered))
	if totalPages == 0 {
		return View{Items: []Movie{}, Paginated: true, Empty: true}
	}

	page := ClampPage(q.Page, totalPages)
	start := (page - 1) * PageSize
	end := min(start+PageSize, len(filtered))

	return View{
		Items:       filtered[start:end:end],
		TotalPages:  totalPages,
		CurrentPage: page,
		Paginated:   true,
	}
}

// Filter returns the records whose title contains search (case-insensitive,
// trimmed) and whose genre matches genre. Catalog order is preserved.
func Filter(catalog []Movie, search string, genre Genre) []Movie {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]Movie, 0, len(catalog))
	for _, m := range catalog {
		if needle != "" && !strings.Contains(strings.ToLower(m.Title), needle) {
			continue
		}
		if genre != AllGenres && genre != "" && m.Genre != genre {
			continue
		}
		out = append(out, m)
	}
	return out
}

// TotalPages returns ceil(n / PageSize).
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// ClampPage clamps page into [1, totalPages]. Returns 0 if there are no pages.
func ClampPage(page, totalPages int) int {
	if totalPages <= 0 {
		return 0
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
