// Package movie defines the core domain types for reelview.
package movie

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/reelview/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrInvalidDate  = dateutil.ErrInvalidDateFormat
	ErrUnknownGenre = errors.New("unknown genre")
	ErrDuplicateID  = errors.New("duplicate movie id")
)

// DateLayout is the ISO layout used for release dates.
const DateLayout = dateutil.ISOLayout

// Genre is one of a fixed set of movie genres.
type Genre string

const (
	GenreAction    Genre = "Action"
	GenreRomance   Genre = "Romance"
	GenreComedy    Genre = "Comedy"
	GenreDrama     Genre = "Drama"
	GenreThriller  Genre = "Thriller"
	GenreHorror    Genre = "Horror"
	GenreAnimation Genre = "Animation"
	GenreSciFi     Genre = "Sci-Fi"
	GenreAdventure Genre = "Adventure"
)

// AllGenres is the filter value that matches every genre.
const AllGenres Genre = "All Genres"

// genreOrder is the order genres appear in the selector.
var genreOrder = []Genre{
	AllGenres,
	GenreAction,
	GenreRomance,
	GenreComedy,
	GenreDrama,
	GenreThriller,
	GenreHorror,
	GenreAnimation,
	GenreSciFi,
	GenreAdventure,
}

// Genres returns the selectable filter values, starting with AllGenres.
func Genres() []Genre {
	out := make([]Genre, len(genreOrder))
	copy(out, genreOrder)
	return out
}

// Valid returns true if g is a movie genre. AllGenres is not a movie genre.
func (g Genre) Valid() bool {
	for _, known := range genreOrder[1:] {
		if g == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (g Genre) String() string {
	return string(g)
}

// ParseGenre parses a genre name case-insensitively.
// "all" and "All Genres" parse to AllGenres.
func ParseGenre(s string) (Genre, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return AllGenres, nil
	}
	for _, g := range genreOrder {
		if strings.EqualFold(s, string(g)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGenre, s)
}

// Movie is an immutable catalog record.
type Movie struct {
	ID     int64
	Title  string
	Date   string // "YYYY-MM-DD"
	Genre  Genre
	Poster string // poster image URI
}

// ReleaseDate parses the release date.
func (m Movie) ReleaseDate() (time.Time, error) {
	return dateutil.ParseDate(m.Date)
}

// Validate checks a single record.
func (m Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrEmptyTitle
	}
	if _, err := m.ReleaseDate(); err != nil {
		return fmt.Errorf("movie %d: %w", m.ID, err)
	}
	if !m.Genre.Valid() {
		return fmt.Errorf("movie %d: %w: %q", m.ID, ErrUnknownGenre, m.Genre)
	}
	return nil
}

// ValidateCatalog checks every record and that identifiers are unique.
func ValidateCatalog(catalog []Movie) error {
	seen := make(map[int64]bool, len(catalog))
	for _, m := range catalog {
		if seen[m.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, m.ID)
		}
		seen[m.ID] = true
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FindByID returns the record with the given id.
func FindByID(catalog []Movie, id int64) (Movie, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return Movie{}, false
}
