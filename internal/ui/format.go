package ui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/reelview/internal/browse"
	"github.com/javiermolinar/reelview/internal/movie"
	"github.com/javiermolinar/reelview/internal/tui/view"
)

// ErrInvalidID is returned for a movie id that is not a positive integer.
var ErrInvalidID = errors.New("invalid movie id")

const (
	minTitleWidth = 12
	maxTitleWidth = 40

	// "  ♥ #18  " before the title, "  Mar 14, 2025  [Animation]" after it.
	lineOverhead = 9 + 28
)

// ParseID parses a single movie id.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

// ParseIDs parses a comma-separated id list such as "1,7". Empty items are skipped.
func ParseIDs(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		id, err := ParseID(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// TitleWidth returns the title column width for a terminal of the given width.
func TitleWidth(termW int) int {
	return min(max(termW-lineOverhead, minTitleWidth), maxTitleWidth)
}

// FormatMovieLine renders one movie as a single line.
func FormatMovieLine(m movie.Movie, favorite bool, titleW int) string {
	marker := formatMuted(view.FavoriteMarker(false))
	if favorite {
		marker = formatFavorite(view.FavoriteMarker(true))
	}

	title := runewidth.Truncate(m.Title, titleW, "…")
	title = runewidth.FillRight(title, titleW)

	return fmt.Sprintf("  %s %s  %s  %s  %s",
		marker,
		formatMuted(fmt.Sprintf("#%-3d", m.ID)),
		formatTitle(title),
		formatMuted(fmt.Sprintf("%-12s", view.FormatReleaseDate(m.Date))),
		formatGenre("["+m.Genre.String()+"]"),
	)
}

// PrintView prints the visible movies of a session followed by a footer line.
func PrintView(w io.Writer, s *browse.Session, titleW int) {
	v := s.View()
	q := s.Query()

	if v.Empty {
		if q.Mode == movie.ModeWatchlist {
			fmt.Fprintln(w, "Your watchlist is empty.")
			return
		}
		fmt.Fprintln(w, "No movies found.")
		return
	}

	for _, m := range v.Items {
		fmt.Fprintln(w, FormatMovieLine(m, s.IsFavorite(m.ID), titleW))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, formatPage(FooterLine(s)))
}

// FooterLine summarizes the view: the page label in the catalog, the count in the watchlist.
func FooterLine(s *browse.Session) string {
	if s.Query().Mode == movie.ModeWatchlist {
		return fmt.Sprintf("Watchlist: %d movie(s)", len(s.View().Items))
	}
	return s.PageLabel()
}

// RenderTable renders the visible movies of a session as a bordered table.
func RenderTable(s *browse.Session) string {
	v := s.View()
	rows := make([][]string, 0, len(v.Items))
	for _, m := range v.Items {
		rows = append(rows, []string{
			strconv.FormatInt(m.ID, 10),
			m.Title,
			view.FormatReleaseDate(m.Date),
			m.Genre.String(),
			view.FavoriteMarker(s.IsFavorite(m.ID)),
		})
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Headers("ID", "Title", "Released", "Genre", "♥").
		Border(lipgloss.RoundedBorder()).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	return t.Render()
}

// PrintMovie prints every field of a movie.
func PrintMovie(w io.Writer, m movie.Movie, favorite bool) {
	fmt.Fprintf(w, "%s %s\n\n", formatHeader(m.Title), formatMuted(fmt.Sprintf("#%d", m.ID)))
	fmt.Fprintf(w, "  %s %s\n", formatMuted("Released "), view.FormatReleaseDate(m.Date))
	fmt.Fprintf(w, "  %s %s\n", formatMuted("Genre    "), formatGenre(m.Genre.String()))
	watch := "no"
	if favorite {
		watch = formatFavorite(view.FavoriteMarker(true) + " yes")
	}
	fmt.Fprintf(w, "  %s %s\n", formatMuted("Watchlist"), watch)
	fmt.Fprintf(w, "  %s %s\n", formatMuted("Poster   "), m.Poster)
}
