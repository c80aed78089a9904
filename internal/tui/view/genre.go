package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/reelview/internal/movie"
)

const (
	genreMoreLeft  = "‹ "
	genreMoreRight = " ›"
)

// GenreBarModel contains content and styles for the genre selector.
type GenreBarModel struct {
	InnerW        int
	Options       []movie.Genre // AllGenres first, then every genre
	Selected      movie.Genre
	Label         string
	LabelStyle    lipgloss.Style
	ActiveStyle   lipgloss.Style
	InactiveStyle lipgloss.Style
	Bg            lipgloss.Color
}

// GenreOptions returns the selector options in display order.
func GenreOptions() []movie.Genre {
	return movie.Genres()
}

// RenderGenreBar renders the selector on a single line.
// When the options do not fit, the window scrolls so the selected option stays visible.
func RenderGenreBar(model GenreBarModel) string {
	if model.InnerW <= 0 || len(model.Options) == 0 {
		return ""
	}

	label := model.LabelStyle.Render(model.Label)
	avail := model.InnerW - lipgloss.Width(label)

	selected := 0
	chips := make([]string, len(model.Options))
	for i, g := range model.Options {
		style := model.InactiveStyle
		if g == model.Selected {
			style = model.ActiveStyle
			selected = i
		}
		chips[i] = style.Render(g.String())
	}

	sep := lipgloss.NewStyle().Background(model.Bg).Render(" ")
	start := 0
	for start < selected && chipsWidth(chips[start:selected+1], sep)+edgeWidth(start > 0, true) > avail {
		start++
	}

	var b strings.Builder
	width := 0
	if start > 0 {
		b.WriteString(model.LabelStyle.Render(genreMoreLeft))
		width += lipgloss.Width(genreMoreLeft)
	}
	end := start
	for end < len(chips) {
		w := lipgloss.Width(chips[end])
		if end > start {
			w += lipgloss.Width(sep)
		}
		reserve := 0
		if end < len(chips)-1 {
			reserve = lipgloss.Width(genreMoreRight)
		}
		if width+w+reserve > avail && end > start {
			break
		}
		if end > start {
			b.WriteString(sep)
		}
		b.WriteString(chips[end])
		width += w
		end++
	}
	if end < len(chips) {
		b.WriteString(model.LabelStyle.Render(genreMoreRight))
	}

	return PlaceBox(model.InnerW, 1, lipgloss.Top, label+b.String(), model.Bg)
}

func chipsWidth(chips []string, sep string) int {
	w := 0
	for i, c := range chips {
		if i > 0 {
			w += lipgloss.Width(sep)
		}
		w += lipgloss.Width(c)
	}
	return w
}

func edgeWidth(left, right bool) int {
	w := 0
	if left {
		w += lipgloss.Width(genreMoreLeft)
	}
	if right {
		w += lipgloss.Width(genreMoreRight)
	}
	return w
}
