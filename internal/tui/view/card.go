package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/reelview/internal/movie"
)

// CardHeight is the rendered height of a card including its border.
const CardHeight = 5

// CardStyles groups the styles used to render a movie card.
type CardStyles struct {
	Card          lipgloss.Style // border and background of an unselected card
	Selected      lipgloss.Style // border and background of the cursor card
	Title         lipgloss.Style
	SelectedTitle lipgloss.Style
	Date          lipgloss.Style
	Genre         lipgloss.Style
	Favorite      lipgloss.Style
	NotFavorite   lipgloss.Style
}

// CardModel describes one card in the grid.
type CardModel struct {
	Movie    movie.Movie
	Favorite bool
	Selected bool
	Width    int
}

// RenderCard renders a bordered card of exactly Width columns and CardHeight rows.
func RenderCard(card CardModel, styles CardStyles) string {
	box := styles.Card
	titleStyle := styles.Title
	if card.Selected {
		box = styles.Selected
		titleStyle = styles.SelectedTitle
	}

	frameW, _ := box.GetFrameSize()
	innerW := card.Width - frameW
	if innerW < 1 {
		innerW = 1
	}
	bg := box.GetBackground()

	marker := styles.NotFavorite.Render(FavoriteMarker(card.Favorite))
	if card.Favorite {
		marker = styles.Favorite.Render(FavoriteMarker(true))
	}
	markerW := lipgloss.Width(marker)

	titleW := max(0, innerW-markerW-1)
	title := titleStyle.Render(ansi.Truncate(card.Movie.Title, titleW, "…"))
	titleGap := max(0, innerW-lipgloss.Width(title)-markerW)
	titleLine := title + lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", titleGap)) + marker

	dateLine := styles.Date.Render(ansi.Truncate(FormatReleaseDate(card.Movie.Date), innerW, "…"))
	genreLine := styles.Genre.Render(ansi.Truncate(card.Movie.Genre.String(), max(0, innerW-2), "…"))

	body := lipgloss.JoinVertical(lipgloss.Left, titleLine, dateLine, genreLine)
	return box.Width(card.Width - box.GetHorizontalBorderSize()).Render(body)
}
