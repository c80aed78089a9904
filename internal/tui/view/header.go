package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderModel contains content and styles for the title bar.
type HeaderModel struct {
	InnerW         int
	Title          string
	WatchlistCount int
	Watchlist      bool // watchlist mode is active
	Loading        bool

	TitleStyle        lipgloss.Style
	ButtonStyle       lipgloss.Style
	ButtonActiveStyle lipgloss.Style
	LoadingStyle      lipgloss.Style
	Bg                lipgloss.Color
}

// WatchlistLabel returns the header button label, e.g. "♥ Watchlist (2)".
func WatchlistLabel(count int) string {
	return favoriteOn + " Watchlist (" + strconv.Itoa(count) + ")"
}

// RenderHeader renders the title on the left and the watchlist button on the right.
func RenderHeader(model HeaderModel) string {
	title := model.TitleStyle.Render(model.Title)
	if model.Loading {
		title += model.LoadingStyle.Render(" loading…")
	}

	buttonStyle := model.ButtonStyle
	if model.Watchlist {
		buttonStyle = model.ButtonActiveStyle
	}
	button := buttonStyle.Render(WatchlistLabel(model.WatchlistCount))

	gap := model.InnerW - lipgloss.Width(title) - lipgloss.Width(button)
	if gap < 1 {
		return PlaceBox(model.InnerW, 1, lipgloss.Top, title, model.Bg)
	}
	fill := lipgloss.NewStyle().Background(model.Bg).Render(strings.Repeat(" ", gap))
	return title + fill + button
}
