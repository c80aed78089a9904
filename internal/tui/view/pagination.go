package view

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	prevLabel = "‹ Previous"
	nextLabel = "Next ›"
)

// PaginationModel contains content and styles for the pagination bar.
type PaginationModel struct {
	InnerW        int
	Label         string // "Page X of Y"
	HasPrev       bool
	HasNext       bool
	ActiveStyle   lipgloss.Style
	DisabledStyle lipgloss.Style
	LabelStyle    lipgloss.Style
	Bg            lipgloss.Color
}

// RenderPagination renders "‹ Previous  Page X of Y  Next ›" centered.
// Controls that cannot be used are rendered with the disabled style.
func RenderPagination(model PaginationModel) string {
	prevStyle := model.DisabledStyle
	if model.HasPrev {
		prevStyle = model.ActiveStyle
	}
	nextStyle := model.DisabledStyle
	if model.HasNext {
		nextStyle = model.ActiveStyle
	}

	spacer := lipgloss.NewStyle().Background(model.Bg).Render("  ")
	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		prevStyle.Render(prevLabel),
		spacer,
		model.LabelStyle.Render(model.Label),
		spacer,
		nextStyle.Render(nextLabel),
	)

	placed := lipgloss.PlaceHorizontal(model.InnerW, lipgloss.Center, bar,
		lipgloss.WithWhitespaceBackground(model.Bg))
	return PadLinesWithBackground(placed, model.InnerW, 1, model.Bg)
}
