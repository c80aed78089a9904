package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const cardGap = 1

// GridModel contains the cards of the current page and layout metadata.
type GridModel struct {
	InnerW     int
	GridH      int
	Columns    int
	RowOffset  int // first card row to draw
	Cards      []CardModel
	Empty      string // placeholder shown when there are no cards
	Styles     CardStyles
	EmptyStyle lipgloss.Style
	Bg         lipgloss.Color
}

// CardWidth returns the width of each card for the given columns.
func CardWidth(innerW, columns int) int {
	if columns < 1 {
		columns = 1
	}
	w := (innerW - cardGap*(columns-1)) / columns
	return max(w, 8)
}

// GridRows returns the number of card rows needed for n cards.
func GridRows(n, columns int) int {
	if n <= 0 || columns < 1 {
		return 0
	}
	return (n + columns - 1) / columns
}

// RenderGrid lays the cards out row by row.
func RenderGrid(model GridModel) string {
	if model.GridH <= 0 {
		return ""
	}
	if len(model.Cards) == 0 {
		placeholder := model.EmptyStyle.Render(model.Empty)
		placed := lipgloss.Place(model.InnerW, model.GridH, lipgloss.Center, lipgloss.Center, placeholder,
			lipgloss.WithWhitespaceBackground(model.Bg))
		return PadLinesWithBackground(placed, model.InnerW, model.GridH, model.Bg)
	}

	columns := max(1, model.Columns)
	width := CardWidth(model.InnerW, columns)
	gap := lipgloss.NewStyle().Background(model.Bg).Render(strings.Repeat(" ", cardGap))

	offset := min(max(0, model.RowOffset), GridRows(len(model.Cards), columns)-1)
	rows := make([]string, 0, GridRows(len(model.Cards), columns))
	for start := offset * columns; start < len(model.Cards); start += columns {
		end := min(start+columns, len(model.Cards))
		parts := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, strings.TrimSuffix(strings.Repeat(gap+"\n", CardHeight), "\n"))
			}
			card := model.Cards[i]
			card.Width = width
			parts = append(parts, RenderCard(card, model.Styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	return PlaceBox(model.InnerW, model.GridH, lipgloss.Top, strings.Join(rows, "\n"), model.Bg)
}

// VisibleRows returns how many card rows fit in gridH lines.
func VisibleRows(gridH int) int {
	return max(1, gridH/CardHeight)
}

// ScrollOffset returns the first row to draw so that cursorRow stays visible.
func ScrollOffset(current, cursorRow, visible int) int {
	if visible < 1 {
		visible = 1
	}
	if cursorRow < current {
		return cursorRow
	}
	if cursorRow >= current+visible {
		return cursorRow - visible + 1
	}
	return max(0, current)
}
