package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// SearchBoxModel contains content and styles for the search box.
type SearchBoxModel struct {
	InnerW       int
	Input        string // rendered textinput view
	Focused      bool
	Disabled     bool
	Hint         string
	Style        lipgloss.Style
	FocusedStyle lipgloss.Style
	HintStyle    lipgloss.Style
}

// RenderSearchBox renders the bordered search box.
func RenderSearchBox(model SearchBoxModel) string {
	style := model.Style
	if model.Focused {
		style = model.FocusedStyle
	}

	content := model.Input
	if model.Disabled && model.Hint != "" {
		content = model.HintStyle.Render(model.Hint)
	}
	return RenderPrompt(model.InnerW, style, []string{content})
}

// WrapTextToWidths wraps text across the provided widths.
func WrapTextToWidths(s string, firstWidth, otherWidth int) []string {
	if firstWidth <= 0 || otherWidth <= 0 {
		return []string{""}
	}

	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, 4)
	width := firstWidth
	lineStart := 0
	lastSpace := -1
	lineWidth := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == ' ' {
			lastSpace = i
		}

		runeWidth := runewidth.RuneWidth(r)
		if lineWidth+runeWidth > width {
			if lastSpace >= lineStart {
				lines = append(lines, string(runes[lineStart:lastSpace]))
				i = lastSpace
				lineStart = lastSpace + 1
			} else {
				lines = append(lines, string(runes[lineStart:i]))
				lineStart = i
				i--
			}
			width = otherWidth
			lastSpace = -1
			lineWidth = 0
			continue
		}
		lineWidth += runeWidth
	}

	lines = append(lines, string(runes[lineStart:]))
	return lines
}

// RenderPrompt renders a framed box of the given outer width with the provided lines.
func RenderPrompt(width int, style lipgloss.Style, lines []string) string {
	// Width includes padding but not border or margins.
	contentWidth := width - style.GetHorizontalBorderSize() - style.GetHorizontalMargins()
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if len(lines) == 0 {
		lines = []string{""}
	}
	return style.Render(strings.Join(lines, "\n"))
}
