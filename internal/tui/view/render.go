// Package view provides view composition helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ViewState contains pre-rendered content and modal metadata.
type ViewState struct {
	Width            int
	Height           int
	BaseContent      string
	ModalContent     string
	ShowModal        bool
	ModalBg          lipgloss.Color
	EmptyPlaceholder string
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}

	if state.ShowModal && state.ModalContent != "" {
		return RenderModalOverlay(state.BaseContent, state.ModalContent, state.Width, state.Height, state.ModalBg)
	}
	return state.BaseContent
}

// RenderModalOverlay centers modal over base. Rows outside the modal keep the base content.
func RenderModalOverlay(base, modal string, width, height int, modalBg lipgloss.Color) string {
	modalLines := strings.Split(modal, "\n")
	modalW := min(lipgloss.Width(modal), width)
	if modalW == 0 {
		return base
	}

	top := max(0, (height-len(modalLines))/2)
	left := max(0, (width-modalW)/2)

	fill := lipgloss.NewStyle().Background(modalBg)
	bgSeq := backgroundSeq(modalBg)
	for i, line := range modalLines {
		w := lipgloss.Width(line)
		switch {
		case w > modalW:
			line = ansi.Cut(line, 0, modalW)
		case w < modalW:
			line += fill.Render(strings.Repeat(" ", modalW-w))
		}
		modalLines[i] = keepBackground(line, bgSeq) + ansi.ResetStyle
	}

	rows := strings.Split(PadLinesWithBackground(base, width, height, ""), "\n")
	for i, line := range modalLines {
		row := top + i
		if row >= len(rows) {
			break
		}
		rows[row] = ansi.Cut(rows[row], 0, left) + line + ansi.Cut(rows[row], left+modalW, width)
	}
	return strings.Join(rows, "\n")
}

// keepBackground re-applies bgSeq after every reset inside line so
// nested styles do not punch holes into the modal background.
func keepBackground(line, bgSeq string) string {
	if bgSeq == "" {
		return line
	}
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		line = strings.ReplaceAll(line, reset, reset+bgSeq)
	}
	return line
}

func backgroundSeq(bg lipgloss.Color) string {
	if bg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
}
