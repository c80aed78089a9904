package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestWrapTextToWidths(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		first int
		other int
		want  []string
	}{
		{name: "fits", in: "Midnight Run", first: 20, other: 20, want: []string{"Midnight Run"}},
		{name: "breaks on space", in: "The Silent Harbor", first: 10, other: 10, want: []string{"The Silent", "Harbor"}},
		{name: "hard break", in: "abcdefgh", first: 3, other: 3, want: []string{"abc", "def", "gh"}},
		{name: "empty", in: "", first: 5, other: 5, want: []string{""}},
		{name: "zero width", in: "abc", first: 0, other: 5, want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapTextToWidths(tt.in, tt.first, tt.other)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Fatalf("WrapTextToWidths(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderSearchBox_DisabledShowsHint(t *testing.T) {
	model := SearchBoxModel{
		InnerW:       40,
		Input:        "> midnight",
		Disabled:     true,
		Hint:         "Search is off in the watchlist",
		Style:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
		FocusedStyle: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()),
	}

	out := ansi.Strip(RenderSearchBox(model))
	if !strings.Contains(out, "Search is off") {
		t.Fatalf("expected hint, got %q", out)
	}
	if strings.Contains(out, "midnight") {
		t.Fatalf("input should be hidden when disabled, got %q", out)
	}
	if w := lipgloss.Width(out); w != 40 {
		t.Fatalf("width = %d, want 40", w)
	}
}

func TestRenderSearchBox_FocusedStyle(t *testing.T) {
	model := SearchBoxModel{
		InnerW:       30,
		Input:        "> gorge",
		Focused:      true,
		Style:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
		FocusedStyle: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()),
	}

	out := ansi.Strip(RenderSearchBox(model))
	if !strings.Contains(out, "═") {
		t.Fatalf("expected focused border, got %q", out)
	}
	if !strings.Contains(out, "gorge") {
		t.Fatalf("expected input, got %q", out)
	}
}
