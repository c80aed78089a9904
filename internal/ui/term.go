package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Titles: bold
	colorTitle = color.New(color.Bold)

	// Watchlist heart: red
	colorFavorite = color.New(color.FgRed, color.Bold)

	// Genre tags: magenta
	colorGenre = color.New(color.FgMagenta)

	// Headers: bold cyan
	colorHeader = color.New(color.FgCyan, color.Bold)

	// Page footer: green
	colorPage = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatTitle(s string) string {
	return colorTitle.Sprint(s)
}

func formatFavorite(s string) string {
	return colorFavorite.Sprint(s)
}

func formatGenre(s string) string {
	return colorGenre.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatPage(s string) string {
	return colorPage.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
