// Package theme provides color themes for the TUI.
package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg             lipgloss.Color
	CardBg         lipgloss.Color
	CardSelectedBg lipgloss.Color
	Fg             lipgloss.Color
	FgMuted        lipgloss.Color
	Accent         lipgloss.Color
	Favorite       lipgloss.Color
	Genre          lipgloss.Color
	Warning        lipgloss.Color

	GenreBg lipgloss.Color // Tag background behind the genre label

	TextOnAccent    lipgloss.Color
	TextOnGenre     lipgloss.Color
	TextOnSelection lipgloss.Color

	Modal ModalColors
}

// ModalColors holds modal-specific colors derived from a Theme.
type ModalColors struct {
	Bg        lipgloss.Color
	Border    lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Backdrop  lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	isLight := isLightTheme(t.Bg)
	genreBgHex := tagBg(t.Genre, t.Bg, isLight)

	modalBgHex := coalesce(t.BaseBg, t.BgHighlight, t.Bg)
	modalBackdropHex := coalesce(t.BgSelection, t.BgHighlight, t.Bg)
	selectionHex := coalesce(t.BgSelection, t.BgHighlight, t.Bg)

	return &Palette{
		Bg:             lipgloss.Color(t.Bg),
		CardBg:         lipgloss.Color(coalesce(t.BgHighlight, t.Bg)),
		CardSelectedBg: lipgloss.Color(selectionHex),
		Fg:             lipgloss.Color(t.Fg),
		FgMuted:        lipgloss.Color(t.FgMuted),
		Accent:         lipgloss.Color(t.Accent),
		Favorite:       lipgloss.Color(t.Favorite),
		Genre:          lipgloss.Color(t.Genre),
		Warning:        lipgloss.Color(t.Warning),

		GenreBg: lipgloss.Color(genreBgHex),

		TextOnAccent:    lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnGenre:     lipgloss.Color(chooseTextColor(genreBgHex, t.Fg, t.Bg)),
		TextOnSelection: lipgloss.Color(chooseTextColor(selectionHex, t.Fg, t.Bg)),

		Modal: ModalColors{
			Bg:        lipgloss.Color(modalBgHex),
			Border:    adaptiveColor(coalesce(t.ModalBorder, t.Accent)),
			Text:      adaptiveColor(coalesce(t.TextPrimary, t.Fg)),
			Muted:     adaptiveColor(coalesce(t.TextMuted, t.FgMuted)),
			Highlight: adaptiveColor(coalesce(t.Highlight, t.BgSelection, t.Accent)),
			Backdrop:  lipgloss.Color(modalBackdropHex),
		},
	}
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

func tagBg(accent, bg string, isLight bool) string {
	if isLight {
		return blendColors(accent, bg, 0.75)
	}
	return darkenColor(accent)
}

// darkenColor creates a darker version of a hex color for backgrounds.
// It halves each channel with a minimum floor so tags stay visible on dark themes.
func darkenColor(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}

	var r, g, b int
	parseHex(hex[1:3], &r)
	parseHex(hex[3:5], &g)
	parseHex(hex[5:7], &b)

	const factor = 0.50
	const floor = 40
	r = max(floor, int(float64(r)*factor))
	g = max(floor, int(float64(g)*factor))
	b = max(floor, int(float64(b)*factor))

	return formatHexColor(r, g, b)
}

// parseHex parses a 2-character hex string into an integer.
func parseHex(s string, v *int) {
	var val int
	for i := 0; i < len(s); i++ {
		val *= 16
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	*v = val
}

// formatHexColor formats RGB values as a hex color string.
func formatHexColor(r, g, b int) string {
	const hex = "0123456789abcdef"
	result := make([]byte, 7)
	result[0] = '#'
	result[1] = hex[r>>4]
	result[2] = hex[r&0xf]
	result[3] = hex[g>>4]
	result[4] = hex[g&0xf]
	result[5] = hex[b>>4]
	result[6] = hex[b&0xf]
	return string(result)
}

func adaptiveColor(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Dark:  hex,
		Light: hex,
	}
}

func chooseTextColor(bg, lightText, darkText string) string {
	lightContrast := contrastRatio(bg, lightText)
	darkContrast := contrastRatio(bg, darkText)
	if lightContrast >= darkContrast {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	if len(hex) != 7 || hex[0] != '#' {
		return 0
	}
	var r, g, b int
	parseHex(hex[1:3], &r)
	parseHex(hex[3:5], &g)
	parseHex(hex[5:7], &b)
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b)
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func blendColors(a, b string, ratio float64) string {
	if len(a) != 7 || a[0] != '#' || len(b) != 7 || b[0] != '#' {
		return a
	}
	ratio = math.Max(0, math.Min(1, ratio))

	var ar, ag, ab int
	var br, bg, bb int
	parseHex(a[1:3], &ar)
	parseHex(a[3:5], &ag)
	parseHex(a[5:7], &ab)
	parseHex(b[1:3], &br)
	parseHex(b[3:5], &bg)
	parseHex(b[5:7], &bb)

	r := int(float64(ar)*(1-ratio) + float64(br)*ratio)
	g := int(float64(ag)*(1-ratio) + float64(bg)*ratio)
	bv := int(float64(ab)*(1-ratio) + float64(bb)*ratio)

	return formatHexColor(r, g, bv)
}
