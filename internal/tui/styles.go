package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/reelview/internal/tui/theme"
	"github.com/javiermolinar/reelview/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg       lipgloss.Color
	colorCardBg   lipgloss.Color
	colorSelectBg lipgloss.Color
	colorFg       lipgloss.Color
	colorFgMuted  lipgloss.Color
	colorAccent   lipgloss.Color
	colorFavorite lipgloss.Color
	colorGenre    lipgloss.Color
	colorWarning  lipgloss.Color

	// Header
	TitleStyle       lipgloss.Style
	WatchlistStyle   lipgloss.Style
	WatchlistOnStyle lipgloss.Style
	LoadingStyle     lipgloss.Style

	// Search box
	SearchStyle        lipgloss.Style
	SearchFocusedStyle lipgloss.Style
	SearchHintStyle    lipgloss.Style
	SearchTextStyle    lipgloss.Style
	SearchPlaceholder  lipgloss.Style
	SearchCursorStyle  lipgloss.Style

	// Genre selector
	GenreLabelStyle    lipgloss.Style
	GenreActiveStyle   lipgloss.Style
	GenreInactiveStyle lipgloss.Style

	// Cards
	Card view.CardStyles

	// Empty grid placeholder
	EmptyStyle lipgloss.Style

	// Pagination
	PageActiveStyle   lipgloss.Style
	PageDisabledStyle lipgloss.Style
	PageLabelStyle    lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalFavoriteStyle     lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorCardBg = palette.CardBg
	s.colorSelectBg = palette.CardSelectedBg
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorFavorite = palette.Favorite
	s.colorGenre = palette.Genre
	s.colorWarning = palette.Warning

	// Header
	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.WatchlistStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorCardBg).
		Padding(0, 1)

	s.WatchlistOnStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Padding(0, 1)

	s.LoadingStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Italic(true)

	// Search box
	s.SearchStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorCardBg).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.SearchFocusedStyle = s.SearchStyle.
		BorderForeground(s.colorAccent).
		Background(s.colorSelectBg)

	s.SearchHintStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorCardBg).
		Italic(true)

	s.SearchTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.SearchPlaceholder = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.SearchCursorStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	// Genre selector
	s.GenreLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.GenreActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnGenre).
		Background(palette.GenreBg).
		Padding(0, 1)

	s.GenreInactiveStyle = lipgloss.NewStyle().
		Foreground(s.colorGenre).
		Background(s.colorBg).
		Padding(0, 1)

	// Cards
	cardBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorCardBg).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.Card = view.CardStyles{
		Card: cardBox,
		Selected: cardBox.
			Border(lipgloss.ThickBorder()).
			BorderForeground(s.colorAccent).
			Background(s.colorSelectBg).
			Foreground(palette.TextOnSelection),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.colorFg).
			Background(s.colorCardBg),
		SelectedTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(palette.TextOnSelection).
			Background(s.colorSelectBg),
		Date: lipgloss.NewStyle().
			Foreground(s.colorFgMuted),
		Genre: lipgloss.NewStyle().
			Foreground(palette.TextOnGenre).
			Background(palette.GenreBg).
			Padding(0, 1),
		Favorite: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.colorFavorite),
		NotFavorite: lipgloss.NewStyle().
			Foreground(s.colorFgMuted),
	}

	s.EmptyStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Italic(true)

	// Pagination
	s.PageActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.PageDisabledStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Faint(true)

	s.PageLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	// Status message
	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	// Help text
	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Modal
	modal := palette.Modal
	modalBg := modal.Bg
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modalBg).
		Foreground(modal.Text).
		Padding(1, 2).
		Width(modalWidth).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalFavoriteStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFavorite).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Highlight)

	// App container
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		Padding(0, 1)

	return s
}

// ModalStyles returns the subset of styles used by modal frames.
func (s *Styles) ModalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       s.ModalHeaderStyle,
		ModalTitleStyle:        s.ModalTitleStyle,
		ModalFooterStyle:       s.ModalFooterStyle,
		ModalStyle:             s.ModalStyle,
		ModalButtonStyle:       s.ModalButtonStyle,
		ModalButtonActiveStyle: s.ModalButtonActiveStyle,
		ModalBodyStyle:         s.ModalBodyStyle,
		ModalLabelStyle:        s.ModalLabelStyle,
		ModalFavoriteStyle:     s.ModalFavoriteStyle,
	}
}
