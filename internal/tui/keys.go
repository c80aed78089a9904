package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/reelview/internal/movie"
	"github.com/javiermolinar/reelview/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg, m.focus)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.focus {
	case FocusSearch:
		return m.handleSearchKeys(msg)
	case FocusDetail:
		return m.handleDetailKeys(msg)
	default:
		return m.handleGridKeys(msg)
	}
}

// handleGridKeys handles keys while the card grid has focus.
func (m Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := max(1, m.layoutCache.Columns)
	n := len(m.session.View().Items)

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		if m.session.Query().Mode == movie.ModeWatchlist {
			return m, commands.ShowStatus("Search applies to the catalog, press w to leave the watchlist")
		}
		m.setFocus(FocusSearch, "focus search")
		cmd := m.search.Focus()
		return m, cmd

	case "esc":
		if m.session.Query().Search != "" {
			m.search.SetValue("")
			m.applySearch("clear search")
		}

	// Genre
	case "tab", "]":
		m.cycleGenre(1)
	case "shift+tab", "[":
		m.cycleGenre(-1)

	// Watchlist
	case "w":
		from := m.session.Query().Mode
		to := m.session.ToggleWatchlist()
		LogModeChange(from, to, "toggle watchlist")
		m.cursor, m.offset = 0, 0
		m.clampCursor()

	case "f", " ", "space":
		if sel, ok := m.selected(); ok {
			cmd := m.toggleFavorite(sel)
			return m, cmd
		}

	// Cursor
	case "h", "left":
		if m.cursor > 0 {
			m.cursor--
		}
	case "l", "right":
		if m.cursor < n-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor-columns >= 0 {
			m.cursor -= columns
		}
	case "j", "down":
		if m.cursor+columns < n {
			m.cursor += columns
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = n - 1

	// Pages
	case "n", "pgdown":
		if m.session.NextPage() {
			m.cursor, m.offset = 0, 0
			LogQueryChange(m.session.Query(), m.session.View(), "next page")
		}
	case "p", "pgup":
		if m.session.PrevPage() {
			m.cursor, m.offset = 0, 0
			LogQueryChange(m.session.Query(), m.session.View(), "previous page")
		}

	case "enter":
		if sel, ok := m.selected(); ok {
			m.detail = &sel
			m.setFocus(FocusDetail, "open detail")
		}

	case "y":
		if sel, ok := m.selected(); ok {
			return m, commands.CopyPoster(sel)
		}
	}

	m.clampCursor()
	return m, nil
}

// handleSearchKeys handles keys while the search box has focus.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "down":
		m.search.Blur()
		m.setFocus(FocusGrid, "leave search")
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.session.Query().Search {
		m.applySearch("search input")
	}
	return m, cmd
}

// handleDetailKeys handles keys while the detail modal is open.
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail == nil {
		m.setFocus(FocusGrid, "detail missing")
		return m, nil
	}

	switch msg.String() {
	case "esc", "enter", "q":
		m.detail = nil
		m.setFocus(FocusGrid, "close detail")
		m.clampCursor()
		return m, nil
	case "f", " ", "space":
		cmd := m.toggleFavorite(*m.detail)
		return m, cmd
	case "y":
		return m, commands.CopyPoster(*m.detail)
	}
	return m, nil
}

func (m *Model) setFocus(to Focus, reason string) {
	if m.focus == to {
		return
	}
	LogFocusChange(m.focus, to, reason)
	m.focus = to
}

func (m *Model) applySearch(reason string) {
	m.session.SetSearch(m.search.Value())
	m.cursor, m.offset = 0, 0
	m.clampCursor()
	LogQueryChange(m.session.Query(), m.session.View(), reason)
}

func (m *Model) cycleGenre(delta int) {
	if !m.session.ShowGenreFilter() {
		return
	}
	m.session.CycleGenre(delta)
	m.cursor, m.offset = 0, 0
	m.clampCursor()
	LogQueryChange(m.session.Query(), m.session.View(), "cycle genre")
}

func (m *Model) toggleFavorite(mv movie.Movie) tea.Cmd {
	favorite := m.session.ToggleFavorite(mv.ID)
	LogFavoriteToggle(mv.ID, favorite, m.session.WatchlistCount())
	m.clampCursor()
	if favorite {
		return commands.ShowStatus("Added " + mv.Title + " to watchlist")
	}
	return commands.ShowStatus("Removed " + mv.Title + " from watchlist")
}
