package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/reelview/internal/tui/commands"
)

const (
	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		m.search.Width = max(0, m.layoutCache.InnerW-7)
		m.clampCursor()
		return m, nil

	case commands.CatalogLoadedMsg:
		m.loading = false
		m.session.SetCatalog(msg.Movies)
		if m.pending != nil {
			if err := m.session.Restore(*m.pending); err != nil {
				LogError("restore state", err)
				m.err = err
				m.setStatus(fmt.Sprintf("Error: %v", err), errorDuration)
			}
			m.search.SetValue(m.session.Query().Search)
			m.pending = nil
		}
		m.clampCursor()
		LogQueryChange(m.session.Query(), m.session.View(), "catalog loaded")
		return m, nil

	case commands.ErrMsg:
		m.loading = false
		m.err = msg.Err
		LogError("command", msg.Err)
		m.setStatus(fmt.Sprintf("Error: %v", msg.Err), errorDuration)
		return m, nil

	case commands.StatusMsgCmd:
		m.setStatus(msg.Msg, statusDuration)
		return m, tea.Tick(statusDuration, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Forward everything else (cursor blink) to the search input while it has focus.
	if m.focus == FocusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	return m, nil
}
