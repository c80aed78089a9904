// Package tui provides the terminal user interface for reelview.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/reelview/internal/browse"
	"github.com/javiermolinar/reelview/internal/config"
	"github.com/javiermolinar/reelview/internal/movie"
	"github.com/javiermolinar/reelview/internal/tui/commands"
	"github.com/javiermolinar/reelview/internal/tui/theme"
	"github.com/javiermolinar/reelview/internal/tui/view"
)

// Focus identifies which part of the screen receives key presses.
type Focus int

const (
	FocusGrid   Focus = iota
	FocusSearch       // typing edits the search text
	FocusDetail       // detail modal is open
)

// String returns a readable focus name.
func (f Focus) String() string {
	switch f {
	case FocusGrid:
		return "Grid"
	case FocusSearch:
		return "Search"
	case FocusDetail:
		return "Detail"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   movie.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Browsing state
	session *browse.Session
	focus   Focus
	cursor  int // index into the visible page
	offset  int // first card row drawn
	loading bool
	detail  *movie.Movie
	pending *browse.State // initial state waiting for the catalog

	// Components
	search textinput.Model

	// Terminal dimensions and layout
	width       int
	height      int
	layoutCache LayoutCache

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithState sets the initial browse state, applied once the catalog has loaded.
func WithState(st browse.State) ModelOption {
	return func(m *Model) {
		m.pending = &st
	}
}

// New creates a new TUI model. A nil repo browses the built-in catalog.
func New(repo movie.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if repo == nil {
		repo = movie.StaticRepository{}
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "Search Movies..."
	ti.Prompt = "⌕ "
	ti.CharLimit = 128
	ti.PlaceholderStyle = styles.SearchPlaceholder
	ti.TextStyle = styles.SearchTextStyle
	ti.PromptStyle = styles.SearchCursorStyle
	ti.Cursor.Style = styles.SearchCursorStyle
	ti.Cursor.TextStyle = styles.SearchTextStyle

	m := &Model{
		repo:    repo,
		config:  cfg,
		theme:   t,
		styles:  styles,
		session: browse.New(nil),
		focus:   FocusGrid,
		loading: true,
		search:  ti,
	}
	m.layoutCache = m.buildLayoutCache(0, 0)

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadCatalog(m.repo)
}

// Session exposes the browse session, mainly for tests and callers embedding the model.
func (m Model) Session() *browse.Session {
	return m.session
}

// selected returns the movie under the cursor.
func (m Model) selected() (movie.Movie, bool) {
	items := m.session.View().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return movie.Movie{}, false
	}
	return items[m.cursor], true
}

// clampCursor keeps the cursor on a visible card and the card row on screen.
func (m *Model) clampCursor() {
	n := len(m.session.View().Items)
	if n == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	m.cursor = min(max(m.cursor, 0), n-1)

	columns := max(1, m.layoutCache.Columns)
	row := m.cursor / columns
	m.offset = view.ScrollOffset(m.offset, row, m.layoutCache.VisibleRows)
}

func (m *Model) setStatus(msg string, d time.Duration) {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(d)
}

// Run starts the TUI.
func Run(repo movie.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
// When repo is nil the catalog store configured in cfg is opened and closed on exit.
func RunWithDebug(repo movie.Repository, cfg *config.Config, debug bool, opts ...ModelOption) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	if repo == nil {
		r, err := OpenRepository(cfg)
		if err != nil {
			LogError("open repo", err)
			return err
		}
		defer func() { _ = r.Close() }()
		repo = r
	}

	model := New(repo, cfg, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
