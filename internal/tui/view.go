package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/reelview/internal/movie"
	"github.com/javiermolinar/reelview/internal/tui/view"
)

const (
	appTitle      = "reelview"
	emptyMessage  = "No movies found"
	emptyWatch    = "Your watchlist is empty. Press f on a movie to add it."
	loadingMsg    = "Loading catalog..."
	searchOffHint = "Search is off in the watchlist (w to go back)"
)

// View renders the TUI.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	showModal := m.focus == FocusDetail && m.detail != nil
	modal := ""
	if showModal {
		modal = m.renderDetail()
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		ModalContent:     modal,
		ShowModal:        showModal,
		ModalBg:          m.styles.ModalBgColor,
		EmptyPlaceholder: loadingMsg,
	}
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	sections := []string{
		m.renderHeader(layout),
		m.renderSearch(layout),
		m.renderGenreLine(layout),
		m.renderGrid(layout),
		m.renderPagination(layout),
		m.renderFooter(layout),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) renderHeader(layout LayoutCache) string {
	return view.RenderHeader(view.HeaderModel{
		InnerW:            layout.InnerW,
		Title:             appTitle,
		WatchlistCount:    m.session.WatchlistCount(),
		Watchlist:         m.session.Query().Mode == movie.ModeWatchlist,
		Loading:           m.loading,
		TitleStyle:        m.styles.TitleStyle,
		ButtonStyle:       m.styles.WatchlistStyle,
		ButtonActiveStyle: m.styles.WatchlistOnStyle,
		LoadingStyle:      m.styles.LoadingStyle,
		Bg:                m.styles.colorBg,
	})
}

func (m Model) renderSearch(layout LayoutCache) string {
	return view.RenderSearchBox(view.SearchBoxModel{
		InnerW:       layout.InnerW,
		Input:        m.search.View(),
		Focused:      m.focus == FocusSearch,
		Disabled:     m.session.Query().Mode == movie.ModeWatchlist,
		Hint:         searchOffHint,
		Style:        m.styles.SearchStyle,
		FocusedStyle: m.styles.SearchFocusedStyle,
		HintStyle:    m.styles.SearchHintStyle,
	})
}

func (m Model) renderGenreLine(layout LayoutCache) string {
	if !m.session.ShowGenreFilter() {
		caption := m.styles.GenreLabelStyle.Render("Showing your watchlist")
		return view.PlaceBox(layout.InnerW, layout.GenreH, lipgloss.Top, caption, m.styles.colorBg)
	}
	return view.RenderGenreBar(view.GenreBarModel{
		InnerW:        layout.InnerW,
		Options:       view.GenreOptions(),
		Selected:      m.session.Query().Genre,
		Label:         "Genre ",
		LabelStyle:    m.styles.GenreLabelStyle,
		ActiveStyle:   m.styles.GenreActiveStyle,
		InactiveStyle: m.styles.GenreInactiveStyle,
		Bg:            m.styles.colorBg,
	})
}

func (m Model) renderGrid(layout LayoutCache) string {
	v := m.session.View()
	cards := make([]view.CardModel, 0, len(v.Items))
	for i, mv := range v.Items {
		cards = append(cards, view.CardModel{
			Movie:    mv,
			Favorite: m.session.IsFavorite(mv.ID),
			Selected: i == m.cursor && m.focus != FocusSearch,
		})
	}

	empty := emptyMessage
	switch {
	case m.loading:
		empty = loadingMsg
	case m.session.Query().Mode == movie.ModeWatchlist:
		empty = emptyWatch
	}

	return view.RenderGrid(view.GridModel{
		InnerW:     layout.InnerW,
		GridH:      layout.GridH,
		Columns:    layout.Columns,
		RowOffset:  m.offset,
		Cards:      cards,
		Empty:      empty,
		Styles:     m.styles.Card,
		EmptyStyle: m.styles.EmptyStyle,
		Bg:         m.styles.colorBg,
	})
}

func (m Model) renderPagination(layout LayoutCache) string {
	if !m.session.ShowPagination() {
		return view.PlaceBox(layout.InnerW, layout.PagerH, lipgloss.Top, "", m.styles.colorBg)
	}
	return view.RenderPagination(view.PaginationModel{
		InnerW:        layout.InnerW,
		Label:         m.session.PageLabel(),
		HasPrev:       m.session.CanPrev(),
		HasNext:       m.session.CanNext(),
		ActiveStyle:   m.styles.PageActiveStyle,
		DisabledStyle: m.styles.PageDisabledStyle,
		LabelStyle:    m.styles.PageLabelStyle,
		Bg:            m.styles.colorBg,
	})
}

func (m Model) renderFooter(layout LayoutCache) string {
	status := m.statusMsg
	if status == "" {
		status = " "
	}
	return view.RenderFooter(view.FooterModel{
		InnerW:      layout.InnerW,
		FooterH:     layout.FooterH,
		StatusText:  status,
		HelpText:    m.renderHelp(),
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
		Bg:          m.styles.colorBg,
	})
}

func (m Model) renderHelp() string {
	switch m.focus {
	case FocusSearch:
		return "type to filter • enter/esc done"
	case FocusDetail:
		return "f favorite • y copy poster • esc close"
	}
	if m.session.Query().Mode == movie.ModeWatchlist {
		return "hjkl move • f remove • enter details • w catalog • q quit"
	}
	return "/ search • tab genre • hjkl move • n/p page • f favorite • enter details • w watchlist • q quit"
}

func (m Model) renderDetail() string {
	styles := m.styles.ModalStyles()
	mv := *m.detail
	favorite := m.session.IsFavorite(mv.ID)

	frameW, _ := m.styles.ModalStyle.GetFrameSize()
	bodyW := modalWidth - frameW
	if m.layoutCache.InnerW > 0 {
		bodyW = min(bodyW, m.layoutCache.InnerW-frameW)
	}

	return view.RenderModalFrame(
		mv.Title,
		view.DetailBody(mv, favorite, max(10, bodyW), styles),
		view.DetailFooter(favorite, styles),
		styles,
	)
}
