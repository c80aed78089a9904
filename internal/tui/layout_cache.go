package tui

import (
	"github.com/javiermolinar/reelview/internal/config"
	"github.com/javiermolinar/reelview/internal/tui/view"
)

const (
	headerHeight   = 1
	searchHeight   = 3
	genreHeight    = 1
	pagerHeight    = 1
	footerFull     = 2
	footerCompact  = 1
	footerFullMinH = 18
	modalWidth     = 56
)

// LayoutCache stores layout dimensions derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	HeaderH int
	SearchH int
	GenreH  int
	GridH   int
	PagerH  int
	FooterH int

	Columns     int
	CardW       int
	VisibleRows int
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	appH, appV := m.styles.AppStyle.GetFrameSize()
	innerW := max(0, width-appH)
	innerH := max(0, height-appV)

	footerH := footerCompact
	if innerH >= footerFullMinH {
		footerH = footerFull
	}

	gridH := innerH - headerHeight - searchHeight - genreHeight - pagerHeight - footerH
	if gridH < 2 {
		gridH = 2
	}

	columns := config.DefaultColumns
	if m.config != nil {
		columns = m.config.UI.Columns
	}
	columns = min(max(columns, config.MinColumns), config.MaxColumns)
	// Fall back to fewer columns when cards would be unreadably narrow.
	for columns > 1 && view.CardWidth(innerW, columns) < 18 {
		columns--
	}

	return LayoutCache{
		InnerW:      innerW,
		InnerH:      innerH,
		HeaderH:     headerHeight,
		SearchH:     searchHeight,
		GenreH:      genreHeight,
		GridH:       gridH,
		PagerH:      pagerHeight,
		FooterH:     footerH,
		Columns:     columns,
		CardW:       view.CardWidth(innerW, columns),
		VisibleRows: view.VisibleRows(gridH),
	}
}
