package view

import (
	"strconv"
	"strings"

	"github.com/javiermolinar/reelview/internal/movie"
)

// detailLabelWidth aligns the values in the detail body.
const detailLabelWidth = 9

// DetailBody renders the fields of a movie for the detail modal.
func DetailBody(m movie.Movie, favorite bool, width int, styles ModalStyles) string {
	watch := "no"
	if favorite {
		watch = styles.ModalFavoriteStyle.Render(FavoriteMarker(true) + " yes")
	}

	rows := []struct {
		label string
		value string
	}{
		{"ID", strconv.FormatInt(m.ID, 10)},
		{"Released", FormatReleaseDate(m.Date)},
		{"Genre", m.Genre.String()},
		{"Watchlist", watch},
		{"Poster", m.Poster},
	}

	valueW := max(1, width-detailLabelWidth-1)
	lines := make([]string, 0, len(rows)+2)
	for _, row := range rows {
		label := styles.ModalLabelStyle.Render(padRight(row.label, detailLabelWidth))
		wrapped := WrapTextToWidths(row.value, valueW, valueW)
		if row.label == "Watchlist" {
			wrapped = []string{row.value}
		}
		for i, part := range wrapped {
			if i == 0 {
				lines = append(lines, label+" "+styles.ModalBodyStyle.Render(part))
				continue
			}
			lines = append(lines, strings.Repeat(" ", detailLabelWidth+1)+styles.ModalBodyStyle.Render(part))
		}
	}
	return strings.Join(lines, "\n")
}

// DetailFooter renders the buttons of the detail modal.
func DetailFooter(favorite bool, styles ModalStyles) string {
	toggle := "[f] Add to watchlist"
	if favorite {
		toggle = "[f] Remove from watchlist"
	}
	return RenderModalButtons(styles, "[Esc] Close", toggle, "[y] Copy poster")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
