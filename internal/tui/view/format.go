package view

import "github.com/javiermolinar/reelview/internal/dateutil"

const (
	favoriteOn  = "♥"
	favoriteOff = "♡"
)

// FormatReleaseDate formats a YYYY-MM-DD date as "Jan 2, 2006".
// Unparseable dates are returned unchanged.
func FormatReleaseDate(date string) string {
	return dateutil.FormatDisplay(date)
}

// FavoriteMarker returns the heart shown on a card.
func FavoriteMarker(favorite bool) string {
	if favorite {
		return favoriteOn
	}
	return favoriteOff
}
