package browse

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/javiermolinar/reelview/internal/movie"
)

func viewIDs(s *Session) []int64 {
	items := s.View().Items
	out := make([]int64, len(items))
	for i, m := range items {
		out[i] = m.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNew(t *testing.T) {
	s := New(movie.Catalog())

	q := s.Query()
	if q.Genre != movie.AllGenres || q.Mode != movie.ModeCatalog || q.Page != 1 || q.Search != "" {
		t.Errorf("unexpected default query: %+v", q)
	}
	if got := len(s.View().Items); got != movie.PageSize {
		t.Errorf("got %d items, want %d", got, movie.PageSize)
	}
	if !s.ShowPagination() {
		t.Error("expected pagination for 18 movies")
	}
	if got := s.PageLabel(); got != "Page 1 of 2" {
		t.Errorf("PageLabel = %q, want %q", got, "Page 1 of 2")
	}
	if s.CanPrev() {
		t.Error("previous should be disabled on page 1")
	}
	if !s.CanNext() {
		t.Error("next should be enabled on page 1")
	}
}

func TestPageNavigation(t *testing.T) {
	s := New(movie.Catalog())

	if s.PrevPage() {
		t.Error("PrevPage on first page should be a no-op")
	}
	if !s.NextPage() {
		t.Fatal("NextPage should advance")
	}
	if got := s.Query().Page; got != 2 {
		t.Errorf("page = %d, want 2", got)
	}
	if got := viewIDs(s); got[0] != 10 {
		t.Errorf("first id on page 2 = %d, want 10", got[0])
	}
	if s.NextPage() {
		t.Error("NextPage on last page should be a no-op")
	}
	if got := s.Query().Page; got != 2 {
		t.Errorf("page = %d, want 2 after clamped next", got)
	}
	if !s.PrevPage() {
		t.Error("PrevPage should go back")
	}
	if got := s.Query().Page; got != 1 {
		t.Errorf("page = %d, want 1", got)
	}
}

func TestSetSearch_ResetsPage(t *testing.T) {
	s := New(movie.Catalog())
	s.NextPage()

	s.SetSearch("e")
	if got := s.Query().Page; got != 1 {
		t.Errorf("page = %d, want 1 after search change", got)
	}

	// Unchanged search keeps the page.
	s.NextPage()
	page := s.Query().Page
	s.SetSearch("e")
	if got := s.Query().Page; got != page {
		t.Errorf("page = %d, want %d for unchanged search", got, page)
	}
}

func TestSetGenre_ResetsPage(t *testing.T) {
	s := New(movie.Catalog())
	s.NextPage()

	s.SetGenre(movie.GenreAction)
	if got := s.Query().Page; got != 1 {
		t.Errorf("page = %d, want 1 after genre change", got)
	}
	for _, m := range s.View().Items {
		if m.Genre != movie.GenreAction {
			t.Errorf("movie %d has genre %q", m.ID, m.Genre)
		}
	}
	if s.ShowPagination() {
		t.Error("4 action movies should not paginate")
	}

	s.SetGenre("")
	if got := s.Query().Genre; got != movie.AllGenres {
		t.Errorf("genre = %q, want %q", got, movie.AllGenres)
	}
}

func TestCycleGenre(t *testing.T) {
	s := New(movie.Catalog())

	s.CycleGenre(1)
	if got := s.Query().Genre; got != movie.GenreAction {
		t.Errorf("genre = %q, want %q", got, movie.GenreAction)
	}
	s.CycleGenre(-2)
	if got := s.Query().Genre; got != movie.GenreAdventure {
		t.Errorf("genre = %q, want %q (wrap)", got, movie.GenreAdventure)
	}
	s.CycleGenre(1)
	if got := s.Query().Genre; got != movie.AllGenres {
		t.Errorf("genre = %q, want %q (wrap)", got, movie.AllGenres)
	}
}

func TestFavoritesThenWatchlist(t *testing.T) {
	s := New(movie.Catalog())

	if !s.ToggleFavorite(7) || !s.ToggleFavorite(1) {
		t.Fatal("expected toggles to add favorites")
	}
	if got := s.WatchlistCount(); got != 2 {
		t.Errorf("WatchlistCount = %d, want 2", got)
	}

	if mode := s.ToggleWatchlist(); mode != movie.ModeWatchlist {
		t.Fatalf("mode = %v, want watchlist", mode)
	}
	if got := viewIDs(s); !equalIDs(got, []int64{1, 7}) {
		t.Errorf("watchlist = %v, want [1 7]", got)
	}
	if s.ShowPagination() {
		t.Error("watchlist should not paginate")
	}
	if s.ShowGenreFilter() {
		t.Error("watchlist should hide the genre filter")
	}

	// Unfavoriting from the watchlist removes the card immediately.
	s.ToggleFavorite(1)
	if got := viewIDs(s); !equalIDs(got, []int64{7}) {
		t.Errorf("watchlist = %v, want [7]", got)
	}
}

func TestToggleFavorite_UnknownID(t *testing.T) {
	s := New(movie.Catalog())
	if s.ToggleFavorite(404) {
		t.Error("unknown id should not become a favorite")
	}
	if s.WatchlistCount() != 0 {
		t.Errorf("WatchlistCount = %d, want 0", s.WatchlistCount())
	}
}

func TestWatchlistIgnoresSearch(t *testing.T) {
	s := New(movie.Catalog())
	s.ToggleFavorite(2)
	s.ToggleFavorite(16)
	s.SetMode(movie.ModeWatchlist)

	s.SetSearch("zzz_no_match")
	if got := viewIDs(s); !equalIDs(got, []int64{2, 16}) {
		t.Errorf("watchlist = %v, want [2 16]", got)
	}
}

func TestModeIsolation(t *testing.T) {
	s := New(movie.Catalog())
	s.SetSearch("e")
	s.NextPage()
	before := viewIDs(s)
	beforePage := s.Query().Page

	s.ToggleWatchlist()
	s.ToggleWatchlist()

	if got := viewIDs(s); !equalIDs(got, before) {
		t.Errorf("catalog view = %v, want %v", got, before)
	}
	if got := s.Query().Page; got != beforePage {
		t.Errorf("page = %d, want %d", got, beforePage)
	}
}

func TestEmptyResults(t *testing.T) {
	s := New(movie.Catalog())
	s.NextPage()
	s.SetSearch("zzz_no_match")

	if !s.View().Empty {
		t.Error("expected empty view")
	}
	if s.ShowPagination() {
		t.Error("empty view should not paginate")
	}
	if got := s.Query().Page; got != 1 {
		t.Errorf("page = %d, want 1", got)
	}
	if s.NextPage() || s.PrevPage() {
		t.Error("navigation should be disabled on empty view")
	}
}

func TestRefreshClampsStoredPage(t *testing.T) {
	s := New(movie.Catalog())
	if err := s.Restore(State{Genre: "all", Mode: "catalog", Page: 9}); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if got := s.Query().Page; got != 2 {
		t.Errorf("page = %d, want 2", got)
	}
}

func TestSetCatalog_DropsMissingFavorites(t *testing.T) {
	s := New(movie.Catalog())
	s.ToggleFavorite(3)
	s.ToggleFavorite(17)

	s.SetCatalog(movie.Catalog()[:10])
	if s.IsFavorite(17) {
		t.Error("favorite 17 should be dropped")
	}
	if !s.IsFavorite(3) {
		t.Error("favorite 3 should be kept")
	}
	if !s.ShowPagination() {
		t.Error("10 movies should still paginate")
	}
}

func TestStateRoundTrip(t *testing.T) {
	s := New(movie.Catalog())
	s.SetGenre(movie.GenreComedy)
	s.ToggleFavorite(4)
	s.ToggleFavorite(9)
	s.SetMode(movie.ModeWatchlist)

	data, err := json.Marshal(s.State())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored := New(movie.Catalog())
	if err := restored.Restore(st); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if restored.Query() != s.Query() {
		t.Errorf("query = %+v, want %+v", restored.Query(), s.Query())
	}
	if !restored.Favorites().Equal(s.Favorites()) {
		t.Errorf("favorites = %v, want %v", restored.Favorites().IDs(), s.Favorites().IDs())
	}
}

func TestRestore_Errors(t *testing.T) {
	s := New(movie.Catalog())

	if err := s.Restore(State{Genre: "Western"}); !errors.Is(err, movie.ErrUnknownGenre) {
		t.Errorf("got %v, want ErrUnknownGenre", err)
	}
	if err := s.Restore(State{Mode: "grid"}); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("got %v, want ErrUnknownMode", err)
	}
}
