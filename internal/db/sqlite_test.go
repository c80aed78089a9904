package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/reelview/internal/movie"
)

func TestListMovies_SeedsBuiltinCatalog(t *testing.T) {
	repo := newTestRepo(t)

	movies, err := repo.ListMovies(context.Background())
	if err != nil {
		t.Fatalf("ListMovies failed: %v", err)
	}

	want := movie.Catalog()
	if len(movies) != len(want) {
		t.Fatalf("got %d movies, want %d", len(movies), len(want))
	}
	for i := range want {
		if movies[i] != want[i] {
			t.Errorf("movie %d: got %+v, want %+v", i, movies[i], want[i])
		}
	}
}

func TestNew_InMemory(t *testing.T) {
	repo, err := New(MemoryPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	n, err := repo.CountMovies(context.Background())
	if err != nil {
		t.Fatalf("CountMovies failed: %v", err)
	}
	if n != 18 {
		t.Errorf("got %d movies, want 18", n)
	}
}

func TestNew_ReopenDoesNotDuplicate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	first, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_ = first.Close()

	second, err := New(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })

	n, err := second.CountMovies(context.Background())
	if err != nil {
		t.Fatalf("CountMovies failed: %v", err)
	}
	if n != 18 {
		t.Errorf("got %d movies after reopen, want 18", n)
	}
}

func TestOpen_PreservesSeedOrder(t *testing.T) {
	catalog := []movie.Movie{
		{ID: 30, Title: "Zeta", Date: "2025-01-01", Genre: movie.GenreDrama},
		{ID: 10, Title: "Alpha", Date: "2025-01-02", Genre: movie.GenreAction},
		{ID: 20, Title: "Mid", Date: "2025-01-03", Genre: movie.GenreHorror},
	}

	repo, err := Open(filepath.Join(t.TempDir(), "order.db"), catalog)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	movies, err := repo.ListMovies(context.Background())
	if err != nil {
		t.Fatalf("ListMovies failed: %v", err)
	}
	got := make([]int64, len(movies))
	for i, m := range movies {
		got[i] = m.ID
	}
	want := []int64{30, 10, 20}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestOpen_RejectsInvalidCatalog(t *testing.T) {
	catalog := []movie.Movie{
		{ID: 1, Title: "A", Date: "2025-01-01", Genre: movie.GenreDrama},
		{ID: 1, Title: "B", Date: "2025-01-01", Genre: movie.GenreDrama},
	}

	_, err := Open(MemoryPath, catalog)
	if !errors.Is(err, movie.ErrDuplicateID) {
		t.Errorf("got %v, want ErrDuplicateID", err)
	}
}

func TestGetMovie(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	m, err := repo.GetMovie(ctx, 7)
	if err != nil {
		t.Fatalf("GetMovie failed: %v", err)
	}
	if m == nil {
		t.Fatal("movie 7 not found")
	}
	if m.Title != "Sister Midnight" {
		t.Errorf("Title = %q, want %q", m.Title, "Sister Midnight")
	}
	if m.Genre != movie.GenreHorror {
		t.Errorf("Genre = %q, want %q", m.Genre, movie.GenreHorror)
	}
	if m.Date != "2025-03-14" {
		t.Errorf("Date = %q, want %q", m.Date, "2025-03-14")
	}
}

func TestGetMovie_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	m, err := repo.GetMovie(context.Background(), 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil, got %+v", m)
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025-02-13", want: "2025-02-13"},
		{in: "2025-02-13T00:00:00Z", want: "2025-02-13"},
		{in: "2025-02-13 00:00:00", want: "2025-02-13"},
		{in: "13/02/2025", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}
