// Package db provides SQLite storage for the movie catalog.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/reelview/internal/movie"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// SQLite implements movie.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ movie.Repository = (*SQLite)(nil)

// New opens the database at path, runs migrations and seeds the built-in catalog.
func New(path string) (*SQLite, error) {
	return Open(path, movie.Catalog())
}

// Open opens the database at path, runs migrations and seeds it with catalog.
// Rows that already exist are left untouched.
func Open(path string, catalog []movie.Movie) (*SQLite, error) {
	if err := movie.ValidateCatalog(catalog); err != nil {
		return nil, fmt.Errorf("validating seed catalog: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == MemoryPath || path == "" {
		// Each pooled connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	if err := s.seed(context.Background(), catalog); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}

	return s, nil
}

// seed inserts the catalog in a single transaction.
func (s *SQLite) seed(ctx context.Context, catalog []movie.Movie) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO movies (id, position, title, release_date, genre, poster)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, m := range catalog {
		if _, err := stmt.ExecContext(ctx, m.ID, i, m.Title, m.Date, string(m.Genre), m.Poster); err != nil {
			return fmt.Errorf("inserting movie %d: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ListMovies returns the whole catalog in display order.
func (s *SQLite) ListMovies(ctx context.Context) ([]movie.Movie, error) {
	query := `
		SELECT id, title, release_date, genre, poster
		FROM movies
		ORDER BY position, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var movies []movie.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movies: %w", err)
	}

	return movies, nil
}

// GetMovie retrieves a movie by ID. Returns nil, nil if it does not exist.
func (s *SQLite) GetMovie(ctx context.Context, id int64) (*movie.Movie, error) {
	query := `
		SELECT id, title, release_date, genre, poster
		FROM movies
		WHERE id = ?
	`

	m, err := scanMovie(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CountMovies returns the number of stored movies.
func (s *SQLite) CountMovies(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting movies: %w", err)
	}
	return n, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMovie(row scanner) (movie.Movie, error) {
	var (
		m           movie.Movie
		releaseDate string
		genre       string
	)
	if err := row.Scan(&m.ID, &m.Title, &releaseDate, &genre, &m.Poster); err != nil {
		if err == sql.ErrNoRows {
			return movie.Movie{}, err
		}
		return movie.Movie{}, fmt.Errorf("scanning movie: %w", err)
	}

	date, err := normalizeDate(releaseDate)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("parsing release date of movie %d: %w", m.ID, err)
	}
	m.Date = date
	m.Genre = movie.Genre(genre)
	return m, nil
}

// normalizeDate converts a stored DATE value back to YYYY-MM-DD.
func normalizeDate(s string) (string, error) {
	if _, err := time.Parse(movie.DateLayout, s); err == nil {
		return s, nil
	}

	// SQLite returns DATE columns as "2006-01-02T00:00:00Z".
	if len(s) == 20 && s[10] == 'T' && s[19] == 'Z' {
		if _, err := time.Parse(movie.DateLayout, s[:10]); err == nil {
			return s[:10], nil
		}
	}

	formats := []string{
		"2006-01-02 15:04:05",
		"2006-01-02 15:04:05 -0700 MST",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t.Format(movie.DateLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognized date format: %s", s)
}
