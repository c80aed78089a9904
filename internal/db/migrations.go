package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS movies (
			id           INTEGER PRIMARY KEY,
			position     INTEGER NOT NULL,
			title        TEXT NOT NULL CHECK(length(trim(title)) > 0),
			release_date DATE NOT NULL,
			genre        TEXT NOT NULL CHECK(genre IN (
				'Action', 'Romance', 'Comedy', 'Drama', 'Thriller',
				'Horror', 'Animation', 'Sci-Fi', 'Adventure'
			)),
			poster       TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_movies_position ON movies(position);
		CREATE INDEX IF NOT EXISTS idx_movies_genre ON movies(genre);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating movies table: %w", err)
	}

	return nil
}
