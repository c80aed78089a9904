package movie

import "context"

// Repository defines read access to the movie catalog.
type Repository interface {
	// ListMovies returns the whole catalog in display order.
	ListMovies(ctx context.Context) ([]Movie, error)

	// GetMovie returns the record with the given id, or nil if absent.
	GetMovie(ctx context.Context, id int64) (*Movie, error)

	// Close releases any resources held by the repository.
	Close() error
}

// StaticRepository serves the built-in catalog from memory.
type StaticRepository struct{}

// ListMovies returns a copy of the built-in catalog.
func (StaticRepository) ListMovies(_ context.Context) ([]Movie, error) {
	return Catalog(), nil
}

// GetMovie returns a built-in record by id.
func (StaticRepository) GetMovie(_ context.Context, id int64) (*Movie, error) {
	m, ok := FindByID(builtin, id)
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// Close is a no-op.
func (StaticRepository) Close() error { return nil }
