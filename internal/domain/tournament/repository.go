package tournament

import "context"

type Repository interface {
	List(ctx context.Context) ([]Tournament, error)
	GetByID(ctx context.Context, id int64) (Tournament, bool, error)

	// GetOrCreateByName upserts by the unique tournament name; year is only
	// used when the row is created. The bool reports whether a row was created.
	GetOrCreateByName(ctx context.Context, name string, year int) (Tournament, bool, error)
}
