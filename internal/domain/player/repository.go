package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	GetByName(ctx context.Context, name string) (Player, bool, error)
	Create(ctx context.Context, p Player) (Player, error)
	Update(ctx context.Context, p Player) error
	Delete(ctx context.Context, id int64) error

	// GetOrCreateByName inserts the player if the name is unseen and returns
	// the existing row otherwise, in a single upsert so concurrent imports
	// cannot create duplicates. The bool reports whether a row was created.
	GetOrCreateByName(ctx context.Context, name string) (Player, bool, error)
}
