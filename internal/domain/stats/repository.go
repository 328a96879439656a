package stats

import "context"

// Filter narrows stat listings; nil fields match everything.
type Filter struct {
	TournamentID *int64
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]TournamentStat, error)
	ListByPlayer(ctx context.Context, playerID int64) ([]TournamentStat, error)
	GetByID(ctx context.Context, id int64) (TournamentStat, bool, error)
	Create(ctx context.Context, s TournamentStat) (TournamentStat, error)
	Delete(ctx context.Context, id int64) error

	// ReplaceAll deletes every stat row and inserts the given set inside one
	// transaction, so readers never observe the half-loaded state. Players
	// and tournaments are untouched.
	ReplaceAll(ctx context.Context, rows []TournamentStat) error

	// CareerByPlayer aggregates across the player's stat rows. A player with
	// zero rows yields an all-zero summary; the bool is false only when the
	// player does not exist.
	CareerByPlayer(ctx context.Context, playerID int64) (CareerSummary, bool, error)

	// Leaderboard returns per-player career summaries ranked by the given
	// order, descending, players with no recorded value last, ties broken by
	// ascending player id.
	Leaderboard(ctx context.Context, order LeaderboardOrder, limit int) ([]CareerSummary, error)
}
