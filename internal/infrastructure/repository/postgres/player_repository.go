package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/player"
	qb "github.com/shrujal-srinath/GECC-Database/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"name",
	"playing_role",
	"batting_style",
	"bowling_style",
	"created_at",
	"updated_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("id", id))
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("name", name))
}

func (r *PlayerRepository) getOne(ctx context.Context, cond qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(cond).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerInsertModel{
		Name:         p.Name,
		PlayingRole:  p.PlayingRole,
		BattingStyle: p.BattingStyle,
		BowlingStyle: p.BowlingStyle,
	}, "RETURNING id")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	if err := r.db.GetContext(ctx, &p.ID, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	return p, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	query, args, err := qb.Update("players").
		Set("name", p.Name).
		Set("playing_role", p.PlayingRole).
		Set("batting_style", p.BattingStyle).
		Set("bowling_style", p.BowlingStyle).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player id=%d: %w", p.ID, err)
	}

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("players").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete player id=%d: %w", id, err)
	}

	return nil
}

// GetOrCreateByName is a single upsert so concurrent imports of the same name
// cannot race into duplicates. The no-op DO UPDATE makes RETURNING yield the
// existing row on conflict.
func (r *PlayerRepository) GetOrCreateByName(ctx context.Context, name string) (player.Player, bool, error) {
	query, args, err := qb.InsertModel("players", playerInsertModel{Name: name},
		`ON CONFLICT (name)
DO UPDATE SET name = EXCLUDED.name
RETURNING id, name, playing_role, batting_style, bowling_style, created_at, updated_at, (xmax = 0) AS inserted`)
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build upsert player query: %w", err)
	}

	var row struct {
		playerTableModel
		Inserted bool `db:"inserted"`
	}
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.Player{}, false, fmt.Errorf("upsert player name=%q: %w", name, err)
	}

	return playerFromRow(row.playerTableModel), row.Inserted, nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:           row.ID,
		Name:         row.Name,
		PlayingRole:  row.PlayingRole,
		BattingStyle: row.BattingStyle,
		BowlingStyle: row.BowlingStyle,
	}
}
