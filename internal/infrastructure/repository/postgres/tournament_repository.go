package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/tournament"
	qb "github.com/shrujal-srinath/GECC-Database/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db *sqlx.DB
}

var tournamentSelectColumns = []string{
	"id",
	"name",
	"year",
	"created_at",
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	query, args, err := qb.Select(tournamentSelectColumns...).From("tournaments").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tournaments query: %w", err)
	}

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, tournamentFromRow(row))
	}

	return out, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, id int64) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select(tournamentSelectColumns...).From("tournaments").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build select tournament query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("select tournament: %w", err)
	}

	return tournamentFromRow(row), true, nil
}

func (r *TournamentRepository) GetOrCreateByName(ctx context.Context, name string, year int) (tournament.Tournament, bool, error) {
	query, args, err := qb.InsertModel("tournaments", tournamentInsertModel{Name: name, Year: year},
		`ON CONFLICT (name)
DO UPDATE SET name = EXCLUDED.name
RETURNING id, name, year, created_at, (xmax = 0) AS inserted`)
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build upsert tournament query: %w", err)
	}

	var row struct {
		tournamentTableModel
		Inserted bool `db:"inserted"`
	}
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("upsert tournament name=%q: %w", name, err)
	}

	return tournamentFromRow(row.tournamentTableModel), row.Inserted, nil
}

func tournamentFromRow(row tournamentTableModel) tournament.Tournament {
	return tournament.Tournament{
		ID:   row.ID,
		Name: row.Name,
		Year: row.Year,
	}
}
