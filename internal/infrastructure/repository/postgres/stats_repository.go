package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/stats"
	qb "github.com/shrujal-srinath/GECC-Database/internal/platform/querybuilder"
)

type StatsRepository struct {
	db *sqlx.DB
}

var statSelectColumns = []string{
	"id",
	"player_id",
	"tournament_id",
	"team_name",
	"matches_played",
	"runs_scored",
	"balls_faced",
	"highest_score",
	"not_outs",
	"fours",
	"sixes",
	"fifties",
	"hundreds",
	"batting_average",
	"batting_strike_rate",
	"overs_bowled",
	"runs_conceded",
	"wickets_taken",
	"maidens",
	"bowling_average",
	"economy_rate",
	"bowling_strike_rate",
	"created_at",
}

// careerSelectColumns aggregate across a player's stat rows. Absent values
// are coalesced to zero here, at aggregation time, never in the stored rows.
var careerSelectColumns = []string{
	"p.id AS player_id",
	"p.name AS player_name",
	"COALESCE(SUM(s.matches_played), 0) AS total_matches",
	"COALESCE(SUM(s.runs_scored), 0) AS total_runs",
	"COALESCE(SUM(s.wickets_taken), 0) AS total_wickets",
	"COALESCE(MAX(s.highest_score), 0) AS career_highest_score",
	"COALESCE(SUM(s.not_outs), 0) AS total_not_outs",
	"COALESCE(SUM(s.fours), 0) AS total_fours",
	"COALESCE(SUM(s.sixes), 0) AS total_sixes",
	"COALESCE(SUM(s.fifties), 0) AS total_fifties",
	"COALESCE(SUM(s.hundreds), 0) AS total_hundreds",
	"COALESCE(SUM(s.maidens), 0) AS total_maidens",
	"COALESCE(SUM(s.overs_bowled), 0) AS total_overs_bowled",
	"COALESCE(SUM(s.runs_conceded), 0) AS total_runs_conceded",
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) List(ctx context.Context, f stats.Filter) ([]stats.TournamentStat, error) {
	builder := qb.Select(statSelectColumns...).From("player_tournament_stats")
	if f.TournamentID != nil {
		builder = builder.Where(qb.Eq("tournament_id", *f.TournamentID))
	}
	query, args, err := builder.OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select stats query: %w", err)
	}

	var rows []statTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select stats: %w", err)
	}

	out := make([]stats.TournamentStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, statFromRow(row))
	}

	return out, nil
}

func (r *StatsRepository) ListByPlayer(ctx context.Context, playerID int64) ([]stats.TournamentStat, error) {
	query, args, err := qb.Select(statSelectColumns...).From("player_tournament_stats").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("tournament_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select stats by player query: %w", err)
	}

	var rows []statTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select stats by player: %w", err)
	}

	out := make([]stats.TournamentStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, statFromRow(row))
	}

	return out, nil
}

func (r *StatsRepository) GetByID(ctx context.Context, id int64) (stats.TournamentStat, bool, error) {
	query, args, err := qb.Select(statSelectColumns...).From("player_tournament_stats").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return stats.TournamentStat{}, false, fmt.Errorf("build select stat query: %w", err)
	}

	var row statTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return stats.TournamentStat{}, false, nil
		}
		return stats.TournamentStat{}, false, fmt.Errorf("select stat: %w", err)
	}

	return statFromRow(row), true, nil
}

func (r *StatsRepository) Create(ctx context.Context, s stats.TournamentStat) (stats.TournamentStat, error) {
	query, args, err := qb.InsertModel("player_tournament_stats", statInsertFromDomain(s), "RETURNING id")
	if err != nil {
		return stats.TournamentStat{}, fmt.Errorf("build insert stat query: %w", err)
	}

	if err := r.db.GetContext(ctx, &s.ID, query, args...); err != nil {
		return stats.TournamentStat{}, fmt.Errorf("insert stat: %w", err)
	}

	return s, nil
}

func (r *StatsRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("player_tournament_stats").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete stat query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete stat id=%d: %w", id, err)
	}

	return nil
}

// ReplaceAll swaps the whole stat table inside one transaction, so readers
// see either the old load or the new one, never a half-loaded mix. Players
// and tournaments are untouched.
func (r *StatsRepository) ReplaceAll(ctx context.Context, rows []stats.TournamentStat) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace stats: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("player_tournament_stats").ToSQL()
	if err != nil {
		return fmt.Errorf("build delete stats query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete stats: %w", err)
	}

	for _, row := range rows {
		query, args, err := qb.InsertModel("player_tournament_stats", statInsertFromDomain(row), "")
		if err != nil {
			return fmt.Errorf("build insert stat query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert stat player_id=%d tournament_id=%d: %w", row.PlayerID, row.TournamentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace stats tx: %w", err)
	}

	return nil
}

func (r *StatsRepository) CareerByPlayer(ctx context.Context, playerID int64) (stats.CareerSummary, bool, error) {
	query, args, err := qb.Select(careerSelectColumns...).From("players p").
		LeftJoin("player_tournament_stats s ON s.player_id = p.id").
		Where(qb.Eq("p.id", playerID)).
		GroupBy("p.id", "p.name").
		ToSQL()
	if err != nil {
		return stats.CareerSummary{}, false, fmt.Errorf("build career query: %w", err)
	}

	var row careerRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return stats.CareerSummary{}, false, nil
		}
		return stats.CareerSummary{}, false, fmt.Errorf("aggregate career player_id=%d: %w", playerID, err)
	}

	return careerFromRow(row), true, nil
}

func (r *StatsRepository) Leaderboard(ctx context.Context, order stats.LeaderboardOrder, limit int) ([]stats.CareerSummary, error) {
	rankExpr := "SUM(s.runs_scored)"
	if order == stats.OrderByWickets {
		rankExpr = "SUM(s.wickets_taken)"
	}

	query, args, err := qb.Select(careerSelectColumns...).From("players p").
		LeftJoin("player_tournament_stats s ON s.player_id = p.id").
		GroupBy("p.id", "p.name").
		OrderBy(rankExpr+" DESC NULLS LAST", "p.id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build leaderboard query: %w", err)
	}

	var rows []careerRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leaderboard: %w", err)
	}

	out := make([]stats.CareerSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, careerFromRow(row))
	}

	return out, nil
}
