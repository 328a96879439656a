package usecase

import (
	"context"
	"fmt"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/stats"
)

const defaultLeaderboardLimit = 20

type StatsService struct {
	statsRepo stats.Repository
}

func NewStatsService(statsRepo stats.Repository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

func (s *StatsService) ListStats(ctx context.Context, f stats.Filter) ([]stats.TournamentStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ListStats")
	defer span.End()

	if f.TournamentID != nil && *f.TournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id must be positive", ErrInvalidInput)
	}

	rows, err := s.statsRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list stats: %w", err)
	}
	return rows, nil
}

func (s *StatsService) GetStat(ctx context.Context, id int64) (stats.TournamentStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.GetStat")
	defer span.End()

	if id <= 0 {
		return stats.TournamentStat{}, fmt.Errorf("%w: stat id is required", ErrInvalidInput)
	}

	row, exists, err := s.statsRepo.GetByID(ctx, id)
	if err != nil {
		return stats.TournamentStat{}, fmt.Errorf("get stat: %w", err)
	}
	if !exists {
		return stats.TournamentStat{}, fmt.Errorf("%w: stat=%d", ErrNotFound, id)
	}
	return row, nil
}

func (s *StatsService) CreateStat(ctx context.Context, row stats.TournamentStat) (stats.TournamentStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.CreateStat")
	defer span.End()

	if row.PlayerID <= 0 {
		return stats.TournamentStat{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if row.TournamentID <= 0 {
		return stats.TournamentStat{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	created, err := s.statsRepo.Create(ctx, row)
	if err != nil {
		return stats.TournamentStat{}, fmt.Errorf("create stat: %w", err)
	}
	return created, nil
}

func (s *StatsService) DeleteStat(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.DeleteStat")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: stat id is required", ErrInvalidInput)
	}

	_, exists, err := s.statsRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get stat: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: stat=%d", ErrNotFound, id)
	}

	if err := s.statsRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete stat: %w", err)
	}
	return nil
}

// Career aggregates the player's stat rows into one summary. Absent values
// count as zero here and only here; the underlying rows keep their nils.
func (s *StatsService) Career(ctx context.Context, playerID int64) (stats.CareerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Career")
	defer span.End()

	if playerID <= 0 {
		return stats.CareerSummary{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	summary, exists, err := s.statsRepo.CareerByPlayer(ctx, playerID)
	if err != nil {
		return stats.CareerSummary{}, fmt.Errorf("aggregate career: %w", err)
	}
	if !exists {
		return stats.CareerSummary{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return summary, nil
}

func (s *StatsService) BattingLeaderboard(ctx context.Context, limit int) ([]stats.CareerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.BattingLeaderboard")
	defer span.End()

	return s.leaderboard(ctx, stats.OrderByRuns, limit)
}

func (s *StatsService) BowlingLeaderboard(ctx context.Context, limit int) ([]stats.CareerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.BowlingLeaderboard")
	defer span.End()

	return s.leaderboard(ctx, stats.OrderByWickets, limit)
}

func (s *StatsService) leaderboard(ctx context.Context, order stats.LeaderboardOrder, limit int) ([]stats.CareerSummary, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}
	if limit == 0 {
		limit = defaultLeaderboardLimit
	}

	rows, err := s.statsRepo.Leaderboard(ctx, order, limit)
	if err != nil {
		return nil, fmt.Errorf("build %s leaderboard: %w", order, err)
	}
	return rows, nil
}
