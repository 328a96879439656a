package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/player"
	"github.com/shrujal-srinath/GECC-Database/internal/domain/stats"
	"github.com/shrujal-srinath/GECC-Database/internal/domain/tournament"
	"github.com/shrujal-srinath/GECC-Database/internal/platform/logging"
)

// ImportSummary reports what one CSV load did.
type ImportSummary struct {
	RowsCreated    int
	PlayersCreated int
	PlayersUpdated int
	RowsSkipped    int
}

// ImportService loads the normalized stats CSV into the store. Loads are
// destructive for stat rows (the whole table is replaced in one transaction)
// and additive for players and tournaments.
type ImportService struct {
	playerRepo     player.Repository
	tournamentRepo tournament.Repository
	statsRepo      stats.Repository
	defaultYear    int
	logger         *logging.Logger
}

func NewImportService(
	playerRepo player.Repository,
	tournamentRepo tournament.Repository,
	statsRepo stats.Repository,
	defaultYear int,
	logger *logging.Logger,
) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		playerRepo:     playerRepo,
		tournamentRepo: tournamentRepo,
		statsRepo:      statsRepo,
		defaultYear:    defaultYear,
		logger:         logger,
	}
}

// LoadCSV reads the whole CSV, upserts players and tournaments row by row,
// then swaps the stat table in one transaction. Unusable rows (no player name,
// no parseable tournament id) are skipped and counted, never fatal.
func (s *ImportService) LoadCSV(ctx context.Context, r io.Reader) (ImportSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.LoadCSV")
	defer span.End()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return ImportSummary{}, errors.Wrap(err, "read csv header")
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	if _, ok := columns["player_name"]; !ok {
		return ImportSummary{}, fmt.Errorf("%w: csv has no player_name column", ErrInvalidInput)
	}
	if _, ok := columns["tournament_id"]; !ok {
		return ImportSummary{}, fmt.Errorf("%w: csv has no tournament_id column", ErrInvalidInput)
	}

	var summary ImportSummary
	var rows []stats.TournamentStat
	tournamentIDs := make(map[int64]int64)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ImportSummary{}, errors.Wrapf(err, "read csv line %d", line)
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		name := player.CleanName(field("player_name"))
		number, err := strconv.ParseInt(field("tournament_id"), 10, 64)
		if name == "" || err != nil {
			summary.RowsSkipped++
			s.logger.Warn("skipping unusable csv row", "line", line, "player_name", field("player_name"))
			continue
		}

		p, created, err := s.playerRepo.GetOrCreateByName(ctx, name)
		if err != nil {
			return summary, fmt.Errorf("get or create player %q: %w", name, err)
		}
		if created {
			summary.PlayersCreated++
		}
		if updated, err := s.backfillStyles(ctx, p, field("batting_style"), field("bowling_style")); err != nil {
			return summary, err
		} else if updated {
			summary.PlayersUpdated++
		}

		tournamentID, ok := tournamentIDs[number]
		if !ok {
			t, _, err := s.tournamentRepo.GetOrCreateByName(ctx, tournament.DisplayName(number), s.defaultYear)
			if err != nil {
				return summary, fmt.Errorf("get or create tournament %d: %w", number, err)
			}
			tournamentID = t.ID
			tournamentIDs[number] = tournamentID
		}

		rows = append(rows, stats.TournamentStat{
			PlayerID:     p.ID,
			TournamentID: tournamentID,
			TeamName:     toStringPtr(field("team_name")),
			Batting: stats.BattingFigures{
				MatchesPlayed:     toIntPtr(field("matches_played")),
				RunsScored:        toIntPtr(field("runs_scored")),
				BallsFaced:        toIntPtr(field("balls_faced")),
				HighestScore:      toIntPtr(field("highest_score")),
				NotOuts:           toIntPtr(field("not_outs")),
				Fours:             toIntPtr(field("fours")),
				Sixes:             toIntPtr(field("sixes")),
				Fifties:           toIntPtr(field("fifties")),
				Hundreds:          toIntPtr(field("hundreds")),
				BattingAverage:    toFloatPtr(field("batting_average")),
				BattingStrikeRate: toFloatPtr(field("batting_strike_rate")),
			},
			Bowling: stats.BowlingFigures{
				OversBowled:       toFloatPtr(field("overs_bowled")),
				RunsConceded:      toIntPtr(field("runs_conceded")),
				WicketsTaken:      toIntPtr(field("wickets_taken")),
				Maidens:           toIntPtr(field("maidens")),
				BowlingAverage:    toFloatPtr(field("bowling_average")),
				EconomyRate:       toFloatPtr(field("economy_rate")),
				BowlingStrikeRate: toFloatPtr(field("bowling_strike_rate")),
			},
		})
	}

	if err := s.statsRepo.ReplaceAll(ctx, rows); err != nil {
		return summary, fmt.Errorf("replace stat rows: %w", err)
	}
	summary.RowsCreated = len(rows)

	s.logger.InfoContext(ctx, "csv load complete",
		"rows_created", summary.RowsCreated,
		"players_created", summary.PlayersCreated,
		"players_updated", summary.PlayersUpdated,
		"rows_skipped", summary.RowsSkipped,
	)
	return summary, nil
}

// backfillStyles fills a player's style fields from the row when they are
// currently empty. Existing values are never overwritten by import data.
func (s *ImportService) backfillStyles(ctx context.Context, p player.Player, battingStyle, bowlingStyle string) (bool, error) {
	changed := false
	if p.BattingStyle == "" && battingStyle != "" {
		p.BattingStyle = battingStyle
		changed = true
	}
	if p.BowlingStyle == "" && bowlingStyle != "" {
		p.BowlingStyle = bowlingStyle
		changed = true
	}
	if !changed {
		return false, nil
	}
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return false, fmt.Errorf("backfill player %d styles: %w", p.ID, err)
	}
	return true, nil
}
