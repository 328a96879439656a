package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/player"
	"github.com/shrujal-srinath/GECC-Database/internal/domain/stats"
	"github.com/shrujal-srinath/GECC-Database/internal/infrastructure/repository/memory"
)

func intP(n int64) *int64       { return &n }
func floatP(f float64) *float64 { return &f }

func seedStatsFixture(t *testing.T) (*memory.PlayerRepository, *memory.StatsRepository) {
	t.Helper()

	players := memory.NewPlayerRepository()
	statsRepo := memory.NewStatsRepository(players)
	return players, statsRepo
}

func TestCareerSumsAndMaxAcrossTournaments(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	players, statsRepo := seedStatsFixture(t)
	p, err := players.Create(ctx, player.Player{Name: "Ms Dhoni"})
	if err != nil {
		t.Fatalf("seed player: %v", err)
	}

	rows := []stats.TournamentStat{
		{
			PlayerID:     p.ID,
			TournamentID: 1,
			Batting:      stats.BattingFigures{RunsScored: intP(50), HighestScore: intP(50), MatchesPlayed: intP(5)},
			Bowling:      stats.BowlingFigures{WicketsTaken: intP(2), OversBowled: floatP(10.3)},
		},
		{
			PlayerID:     p.ID,
			TournamentID: 2,
			Batting:      stats.BattingFigures{RunsScored: intP(30), HighestScore: intP(28), MatchesPlayed: intP(4)},
			Bowling:      stats.BowlingFigures{WicketsTaken: intP(1), OversBowled: floatP(6.0)},
		},
	}
	if err := statsRepo.ReplaceAll(ctx, rows); err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	svc := NewStatsService(statsRepo)
	summary, err := svc.Career(ctx, p.ID)
	if err != nil {
		t.Fatalf("career: %v", err)
	}

	if summary.TotalRuns != 80 {
		t.Fatalf("expected 80 total runs, got %d", summary.TotalRuns)
	}
	if summary.TotalWickets != 3 {
		t.Fatalf("expected 3 total wickets, got %d", summary.TotalWickets)
	}
	if summary.CareerHighestScore != 50 {
		t.Fatalf("expected career highest 50, got %d", summary.CareerHighestScore)
	}
	if summary.TotalMatches != 9 {
		t.Fatalf("expected 9 total matches, got %d", summary.TotalMatches)
	}
	if summary.PlayerName != "Ms Dhoni" {
		t.Fatalf("unexpected player name %q", summary.PlayerName)
	}
}

func TestCareerAbsentValuesCountAsZero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	players, statsRepo := seedStatsFixture(t)
	p, _ := players.Create(ctx, player.Player{Name: "J Bumrah"})

	// One tournament with bowling only, one with nothing recorded at all.
	rows := []stats.TournamentStat{
		{PlayerID: p.ID, TournamentID: 1, Bowling: stats.BowlingFigures{WicketsTaken: intP(12)}},
		{PlayerID: p.ID, TournamentID: 2},
	}
	if err := statsRepo.ReplaceAll(ctx, rows); err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	summary, err := NewStatsService(statsRepo).Career(ctx, p.ID)
	if err != nil {
		t.Fatalf("career: %v", err)
	}
	if summary.TotalRuns != 0 || summary.CareerHighestScore != 0 {
		t.Fatalf("absent batting must aggregate to zero, got %+v", summary)
	}
	if summary.TotalWickets != 12 {
		t.Fatalf("expected 12 wickets, got %d", summary.TotalWickets)
	}
}

func TestCareerZeroRowsYieldsZeroSummary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	players, statsRepo := seedStatsFixture(t)
	p, _ := players.Create(ctx, player.Player{Name: "R Patel"})

	summary, err := NewStatsService(statsRepo).Career(ctx, p.ID)
	if err != nil {
		t.Fatalf("career with zero rows must not error: %v", err)
	}
	if summary.TotalRuns != 0 || summary.TotalWickets != 0 || summary.TotalMatches != 0 {
		t.Fatalf("expected all-zero summary, got %+v", summary)
	}
}

func TestCareerUnknownPlayer(t *testing.T) {
	t.Parallel()

	_, statsRepo := seedStatsFixture(t)
	_, err := NewStatsService(statsRepo).Career(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBattingLeaderboardRanksMissingValuesLast(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	players, statsRepo := seedStatsFixture(t)
	a, _ := players.Create(ctx, player.Player{Name: "A Sharma"})
	b, _ := players.Create(ctx, player.Player{Name: "B Singh"})
	c, _ := players.Create(ctx, player.Player{Name: "C Rao"})

	rows := []stats.TournamentStat{
		{PlayerID: a.ID, TournamentID: 1, Batting: stats.BattingFigures{RunsScored: intP(10)}},
		// b has a stat row but no recorded runs: ranks below any recorded total.
		{PlayerID: b.ID, TournamentID: 1, Bowling: stats.BowlingFigures{WicketsTaken: intP(4)}},
		{PlayerID: c.ID, TournamentID: 1, Batting: stats.BattingFigures{RunsScored: intP(25)}},
	}
	if err := statsRepo.ReplaceAll(ctx, rows); err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	board, err := NewStatsService(statsRepo).BattingLeaderboard(ctx, 0)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}

	if len(board) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(board))
	}
	wantOrder := []string{"C Rao", "A Sharma", "B Singh"}
	for i, want := range wantOrder {
		if board[i].PlayerName != want {
			t.Fatalf("rank %d: expected %q, got %q", i, want, board[i].PlayerName)
		}
	}
}

func TestBowlingLeaderboardTiebreakByPlayerID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	players, statsRepo := seedStatsFixture(t)
	a, _ := players.Create(ctx, player.Player{Name: "A Sharma"})
	b, _ := players.Create(ctx, player.Player{Name: "B Singh"})

	rows := []stats.TournamentStat{
		{PlayerID: b.ID, TournamentID: 1, Bowling: stats.BowlingFigures{WicketsTaken: intP(5)}},
		{PlayerID: a.ID, TournamentID: 1, Bowling: stats.BowlingFigures{WicketsTaken: intP(5)}},
	}
	if err := statsRepo.ReplaceAll(ctx, rows); err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	board, err := NewStatsService(statsRepo).BowlingLeaderboard(ctx, 2)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if board[0].PlayerID != a.ID || board[1].PlayerID != b.ID {
		t.Fatalf("tie must break by ascending player id: %+v", board)
	}
}

func TestListStatsFiltersByTournament(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	players, statsRepo := seedStatsFixture(t)
	p, _ := players.Create(ctx, player.Player{Name: "A Sharma"})

	rows := []stats.TournamentStat{
		{PlayerID: p.ID, TournamentID: 1, Batting: stats.BattingFigures{RunsScored: intP(10)}},
		{PlayerID: p.ID, TournamentID: 2, Batting: stats.BattingFigures{RunsScored: intP(20)}},
	}
	if err := statsRepo.ReplaceAll(ctx, rows); err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	tournamentID := int64(2)
	got, err := NewStatsService(statsRepo).ListStats(ctx, stats.Filter{TournamentID: &tournamentID})
	if err != nil {
		t.Fatalf("list stats: %v", err)
	}
	if len(got) != 1 || got[0].TournamentID != 2 {
		t.Fatalf("filter did not apply: %+v", got)
	}
}
