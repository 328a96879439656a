package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/stats"
	"github.com/shrujal-srinath/GECC-Database/internal/infrastructure/repository/memory"
	"github.com/shrujal-srinath/GECC-Database/internal/platform/logging"
)

const importFixtureCSV = `player_name,tournament_id,team_name,batting_style,bowling_style,matches_played,runs_scored,highest_score,overs_bowled,wickets_taken
ms   dhoni,1,Chargers,Right Hand,,10,450.0,87,4,1
V Kohli,1,Strikers,,,8,380,120,,
J Bumrah,2,Strikers,,Right Arm Fast,9,,-,36.2,12
,1,Ghosts,,,1,0,0,,
A Sharma,not-a-number,Chargers,,,2,15,9,,
`

func newImportFixture() (*memory.PlayerRepository, *memory.TournamentRepository, *memory.StatsRepository, *ImportService) {
	players := memory.NewPlayerRepository()
	tournaments := memory.NewTournamentRepository()
	statsRepo := memory.NewStatsRepository(players)
	svc := NewImportService(players, tournaments, statsRepo, 2024, logging.NewNop())
	return players, tournaments, statsRepo, svc
}

func TestLoadCSVCreatesEverything(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	players, tournaments, statsRepo, svc := newImportFixture()

	summary, err := svc.LoadCSV(ctx, strings.NewReader(importFixtureCSV))
	require.NoError(t, err)

	require.Equal(t, 3, summary.RowsCreated)
	require.Equal(t, 3, summary.PlayersCreated)
	require.Equal(t, 2, summary.RowsSkipped)

	p, exists, err := players.GetByName(ctx, "Ms Dhoni")
	require.NoError(t, err)
	require.True(t, exists, "import must clean names before matching")
	require.Equal(t, "Right Hand", p.BattingStyle)

	ts, err := tournaments.List(ctx)
	require.NoError(t, err)
	require.Len(t, ts, 2)
	require.Equal(t, "Tournament 1", ts[0].Name)
	require.Equal(t, 2024, ts[0].Year)

	rows, err := statsRepo.List(ctx, stats.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
}

func TestLoadCSVPermissiveNumericParsing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	players, _, statsRepo, svc := newImportFixture()

	_, err := svc.LoadCSV(ctx, strings.NewReader(importFixtureCSV))
	require.NoError(t, err)

	p, _, err := players.GetByName(ctx, "Ms Dhoni")
	require.NoError(t, err)
	rows, err := statsRepo.ListByPlayer(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// "450.0" truncates to an int; "4" parses as overs float.
	require.NotNil(t, rows[0].Batting.RunsScored)
	require.EqualValues(t, 450, *rows[0].Batting.RunsScored)
	require.NotNil(t, rows[0].Bowling.OversBowled)
	require.EqualValues(t, 4, *rows[0].Bowling.OversBowled)

	// Bumrah's "-" highest score and empty runs stay nil, not zero.
	b, _, err := players.GetByName(ctx, "J Bumrah")
	require.NoError(t, err)
	bRows, err := statsRepo.ListByPlayer(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, bRows, 1)
	require.Nil(t, bRows[0].Batting.RunsScored)
	require.Nil(t, bRows[0].Batting.HighestScore)
	require.NotNil(t, bRows[0].Bowling.WicketsTaken)
	require.EqualValues(t, 12, *bRows[0].Bowling.WicketsTaken)
}

func TestLoadCSVIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	players, _, statsRepo, svc := newImportFixture()

	first, err := svc.LoadCSV(ctx, strings.NewReader(importFixtureCSV))
	require.NoError(t, err)
	second, err := svc.LoadCSV(ctx, strings.NewReader(importFixtureCSV))
	require.NoError(t, err)

	require.Equal(t, first.RowsCreated, second.RowsCreated)
	require.Zero(t, second.PlayersCreated, "reload must reuse existing players")

	rows, err := statsRepo.List(ctx, stats.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, first.RowsCreated, "reload must replace, not accumulate")

	ps, err := players.List(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 3)
}

func TestLoadCSVBackfillsStylesWithoutOverwriting(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	players, tournaments, statsRepo, _ := newImportFixture()
	svc := NewImportService(players, tournaments, statsRepo, 2024, logging.NewNop())

	_, err := svc.LoadCSV(ctx, strings.NewReader(importFixtureCSV))
	require.NoError(t, err)

	// Second load carries a different batting style; the stored one wins.
	conflicting := strings.ReplaceAll(importFixtureCSV, "Right Hand", "Left Hand")
	_, err = svc.LoadCSV(ctx, strings.NewReader(conflicting))
	require.NoError(t, err)

	p, _, err := players.GetByName(ctx, "Ms Dhoni")
	require.NoError(t, err)
	require.Equal(t, "Right Hand", p.BattingStyle)
}

func TestLoadCSVRejectsMissingKeyColumns(t *testing.T) {
	t.Parallel()

	_, _, _, svc := newImportFixture()
	_, err := svc.LoadCSV(context.Background(), strings.NewReader("runs_scored\n42\n"))
	require.ErrorIs(t, err, ErrInvalidInput)
}
