package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/stats"
)

// StatsRepository keeps stat rows in memory. It needs the player repository
// to resolve names and to rank every known player, mirroring the LEFT JOIN
// the SQL implementation does.
type StatsRepository struct {
	mu      sync.RWMutex
	rows    []stats.TournamentStat
	nextID  int64
	players *PlayerRepository
}

func NewStatsRepository(players *PlayerRepository) *StatsRepository {
	return &StatsRepository{
		nextID:  1,
		players: players,
	}
}

func (r *StatsRepository) List(_ context.Context, f stats.Filter) ([]stats.TournamentStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stats.TournamentStat, 0, len(r.rows))
	for _, row := range r.rows {
		if f.TournamentID != nil && row.TournamentID != *f.TournamentID {
			continue
		}
		out = append(out, row)
	}

	return out, nil
}

func (r *StatsRepository) ListByPlayer(_ context.Context, playerID int64) ([]stats.TournamentStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []stats.TournamentStat
	for _, row := range r.rows {
		if row.PlayerID == playerID {
			out = append(out, row)
		}
	}

	return out, nil
}

func (r *StatsRepository) GetByID(_ context.Context, id int64) (stats.TournamentStat, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, row := range r.rows {
		if row.ID == id {
			return row, true, nil
		}
	}

	return stats.TournamentStat{}, false, nil
}

func (r *StatsRepository) Create(_ context.Context, s stats.TournamentStat) (stats.TournamentStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, s)

	return s, nil
}

func (r *StatsRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, row := range r.rows {
		if row.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			break
		}
	}

	return nil
}

func (r *StatsRepository) ReplaceAll(_ context.Context, rows []stats.TournamentStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = make([]stats.TournamentStat, 0, len(rows))
	for _, row := range rows {
		row.ID = r.nextID
		r.nextID++
		r.rows = append(r.rows, row)
	}

	return nil
}

func (r *StatsRepository) CareerByPlayer(ctx context.Context, playerID int64) (stats.CareerSummary, bool, error) {
	p, exists, err := r.players.GetByID(ctx, playerID)
	if err != nil || !exists {
		return stats.CareerSummary{}, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	acc := newCareerAccumulator(playerID, p.Name)
	for _, row := range r.rows {
		if row.PlayerID == playerID {
			acc.add(row)
		}
	}

	return acc.summary, true, nil
}

func (r *StatsRepository) Leaderboard(ctx context.Context, order stats.LeaderboardOrder, limit int) ([]stats.CareerSummary, error) {
	players, err := r.players.List(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	accs := make([]*careerAccumulator, 0, len(players))
	byPlayer := make(map[int64]*careerAccumulator, len(players))
	for _, p := range players {
		acc := newCareerAccumulator(p.ID, p.Name)
		accs = append(accs, acc)
		byPlayer[p.ID] = acc
	}
	for _, row := range r.rows {
		if acc, ok := byPlayer[row.PlayerID]; ok {
			acc.add(row)
		}
	}
	r.mu.RUnlock()

	ranked := func(acc *careerAccumulator) (int64, bool) {
		if order == stats.OrderByWickets {
			return acc.summary.TotalWickets, acc.hasWickets
		}
		return acc.summary.TotalRuns, acc.hasRuns
	}

	sort.SliceStable(accs, func(i, j int) bool {
		vi, oki := ranked(accs[i])
		vj, okj := ranked(accs[j])
		if oki != okj {
			return oki
		}
		if oki && vi != vj {
			return vi > vj
		}
		return accs[i].summary.PlayerID < accs[j].summary.PlayerID
	})

	if limit > 0 && len(accs) > limit {
		accs = accs[:limit]
	}

	out := make([]stats.CareerSummary, 0, len(accs))
	for _, acc := range accs {
		out = append(out, acc.summary)
	}

	return out, nil
}

// careerAccumulator folds stat rows into a summary, coalescing absent values
// to zero while remembering whether any value was recorded at all. The
// recorded flags drive the "no value ranks last" leaderboard rule.
type careerAccumulator struct {
	summary    stats.CareerSummary
	hasRuns    bool
	hasWickets bool
}

func newCareerAccumulator(playerID int64, name string) *careerAccumulator {
	return &careerAccumulator{summary: stats.CareerSummary{PlayerID: playerID, PlayerName: name}}
}

func (a *careerAccumulator) add(row stats.TournamentStat) {
	addInt := func(dst *int64, src *int64) {
		if src != nil {
			*dst += *src
		}
	}

	addInt(&a.summary.TotalMatches, row.Batting.MatchesPlayed)
	addInt(&a.summary.TotalNotOuts, row.Batting.NotOuts)
	addInt(&a.summary.TotalFours, row.Batting.Fours)
	addInt(&a.summary.TotalSixes, row.Batting.Sixes)
	addInt(&a.summary.TotalFifties, row.Batting.Fifties)
	addInt(&a.summary.TotalHundreds, row.Batting.Hundreds)
	addInt(&a.summary.TotalMaidens, row.Bowling.Maidens)
	addInt(&a.summary.TotalRunsConceded, row.Bowling.RunsConceded)

	if row.Batting.RunsScored != nil {
		a.summary.TotalRuns += *row.Batting.RunsScored
		a.hasRuns = true
	}
	if row.Bowling.WicketsTaken != nil {
		a.summary.TotalWickets += *row.Bowling.WicketsTaken
		a.hasWickets = true
	}
	if row.Batting.HighestScore != nil && *row.Batting.HighestScore > a.summary.CareerHighestScore {
		a.summary.CareerHighestScore = *row.Batting.HighestScore
	}
	if row.Bowling.OversBowled != nil {
		a.summary.TotalOversBowled += *row.Bowling.OversBowled
	}
}
