package stats

// BattingFigures holds a player's batting snapshot for one tournament. Every
// numeric field is a pointer: nil means "not recorded", which is different
// from a recorded zero.
type BattingFigures struct {
	MatchesPlayed     *int64
	RunsScored        *int64
	BallsFaced        *int64
	HighestScore      *int64
	NotOuts           *int64
	Fours             *int64
	Sixes             *int64
	Fifties           *int64
	Hundreds          *int64
	BattingAverage    *float64
	BattingStrikeRate *float64
}

// BowlingFigures holds the bowling side of the snapshot, same nil semantics.
type BowlingFigures struct {
	OversBowled       *float64
	RunsConceded      *int64
	WicketsTaken      *int64
	Maidens           *int64
	BowlingAverage    *float64
	EconomyRate       *float64
	BowlingStrikeRate *float64
}

// TournamentStat is the fact row: one (player, tournament) pair. Uniqueness of
// the pair is not enforced by the schema; the import job guarantees it by
// replacing the whole table in one transaction.
type TournamentStat struct {
	ID           int64
	PlayerID     int64
	TournamentID int64
	TeamName     *string
	Batting      BattingFigures
	Bowling      BowlingFigures
}

// CareerSummary is the cross-tournament aggregate for one player. Absent
// per-row values are coalesced to zero at aggregation time only; rows are
// never stored with zeros substituted for missing data.
type CareerSummary struct {
	PlayerID           int64
	PlayerName         string
	TotalMatches       int64
	TotalRuns          int64
	TotalWickets       int64
	CareerHighestScore int64
	TotalNotOuts       int64
	TotalFours         int64
	TotalSixes         int64
	TotalFifties       int64
	TotalHundreds      int64
	TotalMaidens       int64
	TotalOversBowled   float64
	TotalRunsConceded  int64
}

// LeaderboardOrder selects the leaderboard ranking column.
type LeaderboardOrder string

const (
	OrderByRuns    LeaderboardOrder = "total_runs"
	OrderByWickets LeaderboardOrder = "total_wickets"
)
