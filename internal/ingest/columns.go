package ingest

// WorkbookKind tells the normalizer which rename pass applies.
type WorkbookKind string

const (
	KindBatting WorkbookKind = "batting"
	KindBowling WorkbookKind = "bowling"
)

// Canonical column names shared with the CSV consumer.
const (
	ColPlayerName        = "player_name"
	ColTournamentID      = "tournament_id"
	ColTeamName          = "team_name"
	ColBattingStyle      = "batting_style"
	ColBowlingStyle      = "bowling_style"
	ColMatchesPlayed     = "matches_played"
	ColInnings           = "innings"
	ColRunsScored        = "runs_scored"
	ColBallsFaced        = "balls_faced"
	ColHighestScore      = "highest_score"
	ColNotOuts           = "not_outs"
	ColFours             = "fours"
	ColSixes             = "sixes"
	ColFifties           = "fifties"
	ColHundreds          = "hundreds"
	ColBattingAverage    = "batting_average"
	ColBattingStrikeRate = "batting_strike_rate"
	ColOversBowled       = "overs_bowled"
	ColRunsConceded      = "runs_conceded"
	ColWicketsTaken      = "wickets_taken"
	ColMaidens           = "maidens"
	ColBowlingAverage    = "bowling_average"
	ColEconomyRate       = "economy_rate"
	ColBowlingStrikeRate = "bowling_strike_rate"
)

// headerToken marks the real header row inside a sheet; anything above it is
// decorative title rows.
const headerToken = "Player Name"

// columnRenames harmonizes the header vocabulary seen across exports to one
// canonical name per concept.
var columnRenames = map[string]string{
	"Player Name":   ColPlayerName,
	"Mat":           ColMatchesPlayed,
	"Matches":       ColMatchesPlayed,
	"Inns":          ColInnings,
	"Runs":          ColRunsScored,
	"Balls":         ColBallsFaced,
	"Highest":       ColHighestScore,
	"HS":            ColHighestScore,
	"N/O":           ColNotOuts,
	"NIO":           ColNotOuts,
	"NO":            ColNotOuts,
	"Avg":           ColBattingAverage,
	"Ave":           ColBattingAverage,
	"SR":            ColBattingStrikeRate,
	"4s":            ColFours,
	"6s":            ColSixes,
	"50s":           ColFifties,
	"100s":          ColHundreds,
	"Overs":         ColOversBowled,
	"Wickets":       ColWicketsTaken,
	"Wkts":          ColWicketsTaken,
	"Econ":          ColEconomyRate,
	"Mdns":          ColMaidens,
	"Maidens":       ColMaidens,
	"Team":          ColTeamName,
	"Team Name":     ColTeamName,
	"Batting Style": ColBattingStyle,
	"Bowling Style": ColBowlingStyle,
}

// bowlingRenames runs after columnRenames on bowling sheets, so the generic
// runs/average/strike-rate columns stop colliding with the batting concepts.
var bowlingRenames = map[string]string{
	ColRunsScored:        ColRunsConceded,
	ColBattingAverage:    ColBowlingAverage,
	ColBattingStrikeRate: ColBowlingStrikeRate,
}

// outputColumns is the fixed CSV column order. Columns absent from both
// source workbooks are omitted from the output entirely.
var outputColumns = []string{
	ColPlayerName,
	ColTournamentID,
	ColTeamName,
	ColBattingStyle,
	ColBowlingStyle,
	ColMatchesPlayed,
	ColInnings,
	ColRunsScored,
	ColBallsFaced,
	ColHighestScore,
	ColNotOuts,
	ColFours,
	ColSixes,
	ColFifties,
	ColHundreds,
	ColBattingAverage,
	ColBattingStrikeRate,
	ColOversBowled,
	ColRunsConceded,
	ColWicketsTaken,
	ColMaidens,
	ColBowlingAverage,
	ColEconomyRate,
	ColBowlingStrikeRate,
}
