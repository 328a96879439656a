package postgres

import (
	"time"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/stats"
)

type statTableModel struct {
	ID                int64     `db:"id"`
	PlayerID          int64     `db:"player_id"`
	TournamentID      int64     `db:"tournament_id"`
	TeamName          *string   `db:"team_name"`
	MatchesPlayed     *int64    `db:"matches_played"`
	RunsScored        *int64    `db:"runs_scored"`
	BallsFaced        *int64    `db:"balls_faced"`
	HighestScore      *int64    `db:"highest_score"`
	NotOuts           *int64    `db:"not_outs"`
	Fours             *int64    `db:"fours"`
	Sixes             *int64    `db:"sixes"`
	Fifties           *int64    `db:"fifties"`
	Hundreds          *int64    `db:"hundreds"`
	BattingAverage    *float64  `db:"batting_average"`
	BattingStrikeRate *float64  `db:"batting_strike_rate"`
	OversBowled       *float64  `db:"overs_bowled"`
	RunsConceded      *int64    `db:"runs_conceded"`
	WicketsTaken      *int64    `db:"wickets_taken"`
	Maidens           *int64    `db:"maidens"`
	BowlingAverage    *float64  `db:"bowling_average"`
	EconomyRate       *float64  `db:"economy_rate"`
	BowlingStrikeRate *float64  `db:"bowling_strike_rate"`
	CreatedAt         time.Time `db:"created_at"`
}

type statInsertModel struct {
	PlayerID          int64    `db:"player_id"`
	TournamentID      int64    `db:"tournament_id"`
	TeamName          *string  `db:"team_name"`
	MatchesPlayed     *int64   `db:"matches_played"`
	RunsScored        *int64   `db:"runs_scored"`
	BallsFaced        *int64   `db:"balls_faced"`
	HighestScore      *int64   `db:"highest_score"`
	NotOuts           *int64   `db:"not_outs"`
	Fours             *int64   `db:"fours"`
	Sixes             *int64   `db:"sixes"`
	Fifties           *int64   `db:"fifties"`
	Hundreds          *int64   `db:"hundreds"`
	BattingAverage    *float64 `db:"batting_average"`
	BattingStrikeRate *float64 `db:"batting_strike_rate"`
	OversBowled       *float64 `db:"overs_bowled"`
	RunsConceded      *int64   `db:"runs_conceded"`
	WicketsTaken      *int64   `db:"wickets_taken"`
	Maidens           *int64   `db:"maidens"`
	BowlingAverage    *float64 `db:"bowling_average"`
	EconomyRate       *float64 `db:"economy_rate"`
	BowlingStrikeRate *float64 `db:"bowling_strike_rate"`
}

type careerRowModel struct {
	PlayerID           int64   `db:"player_id"`
	PlayerName         string  `db:"player_name"`
	TotalMatches       int64   `db:"total_matches"`
	TotalRuns          int64   `db:"total_runs"`
	TotalWickets       int64   `db:"total_wickets"`
	CareerHighestScore int64   `db:"career_highest_score"`
	TotalNotOuts       int64   `db:"total_not_outs"`
	TotalFours         int64   `db:"total_fours"`
	TotalSixes         int64   `db:"total_sixes"`
	TotalFifties       int64   `db:"total_fifties"`
	TotalHundreds      int64   `db:"total_hundreds"`
	TotalMaidens       int64   `db:"total_maidens"`
	TotalOversBowled   float64 `db:"total_overs_bowled"`
	TotalRunsConceded  int64   `db:"total_runs_conceded"`
}

func statInsertFromDomain(s stats.TournamentStat) statInsertModel {
	return statInsertModel{
		PlayerID:          s.PlayerID,
		TournamentID:      s.TournamentID,
		TeamName:          s.TeamName,
		MatchesPlayed:     s.Batting.MatchesPlayed,
		RunsScored:        s.Batting.RunsScored,
		BallsFaced:        s.Batting.BallsFaced,
		HighestScore:      s.Batting.HighestScore,
		NotOuts:           s.Batting.NotOuts,
		Fours:             s.Batting.Fours,
		Sixes:             s.Batting.Sixes,
		Fifties:           s.Batting.Fifties,
		Hundreds:          s.Batting.Hundreds,
		BattingAverage:    s.Batting.BattingAverage,
		BattingStrikeRate: s.Batting.BattingStrikeRate,
		OversBowled:       s.Bowling.OversBowled,
		RunsConceded:      s.Bowling.RunsConceded,
		WicketsTaken:      s.Bowling.WicketsTaken,
		Maidens:           s.Bowling.Maidens,
		BowlingAverage:    s.Bowling.BowlingAverage,
		EconomyRate:       s.Bowling.EconomyRate,
		BowlingStrikeRate: s.Bowling.BowlingStrikeRate,
	}
}

func statFromRow(row statTableModel) stats.TournamentStat {
	return stats.TournamentStat{
		ID:           row.ID,
		PlayerID:     row.PlayerID,
		TournamentID: row.TournamentID,
		TeamName:     row.TeamName,
		Batting: stats.BattingFigures{
			MatchesPlayed:     row.MatchesPlayed,
			RunsScored:        row.RunsScored,
			BallsFaced:        row.BallsFaced,
			HighestScore:      row.HighestScore,
			NotOuts:           row.NotOuts,
			Fours:             row.Fours,
			Sixes:             row.Sixes,
			Fifties:           row.Fifties,
			Hundreds:          row.Hundreds,
			BattingAverage:    row.BattingAverage,
			BattingStrikeRate: row.BattingStrikeRate,
		},
		Bowling: stats.BowlingFigures{
			OversBowled:       row.OversBowled,
			RunsConceded:      row.RunsConceded,
			WicketsTaken:      row.WicketsTaken,
			Maidens:           row.Maidens,
			BowlingAverage:    row.BowlingAverage,
			EconomyRate:       row.EconomyRate,
			BowlingStrikeRate: row.BowlingStrikeRate,
		},
	}
}

func careerFromRow(row careerRowModel) stats.CareerSummary {
	return stats.CareerSummary{
		PlayerID:           row.PlayerID,
		PlayerName:         row.PlayerName,
		TotalMatches:       row.TotalMatches,
		TotalRuns:          row.TotalRuns,
		TotalWickets:       row.TotalWickets,
		CareerHighestScore: row.CareerHighestScore,
		TotalNotOuts:       row.TotalNotOuts,
		TotalFours:         row.TotalFours,
		TotalSixes:         row.TotalSixes,
		TotalFifties:       row.TotalFifties,
		TotalHundreds:      row.TotalHundreds,
		TotalMaidens:       row.TotalMaidens,
		TotalOversBowled:   row.TotalOversBowled,
		TotalRunsConceded:  row.TotalRunsConceded,
	}
}
