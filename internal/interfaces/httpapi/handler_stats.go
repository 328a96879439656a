package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/stats"
	"github.com/shrujal-srinath/GECC-Database/internal/usecase"
)

// battingDTO and bowlingDTO keep absent values as JSON nulls; a null means
// the source spreadsheet never recorded the figure.
type battingDTO struct {
	MatchesPlayed     *int64   `json:"matches_played"`
	RunsScored        *int64   `json:"runs_scored"`
	BallsFaced        *int64   `json:"balls_faced"`
	HighestScore      *int64   `json:"highest_score"`
	NotOuts           *int64   `json:"not_outs"`
	Fours             *int64   `json:"fours"`
	Sixes             *int64   `json:"sixes"`
	Fifties           *int64   `json:"fifties"`
	Hundreds          *int64   `json:"hundreds"`
	BattingAverage    *float64 `json:"batting_average"`
	BattingStrikeRate *float64 `json:"batting_strike_rate"`
}

type bowlingDTO struct {
	OversBowled       *float64 `json:"overs_bowled"`
	RunsConceded      *int64   `json:"runs_conceded"`
	WicketsTaken      *int64   `json:"wickets_taken"`
	Maidens           *int64   `json:"maidens"`
	BowlingAverage    *float64 `json:"bowling_average"`
	EconomyRate       *float64 `json:"economy_rate"`
	BowlingStrikeRate *float64 `json:"bowling_strike_rate"`
}

type playerStatDTO struct {
	ID             int64      `json:"id"`
	TournamentID   int64      `json:"tournament_id"`
	TournamentName string     `json:"tournament_name"`
	TeamName       *string    `json:"team_name"`
	Batting        battingDTO `json:"batting"`
	Bowling        bowlingDTO `json:"bowling"`
}

type statDTO struct {
	ID           int64      `json:"id"`
	PlayerID     int64      `json:"player_id"`
	TournamentID int64      `json:"tournament_id"`
	TeamName     *string    `json:"team_name"`
	Batting      battingDTO `json:"batting"`
	Bowling      bowlingDTO `json:"bowling"`
}

type careerDTO struct {
	PlayerID           int64   `json:"player_id"`
	PlayerName         string  `json:"player_name"`
	TotalMatches       int64   `json:"total_matches"`
	TotalRuns          int64   `json:"total_runs"`
	TotalWickets       int64   `json:"total_wickets"`
	CareerHighestScore int64   `json:"career_highest_score"`
	TotalNotOuts       int64   `json:"total_not_outs"`
	TotalFours         int64   `json:"total_fours"`
	TotalSixes         int64   `json:"total_sixes"`
	TotalFifties       int64   `json:"total_fifties"`
	TotalHundreds      int64   `json:"total_hundreds"`
	TotalMaidens       int64   `json:"total_maidens"`
	TotalOversBowled   float64 `json:"total_overs_bowled"`
	TotalRunsConceded  int64   `json:"total_runs_conceded"`
}

func battingToDTO(b stats.BattingFigures) battingDTO {
	return battingDTO{
		MatchesPlayed:     b.MatchesPlayed,
		RunsScored:        b.RunsScored,
		BallsFaced:        b.BallsFaced,
		HighestScore:      b.HighestScore,
		NotOuts:           b.NotOuts,
		Fours:             b.Fours,
		Sixes:             b.Sixes,
		Fifties:           b.Fifties,
		Hundreds:          b.Hundreds,
		BattingAverage:    b.BattingAverage,
		BattingStrikeRate: b.BattingStrikeRate,
	}
}

func bowlingToDTO(b stats.BowlingFigures) bowlingDTO {
	return bowlingDTO{
		OversBowled:       b.OversBowled,
		RunsConceded:      b.RunsConceded,
		WicketsTaken:      b.WicketsTaken,
		Maidens:           b.Maidens,
		BowlingAverage:    b.BowlingAverage,
		EconomyRate:       b.EconomyRate,
		BowlingStrikeRate: b.BowlingStrikeRate,
	}
}

func statToDTO(row stats.TournamentStat) statDTO {
	return statDTO{
		ID:           row.ID,
		PlayerID:     row.PlayerID,
		TournamentID: row.TournamentID,
		TeamName:     row.TeamName,
		Batting:      battingToDTO(row.Batting),
		Bowling:      bowlingToDTO(row.Bowling),
	}
}

func battingFromDTO(b battingDTO) stats.BattingFigures {
	return stats.BattingFigures{
		MatchesPlayed:     b.MatchesPlayed,
		RunsScored:        b.RunsScored,
		BallsFaced:        b.BallsFaced,
		HighestScore:      b.HighestScore,
		NotOuts:           b.NotOuts,
		Fours:             b.Fours,
		Sixes:             b.Sixes,
		Fifties:           b.Fifties,
		Hundreds:          b.Hundreds,
		BattingAverage:    b.BattingAverage,
		BattingStrikeRate: b.BattingStrikeRate,
	}
}

func bowlingFromDTO(b bowlingDTO) stats.BowlingFigures {
	return stats.BowlingFigures{
		OversBowled:       b.OversBowled,
		RunsConceded:      b.RunsConceded,
		WicketsTaken:      b.WicketsTaken,
		Maidens:           b.Maidens,
		BowlingAverage:    b.BowlingAverage,
		EconomyRate:       b.EconomyRate,
		BowlingStrikeRate: b.BowlingStrikeRate,
	}
}

func careerToDTO(c stats.CareerSummary) careerDTO {
	return careerDTO{
		PlayerID:           c.PlayerID,
		PlayerName:         c.PlayerName,
		TotalMatches:       c.TotalMatches,
		TotalRuns:          c.TotalRuns,
		TotalWickets:       c.TotalWickets,
		CareerHighestScore: c.CareerHighestScore,
		TotalNotOuts:       c.TotalNotOuts,
		TotalFours:         c.TotalFours,
		TotalSixes:         c.TotalSixes,
		TotalFifties:       c.TotalFifties,
		TotalHundreds:      c.TotalHundreds,
		TotalMaidens:       c.TotalMaidens,
		TotalOversBowled:   c.TotalOversBowled,
		TotalRunsConceded:  c.TotalRunsConceded,
	}
}

// statsToDTOs resolves tournament names once per request instead of per row.
func (h *Handler) statsToDTOs(ctx context.Context, rows []stats.TournamentStat) ([]playerStatDTO, error) {
	tournaments, err := h.tournamentService.ListTournaments(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(tournaments))
	for _, t := range tournaments {
		names[t.ID] = t.Name
	}

	out := make([]playerStatDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerStatDTO{
			ID:             row.ID,
			TournamentID:   row.TournamentID,
			TournamentName: names[row.TournamentID],
			TeamName:       row.TeamName,
			Batting:        battingToDTO(row.Batting),
			Bowling:        bowlingToDTO(row.Bowling),
		})
	}
	return out, nil
}

func (h *Handler) GetPlayerCareer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerCareer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.statsService.Career(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "career aggregation failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, careerToDTO(summary))
}

func (h *Handler) ListStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStats")
	defer span.End()

	var filter stats.Filter
	if raw := r.URL.Query().Get("tournament_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: tournament_id must be an integer", usecase.ErrInvalidInput))
			return
		}
		filter.TournamentID = &id
	}

	rows, err := h.statsService.ListStats(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "list stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]statDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, statToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type statWriteRequest struct {
	PlayerID     int64      `json:"player_id" validate:"required,gt=0"`
	TournamentID int64      `json:"tournament_id" validate:"required,gt=0"`
	TeamName     *string    `json:"team_name"`
	Batting      battingDTO `json:"batting"`
	Bowling      bowlingDTO `json:"bowling"`
}

func (h *Handler) GetStat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStat")
	defer span.End()

	statID, err := pathID(r, "statID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	row, err := h.statsService.GetStat(ctx, statID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statToDTO(row))
}

func (h *Handler) CreateStat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateStat")
	defer span.End()

	var payload statWriteRequest
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.statsService.CreateStat(ctx, stats.TournamentStat{
		PlayerID:     payload.PlayerID,
		TournamentID: payload.TournamentID,
		TeamName:     payload.TeamName,
		Batting:      battingFromDTO(payload.Batting),
		Bowling:      bowlingFromDTO(payload.Bowling),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create stat failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, statToDTO(created))
}

func (h *Handler) DeleteStat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteStat")
	defer span.End()

	statID, err := pathID(r, "statID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.statsService.DeleteStat(ctx, statID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) BattingLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BattingLeaderboard")
	defer span.End()

	h.leaderboard(ctx, w, r, h.statsService.BattingLeaderboard)
}

func (h *Handler) BowlingLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BowlingLeaderboard")
	defer span.End()

	h.leaderboard(ctx, w, r, h.statsService.BowlingLeaderboard)
}

func (h *Handler) leaderboard(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	fetch func(context.Context, int) ([]stats.CareerSummary, error),
) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput))
			return
		}
		limit = parsed
	}

	board, err := fetch(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]careerDTO, 0, len(board))
	for _, entry := range board {
		items = append(items, careerToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
