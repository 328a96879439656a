package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/player"
	"github.com/shrujal-srinath/GECC-Database/internal/domain/stats"
	"github.com/shrujal-srinath/GECC-Database/internal/domain/tournament"
	"github.com/shrujal-srinath/GECC-Database/internal/infrastructure/repository/memory"
	"github.com/shrujal-srinath/GECC-Database/internal/platform/logging"
	"github.com/shrujal-srinath/GECC-Database/internal/usecase"
)

type routerFixture struct {
	router      http.Handler
	players     *memory.PlayerRepository
	tournaments *memory.TournamentRepository
	stats       *memory.StatsRepository
}

func newRouterFixture() *routerFixture {
	players := memory.NewPlayerRepository()
	tournaments := memory.NewTournamentRepository()
	statsRepo := memory.NewStatsRepository(players)
	logger := logging.NewNop()

	handler := NewHandler(
		usecase.NewPlayerService(players, statsRepo),
		usecase.NewTournamentService(tournaments),
		usecase.NewStatsService(statsRepo),
		usecase.NewModerationService(memory.NewModerationRepository(), players),
		logger,
	)

	return &routerFixture{
		router:      NewRouter(handler, logger, []string{"*"}),
		players:     players,
		tournaments: tournaments,
		stats:       statsRepo,
	}
}

func (f *routerFixture) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var envelope map[string]any
	if rec.Body.Len() > 0 {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("unmarshal %s %s response: %v", method, path, err)
		}
	}
	return rec, envelope
}

func TestHealthz(t *testing.T) {
	f := newRouterFixture()

	rec, body := f.do(t, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := body["data"].(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("unexpected healthz body: %v", body)
	}
}

func TestPlayerLifecycle(t *testing.T) {
	f := newRouterFixture()

	rec, body := f.do(t, http.MethodPost, "/v1/players", `{"name":"ms   dhoni","playing_role":"Wicketkeeper"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%v)", rec.Code, body)
	}
	data := body["data"].(map[string]any)
	if data["name"] != "Ms Dhoni" {
		t.Fatalf("expected cleaned name in response, got %v", data["name"])
	}

	rec, _ = f.do(t, http.MethodPost, "/v1/players", `{"playing_role":"Batter"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("create without name: expected 400, got %d", rec.Code)
	}

	rec, body = f.do(t, http.MethodGet, "/v1/players/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	detail := body["data"].(map[string]any)
	if _, ok := detail["stats"]; !ok {
		t.Fatalf("player detail must embed stats: %v", detail)
	}

	rec, _ = f.do(t, http.MethodDelete, "/v1/players/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	rec, _ = f.do(t, http.MethodGet, "/v1/players/1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}
}

func TestPlayerDetailNestsTournamentStats(t *testing.T) {
	f := newRouterFixture()
	ctx := context.Background()

	p, _ := f.players.Create(ctx, player.Player{Name: "V Kohli"})
	tour, _, _ := f.tournaments.GetOrCreateByName(ctx, tournament.DisplayName(3), 2024)

	runs := int64(380)
	team := "Strikers"
	_ = f.stats.ReplaceAll(ctx, []stats.TournamentStat{{
		PlayerID:     p.ID,
		TournamentID: tour.ID,
		TeamName:     &team,
		Batting:      stats.BattingFigures{RunsScored: &runs},
	}})

	rec, body := f.do(t, http.MethodGet, "/v1/players/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	detail := body["data"].(map[string]any)
	statRows := detail["stats"].([]any)
	if len(statRows) != 1 {
		t.Fatalf("expected 1 stat row, got %d", len(statRows))
	}
	row := statRows[0].(map[string]any)
	if row["tournament_name"] != "Tournament 3" {
		t.Fatalf("expected resolved tournament name, got %v", row["tournament_name"])
	}
	batting := row["batting"].(map[string]any)
	if batting["runs_scored"].(float64) != 380 {
		t.Fatalf("unexpected runs: %v", batting["runs_scored"])
	}
	// Absent values surface as nulls, not zeros.
	if batting["balls_faced"] != nil {
		t.Fatalf("expected null balls_faced, got %v", batting["balls_faced"])
	}
	bowling := row["bowling"].(map[string]any)
	if bowling["wickets_taken"] != nil {
		t.Fatalf("expected null wickets_taken, got %v", bowling["wickets_taken"])
	}
}

func TestCareerEndpoint(t *testing.T) {
	f := newRouterFixture()
	ctx := context.Background()

	p, _ := f.players.Create(ctx, player.Player{Name: "Ms Dhoni"})
	r1, r2 := int64(50), int64(30)
	_ = f.stats.ReplaceAll(ctx, []stats.TournamentStat{
		{PlayerID: p.ID, TournamentID: 1, Batting: stats.BattingFigures{RunsScored: &r1, HighestScore: &r1}},
		{PlayerID: p.ID, TournamentID: 2, Batting: stats.BattingFigures{RunsScored: &r2, HighestScore: &r2}},
	})

	rec, body := f.do(t, http.MethodGet, "/v1/players/1/career", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := body["data"].(map[string]any)
	if data["total_runs"].(float64) != 80 {
		t.Fatalf("expected total_runs 80, got %v", data["total_runs"])
	}
	if data["career_highest_score"].(float64) != 50 {
		t.Fatalf("expected career_highest_score 50, got %v", data["career_highest_score"])
	}

	rec, _ = f.do(t, http.MethodGet, "/v1/players/99/career", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown player career: expected 404, got %d", rec.Code)
	}
}

func TestEditRequestWorkflow(t *testing.T) {
	f := newRouterFixture()
	ctx := context.Background()

	_, _ = f.players.Create(ctx, player.Player{Name: "Ms Dhoni"})

	rec, body := f.do(t, http.MethodPost, "/v1/players/1/edit-requests",
		`{"changes":[{"field":"playing_role","value":"Batter"}]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d (%v)", rec.Code, body)
	}
	created := body["data"].(map[string]any)
	if created["status"] != "pending" {
		t.Fatalf("expected pending, got %v", created["status"])
	}

	rec, body = f.do(t, http.MethodGet, "/v1/edit-requests?status=pending", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	if items := body["data"].([]any); len(items) != 1 {
		t.Fatalf("expected 1 pending request, got %d", len(items))
	}

	rec, body = f.do(t, http.MethodPost, "/v1/edit-requests/1/approve", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d (%v)", rec.Code, body)
	}
	approved := body["data"].(map[string]any)
	if approved["status"] != "approved" || approved["approved_at"] == nil {
		t.Fatalf("approval not reflected: %v", approved)
	}

	p, _, _ := f.players.GetByID(ctx, 1)
	if p.PlayingRole != "Batter" {
		t.Fatalf("change not applied to player: %+v", p)
	}

	rec, _ = f.do(t, http.MethodPost, "/v1/edit-requests/1/approve", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("double approve: expected 400, got %d", rec.Code)
	}

	rec, _ = f.do(t, http.MethodPost, "/v1/players/1/edit-requests",
		`{"changes":[{"field":"shoe_size","value":"11"}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown field: expected 400, got %d", rec.Code)
	}
}

func TestLeaderboardEndpoints(t *testing.T) {
	f := newRouterFixture()
	ctx := context.Background()

	a, _ := f.players.Create(ctx, player.Player{Name: "A Sharma"})
	b, _ := f.players.Create(ctx, player.Player{Name: "B Singh"})
	runsA, wicketsB := int64(120), int64(9)
	_ = f.stats.ReplaceAll(ctx, []stats.TournamentStat{
		{PlayerID: a.ID, TournamentID: 1, Batting: stats.BattingFigures{RunsScored: &runsA}},
		{PlayerID: b.ID, TournamentID: 1, Bowling: stats.BowlingFigures{WicketsTaken: &wicketsB}},
	})

	rec, body := f.do(t, http.MethodGet, "/v1/leaderboards/batting?limit=10", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("batting: expected 200, got %d", rec.Code)
	}
	board := body["data"].([]any)
	top := board[0].(map[string]any)
	if top["player_name"] != "A Sharma" {
		t.Fatalf("expected A Sharma on top of batting board, got %v", top["player_name"])
	}

	rec, body = f.do(t, http.MethodGet, "/v1/leaderboards/bowling", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("bowling: expected 200, got %d", rec.Code)
	}
	board = body["data"].([]any)
	top = board[0].(map[string]any)
	if top["player_name"] != "B Singh" {
		t.Fatalf("expected B Singh on top of bowling board, got %v", top["player_name"])
	}

	rec, _ = f.do(t, http.MethodGet, "/v1/leaderboards/batting?limit=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad limit: expected 400, got %d", rec.Code)
	}
}

func TestStatRowLifecycle(t *testing.T) {
	f := newRouterFixture()
	ctx := context.Background()

	p, err := f.players.Create(ctx, player.Player{Name: "R Jadeja"})
	if err != nil {
		t.Fatalf("seed player: %v", err)
	}
	tn, _, err := f.tournaments.GetOrCreateByName(ctx, "Tournament 2", 2024)
	if err != nil {
		t.Fatalf("seed tournament: %v", err)
	}

	body := `{"player_id":1,"tournament_id":1,"team_name":"Titans","batting":{"runs_scored":62},"bowling":{"wickets_taken":4}}`
	rec, resp := f.do(t, http.MethodPost, "/v1/stats", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create stat: expected 201, got %d (%v)", rec.Code, resp)
	}
	data := resp["data"].(map[string]any)
	if data["player_id"].(float64) != float64(p.ID) || data["tournament_id"].(float64) != float64(tn.ID) {
		t.Fatalf("unexpected stat row: %v", data)
	}
	batting := data["batting"].(map[string]any)
	if batting["runs_scored"].(float64) != 62 {
		t.Fatalf("expected runs_scored 62, got %v", batting["runs_scored"])
	}
	if batting["balls_faced"] != nil {
		t.Fatalf("unset figure must stay null, got %v", batting["balls_faced"])
	}

	rec, resp = f.do(t, http.MethodGet, "/v1/stats/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get stat: expected 200, got %d", rec.Code)
	}
	data = resp["data"].(map[string]any)
	if data["team_name"] != "Titans" {
		t.Fatalf("expected team Titans, got %v", data["team_name"])
	}

	rec, _ = f.do(t, http.MethodPost, "/v1/stats", `{"tournament_id":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("create without player_id: expected 400, got %d", rec.Code)
	}

	rec, _ = f.do(t, http.MethodDelete, "/v1/stats/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete stat: expected 200, got %d", rec.Code)
	}
	rec, _ = f.do(t, http.MethodGet, "/v1/stats/1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}
}
