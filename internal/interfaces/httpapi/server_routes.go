package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PUT /v1/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /v1/players/{playerID}", handler.DeletePlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/career", handler.GetPlayerCareer)
	mux.HandleFunc("POST /v1/players/{playerID}/edit-requests", handler.SubmitEditRequest)

	mux.HandleFunc("GET /v1/edit-requests", handler.ListEditRequests)
	mux.HandleFunc("POST /v1/edit-requests/{requestID}/approve", handler.ApproveEditRequest)

	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}", handler.GetTournament)

	mux.HandleFunc("GET /v1/stats", handler.ListStats)
	mux.HandleFunc("POST /v1/stats", handler.CreateStat)
	mux.HandleFunc("GET /v1/stats/{statID}", handler.GetStat)
	mux.HandleFunc("DELETE /v1/stats/{statID}", handler.DeleteStat)

	mux.HandleFunc("GET /v1/leaderboards/batting", handler.BattingLeaderboard)
	mux.HandleFunc("GET /v1/leaderboards/bowling", handler.BowlingLeaderboard)
}
