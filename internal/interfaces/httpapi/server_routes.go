package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuctionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("POST /v1/players/{playerID}/bids", handler.PlaceBid)
	mux.HandleFunc("POST /v1/sales", handler.SellPlayer)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/auction/summary", handler.AuctionSummary)
	mux.HandleFunc("GET /v1/auction/events", handler.ListAuctionEvents)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("POST /v1/matches/{matchID}/start", handler.StartMatch)
	mux.HandleFunc("POST /v1/matches/{matchID}/scores", handler.UpdateLiveScore)
	mux.HandleFunc("POST /v1/matches/{matchID}/complete", handler.CompleteMatch)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
}
