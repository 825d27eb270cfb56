package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerGameRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/game", handler.GetGameSummary)
	mux.HandleFunc("GET /v1/game/comparison", handler.GetTeamComparison)
	mux.HandleFunc("GET /v1/game/teams/{teamIndex}/offense", handler.GetTeamOffense)
	mux.HandleFunc("GET /v1/game/teams/{teamIndex}/defense", handler.GetTeamDefense)
	mux.HandleFunc("GET /v1/game/scoring", handler.GetScoringPlays)
	mux.HandleFunc("GET /v1/game/drives", handler.GetDrives)
	mux.HandleFunc("GET /v1/game/document", handler.GetDocument)
	mux.HandleFunc("POST /v1/game/document", handler.UploadDocument)
	mux.HandleFunc("POST /v1/game/loads", handler.CreateLoad)
	mux.HandleFunc("GET /v1/game/loads", handler.GetLoaderStats)
}
