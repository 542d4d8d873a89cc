package http

import (
	nethttp "net/http"

	"github.com/rs/cors"

	"github.com/preston-bernstein/nba-viewer/internal/http/handlers"
	"github.com/preston-bernstein/nba-viewer/internal/http/requestutil"
)

// NewRouter registers HTTP routes on a ServeMux and wraps them with CORS.
// An empty allowedOrigins list allows any origin.
func NewRouter(handler *handlers.Handler, allowedOrigins ...string) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /ready", handler.Ready)

	mux.HandleFunc("GET /players", handler.Players)
	mux.HandleFunc("GET /players/events", handler.PlayerEvents)
	mux.HandleFunc("POST /players/append", handler.AppendPlayers)
	mux.HandleFunc("POST /players/refresh", handler.RefreshPlayers)
	mux.HandleFunc("POST /players/retry", handler.RetryPlayers)
	mux.HandleFunc("POST /players/{id}", handler.LoadPlayer)
	mux.HandleFunc("POST /teams/{id}", handler.LoadTeam)

	mux.HandleFunc("GET /detail/player", handler.PlayerDetail)
	mux.HandleFunc("GET /detail/team", handler.TeamDetail)
	mux.HandleFunc("GET /detail/images", handler.DetailImages)

	return cors.New(corsOptions(allowedOrigins)).Handler(mux)
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
	}
}
