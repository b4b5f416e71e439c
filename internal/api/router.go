package api

import (
	"net/http"

	"configurateur-be/internal/middleware"
)

// NewRouter wires the public configurator surface and the authenticated
// project surface onto one mux.
func NewRouter(env *Env) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", env.HandleHealthz)
	mux.HandleFunc("GET /internal/stats", env.HandleStats)

	mux.HandleFunc("GET /api/settings", env.HandleGetSettings)
	mux.HandleFunc("GET /api/settings/options", env.HandleGetOptions)
	mux.HandleFunc("POST /api/price", env.HandleComputePrice)
	mux.HandleFunc("POST /api/login", env.HandleLogin)
	mux.HandleFunc("POST /api/quotes", env.HandleSubmitQuote)
	mux.HandleFunc("GET /api/quotes/{number}", env.HandleGetQuote)

	mux.Handle("GET /api/projects/{id}",
		middleware.RequireUser(http.HandlerFunc(env.HandleGetProject)))
	mux.Handle("PUT /api/projects/{id}",
		middleware.RequireUser(http.HandlerFunc(env.HandleUpdateProject)))

	return mux
}
