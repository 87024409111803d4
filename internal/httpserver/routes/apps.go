package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/soccerfront/internal/httpserver/deps"
	"github.com/MrSnakeDoc/soccerfront/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/soccerfront/internal/httpserver/mw"
)

func init() { Register("registry", registerApps) }

func registerApps(r chi.Router, d deps.Deps) {
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)).Get("/api/registry/apps", handlers.RegistryApps(d))
}
