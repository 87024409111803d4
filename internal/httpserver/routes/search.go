package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/soccerfront/internal/httpserver/deps"
	"github.com/MrSnakeDoc/soccerfront/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/soccerfront/internal/httpserver/mw"
)

func init() { Register("search", registerSearch) }

func registerSearch(r chi.Router, d deps.Deps) {
	// one limiter shared by both methods
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:      d.RateBurst,
		PerMinute:  d.RatePerMin,
		MaxEntries: 10000,
		TrustProxy: d.TrustProxy,
	})

	r.Route("/api/soccer", func(r chi.Router) {
		r.Use(mw.EnforceHost(d.AllowedHosts, d.Logger))
		r.With(limit).Get("/findByWord", handlers.SearchGet(d))
		r.With(limit).Post("/findByWord", handlers.SearchPost(d))
		r.Get("/popular", handlers.Popular(d))
	})
}
