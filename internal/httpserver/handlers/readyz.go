package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/soccerfront/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready  bool   `json:"ready"`
	Reason string `json:"reason,omitempty"`
}

// Readyz is ready when the gateway resolves in the registry. An override URL
// only replaces the address, searches still require the registration.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")

		if _, ok := d.Registry.Resolve(r.Context(), d.GatewayService); !ok {
			writeJSON(w, http.StatusServiceUnavailable, readyzResponse{
				Ready:  false,
				Reason: "gateway " + d.GatewayService + " not registered",
			})
			return
		}
		writeJSON(w, http.StatusOK, readyzResponse{Ready: true})
	}
}
