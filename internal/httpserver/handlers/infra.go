package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/soccerfront/internal/httpserver/deps"
)

const redisPingTimeout = 2 * time.Second

type componentStatus struct {
	OK     bool   `json:"ok"`
	Mode   string `json:"mode,omitempty"`
	URL    string `json:"url,omitempty"`
	Apps   *int   `json:"apps_registered,omitempty"`
	Impact string `json:"impact,omitempty"`
	Error  string `json:"error,omitempty"`
}

type infraResponse struct {
	RoutingMode string                     `json:"routing_mode"`
	Components  map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		components := map[string]componentStatus{
			"registry": checkRegistry(ctx, d),
			"gateway":  checkGateway(ctx, d),
			"redis":    checkRedis(ctx, d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			RoutingMode: determineRoutingMode(components),
			Components:  components,
		})
	}
}

// determineRoutingMode: "critical" when searches cannot be routed,
// "degraded" when only history is missing, otherwise how the gateway is found.
func determineRoutingMode(components map[string]componentStatus) string {
	gw := components["gateway"]
	if !gw.OK {
		return "critical"
	}
	if redis, exists := components["redis"]; exists && !redis.OK && redis.Mode != "disabled" {
		return "degraded"
	}
	return gw.Mode
}

func checkRegistry(ctx context.Context, d deps.Deps) componentStatus {
	apps := len(d.Registry.Applications(ctx))
	st := componentStatus{OK: apps > 0, URL: d.RegistryURL, Apps: &apps}
	if apps == 0 {
		st.Error = "unreachable or empty"
	}
	return st
}

// checkGateway always asks the registry: the override only changes the
// reported address and mode.
func checkGateway(ctx context.Context, d deps.Deps) componentStatus {
	mode := "discovery"
	if d.GatewayURL != "" {
		mode = "override"
	}

	inst, ok := d.Registry.Resolve(ctx, d.GatewayService)
	if !ok {
		return componentStatus{
			OK:     false,
			Mode:   mode,
			URL:    d.GatewayURL,
			Impact: "search-unavailable",
			Error:  d.GatewayService + " not registered",
		}
	}

	url := inst.BaseURL()
	if d.GatewayURL != "" {
		url = d.GatewayURL
	}
	return componentStatus{OK: true, Mode: mode, URL: url}
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if d.History == nil {
		return componentStatus{
			OK:     false,
			Mode:   "disabled",
			Impact: "search-history-disabled",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := d.History.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "search-history-unavailable",
			Error:  err.Error(),
		}
	}
	return componentStatus{OK: true, Mode: "optimal"}
}
