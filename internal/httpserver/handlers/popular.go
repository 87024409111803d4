package handlers

import (
	"net/http"
	"strconv"

	"github.com/MrSnakeDoc/soccerfront/internal/httpserver/deps"
	"github.com/MrSnakeDoc/soccerfront/internal/logger"
	"github.com/MrSnakeDoc/soccerfront/internal/relay"
	redisstore "github.com/MrSnakeDoc/soccerfront/internal/store/redis"
)

const (
	defaultPopularLimit = 10
	maxPopularLimit     = 100
)

type popularResponse struct {
	Top    []redisstore.KeywordCount `json:"top"`
	Recent []redisstore.SearchEntry  `json:"recent"`
}

// Popular lists the most searched keywords and the latest searches.
func Popular(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.History == nil {
			writeEnvelope(w, relay.Envelope{Code: http.StatusServiceUnavailable, Message: "search history is disabled"})
			return
		}

		limit, ok := parseLimit(r.URL.Query().Get("limit"))
		if !ok {
			writeEnvelope(w, relay.Envelope{Code: http.StatusBadRequest, Message: "limit must be a positive integer"})
			return
		}

		ctx := r.Context()
		top, err := d.History.TopKeywords(ctx, limit)
		if err != nil {
			d.Logger.Error("failed to read popular keywords", logger.Error(err))
			writeEnvelope(w, relay.EnvelopeOf(err))
			return
		}
		recent, err := d.History.Recent(ctx, limit)
		if err != nil {
			d.Logger.Error("failed to read recent searches", logger.Error(err))
			writeEnvelope(w, relay.EnvelopeOf(err))
			return
		}

		env, err := okEnvelope(popularResponse{Top: top, Recent: recent})
		if err != nil {
			writeEnvelope(w, relay.EnvelopeOf(err))
			return
		}
		writeEnvelope(w, env)
	}
}

// parseLimit defaults an empty value and caps large ones.
func parseLimit(raw string) (int, bool) {
	if raw == "" {
		return defaultPopularLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return min(n, maxPopularLimit), true
}
