package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/soccerfront/internal/domain"
	"github.com/MrSnakeDoc/soccerfront/internal/httpserver/deps"
	"github.com/MrSnakeDoc/soccerfront/internal/logger"
	"github.com/MrSnakeDoc/soccerfront/internal/relay"
)

const (
	maxSearchBody  = 64 << 10
	historyTimeout = 2 * time.Second
)

type searchBody struct {
	Keyword string `json:"keyword"`
	Type    string `json:"type"`
}

// SearchGet relays ?keyword=&type= to the gateway.
func SearchGet(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		q := domain.NewSearchQuery(params.Get("keyword"), params.Get("type"))
		serveSearch(w, r, d, http.MethodGet, q)
	}
}

// SearchPost relays a JSON {keyword, type} body to the gateway. A body that
// cannot be decoded is an unexpected failure (500), a decoded body without
// keyword is a validation failure (400).
func SearchPost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body searchBody
		if err := json.NewDecoder(io.LimitReader(r.Body, maxSearchBody)).Decode(&body); err != nil {
			d.Logger.Warn("unreadable search body", logger.Error(err))
			writeEnvelope(w, relay.EnvelopeOf(fmt.Errorf("invalid search body: %w", err)))
			return
		}
		serveSearch(w, r, d, http.MethodPost, domain.NewSearchQuery(body.Keyword, body.Type))
	}
}

func serveSearch(w http.ResponseWriter, r *http.Request, d deps.Deps, method string, q domain.SearchQuery) {
	if q.Type != "" && !q.Type.Known() {
		d.Logger.Debug("forwarding unknown search type", logger.String("type", string(q.Type)))
	}

	data, err := d.Searcher.Search(r.Context(), method, q)
	if err != nil {
		f := relay.AsFailure(err)
		d.Logger.Info("search failed",
			logger.String("keyword", q.Keyword),
			logger.String("kind", f.Kind.String()),
			logger.Int("code", f.Code))
		writeEnvelope(w, relay.EnvelopeOf(f))
		return
	}

	writeRaw(w, data)
	recordSearch(r.Context(), d, q)
}

// recordSearch stores the keyword in the history, best effort.
func recordSearch(ctx context.Context, d deps.Deps, q domain.SearchQuery) {
	if d.History == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), historyTimeout)
	defer cancel()
	if err := d.History.RecordSearch(ctx, q); err != nil {
		d.Logger.Warn("failed to record search",
			logger.String("keyword", q.Keyword),
			logger.Error(err))
	}
}
