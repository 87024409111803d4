// Package relay forwards soccer search queries to the gateway discovered in
// Eureka and normalizes every outcome into an Envelope.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/soccerfront/internal/config"
	"github.com/MrSnakeDoc/soccerfront/internal/domain"
	"github.com/MrSnakeDoc/soccerfront/internal/eureka"
	"github.com/MrSnakeDoc/soccerfront/internal/logger"
	"github.com/MrSnakeDoc/soccerfront/internal/utils"
)

// SearchPath is the soccer service route exposed through the gateway.
const SearchPath = "/soccer/findByWord"

// maxBody caps how much of an upstream response is read.
const maxBody = 8 << 20

// Resolver finds one instance of a logical service.
type Resolver interface {
	Resolve(ctx context.Context, name string) (eureka.Instance, bool)
}

type Relay struct {
	resolver Resolver
	http     *http.Client
	logger   logger.Logger

	service  string // logical gateway name in Eureka
	override string // fixed gateway base URL, empty means use discovery
	origin   string
}

// New builds a Relay. A nil httpClient falls back to http.DefaultClient.
func New(cfg *config.Config, resolver Resolver, httpClient *http.Client, log logger.Logger) *Relay {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Relay{
		resolver: resolver,
		http:     httpClient,
		logger:   log.With(logger.String("component", "relay")),
		service:  cfg.GatewayService,
		override: strings.TrimRight(cfg.GatewayURL, "/"),
		origin:   cfg.FrontendOrigin,
	}
}

// Search validates q, resolves the gateway and forwards q with method
// (GET or POST). On success it returns the upstream JSON body untouched;
// every other outcome is a *Failure.
func (r *Relay) Search(ctx context.Context, method string, q domain.SearchQuery) (json.RawMessage, error) {
	if err := q.Validate(); err != nil {
		return nil, &Failure{Kind: KindValidation, Code: http.StatusBadRequest, Message: msgEmptyKeyword, Err: err}
	}
	if method != http.MethodGet && method != http.MethodPost {
		return nil, unexpected(fmt.Errorf("unsupported method %s", method))
	}

	inst, ok := r.resolver.Resolve(ctx, r.service)
	if !ok {
		r.logger.Warn("gateway not registered", logger.String("service", r.service))
		return nil, &Failure{Kind: KindRegistryUnavailable, Code: http.StatusServiceUnavailable, Message: msgGatewayUnavailable}
	}

	base := r.override
	if base == "" {
		base = inst.BaseURL()
	}

	req, err := r.newRequest(ctx, method, base, q)
	if err != nil {
		return nil, unexpected(err)
	}

	r.logger.Info("forwarding search",
		logger.String("method", method),
		logger.String("url", req.URL.String()),
		logger.Bool("override", r.override != ""))

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, r.classify(base, err)
	}
	defer utils.DrainClose(resp.Body)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return nil, r.classify(base, fmt.Errorf("failed to read gateway response: %w", err))
	}
	if len(body) > maxBody {
		return nil, unexpected(fmt.Errorf("gateway response too large (over %d bytes)", maxBody))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := upstreamMessage(body)
		r.logger.Error("gateway returned an error",
			logger.Int("status", resp.StatusCode),
			logger.String("message", msg))
		return nil, &Failure{Kind: KindUpstream, Code: resp.StatusCode, Message: msg}
	}

	if !json.Valid(body) {
		return nil, unexpected(fmt.Errorf("gateway returned a non-JSON body (status %d)", resp.StatusCode))
	}

	r.logger.Debug("search relayed", logger.Int("bytes", len(body)))
	return body, nil
}

func (r *Relay) newRequest(ctx context.Context, method, base string, q domain.SearchQuery) (*http.Request, error) {
	var (
		target = base + SearchPath
		body   io.Reader
	)

	switch method {
	case http.MethodGet:
		params := url.Values{}
		params.Set("keyword", q.Keyword)
		if q.Type != "" {
			params.Set("type", string(q.Type))
		}
		// Encode sorts by key, so keyword always precedes type.
		target += "?" + params.Encode()
	case http.MethodPost:
		payload, err := json.Marshal(q)
		if err != nil {
			return nil, fmt.Errorf("failed to encode search body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Origin", r.origin)
	req.Header.Set("Referer", r.origin)
	if id := middleware.GetReqID(ctx); id != "" {
		req.Header.Set(middleware.RequestIDHeader, id)
	}
	return req, nil
}

func (r *Relay) classify(base string, err error) *Failure {
	if isTransportFault(err) {
		r.logger.Error("gateway unreachable",
			logger.String("gateway", base),
			logger.Error(err))
		return &Failure{
			Kind:    KindTransport,
			Code:    http.StatusInternalServerError,
			Message: fmt.Sprintf(msgGatewayUnreachable, base),
			Err:     err,
		}
	}
	r.logger.Error("gateway call failed", logger.Error(err))
	return unexpected(err)
}

// upstreamMessage picks the best user-facing text out of an error body:
// its "message", then its "error", then the raw text.
func upstreamMessage(body []byte) string {
	if json.Valid(body) {
		var parsed struct {
			Message json.RawMessage `json:"message"`
			Error   json.RawMessage `json:"error"`
		}
		if err := json.Unmarshal(body, &parsed); err != nil {
			return msgServerError
		}
		if s := jsonText(parsed.Message); s != "" {
			return s
		}
		if s := jsonText(parsed.Error); s != "" {
			return s
		}
		return msgServerError
	}

	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return msgServerError
}

// jsonText renders a JSON value as text: strings unquoted, other values raw.
func jsonText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
