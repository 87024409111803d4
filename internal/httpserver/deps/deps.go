package deps

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MrSnakeDoc/soccerfront/internal/domain"
	"github.com/MrSnakeDoc/soccerfront/internal/eureka"
	"github.com/MrSnakeDoc/soccerfront/internal/logger"
	redisstore "github.com/MrSnakeDoc/soccerfront/internal/store/redis"
)

// Searcher relays a soccer search to the gateway.
type Searcher interface {
	Search(ctx context.Context, method string, q domain.SearchQuery) (json.RawMessage, error)
}

// Registry is the read side of the service registry.
type Registry interface {
	Resolve(ctx context.Context, name string) (eureka.Instance, bool)
	Applications(ctx context.Context) []eureka.Application
}

// History records and ranks searched keywords.
type History interface {
	RecordSearch(ctx context.Context, q domain.SearchQuery) error
	TopKeywords(ctx context.Context, n int) ([]redisstore.KeywordCount, error)
	Recent(ctx context.Context, n int) ([]redisstore.SearchEntry, error)
	Ping(ctx context.Context) error
}

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time // for testing, defaults to time.Now
	AllowedHosts []string         // Host headers allowed to reach the search routes
	AllowedCIDRS []string         // IPs allowed to access healthz/readyz/infra
	TrustProxy   bool             // true if running behind a trusted reverse proxy
	RateBurst    int              // per-IP burst on the search routes
	RatePerMin   int              // per-IP refill on the search routes

	Searcher       Searcher
	Registry       Registry
	History        History // nil when Redis is not configured
	RegistryURL    string
	GatewayService string
	GatewayURL     string // override, empty means discovery
}
