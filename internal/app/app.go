package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/soccerfront/internal/config"
	"github.com/MrSnakeDoc/soccerfront/internal/eureka"
	"github.com/MrSnakeDoc/soccerfront/internal/httpserver"
	"github.com/MrSnakeDoc/soccerfront/internal/httpserver/deps"
	"github.com/MrSnakeDoc/soccerfront/internal/logger"
	"github.com/MrSnakeDoc/soccerfront/internal/redis"
	"github.com/MrSnakeDoc/soccerfront/internal/relay"
	redisstore "github.com/MrSnakeDoc/soccerfront/internal/store/redis"
	"github.com/MrSnakeDoc/soccerfront/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// One pooled client for both the registry and the gateway. No client
	// timeout: the inbound request context bounds every call.
	httpClient := cleanhttp.DefaultPooledClient()

	registry := eureka.New(cfg.RegistryURL, httpClient, loggerClient)
	searcher := relay.New(cfg, registry, httpClient, loggerClient)

	if cfg.GatewayURL != "" {
		loggerClient.Info("gateway override configured, discovery only gates availability",
			logger.String("gateway_url", cfg.GatewayURL))
	}

	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		TimeNow:        time.Now,
		AllowedHosts:   cfg.AllowedHosts,
		AllowedCIDRS:   cfg.AllowedCIDRS,
		TrustProxy:     cfg.TrustProxy,
		RateBurst:      cfg.RateBurst,
		RatePerMin:     cfg.RatePerMin,
		Searcher:       searcher,
		Registry:       registry,
		RegistryURL:    cfg.RegistryURL,
		GatewayService: cfg.GatewayService,
		GatewayURL:     cfg.GatewayURL,
	}

	// Search history is optional: without Redis the front end still works.
	redisClient := connectRedis(cfg, loggerClient)
	if redisClient != nil {
		d.History = redisstore.NewStore(redisClient, cfg.HistorySize)
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg, loggerClient, d),
		redisClient: redisClient,
	}
}

func connectRedis(cfg *config.Config, log logger.Logger) *goredis.Client {
	if cfg.RedisAddr == "" {
		log.Info("redis not configured, search history disabled")
		return nil
	}

	client, err := redis.Connect(context.Background(), redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDialTimeout,
		ReadTimeout:    cfg.RedisReadTimeout,
		WriteTimeout:   cfg.RedisWriteTimeout,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
	}, log)
	if err != nil {
		log.Warn("redis unavailable, search history disabled", logger.Error(err))
		return nil
	}
	return client
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting soccerfront v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Info(version.String())
	a.logger.Info("discovery configured",
		logger.String("registry", a.cfg.RegistryURL),
		logger.String("gateway_service", a.cfg.GatewayService))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	_ = a.logger.Sync()
	a.logger.Info("✅ soccerfront stopped cleanly")
	return nil
}
