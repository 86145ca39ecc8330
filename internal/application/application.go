package application

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"gift_shop/internal/config"
	"gift_shop/internal/domain/service/market"
	"gift_shop/internal/domain/service/user"
	"gift_shop/internal/infrastructure/ledger"
	"gift_shop/internal/infrastructure/persistence"
	"gift_shop/internal/infrastructure/session"
	"gift_shop/internal/localization"
	"gift_shop/internal/server"
	"gift_shop/internal/transport/bot"
	"gift_shop/internal/worker"
	"gift_shop/pkg/application/connectors"
	"gift_shop/pkg/application/modules"
	"gift_shop/pkg/contextx"
	"gift_shop/pkg/logx"
	"gift_shop/pkg/middlewarex"
)

const (
	httpReadHeaderTimeout = 5 * time.Second
	httpShutdownTimeout   = 10 * time.Second
	logFieldMaxLen        = 4096
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	// Postgres
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db.PingContext: %w", err)
	}

	// Репозитории
	giftRepo := persistence.NewGiftRepository(db)
	userRepo := persistence.NewUserRepository(db)

	// Локали
	locales, err := localization.NewBundle(cfg.App.DefaultLang)
	if err != nil {
		return fmt.Errorf("localization.NewBundle: %w", err)
	}

	// Сессии визардов
	sessions, closeSessions := newSessionStore(ctx, cfg.Session)
	defer closeSessions()

	// TON-шлюз
	tonClient := ledger.NewTonCenterClient(cfg.Ton)

	// Сервисы
	marketSvc := market.NewService(giftRepo, tonClient)
	userSvc := user.NewService(userRepo, cfg.App.DefaultLang, locales.Languages())

	// Telegram-бот
	tgBot, err := bot.New(ctx, cfg.Bot, marketSvc, userSvc, sessions, locales)
	if err != nil {
		return fmt.Errorf("bot.New: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := tgBot.Run(ctx); err != nil {
			return fmt.Errorf("bot.Run: %w", err)
		}

		return nil
	})

	// HTTP витрина
	modules.HTTPServer{ShutdownTimeout: httpShutdownTimeout}.Run(ctx, g, &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.App.HTTPListenAddress,
		Handler:           newRouter(marketSvc),
		ReadHeaderTimeout: httpReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.App.ProbeListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.App.MetricsListenAddress}.Run(ctx, g)

	// Витринные метрики
	stats := worker.NewStatsWorker(marketSvc, cfg.App.StatsInterval, prometheus.DefaultRegisterer)
	g.Go(func() error {
		if err := stats.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("stats.Run: %w", err)
		}

		return nil
	})

	logger(ctx).Info("application started", "name", cfg.App.Name, "version", cfg.App.Version)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func newRouter(marketSvc *market.Service) chi.Router {
	router := chi.NewRouter()

	masker := logx.NewSensitiveDataMasker()

	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	server.NewServer(marketSvc).RegisterRoutes(router)

	return router
}

// newSessionStore выбирает бэкенд сессий по конфигу. Возвращаемый
// closer закрывает redis-подключение; для памяти он no-op.
func newSessionStore(ctx context.Context, cfg config.Session) (session.Store, func()) {
	if cfg.Backend == "redis" {
		rd := &connectors.Redis{
			Address:        cfg.RedisAddress,
			Password:       cfg.RedisPassword,
			DatabaseNumber: cfg.RedisDB,
		}

		return session.NewRedisStore(rd.Client(ctx), cfg.TTL), func() { rd.Close(ctx) }
	}

	return session.NewMemoryStore(cfg.TTL), func() {}
}
