// Package api implements app.Runner for the trade server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/adiboy-23/fun-pump/pkg/app"
	"github.com/adiboy-23/fun-pump/pkg/attemptstore"
	"github.com/adiboy-23/fun-pump/pkg/auth"
	apphttp "github.com/adiboy-23/fun-pump/pkg/app/http"
	"github.com/adiboy-23/fun-pump/pkg/config"
	"github.com/adiboy-23/fun-pump/pkg/ethereum"
	"github.com/adiboy-23/fun-pump/pkg/market"
	"github.com/adiboy-23/fun-pump/pkg/pgutil"
	"github.com/adiboy-23/fun-pump/pkg/pricing"
	"github.com/adiboy-23/fun-pump/pkg/reconciler"
	"github.com/adiboy-23/fun-pump/pkg/trade"
	tradeservice "github.com/adiboy-23/fun-pump/pkg/trade/service"
)

const (
	defaultRequestTimeout = 60 * time.Second
	readyTimeout          = 3 * time.Second
)

// Server holds cfg to init the trade server.
type Server struct {
	cfg *config.Config
}

var _ app.Runner = (*Server)(nil)

// NewServer initializes new trade server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run serves the API until SIGINT or SIGTERM, then drains in-flight purchases.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("trade server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting trade server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	registry, err := s.loadRegistry()
	if err != nil {
		return err
	}

	gateway, err := ethereum.Dial(ctx, &cfg.Ethereum, registry, logger)
	if err != nil {
		return fmt.Errorf("connect ethereum: %w", err)
	}
	defer gateway.Close()

	var (
		store trade.Store
		db    *bun.DB
	)
	if cfg.Database.Enabled {
		db, err = pgutil.ConnectDB(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("connect db: %w", err)
		}
		defer func() { _ = db.Close() }()
		logger.Info("Connected to database",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.Database),
		)
		store = attemptstore.NewStore(db)
	} else {
		logger.Warn("Database disabled, attempt history is kept in memory only")
	}

	session := market.NewSession(gateway, pricing.NewEngine(gateway), market.Config{
		ListingLimit:   cfg.Trade.ListingLimit,
		SnapshotTTL:    cfg.Trade.SnapshotTTL,
		MaxAmountUnits: cfg.Trade.MaxAmountUnits,
	}, logger)

	controller := trade.NewController(gateway, store, trade.Config{
		ConfirmationTimeout: cfg.Ethereum.ConfirmationTimeout,
		HistoryLimit:        cfg.Trade.HistoryLimit,
		MaxAmountUnits:      cfg.Trade.MaxAmountUnits,
	}, logger)
	unsubscribe := controller.OnSnapshotInvalidated(session.Invalidate)
	defer unsubscribe()


	var authn func(http.Handler) http.Handler
	if cfg.Auth.Enabled {
		authn = auth.NewJWTValidator(cfg.Auth.HMACSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL).Middleware
	} else {
		logger.Warn("Auth disabled, state-changing routes are open")
	}

	checks := []readinessCheck{{name: "ethereum", fn: func(ctx context.Context) error {
		_, err := gateway.NodeChainID(ctx)
		return err
	}}}
	if db != nil {
		checks = append(checks, readinessCheck{name: "database", fn: db.PingContext})
	}
	if cfg.Trade.ReconcileInterval > 0 {
		rec := reconciler.New(gateway, session.Invalidate, cfg.Trade.ListingLimit, logger)
		rec.StartPeriodicReconciliation(cfg.Trade.ReconcileInterval)
		defer rec.Stop()
		checks = append(checks, reconcilerCheck(rec))
	}

	router := newRouter(routerDeps{
		trades:     trade.NewLog(controller, logger),
		market:     session,
		network:    &resettingNetwork{Network: gateway, reset: session.Reset},
		authn:      authn,
		checks:     checks,
		monitoring: cfg.Monitoring,
		timeout:    cfg.Server.RequestTimeout,
		logger:     logger,
	})

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	// purchases already signed keep running until settled or the shutdown timeout
	drainCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
	defer cancel()
	if cerr := controller.Close(drainCtx); cerr != nil {
		logger.Warn("Shutdown with purchases in flight", zap.Error(cerr))
	}

	return err
}

func (s *Server) loadRegistry() (*config.ChainRegistry, error) {
	if s.cfg.Ethereum.ChainsFile == "" {
		return config.DefaultChainRegistry(), nil
	}
	registry, err := config.LoadChainRegistry(s.cfg.Ethereum.ChainsFile)
	if err != nil {
		return nil, fmt.Errorf("load chain registry: %w", err)
	}
	return registry, nil
}

type readinessCheck struct {
	name string
	fn   func(context.Context) error
}

type routerDeps struct {
	trades     trade.Service
	market     tradeservice.Market
	network    tradeservice.Network
	authn      func(http.Handler) http.Handler
	checks     []readinessCheck
	monitoring config.MonitoringConfig
	timeout    time.Duration
	logger     *zap.Logger
}

func newRouter(d routerDeps) chi.Router {
	timeout := d.timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/ready", ready(d.checks, d.logger))

	if d.monitoring.Enabled {
		path := d.monitoring.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, promhttp.Handler())
	}

	tradeservice.RegisterRoutes(r, d.trades, d.market, d.network, d.authn, d.logger)
	return r
}

func ready(checks []readinessCheck, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		status := map[string]string{}
		code := http.StatusOK
		for _, c := range checks {
			if err := c.fn(ctx); err != nil {
				logger.Warn("Readiness check failed", zap.String("check", c.name), zap.Error(err))
				status[c.name] = err.Error()
				code = http.StatusServiceUnavailable
				continue
			}
			status[c.name] = "ok"
		}
		_ = apphttp.WriteJSON(w, code, status)
	}
}
