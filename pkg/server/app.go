package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"StockDash/internal/repository"
	"StockDash/pkg/config"
	xhttp "StockDash/pkg/http"
	applogger "StockDash/pkg/logger"
)

// App owns the application lifecycle: it starts the HTTP server, waits for
// an interrupt and shuts every component down in dependency order.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	httpServer *xhttp.Server
	redisStore *repository.RedisStore
	tradeStore *repository.CHTradeStore
}

func New(
	cfg *config.Config,
	log *applogger.Logger,
	httpServer *xhttp.Server,
	redisStore *repository.RedisStore,
	tradeStore *repository.CHTradeStore,
) *App {
	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: httpServer,
		redisStore: redisStore,
		tradeStore: tradeStore,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.tradeStore.Init(ctx); err != nil {
		a.log.Error("trading history schema init failed", applogger.Error(err))
		return err
	}

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("server started",
		applogger.String("environment", a.cfg.Environment),
		applogger.Int("port", a.cfg.Server.Port),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown(ctx)
}

func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}
	if err := a.tradeStore.Close(); err != nil {
		a.log.Warn("clickhouse close error", applogger.Error(err))
	}
	if err := a.redisStore.Close(); err != nil {
		a.log.Warn("redis close error", applogger.Error(err))
	}

	a.log.Info("shutdown complete")
	return nil
}
