package di

import (
	"fmt"

	drepo "StockDash/internal/domain/repository"
	"StockDash/internal/handler/api"
	"StockDash/internal/handler/ws"
	internalrepo "StockDash/internal/repository"
	"StockDash/internal/service/alphavantage"
	"StockDash/internal/service/cache"
	"StockDash/internal/service/requestqueue"
	"StockDash/internal/usecase"
	pkgch "StockDash/pkg/clickhouse"
	"StockDash/pkg/config"
	xhttp "StockDash/pkg/http"
	applogger "StockDash/pkg/logger"
	"StockDash/pkg/metrics"
	"StockDash/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvidePayloadCache creates the in-memory provider payload cache.
func ProvidePayloadCache() *cache.PayloadCache {
	return cache.NewPayloadCache()
}

// ProvideRequestQueue creates the rate-limited provider request queue.
func ProvideRequestQueue(cfg *config.Config, log *applogger.Logger, m drepo.Metrics) *requestqueue.Queue {
	return requestqueue.New(cfg.AlphaVantage.RequestInterval, log, m)
}

// ProvideAlphaVantage creates the market-data provider client.
func ProvideAlphaVantage(cfg *config.Config) *alphavantage.Client {
	return alphavantage.New(cfg.AlphaVantage.BaseURL, cfg.AlphaVantage.APIKey, cfg.AlphaVantage.Timeout)
}

// ProvideRedisStore connects the per-user store.
func ProvideRedisStore(cfg *config.Config) (*internalrepo.RedisStore, error) {
	store, err := internalrepo.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
	if err != nil {
		return nil, fmt.Errorf("redis store: %w", err)
	}
	return store, nil
}

func ProvideWatchlistStore(store *internalrepo.RedisStore) drepo.WatchlistStore {
	return store.Watchlists()
}

func ProvideNotificationStore(store *internalrepo.RedisStore) drepo.NotificationStore {
	return store.Notifications()
}

func ProvideSettingsStore(store *internalrepo.RedisStore) drepo.SettingsStore {
	return store.Settings()
}

// ProvideClickHouseClient creates the ClickHouse connection pool.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}
	return client, nil
}

// ProvideTradeStore creates the trading history repository. Schema init runs
// at app startup, not here.
func ProvideTradeStore(ch *pkgch.Client, log *applogger.Logger) *internalrepo.CHTradeStore {
	return internalrepo.NewCHTradeStore(ch, log)
}

func ProvideNotifications(store drepo.NotificationStore) *usecase.Notifications {
	return usecase.NewNotifications(store)
}

func ProvideNotifier(notifications *usecase.Notifications, log *applogger.Logger) drepo.Notifier {
	return usecase.NewStoreNotifier(notifications, log)
}

// ProvideMarketData wires the acquisition pipeline.
func ProvideMarketData(
	provider *alphavantage.Client,
	payloadCache *cache.PayloadCache,
	queue *requestqueue.Queue,
	notifier drepo.Notifier,
	m drepo.Metrics,
	log *applogger.Logger,
	cfg *config.Config,
) drepo.MarketData {
	return usecase.NewMarketData(provider, payloadCache, queue, notifier, m, log, cfg.AlphaVantage.CacheTTL)
}

func ProvideWatchlists(store drepo.WatchlistStore, market drepo.MarketData, log *applogger.Logger) *usecase.Watchlists {
	return usecase.NewWatchlists(store, market, log)
}

func ProvideSettings(store drepo.SettingsStore) *usecase.Settings {
	return usecase.NewSettings(store)
}

func ProvideTradingHistory(trades *internalrepo.CHTradeStore) *usecase.TradingHistory {
	return usecase.NewTradingHistory(trades)
}

// ProvideRouter aggregates all HTTP handlers.
func ProvideRouter(
	cfg *config.Config,
	log *applogger.Logger,
	market drepo.MarketData,
	watchlists *usecase.Watchlists,
	notifications *usecase.Notifications,
	settings *usecase.Settings,
	history *usecase.TradingHistory,
	trades *internalrepo.CHTradeStore,
) *api.Router {
	return api.NewRouter(trades,
		api.NewStocksHandler(log, market),
		api.NewWatchlistsHandler(log, watchlists),
		api.NewNotificationsHandler(log, notifications),
		api.NewSettingsHandler(log, settings),
		api.NewHistoryHandler(log, history),
		ws.NewStreamHandler(log, watchlists, cfg.Watchlist.RefreshInterval),
	)
}

// ProvideHTTPServer creates the Echo server around the router.
func ProvideHTTPServer(cfg *config.Config, log *applogger.Logger, router *api.Router) *xhttp.Server {
	return xhttp.NewServer(router,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithLogger(log),
	)
}

// ProvideApp assembles the application.
func ProvideApp(
	cfg *config.Config,
	log *applogger.Logger,
	httpServer *xhttp.Server,
	redisStore *internalrepo.RedisStore,
	tradeStore *internalrepo.CHTradeStore,
) *server.App {
	return server.New(cfg, log, httpServer, redisStore, tradeStore)
}
