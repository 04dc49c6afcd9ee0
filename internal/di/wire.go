//go:build wireinject
// +build wireinject

package di

import (
	"StockDash/pkg/config"
	"StockDash/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideRedisStore,
		ProvideClickHouseClient,

		// Stores
		ProvideWatchlistStore,
		ProvideNotificationStore,
		ProvideSettingsStore,
		ProvideTradeStore,

		// Market-data pipeline
		ProvidePayloadCache,
		ProvideRequestQueue,
		ProvideAlphaVantage,
		ProvideNotifications,
		ProvideNotifier,
		ProvideMarketData,

		// Use cases
		ProvideWatchlists,
		ProvideSettings,
		ProvideTradingHistory,

		// HTTP
		ProvideRouter,
		ProvideHTTPServer,

		// Application
		ProvideApp,
	)
	return &server.App{}, nil
}
