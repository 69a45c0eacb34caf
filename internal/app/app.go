package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cryptorates/internal/adapters/httpclient"
	"cryptorates/internal/api"
	"cryptorates/internal/config"
	"cryptorates/internal/metrics"
	httpserver "cryptorates/internal/platform/http"
	"cryptorates/internal/rates"
	"cryptorates/internal/rates/handler"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

// Run wires the application components and starts the HTTP server.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}

	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	if appCfg.Logging.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.Info("Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	appMetrics := metrics.New(registry)

	// Upstream client (configurable timeout, fixed provider)
	apiTimeout := time.Duration(appCfg.Upstream.TimeoutSeconds) * time.Second
	if apiTimeout <= 0 {
		apiTimeout = 10 * time.Second
	}
	rateClient := httpclient.NewCoinGeckoClient(&http.Client{Timeout: apiTimeout}, appCfg.Upstream.BaseURL)

	// Rate cache
	ttl := time.Duration(appCfg.Cache.DurationSeconds) * time.Second
	rateCache := rates.NewCache(rateClient, appMetrics, ttl)

	// Background refresh keeps the cache warm; request handling never depends
	// on it, a cache miss still fetches inline.
	if appCfg.Cache.RefreshEnabled {
		scheduler := rates.NewScheduler(rateCache, ttl)
		defer func() {
			if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := scheduler.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start refresh scheduler")
			return startErr
		}
		logrus.Info("Refresh scheduler activation successful")
	}

	// Handlers and router
	ratesHandler, err := handler.NewRatesHandler(rateCache, appCfg.Version)
	if err != nil {
		logrus.WithError(err).Error("Failed to parse templates")
		return err
	}
	router := api.NewRouter(ratesHandler, appMetrics, registry)

	logrus.Info("Starting http server")
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
