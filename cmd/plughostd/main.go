// Command plughostd runs the plugin host standalone: it loads the host
// configuration, scans the plugin directory, optionally keeps watching
// it, and serves the status surface until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/plugforge/plughost/config"
	"github.com/plugforge/plughost/host"
	"github.com/plugforge/plughost/logging"
)

func main() {
	configPath := flag.String("config", "", "path to the host config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Global().Fatal("loading config", zap.Error(err))
	}

	logging.Init(cfg.Logging)
	logger := logging.Global()
	defer func() { _ = logger.Sync() }()

	registry := host.NewRegistry(host.Config{
		Dir:    cfg.PluginDir,
		Logger: logger.Zap(),
	})
	if err := registry.Init(); err != nil {
		logger.Fatal("scanning plugin directory", zap.Error(err))
	}
	logger.Info("plugin scan complete",
		zap.String("dir", registry.Dir()),
		zap.Int("plugins", len(registry.Records())))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.WatchPlugins {
		go func() {
			if err := registry.Watch(ctx); err != nil {
				logger.Error("plugin directory watch stopped", zap.Error(err))
			}
		}()
	}

	var statusSrv *http.Server
	if cfg.Status.Enabled {
		statusSrv = &http.Server{Addr: cfg.Status.Addr, Handler: registry.Routes()}
		go func() {
			logger.Info("status listener started", zap.String("addr", cfg.Status.Addr))
			if err := statusSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("status listener failed", zap.Error(err))
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	if statusSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = statusSrv.Shutdown(shutdownCtx)
	}

	registry.Shutdown()
}
