package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"htmx-tictactoe/config"
	"htmx-tictactoe/events"
	"htmx-tictactoe/game"
	"htmx-tictactoe/handlers"

	"github.com/gin-gonic/gin"
)

const evictInterval = 10 * time.Minute

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := run(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "config.yml"))
}

func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func run(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(conf.GinMode)

	store := game.NewStore()
	hub := events.NewHub()
	h := handlers.NewHandler(logger, store, hub, conf.Session.CookieName, conf.Session.MaxAge)

	server := &http.Server{
		Addr:    conf.Addr(),
		Handler: handlers.NewRouter(logger, h),
	}
	// open event streams end when ctx is cancelled
	server.BaseContext = func(net.Listener) context.Context { return ctx }

	go evictSessions(ctx, log, h, conf.Session.TTL())

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Received signal, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	return nil
}

// evictSessions drops sessions idle for longer than their cookie lives and
// ends the event streams still bound to them.
func evictSessions(ctx context.Context, log *slog.Logger, h *handlers.Handler, maxAge time.Duration) {
	ticker := time.NewTicker(evictInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := h.EvictIdle(maxAge); len(evicted) > 0 {
				log.Debug("evicted idle sessions", "count", len(evicted))
			}
		}
	}
}
