package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"peerlink/domain/event"
	"peerlink/infrastructure/ws"
	"peerlink/internal"
	"peerlink/observability"
	"peerlink/projection"
	"peerlink/runtime"
	"peerlink/runtime/workers"
	"peerlink/services"
)

// Exit codes to provide meaningful status to the operating system or
// service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper; run() owns the
	// lifecycle so deferred cleanup executes before the exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Broker terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger. The .env file is a local development
	// convenience; absence is not an error.
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Broker state: registry + ledger behind the session router.
	stats := observability.NewStats(logger)
	activity := projection.NewActivity(config.MaxActivityEntries)
	telemetryChan := make(chan event.Event, config.TelemetryBufferSize)

	registry := runtime.NewRegistry()
	ledger := runtime.NewLedger(registry)
	router := runtime.NewRouter(logger, registry, ledger, telemetryChan)
	brokerService := services.NewBrokerService(router)

	// 3. Supervision: telemetry drain + periodic stats logging.
	sup := workers.NewSupervisor(logger)
	sup.Add(
		workers.NewTelemetryWorker(logger, telemetryChan, []event.Handler{
			observability.NewStatsHandler(stats),
			activity,
		}),
		workers.NewStatsReporterWorker(logger, stats, config.StatsInterval),
	)

	// 4. Context & Signals.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	if config.EnableDebugServer {
		internal.StartDebugServer(logger, stats, activity, config.DebugPort)
	}

	// 5. Websocket endpoint.
	wsServer := ws.NewServer(logger, brokerService, config.SessionBufferSize, config.WriteTimeout)
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsServer.Handle)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{Addr: address, Handler: mux}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting broker", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 6. Wait for stop or error.
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 7. Graceful shutdown: stop accepting sessions, then drain workers.
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("forced shutdown", "error", err)
	}
	sup.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}
