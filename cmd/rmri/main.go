// RMRI engine server: HTTP API, queue workers, and run orchestration
// in one process. Multiple replicas coordinate through the database:
// job claiming, orchestration fences, and orphan recovery are all
// keyed on the pod ID.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vi3318/Research-AI-sub000/pkg/agent"
	"github.com/vi3318/Research-AI-sub000/pkg/api"
	"github.com/vi3318/Research-AI-sub000/pkg/config"
	"github.com/vi3318/Research-AI-sub000/pkg/database"
	"github.com/vi3318/Research-AI-sub000/pkg/events"
	"github.com/vi3318/Research-AI-sub000/pkg/llm"
	"github.com/vi3318/Research-AI-sub000/pkg/orchestrator"
	"github.com/vi3318/Research-AI-sub000/pkg/queue"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	logger := slog.Default()
	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting RMRI engine",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup for jobs this pod abandoned
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal; the periodic orphan scan covers stragglers.
	}

	// 4. Services
	runService := services.NewRunService(dbClient.Client)
	iterationService := services.NewIterationService(dbClient.Client)
	agentService := services.NewAgentService(dbClient.Client)
	resultService := services.NewResultService(dbClient.Client)
	logService := services.NewLogService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	lockService := services.NewLockService(dbClient.Client, podID, cfg.Orchestrator.FenceStaleAfter)
	slog.Info("Services initialized")

	// 5. Observer channel: publisher, hub, LISTEN connection
	publisher := events.NewPublisher(dbClient.DB())
	hub := events.NewHub(events.NewEventServiceAdapter(eventService))
	listener := events.NewListener(dbConfig.DSN(), hub)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start event listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	hub.SetListener(listener)
	slog.Info("Observer channel initialized")

	// 6. LLM gateway
	gateway, err := llm.NewGateway(cfg.LLM, logger)
	if err != nil {
		slog.Error("Failed to initialize LLM gateway", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM gateway initialized", "providers", len(cfg.LLM.Cascade))

	// 7. Queue broker, workers, orchestration engine
	broker := queue.NewBroker(dbClient.Client, cfg.Queue, logService)
	workers := agent.NewWorkers(gateway, agentService, logService, publisher, logger)
	engine := orchestrator.NewEngine(
		cfg.Orchestrator,
		runService, iterationService, agentService, resultService,
		logService, lockService, broker, publisher, logger,
	)

	pool := queue.NewPool(podID, dbClient.Client, cfg.Queue)
	for queueName, handler := range map[string]queue.Handler{
		config.QueueMicro:        workers.MicroHandler,
		config.QueueMeso:         workers.MesoHandler,
		config.QueueMeta:         workers.MetaHandler,
		config.QueueOrchestrator: engine.Handler,
	} {
		if err := pool.RegisterHandler(queueName, handler, 0); err != nil {
			slog.Error("Failed to register queue handler", "queue", queueName, "error", err)
			os.Exit(1)
		}
	}
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Stuck-run watchdog
	watchdogCtx, stopWatchdog := context.WithCancel(ctx)
	defer stopWatchdog()
	go engine.RunWatchdog(watchdogCtx)

	// 9. HTTP server
	server := api.NewServer(
		dbClient, runService, resultService, logService,
		engine, broker, pool, hub, publisher, logger,
	)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("RMRI engine started", "pod_id", podID)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: drain workers first, then the HTTP server.
	stopWatchdog()
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, in-flight jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
