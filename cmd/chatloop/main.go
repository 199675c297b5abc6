// Chatloop orchestrator — ingests chat-platform messages, drafts persona
// replies through the two-stage LLM pipeline, and serves the reviewer API
// that gates every outbound send.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/halfmoonlabs/chatloop/pkg/api"
	"github.com/halfmoonlabs/chatloop/pkg/batching"
	"github.com/halfmoonlabs/chatloop/pkg/config"
	"github.com/halfmoonlabs/chatloop/pkg/database"
	"github.com/halfmoonlabs/chatloop/pkg/delivery"
	"github.com/halfmoonlabs/chatloop/pkg/entitycache"
	"github.com/halfmoonlabs/chatloop/pkg/events"
	"github.com/halfmoonlabs/chatloop/pkg/kv"
	"github.com/halfmoonlabs/chatloop/pkg/llm"
	"github.com/halfmoonlabs/chatloop/pkg/memory"
	"github.com/halfmoonlabs/chatloop/pkg/pipeline"
	"github.com/halfmoonlabs/chatloop/pkg/quarantine"
	"github.com/halfmoonlabs/chatloop/pkg/queue"
	"github.com/halfmoonlabs/chatloop/pkg/recovery"
	"github.com/halfmoonlabs/chatloop/pkg/safety"
	"github.com/halfmoonlabs/chatloop/pkg/services"
	"github.com/halfmoonlabs/chatloop/pkg/transport"
	"github.com/halfmoonlabs/chatloop/pkg/version"
	"github.com/halfmoonlabs/chatloop/pkg/wal"
)

const expirySweepInterval = time.Hour

func main() {
	envFile := flag.String("env-file", ".env", "Path to the environment file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// 1. Stores: PostgreSQL (ent + migrations) and Redis.
	dbClient, err := database.NewClient(ctx, database.DefaultConfig(cfg.StoreURL))
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

	kvClient, err := kv.NewClient(ctx, cfg.KVURL)
	if err != nil {
		slog.Error("Failed to connect to KV store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := kvClient.Close(); err != nil {
			slog.Error("Error closing KV client", "error", err)
		}
	}()
	rdb := kvClient.Redis()
	slog.Info("Connected to KV store")

	// 2. Domain services over the relational store.
	reviewQueue := queue.New(rdb)
	reviews := services.NewReviewService(dbClient.Client, reviewQueue)
	statuses := services.NewStatusService(dbClient.Client)
	cursors := services.NewCursorService(dbClient.Client)
	recoveryOps := services.NewRecoveryService(dbClient.Client)
	erasure := services.NewErasureService(dbClient.Client)
	qsvc := services.NewQuarantineService(dbClient.Client, events.NewPublisher(dbClient.DB()), cfg.QuarantineTTL)

	// 3. Transport. The MTProto client runs as a sidecar and plugs in
	// behind this port; the in-memory transport serves local runs. Every
	// caller goes through the backoff wrapper so transient transport
	// errors are absorbed in one place.
	tr := transport.WithRetry(transport.NewInMemory())

	// 4. Ingestion: WAL-backed batching tracker.
	walLog := wal.New(rdb, cfg.WALSoftCap)
	tracker := batching.New(rdb, walLog, batching.Options{
		Enabled:         cfg.EnableBatching,
		WindowInitial:   cfg.WindowInitial,
		WindowTypingExt: cfg.WindowTypingExt,
		MaxBatch:        cfg.MaxBatch,
		MaxWait:         cfg.MaxWait,
	})
	if err := tracker.Recover(ctx); err != nil {
		slog.Error("Failed to recover buffered windows", "error", err)
	}

	// 5. Protocol-change fanout and the quarantine manager cache.
	listener := events.NewListener(cfg.StoreURL)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start store listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)

	qm := quarantine.NewManager(qsvc, tracker)
	if err := qm.Warmup(ctx, listener); err != nil {
		slog.Error("Failed to warm quarantine cache", "error", err)
		os.Exit(1)
	}
	// Transport intake for quarantined users is diverted before buffering.
	tracker.SetGate(qm)

	// 6. Generation pipeline: memory, safety, LLM router, supervisor pool.
	mem := memory.NewStore(rdb, memory.Options{
		MaxHistory:       cfg.MaxHistory,
		RecentN:          cfg.RecentN,
		MaxContextBytes:  cfg.MaxContextBytes,
		AntiRepeatWindow: cfg.AntiRepeatWindow,
		HistoryTTL:       cfg.HistoryTTL,
		ProfileTTL:       cfg.ProfileTTL,
	})

	analyzer, err := safety.NewAnalyzer()
	if err != nil {
		slog.Error("Failed to build safety analyzer", "error", err)
		os.Exit(1)
	}

	prompter, err := llm.NewPrompter(cfg.Persona)
	if err != nil {
		slog.Error("Failed to build prompter", "error", err)
		os.Exit(1)
	}
	router, err := llm.NewRouter(cfg, cfg.Profiles, llm.NewQuota(rdb, cfg.Location), prompter)
	if err != nil {
		slog.Error("Failed to build LLM router", "error", err)
		os.Exit(1)
	}

	supervisor := pipeline.New(walLog, rdb, mem, analyzer, router, reviews, qm, pipeline.Options{
		Workers:          cfg.SupervisorWorkers,
		Lease:            cfg.WALLease,
		LockTTL:          cfg.ProcessLock,
		Location:         cfg.Location,
		WeightSafety:     cfg.PriorityWeightSafety,
		WeightBatch:      cfg.PriorityWeightBatch,
		WeightQuarantine: cfg.PriorityWeightQuarantine,
	})

	// 7. Delivery: approved replies back out through the transport. Entity
	// warmup runs in the background; cursors order longest-idle first, so
	// the tail of the list is the most recently active dialogs.
	entities := entitycache.New(tr, 0, 0)
	pool := delivery.NewPool(reviewQueue, tr, reviews, mem, cursors, entities, delivery.Options{
		Workers: cfg.DeliveryWorkers,
	})
	go func() {
		rows, err := cursors.All(ctx)
		if err != nil {
			slog.Warn("Entity warmup skipped, cursor listing failed", "error", err)
			return
		}
		ids := make([]int64, 0, len(rows))
		for i := len(rows) - 1; i >= 0; i-- {
			ids = append(ids, rows[i].ID)
		}
		entities.Warmup(ctx, ids)
	}()

	// 8. Recovery agent for messages missed while offline.
	agent := recovery.New(tr, cursors, tracker, qm, recoveryOps, recovery.Options{
		Interval:           cfg.RecoveryInterval,
		MaxAge:             cfg.RecoveryMaxAge,
		MaxPerUser:         cfg.RecoveryMaxPerUser,
		MaxConcurrentUsers: cfg.RecoveryMaxUsers,
		RateLimit:          cfg.TransportRateLimit,
	})

	// Background loops. runCtx cancellation is the shutdown signal for
	// intake; the pools drain through their own Stop methods.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := tracker.Run(runCtx, tr); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Inbound tracker stopped", "error", err)
		}
	}()
	go supervisor.Run(runCtx)
	go pool.Run(runCtx)
	go agent.Run(runCtx)
	go qm.RunExpirySweep(runCtx, expirySweepInterval)

	// 9. Reviewer HTTP API.
	apiServer := api.NewServer(reviews, statuses, qsvc, qm, erasure, mem,
		dbClient.DB(), kvClient, cfg.ReviewAPIToken)
	apiServer.SetSupervisor(supervisor)
	apiServer.SetDeliveryPool(pool)
	httpServer := &http.Server{
		Addr:    cfg.ReviewAPIBind,
		Handler: apiServer.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Review API listening", "addr", cfg.ReviewAPIBind)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Chatloop started",
		"version", version.Full(),
		"supervisor_workers", cfg.SupervisorWorkers,
		"delivery_workers", cfg.DeliveryWorkers,
		"batching", cfg.EnableBatching)

	// 10. Wait for shutdown signal or server error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop intake first, then drain the pools so
	// in-flight generations land in the review store and in-flight
	// deliveries finish or return to the approved queue.
	cancel()
	tracker.Stop()

	drainCtx, drainCancel := context.WithTimeout(ctx, 30*time.Second)
	defer drainCancel()

	done := make(chan struct{})
	go func() {
		supervisor.Stop()
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pools stopped gracefully")
	case <-drainCtx.Done():
		slog.Warn("Shutdown timeout exceeded, unacked jobs will be lease-recovered")
	}

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
