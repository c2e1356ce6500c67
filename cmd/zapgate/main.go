// zapgate server: validates WhatsApp webhooks, runs the decision pipeline
// workers, and dispatches replies through the Graph API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/zapgate/zapgate/pkg/abuse"
	"github.com/zapgate/zapgate/pkg/audit"
	"github.com/zapgate/zapgate/pkg/config"
	"github.com/zapgate/zapgate/pkg/database"
	"github.com/zapgate/zapgate/pkg/dedupe"
	"github.com/zapgate/zapgate/pkg/dispatch"
	"github.com/zapgate/zapgate/pkg/llm"
	"github.com/zapgate/zapgate/pkg/masking"
	"github.com/zapgate/zapgate/pkg/pipeline"
	"github.com/zapgate/zapgate/pkg/queue"
	"github.com/zapgate/zapgate/pkg/services"
	"github.com/zapgate/zapgate/pkg/session"
	"github.com/zapgate/zapgate/pkg/version"
	"github.com/zapgate/zapgate/pkg/webhookapi"
)

const collectorInterval = 10 * time.Minute

func main() {
	envFile := flag.String("env-file", os.Getenv("ENV_FILE"), "Path to .env file")
	flag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			slog.Warn("Could not load .env file, continuing with existing environment",
				"path", *envFile, "error", err)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()

	// 1. Configuration
	cfg := config.Load()
	if err := config.Validate(cfg); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting zapgate",
		"version", version.Full(),
		"environment", string(cfg.Environment),
		"http_port", cfg.HTTPPort)

	// 2. Database (only when a durable backend needs it)
	var dbClient *database.Client
	if needsDatabase(cfg) {
		dbConfig, err := database.LoadConfigFromEnv()
		if err != nil {
			slog.Error("Failed to load database config", "error", err)
			os.Exit(1)
		}
		dbClient, err = database.NewClient(ctx, dbConfig)
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
	}

	// 3. Redis (only when a kv backend needs it)
	var redisClient *redis.Client
	if needsRedis(cfg) {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.Error("Failed to connect to Redis", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		slog.Info("Connected to Redis", "addr", cfg.Redis.Addr)
	}

	// 4. Stores
	keyspace := dedupe.NewKeyspace(version.AppName, string(cfg.Environment), dedupeScope(cfg))
	inboundStore := newDedupeStore(cfg.Dedupe.Backend, redisClient, dbClient)
	outboundStore := newOutboundStore(cfg.Dedupe.OutboundBackend, redisClient, dbClient)

	var sessionStore session.Store
	if cfg.Session.Backend == config.SessionStoreDocument {
		sessionStore = session.NewDocumentStore(dbClient.Client)
	} else {
		sessionStore = session.NewMemoryStore()
	}
	sessions := session.NewManager(sessionStore, cfg.Session.Timeout,
		cfg.Session.MaxIntents, cfg.Session.HistoryMaxEntries, logger)

	var flood abuse.FloodDetector
	if redisClient != nil {
		floodPrefix := version.AppName + ":" + string(cfg.Environment) + ":" + dedupeScope(cfg)
		flood = abuse.NewRedisFloodDetector(redisClient, floodPrefix,
			cfg.Flood.Threshold, cfg.Flood.Window, logger)
	} else {
		flood = abuse.NewMemoryFloodDetector(cfg.Flood.Threshold, cfg.Flood.Window)
	}

	// 5. Masking, LLM pipeline, dispatcher
	masker := masking.NewService()

	var caller llm.Caller
	if cfg.LLM.Enabled {
		caller = llm.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
		slog.Info("LLM client initialized", "base_url", cfg.LLM.BaseURL)
	}
	pipe := pipeline.New(caller, cfg.LLM, logger)

	httpClient := &http.Client{Timeout: 30 * time.Second}
	dispatcher := dispatch.NewDispatcher(httpClient, cfg.WhatsApp, cfg.Breaker,
		outboundStore, keyspace, cfg.Dedupe.TTL, logger)

	// 6. Audit chain, exporter, processing log, collector
	var (
		chain    *audit.Chain
		proclog  *services.ProcessingLog
		exporter audit.Exporter
	)
	if dbClient != nil {
		chain = audit.NewChain(dbClient.Client, logger)
		proclog = services.NewProcessingLog(dbClient.Client, cfg.Dedupe.TTL, logger)

		collector := database.NewCollector(dbClient.Client, collectorInterval)
		collector.Start(ctx)
		defer collector.Stop()
	}
	switch cfg.Export.Backend {
	case config.ExportBackendGCS:
		gcsClient, err := storage.NewClient(ctx)
		if err != nil {
			slog.Error("Failed to create GCS client", "error", err)
			os.Exit(1)
		}
		defer gcsClient.Close()
		exporter = audit.NewGCSExporter(gcsClient, cfg.Export.GCSBucket)
	default:
		local, err := audit.NewLocalExporter(cfg.Export.LocalDir)
		if err != nil {
			slog.Error("Failed to create local exporter", "error", err)
			os.Exit(1)
		}
		exporter = local
	}

	// 7. Services and task queue
	inbound := services.NewInboundService(cfg, masker, sessions, flood, pipe,
		dispatcher, inboundStore, keyspace, chain, proclog, logger)
	outbound := services.NewOutboundService(dispatcher, logger)

	tasks := newTaskQueue(cfg, httpClient, inbound, logger)
	admission := services.NewAdmissionService(cfg, inboundStore, keyspace, tasks, logger)

	// 8. HTTP server
	server := webhookapi.NewServer(cfg, admission, inbound, outbound, chain, exporter, tasks, dbClient, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()
	slog.Info("zapgate started successfully", "workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		slog.Error("HTTP server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Queue.GracefulShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown error", "error", err)
	}
	if err := tasks.Shutdown(shutdownCtx); err != nil {
		slog.Error("Queue shutdown error", "error", err)
	}
	slog.Info("zapgate stopped")
}

func needsDatabase(cfg *config.Settings) bool {
	return cfg.Session.Backend == config.SessionStoreDocument ||
		cfg.Dedupe.Backend == config.DedupeBackendDocument ||
		cfg.Dedupe.OutboundBackend == config.DedupeBackendDocument ||
		!cfg.Environment.IsDevelopment()
}

func needsRedis(cfg *config.Settings) bool {
	return cfg.Dedupe.Backend == config.DedupeBackendKV ||
		cfg.Dedupe.OutboundBackend == config.DedupeBackendKV ||
		!cfg.Environment.IsDevelopment()
}

func dedupeScope(cfg *config.Settings) string {
	if cfg.TenantID != "" {
		return cfg.TenantID
	}
	return cfg.WhatsApp.PhoneNumberID
}

func newDedupeStore(backend config.DedupeBackend, redisClient *redis.Client, dbClient *database.Client) dedupe.Store {
	switch backend {
	case config.DedupeBackendKV:
		return dedupe.NewRedisStore(redisClient)
	case config.DedupeBackendDocument:
		return dedupe.NewDocumentStore(dbClient.Client)
	default:
		return dedupe.NewMemoryStore()
	}
}

func newOutboundStore(backend config.DedupeBackend, redisClient *redis.Client, dbClient *database.Client) dedupe.OutboundStore {
	switch backend {
	case config.DedupeBackendKV:
		return dedupe.NewRedisStore(redisClient)
	case config.DedupeBackendDocument:
		return dedupe.NewDocumentStore(dbClient.Client)
	default:
		return dedupe.NewMemoryStore()
	}
}

func newTaskQueue(cfg *config.Settings, httpClient *http.Client, inbound *services.InboundService, logger *slog.Logger) queue.TaskQueue {
	if cfg.Queue.Backend == config.QueueBackendPushHTTP {
		return queue.NewPushHTTPQueue(httpClient, cfg.Queue.InternalBaseURL, cfg.Queue.InternalToken)
	}

	handlers := map[queue.Kind]queue.Handler{
		queue.KindProcessInbound: func(ctx context.Context, task queue.Task) error {
			var payload services.InboundTaskPayload
			if err := json.Unmarshal(task.Payload, &payload); err != nil {
				return err
			}
			_, err := inbound.ProcessInbound(ctx, payload.Payload, payload.InboundEventID,
				payload.CorrelationID, payload.SignatureSkipped, true)
			return err
		},
	}
	return queue.NewMemoryQueue(cfg.Queue.Size, cfg.Queue.WorkerCount,
		cfg.Queue.TaskTimeout, handlers, logger)
}
