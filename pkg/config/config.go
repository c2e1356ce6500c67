// Package config loads and validates process configuration from the
// environment. Settings are read once at boot and passed to constructors;
// nothing in this package is consulted after startup.
package config

import (
	"os"
	"strconv"
	"time"
)

// WebhookConfig holds webhook admission settings.
type WebhookConfig struct {
	// Secret is the HMAC-SHA256 key for X-Hub-Signature-256 validation.
	// Required outside development; when empty in development, signature
	// checks are skipped and flagged on the processing result.
	Secret string

	// VerifyToken is matched against hub.verify_token on the GET handshake.
	VerifyToken string
}

// WhatsAppConfig holds Graph API send settings.
type WhatsAppConfig struct {
	AccessToken   string
	PhoneNumberID string
	APIVersion    string
	// BaseURL overrides the Graph API origin (tests, proxies). Empty means
	// https://graph.facebook.com.
	BaseURL string
}

// DedupeConfig holds deduplication store settings.
type DedupeConfig struct {
	Backend         DedupeBackend
	OutboundBackend DedupeBackend
	TTL             time.Duration
}

// QueueConfig holds task queue and worker pool settings.
type QueueConfig struct {
	Backend QueueBackend

	// WorkerCount is the number of worker goroutines draining the memory queue.
	WorkerCount int

	// Size is the memory queue buffer; Enqueue fails when full.
	Size int

	// InternalToken authenticates push deliveries to /internal handlers.
	InternalToken string

	// InternalBaseURL is where the push_http backend delivers tasks.
	InternalBaseURL string

	// TaskTimeout is the deadline propagated to each worker task.
	TaskTimeout time.Duration

	// GracefulShutdownTimeout is the max wait for in-flight tasks on shutdown.
	GracefulShutdownTimeout time.Duration
}

// SessionConfig holds conversation session settings.
type SessionConfig struct {
	Backend           SessionStoreBackend
	Timeout           time.Duration
	MaxIntents        int
	HistoryMaxEntries int
}

// FloodConfig holds flood detection settings.
type FloodConfig struct {
	Threshold int
	Window    time.Duration
}

// StageConfig holds per-LLM-stage settings.
type StageConfig struct {
	Model               string
	Timeout             time.Duration
	ConfidenceThreshold float64
}

// LLMConfig holds decision pipeline settings.
type LLMConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string

	Detector  StageConfig
	Responder StageConfig
	Selector  StageConfig

	// DeciderEnabled turns on the optional master decider arbitration call.
	DeciderEnabled bool
	Decider        StageConfig

	// MinResponses is the contractual minimum of interactive options produced
	// by the response generator when interactive output is expected.
	MinResponses int
}

// BreakerConfig holds circuit breaker settings for the outbound dispatcher.
type BreakerConfig struct {
	Enabled      bool
	FailMax      int
	ResetTimeout time.Duration
	HalfOpenMax  int
}

// RedisConfig holds connection settings for the KV store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ExportConfig holds audit export settings.
type ExportConfig struct {
	Backend   ExportBackend
	LocalDir  string
	GCSBucket string
}

// Settings is the full process configuration.
type Settings struct {
	Environment Environment
	HTTPPort    string

	Webhook  WebhookConfig
	WhatsApp WhatsAppConfig
	Dedupe   DedupeConfig
	Queue    QueueConfig
	Session  SessionConfig
	Flood    FloodConfig
	LLM      LLMConfig
	Breaker  BreakerConfig
	Redis    RedisConfig
	Export   ExportConfig

	// UserKeyPepper keys the HMAC that derives opaque user keys from phone
	// numbers. Never logged.
	UserKeyPepper string

	// TenantID scopes dedupe keys and audit chains when substrates are shared.
	TenantID string
}

// Load reads Settings from the environment. It does not validate; call
// Validate afterwards so boot fails loudly on a bad matrix.
func Load() *Settings {
	return &Settings{
		Environment: Environment(getEnv("ENVIRONMENT", string(EnvironmentDevelopment))),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		Webhook: WebhookConfig{
			Secret:      os.Getenv("WEBHOOK_SECRET"),
			VerifyToken: os.Getenv("VERIFY_TOKEN"),
		},
		WhatsApp: WhatsAppConfig{
			AccessToken:   os.Getenv("ACCESS_TOKEN"),
			PhoneNumberID: os.Getenv("PHONE_NUMBER_ID"),
			APIVersion:    getEnv("GRAPH_API_VERSION", "v21.0"),
			BaseURL:       os.Getenv("GRAPH_API_BASE_URL"),
		},
		Dedupe: DedupeConfig{
			Backend:         DedupeBackend(getEnv("DEDUPE_BACKEND", string(DedupeBackendMemory))),
			OutboundBackend: DedupeBackend(getEnv("OUTBOUND_DEDUPE_BACKEND", getEnv("DEDUPE_BACKEND", string(DedupeBackendMemory)))),
			TTL:             getEnvSeconds("DEDUPE_TTL_SECONDS", 604800),
		},
		Queue: QueueConfig{
			Backend:                 QueueBackend(getEnv("QUEUE_BACKEND", string(QueueBackendMemory))),
			WorkerCount:             getEnvInt("QUEUE_WORKER_COUNT", 4),
			Size:                    getEnvInt("QUEUE_SIZE", 1024),
			InternalToken:           os.Getenv("INTERNAL_TOKEN"),
			InternalBaseURL:         os.Getenv("INTERNAL_BASE_URL"),
			TaskTimeout:             getEnvSeconds("QUEUE_TASK_TIMEOUT_SECONDS", 120),
			GracefulShutdownTimeout: getEnvSeconds("QUEUE_SHUTDOWN_TIMEOUT_SECONDS", 30),
		},
		Session: SessionConfig{
			Backend:           SessionStoreBackend(getEnv("SESSION_STORE_BACKEND", string(SessionStoreMemory))),
			Timeout:           time.Duration(getEnvInt("SESSION_TIMEOUT_MINUTES", 30)) * time.Minute,
			MaxIntents:        getEnvInt("SESSION_MAX_INTENTS", 3),
			HistoryMaxEntries: getEnvInt("SESSION_HISTORY_MAX_ENTRIES", 200),
		},
		Flood: FloodConfig{
			Threshold: getEnvInt("FLOOD_THRESHOLD", 10),
			Window:    getEnvSeconds("FLOOD_WINDOW_SECONDS", 60),
		},
		LLM: LLMConfig{
			Enabled: getEnvBool("LLM_ENABLED", false),
			BaseURL: os.Getenv("LLM_BASE_URL"),
			APIKey:  os.Getenv("LLM_API_KEY"),
			Detector: StageConfig{
				Model:               getEnv("LLM_DETECTOR_MODEL", "gpt-4o-mini"),
				Timeout:             getEnvSeconds("LLM_DETECTOR_TIMEOUT_SECONDS", 10),
				ConfidenceThreshold: getEnvFloat("LLM_DETECTOR_CONFIDENCE_THRESHOLD", 0.7),
			},
			Responder: StageConfig{
				Model:               getEnv("LLM_RESPONDER_MODEL", "gpt-4o-mini"),
				Timeout:             getEnvSeconds("LLM_RESPONDER_TIMEOUT_SECONDS", 15),
				ConfidenceThreshold: getEnvFloat("LLM_RESPONDER_CONFIDENCE_THRESHOLD", 0.5),
			},
			Selector: StageConfig{
				Model:               getEnv("LLM_SELECTOR_MODEL", "gpt-4o-mini"),
				Timeout:             getEnvSeconds("LLM_SELECTOR_TIMEOUT_SECONDS", 8),
				ConfidenceThreshold: getEnvFloat("LLM_SELECTOR_CONFIDENCE_THRESHOLD", 0.5),
			},
			DeciderEnabled: getEnvBool("LLM_DECIDER_ENABLED", false),
			Decider: StageConfig{
				Model:               getEnv("LLM_DECIDER_MODEL", "gpt-4o-mini"),
				Timeout:             getEnvSeconds("LLM_DECIDER_TIMEOUT_SECONDS", 8),
				ConfidenceThreshold: getEnvFloat("LLM_DECIDER_CONFIDENCE_THRESHOLD", 0.5),
			},
			MinResponses: getEnvInt("RESPONSE_GENERATOR_MIN_RESPONSES", 3),
		},
		Breaker: BreakerConfig{
			Enabled:      getEnvBool("CB_ENABLED", true),
			FailMax:      getEnvInt("CB_FAIL_MAX", 5),
			ResetTimeout: getEnvSeconds("CB_RESET_TIMEOUT_SECONDS", 30),
			HalfOpenMax:  getEnvInt("CB_HALF_OPEN_MAX", 1),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Export: ExportConfig{
			Backend:   ExportBackend(getEnv("EXPORT_BACKEND", string(ExportBackendLocal))),
			LocalDir:  getEnv("EXPORT_LOCAL_DIR", "./exports"),
			GCSBucket: os.Getenv("EXPORT_GCS_BUCKET"),
		},
		UserKeyPepper: os.Getenv("USER_KEY_PEPPER"),
		TenantID:      os.Getenv("TENANT_ID"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defaultSeconds)) * time.Second
}
