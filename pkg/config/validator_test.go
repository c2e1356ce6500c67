package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func devSettings() *Settings {
	return &Settings{
		Environment: EnvironmentDevelopment,
		HTTPPort:    "8080",
		Dedupe: DedupeConfig{
			Backend:         DedupeBackendMemory,
			OutboundBackend: DedupeBackendMemory,
			TTL:             time.Hour,
		},
		Queue:   QueueConfig{Backend: QueueBackendMemory, WorkerCount: 2, Size: 16},
		Session: SessionConfig{Backend: SessionStoreMemory, Timeout: 30 * time.Minute, MaxIntents: 3, HistoryMaxEntries: 200},
		Flood:   FloodConfig{Threshold: 10, Window: time.Minute},
		Export:  ExportConfig{Backend: ExportBackendLocal, LocalDir: "./exports"},
	}
}

func prodSettings() *Settings {
	s := devSettings()
	s.Environment = EnvironmentProduction
	s.Webhook.Secret = "secret"
	s.WhatsApp.AccessToken = "token"
	s.WhatsApp.PhoneNumberID = "1234567890"
	s.UserKeyPepper = "pepper"
	s.Dedupe.Backend = DedupeBackendKV
	s.Dedupe.OutboundBackend = DedupeBackendKV
	s.Session.Backend = SessionStoreDocument
	s.Queue.Backend = QueueBackendPushHTTP
	s.Queue.InternalToken = "internal"
	s.Queue.InternalBaseURL = "http://localhost:8080"
	s.Redis.Addr = "localhost:6379"
	return s
}

func TestValidate_DevelopmentDefaults(t *testing.T) {
	assert.NoError(t, Validate(devSettings()))
}

func TestValidate_DevelopmentAllowsMissingSecrets(t *testing.T) {
	s := devSettings()
	s.Webhook.Secret = ""
	s.WhatsApp.AccessToken = ""
	assert.NoError(t, Validate(s))
}

func TestValidate_ProductionMatrix(t *testing.T) {
	assert.NoError(t, Validate(prodSettings()))
}

func TestValidate_ProductionRequiresSecrets(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		want   string
	}{
		{"webhook secret", func(s *Settings) { s.Webhook.Secret = "" }, "WEBHOOK_SECRET"},
		{"access token", func(s *Settings) { s.WhatsApp.AccessToken = "" }, "ACCESS_TOKEN"},
		{"phone number id", func(s *Settings) { s.WhatsApp.PhoneNumberID = "" }, "PHONE_NUMBER_ID"},
		{"user key pepper", func(s *Settings) { s.UserKeyPepper = "" }, "USER_KEY_PEPPER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := prodSettings()
			tt.mutate(s)
			err := Validate(s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ProductionRejectsMemoryBackends(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"dedupe", func(s *Settings) { s.Dedupe.Backend = DedupeBackendMemory }},
		{"outbound dedupe", func(s *Settings) { s.Dedupe.OutboundBackend = DedupeBackendMemory }},
		{"session store", func(s *Settings) { s.Session.Backend = SessionStoreMemory }},
		{"queue", func(s *Settings) { s.Queue.Backend = QueueBackendMemory }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := prodSettings()
			tt.mutate(s)
			err := Validate(s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "memory")
		})
	}
}

func TestValidate_StagingIsAsStrictAsProduction(t *testing.T) {
	s := prodSettings()
	s.Environment = EnvironmentStaging
	assert.NoError(t, Validate(s))

	s.Session.Backend = SessionStoreMemory
	assert.Error(t, Validate(s))
}

func TestValidate_UnknownEnums(t *testing.T) {
	s := devSettings()
	s.Environment = Environment("qa")
	assert.ErrorContains(t, Validate(s), "ENVIRONMENT")

	s = devSettings()
	s.Dedupe.Backend = DedupeBackend("cassandra")
	assert.ErrorContains(t, Validate(s), "DEDUPE_BACKEND")

	s = devSettings()
	s.Queue.Backend = QueueBackend("sqs")
	assert.ErrorContains(t, Validate(s), "QUEUE_BACKEND")

	s = devSettings()
	s.Export.Backend = ExportBackend("s3")
	assert.ErrorContains(t, Validate(s), "EXPORT_BACKEND")
}

func TestValidate_PushHTTPNeedsTokenAndURL(t *testing.T) {
	s := devSettings()
	s.Queue.Backend = QueueBackendPushHTTP
	assert.ErrorContains(t, Validate(s), "INTERNAL_TOKEN")

	s.Queue.InternalToken = "tok"
	assert.ErrorContains(t, Validate(s), "INTERNAL_BASE_URL")

	s.Queue.InternalBaseURL = "http://localhost:8080"
	assert.NoError(t, Validate(s))
}

func TestValidate_KVBackendNeedsRedisAddr(t *testing.T) {
	s := devSettings()
	s.Dedupe.Backend = DedupeBackendKV
	s.Redis.Addr = ""
	assert.ErrorContains(t, Validate(s), "REDIS_ADDR")
}

func TestValidate_GCSExportNeedsBucket(t *testing.T) {
	s := devSettings()
	s.Export.Backend = ExportBackendGCS
	assert.ErrorContains(t, Validate(s), "EXPORT_GCS_BUCKET")

	s.Export.GCSBucket = "zapgate-audit"
	assert.NoError(t, Validate(s))
}

func TestValidate_LLMEnabledNeedsEndpointOrKey(t *testing.T) {
	s := devSettings()
	s.LLM.Enabled = true
	assert.ErrorContains(t, Validate(s), "LLM_API_KEY")

	s.LLM.APIKey = "sk-test"
	assert.NoError(t, Validate(s))
}

func TestValidate_Bounds(t *testing.T) {
	s := devSettings()
	s.Session.MaxIntents = 0
	assert.ErrorContains(t, Validate(s), "SESSION_MAX_INTENTS")

	s = devSettings()
	s.Session.HistoryMaxEntries = -1
	assert.ErrorContains(t, Validate(s), "SESSION_HISTORY_MAX_ENTRIES")

	s = devSettings()
	s.Flood.Threshold = 0
	assert.ErrorContains(t, Validate(s), "flood")
}

func TestLoad_Defaults(t *testing.T) {
	s := Load()
	assert.Equal(t, EnvironmentDevelopment, s.Environment)
	assert.Equal(t, "8080", s.HTTPPort)
	assert.Equal(t, DedupeBackendMemory, s.Dedupe.Backend)
	assert.Equal(t, 7*24*time.Hour, s.Dedupe.TTL)
	assert.Equal(t, "v21.0", s.WhatsApp.APIVersion)
	assert.Equal(t, 3, s.LLM.MinResponses)
	assert.True(t, s.Breaker.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("DEDUPE_BACKEND", "kv")
	t.Setenv("FLOOD_THRESHOLD", "25")
	t.Setenv("LLM_ENABLED", "true")

	s := Load()
	assert.Equal(t, EnvironmentStaging, s.Environment)
	assert.Equal(t, DedupeBackendKV, s.Dedupe.Backend)
	assert.Equal(t, DedupeBackendKV, s.Dedupe.OutboundBackend, "outbound backend follows DEDUPE_BACKEND by default")
	assert.Equal(t, 25, s.Flood.Threshold)
	assert.True(t, s.LLM.Enabled)
}
