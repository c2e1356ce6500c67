package config

import (
	"fmt"
)

// Validate enforces the boot-time configuration matrix. It returns the first
// violation found; the process must refuse to start on error.
//
// The rules it enforces:
//   - ENVIRONMENT must be one of the known values.
//   - WEBHOOK_SECRET and ACCESS_TOKEN are required outside development.
//   - In-memory dedupe/session/queue backends are development-only.
//   - push_http queues need an internal token and base URL.
//   - The kv backends need a Redis address.
//   - GCS export needs a bucket.
func Validate(s *Settings) error {
	if !s.Environment.IsValid() {
		return fmt.Errorf("ENVIRONMENT %q is not one of development, staging, production", s.Environment)
	}

	if !s.Dedupe.Backend.IsValid() {
		return fmt.Errorf("DEDUPE_BACKEND %q is not one of memory, kv, document", s.Dedupe.Backend)
	}
	if !s.Dedupe.OutboundBackend.IsValid() {
		return fmt.Errorf("OUTBOUND_DEDUPE_BACKEND %q is not one of memory, kv, document", s.Dedupe.OutboundBackend)
	}
	if !s.Queue.Backend.IsValid() {
		return fmt.Errorf("QUEUE_BACKEND %q is not one of memory, push_http", s.Queue.Backend)
	}
	if !s.Session.Backend.IsValid() {
		return fmt.Errorf("SESSION_STORE_BACKEND %q is not one of memory, document", s.Session.Backend)
	}
	if !s.Export.Backend.IsValid() {
		return fmt.Errorf("EXPORT_BACKEND %q is not one of local, gcs", s.Export.Backend)
	}

	if !s.Environment.IsDevelopment() {
		if s.Webhook.Secret == "" {
			return fmt.Errorf("WEBHOOK_SECRET is required in %s", s.Environment)
		}
		if s.WhatsApp.AccessToken == "" {
			return fmt.Errorf("ACCESS_TOKEN is required in %s", s.Environment)
		}
		if s.WhatsApp.PhoneNumberID == "" {
			return fmt.Errorf("PHONE_NUMBER_ID is required in %s", s.Environment)
		}
		if s.UserKeyPepper == "" {
			return fmt.Errorf("USER_KEY_PEPPER is required in %s", s.Environment)
		}
		if s.Dedupe.Backend == DedupeBackendMemory {
			return fmt.Errorf("DEDUPE_BACKEND=memory is not allowed in %s", s.Environment)
		}
		if s.Dedupe.OutboundBackend == DedupeBackendMemory {
			return fmt.Errorf("OUTBOUND_DEDUPE_BACKEND=memory is not allowed in %s", s.Environment)
		}
		if s.Session.Backend == SessionStoreMemory {
			return fmt.Errorf("SESSION_STORE_BACKEND=memory is not allowed in %s", s.Environment)
		}
		if s.Queue.Backend == QueueBackendMemory {
			return fmt.Errorf("QUEUE_BACKEND=memory is not allowed in %s", s.Environment)
		}
	}

	if s.Queue.Backend == QueueBackendPushHTTP {
		if s.Queue.InternalToken == "" {
			return fmt.Errorf("INTERNAL_TOKEN is required when QUEUE_BACKEND=push_http")
		}
		if s.Queue.InternalBaseURL == "" {
			return fmt.Errorf("INTERNAL_BASE_URL is required when QUEUE_BACKEND=push_http")
		}
	}

	needsRedis := s.Dedupe.Backend == DedupeBackendKV || s.Dedupe.OutboundBackend == DedupeBackendKV
	if needsRedis && s.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required when a kv backend is selected")
	}

	if s.Export.Backend == ExportBackendGCS && s.Export.GCSBucket == "" {
		return fmt.Errorf("EXPORT_GCS_BUCKET is required when EXPORT_BACKEND=gcs")
	}

	if s.LLM.Enabled && s.LLM.APIKey == "" && s.LLM.BaseURL == "" {
		return fmt.Errorf("LLM_API_KEY or LLM_BASE_URL is required when LLM_ENABLED=true")
	}

	if s.Session.MaxIntents <= 0 {
		return fmt.Errorf("SESSION_MAX_INTENTS must be positive, got %d", s.Session.MaxIntents)
	}
	if s.Session.HistoryMaxEntries <= 0 {
		return fmt.Errorf("SESSION_HISTORY_MAX_ENTRIES must be positive, got %d", s.Session.HistoryMaxEntries)
	}
	if s.Flood.Threshold <= 0 || s.Flood.Window <= 0 {
		return fmt.Errorf("flood threshold and window must be positive")
	}

	return nil
}
