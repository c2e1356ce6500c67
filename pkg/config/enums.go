package config

// Environment selects the deployment environment and gates which backends
// and shortcuts are allowed at boot.
type Environment string

const (
	// EnvironmentDevelopment allows in-memory backends and unsigned webhooks.
	EnvironmentDevelopment Environment = "development"
	// EnvironmentStaging requires configured secrets and durable backends.
	EnvironmentStaging Environment = "staging"
	// EnvironmentProduction requires configured secrets and durable backends.
	EnvironmentProduction Environment = "production"
)

// IsValid checks if the environment is valid.
func (e Environment) IsValid() bool {
	return e == EnvironmentDevelopment || e == EnvironmentStaging || e == EnvironmentProduction
}

// IsDevelopment reports whether development-only shortcuts are permitted.
func (e Environment) IsDevelopment() bool {
	return e == EnvironmentDevelopment
}

// DedupeBackend selects the store used for inbound/outbound deduplication.
type DedupeBackend string

const (
	// DedupeBackendMemory is an in-process map. Development only.
	DedupeBackendMemory DedupeBackend = "memory"
	// DedupeBackendKV uses Redis with native TTL.
	DedupeBackendKV DedupeBackend = "kv"
	// DedupeBackendDocument uses the document store with a TTL field and
	// periodic collection.
	DedupeBackendDocument DedupeBackend = "document"
)

// IsValid checks if the dedupe backend is valid.
func (b DedupeBackend) IsValid() bool {
	return b == DedupeBackendMemory || b == DedupeBackendKV || b == DedupeBackendDocument
}

// QueueBackend selects the task queue between webhook admission and processing.
type QueueBackend string

const (
	// QueueBackendMemory is an in-process channel drained by the worker pool.
	// Development only.
	QueueBackendMemory QueueBackend = "memory"
	// QueueBackendPushHTTP POSTs tasks to the internal push handlers, the way
	// a managed push queue delivers them.
	QueueBackendPushHTTP QueueBackend = "push_http"
)

// IsValid checks if the queue backend is valid.
func (b QueueBackend) IsValid() bool {
	return b == QueueBackendMemory || b == QueueBackendPushHTTP
}

// SessionStoreBackend selects where session documents live.
type SessionStoreBackend string

const (
	// SessionStoreMemory keeps sessions in-process. Development only.
	SessionStoreMemory SessionStoreBackend = "memory"
	// SessionStoreDocument persists sessions in the document store.
	SessionStoreDocument SessionStoreBackend = "document"
)

// IsValid checks if the session store backend is valid.
func (b SessionStoreBackend) IsValid() bool {
	return b == SessionStoreMemory || b == SessionStoreDocument
}

// ExportBackend selects the blob store used for audit chain exports.
type ExportBackend string

const (
	// ExportBackendLocal writes export files to a local directory.
	ExportBackendLocal ExportBackend = "local"
	// ExportBackendGCS writes export objects to a Google Cloud Storage bucket.
	ExportBackendGCS ExportBackend = "gcs"
)

// IsValid checks if the export backend is valid.
func (b ExportBackend) IsValid() bool {
	return b == ExportBackendLocal || b == ExportBackendGCS
}
