package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
)

// exportRecord is one JSONL line of an export.
type exportRecord struct {
	EventID       string    `json:"event_id"`
	UserKey       string    `json:"user_key"`
	TenantID      string    `json:"tenant_id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Actor         Actor     `json:"actor"`
	Action        string    `json:"action"`
	Reason        string    `json:"reason"`
	PrevHash      string    `json:"prev_hash"`
	Hash          string    `json:"hash"`
	CorrelationID string    `json:"correlation_id,omitempty"`
}

// Exporter writes a user's audit chain to an external location as JSONL.
type Exporter interface {
	// Export writes events and returns the destination location.
	Export(ctx context.Context, userKey string, events []Event) (string, error)
}

func marshalJSONL(events []Event) ([]byte, error) {
	var out []byte
	for _, e := range events {
		line, err := json.Marshal(exportRecord(e))
		if err != nil {
			return nil, err
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out, nil
}

func exportName(userKey string) string {
	return fmt.Sprintf("audit_%s_%s.jsonl", userKey, time.Now().UTC().Format("20060102T150405Z"))
}

// LocalExporter writes exports under a directory.
type LocalExporter struct {
	dir string
}

// NewLocalExporter builds an exporter rooted at dir, creating it if needed.
func NewLocalExporter(dir string) (*LocalExporter, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}
	return &LocalExporter{dir: dir}, nil
}

func (x *LocalExporter) Export(_ context.Context, userKey string, events []Event) (string, error) {
	data, err := marshalJSONL(events)
	if err != nil {
		return "", err
	}
	path := filepath.Join(x.dir, exportName(userKey))
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// GCSExporter writes exports to a Cloud Storage bucket.
type GCSExporter struct {
	client *storage.Client
	bucket string
}

// NewGCSExporter wraps an existing storage client.
func NewGCSExporter(client *storage.Client, bucket string) *GCSExporter {
	return &GCSExporter{client: client, bucket: bucket}
}

func (x *GCSExporter) Export(ctx context.Context, userKey string, events []Event) (string, error) {
	data, err := marshalJSONL(events)
	if err != nil {
		return "", err
	}
	name := exportName(userKey)
	w := x.client.Bucket(x.bucket).Object(name).NewWriter(ctx)
	w.ContentType = "application/x-ndjson"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("writing export object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalizing export object: %w", err)
	}
	return fmt.Sprintf("gs://%s/%s", x.bucket, name), nil
}
