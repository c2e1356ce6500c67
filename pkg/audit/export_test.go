package audit

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalExporter_WritesJSONL(t *testing.T) {
	dir := t.TempDir()
	x, err := NewLocalExporter(dir)
	require.NoError(t, err)

	e1 := sampleEvent("ev-1", "")
	e2 := sampleEvent("ev-2", e1.Hash)

	path, err := x.Export(context.Background(), "tenant-a:deadbeef", []Event{e1, e2})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))
	assert.True(t, strings.HasSuffix(path, ".jsonl"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		lines = append(lines, rec)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, lines, 2)
	assert.Equal(t, "ev-1", lines[0]["event_id"])
	assert.Equal(t, "ev-2", lines[1]["event_id"])
	assert.Equal(t, e1.Hash, lines[1]["prev_hash"], "the export preserves the chain links")
}

func TestLocalExporter_EmptyChain(t *testing.T) {
	x, err := NewLocalExporter(t.TempDir())
	require.NoError(t, err)

	path, err := x.Export(context.Background(), "tenant-a:deadbeef", nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}
