package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/zapgate/zapgate/ent"
	"github.com/zapgate/zapgate/ent/chatsession"
	"github.com/zapgate/zapgate/ent/dedupeentry"
	"github.com/zapgate/zapgate/ent/inboundprocessinglog"
)

// Collector periodically removes rows past their expiry:
//   - dedupe entries past _ttl_expire_at (the document store has no native TTL)
//   - processing log rows past _ttl_expire_at
//   - expired chat sessions not already discarded on load
//
// All sweeps are idempotent and safe to run from multiple pods.
type Collector struct {
	client   *ent.Client
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewCollector creates a collector sweeping at the given interval.
func NewCollector(client *ent.Client, interval time.Duration) *Collector {
	return &Collector{client: client, interval: interval}
}

// Start launches the background sweep loop.
func (c *Collector) Start(ctx context.Context) {
	if c.cancel != nil {
		return
	}
	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})

	go c.run(ctx)

	slog.Info("TTL collector started", "interval", c.interval)
}

// Stop signals the loop to exit and waits for it to finish.
func (c *Collector) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	slog.Info("TTL collector stopped")
}

func (c *Collector) run(ctx context.Context) {
	defer close(c.done)

	c.sweep(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

func (c *Collector) sweep(ctx context.Context) {
	now := time.Now().UTC()

	n, err := c.client.DedupeEntry.Delete().
		Where(dedupeentry.TTLExpireAtLT(now)).
		Exec(ctx)
	if err != nil {
		slog.Error("Collector: dedupe sweep failed", "error", err)
	} else if n > 0 {
		slog.Info("Collector: removed expired dedupe entries", "count", n)
	}

	n, err = c.client.InboundProcessingLog.Delete().
		Where(inboundprocessinglog.TTLExpireAtLT(now)).
		Exec(ctx)
	if err != nil {
		slog.Error("Collector: processing log sweep failed", "error", err)
	} else if n > 0 {
		slog.Info("Collector: removed expired processing logs", "count", n)
	}

	n, err = c.client.ChatSession.Delete().
		Where(chatsession.ExpiresAtLT(now)).
		Exec(ctx)
	if err != nil {
		slog.Error("Collector: session sweep failed", "error", err)
	} else if n > 0 {
		slog.Info("Collector: removed expired sessions", "count", n)
	}
}
