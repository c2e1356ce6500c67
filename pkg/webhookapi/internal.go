package webhookapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zapgate/zapgate/pkg/audit"
	"github.com/zapgate/zapgate/pkg/queue"
	"github.com/zapgate/zapgate/pkg/wire"
)

// processInboundRequest is the body of POST /internal/process_inbound: the
// same shape admission enqueues and the push_http backend delivers. Direct
// callers may omit everything but payload.
type processInboundRequest struct {
	Payload          json.RawMessage `json:"payload"`
	InboundEventID   string          `json:"inbound_event_id"`
	CorrelationID    string          `json:"correlation_id"`
	SignatureSkipped bool            `json:"signature_skipped"`
}

// ProcessInbound handles POST /internal/process_inbound.
func (s *Server) ProcessInbound(c *gin.Context) {
	var req processInboundRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	correlationID := req.CorrelationID
	if correlationID == "" {
		correlationID = requestCorrelationID(c)
	}

	// Direct internal calls carry no prior admission mark; the service
	// deduplicates when the event id was not pre-admitted.
	result, err := s.inbound.ProcessInbound(c.Request.Context(), req.Payload,
		req.InboundEventID, correlationID, req.SignatureSkipped, req.InboundEventID != "")
	if err != nil {
		status, msg := mapServiceError(err)
		c.JSON(status, gin.H{"error": msg, "inbound_event_id": result.InboundEventID})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ProcessOutbound handles POST /internal/process_outbound.
func (s *Server) ProcessOutbound(c *gin.Context) {
	var req wire.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.outbound.ProcessOutbound(c.Request.Context(), req)
	if err != nil {
		status, _ := mapServiceError(err)
		c.JSON(status, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// auditExportRequest is the body of POST /internal/audit_export.
type auditExportRequest struct {
	UserKey string `json:"user_key"`
	Limit   int    `json:"limit"`
}

// AuditExport handles POST /internal/audit_export: verifies the chain and
// writes it to the configured blob store.
func (s *Server) AuditExport(c *gin.Context) {
	if s.chain == nil || s.exporter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "audit store not configured"})
		return
	}

	var req auditExportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_key is required"})
		return
	}

	events, err := s.chain.ListEvents(c.Request.Context(), req.UserKey, req.Limit)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "listing audit events failed"})
		return
	}

	chainValid := true
	if err := audit.VerifyChain(events); err != nil {
		chainValid = false
	}

	location, err := s.exporter.Export(c.Request.Context(), req.UserKey, events)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "export failed"})
		return
	}

	// The export itself joins the chain, so the next export shows this one.
	if err := s.chain.Append(c.Request.Context(), req.UserKey, s.cfg.TenantID,
		"audit_export", location, requestCorrelationID(c), audit.ActorAdmin); err != nil {
		s.logger.Warn("recording export event failed", slog.String("error", err.Error()))
	}

	c.JSON(http.StatusOK, gin.H{
		"user_key":    req.UserKey,
		"events":      len(events),
		"chain_valid": chainValid,
		"location":    location,
	})
}

// QueueHealth handles GET /internal/queue_health.
func (s *Server) QueueHealth(c *gin.Context) {
	if reporter, ok := s.tasks.(queue.HealthReporter); ok {
		c.JSON(http.StatusOK, reporter.Health())
		return
	}
	c.JSON(http.StatusOK, gin.H{"backend": "unknown"})
}
