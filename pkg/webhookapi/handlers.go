package webhookapi

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zapgate/zapgate/pkg/database"
	"github.com/zapgate/zapgate/pkg/version"
)

// maxWebhookBody bounds the accepted webhook payload size.
const maxWebhookBody = 1 << 20

// Health handles GET /health. A failing database ping degrades the overall
// status to 503 so the orchestrator stops routing traffic here.
func (s *Server) Health(c *gin.Context) {
	resp := gin.H{
		"status":  "healthy",
		"service": version.AppName,
		"version": version.Full(),
	}
	if s.db != nil {
		dbHealth, err := database.Health(c.Request.Context(), s.db.DB())
		resp["database"] = dbHealth
		if err != nil {
			resp["status"] = "degraded"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyWebhook handles the GET subscription handshake.
func (s *Server) VerifyWebhook(c *gin.Context) {
	challenge, err := s.admission.VerifyHandshake(
		c.Query("hub.mode"),
		c.Query("hub.verify_token"),
		c.Query("hub.challenge"),
	)
	if err != nil {
		c.String(http.StatusForbidden, "forbidden")
		return
	}
	c.String(http.StatusOK, challenge)
}

// ReceiveWebhook handles POST /webhooks/whatsapp: signature, parse, dedupe
// mark, enqueue. It never blocks on LLM or provider calls.
func (s *Server) ReceiveWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unreadable body"})
		return
	}

	validated, skipped, err := s.admission.VerifySignature(body, c.GetHeader("X-Hub-Signature-256"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "signature validation failed"})
		return
	}

	result, err := s.admission.Admit(c.Request.Context(), body, requestCorrelationID(c), validated, skipped)
	if err != nil {
		status, msg := mapServiceError(err)
		c.JSON(status, gin.H{"ok": false, "error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":                  true,
		"enqueued":            result.Enqueued,
		"task_id":             result.TaskID,
		"inbound_event_id":    result.InboundEventID,
		"signature_validated": result.SignatureValidated,
		"signature_skipped":   result.SignatureSkipped,
	})
}
