// Package webhookapi is the HTTP surface: the provider-facing webhook
// endpoints, the health probe, and the token-guarded internal handlers the
// task queue delivers to.
package webhookapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zapgate/zapgate/pkg/audit"
	"github.com/zapgate/zapgate/pkg/config"
	"github.com/zapgate/zapgate/pkg/database"
	"github.com/zapgate/zapgate/pkg/queue"
	"github.com/zapgate/zapgate/pkg/services"
)

// Server wires the services to the router.
type Server struct {
	cfg       *config.Settings
	admission *services.AdmissionService
	inbound   *services.InboundService
	outbound  *services.OutboundService
	chain     *audit.Chain
	exporter  audit.Exporter
	tasks     queue.TaskQueue
	db        *database.Client
	logger    *slog.Logger

	httpServer *http.Server
}

// NewServer creates the API server. chain and exporter may be nil when the
// audit store is not configured; the export endpoint then answers 503. db may
// be nil in memory-only runs; the health endpoint then omits database stats.
func NewServer(
	cfg *config.Settings,
	admission *services.AdmissionService,
	inbound *services.InboundService,
	outbound *services.OutboundService,
	chain *audit.Chain,
	exporter audit.Exporter,
	tasks queue.TaskQueue,
	db *database.Client,
	logger *slog.Logger,
) *Server {
	return &Server{
		cfg:       cfg,
		admission: admission,
		inbound:   inbound,
		outbound:  outbound,
		chain:     chain,
		exporter:  exporter,
		tasks:     tasks,
		db:        db,
		logger:    logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	if !s.cfg.Environment.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(securityHeaders())
	r.Use(correlationID())

	r.GET("/health", s.Health)
	r.GET("/webhooks/whatsapp", s.VerifyWebhook)
	r.POST("/webhooks/whatsapp", s.ReceiveWebhook)

	internal := r.Group("/internal", s.requireInternalToken())
	internal.POST("/process_inbound", s.ProcessInbound)
	internal.POST("/process_outbound", s.ProcessOutbound)
	internal.POST("/audit_export", s.AuditExport)
	internal.GET("/queue_health", s.QueueHealth)

	return r
}

// Start runs the HTTP server until it fails or Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              ":" + s.cfg.HTTPPort,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("http server listening", slog.String("port", s.cfg.HTTPPort))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
