package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	agentdomain "github.com/homelife/backoffice/internal/agent/domain"
	auditdomain "github.com/homelife/backoffice/internal/audit/domain"
	"github.com/homelife/backoffice/internal/clock"
	"github.com/homelife/backoffice/internal/config"
	eftdomain "github.com/homelife/backoffice/internal/eft/domain"
	ledgerdomain "github.com/homelife/backoffice/internal/ledger/domain"
	listingdomain "github.com/homelife/backoffice/internal/listing/domain"
	"github.com/homelife/backoffice/internal/observability/logger"
	"github.com/homelife/backoffice/internal/observability/metrics"
	"github.com/homelife/backoffice/internal/observability/tracing"
	receiptdomain "github.com/homelife/backoffice/internal/receipt/domain"
	reminderdomain "github.com/homelife/backoffice/internal/reminder/domain"
	"github.com/homelife/backoffice/internal/report/render"
	"github.com/homelife/backoffice/internal/sequence"
	tbdomain "github.com/homelife/backoffice/internal/trialbalance/domain"
)

// Server holds the HTTP handlers and their service dependencies.
type Server struct {
	cfg config.Config
	log *zap.Logger
	db  *gorm.DB

	ledgerSvc       ledgerdomain.Service
	receiptSvc      receiptdomain.Service
	receiptStore    receiptdomain.Store
	trialBalanceSvc tbdomain.TrialBalanceService
	renderer        render.Renderer
	listingSvc      listingdomain.Service
	agentSvc        agentdomain.Service
	reminderSvc     reminderdomain.Service
	eftSvc          eftdomain.Service
	auditSvc        auditdomain.Service
	seq             *sequence.Generator
	clock           clock.Clock

	httpMetrics *metrics.HTTPMetrics
	limiter     *rateLimiter
}

type ServerParam struct {
	fx.In

	Cfg config.Config
	Log *zap.Logger
	DB  *gorm.DB

	LedgerSvc       ledgerdomain.Service
	ReceiptSvc      receiptdomain.Service
	ReceiptStore    receiptdomain.Store
	TrialBalanceSvc tbdomain.TrialBalanceService
	Renderer        render.Renderer
	ListingSvc      listingdomain.Service
	AgentSvc        agentdomain.Service
	ReminderSvc     reminderdomain.Service
	EFTSvc          eftdomain.Service
	AuditSvc        auditdomain.Service `optional:"true"`
	Seq             *sequence.Generator
	Clock           clock.Clock
}

func NewServer(p ServerParam) *Server {
	return &Server{
		cfg:             p.Cfg,
		log:             p.Log.Named("server"),
		db:              p.DB,
		ledgerSvc:       p.LedgerSvc,
		receiptSvc:      p.ReceiptSvc,
		receiptStore:    p.ReceiptStore,
		trialBalanceSvc: p.TrialBalanceSvc,
		renderer:        p.Renderer,
		listingSvc:      p.ListingSvc,
		agentSvc:        p.AgentSvc,
		reminderSvc:     p.ReminderSvc,
		eftSvc:          p.EFTSvc,
		auditSvc:        p.AuditSvc,
		seq:             p.Seq,
		clock:           p.Clock,
		httpMetrics:     metrics.NewHTTPMetrics(p.Cfg),
		limiter:         newRateLimiter(p.Cfg.RateLimitPerMinute, time.Minute),
	}
}

// NewEngine builds the gin engine with the full middleware chain and routes.
func (s *Server) NewEngine() *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	engine.Use(tracing.GinMiddleware())
	engine.Use(metrics.GinMiddleware(s.httpMetrics))
	engine.Use(s.rateLimitMiddleware())

	s.RegisterAPIRoutes(engine)
	return engine
}

// RegisterAPIRoutes mounts every handler on the engine.
func (s *Server) RegisterAPIRoutes(engine *gin.Engine) {
	engine.GET("/healthz", s.Healthz)
	engine.GET("/metrics", s.httpMetrics.Handler())

	api := engine.Group("/api")
	{
		api.GET("/ledger", s.ListLedgerEntries)
		api.POST("/ledger", s.PostLedgerEntries)
		api.DELETE("/ledger", s.ClearLedger)
		api.GET("/ledger/next-reference/:kind", s.NextReference)

		api.GET("/receipts", s.ListReceipts)
		api.POST("/receipts", s.PostReceipt)

		api.GET("/trial-balance", s.GetTrialBalance)
		api.GET("/reports/trial-balance", s.GetTrialBalanceReport)
		api.GET("/reports/journal", s.GetJournalReport)

		api.GET("/listings", s.ListListings)
		api.POST("/listings", s.CreateListing)
		api.PUT("/listings/:id", s.UpdateListing)
		api.DELETE("/listings/:id", s.DeleteListing)
		api.GET("/listings/:id/note", s.GetListingNote)
		api.PUT("/listings/:id/note", s.PutListingNote)

		api.GET("/agents", s.ListAgents)

		api.GET("/reminders", s.ListReminders)
		api.POST("/reminders", s.CreateReminder)

		api.GET("/commission-trust-eft", s.ListEFTRecords)
	}
}

// Healthz reports liveness and database reachability.
func (s *Server) Healthz(c *gin.Context) {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:         s.cfg.HTTPAddr,
		Handler:      s.NewEngine(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.log.Info("http server starting", zap.String("addr", s.cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.log.Info("http server shutting down")
			return srv.Shutdown(ctx)
		},
	})
}

// Module provides and runs the HTTP server.
var Module = fx.Module("server",
	fx.Provide(NewServer),
	fx.Invoke(RunHTTP),
)
