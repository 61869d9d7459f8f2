package logger

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/homelife/backoffice/internal/auditcontext"
	obscontext "github.com/homelife/backoffice/internal/observability/context"
)

// MiddlewareConfig tunes the request logging middleware.
type MiddlewareConfig struct {
	// SkipPaths lists endpoints excluded from access logging (health checks,
	// metrics scrapes). Request IDs are still assigned.
	SkipPaths []string
}

// GinMiddleware assigns each request an ID, stores request metadata on the
// context for downstream audit writes, and emits one access log line.
func GinMiddleware(cfg MiddlewareConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = struct{}{}
	}

	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)

		ctx := obscontext.WithRequestID(c.Request.Context(), requestID)
		ctx = auditcontext.WithRequestID(ctx, requestID)
		ctx = auditcontext.WithIPAddress(ctx, c.ClientIP())
		ctx = auditcontext.WithUserAgent(ctx, c.Request.UserAgent())
		// X-Actor-Id is set by the fronting proxy for authenticated staff.
		if actorID := strings.TrimSpace(c.GetHeader("X-Actor-Id")); actorID != "" {
			ctx = obscontext.WithActor(ctx, "user", actorID)
			ctx = auditcontext.WithActor(ctx, "user", actorID)
		}
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		if _, ok := skip[c.FullPath()]; ok {
			return
		}

		log := FromContext(c.Request.Context())
		log.Info("http request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
		if log.Core().Enabled(zap.DebugLevel) {
			log.Debug("http request headers",
				zap.String("request_id", requestID),
				zap.Any("headers", MaskHeaders(c.Request.Header)),
			)
		}
	}
}
