package server

import (
	"github.com/gin-gonic/gin"

	obscontext "github.com/homelife/backoffice/internal/observability/context"
)

// audit records one audit row for a mutating handler. The actor comes from
// the request context when the middleware resolved one; the audit service
// falls back to the system actor otherwise. Audit failures never fail the
// request.
func (s *Server) audit(c *gin.Context, action, targetType string, targetID *string, metadata map[string]any) {
	if s.auditSvc == nil {
		return
	}
	actorType, actorID := obscontext.ActorFromGin(c)
	var actorRef *string
	if actorID != "" {
		actorRef = &actorID
	}
	_ = s.auditSvc.AuditLog(c.Request.Context(), actorType, actorRef, action, targetType, targetID, metadata)
}
