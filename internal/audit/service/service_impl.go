package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/homelife/backoffice/internal/audit/domain"
	"github.com/homelife/backoffice/internal/auditcontext"
	"github.com/homelife/backoffice/internal/clock"
	"github.com/homelife/backoffice/internal/observability/logger"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
	clock clock.Clock
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Repo  domain.Repository
	GenID *snowflake.Node
	Clock clock.Clock
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("audit.service"),
		repo:  p.Repo,
		genID: p.GenID,
		clock: p.Clock,
	}
}

// AuditLog appends one immutable audit row. Actor and client details missing
// from the arguments are filled from the request context when present.
func (s *Service) AuditLog(ctx context.Context, actorType string, actorID *string, action, targetType string, targetID *string, metadata map[string]any) error {
	if actorType == "" {
		ctxActorType, ctxActorID := auditcontext.ActorFromContext(ctx)
		actorType = ctxActorType
		if actorID == nil && ctxActorID != "" {
			actorID = &ctxActorID
		}
	}
	if actorType == "" {
		actorType = string(domain.ActorTypeSystem)
	}
	metadata = logger.MaskJSON(metadata)
	if metadata == nil {
		metadata = map[string]any{}
	}
	if requestID := auditcontext.RequestIDFromContext(ctx); requestID != "" {
		metadata["request_id"] = requestID
	}

	entry := &domain.AuditLog{
		ID:         s.genID.Generate(),
		ActorType:  actorType,
		ActorID:    actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Metadata:   datatypes.JSONMap(metadata),
		CreatedAt:  s.clock.Now(),
	}
	if ip := auditcontext.IPAddressFromContext(ctx); ip != "" {
		entry.IPAddress = &ip
	}
	if ua := auditcontext.UserAgentFromContext(ctx); ua != "" {
		entry.UserAgent = &ua
	}

	if err := s.repo.Insert(ctx, s.db, entry); err != nil {
		s.log.Warn("audit insert failed",
			zap.String("action", action),
			zap.Error(err),
		)
		return err
	}
	return nil
}
