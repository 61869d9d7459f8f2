package service

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/homelife/backoffice/internal/agent/domain"
	"github.com/homelife/backoffice/internal/cache"
	"github.com/homelife/backoffice/pkg/repository"
)

const rosterCacheKey = "roster"

// rosterTTL bounds staleness after roster edits made directly in the DB.
const rosterTTL = 5 * time.Minute

type Service struct {
	log   *zap.Logger
	repo  repository.Repository[domain.Agent]
	cache cache.Cache[string, []domain.Agent]
}

type ServiceParam struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:   p.Log.Named("agent.service"),
		repo:  repository.ProvideStore[domain.Agent](p.DB),
		cache: cache.NewTTLCache[string, []domain.Agent](),
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Agent, error) {
	if agents, ok := s.cache.Get(rosterCacheKey); ok {
		return agents, nil
	}

	agents, err := s.repo.Find(ctx, "active = ?", true)
	if err != nil {
		return nil, err
	}
	s.cache.Set(rosterCacheKey, agents, rosterTTL)
	return agents, nil
}
