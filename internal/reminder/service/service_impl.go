package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/homelife/backoffice/internal/clock"
	"github.com/homelife/backoffice/internal/reminder/domain"
	"github.com/homelife/backoffice/pkg/repository"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  repository.Repository[domain.Reminder]
	genID *snowflake.Node
	clock clock.Clock
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("reminder.service"),
		repo:  repository.ProvideStore[domain.Reminder](p.DB),
		genID: p.GenID,
		clock: p.Clock,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateReminderRequest) (domain.Reminder, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return domain.Reminder{}, domain.ErrInvalidText
	}
	if req.DueDate.IsZero() {
		return domain.Reminder{}, domain.ErrInvalidDueDate
	}

	reminder := domain.Reminder{
		ID:        s.genID.Generate(),
		Text:      text,
		DueDate:   req.DueDate,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Create(ctx, &reminder); err != nil {
		return domain.Reminder{}, err
	}
	return reminder, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Reminder, error) {
	var reminders []domain.Reminder
	err := s.db.WithContext(ctx).
		Order("due_date ASC, id ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}
