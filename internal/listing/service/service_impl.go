package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/homelife/backoffice/internal/clock"
	"github.com/homelife/backoffice/internal/events"
	"github.com/homelife/backoffice/internal/listing/domain"
	"github.com/homelife/backoffice/pkg/repository"
)

var validStatuses = map[string]bool{
	domain.StatusActive:      true,
	domain.StatusConditional: true,
	domain.StatusSold:        true,
	domain.StatusExpired:     true,
}

type Service struct {
	log   *zap.Logger
	repo  repository.Repository[domain.Listing]
	out   *events.Outbox
	genID *snowflake.Node
	clock clock.Clock
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Out   *events.Outbox
	GenID *snowflake.Node
	Clock clock.Clock
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:   p.Log.Named("listing.service"),
		repo:  repository.ProvideStore[domain.Listing](p.DB),
		out:   p.Out,
		genID: p.GenID,
		clock: p.Clock,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateListingRequest) (domain.Listing, error) {
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return domain.Listing{}, domain.ErrInvalidAddress
	}
	if req.ListPrice.IsNegative() {
		return domain.Listing{}, domain.ErrInvalidPrice
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = domain.StatusActive
	}
	if !validStatuses[status] {
		return domain.Listing{}, domain.ErrInvalidStatus
	}

	now := s.clock.Now()
	listing := domain.Listing{
		ID:        s.genID.Generate(),
		MLSNumber: strings.TrimSpace(req.MLSNumber),
		Address:   address,
		City:      strings.TrimSpace(req.City),
		ListPrice: req.ListPrice,
		AgentName: strings.TrimSpace(req.AgentName),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, &listing); err != nil {
		return domain.Listing{}, err
	}

	if err := s.out.Publish(ctx, events.Event{
		Type: events.EventListingCreated,
		Payload: map[string]any{
			"listing_id": listing.ID.String(),
			"address":    listing.Address,
			"status":     listing.Status,
		},
		DedupeKey: "listing_created:" + listing.ID.String(),
	}); err != nil {
		s.log.Warn("listing event publish failed", zap.String("id", listing.ID.String()), zap.Error(err))
	}

	s.log.Info("listing created", zap.String("id", listing.ID.String()), zap.String("address", address))
	return listing, nil
}

func (s *Service) Update(ctx context.Context, id snowflake.ID, req domain.UpdateListingRequest) (domain.Listing, error) {
	listing, err := s.load(ctx, id)
	if err != nil {
		return domain.Listing{}, err
	}

	if req.MLSNumber != nil {
		listing.MLSNumber = strings.TrimSpace(*req.MLSNumber)
	}
	if req.Address != nil {
		address := strings.TrimSpace(*req.Address)
		if address == "" {
			return domain.Listing{}, domain.ErrInvalidAddress
		}
		listing.Address = address
	}
	if req.City != nil {
		listing.City = strings.TrimSpace(*req.City)
	}
	if req.ListPrice != nil {
		if req.ListPrice.IsNegative() {
			return domain.Listing{}, domain.ErrInvalidPrice
		}
		listing.ListPrice = *req.ListPrice
	}
	if req.AgentName != nil {
		listing.AgentName = strings.TrimSpace(*req.AgentName)
	}
	if req.Status != nil {
		status := strings.TrimSpace(*req.Status)
		if !validStatuses[status] {
			return domain.Listing{}, domain.ErrInvalidStatus
		}
		listing.Status = status
	}
	listing.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, listing); err != nil {
		return domain.Listing{}, err
	}
	return *listing, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, "id = ?", id); err != nil {
		return err
	}

	if err := s.out.Publish(ctx, events.Event{
		Type:      events.EventListingDeleted,
		Payload:   map[string]any{"listing_id": id.String()},
		DedupeKey: "listing_deleted:" + id.String(),
	}); err != nil {
		s.log.Warn("listing event publish failed", zap.String("id", id.String()), zap.Error(err))
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Listing, error) {
	return s.repo.Find(ctx)
}

func (s *Service) GetNote(ctx context.Context, id snowflake.ID) (string, error) {
	listing, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	return listing.Note, nil
}

func (s *Service) SetNote(ctx context.Context, id snowflake.ID, note string) error {
	listing, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	listing.Note = note
	listing.UpdatedAt = s.clock.Now()
	return s.repo.Save(ctx, listing)
}

func (s *Service) load(ctx context.Context, id snowflake.ID) (*domain.Listing, error) {
	listing, err := s.repo.First(ctx, "id = ?", id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return listing, nil
}
