package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Listing statuses as tracked by the back office.
const (
	StatusActive      = "Active"
	StatusConditional = "Conditional"
	StatusSold        = "Sold"
	StatusExpired     = "Expired"
)

// Listing is a property listing record.
type Listing struct {
	ID        snowflake.ID    `gorm:"primaryKey" json:"id"`
	MLSNumber string          `gorm:"type:text;index" json:"mlsNumber"`
	Address   string          `gorm:"type:text;not null" json:"address"`
	City      string          `gorm:"type:text" json:"city"`
	ListPrice decimal.Decimal `gorm:"type:numeric;not null" json:"listPrice"`
	AgentName string          `gorm:"type:text" json:"agentName"`
	Status    string          `gorm:"type:text;not null" json:"status"`
	Note      string          `gorm:"type:text" json:"note"`
	CreatedAt time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"not null" json:"updatedAt"`
}

// TableName sets the database table name.
func (Listing) TableName() string { return "listings" }

// CreateListingRequest carries the fields accepted on create.
type CreateListingRequest struct {
	MLSNumber string
	Address   string
	City      string
	ListPrice decimal.Decimal
	AgentName string
	Status    string
}

// UpdateListingRequest carries the mutable fields; nil means unchanged.
type UpdateListingRequest struct {
	MLSNumber *string
	Address   *string
	City      *string
	ListPrice *decimal.Decimal
	AgentName *string
	Status    *string
}

// ListingService manages property listing records.
type ListingService interface {
	Create(ctx context.Context, req CreateListingRequest) (Listing, error)
	Update(ctx context.Context, id snowflake.ID, req UpdateListingRequest) (Listing, error)
	Delete(ctx context.Context, id snowflake.ID) error
	List(ctx context.Context) ([]Listing, error)
	GetNote(ctx context.Context, id snowflake.ID) (string, error)
	SetNote(ctx context.Context, id snowflake.ID, note string) error
}

// Service is the package alias for ListingService.
type Service = ListingService

var (
	ErrInvalidAddress = errors.New("invalid_address")
	ErrInvalidPrice   = errors.New("invalid_price")
	ErrInvalidStatus  = errors.New("invalid_status")
	ErrNotFound       = errors.New("listing_not_found")
)
