package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Reminder is a dated back-office note (listing expiry, trust deadline).
type Reminder struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Text      string       `gorm:"type:text;not null" json:"text"`
	DueDate   time.Time    `gorm:"not null;index" json:"dueDate"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName sets the database table name.
func (Reminder) TableName() string { return "reminders" }

// CreateReminderRequest carries the fields accepted on create.
type CreateReminderRequest struct {
	Text    string
	DueDate time.Time
}

// ReminderService manages reminders.
type ReminderService interface {
	Create(ctx context.Context, req CreateReminderRequest) (Reminder, error)
	List(ctx context.Context) ([]Reminder, error)
}

// Service is the package alias for ReminderService.
type Service = ReminderService

var (
	ErrInvalidText    = errors.New("invalid_text")
	ErrInvalidDueDate = errors.New("invalid_due_date")
)
