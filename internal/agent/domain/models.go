package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Agent is a brokerage agent record. The roster changes rarely; reads are
// served from a short-lived cache.
type Agent struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Email     string       `gorm:"type:text" json:"email"`
	Phone     string       `gorm:"type:text" json:"phone"`
	Active    bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName sets the database table name.
func (Agent) TableName() string { return "agents" }

// AgentService lists the agent roster.
type AgentService interface {
	List(ctx context.Context) ([]Agent, error)
}

// Service is the package alias for AgentService.
type Service = AgentService
