package models

import (
	"time"

	"gorm.io/datatypes"
)

// Log is an append-only audit row. UserID is nil for system actions or
// once the acting user is gone.
type Log struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrganisationID uint          `gorm:"not null;index" json:"organisation_id"`
	Organisation   *Organisation `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	UserID         *uint         `gorm:"index" json:"user_id"`
	User           *User         `gorm:"constraint:OnDelete:SET NULL;" json:"-"`

	Action string         `gorm:"size:50;not null" json:"action"`
	Meta   datatypes.JSON `json:"meta"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// LogEntry is a Log joined with the acting user's display name.
type LogEntry struct {
	Log
	ActorName *string `json:"actor_name"`
	Actor     string  `gorm:"-" json:"actor"`
}
