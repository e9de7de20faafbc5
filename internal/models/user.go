package models

import "time"

type User struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	OrganisationID uint          `gorm:"not null;index" json:"organisation_id"`
	Organisation   *Organisation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"organisation,omitempty"`

	Name         string `gorm:"size:100" json:"name"`
	Email        string `gorm:"size:150;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
