package models

import "time"

type Employee struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	OrganisationID uint          `gorm:"not null;index" json:"organisation_id"`
	Organisation   *Organisation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Email     string `gorm:"size:150" json:"email"`
	Phone     string `gorm:"size:30" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Filled from employee_teams by the repository.
	Teams []TeamSummary `gorm:"-" json:"teams"`
}

// EmployeeSummary is the employee as nested under a team.
type EmployeeSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}
