package models

import "time"

type Team struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	OrganisationID uint          `gorm:"not null;index" json:"organisation_id"`
	Organisation   *Organisation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string `gorm:"size:150;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Filled from employee_teams by the repository.
	Employees []EmployeeSummary `gorm:"-" json:"employees"`
}

// TeamSummary is the team as nested under an employee.
type TeamSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
