package models

import "time"

// EmployeeTeam is one association edge between an employee and a team.
// The composite primary key keeps edges unique.
type EmployeeTeam struct {
	EmployeeID uint      `gorm:"primaryKey;autoIncrement:false" json:"employee_id"`
	Employee   *Employee `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	TeamID     uint      `gorm:"primaryKey;autoIncrement:false;index" json:"team_id"`
	Team       *Team     `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
