package hr

import (
	"context"
	"time"

	"github.com/BruksfildServices01/hrms/internal/models"
)

// Every method except the account lookups takes the caller's organisation
// id and applies it as a query predicate. Rows owned by another
// organisation behave exactly like rows that do not exist.
type Repository interface {
	// -------- Accounts --------
	CreateOrganisationWithAdmin(
		ctx context.Context,
		org *models.Organisation,
		admin *models.User,
	) error

	FindUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	GetUser(
		ctx context.Context,
		organisationID uint,
		userID uint,
	) (*models.User, error)

	// -------- Employees --------
	ListEmployees(
		ctx context.Context,
		organisationID uint,
	) ([]models.Employee, error)

	GetEmployee(
		ctx context.Context,
		organisationID uint,
		employeeID uint,
	) (*models.Employee, error)

	CreateEmployee(
		ctx context.Context,
		e *models.Employee,
	) error

	// UpdateEmployee reports whether a row matched.
	UpdateEmployee(
		ctx context.Context,
		organisationID uint,
		employeeID uint,
		changes map[string]any,
	) (bool, error)

	// DeleteEmployee removes the employee and its association edges.
	DeleteEmployee(
		ctx context.Context,
		organisationID uint,
		employeeID uint,
	) (bool, error)

	// -------- Teams --------
	ListTeams(
		ctx context.Context,
		organisationID uint,
	) ([]models.Team, error)

	GetTeam(
		ctx context.Context,
		organisationID uint,
		teamID uint,
	) (*models.Team, error)

	CreateTeam(
		ctx context.Context,
		t *models.Team,
	) error

	UpdateTeam(
		ctx context.Context,
		organisationID uint,
		teamID uint,
		changes map[string]any,
	) (bool, error)

	DeleteTeam(
		ctx context.Context,
		organisationID uint,
		teamID uint,
	) (bool, error)

	// -------- Association edges --------

	// AddMember creates the edge unless it already exists and reports
	// whether a new edge was written.
	AddMember(
		ctx context.Context,
		employeeID uint,
		teamID uint,
	) (bool, error)

	HasMember(
		ctx context.Context,
		employeeID uint,
		teamID uint,
	) (bool, error)

	RemoveMember(
		ctx context.Context,
		employeeID uint,
		teamID uint,
	) (bool, error)

	// -------- Audit log --------
	AppendLog(
		ctx context.Context,
		l *models.Log,
	) error

	ListLogs(
		ctx context.Context,
		organisationID uint,
		filter LogFilter,
	) ([]models.LogEntry, error)

	Ping(ctx context.Context) error
}

// LogFilter narrows ListLogs. Zero values disable each condition.
type LogFilter struct {
	Action string
	From   time.Time
	To     time.Time
	Limit  int
}
