package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/hrms/internal/domain/hr"
	"github.com/BruksfildServices01/hrms/internal/models"
)

var _ hr.Repository = (*HRGormRepository)(nil)

type HRGormRepository struct {
	db *gorm.DB
}

func NewHRGormRepository(db *gorm.DB) *HRGormRepository {
	return &HRGormRepository{db: db}
}

// --------------------------------------------------
// Accounts
// --------------------------------------------------

func (r *HRGormRepository) CreateOrganisationWithAdmin(
	ctx context.Context,
	org *models.Organisation,
	admin *models.User,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("email = ?", admin.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return hr.ErrEmailTaken
		}

		if err := tx.Create(org).Error; err != nil {
			return err
		}

		admin.OrganisationID = org.ID
		return tx.Create(admin).Error
	})
	if err != nil {
		org.ID = 0
		admin.ID = 0
		return mapUserError(err)
	}
	return nil
}

func (r *HRGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (r *HRGormRepository) GetUser(
	ctx context.Context,
	organisationID uint,
	userID uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Organisation").
		Where("id = ? AND organisation_id = ?", userID, organisationID).
		First(&user).Error; err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// --------------------------------------------------
// Employees
// --------------------------------------------------

func (r *HRGormRepository) ListEmployees(
	ctx context.Context,
	organisationID uint,
) ([]models.Employee, error) {

	var employees []models.Employee
	if err := r.db.WithContext(ctx).
		Where("organisation_id = ?", organisationID).
		Order("id ASC").
		Find(&employees).Error; err != nil {
		return nil, err
	}

	if err := r.attachTeams(ctx, organisationID, employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *HRGormRepository) GetEmployee(
	ctx context.Context,
	organisationID uint,
	employeeID uint,
) (*models.Employee, error) {

	var e models.Employee
	if err := r.db.WithContext(ctx).
		Where("id = ? AND organisation_id = ?", employeeID, organisationID).
		First(&e).Error; err != nil {
		return nil, mapError(err)
	}

	list := []models.Employee{e}
	if err := r.attachTeams(ctx, organisationID, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (r *HRGormRepository) CreateEmployee(
	ctx context.Context,
	e *models.Employee,
) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return err
	}
	e.Teams = []models.TeamSummary{}
	return nil
}

func (r *HRGormRepository) UpdateEmployee(
	ctx context.Context,
	organisationID uint,
	employeeID uint,
	changes map[string]any,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ? AND organisation_id = ?", employeeID, organisationID).
		Updates(changes)
	return res.RowsAffected > 0, res.Error
}

func (r *HRGormRepository) DeleteEmployee(
	ctx context.Context,
	organisationID uint,
	employeeID uint,
) (bool, error) {

	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Employee{}).
			Where("id = ? AND organisation_id = ?", employeeID, organisationID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}

		if err := tx.Where("employee_id = ?", employeeID).
			Delete(&models.EmployeeTeam{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ? AND organisation_id = ?", employeeID, organisationID).
			Delete(&models.Employee{})
		deleted = res.RowsAffected > 0
		return res.Error
	})
	return deleted, err
}

type teamEdge struct {
	EmployeeID uint
	models.TeamSummary
}

func (r *HRGormRepository) attachTeams(
	ctx context.Context,
	organisationID uint,
	employees []models.Employee,
) error {

	if len(employees) == 0 {
		return nil
	}

	ids := make([]uint, len(employees))
	for i := range employees {
		ids[i] = employees[i].ID
		employees[i].Teams = []models.TeamSummary{}
	}

	var edges []teamEdge
	if err := r.db.WithContext(ctx).
		Table("teams").
		Select("employee_teams.employee_id, teams.id, teams.name, teams.description").
		Joins("JOIN employee_teams ON employee_teams.team_id = teams.id").
		Where("employee_teams.employee_id IN ? AND teams.organisation_id = ?", ids, organisationID).
		Order("teams.id ASC").
		Scan(&edges).Error; err != nil {
		return err
	}

	byEmployee := make(map[uint]int, len(employees))
	for i := range employees {
		byEmployee[employees[i].ID] = i
	}
	for _, edge := range edges {
		if i, ok := byEmployee[edge.EmployeeID]; ok {
			employees[i].Teams = append(employees[i].Teams, edge.TeamSummary)
		}
	}
	return nil
}

// --------------------------------------------------
// Teams
// --------------------------------------------------

func (r *HRGormRepository) ListTeams(
	ctx context.Context,
	organisationID uint,
) ([]models.Team, error) {

	var teams []models.Team
	if err := r.db.WithContext(ctx).
		Where("organisation_id = ?", organisationID).
		Order("id ASC").
		Find(&teams).Error; err != nil {
		return nil, err
	}

	if err := r.attachEmployees(ctx, organisationID, teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *HRGormRepository) GetTeam(
	ctx context.Context,
	organisationID uint,
	teamID uint,
) (*models.Team, error) {

	var t models.Team
	if err := r.db.WithContext(ctx).
		Where("id = ? AND organisation_id = ?", teamID, organisationID).
		First(&t).Error; err != nil {
		return nil, mapError(err)
	}

	list := []models.Team{t}
	if err := r.attachEmployees(ctx, organisationID, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (r *HRGormRepository) CreateTeam(
	ctx context.Context,
	t *models.Team,
) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return err
	}
	t.Employees = []models.EmployeeSummary{}
	return nil
}

func (r *HRGormRepository) UpdateTeam(
	ctx context.Context,
	organisationID uint,
	teamID uint,
	changes map[string]any,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Team{}).
		Where("id = ? AND organisation_id = ?", teamID, organisationID).
		Updates(changes)
	return res.RowsAffected > 0, res.Error
}

func (r *HRGormRepository) DeleteTeam(
	ctx context.Context,
	organisationID uint,
	teamID uint,
) (bool, error) {

	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Team{}).
			Where("id = ? AND organisation_id = ?", teamID, organisationID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}

		if err := tx.Where("team_id = ?", teamID).
			Delete(&models.EmployeeTeam{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ? AND organisation_id = ?", teamID, organisationID).
			Delete(&models.Team{})
		deleted = res.RowsAffected > 0
		return res.Error
	})
	return deleted, err
}

type memberEdge struct {
	TeamID uint
	models.EmployeeSummary
}

func (r *HRGormRepository) attachEmployees(
	ctx context.Context,
	organisationID uint,
	teams []models.Team,
) error {

	if len(teams) == 0 {
		return nil
	}

	ids := make([]uint, len(teams))
	for i := range teams {
		ids[i] = teams[i].ID
		teams[i].Employees = []models.EmployeeSummary{}
	}

	var edges []memberEdge
	if err := r.db.WithContext(ctx).
		Table("employees").
		Select("employee_teams.team_id, employees.id, employees.first_name, employees.last_name, employees.email, employees.phone").
		Joins("JOIN employee_teams ON employee_teams.employee_id = employees.id").
		Where("employee_teams.team_id IN ? AND employees.organisation_id = ?", ids, organisationID).
		Order("employees.id ASC").
		Scan(&edges).Error; err != nil {
		return err
	}

	byTeam := make(map[uint]int, len(teams))
	for i := range teams {
		byTeam[teams[i].ID] = i
	}
	for _, edge := range edges {
		if i, ok := byTeam[edge.TeamID]; ok {
			teams[i].Employees = append(teams[i].Employees, edge.EmployeeSummary)
		}
	}
	return nil
}

// --------------------------------------------------
// Association edges
// --------------------------------------------------

func (r *HRGormRepository) AddMember(
	ctx context.Context,
	employeeID uint,
	teamID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.EmployeeTeam{EmployeeID: employeeID, TeamID: teamID})
	return res.RowsAffected > 0, res.Error
}

func (r *HRGormRepository) HasMember(
	ctx context.Context,
	employeeID uint,
	teamID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.EmployeeTeam{}).
		Where("employee_id = ? AND team_id = ?", employeeID, teamID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *HRGormRepository) RemoveMember(
	ctx context.Context,
	employeeID uint,
	teamID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("employee_id = ? AND team_id = ?", employeeID, teamID).
		Delete(&models.EmployeeTeam{})
	return res.RowsAffected > 0, res.Error
}

// --------------------------------------------------
// Audit log
// --------------------------------------------------

func (r *HRGormRepository) AppendLog(
	ctx context.Context,
	l *models.Log,
) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *HRGormRepository) ListLogs(
	ctx context.Context,
	organisationID uint,
	filter hr.LogFilter,
) ([]models.LogEntry, error) {

	q := r.db.WithContext(ctx).
		Table("logs").
		Select("logs.*, users.name AS actor_name").
		Joins("LEFT JOIN users ON users.id = logs.user_id").
		Where("logs.organisation_id = ?", organisationID)

	if filter.Action != "" {
		q = q.Where("logs.action = ?", filter.Action)
	}
	if !filter.From.IsZero() {
		q = q.Where("logs.created_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("logs.created_at < ?", filter.To)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	entries := []models.LogEntry{}
	if err := q.
		Order("logs.created_at DESC").
		Order("logs.id DESC").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *HRGormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
