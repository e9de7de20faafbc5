package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hrms/internal/audit"
	"github.com/BruksfildServices01/hrms/internal/dbtest"
	"github.com/BruksfildServices01/hrms/internal/domain/hr"
	"github.com/BruksfildServices01/hrms/internal/httperr"
	"github.com/BruksfildServices01/hrms/internal/infra/repository"
	"github.com/BruksfildServices01/hrms/internal/models"
)

type recorder struct {
	events []audit.Event
}

func (r *recorder) Record(_ context.Context, ev audit.Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) actions() []string {
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Action
	}
	return out
}

type fixture struct {
	db    *gorm.DB
	repo  *repository.HRGormRepository
	rec   *recorder
	orgA  uint
	orgB  uint
	actor uint
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)
	repo := repository.NewHRGormRepository(db)
	ctx := context.Background()

	a := &models.Organisation{Name: "A"}
	ua := &models.User{Name: "Alice", Email: "a@a.com", PasswordHash: "x"}
	require.NoError(t, repo.CreateOrganisationWithAdmin(ctx, a, ua))
	b := &models.Organisation{Name: "B"}
	require.NoError(t, repo.CreateOrganisationWithAdmin(ctx, b, &models.User{Name: "Bea", Email: "b@b.com", PasswordHash: "x"}))

	return &fixture{db: db, repo: repo, rec: &recorder{}, orgA: a.ID, orgB: b.ID, actor: ua.ID}
}

func (f *fixture) employee(t *testing.T, orgID uint, name string) *models.Employee {
	t.Helper()
	e := &models.Employee{OrganisationID: orgID, FirstName: name}
	require.NoError(t, f.repo.CreateEmployee(context.Background(), e))
	return e
}

func (f *fixture) edges(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&models.EmployeeTeam{}).Count(&n).Error)
	return n
}

func ptr(s string) *string { return &s }

// countingRepo counts edge writes that reach the store.
type countingRepo struct {
	hr.Repository
	adds    int
	removes int
}

func (r *countingRepo) AddMember(ctx context.Context, employeeID, teamID uint) (bool, error) {
	r.adds++
	return r.Repository.AddMember(ctx, employeeID, teamID)
}

func (r *countingRepo) RemoveMember(ctx context.Context, employeeID, teamID uint) (bool, error) {
	r.removes++
	return r.Repository.RemoveMember(ctx, employeeID, teamID)
}

func TestCreateTeam(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	team, err := NewCreateTeam(f.repo, f.rec).Execute(ctx, f.orgA, f.actor, Input{Name: " Eng ", Description: "builders"})
	require.NoError(t, err)
	require.Equal(t, "Eng", team.Name)
	require.Equal(t, f.orgA, team.OrganisationID)
	require.NotNil(t, team.Employees)
	require.Equal(t, map[string]any{"teamId": team.ID, "name": "Eng"}, f.rec.events[0].Meta)

	_, err = NewCreateTeam(f.repo, f.rec).Execute(ctx, f.orgA, f.actor, Input{Name: ""})
	require.True(t, httperr.IsBusiness(err, "team_name_required"))

	teams, err := NewListTeams(f.repo).Execute(ctx, f.orgA)
	require.NoError(t, err)
	require.Len(t, teams, 1)

	teams, err = NewListTeams(f.repo).Execute(ctx, f.orgB)
	require.NoError(t, err)
	require.Empty(t, teams)
}

func TestAssignEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bob := f.employee(t, f.orgA, "Bob")
	team, err := NewCreateTeam(f.repo, f.rec).Execute(ctx, f.orgA, f.actor, Input{Name: "Eng"})
	require.NoError(t, err)

	assign := NewAssignEmployee(f.repo, f.rec)
	require.NoError(t, assign.Execute(ctx, f.orgA, f.actor, bob.ID, team.ID))
	require.NoError(t, assign.Execute(ctx, f.orgA, f.actor, bob.ID, team.ID))

	require.EqualValues(t, 1, f.edges(t))
	require.Equal(t, []string{"create_team", "assign_employee"}, f.rec.actions())
	require.Equal(t, map[string]any{"employeeId": bob.ID, "teamId": team.ID}, f.rec.events[1].Meta)

	teams, err := NewListTeams(f.repo).Execute(ctx, f.orgA)
	require.NoError(t, err)
	require.Len(t, teams[0].Employees, 1)
	require.Equal(t, "Bob", teams[0].Employees[0].FirstName)
}

func TestAssignEmployee_crossTenant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	bobA := f.employee(t, f.orgA, "Bob")
	eveB := f.employee(t, f.orgB, "Eve")
	teamA, err := NewCreateTeam(f.repo, f.rec).Execute(ctx, f.orgA, f.actor, Input{Name: "Eng"})
	require.NoError(t, err)
	teamB, err := NewCreateTeam(f.repo, f.rec).Execute(ctx, f.orgB, f.actor, Input{Name: "Ops"})
	require.NoError(t, err)

	assign := NewAssignEmployee(f.repo, f.rec)
	tests := []struct {
		name       string
		org        uint
		employeeID uint
		teamID     uint
	}{
		{name: "foreign employee", org: f.orgA, employeeID: eveB.ID, teamID: teamA.ID},
		{name: "foreign team", org: f.orgA, employeeID: bobA.ID, teamID: teamB.ID},
		{name: "caller from other org", org: f.orgB, employeeID: bobA.ID, teamID: teamA.ID},
		{name: "missing ids", org: f.orgA, employeeID: 9999, teamID: 9999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := assign.Execute(ctx, tt.org, f.actor, tt.employeeID, tt.teamID)
			require.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
		})
	}
	require.Zero(t, f.edges(t))
}

func TestUnassignEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bob := f.employee(t, f.orgA, "Bob")
	team, err := NewCreateTeam(f.repo, f.rec).Execute(ctx, f.orgA, f.actor, Input{Name: "Eng"})
	require.NoError(t, err)
	require.NoError(t, NewAssignEmployee(f.repo, f.rec).Execute(ctx, f.orgA, f.actor, bob.ID, team.ID))

	unassign := NewUnassignEmployee(f.repo, f.rec)

	err = unassign.Execute(ctx, f.orgB, f.actor, bob.ID, team.ID)
	require.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
	require.EqualValues(t, 1, f.edges(t))

	require.NoError(t, unassign.Execute(ctx, f.orgA, f.actor, bob.ID, team.ID))
	require.NoError(t, unassign.Execute(ctx, f.orgA, f.actor, bob.ID, team.ID))
	require.Zero(t, f.edges(t))
	require.Equal(t, []string{"create_team", "assign_employee", "unassign_employee"}, f.rec.actions())
}

func TestUpdateTeam(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	team, err := NewCreateTeam(f.repo, f.rec).Execute(ctx, f.orgA, f.actor, Input{Name: "Eng"})
	require.NoError(t, err)

	require.NoError(t, NewUpdateTeam(f.repo, f.rec, false).Execute(ctx, f.orgA, f.actor, team.ID, Patch{Description: ptr("platform")}))

	err = NewUpdateTeam(f.repo, f.rec, false).Execute(ctx, f.orgA, f.actor, team.ID, Patch{Name: ptr(" ")})
	require.True(t, httperr.IsBusiness(err, "team_name_required"))

	err = NewUpdateTeam(f.repo, f.rec, false).Execute(ctx, f.orgA, f.actor, team.ID, Patch{})
	require.True(t, httperr.IsBusiness(err, "no_changes"))

	require.NoError(t, NewUpdateTeam(f.repo, f.rec, false).Execute(ctx, f.orgB, f.actor, team.ID, Patch{Name: ptr("Pwned")}))
	err = NewUpdateTeam(f.repo, f.rec, true).Execute(ctx, f.orgB, f.actor, team.ID, Patch{Name: ptr("Pwned")})
	require.Equal(t, httperr.KindNotFound, httperr.KindOf(err))

	got, err := f.repo.GetTeam(ctx, f.orgA, team.ID)
	require.NoError(t, err)
	require.Equal(t, "Eng", got.Name)
	require.Equal(t, "platform", got.Description)
	require.Equal(t, []string{"create_team", "update_team"}, f.rec.actions())
}

func TestDeleteTeam(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bob := f.employee(t, f.orgA, "Bob")
	team, err := NewCreateTeam(f.repo, f.rec).Execute(ctx, f.orgA, f.actor, Input{Name: "Eng"})
	require.NoError(t, err)
	require.NoError(t, NewAssignEmployee(f.repo, f.rec).Execute(ctx, f.orgA, f.actor, bob.ID, team.ID))

	require.NoError(t, NewDeleteTeam(f.repo, f.rec, false).Execute(ctx, f.orgB, f.actor, team.ID))
	err = NewDeleteTeam(f.repo, f.rec, true).Execute(ctx, f.orgB, f.actor, team.ID)
	require.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
	require.EqualValues(t, 1, f.edges(t))

	require.NoError(t, NewDeleteTeam(f.repo, f.rec, false).Execute(ctx, f.orgA, f.actor, team.ID))
	require.Zero(t, f.edges(t))
	require.Equal(t, []string{"create_team", "assign_employee", "delete_team"}, f.rec.actions())
}

func TestMembership_repeatedCallsSkipTheWrite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bob := f.employee(t, f.orgA, "Bob")
	team, err := NewCreateTeam(f.repo, f.rec).Execute(ctx, f.orgA, f.actor, Input{Name: "Eng"})
	require.NoError(t, err)

	repo := &countingRepo{Repository: f.repo}
	assign := NewAssignEmployee(repo, f.rec)
	unassign := NewUnassignEmployee(repo, f.rec)

	require.NoError(t, unassign.Execute(ctx, f.orgA, f.actor, bob.ID, team.ID))
	require.Zero(t, repo.removes)

	for range 3 {
		require.NoError(t, assign.Execute(ctx, f.orgA, f.actor, bob.ID, team.ID))
	}
	require.Equal(t, 1, repo.adds)

	for range 2 {
		require.NoError(t, unassign.Execute(ctx, f.orgA, f.actor, bob.ID, team.ID))
	}
	require.Equal(t, 1, repo.removes)
	require.Equal(t, []string{"create_team", "assign_employee", "unassign_employee"}, f.rec.actions())
}
