package account

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hrms/internal/audit"
	"github.com/BruksfildServices01/hrms/internal/auth"
	"github.com/BruksfildServices01/hrms/internal/dbtest"
	"github.com/BruksfildServices01/hrms/internal/domain/hr"
	"github.com/BruksfildServices01/hrms/internal/httperr"
	"github.com/BruksfildServices01/hrms/internal/infra/repository"
	"github.com/BruksfildServices01/hrms/internal/models"
)

type fixture struct {
	db       *gorm.DB
	repo     *repository.HRGormRepository
	tokens   *auth.TokenIssuer
	register *Register
	login    *Login
	me       *GetMe
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)
	repo := repository.NewHRGormRepository(db)
	hasher := auth.NewPasswordHasher(auth.MinCost)
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	recorder := audit.New(repo)

	return &fixture{
		db:       db,
		repo:     repo,
		tokens:   tokens,
		register: NewRegister(repo, hasher, tokens, recorder),
		login:    NewLogin(repo, hasher, tokens, recorder),
		me:       NewGetMe(repo),
	}
}

func (f *fixture) actions(t *testing.T, orgID uint) []string {
	t.Helper()
	entries, err := f.repo.ListLogs(context.Background(), orgID, hr.LogFilter{})
	require.NoError(t, err)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Action
	}
	return out
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s, err := f.register.Execute(ctx, RegisterInput{
		OrgName: " Acme ", AdminName: "Alice", Email: "A@Acme.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, "Acme", s.Organisation.Name)
	require.Equal(t, "a@acme.com", s.User.Email)
	require.NotEqual(t, "secret1", s.User.PasswordHash)

	claims, err := f.tokens.Verify(s.Token)
	require.NoError(t, err)
	require.Equal(t, s.User.ID, claims.UserID)
	require.Equal(t, s.Organisation.ID, claims.OrgID)

	require.Equal(t, []string{"organisation_created"}, f.actions(t, s.Organisation.ID))
}

func TestRegister_validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		in   RegisterInput
		code string
	}{
		{name: "org", in: RegisterInput{AdminName: "A", Email: "a@a.com", Password: "secret1"}, code: "org_name_required"},
		{name: "admin", in: RegisterInput{OrgName: "A", Email: "a@a.com", Password: "secret1"}, code: "admin_name_required"},
		{name: "email", in: RegisterInput{OrgName: "A", AdminName: "A", Email: "nope", Password: "secret1"}, code: "invalid_email"},
		{name: "password", in: RegisterInput{OrgName: "A", AdminName: "A", Email: "a@a.com", Password: "123"}, code: "password_too_short"},
		{name: "long password", in: RegisterInput{OrgName: "A", AdminName: "A", Email: "a@a.com", Password: strings.Repeat("x", 80)}, code: "password_too_long"},
		{name: "multibyte password", in: RegisterInput{OrgName: "A", AdminName: "A", Email: "a@a.com", Password: strings.Repeat("é", 40)}, code: "password_too_long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.register.Execute(context.Background(), tt.in)
			require.Equal(t, httperr.KindValidation, httperr.KindOf(err))
			require.True(t, httperr.IsBusiness(err, tt.code))
		})
	}

	var orgs int64
	require.NoError(t, f.db.Model(&models.Organisation{}).Count(&orgs).Error)
	require.Zero(t, orgs)
}

func TestRegister_duplicateEmailLeavesNoOrganisation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterInput{OrgName: "Acme", AdminName: "A", Email: "a@acme.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = f.register.Execute(ctx, RegisterInput{OrgName: "Other", AdminName: "B", Email: "A@ACME.com", Password: "secret2"})
	require.Equal(t, httperr.KindConflict, httperr.KindOf(err))

	var orgs, users int64
	require.NoError(t, f.db.Model(&models.Organisation{}).Count(&orgs).Error)
	require.NoError(t, f.db.Model(&models.User{}).Count(&users).Error)
	require.EqualValues(t, 1, orgs)
	require.EqualValues(t, 1, users)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reg, err := f.register.Execute(ctx, RegisterInput{OrgName: "Acme", AdminName: "A", Email: "a@acme.com", Password: "secret1"})
	require.NoError(t, err)

	s, err := f.login.Execute(ctx, " a@ACME.com", "secret1")
	require.NoError(t, err)

	claims, err := f.tokens.Verify(s.Token)
	require.NoError(t, err)
	require.Equal(t, reg.User.ID, claims.UserID)
	require.Equal(t, reg.Organisation.ID, claims.OrgID)

	require.Equal(t, []string{"user_login", "organisation_created"}, f.actions(t, reg.Organisation.ID))
}

func TestLogin_failuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reg, err := f.register.Execute(ctx, RegisterInput{OrgName: "Acme", AdminName: "A", Email: "a@acme.com", Password: "secret1"})
	require.NoError(t, err)

	_, wrongPassword := f.login.Execute(ctx, "a@acme.com", "wrong")
	_, unknownEmail := f.login.Execute(ctx, "ghost@acme.com", "secret1")

	require.Equal(t, httperr.KindAuth, httperr.KindOf(wrongPassword))
	require.Equal(t, wrongPassword, unknownEmail)

	// failed logins are not audited
	require.Equal(t, []string{"organisation_created"}, f.actions(t, reg.Organisation.ID))
}

func TestGetMe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reg, err := f.register.Execute(ctx, RegisterInput{OrgName: "Acme", AdminName: "Alice", Email: "a@acme.com", Password: "secret1"})
	require.NoError(t, err)

	user, err := f.me.Execute(ctx, reg.Organisation.ID, reg.User.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice", user.Name)
	require.Equal(t, "Acme", user.Organisation.Name)

	_, err = f.me.Execute(ctx, reg.Organisation.ID+1, reg.User.ID)
	require.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}
