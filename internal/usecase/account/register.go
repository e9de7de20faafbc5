package account

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/hrms/internal/audit"
	"github.com/BruksfildServices01/hrms/internal/auth"
	"github.com/BruksfildServices01/hrms/internal/domain/hr"
	"github.com/BruksfildServices01/hrms/internal/httperr"
	"github.com/BruksfildServices01/hrms/internal/models"
	"github.com/BruksfildServices01/hrms/internal/validators"
)

type RegisterInput struct {
	OrgName   string
	AdminName string
	Email     string
	Password  string
}

type Session struct {
	Token        string
	User         *models.User
	Organisation *models.Organisation
}

type Register struct {
	repo   hr.Repository
	hasher *auth.PasswordHasher
	tokens *auth.TokenIssuer
	audit  audit.Recorder
}

func NewRegister(
	repo hr.Repository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenIssuer,
	audit audit.Recorder,
) *Register {
	return &Register{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
	}
}

// Execute creates the organisation and its admin in one transaction.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Session, error) {
	in.OrgName = strings.TrimSpace(in.OrgName)
	in.AdminName = strings.TrimSpace(in.AdminName)
	in.Email = validators.NormalizeEmail(in.Email)

	switch {
	case in.OrgName == "":
		return nil, httperr.ErrValidation("org_name_required", "Organisation name is required.")
	case in.AdminName == "":
		return nil, httperr.ErrValidation("admin_name_required", "Admin name is required.")
	case !validators.IsEmail(in.Email):
		return nil, httperr.ErrValidation("invalid_email", "A valid email is required.")
	case !validators.Satisfies(in.Password, "min=6"):
		return nil, httperr.ErrValidation("password_too_short", "Password must have at least 6 characters.")
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, httperr.ErrValidation("password_too_long", "Password must have at most 72 bytes.")
		}
		return nil, err
	}

	org := &models.Organisation{Name: in.OrgName}
	user := &models.User{
		Name:         in.AdminName,
		Email:        in.Email,
		PasswordHash: hash,
	}

	if err := uc.repo.CreateOrganisationWithAdmin(ctx, org, user); err != nil {
		if errors.Is(err, hr.ErrEmailTaken) {
			return nil, httperr.ErrConflict("email_already_registered", "This email is already registered.")
		}
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		OrganisationID: org.ID,
		UserID:         &user.ID,
		Action:         "organisation_created",
		Meta:           map[string]any{"orgName": org.Name},
	})

	token, err := uc.tokens.Issue(user.ID, org.ID)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, User: user, Organisation: org}, nil
}
