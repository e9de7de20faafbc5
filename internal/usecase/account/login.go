package account

import (
	"context"
	"errors"
	"sync"

	"github.com/BruksfildServices01/hrms/internal/audit"
	"github.com/BruksfildServices01/hrms/internal/auth"
	"github.com/BruksfildServices01/hrms/internal/domain/hr"
	"github.com/BruksfildServices01/hrms/internal/httperr"
	"github.com/BruksfildServices01/hrms/internal/validators"
)

var errInvalidCredentials = httperr.ErrAuth("invalid_credentials", "Invalid credentials.")

type Login struct {
	repo   hr.Repository
	hasher *auth.PasswordHasher
	tokens *auth.TokenIssuer
	audit  audit.Recorder

	dummyOnce sync.Once
	dummyHash string
}

func NewLogin(
	repo hr.Repository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenIssuer,
	audit audit.Recorder,
) *Login {
	return &Login{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
	}
}

// Execute fails identically for an unknown email and a wrong password.
func (uc *Login) Execute(ctx context.Context, email, password string) (*Session, error) {
	user, err := uc.repo.FindUserByEmail(ctx, validators.NormalizeEmail(email))
	if errors.Is(err, hr.ErrNotFound) {
		// burn a comparison so unknown emails cost the same as wrong passwords
		uc.hasher.Matches(uc.dummy(), password)
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !uc.hasher.Matches(user.PasswordHash, password) {
		return nil, errInvalidCredentials
	}

	token, err := uc.tokens.Issue(user.ID, user.OrganisationID)
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		OrganisationID: user.OrganisationID,
		UserID:         &user.ID,
		Action:         "user_login",
	})

	return &Session{Token: token, User: user}, nil
}

func (uc *Login) dummy() string {
	uc.dummyOnce.Do(func() {
		uc.dummyHash, _ = uc.hasher.Hash("not-a-real-password")
	})
	return uc.dummyHash
}
