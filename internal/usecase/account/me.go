package account

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/hrms/internal/domain/hr"
	"github.com/BruksfildServices01/hrms/internal/httperr"
	"github.com/BruksfildServices01/hrms/internal/models"
)

type GetMe struct {
	repo hr.Repository
}

func NewGetMe(repo hr.Repository) *GetMe {
	return &GetMe{repo: repo}
}

func (uc *GetMe) Execute(ctx context.Context, organisationID, userID uint) (*models.User, error) {
	user, err := uc.repo.GetUser(ctx, organisationID, userID)
	if errors.Is(err, hr.ErrNotFound) {
		return nil, httperr.ErrNotFound("user_not_found", "User not found.")
	}
	return user, err
}
