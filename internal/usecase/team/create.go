package team

import (
	"context"

	"github.com/BruksfildServices01/hrms/internal/audit"
	"github.com/BruksfildServices01/hrms/internal/domain/hr"
	"github.com/BruksfildServices01/hrms/internal/models"
)

type CreateTeam struct {
	repo  hr.Repository
	audit audit.Recorder
}

func NewCreateTeam(repo hr.Repository, audit audit.Recorder) *CreateTeam {
	return &CreateTeam{repo: repo, audit: audit}
}

func (uc *CreateTeam) Execute(
	ctx context.Context,
	organisationID uint,
	userID uint,
	in Input,
) (*models.Team, error) {

	if err := in.normalize(); err != nil {
		return nil, err
	}

	t := &models.Team{
		OrganisationID: organisationID,
		Name:           in.Name,
		Description:    in.Description,
	}
	if err := uc.repo.CreateTeam(ctx, t); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		OrganisationID: organisationID,
		UserID:         &userID,
		Action:         "create_team",
		Meta:           map[string]any{"teamId": t.ID, "name": t.Name},
	})

	return t, nil
}
