package team

import (
	"context"

	"github.com/BruksfildServices01/hrms/internal/audit"
	"github.com/BruksfildServices01/hrms/internal/domain/hr"
)

type DeleteTeam struct {
	repo   hr.Repository
	audit  audit.Recorder
	strict bool
}

func NewDeleteTeam(repo hr.Repository, audit audit.Recorder, strict bool) *DeleteTeam {
	return &DeleteTeam{repo: repo, audit: audit, strict: strict}
}

func (uc *DeleteTeam) Execute(
	ctx context.Context,
	organisationID uint,
	userID uint,
	teamID uint,
) error {

	deleted, err := uc.repo.DeleteTeam(ctx, organisationID, teamID)
	if err != nil {
		return err
	}
	if !deleted {
		if uc.strict {
			return errTeamNotFound
		}
		return nil
	}

	uc.audit.Record(ctx, audit.Event{
		OrganisationID: organisationID,
		UserID:         &userID,
		Action:         "delete_team",
		Meta:           map[string]any{"teamId": teamID},
	})
	return nil
}
