package team

import (
	"context"

	"github.com/BruksfildServices01/hrms/internal/audit"
	"github.com/BruksfildServices01/hrms/internal/domain/hr"
)

type UpdateTeam struct {
	repo   hr.Repository
	audit  audit.Recorder
	strict bool
}

func NewUpdateTeam(repo hr.Repository, audit audit.Recorder, strict bool) *UpdateTeam {
	return &UpdateTeam{repo: repo, audit: audit, strict: strict}
}

func (uc *UpdateTeam) Execute(
	ctx context.Context,
	organisationID uint,
	userID uint,
	teamID uint,
	p Patch,
) error {

	changes, err := p.changes()
	if err != nil {
		return err
	}

	matched, err := uc.repo.UpdateTeam(ctx, organisationID, teamID, changes)
	if err != nil {
		return err
	}
	if !matched {
		if uc.strict {
			return errTeamNotFound
		}
		return nil
	}

	uc.audit.Record(ctx, audit.Event{
		OrganisationID: organisationID,
		UserID:         &userID,
		Action:         "update_team",
		Meta:           map[string]any{"teamId": teamID},
	})
	return nil
}
