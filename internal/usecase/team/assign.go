package team

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/hrms/internal/audit"
	"github.com/BruksfildServices01/hrms/internal/domain/hr"
)

type AssignEmployee struct {
	repo  hr.Repository
	audit audit.Recorder
}

func NewAssignEmployee(repo hr.Repository, audit audit.Recorder) *AssignEmployee {
	return &AssignEmployee{repo: repo, audit: audit}
}

// Execute adds the employee to the team. Assigning an existing pair is a
// no-op success; AddMember still ignores a concurrent duplicate insert.
func (uc *AssignEmployee) Execute(
	ctx context.Context,
	organisationID uint,
	userID uint,
	employeeID uint,
	teamID uint,
) error {

	if err := ensureBothInOrganisation(ctx, uc.repo, organisationID, employeeID, teamID); err != nil {
		return err
	}

	exists, err := uc.repo.HasMember(ctx, employeeID, teamID)
	if err != nil || exists {
		return err
	}

	created, err := uc.repo.AddMember(ctx, employeeID, teamID)
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	uc.audit.Record(ctx, audit.Event{
		OrganisationID: organisationID,
		UserID:         &userID,
		Action:         "assign_employee",
		Meta:           map[string]any{"employeeId": employeeID, "teamId": teamID},
	})
	return nil
}

type UnassignEmployee struct {
	repo  hr.Repository
	audit audit.Recorder
}

func NewUnassignEmployee(repo hr.Repository, audit audit.Recorder) *UnassignEmployee {
	return &UnassignEmployee{repo: repo, audit: audit}
}

func (uc *UnassignEmployee) Execute(
	ctx context.Context,
	organisationID uint,
	userID uint,
	employeeID uint,
	teamID uint,
) error {

	if err := ensureBothInOrganisation(ctx, uc.repo, organisationID, employeeID, teamID); err != nil {
		return err
	}

	exists, err := uc.repo.HasMember(ctx, employeeID, teamID)
	if err != nil || !exists {
		return err
	}

	removed, err := uc.repo.RemoveMember(ctx, employeeID, teamID)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}

	uc.audit.Record(ctx, audit.Event{
		OrganisationID: organisationID,
		UserID:         &userID,
		Action:         "unassign_employee",
		Meta:           map[string]any{"employeeId": employeeID, "teamId": teamID},
	})
	return nil
}

func ensureBothInOrganisation(
	ctx context.Context,
	repo hr.Repository,
	organisationID uint,
	employeeID uint,
	teamID uint,
) error {

	if _, err := repo.GetEmployee(ctx, organisationID, employeeID); err != nil {
		if errors.Is(err, hr.ErrNotFound) {
			return errMemberNotFound
		}
		return err
	}
	if _, err := repo.GetTeam(ctx, organisationID, teamID); err != nil {
		if errors.Is(err, hr.ErrNotFound) {
			return errMemberNotFound
		}
		return err
	}
	return nil
}
