package employee

import (
	"context"

	"github.com/BruksfildServices01/hrms/internal/audit"
	"github.com/BruksfildServices01/hrms/internal/domain/hr"
)

type DeleteEmployee struct {
	repo   hr.Repository
	audit  audit.Recorder
	strict bool
}

func NewDeleteEmployee(repo hr.Repository, audit audit.Recorder, strict bool) *DeleteEmployee {
	return &DeleteEmployee{repo: repo, audit: audit, strict: strict}
}

func (uc *DeleteEmployee) Execute(
	ctx context.Context,
	organisationID uint,
	userID uint,
	employeeID uint,
) error {

	deleted, err := uc.repo.DeleteEmployee(ctx, organisationID, employeeID)
	if err != nil {
		return err
	}
	if !deleted {
		if uc.strict {
			return errEmployeeNotFound
		}
		return nil
	}

	uc.audit.Record(ctx, audit.Event{
		OrganisationID: organisationID,
		UserID:         &userID,
		Action:         "delete_employee",
		Meta:           map[string]any{"empId": employeeID},
	})
	return nil
}
