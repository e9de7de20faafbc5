package employee

import (
	"context"

	"github.com/BruksfildServices01/hrms/internal/audit"
	"github.com/BruksfildServices01/hrms/internal/domain/hr"
)

type UpdateEmployee struct {
	repo   hr.Repository
	audit  audit.Recorder
	strict bool
}

// NewUpdateEmployee with strict set reports a missing row as not found;
// otherwise an update that matches nothing still succeeds.
func NewUpdateEmployee(repo hr.Repository, audit audit.Recorder, strict bool) *UpdateEmployee {
	return &UpdateEmployee{repo: repo, audit: audit, strict: strict}
}

func (uc *UpdateEmployee) Execute(
	ctx context.Context,
	organisationID uint,
	userID uint,
	employeeID uint,
	p Patch,
) error {

	changes, err := p.changes()
	if err != nil {
		return err
	}

	matched, err := uc.repo.UpdateEmployee(ctx, organisationID, employeeID, changes)
	if err != nil {
		return err
	}
	if !matched {
		if uc.strict {
			return errEmployeeNotFound
		}
		return nil
	}

	uc.audit.Record(ctx, audit.Event{
		OrganisationID: organisationID,
		UserID:         &userID,
		Action:         "update_employee",
		Meta:           map[string]any{"empId": employeeID},
	})
	return nil
}
