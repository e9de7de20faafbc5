package employee

import (
	"context"

	"github.com/BruksfildServices01/hrms/internal/audit"
	"github.com/BruksfildServices01/hrms/internal/domain/hr"
	"github.com/BruksfildServices01/hrms/internal/models"
)

type CreateEmployee struct {
	repo  hr.Repository
	audit audit.Recorder
}

func NewCreateEmployee(repo hr.Repository, audit audit.Recorder) *CreateEmployee {
	return &CreateEmployee{repo: repo, audit: audit}
}

// Execute stamps the caller's organisation on the new row.
func (uc *CreateEmployee) Execute(
	ctx context.Context,
	organisationID uint,
	userID uint,
	in Input,
) (*models.Employee, error) {

	if err := in.normalize(); err != nil {
		return nil, err
	}

	e := &models.Employee{
		OrganisationID: organisationID,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Phone:          in.Phone,
	}
	if err := uc.repo.CreateEmployee(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		OrganisationID: organisationID,
		UserID:         &userID,
		Action:         "create_employee",
		Meta:           map[string]any{"empId": e.ID, "name": e.FirstName},
	})

	return e, nil
}
