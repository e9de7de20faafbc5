package employee

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/hrms/internal/domain/hr"
	"github.com/BruksfildServices01/hrms/internal/models"
)

type ListEmployees struct {
	repo hr.Repository
}

func NewListEmployees(repo hr.Repository) *ListEmployees {
	return &ListEmployees{repo: repo}
}

func (uc *ListEmployees) Execute(ctx context.Context, organisationID uint) ([]models.Employee, error) {
	employees, err := uc.repo.ListEmployees(ctx, organisationID)
	if err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	return employees, nil
}

type GetEmployee struct {
	repo hr.Repository
}

func NewGetEmployee(repo hr.Repository) *GetEmployee {
	return &GetEmployee{repo: repo}
}

func (uc *GetEmployee) Execute(ctx context.Context, organisationID, employeeID uint) (*models.Employee, error) {
	e, err := uc.repo.GetEmployee(ctx, organisationID, employeeID)
	if errors.Is(err, hr.ErrNotFound) {
		return nil, errEmployeeNotFound
	}
	return e, err
}
