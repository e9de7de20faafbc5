package team

import (
	"context"

	"github.com/BruksfildServices01/hrms/internal/domain/hr"
	"github.com/BruksfildServices01/hrms/internal/models"
)

type ListTeams struct {
	repo hr.Repository
}

func NewListTeams(repo hr.Repository) *ListTeams {
	return &ListTeams{repo: repo}
}

func (uc *ListTeams) Execute(ctx context.Context, organisationID uint) ([]models.Team, error) {
	teams, err := uc.repo.ListTeams(ctx, organisationID)
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []models.Team{}
	}
	return teams, nil
}
