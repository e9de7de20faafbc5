package team

import (
	"strings"

	"github.com/BruksfildServices01/hrms/internal/httperr"
	"github.com/BruksfildServices01/hrms/internal/validators"
)

type Input struct {
	Name        string
	Description string
}

type Patch struct {
	Name        *string
	Description *string
}

func (in *Input) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" {
		return errNameRequired
	}
	return nil
}

func (p Patch) changes() (map[string]any, error) {
	changes := map[string]any{}
	if v := validators.TrimPtr(p.Name); v != nil {
		if *v == "" {
			return nil, errNameRequired
		}
		changes["name"] = *v
	}
	if v := validators.TrimPtr(p.Description); v != nil {
		changes["description"] = *v
	}
	if len(changes) == 0 {
		return nil, httperr.ErrValidation("no_changes", "Nothing to update.")
	}
	return changes, nil
}

var (
	errNameRequired = httperr.ErrValidation("team_name_required", "Team name is required.")
	errTeamNotFound = httperr.ErrNotFound("team_not_found", "Team not found.")

	// one message for both sides so the caller learns nothing about which id exists
	errMemberNotFound = httperr.ErrNotFound("employee_or_team_not_found", "Employee or Team not found in this organisation.")
)
