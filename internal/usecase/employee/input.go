package employee

import (
	"strings"

	"github.com/BruksfildServices01/hrms/internal/httperr"
	"github.com/BruksfildServices01/hrms/internal/validators"
)

type Input struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Patch holds the fields to change; nil leaves a field untouched.
type Patch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

func (p Patch) changes() (map[string]any, error) {
	changes := map[string]any{}

	if v := validators.TrimPtr(p.FirstName); v != nil {
		if *v == "" {
			return nil, errFirstNameRequired
		}
		changes["first_name"] = *v
	}
	if v := validators.TrimPtr(p.LastName); v != nil {
		changes["last_name"] = *v
	}
	if p.Email != nil {
		email := validators.NormalizeEmail(*p.Email)
		if email != "" && !validators.IsEmail(email) {
			return nil, errInvalidEmail
		}
		changes["email"] = email
	}
	if v := validators.TrimPtr(p.Phone); v != nil {
		changes["phone"] = *v
	}

	if len(changes) == 0 {
		return nil, httperr.ErrValidation("no_changes", "Nothing to update.")
	}
	return changes, nil
}

func (in *Input) normalize() error {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = validators.NormalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.FirstName == "" {
		return errFirstNameRequired
	}
	if in.Email != "" && !validators.IsEmail(in.Email) {
		return errInvalidEmail
	}
	return nil
}

var (
	errFirstNameRequired = httperr.ErrValidation("first_name_required", "First name is required.")
	errInvalidEmail      = httperr.ErrValidation("invalid_email", "Email is not valid.")
	errEmployeeNotFound  = httperr.ErrNotFound("employee_not_found", "Employee not found.")
)
