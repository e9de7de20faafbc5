package auditlog

import (
	"context"
	"time"

	"github.com/BruksfildServices01/hrms/internal/domain/hr"
	"github.com/BruksfildServices01/hrms/internal/httperr"
	"github.com/BruksfildServices01/hrms/internal/models"
)

const (
	SystemActor = "System"
	MaxLimit    = 500
)

type Query struct {
	Action string
	From   string // YYYY-MM-DD, inclusive
	To     string // YYYY-MM-DD, inclusive
	Limit  int
}

type ListLogs struct {
	repo hr.Repository
}

func NewListLogs(repo hr.Repository) *ListLogs {
	return &ListLogs{repo: repo}
}

// Execute returns the organisation's audit trail, newest first.
func (uc *ListLogs) Execute(ctx context.Context, organisationID uint, q Query) ([]models.LogEntry, error) {
	filter := hr.LogFilter{Action: q.Action}

	if q.From != "" {
		from, err := time.Parse(time.DateOnly, q.From)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_from", "from must be YYYY-MM-DD.")
		}
		filter.From = from
	}
	if q.To != "" {
		to, err := time.Parse(time.DateOnly, q.To)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_to", "to must be YYYY-MM-DD.")
		}
		filter.To = to.Add(24 * time.Hour)
	}
	if q.Limit < 0 || q.Limit > MaxLimit {
		return nil, httperr.ErrValidation("invalid_limit", "limit must be between 1 and 500.")
	}
	filter.Limit = q.Limit

	entries, err := uc.repo.ListLogs(ctx, organisationID, filter)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Actor = SystemActor
		if entries[i].ActorName != nil {
			entries[i].Actor = *entries[i].ActorName
		}
	}
	return entries, nil
}
