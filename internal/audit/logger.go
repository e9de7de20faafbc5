package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/hrms/internal/models"
)

type Event struct {
	OrganisationID uint
	UserID         *uint
	Action         string
	Meta           any
}

// Recorder writes audit events on a best-effort basis. Implementations
// never report failure to the caller.
type Recorder interface {
	Record(ctx context.Context, ev Event)
}

type Store interface {
	AppendLog(ctx context.Context, l *models.Log) error
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	meta := datatypes.JSON("{}")
	if ev.Meta != nil {
		b, err := json.Marshal(ev.Meta)
		if err != nil {
			return fmt.Errorf("audit meta: %w", err)
		}
		meta = b
	}

	return l.store.AppendLog(ctx, &models.Log{
		OrganisationID: ev.OrganisationID,
		UserID:         ev.UserID,
		Action:         ev.Action,
		Meta:           meta,
	})
}

// Record writes ev in the caller's goroutine and swallows the error.
func (l *Logger) Record(ctx context.Context, ev Event) {
	if err := l.Log(ctx, ev); err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("action", ev.Action).
			Uint("organisation_id", ev.OrganisationID).
			Msg("audit write failed")
	}
}
