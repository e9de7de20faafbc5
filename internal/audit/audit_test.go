package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/hrms/internal/models"
)

type memStore struct {
	mu   sync.Mutex
	logs []models.Log
	err  error
}

func (s *memStore) AppendLog(_ context.Context, l *models.Log) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.logs = append(s.logs, *l)
	return nil
}

func (s *memStore) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.logs))
	for i, l := range s.logs {
		out[i] = l.Action
	}
	return out
}

func TestLogger_Log(t *testing.T) {
	store := &memStore{}
	uid := uint(4)

	err := New(store).Log(context.Background(), Event{
		OrganisationID: 2,
		UserID:         &uid,
		Action:         "create_team",
		Meta:           map[string]any{"teamId": 9, "name": "Eng"},
	})
	require.NoError(t, err)
	require.Len(t, store.logs, 1)

	l := store.logs[0]
	require.EqualValues(t, 2, l.OrganisationID)
	require.Equal(t, &uid, l.UserID)
	require.JSONEq(t, `{"teamId":9,"name":"Eng"}`, string(l.Meta))
}

func TestLogger_Log_nilMeta(t *testing.T) {
	store := &memStore{}
	require.NoError(t, New(store).Log(context.Background(), Event{OrganisationID: 1, Action: "user_login"}))
	require.JSONEq(t, `{}`, string(store.logs[0].Meta))
}

func TestLogger_Log_unmarshalableMeta(t *testing.T) {
	store := &memStore{}
	err := New(store).Log(context.Background(), Event{OrganisationID: 1, Action: "x", Meta: make(chan int)})
	require.Error(t, err)
	require.Empty(t, store.logs)
}

func TestLogger_Record_swallowsStoreErrors(t *testing.T) {
	store := &memStore{err: errors.New("disk on fire")}

	require.NotPanics(t, func() {
		New(store).Record(context.Background(), Event{OrganisationID: 1, Action: "user_login"})
	})
	require.Empty(t, store.logs)
}

func TestDispatcher_drainsOnClose(t *testing.T) {
	store := &memStore{}
	d := NewDispatcher(New(store), zerolog.Nop())

	for _, a := range []string{"a", "b", "c"} {
		d.Record(context.Background(), Event{OrganisationID: 1, Action: a})
	}
	d.Close()

	require.Equal(t, []string{"a", "b", "c"}, store.actions())
}

func TestDispatcher_recordAfterCloseIsDropped(t *testing.T) {
	store := &memStore{}
	d := NewDispatcher(New(store), zerolog.Nop())
	d.Close()
	d.Close()

	require.NotPanics(t, func() {
		d.Record(context.Background(), Event{OrganisationID: 1, Action: "late"})
	})
	require.Empty(t, store.actions())
}
