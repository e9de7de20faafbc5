package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Respond(c, err)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "validation", err: ErrValidation("invalid_request", "bad"), status: http.StatusBadRequest, code: "invalid_request"},
		{name: "auth", err: ErrAuth("invalid_credentials", "no"), status: http.StatusUnauthorized, code: "invalid_credentials"},
		{name: "not found", err: ErrNotFound("team_not_found", "gone"), status: http.StatusNotFound, code: "team_not_found"},
		{name: "conflict", err: ErrConflict("email_taken", "dup"), status: http.StatusConflict, code: "email_taken"},
		{name: "wrapped", err: fmt.Errorf("ctx: %w", ErrNotFound("x", "y")), status: http.StatusNotFound, code: "x"},
		{name: "unclassified", err: errors.New("pq: relation \"secret_table\" does not exist"), status: http.StatusInternalServerError, code: "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := respond(t, tt.err)
			require.Equal(t, tt.status, status)
			require.Equal(t, tt.code, body.Code)
			require.NotContains(t, body.Message, "secret_table")
		})
	}
}

func TestKindOfAndIsBusiness(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ErrConflict("email_taken", "dup"))

	require.Equal(t, KindConflict, KindOf(err))
	require.True(t, IsBusiness(err, "email_taken"))
	require.False(t, IsBusiness(err, "other"))
	require.Zero(t, KindOf(errors.New("plain")))
}
