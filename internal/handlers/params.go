package handlers

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hrms/internal/httperr"
)

// ID accepts a JSON number or a numeric string; form selects post ids as
// strings.
type ID uint

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	v, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", b)
	}
	*id = ID(v)
	return nil
}

func pathID(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || v == 0 {
		return 0, httperr.ErrValidation("invalid_id", "Invalid id.")
	}
	return uint(v), nil
}

func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return httperr.ErrValidation("invalid_request", "Invalid request body.")
	}
	return nil
}
