package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hrms/internal/httperr"
	"github.com/BruksfildServices01/hrms/internal/httpresp"
	"github.com/BruksfildServices01/hrms/internal/middleware"
	"github.com/BruksfildServices01/hrms/internal/usecase/auditlog"
)

type AuditLogsHandler struct {
	list *auditlog.ListLogs
}

func NewAuditLogsHandler(list *auditlog.ListLogs) *AuditLogsHandler {
	return &AuditLogsHandler{list: list}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	_, organisationID := middleware.Caller(c)

	q := auditlog.Query{
		Action: c.Query("action"),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}
	if s := c.Query("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit <= 0 {
			httperr.BadRequest(c, "invalid_limit", "limit must be between 1 and 500.")
			return
		}
		q.Limit = limit
	}

	logs, err := h.list.Execute(c.Request.Context(), organisationID, q)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, logs)
}
