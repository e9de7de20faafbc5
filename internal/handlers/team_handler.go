package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hrms/internal/httperr"
	"github.com/BruksfildServices01/hrms/internal/httpresp"
	"github.com/BruksfildServices01/hrms/internal/middleware"
	"github.com/BruksfildServices01/hrms/internal/usecase/team"
)

type TeamHandler struct {
	list     *team.ListTeams
	create   *team.CreateTeam
	update   *team.UpdateTeam
	remove   *team.DeleteTeam
	assign   *team.AssignEmployee
	unassign *team.UnassignEmployee
}

func NewTeamHandler(
	list *team.ListTeams,
	create *team.CreateTeam,
	update *team.UpdateTeam,
	remove *team.DeleteTeam,
	assign *team.AssignEmployee,
	unassign *team.UnassignEmployee,
) *TeamHandler {
	return &TeamHandler{
		list:     list,
		create:   create,
		update:   update,
		remove:   remove,
		assign:   assign,
		unassign: unassign,
	}
}

// --------- Requests ---------

type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type MembershipRequest struct {
	EmployeeID ID `json:"employeeId" binding:"required"`
	TeamID     ID `json:"teamId" binding:"required"`
}

// --------- Handlers ---------

func (h *TeamHandler) List(c *gin.Context) {
	_, organisationID := middleware.Caller(c)

	teams, err := h.list.Execute(c.Request.Context(), organisationID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, teams)
}

func (h *TeamHandler) Create(c *gin.Context) {
	userID, organisationID := middleware.Caller(c)

	var req CreateTeamRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err)
		return
	}

	t, err := h.create.Execute(c.Request.Context(), organisationID, userID, team.Input{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, t)
}

func (h *TeamHandler) Update(c *gin.Context) {
	userID, organisationID := middleware.Caller(c)

	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateTeamRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.update.Execute(c.Request.Context(), organisationID, userID, id, team.Patch{
		Name:        req.Name,
		Description: req.Description,
	}); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Updated")
}

func (h *TeamHandler) Delete(c *gin.Context) {
	userID, organisationID := middleware.Caller(c)

	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), organisationID, userID, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Deleted")
}

func (h *TeamHandler) Assign(c *gin.Context) {
	userID, organisationID := middleware.Caller(c)

	var req MembershipRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.assign.Execute(c.Request.Context(), organisationID, userID, uint(req.EmployeeID), uint(req.TeamID)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Assigned successfully")
}

func (h *TeamHandler) Unassign(c *gin.Context) {
	userID, organisationID := middleware.Caller(c)

	var req MembershipRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.unassign.Execute(c.Request.Context(), organisationID, userID, uint(req.EmployeeID), uint(req.TeamID)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Unassigned successfully")
}
