package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hrms/internal/httperr"
	"github.com/BruksfildServices01/hrms/internal/httpresp"
	"github.com/BruksfildServices01/hrms/internal/middleware"
	"github.com/BruksfildServices01/hrms/internal/usecase/employee"
)

type EmployeeHandler struct {
	list   *employee.ListEmployees
	get    *employee.GetEmployee
	create *employee.CreateEmployee
	update *employee.UpdateEmployee
	remove *employee.DeleteEmployee
}

func NewEmployeeHandler(
	list *employee.ListEmployees,
	get *employee.GetEmployee,
	create *employee.CreateEmployee,
	update *employee.UpdateEmployee,
	remove *employee.DeleteEmployee,
) *EmployeeHandler {
	return &EmployeeHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		remove: remove,
	}
}

// --------- Requests ---------

// organisation_id in the body is not bound; the tenant always comes from
// the token.
type CreateEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
}

type UpdateEmployeeRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// --------- Handlers ---------

func (h *EmployeeHandler) List(c *gin.Context) {
	_, organisationID := middleware.Caller(c)

	employees, err := h.list.Execute(c.Request.Context(), organisationID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, employees)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	_, organisationID := middleware.Caller(c)

	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	e, err := h.get.Execute(c.Request.Context(), organisationID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, e)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	userID, organisationID := middleware.Caller(c)

	var req CreateEmployeeRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err)
		return
	}

	e, err := h.create.Execute(c.Request.Context(), organisationID, userID, employee.Input{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, e)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	userID, organisationID := middleware.Caller(c)

	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateEmployeeRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.update.Execute(c.Request.Context(), organisationID, userID, id, employee.Patch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Updated")
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
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
