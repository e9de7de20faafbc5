package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hrms/internal/httperr"
	"github.com/BruksfildServices01/hrms/internal/httpresp"
	"github.com/BruksfildServices01/hrms/internal/usecase/account"
)

type AuthHandler struct {
	register *account.Register
	login    *account.Login
}

func NewAuthHandler(register *account.Register, login *account.Login) *AuthHandler {
	return &AuthHandler{register: register, login: login}
}

// --------- Requests ---------

type RegisterRequest struct {
	OrgName   string `json:"orgName" binding:"required"`
	AdminName string `json:"adminName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Responses ---------

type UserView struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	OrganisationID uint   `json:"organisation_id"`
}

type SessionResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

func sessionResponse(s *account.Session) SessionResponse {
	return SessionResponse{
		Token: s.Token,
		User: UserView{
			ID:             s.User.ID,
			Name:           s.User.Name,
			Email:          s.User.Email,
			OrganisationID: s.User.OrganisationID,
		},
	}
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err)
		return
	}

	s, err := h.register.Execute(c.Request.Context(), account.RegisterInput{
		OrgName:   req.OrgName,
		AdminName: req.AdminName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, sessionResponse(s))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err)
		return
	}

	s, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, sessionResponse(s))
}
