package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hrms/internal/httperr"
	"github.com/BruksfildServices01/hrms/internal/httpresp"
	"github.com/BruksfildServices01/hrms/internal/middleware"
	"github.com/BruksfildServices01/hrms/internal/models"
	"github.com/BruksfildServices01/hrms/internal/usecase/account"
)

type MeHandler struct {
	me *account.GetMe
}

func NewMeHandler(me *account.GetMe) *MeHandler {
	return &MeHandler{me: me}
}

type MeResponse struct {
	User         UserView             `json:"user"`
	Organisation *models.Organisation `json:"organisation"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID, organisationID := middleware.Caller(c)

	user, err := h.me.Execute(c.Request.Context(), organisationID, userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, MeResponse{
		User: UserView{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			OrganisationID: user.OrganisationID,
		},
		Organisation: user.Organisation,
	})
}
