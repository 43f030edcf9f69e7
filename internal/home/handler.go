package home

import (
	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
	"github.com/ogeoseo/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	homeService *HomeService
}

func NewHomeHandler(homeService *HomeService) *HomeHandler {
	return &HomeHandler{
		homeService: homeService,
	}
}

func (h *HomeHandler) GetHome(c *gin.Context) {
	response, err := h.homeService.GetHome(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}
