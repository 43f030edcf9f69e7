package narration

import (
	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
	"github.com/ogeoseo/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type NarrationHandler struct {
	narrationService *NarrationService
}

func NewNarrationHandler(narrationService *NarrationService) *NarrationHandler {
	return &NarrationHandler{
		narrationService: narrationService,
	}
}

func (h *NarrationHandler) GetCurrent(c *gin.Context) {
	response, err := h.narrationService.GetCurrent(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}

func (h *NarrationHandler) GetArchive(c *gin.Context) {
	response, err := h.narrationService.GetArchive(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}
