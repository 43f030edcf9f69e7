package mall

import (
	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
	"github.com/ogeoseo/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MallHandler struct {
	mallService *MallService
}

func NewMallHandler(mallService *MallService) *MallHandler {
	return &MallHandler{
		mallService: mallService,
	}
}

func (h *MallHandler) ListProducts(c *gin.Context) {
	response, err := h.mallService.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}
