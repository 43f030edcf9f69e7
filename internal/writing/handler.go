package writing

import (
	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
	"github.com/ogeoseo/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type WritingHandler struct {
	writingService *WritingService
}

func NewWritingHandler(writingService *WritingService) *WritingHandler {
	return &WritingHandler{
		writingService: writingService,
	}
}

func (h *WritingHandler) ListWritings(c *gin.Context) {
	sort := c.DefaultQuery("sort", SortLatest)

	response, err := h.writingService.ListWritings(c.Request.Context(), sort)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}

func (h *WritingHandler) GetWriting(c *gin.Context) {
	response, err := h.writingService.GetWriting(c.Request.Context(), c.Param("id"))
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}
