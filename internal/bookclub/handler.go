package bookclub

import (
	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
	"github.com/ogeoseo/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type BookClubHandler struct {
	bookClubService *BookClubService
}

func NewBookClubHandler(bookClubService *BookClubService) *BookClubHandler {
	return &BookClubHandler{
		bookClubService: bookClubService,
	}
}

func (h *BookClubHandler) ListBookClubs(c *gin.Context) {
	response, err := h.bookClubService.ListBookClubs(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}

func (h *BookClubHandler) GetBookClub(c *gin.Context) {
	response, err := h.bookClubService.GetBookClub(c.Request.Context(), c.Param("id"))
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
