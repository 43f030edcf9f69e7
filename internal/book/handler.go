package book

import (
	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
	"github.com/ogeoseo/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	bookService *BookService
}

func NewBookHandler(bookService *BookService) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

func (h *BookHandler) ListBooks(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	response, err := h.bookService.ListBooks(c.Request.Context(), category, search)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}

func (h *BookHandler) GetBook(c *gin.Context) {
	response, err := h.bookService.GetBook(c.Request.Context(), c.Param("id"))
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
