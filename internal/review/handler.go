package review

import (
	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
	"github.com/ogeoseo/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService *ReviewService
}

func NewReviewHandler(reviewService *ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	response, err := h.reviewService.ListReviews(c.Request.Context(), c.Query("category"))
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	response, err := h.reviewService.GetReview(c.Request.Context(), c.Param("id"))
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
