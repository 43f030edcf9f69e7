package feed

import (
	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
	"github.com/ogeoseo/go-api-server/internal/shared/handler"
	"github.com/ogeoseo/go-api-server/internal/shared/query"
	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedService *FeedService
}

func NewFeedHandler(feedService *FeedService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
	}
}

func (h *FeedHandler) GetFeed(c *gin.Context) {
	// Malformed paging parameters fall back to defaults, never error.
	page := query.ParsePositiveInt(c.Query("page"), defaultPage)
	limit := query.ParsePositiveInt(c.Query("limit"), defaultLimit)

	response, err := h.feedService.GetFeed(c.Request.Context(), page, limit)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}
