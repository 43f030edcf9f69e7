package ranking

import (
	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
	"github.com/ogeoseo/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type RankingHandler struct {
	rankingService *RankingService
}

func NewRankingHandler(rankingService *RankingService) *RankingHandler {
	return &RankingHandler{
		rankingService: rankingService,
	}
}

func (h *RankingHandler) GetRanking(c *gin.Context) {
	response, err := h.rankingService.GetRanking(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}
