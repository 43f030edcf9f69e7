package mypage

import (
	sharedContext "github.com/ogeoseo/go-api-server/internal/shared/context"
	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
	"github.com/ogeoseo/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MypageHandler struct {
	mypageService *MypageService
}

func NewMypageHandler(mypageService *MypageService) *MypageHandler {
	return &MypageHandler{
		mypageService: mypageService,
	}
}

func (h *MypageHandler) GetProfile(c *gin.Context) {
	userID := sharedContext.CurrentUserID(c)

	response, err := h.mypageService.GetProfile(c.Request.Context(), userID)
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

func (h *MypageHandler) GetBadges(c *gin.Context) {
	userID := sharedContext.CurrentUserID(c)

	response, err := h.mypageService.GetBadges(c.Request.Context(), userID)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}

func (h *MypageHandler) GetPoints(c *gin.Context) {
	userID := sharedContext.CurrentUserID(c)

	response, err := h.mypageService.GetPoints(c.Request.Context(), userID)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}
