package admin

import (
	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
	"github.com/ogeoseo/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *AdminService
}

func NewAdminHandler(adminService *AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func (h *AdminHandler) GetDashboard(c *gin.Context) {
	response, err := h.adminService.GetDashboard(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}
