package bookclub

import (
	"net/http"

	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
)

const bookClubNotFound = "BOOKCLUB_NOT_FOUND" // errInfo

var ErrBookClubNotFound = sharedError.NewDomainError(bookClubNotFound)

func init() {
	sharedError.RegisterDomainErrorResponse(bookClubNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "BOOKCLUB-001",
		Message: "북클럽을 찾을 수 없습니다.",
	})
}
