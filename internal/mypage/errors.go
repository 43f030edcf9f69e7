package mypage

import (
	"net/http"

	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
)

const userNotFound = "USER_NOT_FOUND" // errInfo

var ErrUserNotFound = sharedError.NewDomainError(userNotFound)

func init() {
	sharedError.RegisterDomainErrorResponse(userNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MYPAGE-001",
		Message: "사용자를 찾을 수 없습니다.",
	})
}
