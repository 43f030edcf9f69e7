package auth

import (
	"net/http"

	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
)

const (
	userNotFound     = "AUTH_USER_NOT_FOUND" // errInfo
	passwordRequired = "PASSWORD_REQUIRED"   // errInfo
	unauthenticated  = "UNAUTHENTICATED"     // errInfo
)

var (
	ErrUserNotFound     = sharedError.NewDomainError(userNotFound)
	ErrPasswordRequired = sharedError.NewDomainError(passwordRequired)
	ErrUnauthenticated  = sharedError.NewDomainError(unauthenticated)
)

func init() {
	sharedError.RegisterDomainErrorResponse(userNotFound, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-001",
		Message: "사용자를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(passwordRequired, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-002",
		Message: "비밀번호를 입력해주세요.",
	})

	sharedError.RegisterDomainErrorResponse(unauthenticated, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-003",
		Message: "인증이 필요합니다.",
	})
}
