package writing

import (
	"net/http"

	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
)

const writingNotFound = "WRITING_NOT_FOUND" // errInfo

var ErrWritingNotFound = sharedError.NewDomainError(writingNotFound)

func init() {
	sharedError.RegisterDomainErrorResponse(writingNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "WRITING-001",
		Message: "필사를 찾을 수 없습니다.",
	})
}
