package review

import (
	"net/http"

	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
)

const reviewNotFound = "REVIEW_NOT_FOUND" // errInfo

var ErrReviewNotFound = sharedError.NewDomainError(reviewNotFound)

func init() {
	sharedError.RegisterDomainErrorResponse(reviewNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "REVIEW-001",
		Message: "서평을 찾을 수 없습니다.",
	})
}
