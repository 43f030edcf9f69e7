package book

import (
	"net/http"

	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
)

const bookNotFound = "BOOK_NOT_FOUND" // errInfo

var ErrBookNotFound = sharedError.NewDomainError(bookNotFound)

func init() {
	sharedError.RegisterDomainErrorResponse(bookNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "BOOK-001",
		Message: "도서를 찾을 수 없습니다.",
	})
}
