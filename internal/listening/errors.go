package listening

import (
	"net/http"

	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
)

const lyricsRequired = "LYRICS_REQUIRED" // errInfo

var ErrLyricsRequired = sharedError.NewDomainError(lyricsRequired)

func init() {
	sharedError.RegisterDomainErrorResponse(lyricsRequired, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "LISTENING-001",
		Message: "가사를 입력해주세요.",
	})
}
