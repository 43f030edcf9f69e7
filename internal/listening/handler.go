package listening

import (
	"time"

	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
	"github.com/ogeoseo/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type ListeningHandler struct {
	listeningService *ListeningService
	analyzeDelay     time.Duration
}

// NewListeningHandler wires the service with the simulated analysis
// latency. The delay lives here at the boundary so the matching logic
// stays instantaneous and testable.
func NewListeningHandler(listeningService *ListeningService, analyzeDelay time.Duration) *ListeningHandler {
	return &ListeningHandler{
		listeningService: listeningService,
		analyzeDelay:     analyzeDelay,
	}
}

func (h *ListeningHandler) Analyze(c *gin.Context) {
	var request AnalyzeRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.listeningService.Analyze(c.Request.Context(), &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	if h.analyzeDelay > 0 {
		select {
		case <-time.After(h.analyzeDelay):
		case <-c.Request.Context().Done():
			return
		}
	}

	c.JSON(200, response)
}

func (h *ListeningHandler) GetPlaylist(c *gin.Context) {
	response, err := h.listeningService.GetPlaylist(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}
