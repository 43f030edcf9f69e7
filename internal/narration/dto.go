package narration

import (
	"github.com/ogeoseo/go-api-server/internal/model"
)

// CurrentResponse is this month's recording round with its book join.
type CurrentResponse struct {
	model.NarrationRound
	Book *model.BookSummary `json:"book"`
}

// ArchiveItem is a published round with its book join.
type ArchiveItem struct {
	model.NarrationArchive
	Book *model.BookSummary `json:"book"`
}

type ArchiveResponse struct {
	Archive []ArchiveItem `json:"archive"`
}
