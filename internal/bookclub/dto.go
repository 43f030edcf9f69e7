package bookclub

import (
	"github.com/ogeoseo/go-api-server/internal/model"
)

// ModeratorSummary is the compact moderator join shape for list items.
type ModeratorSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
	Achievement  string `json:"achievement"`
}

// ListItem is a book club joined with its book and moderator summaries.
// Absent joins serialize as null, matching the portal contract.
type ListItem struct {
	model.BookClub
	Book      *model.BookSummary `json:"book"`
	Moderator *ModeratorSummary  `json:"moderator"`
}

// ListBookClubsResponse splits clubs into ongoing and completed.
type ListBookClubsResponse struct {
	Current []ListItem `json:"current"`
	Archive []ListItem `json:"archive"`
}

// GetBookClubResponse is the detail view with full joined entities.
type GetBookClubResponse struct {
	model.BookClub
	Book      *model.Book      `json:"book"`
	Moderator *model.Moderator `json:"moderator"`
}
