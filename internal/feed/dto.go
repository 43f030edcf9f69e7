package feed

import (
	"github.com/ogeoseo/go-api-server/internal/model"
)

// previewLimit caps the comment previews attached to a feed item.
const previewLimit = 2

// Default pagination for GET /feed.
const (
	defaultPage  = 1
	defaultLimit = 10
)

// CommentPreview is a shortened comment shown under a feed item.
type CommentPreview struct {
	UserName string `json:"userName"`
	Content  string `json:"content"`
}

// Item is one unified activity-feed entry drawn from writings, reviews,
// narration submissions, or book clubs.
type Item struct {
	ID              string           `json:"id"`
	Type            model.TargetKind `json:"type"`
	Title           string           `json:"title"`
	Content         string           `json:"content"`
	UserName        string           `json:"userName"`
	UserDepartment  string           `json:"userDepartment"`
	CreatedAt       string           `json:"createdAt"`
	Likes           int              `json:"likes"`
	CommentCount    int              `json:"commentCount"`
	DetailURL       string           `json:"detailUrl"`
	Rating          *int             `json:"rating,omitempty"`
	BookTitle       string           `json:"bookTitle,omitempty"`
	CommentPreviews []CommentPreview `json:"commentPreviews"`
}
