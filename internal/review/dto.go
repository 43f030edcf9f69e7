package review

import (
	"github.com/ogeoseo/go-api-server/internal/model"
)

// EnrichedReview is a review flattened with its author and book joins.
type EnrichedReview struct {
	model.Review
	UserName       string `json:"userName"`
	BookTitle      string `json:"bookTitle"`
	BookAuthor     string `json:"bookAuthor"`
	BookCoverImage string `json:"bookCoverImage"`
}

type ListReviewsResponse struct {
	Reviews []EnrichedReview `json:"reviews"`
}

// ReviewComment is a comment joined with its author name.
type ReviewComment struct {
	model.Comment
	UserName string `json:"userName"`
}

type GetReviewResponse struct {
	model.Review
	UserName       string          `json:"userName"`
	UserDepartment string          `json:"userDepartment"`
	Book           *model.Book     `json:"book"`
	Comments       []ReviewComment `json:"comments"`
}
