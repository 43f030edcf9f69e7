package book

import (
	"github.com/ogeoseo/go-api-server/internal/model"
)

type ListBooksResponse struct {
	Books []model.Book `json:"books"`
}

// BookReview is a review joined with its author name for the detail view.
type BookReview struct {
	model.Review
	UserName string `json:"userName"`
}

type GetBookResponse struct {
	Book    model.Book   `json:"book"`
	Reviews []BookReview `json:"reviews"`
}
