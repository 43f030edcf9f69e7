package writing

import (
	"github.com/ogeoseo/go-api-server/internal/model"
)

// Sort modes for the writing list. "banner" filters instead of ordering:
// only flagged entries survive.
const (
	SortLatest = "latest"
	SortLikes  = "likes"
	SortBanner = "banner"
)

// EnrichedWriting is a writing joined with its author.
type EnrichedWriting struct {
	model.Writing
	UserName       string `json:"userName"`
	UserDepartment string `json:"userDepartment"`
}

type ListWritingsResponse struct {
	Writings []EnrichedWriting `json:"writings"`
}

// WritingComment is a comment joined with its author name.
type WritingComment struct {
	model.Comment
	UserName string `json:"userName"`
}

type GetWritingResponse struct {
	model.Writing
	UserName       string           `json:"userName"`
	UserDepartment string           `json:"userDepartment"`
	Comments       []WritingComment `json:"comments"`
}
