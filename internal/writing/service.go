package writing

import (
	"context"
	"fmt"

	"github.com/ogeoseo/go-api-server/internal/model"
	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
	"github.com/ogeoseo/go-api-server/internal/shared/query"
)

type WritingService struct {
	store *fixture.Store
}

func NewWritingService(store *fixture.Store) *WritingService {
	return &WritingService{
		store: store,
	}
}

// ListWritings returns transcription posts joined with their authors.
// sort=likes orders by the like counter, sort=banner keeps only flagged
// posts (cardinality changes), anything else orders newest first.
func (s *WritingService) ListWritings(ctx context.Context, sort string) (*ListWritingsResponse, error) {
	writings, err := s.store.Writings()
	if err != nil {
		return nil, fmt.Errorf("필사 목록 조회 실패: %w", err)
	}

	users, err := s.store.Users()
	if err != nil {
		return nil, fmt.Errorf("사용자 목록 조회 실패: %w", err)
	}

	switch sort {
	case SortLikes:
		writings = query.SortByIntDesc(writings, func(w model.Writing) int { return w.Likes })
	case SortBanner:
		writings = query.Filter(writings, func(w model.Writing) bool { return w.IsBanner })
	default:
		writings = query.SortByTimeDesc(writings, func(w model.Writing) string { return w.CreatedAt })
	}

	enriched := []EnrichedWriting{}
	for _, w := range writings {
		item := EnrichedWriting{Writing: w, UserName: query.UnknownName}
		if user, ok := query.FindByID(users, func(u model.User) string { return u.ID }, w.UserID); ok {
			item.UserName = user.Name
			item.UserDepartment = user.Department
		}
		enriched = append(enriched, item)
	}

	return &ListWritingsResponse{Writings: enriched}, nil
}

// GetWriting returns a single post with author and comment joins.
func (s *WritingService) GetWriting(ctx context.Context, writingID string) (*GetWritingResponse, error) {
	writings, err := s.store.Writings()
	if err != nil {
		return nil, fmt.Errorf("필사 목록 조회 실패: %w", err)
	}

	found, ok := query.FindByID(writings, func(w model.Writing) string { return w.ID }, writingID)
	if !ok {
		return nil, fmt.Errorf("필사를 찾을 수 없습니다 writingID=%s %w", writingID, ErrWritingNotFound)
	}

	users, err := s.store.Users()
	if err != nil {
		return nil, fmt.Errorf("사용자 목록 조회 실패: %w", err)
	}

	comments, err := s.store.Comments()
	if err != nil {
		return nil, fmt.Errorf("댓글 목록 조회 실패: %w", err)
	}

	response := &GetWritingResponse{
		Writing:  found,
		UserName: query.UnknownName,
		Comments: []WritingComment{},
	}
	if user, ok := query.FindByID(users, func(u model.User) string { return u.ID }, found.UserID); ok {
		response.UserName = user.Name
		response.UserDepartment = user.Department
	}

	target := model.CommentTarget{Kind: model.TargetWriting, ID: writingID}
	for _, c := range model.CommentsFor(comments, target) {
		comment := WritingComment{Comment: c, UserName: query.UnknownName}
		if user, ok := query.FindByID(users, func(u model.User) string { return u.ID }, c.UserID); ok {
			comment.UserName = user.Name
		}
		response.Comments = append(response.Comments, comment)
	}

	return response, nil
}
