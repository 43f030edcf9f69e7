package review

import (
	"context"
	"fmt"

	"github.com/ogeoseo/go-api-server/internal/model"
	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
	"github.com/ogeoseo/go-api-server/internal/shared/query"
)

type ReviewService struct {
	store *fixture.Store
}

func NewReviewService(store *fixture.Store) *ReviewService {
	return &ReviewService{
		store: store,
	}
}

// ListReviews returns reviews newest first, joined with author and book.
// The category filter goes through the joined book's category.
func (s *ReviewService) ListReviews(ctx context.Context, category string) (*ListReviewsResponse, error) {
	reviews, err := s.store.Reviews()
	if err != nil {
		return nil, fmt.Errorf("서평 목록 조회 실패: %w", err)
	}

	users, err := s.store.Users()
	if err != nil {
		return nil, fmt.Errorf("사용자 목록 조회 실패: %w", err)
	}

	books, err := s.store.Books()
	if err != nil {
		return nil, fmt.Errorf("도서 목록 조회 실패: %w", err)
	}

	if category != "" {
		categoryBookIDs := make(map[string]bool)
		for _, b := range books {
			if b.Category == category {
				categoryBookIDs[b.ID] = true
			}
		}
		reviews = query.Filter(reviews, func(r model.Review) bool {
			return categoryBookIDs[r.BookID]
		})
	}

	reviews = query.SortByTimeDesc(reviews, func(r model.Review) string { return r.CreatedAt })

	enriched := []EnrichedReview{}
	for _, r := range reviews {
		item := EnrichedReview{Review: r, UserName: query.UnknownName}
		if user, ok := query.FindByID(users, func(u model.User) string { return u.ID }, r.UserID); ok {
			item.UserName = user.Name
		}
		if book, ok := query.FindByID(books, func(b model.Book) string { return b.ID }, r.BookID); ok {
			item.BookTitle = book.Title
			item.BookAuthor = book.Author
			item.BookCoverImage = book.CoverImage
		}
		enriched = append(enriched, item)
	}

	return &ListReviewsResponse{Reviews: enriched}, nil
}

// GetReview returns a single review with author, book, and comment joins.
func (s *ReviewService) GetReview(ctx context.Context, reviewID string) (*GetReviewResponse, error) {
	reviews, err := s.store.Reviews()
	if err != nil {
		return nil, fmt.Errorf("서평 목록 조회 실패: %w", err)
	}

	found, ok := query.FindByID(reviews, func(r model.Review) string { return r.ID }, reviewID)
	if !ok {
		return nil, fmt.Errorf("서평을 찾을 수 없습니다 reviewID=%s %w", reviewID, ErrReviewNotFound)
	}

	users, err := s.store.Users()
	if err != nil {
		return nil, fmt.Errorf("사용자 목록 조회 실패: %w", err)
	}

	books, err := s.store.Books()
	if err != nil {
		return nil, fmt.Errorf("도서 목록 조회 실패: %w", err)
	}

	comments, err := s.store.Comments()
	if err != nil {
		return nil, fmt.Errorf("댓글 목록 조회 실패: %w", err)
	}

	response := &GetReviewResponse{
		Review:   found,
		UserName: query.UnknownName,
		Comments: []ReviewComment{},
	}
	if user, ok := query.FindByID(users, func(u model.User) string { return u.ID }, found.UserID); ok {
		response.UserName = user.Name
		response.UserDepartment = user.Department
	}
	if book, ok := query.FindByID(books, func(b model.Book) string { return b.ID }, found.BookID); ok {
		response.Book = &book
	}

	target := model.CommentTarget{Kind: model.TargetReview, ID: reviewID}
	for _, c := range model.CommentsFor(comments, target) {
		comment := ReviewComment{Comment: c, UserName: query.UnknownName}
		if user, ok := query.FindByID(users, func(u model.User) string { return u.ID }, c.UserID); ok {
			comment.UserName = user.Name
		}
		response.Comments = append(response.Comments, comment)
	}

	return response, nil
}
