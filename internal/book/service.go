package book

import (
	"context"
	"fmt"

	"github.com/ogeoseo/go-api-server/internal/model"
	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
	"github.com/ogeoseo/go-api-server/internal/shared/query"
)

type BookService struct {
	store *fixture.Store
}

func NewBookService(store *fixture.Store) *BookService {
	return &BookService{
		store: store,
	}
}

// ListBooks returns the reading list, optionally narrowed by an exact
// category match and a case-insensitive title/author substring search.
func (s *BookService) ListBooks(ctx context.Context, category, search string) (*ListBooksResponse, error) {
	books, err := s.store.Books()
	if err != nil {
		return nil, fmt.Errorf("도서 목록 조회 실패: %w", err)
	}

	if category != "" {
		books = query.Filter(books, func(b model.Book) bool {
			return b.Category == category
		})
	}

	if search != "" {
		books = query.Filter(books, func(b model.Book) bool {
			return query.ContainsFold(b.Title, search) || query.ContainsFold(b.Author, search)
		})
	}

	if books == nil {
		books = []model.Book{}
	}

	return &ListBooksResponse{Books: books}, nil
}

// GetBook returns a single book with its reviews, each joined with the
// author name (fallback literal when the author is missing).
func (s *BookService) GetBook(ctx context.Context, bookID string) (*GetBookResponse, error) {
	books, err := s.store.Books()
	if err != nil {
		return nil, fmt.Errorf("도서 목록 조회 실패: %w", err)
	}

	found, ok := query.FindByID(books, func(b model.Book) string { return b.ID }, bookID)
	if !ok {
		return nil, fmt.Errorf("도서를 찾을 수 없습니다 bookID=%s %w", bookID, ErrBookNotFound)
	}

	reviews, err := s.store.Reviews()
	if err != nil {
		return nil, fmt.Errorf("서평 목록 조회 실패: %w", err)
	}

	users, err := s.store.Users()
	if err != nil {
		return nil, fmt.Errorf("사용자 목록 조회 실패: %w", err)
	}

	bookReviews := []BookReview{}
	for _, r := range reviews {
		if r.BookID != bookID {
			continue
		}

		userName := query.UnknownName
		if user, ok := query.FindByID(users, func(u model.User) string { return u.ID }, r.UserID); ok {
			userName = user.Name
		}

		bookReviews = append(bookReviews, BookReview{Review: r, UserName: userName})
	}

	return &GetBookResponse{Book: found, Reviews: bookReviews}, nil
}
