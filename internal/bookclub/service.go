package bookclub

import (
	"context"
	"fmt"

	"github.com/ogeoseo/go-api-server/internal/model"
	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
	"github.com/ogeoseo/go-api-server/internal/shared/query"
)

type BookClubService struct {
	store *fixture.Store
}

func NewBookClubService(store *fixture.Store) *BookClubService {
	return &BookClubService{
		store: store,
	}
}

// ListBookClubs joins every club with its book and moderator, then splits
// them into ongoing (recruiting/active) and completed archives.
func (s *BookClubService) ListBookClubs(ctx context.Context) (*ListBookClubsResponse, error) {
	clubs, err := s.store.BookClubs()
	if err != nil {
		return nil, fmt.Errorf("북클럽 목록 조회 실패: %w", err)
	}

	books, err := s.store.Books()
	if err != nil {
		return nil, fmt.Errorf("도서 목록 조회 실패: %w", err)
	}

	moderators, err := s.store.Moderators()
	if err != nil {
		return nil, fmt.Errorf("좌장 목록 조회 실패: %w", err)
	}

	current := []ListItem{}
	archive := []ListItem{}
	for _, club := range clubs {
		item := ListItem{BookClub: club}

		if book, ok := query.FindByID(books, func(b model.Book) string { return b.ID }, club.BookID); ok {
			summary := book.Summary()
			item.Book = &summary
		}
		if mod, ok := query.FindByID(moderators, func(m model.Moderator) string { return m.ID }, club.ModeratorID); ok {
			item.Moderator = &ModeratorSummary{
				ID:           mod.ID,
				Name:         mod.Name,
				Bio:          mod.Bio,
				ProfileImage: mod.ProfileImage,
				Achievement:  mod.Achievement,
			}
		}

		if club.Status == model.BookClubCompleted {
			archive = append(archive, item)
		} else {
			current = append(current, item)
		}
	}

	return &ListBookClubsResponse{Current: current, Archive: archive}, nil
}

// GetBookClub returns the detail view with full book and moderator joins.
func (s *BookClubService) GetBookClub(ctx context.Context, clubID string) (*GetBookClubResponse, error) {
	clubs, err := s.store.BookClubs()
	if err != nil {
		return nil, fmt.Errorf("북클럽 목록 조회 실패: %w", err)
	}

	club, ok := query.FindByID(clubs, func(c model.BookClub) string { return c.ID }, clubID)
	if !ok {
		return nil, fmt.Errorf("북클럽을 찾을 수 없습니다 clubID=%s %w", clubID, ErrBookClubNotFound)
	}

	books, err := s.store.Books()
	if err != nil {
		return nil, fmt.Errorf("도서 목록 조회 실패: %w", err)
	}

	moderators, err := s.store.Moderators()
	if err != nil {
		return nil, fmt.Errorf("좌장 목록 조회 실패: %w", err)
	}

	response := &GetBookClubResponse{BookClub: club}
	if book, ok := query.FindByID(books, func(b model.Book) string { return b.ID }, club.BookID); ok {
		response.Book = &book
	}
	if mod, ok := query.FindByID(moderators, func(m model.Moderator) string { return m.ID }, club.ModeratorID); ok {
		response.Moderator = &mod
	}

	return response, nil
}
