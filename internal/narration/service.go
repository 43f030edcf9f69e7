package narration

import (
	"context"
	"fmt"

	"github.com/ogeoseo/go-api-server/internal/model"
	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
	"github.com/ogeoseo/go-api-server/internal/shared/query"
)

type NarrationService struct {
	store *fixture.Store
}

func NewNarrationService(store *fixture.Store) *NarrationService {
	return &NarrationService{
		store: store,
	}
}

// GetCurrent returns the ongoing recording round with its book join.
func (s *NarrationService) GetCurrent(ctx context.Context) (*CurrentResponse, error) {
	data, err := s.store.Narrations()
	if err != nil {
		return nil, fmt.Errorf("낭독 데이터 조회 실패: %w", err)
	}

	books, err := s.store.Books()
	if err != nil {
		return nil, fmt.Errorf("도서 목록 조회 실패: %w", err)
	}

	response := &CurrentResponse{NarrationRound: data.Current}
	if book, ok := query.FindByID(books, func(b model.Book) string { return b.ID }, data.Current.BookID); ok {
		summary := book.Summary()
		response.Book = &summary
	}

	return response, nil
}

// GetArchive returns published rounds, each joined with its book.
func (s *NarrationService) GetArchive(ctx context.Context) (*ArchiveResponse, error) {
	data, err := s.store.Narrations()
	if err != nil {
		return nil, fmt.Errorf("낭독 데이터 조회 실패: %w", err)
	}

	books, err := s.store.Books()
	if err != nil {
		return nil, fmt.Errorf("도서 목록 조회 실패: %w", err)
	}

	archive := []ArchiveItem{}
	for _, a := range data.Archive {
		item := ArchiveItem{NarrationArchive: a}
		if book, ok := query.FindByID(books, func(b model.Book) string { return b.ID }, a.BookID); ok {
			summary := book.Summary()
			item.Book = &summary
		}
		archive = append(archive, item)
	}

	return &ArchiveResponse{Archive: archive}, nil
}
