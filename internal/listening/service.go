package listening

import (
	"context"
	"fmt"

	"github.com/ogeoseo/go-api-server/internal/model"
	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
	"github.com/ogeoseo/go-api-server/internal/shared/query"
)

type ListeningService struct {
	store *fixture.Store
}

func NewListeningService(store *fixture.Store) *ListeningService {
	return &ListeningService{
		store: store,
	}
}

// Analyze matches the lyrics against the canned response table. Rules are
// evaluated in table order and the first trigger whose keyword appears in
// the lyrics wins; the designated default answers when nothing matches.
func (s *ListeningService) Analyze(ctx context.Context, request *AnalyzeRequest) (*AnalyzeResponse, error) {
	if request.Lyrics == "" {
		return nil, fmt.Errorf("가사가 비어 있습니다 %w", ErrLyricsRequired)
	}

	responseData, err := s.store.ListeningResponses()
	if err != nil {
		return nil, fmt.Errorf("듣기 응답 테이블 조회 실패: %w", err)
	}

	mappings, err := s.store.EmotionMappings()
	if err != nil {
		return nil, fmt.Errorf("감정 매핑 조회 실패: %w", err)
	}

	books, err := s.store.Books()
	if err != nil {
		return nil, fmt.Errorf("도서 목록 조회 실패: %w", err)
	}

	analysis := responseData.DefaultResponse.Analysis
	mappingIDs := responseData.DefaultResponse.MappingIDs

	matched, ok := query.FirstMatch(responseData.Responses, func(r model.ListeningResponse) bool {
		for _, kw := range r.Trigger.Keywords {
			if query.ContainsFold(request.Lyrics, kw) {
				return true
			}
		}
		return false
	})
	if ok {
		analysis = matched.Analysis
		mappingIDs = matched.MappingIDs
	}

	excerpts := []MatchedExcerpt{}
	for _, mappingID := range mappingIDs {
		mapping, ok := query.FindByID(mappings, func(m model.EmotionBookMapping) string { return m.ID }, mappingID)
		if !ok {
			continue
		}

		excerpt := MatchedExcerpt{
			BookID:  mapping.BookID,
			Excerpt: mapping.Excerpt,
			Page:    mapping.Page,
		}
		if book, ok := query.FindByID(books, func(b model.Book) string { return b.ID }, mapping.BookID); ok {
			excerpt.BookTitle = book.Title
			excerpt.BookAuthor = book.Author
			excerpt.CoverImage = book.CoverImage
			excerpt.InLibrary = book.InLibrary
			excerpt.LoanURL = book.LoanURL
		}
		excerpts = append(excerpts, excerpt)
	}

	return &AnalyzeResponse{
		SongTitle:       request.SongTitle,
		SongArtist:      request.SongArtist,
		Lyrics:          request.Lyrics,
		Analysis:        analysis,
		MatchedExcerpts: excerpts,
	}, nil
}

// GetPlaylist returns published song-to-book matches with book joins.
func (s *ListeningService) GetPlaylist(ctx context.Context) (*PlaylistResponse, error) {
	listenings, err := s.store.Listenings()
	if err != nil {
		return nil, fmt.Errorf("듣기 목록 조회 실패: %w", err)
	}

	books, err := s.store.Books()
	if err != nil {
		return nil, fmt.Errorf("도서 목록 조회 실패: %w", err)
	}

	playlist := []PlaylistItem{}
	for _, l := range listenings {
		item := PlaylistItem{ListeningRecord: l, MatchedBookExcerpts: []PlaylistExcerpt{}}
		for _, mbe := range l.MatchedBookExcerpts {
			excerpt := PlaylistExcerpt{ListeningBookMatch: mbe}
			if book, ok := query.FindByID(books, func(b model.Book) string { return b.ID }, mbe.BookID); ok {
				excerpt.BookTitle = book.Title
				excerpt.BookAuthor = book.Author
				excerpt.CoverImage = book.CoverImage
				excerpt.InLibrary = book.InLibrary
			}
			item.MatchedBookExcerpts = append(item.MatchedBookExcerpts, excerpt)
		}
		playlist = append(playlist, item)
	}

	return &PlaylistResponse{Playlist: playlist}, nil
}
