package home

import (
	"context"
	"fmt"
	"time"

	"github.com/ogeoseo/go-api-server/internal/model"
	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
	"github.com/ogeoseo/go-api-server/internal/shared/query"
)

const (
	personalLimit    = 5
	lcLimit          = 3
	recommendedLimit = 4
	excerptPreview   = 30
)

type HomeService struct {
	store *fixture.Store
	now   func() time.Time
}

func NewHomeService(store *fixture.Store) *HomeService {
	return &HomeService{
		store: store,
		now:   time.Now,
	}
}

// GetHome aggregates the landing-page dashboard: hero highlights, zone
// status cards, top rankings, recommended books, and campaign stats.
func (s *HomeService) GetHome(ctx context.Context) (*GetHomeResponse, error) {
	users, err := s.store.Users()
	if err != nil {
		return nil, fmt.Errorf("사용자 목록 조회 실패: %w", err)
	}
	books, err := s.store.Books()
	if err != nil {
		return nil, fmt.Errorf("도서 목록 조회 실패: %w", err)
	}
	clubs, err := s.store.BookClubs()
	if err != nil {
		return nil, fmt.Errorf("북클럽 목록 조회 실패: %w", err)
	}
	writings, err := s.store.Writings()
	if err != nil {
		return nil, fmt.Errorf("필사 목록 조회 실패: %w", err)
	}
	reviews, err := s.store.Reviews()
	if err != nil {
		return nil, fmt.Errorf("서평 목록 조회 실패: %w", err)
	}
	badges, err := s.store.Badges()
	if err != nil {
		return nil, fmt.Errorf("배지 목록 조회 실패: %w", err)
	}
	lcs, err := s.store.LCs()
	if err != nil {
		return nil, fmt.Errorf("LC 목록 조회 실패: %w", err)
	}
	moderators, err := s.store.Moderators()
	if err != nil {
		return nil, fmt.Errorf("좌장 목록 조회 실패: %w", err)
	}
	narrations, err := s.store.Narrations()
	if err != nil {
		return nil, fmt.Errorf("낭독 데이터 조회 실패: %w", err)
	}

	activeClub, hasActiveClub := query.FirstMatch(clubs, func(c model.BookClub) bool {
		return c.Status == model.BookClubRecruiting || c.Status == model.BookClubActive
	})
	current := narrations.Current

	highlights := []Highlight{}
	if hasActiveClub {
		modName := ""
		if mod, ok := query.FindByID(moderators, func(m model.Moderator) string { return m.ID }, activeClub.ModeratorID); ok {
			modName = mod.Name
		}
		subtitle := ""
		if book, ok := query.FindByID(books, func(b model.Book) string { return b.ID }, activeClub.BookID); ok {
			subtitle = fmt.Sprintf("선정 도서: 《%s》", book.Title)
		}
		highlights = append(highlights, Highlight{
			Type:     "bookclub",
			Title:    fmt.Sprintf("이달의 북클럽 좌장: %s", modName),
			Subtitle: subtitle,
			LinkURL:  "/bookclub/" + activeClub.ID,
		})
	}

	narrationBookTitle := ""
	if book, ok := query.FindByID(books, func(b model.Book) string { return b.ID }, current.BookID); ok {
		narrationBookTitle = book.Title
	}
	highlights = append(highlights, Highlight{
		Type:     "narration",
		Title:    fmt.Sprintf("이달의 낭독: 《%s》", narrationBookTitle),
		Subtitle: fmt.Sprintf("%s | 참여: %d/%d명", current.Section, current.CurrentParticipants, current.TotalParticipants),
		LinkURL:  "/narration",
	})

	if len(writings) > 0 {
		top := query.SortByIntDesc(writings, func(w model.Writing) int { return w.Likes })[0]
		authorName := query.UnknownName
		if author, ok := query.FindByID(users, func(u model.User) string { return u.ID }, top.UserID); ok {
			authorName = author.Name
		}
		excerpt := []rune(top.Excerpt)
		if len(excerpt) > excerptPreview {
			excerpt = excerpt[:excerptPreview]
		}
		highlights = append(highlights, Highlight{
			Type:     "writing",
			Title:    "이달의 인기 필사",
			Subtitle: fmt.Sprintf("\"%s...\" — %s", string(excerpt), authorName),
			LinkURL:  "/writing/" + top.ID,
		})
	}

	zones := s.buildZones(hasActiveClub, activeClub, current, len(writings), len(reviews))

	students := query.Filter(users, func(u model.User) bool { return u.Role == model.RoleStudent })
	students = query.SortByIntDesc(students, func(u model.User) int { return u.CumulativePoints })

	personal := []RankingRow{}
	for i, u := range students {
		if i == personalLimit {
			break
		}
		personal = append(personal, RankingRow{
			Rank:       i + 1,
			Name:       u.Name,
			Department: u.Department,
			Points:     u.CumulativePoints,
		})
	}

	lcRows := []LCRow{}
	for _, lc := range lcs {
		memberIDs := make(map[string]bool, len(lc.MemberIDs))
		for _, id := range lc.MemberIDs {
			memberIDs[id] = true
		}
		total := 0
		count := 0
		for _, u := range users {
			if memberIDs[u.ID] {
				total += u.CumulativePoints
				count++
			}
		}
		lcRows = append(lcRows, LCRow{Name: lc.Name, TotalPoints: total, MemberCount: count})
	}
	lcRows = query.SortByIntDesc(lcRows, func(r LCRow) int { return r.TotalPoints })
	if len(lcRows) > lcLimit {
		lcRows = lcRows[:lcLimit]
	}

	recommended := []RecommendedBook{}
	for i, b := range books {
		if i == recommendedLimit {
			break
		}
		recommended = append(recommended, RecommendedBook{
			ID:         b.ID,
			Title:      b.Title,
			Author:     b.Author,
			CoverImage: b.CoverImage,
			Category:   b.Category,
		})
	}

	return &GetHomeResponse{
		Highlights:       highlights,
		Zones:            zones,
		PersonalRanking:  personal,
		LCRanking:        lcRows,
		RecommendedBooks: recommended,
		Stats: Stats{
			TotalUsers:    len(students),
			TotalBadges:   len(badges),
			TotalWritings: len(writings),
		},
	}, nil
}

func (s *HomeService) buildZones(hasActiveClub bool, activeClub model.BookClub, current model.NarrationRound, writingCount, reviewCount int) []ZoneCard {
	clubStatus := "준비중"
	clubCount := 0
	if hasActiveClub {
		clubStatus = "모집중"
		clubCount = activeClub.CurrentMembers
	}

	narrationStatus := "마감"
	if current.Status == "recruiting" {
		days := int(query.ParseTime(current.Deadline).Sub(s.now()).Hours()/24) + 1
		narrationStatus = fmt.Sprintf("D-%d", days)
	}
	narrationCount := current.CurrentParticipants

	return []ZoneCard{
		{ID: string(model.ZoneBookclub), Name: "북클럽 존", Icon: "📖", Status: clubStatus, Count: &clubCount, Href: "/bookclub"},
		{ID: string(model.ZoneNarration), Name: "낭독 존", Icon: "🎙️", Status: narrationStatus, Count: &narrationCount, Href: "/narration"},
		{ID: string(model.ZoneListening), Name: "듣기 존", Icon: "🎵", Status: "자유참여", Count: nil, Href: "/listening"},
		{ID: string(model.ZoneWriting), Name: "필사 존", Icon: "✍️", Status: fmt.Sprintf("%d건", writingCount), Count: &writingCount, Href: "/writing"},
		{ID: string(model.ZoneReview), Name: "서평 존", Icon: "📝", Status: fmt.Sprintf("%d건", reviewCount), Count: &reviewCount, Href: "/review"},
	}
}
