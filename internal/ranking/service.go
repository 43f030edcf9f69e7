package ranking

import (
	"context"
	"fmt"

	"github.com/ogeoseo/go-api-server/internal/model"
	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
	"github.com/ogeoseo/go-api-server/internal/shared/query"
)

// scholarshipLimit caps the munho candidates surfaced to the jury.
const scholarshipLimit = 5

type RankingService struct {
	store *fixture.Store
}

func NewRankingService(store *fixture.Store) *RankingService {
	return &RankingService{
		store: store,
	}
}

// GetRanking builds the personal leaderboard, the LC leaderboard, and the
// scholarship candidate list. Both leaderboards use dense positional
// ranks: rank = position in the sorted output, tied scores included.
func (s *RankingService) GetRanking(ctx context.Context) (*RankingResponse, error) {
	users, err := s.store.Users()
	if err != nil {
		return nil, fmt.Errorf("사용자 목록 조회 실패: %w", err)
	}

	lcs, err := s.store.LCs()
	if err != nil {
		return nil, fmt.Errorf("LC 목록 조회 실패: %w", err)
	}

	badges, err := s.store.Badges()
	if err != nil {
		return nil, fmt.Errorf("배지 목록 조회 실패: %w", err)
	}

	badgeCounts := make(map[string]int, len(badges))
	for _, b := range badges {
		badgeCounts[b.UserID]++
	}

	students := query.Filter(users, func(u model.User) bool { return u.Role == model.RoleStudent })
	students = query.SortByIntDesc(students, func(u model.User) int { return u.CumulativePoints })

	personal := []PersonalEntry{}
	for i, u := range students {
		badgeCount := badgeCounts[u.ID]
		personal = append(personal, PersonalEntry{
			Rank:             i + 1,
			UserID:           u.ID,
			Name:             u.Name,
			Department:       u.Department,
			EnrollYear:       u.EnrollYear,
			CumulativePoints: u.CumulativePoints,
			BadgeCount:       badgeCount,
			IsMunho:          model.IsMunho(badgeCount),
		})
	}

	lcRanking := []LCEntry{}
	for _, lc := range lcs {
		memberIDs := make(map[string]bool, len(lc.MemberIDs))
		for _, id := range lc.MemberIDs {
			memberIDs[id] = true
		}

		totalPoints := 0
		memberCount := 0
		for _, u := range users {
			if memberIDs[u.ID] {
				totalPoints += u.CumulativePoints
				memberCount++
			}
		}

		lcRanking = append(lcRanking, LCEntry{
			LCID:        lc.ID,
			Name:        lc.Name,
			TotalPoints: totalPoints,
			AvgPoints:   query.RoundedAverage(totalPoints, memberCount),
			MemberCount: memberCount,
		})
	}

	lcRanking = query.SortByIntDesc(lcRanking, func(e LCEntry) int { return e.TotalPoints })
	for i := range lcRanking {
		lcRanking[i].Rank = i + 1
	}

	// Scholarship: munho students in rank order, capped.
	candidates := []PersonalEntry{}
	for _, p := range personal {
		if p.IsMunho {
			candidates = append(candidates, p)
		}
		if len(candidates) == scholarshipLimit {
			break
		}
	}

	return &RankingResponse{
		PersonalRanking:       personal,
		LCRanking:             lcRanking,
		ScholarshipCandidates: candidates,
	}, nil
}
