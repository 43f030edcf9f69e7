package mypage

import (
	"context"
	"fmt"

	"github.com/ogeoseo/go-api-server/internal/model"
	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
	"github.com/ogeoseo/go-api-server/internal/shared/query"
)

// munhoTitle is displayed instead of the stored title once all five
// zone badges are earned.
const munhoTitle = "문호"

var zoneBadgeNames = map[model.Zone]string{
	model.ZoneBookclub:  "북클럽 배지",
	model.ZoneNarration: "낭독 배지",
	model.ZoneListening: "듣기 배지",
	model.ZoneWriting:   "필사 배지",
	model.ZoneReview:    "서평 배지",
}

var zoneBadgeIcons = map[model.Zone]string{
	model.ZoneBookclub:  "📖",
	model.ZoneNarration: "🎙️",
	model.ZoneListening: "🎵",
	model.ZoneWriting:   "✍️",
	model.ZoneReview:    "📝",
}

// recentActivityLimit bounds the point records shown on the profile.
const recentActivityLimit = 10

type MypageService struct {
	store *fixture.Store
}

func NewMypageService(store *fixture.Store) *MypageService {
	return &MypageService{
		store: store,
	}
}

// GetProfile aggregates the user's profile, point snapshot with rank,
// badge collection, and recent point activity.
func (s *MypageService) GetProfile(ctx context.Context, userID string) (*GetProfileResponse, error) {
	users, err := s.store.Users()
	if err != nil {
		return nil, fmt.Errorf("사용자 목록 조회 실패: %w", err)
	}

	user, ok := query.FindByID(users, func(u model.User) string { return u.ID }, userID)
	if !ok {
		return nil, fmt.Errorf("사용자를 찾을 수 없습니다 userID=%s %w", userID, ErrUserNotFound)
	}

	badges, err := s.store.Badges()
	if err != nil {
		return nil, fmt.Errorf("배지 목록 조회 실패: %w", err)
	}

	lcs, err := s.store.LCs()
	if err != nil {
		return nil, fmt.Errorf("LC 목록 조회 실패: %w", err)
	}

	points, err := s.store.Points()
	if err != nil {
		return nil, fmt.Errorf("포인트 내역 조회 실패: %w", err)
	}

	userBadges := query.Filter(badges, func(b model.Badge) bool { return b.UserID == userID })

	// Positional rank among students by cumulative points.
	students := query.Filter(users, func(u model.User) bool { return u.Role == model.RoleStudent })
	students = query.SortByIntDesc(students, func(u model.User) int { return u.CumulativePoints })
	rank := 0
	for i, u := range students {
		if u.ID == userID {
			rank = i + 1
			break
		}
	}

	collection := []BadgeStatus{}
	for _, zone := range model.AllZones {
		status := BadgeStatus{Zone: zone}
		for _, b := range userBadges {
			if model.Zone(b.Zone) == zone {
				status.Earned = true
				earnedAt := b.EarnedAt
				status.EarnedAt = &earnedAt
				break
			}
		}
		collection = append(collection, status)
	}

	isMunho := model.IsMunho(len(userBadges))

	profileUser := ProfileUser{
		ID:           user.ID,
		Name:         user.Name,
		Department:   user.Department,
		EnrollYear:   user.EnrollYear,
		StudentID:    user.StudentID,
		ProfileImage: user.ProfileImage,
	}
	if isMunho {
		title := munhoTitle
		profileUser.Title = &title
	}
	if user.LCID != nil {
		if lc, ok := query.FindByID(lcs, func(l model.LC) string { return l.ID }, *user.LCID); ok {
			name := lc.Name
			profileUser.LCName = &name
		}
	}

	recent := query.Filter(points, func(p model.PointRecord) bool { return p.UserID == userID })
	recent = query.SortByTimeDesc(recent, func(p model.PointRecord) string { return p.CreatedAt })
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}
	if recent == nil {
		recent = []model.PointRecord{}
	}

	return &GetProfileResponse{
		User: profileUser,
		Points: ProfilePoints{
			Cumulative: user.CumulativePoints,
			Available:  user.AvailablePoints,
			Rank:       rank,
		},
		Badges: ProfileBadges{
			Collection: collection,
			Count:      len(userBadges),
			Total:      model.MunhoBadgeCount,
			IsMunho:    isMunho,
		},
		RecentActivities: recent,
	}, nil
}

// GetBadges returns the five-slot badge collection with display labels.
func (s *MypageService) GetBadges(ctx context.Context, userID string) (*GetBadgesResponse, error) {
	badges, err := s.store.Badges()
	if err != nil {
		return nil, fmt.Errorf("배지 목록 조회 실패: %w", err)
	}

	userBadges := query.Filter(badges, func(b model.Badge) bool { return b.UserID == userID })

	cards := []BadgeCard{}
	for _, zone := range model.AllZones {
		card := BadgeCard{
			Zone: zone,
			Name: zoneBadgeNames[zone],
			Icon: zoneBadgeIcons[zone],
		}
		for _, b := range userBadges {
			if model.Zone(b.Zone) == zone {
				card.Earned = true
				earnedAt := b.EarnedAt
				card.EarnedAt = &earnedAt
				break
			}
		}
		cards = append(cards, card)
	}

	return &GetBadgesResponse{
		Badges:  cards,
		Count:   len(userBadges),
		IsMunho: model.IsMunho(len(userBadges)),
	}, nil
}

// GetPoints returns the user's full point ledger, newest first.
func (s *MypageService) GetPoints(ctx context.Context, userID string) (*GetPointsResponse, error) {
	points, err := s.store.Points()
	if err != nil {
		return nil, fmt.Errorf("포인트 내역 조회 실패: %w", err)
	}

	records := query.Filter(points, func(p model.PointRecord) bool { return p.UserID == userID })
	records = query.SortByTimeDesc(records, func(p model.PointRecord) string { return p.CreatedAt })
	if records == nil {
		records = []model.PointRecord{}
	}

	return &GetPointsResponse{Points: records}, nil
}
