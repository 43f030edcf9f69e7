package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/ogeoseo/go-api-server/internal/model"
	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
	"github.com/ogeoseo/go-api-server/internal/shared/query"
)

// recentActivityLimit bounds the dashboard activity log.
const recentActivityLimit = 10

type AdminService struct {
	store *fixture.Store
	month string // 캠페인 월 (YYYY-MM)
}

func NewAdminService(store *fixture.Store, campaignMonth string) *AdminService {
	return &AdminService{
		store: store,
		month: campaignMonth,
	}
}

// GetDashboard aggregates the campaign month's participation per zone,
// points issued, badge grants, munho holders, and recent activity.
func (s *AdminService) GetDashboard(ctx context.Context) (*DashboardResponse, error) {
	users, err := s.store.Users()
	if err != nil {
		return nil, fmt.Errorf("사용자 목록 조회 실패: %w", err)
	}
	writings, err := s.store.Writings()
	if err != nil {
		return nil, fmt.Errorf("필사 목록 조회 실패: %w", err)
	}
	reviews, err := s.store.Reviews()
	if err != nil {
		return nil, fmt.Errorf("서평 목록 조회 실패: %w", err)
	}
	narrations, err := s.store.Narrations()
	if err != nil {
		return nil, fmt.Errorf("낭독 데이터 조회 실패: %w", err)
	}
	badges, err := s.store.Badges()
	if err != nil {
		return nil, fmt.Errorf("배지 목록 조회 실패: %w", err)
	}
	points, err := s.store.Points()
	if err != nil {
		return nil, fmt.Errorf("포인트 내역 조회 실패: %w", err)
	}

	students := query.Filter(users, func(u model.User) bool { return u.Role == model.RoleStudent })

	monthlyPoints := query.Filter(points, func(p model.PointRecord) bool {
		return p.Type == model.PointEarn && strings.HasPrefix(p.CreatedAt, s.month)
	})
	monthlyBadges := query.Filter(badges, func(b model.Badge) bool {
		return strings.HasPrefix(b.EarnedAt, s.month)
	})

	zoneParticipation := map[model.Zone]int{}
	for _, zone := range model.AllZones {
		zoneParticipation[zone] = 0
	}
	totalPointsIssued := 0
	for _, p := range monthlyPoints {
		totalPointsIssued += p.Amount
		if p.Zone != nil {
			if _, ok := zoneParticipation[model.Zone(*p.Zone)]; ok {
				zoneParticipation[model.Zone(*p.Zone)]++
			}
		}
	}

	totalParticipation := 0
	for _, count := range zoneParticipation {
		totalParticipation += count
	}

	badgeCounts := make(map[string]int, len(badges))
	for _, b := range badges {
		badgeCounts[b.UserID]++
	}
	munhoCount := 0
	for _, u := range students {
		if model.IsMunho(badgeCounts[u.ID]) {
			munhoCount++
		}
	}

	recentPoints := query.SortByTimeDesc(points, func(p model.PointRecord) string { return p.CreatedAt })
	if len(recentPoints) > recentActivityLimit {
		recentPoints = recentPoints[:recentActivityLimit]
	}
	activities := []Activity{}
	for _, p := range recentPoints {
		userName := query.UnknownName
		if user, ok := query.FindByID(users, func(u model.User) string { return u.ID }, p.UserID); ok {
			userName = user.Name
		}
		activities = append(activities, Activity{
			UserName:    userName,
			Description: p.Description,
			Date:        p.CreatedAt,
		})
	}

	return &DashboardResponse{
		Cards: Cards{
			TotalParticipation: totalParticipation,
			TotalUsers:         len(students),
			MonthlyBadges:      len(monthlyBadges),
			TotalPointsIssued:  totalPointsIssued,
			MunhoCount:         munhoCount,
		},
		ZoneParticipation: zoneParticipation,
		RecentActivities:  activities,
		NarrationStatus: NarrationStatus{
			Current:  narrations.Current.CurrentParticipants,
			Total:    narrations.Current.TotalParticipants,
			Deadline: narrations.Current.Deadline,
		},
		ContentCounts: ContentCounts{
			Writings: len(writings),
			Reviews:  len(reviews),
		},
	}, nil
}
