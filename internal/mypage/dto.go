package mypage

import (
	"github.com/ogeoseo/go-api-server/internal/model"
)

type ProfileUser struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Department   string  `json:"department"`
	EnrollYear   *int    `json:"enrollYear"`
	StudentID    *string `json:"studentId"`
	ProfileImage string  `json:"profileImage"`
	Title        *string `json:"title"`
	LCName       *string `json:"lcName"`
}

type ProfilePoints struct {
	Cumulative int `json:"cumulative"`
	Available  int `json:"available"`
	Rank       int `json:"rank"`
}

// BadgeStatus is one zone slot in the collection, earned or not.
type BadgeStatus struct {
	Zone     model.Zone `json:"zone"`
	Earned   bool       `json:"earned"`
	EarnedAt *string    `json:"earnedAt"`
}

type ProfileBadges struct {
	Collection []BadgeStatus `json:"collection"`
	Count      int           `json:"count"`
	Total      int           `json:"total"`
	IsMunho    bool          `json:"isMunho"`
}

type GetProfileResponse struct {
	User             ProfileUser         `json:"user"`
	Points           ProfilePoints       `json:"points"`
	Badges           ProfileBadges       `json:"badges"`
	RecentActivities []model.PointRecord `json:"recentActivities"`
}

// BadgeCard is the badge-collection view with display name and icon.
type BadgeCard struct {
	Zone     model.Zone `json:"zone"`
	Name     string     `json:"name"`
	Icon     string     `json:"icon"`
	Earned   bool       `json:"earned"`
	EarnedAt *string    `json:"earnedAt"`
}

type GetBadgesResponse struct {
	Badges  []BadgeCard `json:"badges"`
	Count   int         `json:"count"`
	IsMunho bool        `json:"isMunho"`
}

type GetPointsResponse struct {
	Points []model.PointRecord `json:"points"`
}
