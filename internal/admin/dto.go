package admin

import (
	"github.com/ogeoseo/go-api-server/internal/model"
)

type Cards struct {
	TotalParticipation int `json:"totalParticipation"`
	TotalUsers         int `json:"totalUsers"`
	MonthlyBadges      int `json:"monthlyBadges"`
	TotalPointsIssued  int `json:"totalPointsIssued"`
	MunhoCount         int `json:"munhoCount"`
}

type Activity struct {
	UserName    string `json:"userName"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type NarrationStatus struct {
	Current  int    `json:"current"`
	Total    int    `json:"total"`
	Deadline string `json:"deadline"`
}

type ContentCounts struct {
	Writings int `json:"writings"`
	Reviews  int `json:"reviews"`
}

type DashboardResponse struct {
	Cards             Cards              `json:"cards"`
	ZoneParticipation map[model.Zone]int `json:"zoneParticipation"`
	RecentActivities  []Activity         `json:"recentActivities"`
	NarrationStatus   NarrationStatus    `json:"narrationStatus"`
	ContentCounts     ContentCounts      `json:"contentCounts"`
}
