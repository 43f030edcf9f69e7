package home

// Highlight is one hero-banner entry.
type Highlight struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	LinkURL  string `json:"linkUrl"`
}

// ZoneCard is one entry of the five-zone navigation grid.
type ZoneCard struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Status string `json:"status"`
	Count  *int   `json:"count"`
	Href   string `json:"href"`
}

type RankingRow struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Points     int    `json:"points"`
}

type LCRow struct {
	Name        string `json:"name"`
	TotalPoints int    `json:"totalPoints"`
	MemberCount int    `json:"memberCount"`
}

type RecommendedBook struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	CoverImage string `json:"coverImage"`
	Category   string `json:"category"`
}

type Stats struct {
	TotalUsers    int `json:"totalUsers"`
	TotalBadges   int `json:"totalBadges"`
	TotalWritings int `json:"totalWritings"`
}

type GetHomeResponse struct {
	Highlights       []Highlight       `json:"highlights"`
	Zones            []ZoneCard        `json:"zones"`
	PersonalRanking  []RankingRow      `json:"personalRanking"`
	LCRanking        []LCRow           `json:"lcRanking"`
	RecommendedBooks []RecommendedBook `json:"recommendedBooks"`
	Stats            Stats             `json:"stats"`
}
