package ranking

// PersonalEntry is one student's leaderboard row. Ranks are positional:
// ties in points still receive consecutive distinct ranks.
type PersonalEntry struct {
	Rank             int    `json:"rank"`
	UserID           string `json:"userId"`
	Name             string `json:"name"`
	Department       string `json:"department"`
	EnrollYear       *int   `json:"enrollYear"`
	CumulativePoints int    `json:"cumulativePoints"`
	BadgeCount       int    `json:"badgeCount"`
	IsMunho          bool   `json:"isMunho"`
}

// LCEntry aggregates a learning community's member points.
type LCEntry struct {
	Rank        int    `json:"rank"`
	LCID        string `json:"lcId"`
	Name        string `json:"name"`
	TotalPoints int    `json:"totalPoints"`
	AvgPoints   int    `json:"avgPoints"`
	MemberCount int    `json:"memberCount"`
}

type RankingResponse struct {
	PersonalRanking       []PersonalEntry `json:"personalRanking"`
	LCRanking             []LCEntry       `json:"lcRanking"`
	ScholarshipCandidates []PersonalEntry `json:"scholarshipCandidates"`
}
