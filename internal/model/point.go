package model

// PointType marks a ledger entry as earning or spending points.
type PointType string

const (
	PointEarn  PointType = "earn"
	PointSpend PointType = "spend"
)

// PointRecord is an append-only ledger entry loaded from points.json.
// User.CumulativePoints/AvailablePoints are stored separately and are
// not reconciled against this ledger in the read path.
type PointRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Amount       int       `json:"amount"`
	Type         PointType `json:"type"`
	Zone         *string   `json:"zone"`
	Description  string    `json:"description"`
	BalanceAfter int       `json:"balanceAfter"`
	CreatedAt    string    `json:"createdAt"`
}

// Badge marks that a user completed a zone's activity goal.
type Badge struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Zone     string `json:"zone"`
	EarnedAt string `json:"earnedAt"`
}

// MunhoBadgeCount is the number of zone badges required for the
// 문호 (literary master) honorific.
const MunhoBadgeCount = 5

// IsMunho reports whether a badge count qualifies for the honorific.
func IsMunho(badgeCount int) bool {
	return badgeCount >= MunhoBadgeCount
}
