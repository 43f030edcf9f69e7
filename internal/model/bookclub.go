package model

// BookClubStatus follows the recruiting → active → completed lifecycle.
type BookClubStatus string

const (
	BookClubRecruiting BookClubStatus = "recruiting"
	BookClubActive     BookClubStatus = "active"
	BookClubCompleted  BookClubStatus = "completed"
)

// BookClub is a monthly reading group loaded from bookclubs.json.
// currentMembers ≤ capacity is guaranteed by the fixture, never enforced here.
type BookClub struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Month           string         `json:"month"`
	ModeratorID     string         `json:"moderatorId"`
	BookID          string         `json:"bookId"`
	Description     string         `json:"description"`
	Capacity        int            `json:"capacity"`
	CurrentMembers  int            `json:"currentMembers"`
	StartDate       string         `json:"startDate"`
	EndDate         string         `json:"endDate"`
	DiscussDate     string         `json:"discussDate"`
	DiscussLocation string         `json:"discussLocation"`
	Status          BookClubStatus `json:"status"`
	CreatedAt       string         `json:"createdAt"`
}
