package model

// Role distinguishes student participants from campaign operators.
type Role string

const (
	RoleStudent   Role = "student"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// User represents a campaign participant loaded from users.json.
// cumulativePoints/availablePoints are stored snapshots, not derived
// from the point ledger (see DESIGN.md).
type User struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	Name             string  `json:"name"`
	StudentID        *string `json:"studentId"`
	Department       string  `json:"department"`
	EnrollYear       *int    `json:"enrollYear"`
	LCID             *string `json:"lcId"`
	Role             Role    `json:"role"`
	ProfileImage     string  `json:"profileImage"`
	Title            *string `json:"title"`
	CumulativePoints int     `json:"cumulativePoints"`
	AvailablePoints  int     `json:"availablePoints"`
	CreatedAt        string  `json:"createdAt"`
}

// Moderator is a book club discussion leader (좌장).
type Moderator struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
	Department   string `json:"department"`
	EnrollYear   int    `json:"enrollYear"`
	Achievement  string `json:"achievement"`
}

// LC is a learning community whose members are ranked by aggregate points.
type LC struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Year      int      `json:"year"`
	MemberIDs []string `json:"memberIds"`
}
