package model

// NarrationData is the narrations.json document: a single current round,
// its submissions, and the published archive.
type NarrationData struct {
	Current     NarrationRound        `json:"current"`
	Submissions []NarrationSubmission `json:"submissions"`
	Archive     []NarrationArchive    `json:"archive"`
}

// NarrationRound is the monthly group-recording round.
type NarrationRound struct {
	ID                  string `json:"id"`
	Month               string `json:"month"`
	BookID              string `json:"bookId"`
	Section             string `json:"section"`
	PageRange           string `json:"pageRange"`
	Description         string `json:"description"`
	Deadline            string `json:"deadline"`
	TotalParticipants   int    `json:"totalParticipants"`
	CurrentParticipants int    `json:"currentParticipants"`
	Status              string `json:"status"`
	CreatedAt           string `json:"createdAt"`
}

// NarrationSubmission is a participant's recorded section.
type NarrationSubmission struct {
	ID          string `json:"id"`
	NarrationID string `json:"narrationId"`
	UserID      string `json:"userId"`
	Section     string `json:"section"`
	AudioURL    string `json:"audioUrl"`
	Duration    int    `json:"duration"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// NarrationArchive is a completed, published audiobook round.
type NarrationArchive struct {
	ID                string `json:"id"`
	Month             string `json:"month"`
	BookID            string `json:"bookId"`
	Title             string `json:"title"`
	Section           string `json:"section"`
	TotalParticipants int    `json:"totalParticipants"`
	AudioURL          string `json:"audioUrl"`
	Duration          int    `json:"duration"`
	PublishedAt       string `json:"publishedAt"`
}
