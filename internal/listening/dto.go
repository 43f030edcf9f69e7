package listening

import (
	"github.com/ogeoseo/go-api-server/internal/model"
)

type AnalyzeRequest struct {
	SongTitle  string `json:"songTitle"`
	SongArtist string `json:"songArtist"`
	Lyrics     string `json:"lyrics"`
}

// MatchedExcerpt is an emotion mapping joined with its book.
type MatchedExcerpt struct {
	BookID     string  `json:"bookId"`
	BookTitle  string  `json:"bookTitle"`
	BookAuthor string  `json:"bookAuthor"`
	CoverImage string  `json:"coverImage"`
	InLibrary  bool    `json:"inLibrary"`
	LoanURL    *string `json:"loanUrl"`
	Excerpt    string  `json:"excerpt"`
	Page       string  `json:"page"`
}

type AnalyzeResponse struct {
	SongTitle       string                `json:"songTitle"`
	SongArtist      string                `json:"songArtist"`
	Lyrics          string                `json:"lyrics"`
	Analysis        model.EmotionAnalysis `json:"analysis"`
	MatchedExcerpts []MatchedExcerpt      `json:"matchedExcerpts"`
}

// PlaylistItem is a listening record whose book excerpts carry book joins.
type PlaylistItem struct {
	model.ListeningRecord
	MatchedBookExcerpts []PlaylistExcerpt `json:"matchedBookExcerpts"`
}

type PlaylistExcerpt struct {
	model.ListeningBookMatch
	BookTitle  string `json:"bookTitle"`
	BookAuthor string `json:"bookAuthor"`
	CoverImage string `json:"coverImage"`
	InLibrary  bool   `json:"inLibrary"`
}

type PlaylistResponse struct {
	Playlist []PlaylistItem `json:"playlist"`
}
