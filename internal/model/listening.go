package model

// EmotionBookMapping links an analyzed mood to a book excerpt,
// loaded from emotion-book-mappings.json.
type EmotionBookMapping struct {
	ID              string   `json:"id"`
	EmotionKeywords []string `json:"emotionKeywords"`
	Mood            string   `json:"mood"`
	BookID          string   `json:"bookId"`
	Excerpt         string   `json:"excerpt"`
	Page            string   `json:"page"`
}

// ListeningRecord is a published song-to-book match on the playlist,
// loaded from listenings.json.
type ListeningRecord struct {
	ID                  string               `json:"id"`
	UserID              string               `json:"userId"`
	SongTitle           string               `json:"songTitle"`
	SongArtist          string               `json:"songArtist"`
	YoutubeURL          string               `json:"youtubeUrl"`
	Lyrics              string               `json:"lyrics"`
	Emotions            []string             `json:"emotions"`
	Mood                string               `json:"mood"`
	MatchedBookExcerpts []ListeningBookMatch `json:"matchedBookExcerpts"`
	CreatedAt           string               `json:"createdAt"`
}

// ListeningBookMatch is a single excerpt reference inside a listening record.
type ListeningBookMatch struct {
	BookID  string `json:"bookId"`
	Excerpt string `json:"excerpt"`
	Page    string `json:"page"`
}

// EmotionAnalysis is the canned analysis block of a listening response.
type EmotionAnalysis struct {
	EmotionKeywords []string `json:"emotionKeywords"`
	Mood            string   `json:"mood"`
	EmotionClass    string   `json:"emotionClass"`
	Description     string   `json:"description"`
}

// ListeningTrigger holds the keyword list that selects a response.
type ListeningTrigger struct {
	Keywords []string `json:"keywords"`
}

// ListeningResponse is one (trigger, result) rule of the analyzer table.
// Rules are evaluated in declared order; the first match wins.
type ListeningResponse struct {
	Trigger    ListeningTrigger `json:"trigger"`
	Analysis   EmotionAnalysis  `json:"analysis"`
	MappingIDs []string         `json:"mappingIds"`
}

// ListeningDefaultResponse is returned when no trigger matches.
type ListeningDefaultResponse struct {
	Analysis   EmotionAnalysis `json:"analysis"`
	MappingIDs []string        `json:"mappingIds"`
}

// ListeningResponseData is the listening-responses.json document.
type ListeningResponseData struct {
	Responses       []ListeningResponse      `json:"responses"`
	DefaultResponse ListeningDefaultResponse `json:"defaultResponse"`
}
