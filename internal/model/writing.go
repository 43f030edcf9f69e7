package model

// Writing is a manuscript transcription (필사) post loaded from writings.json.
type Writing struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	BookTitle  string  `json:"bookTitle"`
	BookAuthor string  `json:"bookAuthor"`
	Excerpt    string  `json:"excerpt"`
	ImageURL   string  `json:"imageUrl"`
	Comment    *string `json:"comment"`
	Likes      int     `json:"likes"`
	IsBanner   bool    `json:"isBanner"`
	CreatedAt  string  `json:"createdAt"`
}

// Review is a book review (서평) loaded from reviews.json.
type Review struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	BookID      string `json:"bookId"`
	Rating      int    `json:"rating"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Summary     string `json:"summary"`
	Likes       int    `json:"likes"`
	IsExcellent bool   `json:"isExcellent"`
	CreatedAt   string `json:"createdAt"`
}
