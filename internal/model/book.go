package model

// Book is a campaign reading-list entry loaded from books.json.
type Book struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Publisher   string  `json:"publisher"`
	Category    string  `json:"category"`
	CoverImage  string  `json:"coverImage"`
	Description string  `json:"description"`
	InLibrary   bool    `json:"inLibrary"`
	LoanURL     *string `json:"loanUrl"`
	CreatedAt   string  `json:"createdAt"`
}

// BookSummary is the compact join shape attached to book clubs and narrations.
type BookSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	CoverImage string `json:"coverImage"`
}

// Summary projects a book into its join shape.
func (b Book) Summary() BookSummary {
	return BookSummary{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		CoverImage: b.CoverImage,
	}
}
