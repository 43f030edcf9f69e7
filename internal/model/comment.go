package model

// TargetKind identifies which collection a comment's targetId refers to.
type TargetKind string

const (
	TargetWriting   TargetKind = "writing"
	TargetReview    TargetKind = "review"
	TargetNarration TargetKind = "narration"
	TargetBookclub  TargetKind = "bookclub"
)

// CommentTarget is the resolved polymorphic reference of a comment.
type CommentTarget struct {
	Kind TargetKind
	ID   string
}

// Comment is loaded from comments.json. TargetType/TargetID form a
// string-tagged union; use Target for typed access.
type Comment struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt"`
}

// Target resolves the comment's tagged reference.
func (c Comment) Target() CommentTarget {
	return CommentTarget{Kind: TargetKind(c.TargetType), ID: c.TargetID}
}

// CommentsFor returns the comments attached to the given target, in
// fixture order.
func CommentsFor(comments []Comment, target CommentTarget) []Comment {
	var matched []Comment
	for _, c := range comments {
		if c.Target() == target {
			matched = append(matched, c)
		}
	}
	return matched
}

// CountCommentsByTarget groups comment counts by resolved target.
func CountCommentsByTarget(comments []Comment) map[CommentTarget]int {
	counts := make(map[CommentTarget]int, len(comments))
	for _, c := range comments {
		counts[c.Target()]++
	}
	return counts
}
