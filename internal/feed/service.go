package feed

import (
	"context"
	"fmt"

	"github.com/ogeoseo/go-api-server/internal/model"
	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
	"github.com/ogeoseo/go-api-server/internal/shared/query"
)

// Operator byline for entries without an individual author.
const (
	operatorName       = "오거서 운영팀"
	operatorDepartment = "학술정보관"
)

type FeedService struct {
	store *fixture.Store
}

func NewFeedService(store *fixture.Store) *FeedService {
	return &FeedService{
		store: store,
	}
}

// sources holds everything the feed collectors draw from.
type sources struct {
	users      []model.User
	books      []model.Book
	comments   []model.Comment
	counts     map[model.CommentTarget]int
	writings   []model.Writing
	reviews    []model.Review
	narrations model.NarrationData
	clubs      []model.BookClub
}

// GetFeed unions the four activity sources, orders them newest first,
// paginates, and attaches comment previews to the returned page only.
func (s *FeedService) GetFeed(ctx context.Context, page, limit int) (*query.Page[Item], error) {
	src, err := s.loadSources()
	if err != nil {
		return nil, err
	}

	// Collectors per target kind; declared order fixes tie order.
	collectors := []func(*sources) []Item{
		collectWritings,
		collectReviews,
		collectNarrations,
		collectBookClubs,
	}

	items := []Item{}
	for _, collect := range collectors {
		items = append(items, collect(src)...)
	}

	items = query.SortByTimeDesc(items, func(i Item) string { return i.CreatedAt })

	result := query.Paginate(items, page, limit)
	for i := range result.Items {
		result.Items[i].CommentPreviews = s.previews(src, result.Items[i])
	}

	return &result, nil
}

func (s *FeedService) loadSources() (*sources, error) {
	src := &sources{}
	var err error

	if src.users, err = s.store.Users(); err != nil {
		return nil, fmt.Errorf("사용자 목록 조회 실패: %w", err)
	}
	if src.books, err = s.store.Books(); err != nil {
		return nil, fmt.Errorf("도서 목록 조회 실패: %w", err)
	}
	if src.comments, err = s.store.Comments(); err != nil {
		return nil, fmt.Errorf("댓글 목록 조회 실패: %w", err)
	}
	if src.writings, err = s.store.Writings(); err != nil {
		return nil, fmt.Errorf("필사 목록 조회 실패: %w", err)
	}
	if src.reviews, err = s.store.Reviews(); err != nil {
		return nil, fmt.Errorf("서평 목록 조회 실패: %w", err)
	}
	if src.narrations, err = s.store.Narrations(); err != nil {
		return nil, fmt.Errorf("낭독 데이터 조회 실패: %w", err)
	}
	if src.clubs, err = s.store.BookClubs(); err != nil {
		return nil, fmt.Errorf("북클럽 목록 조회 실패: %w", err)
	}

	src.counts = model.CountCommentsByTarget(src.comments)
	return src, nil
}

func (s *FeedService) previews(src *sources, item Item) []CommentPreview {
	target := model.CommentTarget{Kind: item.Type, ID: item.ID}

	previews := []CommentPreview{}
	for _, c := range model.CommentsFor(src.comments, target) {
		if len(previews) == previewLimit {
			break
		}

		preview := CommentPreview{UserName: query.UnknownName, Content: c.Content}
		if user, ok := query.FindByID(src.users, func(u model.User) string { return u.ID }, c.UserID); ok {
			preview.UserName = user.Name
		}
		previews = append(previews, preview)
	}
	return previews
}

func userByline(users []model.User, userID string) (string, string) {
	if user, ok := query.FindByID(users, func(u model.User) string { return u.ID }, userID); ok {
		return user.Name, user.Department
	}
	return query.UnknownName, ""
}

func collectWritings(src *sources) []Item {
	items := []Item{}
	for _, w := range src.writings {
		name, dept := userByline(src.users, w.UserID)
		items = append(items, Item{
			ID:             w.ID,
			Type:           model.TargetWriting,
			Title:          fmt.Sprintf("%s — 필사", w.BookTitle),
			Content:        w.Excerpt,
			UserName:       name,
			UserDepartment: dept,
			CreatedAt:      w.CreatedAt,
			Likes:          w.Likes,
			CommentCount:   src.counts[model.CommentTarget{Kind: model.TargetWriting, ID: w.ID}],
			DetailURL:      "/writing/" + w.ID,
			BookTitle:      w.BookTitle,
		})
	}
	return items
}

func collectReviews(src *sources) []Item {
	items := []Item{}
	for _, r := range src.reviews {
		name, dept := userByline(src.users, r.UserID)
		rating := r.Rating
		item := Item{
			ID:             r.ID,
			Type:           model.TargetReview,
			Title:          r.Title,
			Content:        r.Summary,
			UserName:       name,
			UserDepartment: dept,
			CreatedAt:      r.CreatedAt,
			Likes:          r.Likes,
			CommentCount:   src.counts[model.CommentTarget{Kind: model.TargetReview, ID: r.ID}],
			DetailURL:      "/review/" + r.ID,
			Rating:         &rating,
		}
		if book, ok := query.FindByID(src.books, func(b model.Book) string { return b.ID }, r.BookID); ok {
			item.BookTitle = book.Title
		}
		items = append(items, item)
	}
	return items
}

func collectNarrations(src *sources) []Item {
	bookTitle := ""
	if book, ok := query.FindByID(src.books, func(b model.Book) string { return b.ID }, src.narrations.Current.BookID); ok {
		bookTitle = book.Title
	}

	items := []Item{}
	for _, sub := range src.narrations.Submissions {
		name, dept := userByline(src.users, sub.UserID)
		items = append(items, Item{
			ID:             sub.ID,
			Type:           model.TargetNarration,
			Title:          fmt.Sprintf("낭독: %s", bookTitle),
			Content:        fmt.Sprintf("%s 구간 낭독 (%d분 %d초)", sub.Section, sub.Duration/60, sub.Duration%60),
			UserName:       name,
			UserDepartment: dept,
			CreatedAt:      sub.CreatedAt,
			DetailURL:      "/narration",
			BookTitle:      bookTitle,
		})
	}
	return items
}

func collectBookClubs(src *sources) []Item {
	items := []Item{}
	for _, club := range src.clubs {
		content := club.Description
		if len([]rune(content)) > 100 {
			content = string([]rune(content)[:100]) + "..."
		}

		item := Item{
			ID:             club.ID,
			Type:           model.TargetBookclub,
			Title:          club.Title,
			Content:        content,
			UserName:       operatorName,
			UserDepartment: operatorDepartment,
			CreatedAt:      club.CreatedAt,
			DetailURL:      "/bookclub/" + club.ID,
		}
		if book, ok := query.FindByID(src.books, func(b model.Book) string { return b.ID }, club.BookID); ok {
			item.BookTitle = book.Title
		}
		items = append(items, item)
	}
	return items
}
