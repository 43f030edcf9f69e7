package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ogeoseo/go-api-server/internal/model"
)

// Store reads entity collections from JSON documents under a fixture
// directory. Every accessor re-reads its file, so each response reflects
// the on-disk snapshot at read time. There is no cache to invalidate and
// no write path; concurrent readers need no coordination.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory must exist and contain
// the users collection; a missing fixture set is a startup failure.
func New(dir string) (*Store, error) {
	s := &Store{dir: dir}

	if _, err := os.Stat(filepath.Join(dir, "users.json")); err != nil {
		return nil, fmt.Errorf("픽스처 디렉토리 확인 실패: %w", err)
	}

	slog.Info("픽스처 저장소 준비 완료", "dir", dir)
	return s, nil
}

// Dir returns the fixture directory path.
func (s *Store) Dir() string {
	return s.dir
}

// HealthCheck verifies the fixture set is still readable.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var users []model.User
	if err := s.read("users.json", &users); err != nil {
		return fmt.Errorf("픽스처 상태 확인 실패: %w", err)
	}
	return nil
}

func (s *Store) read(name string, v any) error {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("픽스처 읽기 실패 (%s): %w", name, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("픽스처 파싱 실패 (%s): %w", name, err)
	}
	return nil
}

func (s *Store) Users() ([]model.User, error) {
	var users []model.User
	err := s.read("users.json", &users)
	return users, err
}

func (s *Store) Books() ([]model.Book, error) {
	var books []model.Book
	err := s.read("books.json", &books)
	return books, err
}

func (s *Store) Moderators() ([]model.Moderator, error) {
	var moderators []model.Moderator
	err := s.read("moderators.json", &moderators)
	return moderators, err
}

func (s *Store) BookClubs() ([]model.BookClub, error) {
	var clubs []model.BookClub
	err := s.read("bookclubs.json", &clubs)
	return clubs, err
}

func (s *Store) Narrations() (model.NarrationData, error) {
	var data model.NarrationData
	err := s.read("narrations.json", &data)
	return data, err
}

func (s *Store) Writings() ([]model.Writing, error) {
	var writings []model.Writing
	err := s.read("writings.json", &writings)
	return writings, err
}

func (s *Store) Reviews() ([]model.Review, error) {
	var reviews []model.Review
	err := s.read("reviews.json", &reviews)
	return reviews, err
}

func (s *Store) Points() ([]model.PointRecord, error) {
	var points []model.PointRecord
	err := s.read("points.json", &points)
	return points, err
}

func (s *Store) Badges() ([]model.Badge, error) {
	var badges []model.Badge
	err := s.read("badges.json", &badges)
	return badges, err
}

func (s *Store) MallProducts() ([]model.MallProduct, error) {
	var products []model.MallProduct
	err := s.read("mall-products.json", &products)
	return products, err
}

func (s *Store) LCs() ([]model.LC, error) {
	var lcs []model.LC
	err := s.read("lcs.json", &lcs)
	return lcs, err
}

func (s *Store) Comments() ([]model.Comment, error) {
	var comments []model.Comment
	err := s.read("comments.json", &comments)
	return comments, err
}

func (s *Store) EmotionMappings() ([]model.EmotionBookMapping, error) {
	var mappings []model.EmotionBookMapping
	err := s.read("emotion-book-mappings.json", &mappings)
	return mappings, err
}

func (s *Store) Listenings() ([]model.ListeningRecord, error) {
	var listenings []model.ListeningRecord
	err := s.read("listenings.json", &listenings)
	return listenings, err
}

func (s *Store) ListeningResponses() (model.ListeningResponseData, error) {
	var data model.ListeningResponseData
	err := s.read("listening-responses.json", &data)
	return data, err
}
