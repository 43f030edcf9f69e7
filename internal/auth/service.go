package auth

import (
	"context"
	"fmt"

	"github.com/ogeoseo/go-api-server/internal/model"
	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
	"github.com/ogeoseo/go-api-server/internal/shared/logger"
	"github.com/ogeoseo/go-api-server/internal/shared/query"
	"github.com/ogeoseo/go-api-server/internal/shared/token"
)

type AuthService struct {
	store        *fixture.Store
	tokenManager token.Manager
}

func NewAuthService(store *fixture.Store, tokenManager token.Manager) *AuthService {
	return &AuthService{
		store:        store,
		tokenManager: tokenManager,
	}
}

// Login is the demo sign-in: the email must exist in the fixture set and
// any non-empty password is accepted. A signed token is issued for the
// client's benefit only; no route verifies it.
func (s *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	users, err := s.store.Users()
	if err != nil {
		return nil, fmt.Errorf("사용자 목록 조회 실패: %w", err)
	}

	user, ok := query.FirstMatch(users, func(u model.User) bool { return u.Email == request.Email })
	if !ok {
		return nil, fmt.Errorf("가입되지 않은 이메일입니다 %w", ErrUserNotFound)
	}

	if request.Password == "" {
		return nil, fmt.Errorf("비밀번호가 비어 있습니다 %w", ErrPasswordRequired)
	}

	badgeZones, err := s.badgeZones(user.ID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokenManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("토큰 발급 실패: %w", err)
	}

	logger.FromContext(ctx).Info("로그인 성공",
		"user_id", user.ID,
		"email", logger.MaskEmail(user.Email),
	)

	return &LoginResponse{
		User: LoginUser{
			User:       user,
			Badges:     badgeZones,
			BadgeCount: len(badgeZones),
		},
		Token: accessToken,
	}, nil
}

// Me resolves the identity header into the user's profile with badge
// summary and positional rank.
func (s *AuthService) Me(ctx context.Context, userID string) (*MeResponse, error) {
	users, err := s.store.Users()
	if err != nil {
		return nil, fmt.Errorf("사용자 목록 조회 실패: %w", err)
	}

	user, ok := query.FindByID(users, func(u model.User) string { return u.ID }, userID)
	if !ok {
		return nil, fmt.Errorf("알 수 없는 사용자입니다 userID=%s %w", userID, ErrUnauthenticated)
	}

	badgeZones, err := s.badgeZones(userID)
	if err != nil {
		return nil, err
	}

	students := query.Filter(users, func(u model.User) bool { return u.Role == model.RoleStudent })
	students = query.SortByIntDesc(students, func(u model.User) int { return u.CumulativePoints })
	rank := 0
	for i, u := range students {
		if u.ID == userID {
			rank = i + 1
			break
		}
	}

	return &MeResponse{
		User:       user,
		Badges:     badgeZones,
		BadgeCount: len(badgeZones),
		Rank:       rank,
	}, nil
}

func (s *AuthService) badgeZones(userID string) ([]string, error) {
	badges, err := s.store.Badges()
	if err != nil {
		return nil, fmt.Errorf("배지 목록 조회 실패: %w", err)
	}

	zones := []string{}
	for _, b := range badges {
		if b.UserID == userID {
			zones = append(zones, b.Zone)
		}
	}
	return zones, nil
}
