package auth_test

import (
	"net/http"
	"testing"

	"github.com/ogeoseo/go-api-server/internal/auth"
	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
	"github.com/ogeoseo/go-api-server/internal/shared/middleware"
	"github.com/ogeoseo/go-api-server/internal/shared/testutil"
	"github.com/ogeoseo/go-api-server/internal/shared/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/gin-gonic/gin"
)

// setupTestEnvironment creates all dependencies needed for auth handler tests
func setupTestEnvironment(t *testing.T) *gin.Engine {
	t.Helper()

	store, _ := testutil.SeedFixtures(t)
	mockTokenManager := testutil.NewMockTokenManager()
	authService := auth.NewAuthService(store, mockTokenManager)
	authHandler := auth.NewAuthHandler(authService)

	router := testutil.SetupTestRouter()
	router.Use(middleware.Identity())
	router.POST("/api/v1/auth/login", authHandler.Login)
	router.GET("/api/v1/auth/me", authHandler.Me)

	return router
}

func TestLogin_Success(t *testing.T) {
	// Given: Setup test environment
	router := setupTestEnvironment(t)

	// When: Log in with a registered email and any password
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "seoyeon.kim@skku.edu",
			Password: "anything-goes",
		},
	})

	// Then: A token and the badge-joined user come back
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response auth.LoginResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "mock-access-token", response.Token)
	assert.Equal(t, "u1", response.User.ID)
	assert.Equal(t, "김서연", response.User.Name)
	assert.Equal(t, 4, response.User.BadgeCount)
	assert.Len(t, response.User.Badges, 4)
}

func TestLogin_IssuedTokenValidates(t *testing.T) {
	// Given: An auth surface backed by the real signing manager
	store, _ := testutil.SeedFixtures(t)
	tokenManager := token.NewJWTManager(testutil.NewTestConfig())
	authService := auth.NewAuthService(store, tokenManager)
	authHandler := auth.NewAuthHandler(authService)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/login", authHandler.Login)

	// When: Log in and validate the issued token
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "seoyeon.kim@skku.edu",
			Password: "anything-goes",
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response auth.LoginResponse
	testutil.ParseResponse(t, recorder, &response)

	claims, err := tokenManager.ValidateToken(response.Token)

	// Then: The claims match the logged-in user
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "seoyeon.kim@skku.edu", claims.Email)
	assert.Equal(t, token.ACCESS, claims.TokenType)
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Given: Setup test environment
	router := setupTestEnvironment(t)

	// When: Log in with an unregistered email
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "nobody@skku.edu",
			Password: "password123",
		},
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-001", errorResponse.Code)
	assert.Equal(t, "사용자를 찾을 수 없습니다.", errorResponse.Message)
}

func TestLogin_EmptyPassword(t *testing.T) {
	// Given: Setup test environment
	router := setupTestEnvironment(t)

	// When: Log in without a password
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email: "seoyeon.kim@skku.edu",
		},
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-002", errorResponse.Code)
	assert.Equal(t, "비밀번호를 입력해주세요.", errorResponse.Message)
}

func TestLogin_ValidationError_InvalidEmail(t *testing.T) {
	// Given: Setup test environment
	router := setupTestEnvironment(t)

	// When: Log in with a malformed email
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "not-an-email",
			Password: "password123",
		},
	})

	// Then: Verify validation error
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.NotEmpty(t, errorResponse.Message)
}

func TestMe_HeaderIdentity(t *testing.T) {
	// Given: Setup test environment
	router := setupTestEnvironment(t)

	// When: Request the profile as another user
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/auth/me",
		Headers: map[string]string{middleware.IdentityHeader: "u5"},
	})

	// Then: That user's profile with badges and rank comes back
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response auth.MeResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "u5", response.ID)
	assert.Equal(t, 5, response.BadgeCount)
	assert.Equal(t, 1, response.Rank)
}

func TestMe_UnknownIdentity(t *testing.T) {
	// Given: Setup test environment
	router := setupTestEnvironment(t)

	// When: Request the profile with an identity nobody owns
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/auth/me",
		Headers: map[string]string{middleware.IdentityHeader: "ghost"},
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-003", errorResponse.Code)
	assert.Equal(t, "인증이 필요합니다.", errorResponse.Message)
}
