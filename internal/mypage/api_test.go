package mypage_test

import (
	"net/http"
	"testing"

	"github.com/ogeoseo/go-api-server/internal/mypage"
	"github.com/ogeoseo/go-api-server/internal/shared/middleware"
	"github.com/ogeoseo/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/gin-gonic/gin"
)

// setupTestEnvironment creates all dependencies needed for mypage handler tests.
// The Identity middleware is mounted so the X-User-Id header is honored.
func setupTestEnvironment(t *testing.T) *gin.Engine {
	t.Helper()

	store, _ := testutil.SeedFixtures(t)
	mypageService := mypage.NewMypageService(store)
	mypageHandler := mypage.NewMypageHandler(mypageService)

	router := testutil.SetupTestRouter()
	router.Use(middleware.Identity())
	router.GET("/api/v1/mypage", mypageHandler.GetProfile)
	router.GET("/api/v1/mypage/badges", mypageHandler.GetBadges)
	router.GET("/api/v1/mypage/points", mypageHandler.GetPoints)

	return router
}

func TestGetProfile_DefaultUser(t *testing.T) {
	// Given: Setup test environment
	router := setupTestEnvironment(t)

	// When: Request the profile without an identity header
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/mypage",
	})

	// Then: The demo user's profile is aggregated
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response mypage.GetProfileResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "u1", response.User.ID)
	assert.Equal(t, "김서연", response.User.Name)
	require.NotNil(t, response.User.LCName)
	assert.Equal(t, "책벗", *response.User.LCName)

	assert.Equal(t, 1250, response.Points.Cumulative)
	assert.Equal(t, 830, response.Points.Available)
	assert.Equal(t, 2, response.Points.Rank)

	// Four of five badges: not yet a munho, stored title stays empty
	assert.Equal(t, 4, response.Badges.Count)
	assert.Equal(t, 5, response.Badges.Total)
	assert.False(t, response.Badges.IsMunho)
	assert.Nil(t, response.User.Title)

	// Recent activity is the point ledger, newest first
	require.Len(t, response.RecentActivities, 3)
	assert.Equal(t, "pt3", response.RecentActivities[0].ID)
	assert.Equal(t, "pt2", response.RecentActivities[1].ID)
	assert.Equal(t, "pt1", response.RecentActivities[2].ID)
}

func TestGetProfile_MunhoTitle(t *testing.T) {
	// Given: Setup test environment
	router := setupTestEnvironment(t)

	// When: Request the profile of the user holding all five badges
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/mypage",
		Headers: map[string]string{middleware.IdentityHeader: "u5"},
	})

	// Then: The honorific replaces the title and the rank is first
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response mypage.GetProfileResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.True(t, response.Badges.IsMunho)
	require.NotNil(t, response.User.Title)
	assert.Equal(t, "문호", *response.User.Title)
	assert.Equal(t, 1, response.Points.Rank)
}

func TestGetProfile_UnknownUser(t *testing.T) {
	// Given: Setup test environment
	router := setupTestEnvironment(t)

	// When: Request with an identity that does not exist
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/mypage",
		Headers: map[string]string{middleware.IdentityHeader: "ghost"},
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetBadges_FiveSlotCollection(t *testing.T) {
	// Given: Setup test environment
	router := setupTestEnvironment(t)

	// When: Request the badge collection of a partially complete user
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/mypage/badges",
		Headers: map[string]string{middleware.IdentityHeader: "u2"},
	})

	// Then: All five zone slots appear, earned or not
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response mypage.GetBadgesResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Badges, 5)
	assert.Equal(t, 1, response.Count)
	assert.False(t, response.IsMunho)

	earned := 0
	for _, badge := range response.Badges {
		if badge.Earned {
			earned++
			assert.NotNil(t, badge.EarnedAt)
		} else {
			assert.Nil(t, badge.EarnedAt)
		}
		assert.NotEmpty(t, badge.Name)
		assert.NotEmpty(t, badge.Icon)
	}
	assert.Equal(t, 1, earned)
}

func TestGetPoints_LedgerNewestFirst(t *testing.T) {
	// Given: Setup test environment
	router := setupTestEnvironment(t)

	// When: Request the point ledger of the demo user
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/mypage/points",
	})

	// Then: Only that user's records, newest first
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response mypage.GetPointsResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Points, 3)
	assert.Equal(t, "pt3", response.Points[0].ID)
	for _, record := range response.Points {
		assert.Equal(t, "u1", record.UserID)
	}
}
