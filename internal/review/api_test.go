package review_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/ogeoseo/go-api-server/internal/review"
	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
	"github.com/ogeoseo/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for review handler tests
func setupTestEnvironment(t *testing.T) *review.ReviewHandler {
	t.Helper()

	store, _ := testutil.SeedFixtures(t)
	reviewService := review.NewReviewService(store)
	return review.NewReviewHandler(reviewService)
}

func TestListReviews_NewestFirstWithJoins(t *testing.T) {
	// Given: Setup test environment
	reviewHandler := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/reviews", reviewHandler.ListReviews)

	// When: Request the full list
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/reviews",
	})

	// Then: Reviews are newest first with author and book flattened in
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response review.ListReviewsResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Reviews, 4)
	assert.Equal(t, "r1", response.Reviews[0].ID)
	assert.Equal(t, "김서연", response.Reviews[0].UserName)
	assert.Equal(t, "데미안", response.Reviews[0].BookTitle)
	assert.Equal(t, "헤르만 헤세", response.Reviews[0].BookAuthor)
}

func TestListReviews_CategoryFiltersThroughBookJoin(t *testing.T) {
	// Given: Setup test environment
	reviewHandler := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/reviews", reviewHandler.ListReviews)

	// When: Filter by a book category
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/reviews?category=" + url.QueryEscape("소설"),
	})

	// Then: Only reviews whose book is in that category remain
	var response review.ListReviewsResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Reviews, 2)
	assert.Equal(t, "r1", response.Reviews[0].ID)
	assert.Equal(t, "r4", response.Reviews[1].ID)
}

func TestGetReview_WithBookAndComments(t *testing.T) {
	// Given: Setup test environment
	reviewHandler := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/reviews/:id", reviewHandler.GetReview)

	// When: Fetch a review that has a comment
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/reviews/r2",
	})

	// Then: The book entity and commenters come along
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response review.GetReviewResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "박민지", response.UserName)
	require.NotNil(t, response.Book)
	assert.Equal(t, "코스모스", response.Book.Title)
	require.Len(t, response.Comments, 1)
	assert.Equal(t, "김서연", response.Comments[0].UserName)
}

func TestGetReview_MissingAuthorFallback(t *testing.T) {
	// Given: Setup test environment
	reviewHandler := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/reviews/:id", reviewHandler.GetReview)

	// When: Fetch the review whose author no longer exists
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/reviews/r4",
	})

	// Then: The response still succeeds with the fallback name
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response review.GetReviewResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "알 수 없음", response.UserName)
}

func TestGetReview_NotFound(t *testing.T) {
	// Given: Setup test environment
	reviewHandler := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/reviews/:id", reviewHandler.GetReview)

	// When: Fetch an unknown id
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/reviews/nope",
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "REVIEW-001", errorResponse.Code)
	assert.Equal(t, "서평을 찾을 수 없습니다.", errorResponse.Message)
}
