package bookclub_test

import (
	"net/http"
	"testing"

	"github.com/ogeoseo/go-api-server/internal/bookclub"
	sharedError "github.com/ogeoseo/go-api-server/internal/shared/error"
	"github.com/ogeoseo/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for book club handler tests
func setupTestEnvironment(t *testing.T) *bookclub.BookClubHandler {
	t.Helper()

	store, _ := testutil.SeedFixtures(t)
	bookClubService := bookclub.NewBookClubService(store)
	return bookclub.NewBookClubHandler(bookClubService)
}

func TestListBookClubs_SplitsCurrentAndArchive(t *testing.T) {
	// Given: Setup test environment
	bookClubHandler := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/bookclubs", bookClubHandler.ListBookClubs)

	// When: Request the club list
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/bookclubs",
	})

	// Then: Recruiting/active clubs are current, completed clubs are archive
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response bookclub.ListBookClubsResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Current, 2)
	require.Len(t, response.Archive, 2)

	// Book and moderator summaries are joined onto each item
	require.NotNil(t, response.Current[0].Book)
	assert.Equal(t, "데미안", response.Current[0].Book.Title)
	require.NotNil(t, response.Current[0].Moderator)
	assert.Equal(t, "한지원", response.Current[0].Moderator.Name)
}

func TestListBookClubs_MissingModeratorIsNull(t *testing.T) {
	// Given: Setup test environment
	bookClubHandler := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/bookclubs", bookClubHandler.ListBookClubs)

	// When: Request the club list
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/bookclubs",
	})

	// Then: The archive club pointing at a deleted moderator keeps a null join
	var response bookclub.ListBookClubsResponse
	testutil.ParseResponse(t, recorder, &response)

	var orphan *bookclub.ListItem
	for i := range response.Archive {
		if response.Archive[i].ID == "bc4" {
			orphan = &response.Archive[i]
		}
	}
	require.NotNil(t, orphan)
	assert.Nil(t, orphan.Moderator)
	require.NotNil(t, orphan.Book)
	assert.Equal(t, "어린 왕자", orphan.Book.Title)
}

func TestGetBookClub_Detail(t *testing.T) {
	// Given: Setup test environment
	bookClubHandler := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/bookclubs/:id", bookClubHandler.GetBookClub)

	// When: Fetch a single club
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/bookclubs/bc1",
	})

	// Then: Full book and moderator entities are attached
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response bookclub.GetBookClubResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "데미안 깊이 읽기", response.Title)
	require.NotNil(t, response.Book)
	assert.Equal(t, "헤르만 헤세", response.Book.Author)
	require.NotNil(t, response.Moderator)
	assert.Equal(t, "2025 독서토론대회 대상", response.Moderator.Achievement)
}

func TestGetBookClub_NotFound(t *testing.T) {
	// Given: Setup test environment
	bookClubHandler := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/bookclubs/:id", bookClubHandler.GetBookClub)

	// When: Fetch an unknown id
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/bookclubs/nope",
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "BOOKCLUB-001", errorResponse.Code)
	assert.Equal(t, "북클럽을 찾을 수 없습니다.", errorResponse.Message)
}
