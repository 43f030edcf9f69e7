package narration_test

import (
	"net/http"
	"testing"

	"github.com/ogeoseo/go-api-server/internal/narration"
	"github.com/ogeoseo/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for narration handler tests
func setupTestEnvironment(t *testing.T) *narration.NarrationHandler {
	t.Helper()

	store, _ := testutil.SeedFixtures(t)
	narrationService := narration.NewNarrationService(store)
	return narration.NewNarrationHandler(narrationService)
}

func TestGetCurrent_WithBookJoin(t *testing.T) {
	// Given: Setup test environment
	narrationHandler := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/narrations/current", narrationHandler.GetCurrent)

	// When: Request this month's round
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/narrations/current",
	})

	// Then: The round carries its book summary
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response narration.CurrentResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "n1", response.ID)
	assert.Equal(t, 13, response.CurrentParticipants)
	require.NotNil(t, response.Book)
	assert.Equal(t, "어린 왕자", response.Book.Title)
}

func TestGetArchive_PublishedRounds(t *testing.T) {
	// Given: Setup test environment
	narrationHandler := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/narrations/archive", narrationHandler.GetArchive)

	// When: Request the audiobook archive
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/narrations/archive",
	})

	// Then: Every published round comes with its book
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response narration.ArchiveResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Archive, 2)
	require.NotNil(t, response.Archive[0].Book)
	assert.Equal(t, "데미안", response.Archive[0].Book.Title)
	require.NotNil(t, response.Archive[1].Book)
	assert.Equal(t, "코스모스", response.Archive[1].Book.Title)
}
