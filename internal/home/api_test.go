package home_test

import (
	"net/http"
	"testing"

	"github.com/ogeoseo/go-api-server/internal/home"
	"github.com/ogeoseo/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for home handler tests
func setupTestEnvironment(t *testing.T) *home.HomeHandler {
	t.Helper()

	store, _ := testutil.SeedFixtures(t)
	homeService := home.NewHomeService(store)
	return home.NewHomeHandler(homeService)
}

func getHome(t *testing.T) home.GetHomeResponse {
	t.Helper()

	homeHandler := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/home", homeHandler.GetHome)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/home",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response home.GetHomeResponse
	testutil.ParseResponse(t, recorder, &response)
	return response
}

func TestGetHome_Highlights(t *testing.T) {
	// When: Request the dashboard
	response := getHome(t)

	// Then: The hero carries book club, narration, and popular writing
	require.Len(t, response.Highlights, 3)
	assert.Equal(t, "bookclub", response.Highlights[0].Type)
	assert.Contains(t, response.Highlights[0].Title, "한지원")
	assert.Equal(t, "narration", response.Highlights[1].Type)
	assert.Contains(t, response.Highlights[1].Title, "어린 왕자")
	assert.Equal(t, "writing", response.Highlights[2].Type)
	// The most liked writing is quoted with its author
	assert.Contains(t, response.Highlights[2].Subtitle, "이준호")
}

func TestGetHome_FiveZoneCards(t *testing.T) {
	// When: Request the dashboard
	response := getHome(t)

	// Then: All five zones appear in navigation order
	require.Len(t, response.Zones, 5)
	assert.Equal(t, "bookclub", response.Zones[0].ID)
	assert.Equal(t, "narration", response.Zones[1].ID)
	assert.Equal(t, "listening", response.Zones[2].ID)
	assert.Equal(t, "writing", response.Zones[3].ID)
	assert.Equal(t, "review", response.Zones[4].ID)

	// The free-participation zone has no counter
	assert.Nil(t, response.Zones[2].Count)
	require.NotNil(t, response.Zones[3].Count)
	assert.Equal(t, 4, *response.Zones[3].Count)
}

func TestGetHome_TopRankings(t *testing.T) {
	// When: Request the dashboard
	response := getHome(t)

	// Then: The personal top five and LC top three are embedded
	require.Len(t, response.PersonalRanking, 5)
	assert.Equal(t, 1, response.PersonalRanking[0].Rank)
	assert.Equal(t, "정다은", response.PersonalRanking[0].Name)

	require.Len(t, response.LCRanking, 3)
	assert.Equal(t, "책벗", response.LCRanking[0].Name)
	assert.Equal(t, 3770, response.LCRanking[0].TotalPoints)
}

func TestGetHome_RecommendedBooksAndStats(t *testing.T) {
	// When: Request the dashboard
	response := getHome(t)

	// Then: Four recommendations and campaign stats
	require.Len(t, response.RecommendedBooks, 4)
	assert.Equal(t, "데미안", response.RecommendedBooks[0].Title)

	assert.Equal(t, 5, response.Stats.TotalUsers)
	assert.Equal(t, 12, response.Stats.TotalBadges)
	assert.Equal(t, 4, response.Stats.TotalWritings)
}
