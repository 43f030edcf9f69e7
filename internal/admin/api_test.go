package admin_test

import (
	"net/http"
	"testing"

	"github.com/ogeoseo/go-api-server/internal/admin"
	"github.com/ogeoseo/go-api-server/internal/model"
	"github.com/ogeoseo/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for admin handler tests
func setupTestEnvironment(t *testing.T) *admin.AdminHandler {
	t.Helper()

	store, _ := testutil.SeedFixtures(t)
	cfg := testutil.NewTestConfig()
	adminService := admin.NewAdminService(store, cfg.Campaign.Month)
	return admin.NewAdminHandler(adminService)
}

func getDashboard(t *testing.T) admin.DashboardResponse {
	t.Helper()

	adminHandler := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/admin/dashboard", adminHandler.GetDashboard)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/admin/dashboard",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response admin.DashboardResponse
	testutil.ParseResponse(t, recorder, &response)
	return response
}

func TestGetDashboard_MonthlyCards(t *testing.T) {
	// When: Request the dashboard for the campaign month
	response := getDashboard(t)

	// Then: Only earn records inside the month count toward issuance,
	// spends and other months are excluded
	assert.Equal(t, 800, response.Cards.TotalPointsIssued)
	assert.Equal(t, 5, response.Cards.TotalUsers)
	assert.Equal(t, 7, response.Cards.MonthlyBadges)
	assert.Equal(t, 1, response.Cards.MunhoCount)
	assert.Equal(t, 6, response.Cards.TotalParticipation)
}

func TestGetDashboard_ZoneParticipation(t *testing.T) {
	// When: Request the dashboard
	response := getDashboard(t)

	// Then: Participation is bucketed per zone, empty zones included
	require.Len(t, response.ZoneParticipation, 5)
	assert.Equal(t, 2, response.ZoneParticipation[model.ZoneWriting])
	assert.Equal(t, 2, response.ZoneParticipation[model.ZoneReview])
	assert.Equal(t, 1, response.ZoneParticipation[model.ZoneNarration])
	assert.Equal(t, 1, response.ZoneParticipation[model.ZoneListening])
	assert.Equal(t, 0, response.ZoneParticipation[model.ZoneBookclub])
}

func TestGetDashboard_RecentActivities(t *testing.T) {
	// When: Request the dashboard
	response := getDashboard(t)

	// Then: The activity log is the point ledger newest first
	require.Len(t, response.RecentActivities, 9)
	assert.Equal(t, "김서연", response.RecentActivities[0].UserName)
	assert.Equal(t, "포인트몰 교환: 오거서 텀블러", response.RecentActivities[0].Description)
}

func TestGetDashboard_NarrationAndContentCounts(t *testing.T) {
	// When: Request the dashboard
	response := getDashboard(t)

	// Then: The ongoing round's progress and content totals are surfaced
	assert.Equal(t, 13, response.NarrationStatus.Current)
	assert.Equal(t, 20, response.NarrationStatus.Total)
	assert.Equal(t, 4, response.ContentCounts.Writings)
	assert.Equal(t, 4, response.ContentCounts.Reviews)
}
