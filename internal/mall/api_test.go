package mall_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/ogeoseo/go-api-server/internal/mall"
	"github.com/ogeoseo/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for mall handler tests
func setupTestEnvironment(t *testing.T) *mall.MallHandler {
	t.Helper()

	store, _ := testutil.SeedFixtures(t)
	mallService := mall.NewMallService(store)
	return mall.NewMallHandler(mallService)
}

func TestListProducts_OnlyAvailable(t *testing.T) {
	// Given: Setup test environment
	mallHandler := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/mall/products", mallHandler.ListProducts)

	// When: Request the product list
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/mall/products",
	})

	// Then: Sold-out items are hidden
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response mall.ListProductsResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Products, 3)
	for _, product := range response.Products {
		assert.Equal(t, "available", product.Status)
	}
}

func TestListProducts_CategoryFilter(t *testing.T) {
	// Given: Setup test environment
	mallHandler := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/mall/products", mallHandler.ListProducts)

	// When: Filter by category
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/mall/products?category=" + url.QueryEscape("문구"),
	})

	// Then: Only that category's available items remain
	var response mall.ListProductsResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Products, 1)
	assert.Equal(t, "p1", response.Products[0].ID)
}
