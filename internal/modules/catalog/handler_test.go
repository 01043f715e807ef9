package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockService is a mock implementation of Service.
type MockService struct {
	mock.Mock
}

func (m *MockService) ListProducts(ctx context.Context, opts Options) ([]Product, error) {
	args := m.Called(ctx, opts)
	var products []Product
	if arg0 := args.Get(0); arg0 != nil {
		products = arg0.([]Product)
	}
	return products, args.Error(1)
}

func (m *MockService) GetProduct(ctx context.Context, slug string) (*Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockService) ListCategories(ctx context.Context, topOnly bool) ([]Category, error) {
	args := m.Called(ctx, topOnly)
	var categories []Category
	if arg0 := args.Get(0); arg0 != nil {
		categories = arg0.([]Category)
	}
	return categories, args.Error(1)
}

func (m *MockService) GetCategory(ctx context.Context, slug string) (*CategoryDetail, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CategoryDetail), args.Error(1)
}

func (m *MockService) ListReviews(ctx context.Context, productID string) ([]Review, error) {
	args := m.Called(ctx, productID)
	var reviews []Review
	if arg0 := args.Get(0); arg0 != nil {
		reviews = arg0.([]Review)
	}
	return reviews, args.Error(1)
}

func setupTestServer(svc Service) *httptest.Server {
	router := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(router)
	return httptest.NewServer(router)
}

func TestHandler_ListProducts_ParsesQueryOptions(t *testing.T) {
	mockSvc := new(MockService)
	server := setupTestServer(mockSvc)
	defer server.Close()

	expected := Options{Category: "cat-mugs", Search: "travel", Sort: SortPriceLow, Featured: true}
	mockSvc.On("ListProducts", mock.Anything, expected).
		Return([]Product{{ID: "prod-007", Name: "Trail Map Travel Mug"}}, nil).Once()

	res, err := http.Get(server.URL + "/api/v1/products?category=cat-mugs&search=travel&sort=price-low&featured=true")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	var products []Product
	require.NoError(t, json.NewDecoder(res.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "prod-007", products[0].ID)

	mockSvc.AssertExpectations(t)
}

func TestHandler_ListProducts_SupersededReturnsNoContent(t *testing.T) {
	mockSvc := new(MockService)
	server := setupTestServer(mockSvc)
	defer server.Close()

	mockSvc.On("ListProducts", mock.Anything, mock.Anything).Return(nil, ErrSuperseded).Once()

	res, err := http.Get(server.URL + "/api/v1/products?search=stale")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestHandler_GetProduct_NotFound(t *testing.T) {
	mockSvc := new(MockService)
	server := setupTestServer(mockSvc)
	defer server.Close()

	mockSvc.On("GetProduct", mock.Anything, "ghost").Return(nil, ErrProductNotFound).Once()

	res, err := http.Get(server.URL + "/api/v1/products/ghost")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestHandler_ListReviews_ResolvesSlugFirst(t *testing.T) {
	mockSvc := new(MockService)
	server := setupTestServer(mockSvc)
	defer server.Close()

	mockSvc.On("GetProduct", mock.Anything, "classic-crew-tee").
		Return(&Product{ID: "prod-001", Slug: "classic-crew-tee"}, nil).Once()
	mockSvc.On("ListReviews", mock.Anything, "prod-001").
		Return([]Review{{ID: "rev-001", ProductID: "prod-001"}}, nil).Once()

	res, err := http.Get(server.URL + "/api/v1/products/classic-crew-tee/reviews")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	var reviews []Review
	require.NoError(t, json.NewDecoder(res.Body).Decode(&reviews))
	require.Len(t, reviews, 1)

	mockSvc.AssertExpectations(t)
}

func TestHandler_ListCategories_TopFlag(t *testing.T) {
	mockSvc := new(MockService)
	server := setupTestServer(mockSvc)
	defer server.Close()

	mockSvc.On("ListCategories", mock.Anything, true).
		Return([]Category{{ID: "cat-apparel"}}, nil).Once()

	res, err := http.Get(server.URL + "/api/v1/categories?top=true")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	mockSvc.AssertExpectations(t)
}
