package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
)

type stubService struct {
	result     *domain.RecommendationResult
	categories []string
	catErr     error
}

func (s *stubService) Recommend(ctx context.Context, req domain.RecommendRequest) *domain.RecommendationResult {
	return s.result
}

func (s *stubService) Plan(ctx context.Context, req domain.RecommendRequest) (*domain.RecommendationResult, error) {
	return s.result, nil
}

func (s *stubService) Estimate(ctx context.Context, req domain.EstimateRequest) (*domain.EstimateResult, error) {
	return &domain.EstimateResult{Region: domain.DefaultRegion, Estimates: []domain.SavingsEstimate{}}, nil
}

func (s *stubService) Categories(ctx context.Context) ([]string, error) {
	return s.categories, s.catErr
}

type stubPool struct{ err error }

func (p stubPool) Ping(ctx context.Context) error { return p.err }
func (p stubPool) Close()                         {}

type countingInvalidator struct{ calls int }

func (c *countingInvalidator) Invalidate() { c.calls++ }

const recommendBody = `{"terrace_size":10,"latitude":18.5,"longitude":73.8,"savings_weight":0.5,` +
	`"weight_carbon_absorption":0.5,"budget":60,"types":["Vegetables"]}`

func newStub() *stubService {
	return &stubService{
		result: &domain.RecommendationResult{
			TotalPlantsGrown:  2,
			TotalPlantSlots:   10,
			RecommendedPlants: []domain.AllocationLine{{Label: "Tomato", Category: "Vegetables", Quantity: 2}},
		},
		categories: []string{"Vegetables"},
	}
}

func serve(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.RemoteAddr = "127.0.0.1:40000"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RecommendRoutes(t *testing.T) {
	router := NewRouter("", nil, Dependencies{Recommend: newStub()})

	for _, path := range []string{"/api/v1/recommend_crops", "/recommend_crops"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(t, router, http.MethodPost, path, recommendBody, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var got domain.RecommendationResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, 2, got.TotalPlantsGrown)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
			assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
		})
	}
}

func TestRouter_CategoriesAndEstimate(t *testing.T) {
	router := NewRouter("", nil, Dependencies{Recommend: newStub()})

	rec := serve(t, router, http.MethodGet, "/api/v1/categories", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Vegetables")

	rec = serve(t, router, http.MethodPost, "/api/v1/estimate_savings",
		`{"items":[{"label":"Tomato","quantity":2}]}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRouter_RequiresKeyWhenConfigured(t *testing.T) {
	router := NewRouter("secret", nil, Dependencies{Recommend: newStub()})

	rec := serve(t, router, http.MethodPost, "/api/v1/recommend_crops", recommendBody, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(t, router, http.MethodPost, "/api/v1/recommend_crops", recommendBody,
		map[string]string{HeaderAPIKey: "secret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AdminInvalidate(t *testing.T) {
	cache := &countingInvalidator{}

	t.Run("absent without api key", func(t *testing.T) {
		router := NewRouter("", nil, Dependencies{Recommend: newStub(), CatalogCache: cache})
		rec := serve(t, router, http.MethodPost, "/api/v1/admin/cache/catalog/invalidate", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Zero(t, cache.calls)
	})

	t.Run("invalidates with api key", func(t *testing.T) {
		router := NewRouter("secret", nil, Dependencies{Recommend: newStub(), CatalogCache: cache})
		rec := serve(t, router, http.MethodPost, "/api/v1/admin/cache/catalog/invalidate", "",
			map[string]string{HeaderAPIKey: "secret"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, cache.calls)
	})
}

func TestRouter_Readiness(t *testing.T) {
	t.Run("file catalog", func(t *testing.T) {
		router := NewRouter("", nil, Dependencies{Recommend: newStub()})
		rec := serve(t, router, http.MethodGet, "/readyz", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("database down", func(t *testing.T) {
		router := NewRouter("", nil, Dependencies{DBPool: stubPool{err: errors.New("refused")}, Recommend: newStub()})
		rec := serve(t, router, http.MethodGet, "/readyz", "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("catalog down", func(t *testing.T) {
		svc := newStub()
		svc.catErr = domain.ErrDataUnavailable
		router := NewRouter("", nil, Dependencies{DBPool: stubPool{}, Recommend: svc})
		rec := serve(t, router, http.MethodGet, "/readyz", "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRouter_MetricsAndVersion(t *testing.T) {
	router := NewRouter("", nil, Dependencies{Recommend: newStub()})

	assert.Equal(t, http.StatusOK, serve(t, router, http.MethodGet, "/metrics", "", nil).Code)
	assert.Equal(t, http.StatusOK, serve(t, router, http.MethodGet, "/version", "", nil).Code)
}
