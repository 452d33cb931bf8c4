package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/greenverse/greenscore/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.Categories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Categories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_Assess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/assessments", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var params AssessParams
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "Organic cotton t-shirt", params.Title)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.Assessment{
			Category: domain.CategoryTShirt,
			CarbonKg: 3.5,
			Score:    78,
			Policy:   "default",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	a, err := c.Assess(context.Background(), &AssessParams{
		Title: "Organic cotton t-shirt",
		Price: 24.99,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryTShirt, a.Category)
	assert.Equal(t, 78, a.Score)
}

func TestClient_Alternatives(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/alternatives", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(AlternativesResponse{
			Category:     domain.CategoryTShirt,
			CurrentScore: 50,
			Tier:         "better_in_budget",
			Alternatives: []domain.AlternativeRecord{{ID: "a1", Title: "Organic Tee"}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Alternatives(context.Background(), &AlternativesParams{Title: "cotton t-shirt"})
	require.NoError(t, err)
	assert.Equal(t, "better_in_budget", resp.Tier)
	require.Len(t, resp.Alternatives, 1)
	assert.Equal(t, "a1", resp.Alternatives[0].ID)
}

func TestClient_CategoryBenchmarks(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/categories/jeans/benchmarks", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(CategoryInfo{
			Key:          domain.CategoryJeans,
			BaseEmission: 12.5,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	info, err := c.CategoryBenchmarks(context.Background(), "jeans")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryJeans, info.Key)
	assert.InDelta(t, 12.5, info.BaseEmission, 0.001)
}

func TestClient_CatalogStatsAndReload(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/catalog/stats":
			_ = json.NewEncoder(w).Encode(CatalogStats{
				Total:       12,
				PerCategory: map[domain.CategoryKey]int{domain.CategoryTShirt: 12},
			})
		case "/api/v1/catalog/reload":
			assert.Equal(t, http.MethodPost, r.Method)
			_ = json.NewEncoder(w).Encode(map[string]int{"total": 12})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	stats, err := c.GetCatalogStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.Total)

	total, err := c.ReloadCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, total)
}

func TestClient_Savings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/savings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]float64{"total_kg": 4.2})
	}))
	defer srv.Close()

	c := New(srv.URL)

	total, err := c.RecordSaving(context.Background(), 1.2)
	require.NoError(t, err)
	assert.InDelta(t, 4.2, total, 0.001)

	total, err = c.TotalSavings(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 4.2, total, 0.001)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
