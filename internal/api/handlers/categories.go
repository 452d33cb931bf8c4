package handlers

import (
	"context"
	"net/http"
	"slices"

	"github.com/danielgtaylor/huma/v2"

	score "github.com/greenverse/greenscore/pkg/scorer"
	domain "github.com/greenverse/greenscore/pkg/types"
)

// CategoriesHandler serves the static category benchmark data.
type CategoriesHandler struct{}

// NewCategoriesHandler creates a new CategoriesHandler.
func NewCategoriesHandler() *CategoriesHandler {
	return &CategoriesHandler{}
}

// CategoryInfo pairs a category key with its benchmark ceilings and base
// emission factor.
type CategoryInfo struct {
	Key          domain.CategoryKey `json:"key" doc:"Category identifier"`
	BaseEmission float64            `json:"base_emission_kg" doc:"Scientific base footprint in kg CO2e"`
	Benchmark    domain.Benchmark   `json:"benchmark" doc:"Normalization ceilings for this category"`
}

// CategoriesOutput is the response body for the categories endpoint.
type CategoriesOutput struct {
	Body struct {
		Categories []CategoryInfo `json:"categories"`
	}
}

// List returns all known categories with their benchmarks.
func (h *CategoriesHandler) List(_ context.Context, _ *struct{}) (*CategoriesOutput, error) {
	keys := domain.Categories()

	resp := &CategoriesOutput{}
	resp.Body.Categories = make([]CategoryInfo, 0, len(keys))
	for _, key := range keys {
		resp.Body.Categories = append(resp.Body.Categories, CategoryInfo{
			Key:          key,
			BaseEmission: score.BaseEmission(key),
			Benchmark:    score.CategoryMaxValues(key),
		})
	}

	return resp, nil
}

// BenchmarksInput identifies a single category by key.
type BenchmarksInput struct {
	Key string `path:"key" doc:"Category identifier"`
}

// BenchmarksOutput is the response body for the per-category benchmarks endpoint.
type BenchmarksOutput struct {
	Body CategoryInfo
}

// Benchmarks returns the benchmark data for one category.
func (h *CategoriesHandler) Benchmarks(_ context.Context, input *BenchmarksInput) (*BenchmarksOutput, error) {
	key := domain.CategoryKey(input.Key)
	if !slices.Contains(domain.Categories(), key) {
		return nil, huma.Error404NotFound("unknown category: " + input.Key)
	}

	resp := &BenchmarksOutput{}
	resp.Body = CategoryInfo{
		Key:          key,
		BaseEmission: score.BaseEmission(key),
		Benchmark:    score.CategoryMaxValues(key),
	}
	return resp, nil
}

// RegisterCategoriesRoutes registers category endpoints with the Huma API.
func RegisterCategoriesRoutes(api huma.API, h *CategoriesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List category benchmarks",
		Description: "Returns the product categories the scorer recognizes, with their base emission factors and normalization ceilings.",
		Tags:        []string{"categories"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-category-benchmarks",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories/{key}/benchmarks",
		Summary:     "Get benchmarks for one category",
		Description: "Returns the base emission factor and normalization ceilings for a single category key.",
		Tags:        []string{"categories"},
		Errors:      []int{http.StatusNotFound},
	}, h.Benchmarks)
}
