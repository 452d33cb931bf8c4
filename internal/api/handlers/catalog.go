package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/greenverse/greenscore/internal/catalog"
)

// CatalogAdmin exposes the catalog lifecycle. Implemented by *engine.Engine.
type CatalogAdmin interface {
	RefreshCatalog(ctx context.Context) error
	CatalogStats() (catalog.Stats, error)
}

// CatalogHandler handles catalog administration requests.
type CatalogHandler struct {
	engine CatalogAdmin
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(a CatalogAdmin) *CatalogHandler {
	return &CatalogHandler{engine: a}
}

// CatalogStatsOutput is the response body for the catalog stats endpoint.
type CatalogStatsOutput struct {
	Body catalog.Stats
}

// Stats reports the active snapshot's record counts.
func (h *CatalogHandler) Stats(_ context.Context, _ *struct{}) (*CatalogStatsOutput, error) {
	stats, err := h.engine.CatalogStats()
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogUnavailable) {
			return nil, huma.Error503ServiceUnavailable("catalog not loaded yet")
		}
		return nil, huma.Error500InternalServerError("catalog stats failed: " + err.Error())
	}
	return &CatalogStatsOutput{Body: stats}, nil
}

// CatalogReloadOutput is the response body for the reload endpoint.
type CatalogReloadOutput struct {
	Body struct {
		Total int `json:"total" doc:"Record count of the freshly loaded snapshot"`
	}
}

// Reload fetches the catalog source and swaps in a new snapshot.
func (h *CatalogHandler) Reload(ctx context.Context, _ *struct{}) (*CatalogReloadOutput, error) {
	if err := h.engine.RefreshCatalog(ctx); err != nil {
		return nil, huma.Error502BadGateway("catalog reload failed: " + err.Error())
	}

	stats, err := h.engine.CatalogStats()
	if err != nil {
		return nil, huma.Error500InternalServerError("catalog stats failed: " + err.Error())
	}

	resp := &CatalogReloadOutput{}
	resp.Body.Total = stats.Total
	return resp, nil
}

// RegisterCatalogRoutes registers catalog administration endpoints.
func RegisterCatalogRoutes(api huma.API, h *CatalogHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "catalog-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/stats",
		Summary:     "Catalog snapshot stats",
		Description: "Returns total and per-category record counts of the active catalog snapshot.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusServiceUnavailable},
	}, h.Stats)

	huma.Register(api, huma.Operation{
		OperationID: "catalog-reload",
		Method:      http.MethodPost,
		Path:        "/api/v1/catalog/reload",
		Summary:     "Reload the catalog",
		Description: "Fetches the configured catalog source and atomically publishes a fresh snapshot. The previous snapshot stays live on failure.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusBadGateway},
	}, h.Reload)
}
