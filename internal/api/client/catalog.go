package client

import (
	"context"
	"net/url"

	domain "github.com/greenverse/greenscore/pkg/types"
)

// CategoryInfo mirrors one entry of the categories endpoint response.
type CategoryInfo struct {
	Key          domain.CategoryKey `json:"key"`
	BaseEmission float64            `json:"base_emission_kg"`
	Benchmark    domain.Benchmark   `json:"benchmark"`
}

// Categories returns the category benchmarks the scorer recognizes.
func (c *Client) Categories(ctx context.Context) ([]CategoryInfo, error) {
	var resp struct {
		Categories []CategoryInfo `json:"categories"`
	}
	if err := c.get(ctx, "/api/v1/categories", &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// CategoryBenchmarks returns the benchmark data for a single category key.
func (c *Client) CategoryBenchmarks(ctx context.Context, key string) (*CategoryInfo, error) {
	var info CategoryInfo
	if err := c.get(ctx, "/api/v1/categories/"+url.PathEscape(key)+"/benchmarks", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// CatalogStats mirrors the catalog stats endpoint response.
type CatalogStats struct {
	Total       int                        `json:"total"`
	PerCategory map[domain.CategoryKey]int `json:"per_category"`
}

// GetCatalogStats returns the active snapshot's record counts.
func (c *Client) GetCatalogStats(ctx context.Context) (*CatalogStats, error) {
	var stats CatalogStats
	if err := c.get(ctx, "/api/v1/catalog/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ReloadCatalog triggers a catalog refresh and returns the new record count.
func (c *Client) ReloadCatalog(ctx context.Context) (int, error) {
	var resp struct {
		Total int `json:"total"`
	}
	if err := c.post(ctx, "/api/v1/catalog/reload", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Total, nil
}

// RecordSaving adds a CO2 delta (kg) to the ledger and returns the new total.
func (c *Client) RecordSaving(ctx context.Context, deltaKg float64) (float64, error) {
	body := map[string]float64{"delta_kg": deltaKg}
	var resp struct {
		TotalKg float64 `json:"total_kg"`
	}
	if err := c.post(ctx, "/api/v1/savings", body, &resp); err != nil {
		return 0, err
	}
	return resp.TotalKg, nil
}

// TotalSavings returns the cumulative kg CO2e saved.
func (c *Client) TotalSavings(ctx context.Context) (float64, error) {
	var resp struct {
		TotalKg float64 `json:"total_kg"`
	}
	if err := c.get(ctx, "/api/v1/savings", &resp); err != nil {
		return 0, err
	}
	return resp.TotalKg, nil
}
