package client

import (
	"context"

	domain "github.com/greenverse/greenscore/pkg/types"
)

// AssessParams describes a product to score.
type AssessParams struct {
	Title          string   `json:"title"`
	BulletText     string   `json:"bullet_text,omitempty"`
	Description    string   `json:"description,omitempty"`
	Price          float64  `json:"price"`
	Rating         float64  `json:"rating,omitempty"`
	ReviewCount    int      `json:"review_count,omitempty"`
	ReferencePrice *float64 `json:"reference_price,omitempty"`
}

// Assess scores a product signal.
func (c *Client) Assess(ctx context.Context, params *AssessParams) (*domain.Assessment, error) {
	var a domain.Assessment
	if err := c.post(ctx, "/api/v1/assessments", params, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// AlternativesParams describes the product to find substitutes for.
type AlternativesParams struct {
	Title         string             `json:"title"`
	CurrentScore  *int               `json:"current_score,omitempty"`
	PriceRange    *domain.PriceRange `json:"price_range,omitempty"`
	BasePrice     *float64           `json:"base_price,omitempty"`
	StrictOrganic *bool              `json:"strict_organic,omitempty"`
}

// AlternativesResponse wraps the ranked substitutes.
type AlternativesResponse struct {
	Category     domain.CategoryKey         `json:"category"`
	CurrentScore int                        `json:"current_score"`
	Tier         string                     `json:"tier"`
	Alternatives []domain.AlternativeRecord `json:"alternatives"`
}

// Alternatives ranks greener substitutes for a product.
func (c *Client) Alternatives(
	ctx context.Context,
	params *AlternativesParams,
) (*AlternativesResponse, error) {
	var resp AlternativesResponse
	if err := c.post(ctx, "/api/v1/alternatives", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
