package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/greenverse/greenscore/internal/catalog"
	"github.com/greenverse/greenscore/internal/engine"
	"github.com/greenverse/greenscore/internal/ranker"
	domain "github.com/greenverse/greenscore/pkg/types"
)

// AlternativeFinder ranks substitutes. Implemented by *engine.Engine.
type AlternativeFinder interface {
	FindAlternatives(req engine.AlternativesRequest) (*engine.AlternativesResult, error)
}

// AlternativesHandler handles alternative ranking requests.
type AlternativesHandler struct {
	engine AlternativeFinder
}

// NewAlternativesHandler creates a new AlternativesHandler.
func NewAlternativesHandler(f AlternativeFinder) *AlternativesHandler {
	return &AlternativesHandler{engine: f}
}

// AlternativesInput is the request body for the alternatives endpoint.
type AlternativesInput struct {
	Body struct {
		Title         string             `json:"title" minLength:"1" doc:"Title of the product being viewed"`
		CurrentScore  *int               `json:"current_score,omitempty" minimum:"0" maximum:"100" doc:"Sustainability score of the current product (default: keyword score of the title)"`
		PriceRange    *domain.PriceRange `json:"price_range,omitempty" doc:"Acceptable price band for candidates"`
		BasePrice     *float64           `json:"base_price,omitempty" doc:"Price of the current product"`
		StrictOrganic *bool              `json:"strict_organic,omitempty" doc:"Only surface candidates with organic in the title"`
	}
}

// AlternativesOutput is the response body for the alternatives endpoint.
type AlternativesOutput struct {
	Body struct {
		Category     domain.CategoryKey         `json:"category" doc:"Category derived from the title"`
		CurrentScore int                        `json:"current_score" doc:"Score the candidates were compared against"`
		Tier         ranker.Tier                `json:"tier" doc:"Fallback tier that produced the results"`
		Alternatives []domain.AlternativeRecord `json:"alternatives" doc:"Ranked greener substitutes"`
	}
}

// Find ranks greener substitutes for the given product.
func (h *AlternativesHandler) Find(_ context.Context, input *AlternativesInput) (*AlternativesOutput, error) {
	var prefs *domain.Prefs
	if input.Body.StrictOrganic != nil {
		p := domain.DefaultPrefs()
		p.StrictOrganic = *input.Body.StrictOrganic
		prefs = &p
	}

	result, err := h.engine.FindAlternatives(engine.AlternativesRequest{
		Title:        input.Body.Title,
		CurrentScore: input.Body.CurrentScore,
		PriceRange:   input.Body.PriceRange,
		BasePrice:    input.Body.BasePrice,
		Prefs:        prefs,
	})
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidInput):
			return nil, huma.Error400BadRequest(err.Error())
		case errors.Is(err, catalog.ErrCatalogUnavailable):
			return nil, huma.Error503ServiceUnavailable("catalog not loaded yet")
		default:
			return nil, huma.Error500InternalServerError("ranking failed: " + err.Error())
		}
	}

	resp := &AlternativesOutput{}
	resp.Body.Category = result.Category
	resp.Body.CurrentScore = result.CurrentScore
	resp.Body.Tier = result.Tier
	resp.Body.Alternatives = result.Alternatives
	if resp.Body.Alternatives == nil {
		resp.Body.Alternatives = []domain.AlternativeRecord{}
	}

	return resp, nil
}

// RegisterAlternativesRoutes registers alternative ranking endpoints.
func RegisterAlternativesRoutes(api huma.API, h *AlternativesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "find-alternatives",
		Method:      http.MethodPost,
		Path:        "/api/v1/alternatives",
		Summary:     "Find greener alternatives",
		Description: "Ranks pre-scored catalog products as substitutes for the given product, walking the fallback tiers until candidates are found.",
		Tags:        []string{"alternatives"},
		Errors:      []int{http.StatusBadRequest, http.StatusServiceUnavailable},
	}, h.Find)
}
