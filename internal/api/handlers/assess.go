package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/greenverse/greenscore/internal/engine"
	domain "github.com/greenverse/greenscore/pkg/types"
)

// Assessor evaluates product signals. Implemented by *engine.Engine.
type Assessor interface {
	Assess(req engine.AssessRequest) (*domain.Assessment, error)
}

// AssessHandler handles product assessment requests.
type AssessHandler struct {
	engine Assessor
}

// NewAssessHandler creates a new AssessHandler.
func NewAssessHandler(a Assessor) *AssessHandler {
	return &AssessHandler{engine: a}
}

// AssessInput is the request body for the assessment endpoint.
type AssessInput struct {
	Body struct {
		Title          string   `json:"title" minLength:"1" doc:"Product listing title" example:"Organic cotton t-shirt"`
		BulletText     string   `json:"bullet_text,omitempty" doc:"Concatenated feature bullets"`
		Description    string   `json:"description,omitempty" doc:"Product description text"`
		Price          float64  `json:"price" minimum:"0" doc:"Listing price"`
		Rating         float64  `json:"rating,omitempty" minimum:"0" maximum:"5" doc:"Star rating 0-5"`
		ReviewCount    int      `json:"review_count,omitempty" minimum:"0" doc:"Number of customer reviews"`
		ReferencePrice *float64 `json:"reference_price,omitempty" doc:"Reference price for appropriateness scoring (default: category benchmark)"`
	}
}

// AssessOutput is the response body for the assessment endpoint.
type AssessOutput struct {
	Body domain.Assessment
}

// Assess scores one product signal.
func (h *AssessHandler) Assess(_ context.Context, input *AssessInput) (*AssessOutput, error) {
	assessment, err := h.engine.Assess(engine.AssessRequest{
		Signal: domain.ProductSignal{
			Title:       input.Body.Title,
			BulletText:  input.Body.BulletText,
			Description: input.Body.Description,
			Price:       input.Body.Price,
			Rating:      input.Body.Rating,
			ReviewCount: input.Body.ReviewCount,
		},
		ReferencePrice: input.Body.ReferencePrice,
	})
	if err != nil {
		if errors.Is(err, engine.ErrInvalidInput) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, huma.Error500InternalServerError("assessment failed: " + err.Error())
	}

	return &AssessOutput{Body: *assessment}, nil
}

// RegisterAssessRoutes registers assessment endpoints with the Huma API.
func RegisterAssessRoutes(api huma.API, h *AssessHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "assess-product",
		Method:      http.MethodPost,
		Path:        "/api/v1/assessments",
		Summary:     "Assess a product",
		Description: "Computes the sustainability score and carbon footprint estimate for a scraped product signal.",
		Tags:        []string{"assessments"},
		Errors:      []int{http.StatusBadRequest},
	}, h.Assess)
}
