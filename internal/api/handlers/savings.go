package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// SavingsLedger tracks cumulative avoided emissions. Implemented by
// *engine.Engine.
type SavingsLedger interface {
	RecordSaving(deltaKg float64) float64
	TotalSaved() float64
}

// SavingsHandler handles the saved-CO2 ledger endpoints.
type SavingsHandler struct {
	engine SavingsLedger
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(l SavingsLedger) *SavingsHandler {
	return &SavingsHandler{engine: l}
}

// RecordSavingInput is the request body for recording a saving.
type RecordSavingInput struct {
	Body struct {
		DeltaKg float64 `json:"delta_kg" minimum:"0" doc:"Avoided emissions in kg CO2e, e.g. the footprint gap between a product and the chosen alternative"`
	}
}

// SavingsOutput reports the cumulative ledger total.
type SavingsOutput struct {
	Body struct {
		TotalKg float64 `json:"total_kg" doc:"Cumulative kg CO2e saved"`
	}
}

// Record adds a CO2 delta to the ledger and returns the new total.
func (h *SavingsHandler) Record(_ context.Context, input *RecordSavingInput) (*SavingsOutput, error) {
	resp := &SavingsOutput{}
	resp.Body.TotalKg = h.engine.RecordSaving(input.Body.DeltaKg)
	return resp, nil
}

// Total returns the cumulative ledger total.
func (h *SavingsHandler) Total(_ context.Context, _ *struct{}) (*SavingsOutput, error) {
	resp := &SavingsOutput{}
	resp.Body.TotalKg = h.engine.TotalSaved()
	return resp, nil
}

// RegisterSavingsRoutes registers saved-CO2 ledger endpoints.
func RegisterSavingsRoutes(api huma.API, h *SavingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "record-saving",
		Method:      http.MethodPost,
		Path:        "/api/v1/savings",
		Summary:     "Record a CO2 saving",
		Description: "Adds avoided emissions to the cumulative ledger, typically when a user picks a greener alternative.",
		Tags:        []string{"savings"},
	}, h.Record)

	huma.Register(api, huma.Operation{
		OperationID: "get-savings",
		Method:      http.MethodGet,
		Path:        "/api/v1/savings",
		Summary:     "Get cumulative CO2 savings",
		Tags:        []string{"savings"},
	}, h.Total)
}
