package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenverse/greenscore/internal/api/handlers"
)

func TestSavings_RecordAndGet(t *testing.T) {
	t.Parallel()

	h := handlers.NewSavingsHandler(testEngine(nil))
	_, api := humatest.New(t)
	handlers.RegisterSavingsRoutes(api, h)

	resp := api.Post("/api/v1/savings", map[string]any{"delta_kg": 2.5})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total_kg":2.5`)

	resp = api.Post("/api/v1/savings", map[string]any{"delta_kg": 1.5})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total_kg":4`)

	resp = api.Get("/api/v1/savings")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total_kg":4`)
}

func TestSavings_NegativeDeltaRejected(t *testing.T) {
	t.Parallel()

	h := handlers.NewSavingsHandler(testEngine(nil))
	_, api := humatest.New(t)
	handlers.RegisterSavingsRoutes(api, h)

	resp := api.Post("/api/v1/savings", map[string]any{"delta_kg": -1})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
