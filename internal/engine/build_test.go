package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/greenverse/greenscore/pkg/types"
)

func TestBuildCatalog(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, nil)

	records := eng.BuildCatalog([]domain.RawCandidate{
		{
			ID:          "c1",
			Title:       "Organic Cotton T-Shirt",
			AllText:     "organic cotton t-shirt, made in India, durable",
			Price:       ptr(24.99),
			Rating:      4.6,
			ReviewCount: 812,
		},
		{
			ID:       "c2",
			Category: domain.CategorySneakers,
			Title:    "Recycled Runner",
			Price:    ptr(79),
		},
	})

	require.Len(t, records, 2)

	assert.Equal(t, "c1", records[0].ID)
	assert.Equal(t, domain.CategoryTShirt, records[0].Category, "category derived from title")
	assert.Greater(t, records[0].Score, 0)
	assert.Less(t, records[0].Carbon, 8.2)
	require.NotNil(t, records[0].Price)

	assert.Equal(t, domain.CategorySneakers, records[1].Category, "explicit category wins")
	assert.Greater(t, records[1].Carbon, 0.0)
}

func TestBuildCatalog_SkipsUnderivableCandidates(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, nil)

	records := eng.BuildCatalog([]domain.RawCandidate{
		{ID: "c1", Title: "garden hose"},
		{ID: "c2", Title: "ceramic mug"},
	})

	require.Len(t, records, 1)
	assert.Equal(t, "c2", records[0].ID)
}

func TestBuildCatalog_TextFallsBackToTitle(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, nil)

	records := eng.BuildCatalog([]domain.RawCandidate{
		{ID: "c1", Title: "organic cotton t-shirt"},
	})

	require.Len(t, records, 1)
	assert.Less(t, records[0].Carbon, 8.2, "title text drives the features when all_text is empty")
}

func TestBuildCatalog_Empty(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, nil)
	assert.Empty(t, eng.BuildCatalog(nil))
}
