package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/greenverse/greenscore/pkg/types"
)

func TestExtractFeatures_EmptyTextYieldsZeroVector(t *testing.T) {
	t.Parallel()

	f := ExtractFeatures("", domain.CategoryTShirt)
	assert.Equal(t, domain.FeatureVector{}, f)
}

func TestExtractFeatures_NoMatchesYieldsZeroVector(t *testing.T) {
	t.Parallel()

	f := ExtractFeatures("plain blue widget", domain.CategoryDefault)
	assert.Equal(t, domain.FeatureVector{}, f)
}

func TestExtractFeatures_OrganicRecycledMadeInIndia(t *testing.T) {
	t.Parallel()

	f := ExtractFeatures(
		"organic cotton t-shirt, 100% recycled packaging, made in India",
		domain.CategoryTShirt,
	)

	assert.InDelta(t, 1, f.Organic, 0.001)
	assert.InDelta(t, 1, f.Recycled, 0.001)
	assert.InDelta(t, 1.0, f.RecycledPercent, 0.001)
	assert.InDelta(t, 0, f.Distance, 0.001, "India is the zero-distance origin")
	assert.InDelta(t, 0, f.Imported, 0.001)
}

func TestExtractFeatures_RecycledPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		recycled    float64
		recycledPct float64
	}{
		{"explicit percentage", "made from 60% recycled polyester", 1, 0.6},
		{"bare keyword uses default", "recycled materials", 1, 0.3},
		{"absent", "virgin materials", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := ExtractFeatures(tt.text, domain.CategoryTShirt)
			assert.InDelta(t, tt.recycled, f.Recycled, 0.001)
			assert.InDelta(t, tt.recycledPct, f.RecycledPercent, 0.001)
		})
	}
}

func TestExtractFeatures_ImportedFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		imported float64
		distance float64
	}{
		{"bare imported is penalized", "imported", 1, 4000},
		{"imported from origin is not", "imported from Italy", 0, 4000},
		{"any bare occurrence wins", "imported from Italy, also imported", 1, 4000},
		{"absent", "locally produced", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := ExtractFeatures(tt.text, domain.CategoryDefault)
			assert.InDelta(t, tt.imported, f.Imported, 0.001)
			assert.InDelta(t, tt.distance, f.Distance, 0.001)
		})
	}
}

func TestExtractFeatures_ShippingDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want float64
	}{
		{"made in china", 5000},
		{"made in bangladesh", 3000},
		{"made in india", 0},
		{"imported goods", 4000},
		{"made in portugal", 0},
		// First matching rule applies: the chain stops at China.
		{"made in china, imported", 5000},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			f := ExtractFeatures(tt.text, domain.CategoryDefault)
			assert.InDelta(t, tt.want, f.Distance, 0.001)
		})
	}
}

func TestExtractFeatures_DurabilityAccumulatesAndCaps(t *testing.T) {
	t.Parallel()

	f := ExtractFeatures("durable", domain.CategoryDefault)
	assert.InDelta(t, 0.4, f.Durability, 0.001)

	f = ExtractFeatures("durable and long lasting", domain.CategoryDefault)
	assert.InDelta(t, 0.7, f.Durability, 0.001)

	f = ExtractFeatures("durable, long lasting, high quality", domain.CategoryDefault)
	assert.InDelta(t, 1.0, f.Durability, 0.001, "capped at 1.0")
}

func TestExtractFeatures_SustainableBrand(t *testing.T) {
	t.Parallel()

	f := ExtractFeatures("patagonia fleece jacket", domain.CategoryDefault)
	assert.InDelta(t, 1, f.SustainableBrand, 0.001)

	f = ExtractFeatures("generic fleece jacket", domain.CategoryDefault)
	assert.InDelta(t, 0, f.SustainableBrand, 0.001)
}

func TestExtractFeatures_BinaryFlags(t *testing.T) {
	t.Parallel()

	f := ExtractFeatures(
		"polyester blend, shipped by air freight, fast fashion line, "+
			"water efficient, energy star rated, local workshop, "+
			"powered by renewable energy, with nylon straps",
		domain.CategoryDefault,
	)

	assert.InDelta(t, 1, f.Polyester, 0.001)
	assert.InDelta(t, 1, f.AirFreight, 0.001)
	assert.InDelta(t, 1, f.FastFashion, 0.001)
	assert.InDelta(t, 1, f.WaterEfficient, 0.001)
	assert.InDelta(t, 1, f.EnergyStar, 0.001)
	assert.InDelta(t, 1, f.LocalProduction, 0.001)
	assert.InDelta(t, 1, f.RenewableEnergy, 0.001)
	assert.InDelta(t, 1, f.SyntheticMaterial, 0.001)
}

func TestExtractFeatures_WordBoundaries(t *testing.T) {
	t.Parallel()

	// Substrings inside larger words must not trigger flags.
	f := ExtractFeatures("inorganic compound", domain.CategoryDefault)
	assert.InDelta(t, 0, f.Organic, 0.001)

	f = ExtractFeatures("organically grown", domain.CategoryDefault)
	assert.InDelta(t, 0, f.Organic, 0.001)
}
