package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, AssessmentsTotal)
	assert.NotNil(t, ScoringDistribution)
	assert.NotNil(t, InvalidInputTotal)
	assert.NotNil(t, AlternativesServedTotal)
	assert.NotNil(t, RankerTierTotal)
	assert.NotNil(t, CatalogRecords)
	assert.NotNil(t, CatalogRefreshesTotal)
	assert.NotNil(t, CatalogRefreshErrorsTotal)
	assert.NotNil(t, CO2SavedKg)
}
