package ranker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenverse/greenscore/internal/catalog"
	domain "github.com/greenverse/greenscore/pkg/types"
)

func ptr(v float64) *float64 { return &v }

func record(id string, score int, price *float64, title string) domain.AlternativeRecord {
	return domain.AlternativeRecord{
		ID:       id,
		Category: domain.CategoryTShirt,
		Title:    title,
		Score:    score,
		Price:    price,
	}
}

func TestFindAlternatives_BetterInBudget(t *testing.T) {
	t.Parallel()

	c := catalog.New([]domain.AlternativeRecord{
		record("a1", 80, ptr(25), "Organic Tee"),
		record("a2", 40, ptr(10), "Cheap Tee"),
	})

	alts, tier := FindAlternatives(c, Request{
		Category:     domain.CategoryTShirt,
		CurrentScore: 50,
		PriceRange:   &domain.PriceRange{Min: 10, Max: 30},
	})

	assert.Equal(t, TierBetterInBudget, tier)
	require.Len(t, alts, 1)
	assert.Equal(t, "a1", alts[0].ID)
}

func TestFindAlternatives_BudgetExcludesExpensive(t *testing.T) {
	t.Parallel()

	c := catalog.New([]domain.AlternativeRecord{
		record("a1", 90, ptr(200), "Premium Organic Tee"),
		record("a2", 70, ptr(20), "Affordable Organic Tee"),
	})

	alts, tier := FindAlternatives(c, Request{
		Category:     domain.CategoryTShirt,
		CurrentScore: 50,
		PriceRange:   &domain.PriceRange{Min: 10, Max: 50},
	})

	assert.Equal(t, TierBetterInBudget, tier)
	require.Len(t, alts, 1)
	assert.Equal(t, "a2", alts[0].ID)
}

func TestFindAlternatives_EqualCheaperFallback(t *testing.T) {
	t.Parallel()

	// Nothing beats the current score; one record ties it at a lower price.
	c := catalog.New([]domain.AlternativeRecord{
		record("a1", 60, ptr(15), "Basic Tee"),
		record("a2", 40, ptr(5), "Worse Tee"),
	})

	alts, tier := FindAlternatives(c, Request{
		Category:     domain.CategoryTShirt,
		CurrentScore: 60,
		BasePrice:    ptr(20),
	})

	assert.Equal(t, TierEqualCheaper, tier)
	require.Len(t, alts, 1)
	assert.Equal(t, "a1", alts[0].ID)
}

func TestFindAlternatives_EqualCheaperUsesRangeMidpoint(t *testing.T) {
	t.Parallel()

	c := catalog.New([]domain.AlternativeRecord{
		record("a1", 60, ptr(18), "Basic Tee"),
	})

	// No base price; midpoint of [10, 30] is 20, so 18 qualifies.
	alts, tier := FindAlternatives(c, Request{
		Category:     domain.CategoryTShirt,
		CurrentScore: 60,
		PriceRange:   &domain.PriceRange{Min: 10, Max: 30},
	})

	assert.Equal(t, TierEqualCheaper, tier)
	require.Len(t, alts, 1)
}

func TestFindAlternatives_EcoKeywordFallback(t *testing.T) {
	t.Parallel()

	// No better scores, no price reference: tier 3 keeps eco-titled records.
	c := catalog.New([]domain.AlternativeRecord{
		record("a1", 40, ptr(15), "Recycled Cotton Tee"),
		record("a2", 30, ptr(10), "Plain Tee"),
	})

	alts, tier := FindAlternatives(c, Request{
		Category:     domain.CategoryTShirt,
		CurrentScore: 50,
	})

	assert.Equal(t, TierEcoKeyword, tier)
	require.Len(t, alts, 1)
	assert.Equal(t, "a1", alts[0].ID)
}

func TestFindAlternatives_LastResortNeverEmpty(t *testing.T) {
	t.Parallel()

	c := catalog.New([]domain.AlternativeRecord{
		record("a1", 20, ptr(15), "Plain Tee"),
		record("a2", 10, ptr(10), "Another Plain Tee"),
	})

	alts, tier := FindAlternatives(c, Request{
		Category:     domain.CategoryTShirt,
		CurrentScore: 90,
	})

	assert.Equal(t, TierLastResort, tier)
	assert.Len(t, alts, 2, "a populated category never yields zero suggestions")
}

func TestFindAlternatives_EmptyCategory(t *testing.T) {
	t.Parallel()

	c := catalog.New(nil)

	alts, tier := FindAlternatives(c, Request{
		Category:     domain.CategoryTShirt,
		CurrentScore: 50,
	})

	assert.Equal(t, TierNone, tier)
	assert.Empty(t, alts)
}

func TestFindAlternatives_StrictOrganicFilter(t *testing.T) {
	t.Parallel()

	c := catalog.New([]domain.AlternativeRecord{
		record("a1", 80, ptr(25), "Organic Cotton Tee"),
		record("a2", 90, ptr(25), "Recycled Tee"),
	})

	alts, tier := FindAlternatives(c, Request{
		Category:     domain.CategoryTShirt,
		CurrentScore: 50,
		Prefs:        &domain.Prefs{StrictOrganic: true},
	})

	assert.Equal(t, TierBetterInBudget, tier)
	require.Len(t, alts, 1)
	assert.Equal(t, "a1", alts[0].ID)
}

func TestFindAlternatives_StrictOrganicExhaustsCandidates(t *testing.T) {
	t.Parallel()

	c := catalog.New([]domain.AlternativeRecord{
		record("a1", 80, ptr(25), "Recycled Tee"),
	})

	alts, tier := FindAlternatives(c, Request{
		Category:     domain.CategoryTShirt,
		CurrentScore: 50,
		Prefs:        &domain.Prefs{StrictOrganic: true},
	})

	assert.Equal(t, TierNone, tier)
	assert.Empty(t, alts)
}

func TestFindAlternatives_DeduplicatesColorVariants(t *testing.T) {
	t.Parallel()

	c := catalog.New([]domain.AlternativeRecord{
		record("a1", 80, ptr(25), "Organic Cotton Tee (Blue)"),
		record("a2", 78, ptr(25), "Organic Cotton Tee (Red)"),
	})

	alts, _ := FindAlternatives(c, Request{
		Category:     domain.CategoryTShirt,
		CurrentScore: 50,
	})

	require.Len(t, alts, 1, "color variants collapse to the base product")
	assert.Equal(t, "a1", alts[0].ID, "highest-scored variant survives")
}

func TestFindAlternatives_CapsAtMaxResults(t *testing.T) {
	t.Parallel()

	records := make([]domain.AlternativeRecord, 0, 8)
	for i := 0; i < 8; i++ {
		records = append(records,
			record(fmt.Sprintf("a%d", i), 60+i, ptr(float64(10+i)), fmt.Sprintf("Organic Tee %d", i)))
	}
	c := catalog.New(records)

	alts, _ := FindAlternatives(c, Request{
		Category:     domain.CategoryTShirt,
		CurrentScore: 10,
	})

	require.Len(t, alts, MaxResults)
	// Ordered by score descending after the cut.
	assert.Equal(t, "a7", alts[0].ID)
}

func TestNormalizeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Organic Cotton Tee (Blue)", "organic cotton tee"},
		{"Organic Cotton Tee (Red, XL)", "organic cotton tee"},
		{"Hemp Shirt Large", "hemp shirt"},
		{"Plain   spaced    title", "plain spaced title"},
		{"Navy Blue Tee, M", "tee"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeTitle(tt.in))
		})
	}
}
