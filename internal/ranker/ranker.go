// Package ranker selects greener substitute products from the catalog using
// a tiered fallback policy: strictly-better-in-budget beats equal-but-cheaper
// beats eco-keyword matches beats the raw category set. The policy never
// returns an empty list when the category has candidates.
package ranker

import (
	"regexp"
	"strings"

	"github.com/greenverse/greenscore/internal/catalog"
	domain "github.com/greenverse/greenscore/pkg/types"
)

// MaxResults bounds the number of alternatives returned.
const MaxResults = 5

// Tier identifies which fallback stage produced the result set.
type Tier string

// Fallback tiers, in preference order.
const (
	TierBetterInBudget Tier = "better_in_budget"
	TierEqualCheaper   Tier = "equal_cheaper"
	TierEcoKeyword     Tier = "eco_keyword"
	TierLastResort     Tier = "last_resort"
	TierNone           Tier = "none"
)

// Request describes the current product whose alternatives are sought.
type Request struct {
	Category     domain.CategoryKey
	CurrentScore int
	PriceRange   *domain.PriceRange
	BasePrice    *float64
	Prefs        *domain.Prefs
}

var (
	reEcoOrganic     = regexp.MustCompile(`\borganic\b`)
	reEcoRecycled    = regexp.MustCompile(`\brecycled\b`)
	reEcoSustainable = regexp.MustCompile(`\bsustainable\b`)
)

// FindAlternatives returns up to MaxResults ranked substitutes for the
// request, together with the tier that produced them. An empty category
// yields an empty list and TierNone, never an error.
func FindAlternatives(c *catalog.Catalog, req Request) ([]domain.AlternativeRecord, Tier) {
	candidates := c.ByCategory(req.Category)
	if req.Prefs != nil && req.Prefs.StrictOrganic {
		candidates = filter(candidates, func(r domain.AlternativeRecord) bool {
			return reEcoOrganic.MatchString(strings.ToLower(r.Title))
		})
	}
	if len(candidates) == 0 {
		return nil, TierNone
	}

	result, tier := applyTiers(candidates, req)

	result = dedupe(result)
	catalog.SortRecords(result)
	if len(result) > MaxResults {
		result = result[:MaxResults]
	}
	return result, tier
}

// applyTiers walks the fallback stages in order and stops at the first
// non-empty result set.
func applyTiers(
	candidates []domain.AlternativeRecord,
	req Request,
) ([]domain.AlternativeRecord, Tier) {
	// Tier 1: strictly better score, within budget when a range was given.
	better := filter(candidates, func(r domain.AlternativeRecord) bool {
		if r.Score <= req.CurrentScore {
			return false
		}
		if req.PriceRange != nil && r.Price != nil {
			return *r.Price >= req.PriceRange.Min && *r.Price <= req.PriceRange.Max
		}
		return true
	})
	if len(better) > 0 {
		return better, TierBetterInBudget
	}

	// Tier 2: equal score but cheaper than the reference price.
	if ref, ok := domain.Reference(req.BasePrice, req.PriceRange); ok {
		cheaper := filter(candidates, func(r domain.AlternativeRecord) bool {
			return r.Score == req.CurrentScore && r.Price != nil && *r.Price < ref
		})
		if len(cheaper) > 0 {
			return cheaper, TierEqualCheaper
		}
	}

	// Tier 3: anything whose title carries an eco keyword.
	eco := filter(candidates, func(r domain.AlternativeRecord) bool {
		lower := strings.ToLower(r.Title)
		return reEcoOrganic.MatchString(lower) ||
			reEcoRecycled.MatchString(lower) ||
			reEcoSustainable.MatchString(lower)
	})
	if len(eco) > 0 {
		return eco, TierEcoKeyword
	}

	// Tier 4: never leave the user with zero suggestions.
	out := make([]domain.AlternativeRecord, len(candidates))
	copy(out, candidates)
	return out, TierLastResort
}

func filter(
	records []domain.AlternativeRecord,
	keep func(domain.AlternativeRecord) bool,
) []domain.AlternativeRecord {
	var out []domain.AlternativeRecord
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
