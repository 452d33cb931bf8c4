// Package score implements the sustainability scoring engine: category
// resolution, feature extraction, carbon estimation, and the weighted
// composite score. All functions are pure and safe for concurrent use.
package score

import (
	"math"
	"strings"

	domain "github.com/greenverse/greenscore/pkg/types"
)

// Weights defines the relative importance of each scoring factor.
type Weights struct {
	Carbon     float64 `yaml:"carbon"`
	Keywords   float64 `yaml:"keywords"`
	Rating     float64 `yaml:"rating"`
	Reviews    float64 `yaml:"reviews"`
	Price      float64 `yaml:"price"`
	Durability float64 `yaml:"durability"`
}

// DefaultWeights returns the canonical scoring weights. Carbon and rating
// dominate: environmental impact plus social proof carry 55% combined.
func DefaultWeights() Weights {
	return Weights{
		Carbon:     0.30,
		Keywords:   0.15,
		Rating:     0.25,
		Reviews:    0.05,
		Price:      0.20,
		Durability: 0.05,
	}
}

// Breakdown shows the normalized per-factor scores and the composite total.
type Breakdown struct {
	Carbon     float64 `json:"carbon"`
	Keywords   float64 `json:"keywords"`
	Rating     float64 `json:"rating"`
	Reviews    float64 `json:"reviews"`
	Price      float64 `json:"price"`
	Durability float64 `json:"durability"`
	Total      int     `json:"total"`
}

// KeywordScore scores the text on sustainability vocabulary. Starts at the
// 50 neutral baseline, adds each matched positive term's delta and
// subtracts each matched negative term's, then clamps to [0,100].
func KeywordScore(text string) float64 {
	lower := strings.ToLower(text)
	result := 50.0

	for _, t := range positiveTerms {
		if strings.Contains(lower, t.phrase) {
			result += t.delta
		}
	}
	for _, t := range negativeTerms {
		if strings.Contains(lower, t.phrase) {
			result += t.delta
		}
	}

	return clamp(result, 0, 100)
}

// RatingScore maps a 0-5 star rating linearly onto [0,100].
func RatingScore(rating float64) float64 {
	return clamp(rating/5*100, 0, 100)
}

// ReviewCountScore applies logarithmic damping to review counts: roughly
// 10,000 reviews saturate the score, modeling diminishing returns of
// social proof.
func ReviewCountScore(count int) float64 {
	if count < 0 {
		count = 0
	}
	logCount := math.Min(math.Log10(float64(count)+1), 4)
	return logCount / 4 * 100
}

// DurabilityScore scores longevity claims in the text from the 50 neutral
// baseline, clamped to [0,100].
func DurabilityScore(text string) float64 {
	lower := lowercase(text)
	result := 50.0

	if reDurable.MatchString(lower) {
		result += 20
	}
	if reLongLasting.MatchString(lower) {
		result += 15
	}
	if reHighQuality.MatchString(lower) {
		result += 10
	}
	if strings.Contains(lower, "hard to repair") {
		result -= 20
	}
	if strings.Contains(lower, "planned obsolescence") {
		result -= 25
	}

	return clamp(result, 0, 100)
}

// PriceAppropriatenessScore returns 100 when the price is at or below the
// reference, otherwise a strictly decreasing penalty floored at 20 so an
// expensive but otherwise sustainable product is never zeroed out.
func PriceAppropriatenessScore(price, referencePrice float64) float64 {
	if price <= referencePrice {
		return 100
	}
	return clamp(referencePrice/price*100, 20, 100)
}

// FinalScore combines the sub-scores into the 0-100 sustainability score
// using the canonical policy.
func FinalScore(
	bundle domain.ScoreBundle,
	key domain.CategoryKey,
	referencePrice float64,
) int {
	b := Compute(bundle, key, referencePrice, DefaultPolicy())
	return b.Total
}

// Compute evaluates the weighted composite under a given policy and returns
// the full per-factor breakdown. The carbon sub-score is normalized against
// the category's MaxCO2 benchmark; every sub-score is clamped to its range
// before weighting, so the total cannot go negative, and it is capped at
// 100 after rounding.
func Compute(
	bundle domain.ScoreBundle,
	key domain.CategoryKey,
	referencePrice float64,
	p Policy,
) Breakdown {
	maxVals := CategoryMaxValues(key)

	b := Breakdown{
		Carbon:     clamp(1-bundle.Carbon/maxVals.MaxCO2, 0, 1) * 100,
		Keywords:   clamp(bundle.Keywords, 0, 100),
		Rating:     clamp(bundle.Rating, 0, 100),
		Reviews:    clamp(bundle.Reviews, 0, 100),
		Price:      PriceAppropriatenessScore(bundle.Price, referencePrice),
		Durability: clamp(bundle.Durability, 0, 100),
	}

	w := p.Weights
	total := b.Carbon*w.Carbon +
		b.Keywords*w.Keywords +
		b.Rating*w.Rating +
		b.Reviews*w.Reviews +
		b.Price*w.Price +
		b.Durability*w.Durability

	b.Total = int(math.Round(total))
	if b.Total > 100 {
		b.Total = 100
	}

	return b
}

// clamp bounds v to [lo, hi]. NaN collapses to lo so a poisoned input can
// never propagate into the aggregate.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
