package score

import (
	"math"

	domain "github.com/greenverse/greenscore/pkg/types"
)

// carbonWeights are the hand-tuned linear coefficients of the carbon
// correction model. Negative coefficients reduce the estimated footprint.
// The set is immutable and swapped wholesale between model revisions.
var carbonWeights = map[string]float64{
	"organic":            -0.25,
	"recycled":           -0.32,
	"recycled_percent":   -0.003,
	"polyester":          0.28,
	"imported":           0.22,
	"air_freight":        0.52,
	"fast_fashion":       0.23,
	"sustainable_brand":  -0.28,
	"distance":           0.00005,
	"durability":         -0.12,
	"water_efficient":    -0.08,
	"energy_star":        -0.10,
	"local_production":   -0.15,
	"renewable_energy":   -0.18,
	"synthetic_material": 0.25,
}

// minFootprint is the floor applied to every estimate, guarding against
// pathological negative corrections.
const minFootprint = 0.1

// CarbonCorrection computes the dimensionless correction multiplier from a
// feature vector: the dot product of the feature values with the model
// coefficients. Features without a coefficient contribute nothing.
func CarbonCorrection(f domain.FeatureVector) float64 {
	features := map[string]float64{
		"organic":            f.Organic,
		"recycled":           f.Recycled,
		"recycled_percent":   f.RecycledPercent,
		"polyester":          f.Polyester,
		"imported":           f.Imported,
		"air_freight":        f.AirFreight,
		"fast_fashion":       f.FastFashion,
		"sustainable_brand":  f.SustainableBrand,
		"distance":           f.Distance,
		"durability":         f.Durability,
		"water_efficient":    f.WaterEfficient,
		"energy_star":        f.EnergyStar,
		"local_production":   f.LocalProduction,
		"renewable_energy":   f.RenewableEnergy,
		"synthetic_material": f.SyntheticMaterial,
	}

	var correction float64
	for name, value := range features {
		if w, ok := carbonWeights[name]; ok {
			correction += w * value
		}
	}
	return correction
}

// EstimateCarbonFootprint estimates the product's carbon footprint in kg
// CO2e using the canonical (uncapped) policy.
func EstimateCarbonFootprint(text string, key domain.CategoryKey) float64 {
	return EstimateCarbonFootprintWithPolicy(text, key, DefaultPolicy())
}

// EstimateCarbonFootprintWithPolicy applies a policy's optional correction
// clamp. The correction scales the category base multiplicatively, so a
// large-base category is corrected proportionally more for the same signal.
// The result is floored at minFootprint and rounded to two decimals, always
// strictly positive.
func EstimateCarbonFootprintWithPolicy(
	text string,
	key domain.CategoryKey,
	p Policy,
) float64 {
	base := BaseEmission(key)
	features := ExtractFeatures(text, key)
	correction := CarbonCorrection(features)

	if p.CapCorrection {
		if correction > p.CorrectionCap {
			correction = p.CorrectionCap
		}
		if correction < -p.CorrectionCap {
			correction = -p.CorrectionCap
		}
	}

	footprint := base * (1 + correction)
	if footprint < minFootprint {
		footprint = minFootprint
	}
	return math.Round(footprint*100) / 100
}
