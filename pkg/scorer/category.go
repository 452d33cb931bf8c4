package score

import (
	"regexp"

	domain "github.com/greenverse/greenscore/pkg/types"
)

// baseEmission is the scientific base carbon value per category in kg CO2e
// per unit, before any text-derived correction.
var baseEmission = map[domain.CategoryKey]float64{
	domain.CategoryTShirt:        8.2,
	domain.CategoryJeans:         12.5,
	domain.CategoryPlasticBottle: 0.18,
	domain.CategoryPhoneCharger:  0.15,
	domain.CategoryCoffeeMug:     0.35,
	domain.CategorySneakers:      16.8,
}

// defaultBaseEmission is used when the category has no base value.
const defaultBaseEmission = 8.0

// benchmarks holds the normalization ceilings per category.
var benchmarks = map[domain.CategoryKey]domain.Benchmark{
	domain.CategoryTShirt:        {MaxCO2: 15, MaxWater: 2500, MaxWaste: 0.5, MaxPrice: 2000},
	domain.CategoryJeans:         {MaxCO2: 25, MaxWater: 8000, MaxWaste: 1.2, MaxPrice: 5000},
	domain.CategoryPlasticBottle: {MaxCO2: 1.0, MaxWater: 10, MaxWaste: 0.2, MaxPrice: 1500},
	domain.CategoryPhoneCharger:  {MaxCO2: 0.5, MaxWater: 50, MaxWaste: 0.3, MaxPrice: 2500},
	domain.CategoryCoffeeMug:     {MaxCO2: 1.5, MaxWater: 100, MaxWaste: 0.4, MaxPrice: 2000},
	domain.CategorySneakers:      {MaxCO2: 30, MaxWater: 4000, MaxWaste: 1.5, MaxPrice: 8000},
	domain.CategoryDefault:       {MaxCO2: 20, MaxWater: 5000, MaxWaste: 1.0, MaxPrice: 5000},
}

// categoryPattern pairs a title pattern with the category it resolves to.
// Order matters: overlapping tokens ("cup" vs "bottle") are disambiguated
// by first-match-wins in declaration order.
type categoryPattern struct {
	re  *regexp.Regexp
	key domain.CategoryKey
}

var categoryPatterns = []categoryPattern{
	{regexp.MustCompile(`t[- ]?shirt|polo`), domain.CategoryTShirt},
	{regexp.MustCompile(`charger|adapter`), domain.CategoryPhoneCharger},
	{regexp.MustCompile(`coffee mug|mug|cup`), domain.CategoryCoffeeMug},
	{regexp.MustCompile(`water bottle|bottle|flask`), domain.CategoryPlasticBottle},
	{regexp.MustCompile(`sneaker|shoe|trainers|running shoe`), domain.CategorySneakers},
}

// DeriveCategoryKey maps free product text to a category key, or
// CategoryUnknown when no pattern matches. Pure and deterministic.
func DeriveCategoryKey(text string) domain.CategoryKey {
	lower := lowercase(text)
	for _, p := range categoryPatterns {
		if p.re.MatchString(lower) {
			return p.key
		}
	}
	return domain.CategoryUnknown
}

// CategoryMaxValues returns the benchmark tuple for a category. Unknown
// categories resolve to the default benchmark, never an error.
func CategoryMaxValues(key domain.CategoryKey) domain.Benchmark {
	if b, ok := benchmarks[key]; ok {
		return b
	}
	return benchmarks[domain.CategoryDefault]
}

// BaseEmission returns the scientific base carbon value for a category,
// falling back to defaultBaseEmission for unknown keys.
func BaseEmission(key domain.CategoryKey) float64 {
	if b, ok := baseEmission[key]; ok {
		return b
	}
	return defaultBaseEmission
}
