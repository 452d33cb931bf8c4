package score

import (
	"regexp"
	"strconv"
	"strings"

	domain "github.com/greenverse/greenscore/pkg/types"
)

// Word-boundary patterns for the binary feature flags.
var (
	reOrganic         = regexp.MustCompile(`\borganic\b`)
	reRecycledPercent = regexp.MustCompile(`(\d+)% recycled`)
	reRecycled        = regexp.MustCompile(`\brecycled\b`)
	rePolyester       = regexp.MustCompile(`\bpolyester\b`)
	reAirFreight      = regexp.MustCompile(`\bair freight\b`)
	reFastFashion     = regexp.MustCompile(`\bfast fashion\b`)
	reWaterEfficient  = regexp.MustCompile(`\bwater efficient\b`)
	reEnergyStar      = regexp.MustCompile(`\benergy star\b`)
	reLocal           = regexp.MustCompile(`\blocal\b`)
	reRenewable       = regexp.MustCompile(`\brenewable energy\b`)
	reAcrylic         = regexp.MustCompile(`\bacrylic\b`)
	reNylon           = regexp.MustCompile(`\bnylon\b`)

	reMadeInChina      = regexp.MustCompile(`\bmade in china\b`)
	reMadeInBangladesh = regexp.MustCompile(`\bmade in bangladesh\b`)
	reMadeInIndia      = regexp.MustCompile(`\bmade in india\b`)

	// RE2 has no negative lookahead, so "imported" not followed by "from"
	// is detected by capturing the optional " from" and checking that at
	// least one occurrence lacks it.
	reImported    = regexp.MustCompile(`\bimported\b(\s+from)?`)
	reImportedAny = regexp.MustCompile(`\bimported\b`)

	reDurable     = regexp.MustCompile(`\bdurable\b`)
	reLongLasting = regexp.MustCompile(`\blong lasting\b`)
	reHighQuality = regexp.MustCompile(`\bhigh quality\b`)
)

// sustainableBrands are matched as whole words against the listing text.
var sustainableBrands = []*regexp.Regexp{
	regexp.MustCompile(`\bpatagonia\b`),
	regexp.MustCompile(`\btentree\b`),
	regexp.MustCompile(`\ballbirds\b`),
	regexp.MustCompile(`\breformation\b`),
	regexp.MustCompile(`\becofriendly\b`),
	regexp.MustCompile(`\becoalf\b`),
	regexp.MustCompile(`\bthought\b`),
	regexp.MustCompile(`\bpeople tree\b`),
}

// defaultRecycledPercent is assumed when "recycled" appears without an
// explicit percentage.
const defaultRecycledPercent = 0.3

// ExtractFeatures derives the sustainability feature vector from listing
// text. Pure function: empty or pattern-free text yields the zero vector,
// which is a legal neutral input to the carbon model.
func ExtractFeatures(text string, _ domain.CategoryKey) domain.FeatureVector {
	lower := lowercase(text)
	var f domain.FeatureVector

	if reOrganic.MatchString(lower) {
		f.Organic = 1
	}

	if m := reRecycledPercent.FindStringSubmatch(lower); m != nil {
		f.Recycled = 1
		if pct, err := strconv.Atoi(m[1]); err == nil {
			f.RecycledPercent = float64(pct) / 100
		}
	} else if reRecycled.MatchString(lower) {
		f.Recycled = 1
		f.RecycledPercent = defaultRecycledPercent
	}

	if rePolyester.MatchString(lower) {
		f.Polyester = 1
	}

	// "imported" is a negative signal only when it is not qualified by an
	// origin ("imported from ..." is not penalized).
	for _, m := range reImported.FindAllStringSubmatch(lower, -1) {
		if m[1] == "" {
			f.Imported = 1
			break
		}
	}

	if reAirFreight.MatchString(lower) {
		f.AirFreight = 1
	}
	if reFastFashion.MatchString(lower) {
		f.FastFashion = 1
	}

	for _, brand := range sustainableBrands {
		if brand.MatchString(lower) {
			f.SustainableBrand = 1
			break
		}
	}

	f.Distance = shippingDistance(lower)

	if reDurable.MatchString(lower) {
		f.Durability += 0.4
	}
	if reLongLasting.MatchString(lower) {
		f.Durability += 0.3
	}
	if reHighQuality.MatchString(lower) {
		f.Durability += 0.3
	}
	if f.Durability > 1.0 {
		f.Durability = 1.0
	}

	if reWaterEfficient.MatchString(lower) {
		f.WaterEfficient = 1
	}
	if reEnergyStar.MatchString(lower) {
		f.EnergyStar = 1
	}
	if reLocal.MatchString(lower) {
		f.LocalProduction = 1
	}
	if reRenewable.MatchString(lower) {
		f.RenewableEnergy = 1
	}
	if reAcrylic.MatchString(lower) || reNylon.MatchString(lower) {
		f.SyntheticMaterial = 1
	}

	return f
}

// shippingDistance maps "made in X" phrases to a coarse distance in km.
// Only the first matching rule applies.
func shippingDistance(lower string) float64 {
	switch {
	case reMadeInChina.MatchString(lower):
		return 5000
	case reMadeInBangladesh.MatchString(lower):
		return 3000
	case reMadeInIndia.MatchString(lower):
		return 0
	case reImportedAny.MatchString(lower):
		return 4000
	default:
		return 0
	}
}

func lowercase(s string) string {
	return strings.ToLower(s)
}
