// Package domain defines the core business types for greenscore.
package domain

import (
	"math"
	"strings"
)

// CategoryKey identifies a product category with known carbon benchmarks.
type CategoryKey string

// Category key constants.
const (
	CategoryTShirt        CategoryKey = "tshirt"
	CategoryJeans         CategoryKey = "jeans"
	CategoryPlasticBottle CategoryKey = "plastic_bottle"
	CategoryPhoneCharger  CategoryKey = "phone_charger"
	CategoryCoffeeMug     CategoryKey = "coffee_mug"
	CategorySneakers      CategoryKey = "sneakers"

	// CategoryDefault is the fallback benchmark for unrecognized categories.
	CategoryDefault CategoryKey = "default"

	// CategoryUnknown means no category pattern matched the product text.
	CategoryUnknown CategoryKey = ""
)

// Categories lists all known category keys, excluding the default fallback.
func Categories() []CategoryKey {
	return []CategoryKey{
		CategoryTShirt,
		CategoryJeans,
		CategoryPlasticBottle,
		CategoryPhoneCharger,
		CategoryCoffeeMug,
		CategorySneakers,
	}
}

// Benchmark holds the per-category normalization ceilings used when
// converting absolute footprint values to relative scores.
type Benchmark struct {
	MaxCO2   float64 `json:"max_co2"   yaml:"max_co2"`
	MaxWater float64 `json:"max_water" yaml:"max_water"`
	MaxWaste float64 `json:"max_waste" yaml:"max_waste"`
	MaxPrice float64 `json:"max_price" yaml:"max_price"`
}

// FeatureVector holds the numeric sustainability signals extracted from
// listing text. Binary flags are 0 or 1; RecycledPercent, Distance and
// Durability are continuous. All values are finite: a non-matching pattern
// yields 0, never NaN.
type FeatureVector struct {
	Organic           float64 `json:"organic"`
	Recycled          float64 `json:"recycled"`
	RecycledPercent   float64 `json:"recycled_percent"`
	Polyester         float64 `json:"polyester"`
	Imported          float64 `json:"imported"`
	AirFreight        float64 `json:"air_freight"`
	FastFashion       float64 `json:"fast_fashion"`
	SustainableBrand  float64 `json:"sustainable_brand"`
	Distance          float64 `json:"distance"`
	Durability        float64 `json:"durability"`
	WaterEfficient    float64 `json:"water_efficient"`
	EnergyStar        float64 `json:"energy_star"`
	LocalProduction   float64 `json:"local_production"`
	RenewableEnergy   float64 `json:"renewable_energy"`
	SyntheticMaterial float64 `json:"synthetic_material"`
}

// ScoreBundle carries the sub-scores computed for one product. Carbon is an
// absolute footprint in kg CO2e and Price is the raw product price; both are
// normalized during aggregation. The remaining fields are already in their
// declared score ranges.
type ScoreBundle struct {
	Carbon     float64 `json:"carbon"`
	Keywords   float64 `json:"keywords"`
	Rating     float64 `json:"rating"`
	Reviews    float64 `json:"reviews"`
	Price      float64 `json:"price"`
	Durability float64 `json:"durability"`
}

// ProductSignal is the raw scraped input supplied by the page-scraping
// collaborator. Title, bullets and description are concatenated into one
// text blob before feature extraction.
type ProductSignal struct {
	Title       string  `json:"title"`
	BulletText  string  `json:"bullet_text,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
}

// AllText returns the combined free-text content of the signal.
func (p *ProductSignal) AllText() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.Title, p.BulletText, p.Description} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Valid reports whether all numeric fields are finite. Callers passing NaN
// or Inf get a hard validation error instead of silently poisoned scores.
func (p *ProductSignal) Valid() bool {
	return !math.IsNaN(p.Price) && !math.IsInf(p.Price, 0) &&
		!math.IsNaN(p.Rating) && !math.IsInf(p.Rating, 0)
}

// Assessment is the full scoring result for one product.
type Assessment struct {
	Category       CategoryKey   `json:"category"`
	CarbonKg       float64       `json:"carbon_kg"`
	Features       FeatureVector `json:"features"`
	Bundle         ScoreBundle   `json:"bundle"`
	Score          int           `json:"score"`
	ReferencePrice float64       `json:"reference_price"`
	Policy         string        `json:"policy"`
}

// AlternativeRecord is a pre-scored candidate product from the catalog.
// Price, Rating and ReviewCount are optional because the offline scraper
// cannot always recover them.
type AlternativeRecord struct {
	ID          string      `json:"asin"`
	Category    CategoryKey `json:"category"`
	Title       string      `json:"title"`
	Score       int         `json:"score"`
	Price       *float64    `json:"price,omitempty"`
	Carbon      float64     `json:"carbon,omitempty"`
	Rating      float64     `json:"rating,omitempty"`
	ReviewCount int         `json:"review_count,omitempty"`
	ImgURL      string      `json:"img_url,omitempty"`
}

// PriceRange bounds the acceptable price for alternative candidates.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Reference returns the price used for "equal score, cheaper" comparisons:
// the explicit base price when given, otherwise the range midpoint.
func Reference(basePrice *float64, pr *PriceRange) (float64, bool) {
	if basePrice != nil {
		return *basePrice, true
	}
	if pr != nil {
		return (pr.Min + pr.Max) / 2, true
	}
	return 0, false
}

// Prefs is the user preference surface persisted by the extension layer.
// OrganicWeight and PriceWeight are recognized but do not modulate the
// canonical scoring weights; StrictOrganic narrows alternative selection.
type Prefs struct {
	StrictOrganic bool    `json:"strict_organic"`
	OrganicWeight float64 `json:"organic_weight"`
	PriceWeight   float64 `json:"price_weight"`
}

// DefaultPrefs mirrors the defaults served to a fresh extension install.
func DefaultPrefs() Prefs {
	return Prefs{
		StrictOrganic: false,
		OrganicWeight: 0.7,
		PriceWeight:   0.3,
	}
}

// RawCandidate is an unscored product record produced by the offline
// marketplace scraper. The catalog builder runs the scoring pipeline over
// these to produce AlternativeRecords.
type RawCandidate struct {
	ID          string      `json:"asin"`
	Category    CategoryKey `json:"category"`
	Title       string      `json:"title"`
	AllText     string      `json:"all_text"`
	Price       *float64    `json:"price,omitempty"`
	Rating      float64     `json:"rating,omitempty"`
	ReviewCount int         `json:"review_count,omitempty"`
	ImgURL      string      `json:"img_url,omitempty"`
}
