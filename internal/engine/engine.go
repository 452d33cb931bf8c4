// Package engine orchestrates the scoring pipeline: assessment of scraped
// product signals, alternative ranking against the catalog snapshot,
// catalog refresh, and the saved-CO2 ledger.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/greenverse/greenscore/internal/catalog"
	"github.com/greenverse/greenscore/internal/metrics"
	"github.com/greenverse/greenscore/internal/ranker"
	score "github.com/greenverse/greenscore/pkg/scorer"
	domain "github.com/greenverse/greenscore/pkg/types"
)

// ErrInvalidInput is returned when a caller passes non-finite numeric
// input. Failing fast here keeps NaN from propagating into aggregates.
var ErrInvalidInput = errors.New("invalid input")

// Engine evaluates products and ranks alternatives. All scoring calls are
// stateless; the only mutable state is the catalog holder (swapped
// atomically) and the savings ledger (mutex-guarded).
type Engine struct {
	holder *catalog.Holder
	source catalog.Source
	policy score.Policy
	log    *slog.Logger

	mu       sync.Mutex
	co2Saved float64
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithPolicy sets the scoring policy.
func WithPolicy(p score.Policy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// New creates an Engine reading snapshots from holder and refreshing them
// from source.
func New(holder *catalog.Holder, source catalog.Source, opts ...Option) *Engine {
	e := &Engine{
		holder: holder,
		source: source,
		policy: score.DefaultPolicy(),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AssessRequest wraps a product signal with an optional reference price.
// When absent, the category benchmark's MaxPrice is used.
type AssessRequest struct {
	Signal         domain.ProductSignal
	ReferencePrice *float64
}

// Assess runs the full scoring pipeline over one product signal.
func (e *Engine) Assess(req AssessRequest) (*domain.Assessment, error) {
	if !req.Signal.Valid() {
		metrics.InvalidInputTotal.Inc()
		return nil, fmt.Errorf("%w: price and rating must be finite numbers", ErrInvalidInput)
	}
	if req.ReferencePrice != nil {
		if ref := *req.ReferencePrice; math.IsNaN(ref) || math.IsInf(ref, 0) {
			metrics.InvalidInputTotal.Inc()
			return nil, fmt.Errorf("%w: reference price must be a finite number", ErrInvalidInput)
		}
	}

	text := req.Signal.AllText()
	key := score.DeriveCategoryKey(req.Signal.Title)

	refPrice := score.CategoryMaxValues(key).MaxPrice
	if req.ReferencePrice != nil {
		refPrice = *req.ReferencePrice
	}

	features := score.ExtractFeatures(text, key)
	carbon := score.EstimateCarbonFootprintWithPolicy(text, key, e.policy)

	bundle := domain.ScoreBundle{
		Carbon:     carbon,
		Keywords:   score.KeywordScore(text),
		Rating:     score.RatingScore(req.Signal.Rating),
		Reviews:    score.ReviewCountScore(req.Signal.ReviewCount),
		Price:      req.Signal.Price,
		Durability: score.DurabilityScore(text),
	}

	breakdown := score.Compute(bundle, key, refPrice, e.policy)

	metrics.AssessmentsTotal.Inc()
	metrics.ScoringDistribution.Observe(float64(breakdown.Total))

	return &domain.Assessment{
		Category:       key,
		CarbonKg:       carbon,
		Features:       features,
		Bundle:         bundle,
		Score:          breakdown.Total,
		ReferencePrice: refPrice,
		Policy:         e.policy.Name,
	}, nil
}

// AlternativesRequest describes the product to find substitutes for.
// CurrentScore is optional; when absent, the title's keyword score stands
// in, matching how the extension scores the page it is on.
type AlternativesRequest struct {
	Title        string
	CurrentScore *int
	PriceRange   *domain.PriceRange
	BasePrice    *float64
	Prefs        *domain.Prefs
}

// AlternativesResult carries the ranked substitutes and the fallback tier
// that produced them.
type AlternativesResult struct {
	Category     domain.CategoryKey
	CurrentScore int
	Tier         ranker.Tier
	Alternatives []domain.AlternativeRecord
}

// FindAlternatives ranks greener substitutes for the given product against
// the current catalog snapshot. Returns ErrCatalogUnavailable when no
// snapshot has been loaded.
func (e *Engine) FindAlternatives(req AlternativesRequest) (*AlternativesResult, error) {
	key := score.DeriveCategoryKey(req.Title)
	if key == domain.CategoryUnknown {
		return nil, fmt.Errorf("%w: cannot derive category from title", ErrInvalidInput)
	}

	snap, err := e.holder.Current()
	if err != nil {
		return nil, err
	}

	current := int(score.KeywordScore(req.Title))
	if req.CurrentScore != nil {
		current = *req.CurrentScore
	}

	alts, tier := ranker.FindAlternatives(snap, ranker.Request{
		Category:     key,
		CurrentScore: current,
		PriceRange:   req.PriceRange,
		BasePrice:    req.BasePrice,
		Prefs:        req.Prefs,
	})

	metrics.AlternativesServedTotal.Add(float64(len(alts)))
	metrics.RankerTierTotal.WithLabelValues(string(tier)).Inc()

	e.log.Debug("alternatives ranked",
		"category", key,
		"current_score", current,
		"tier", tier,
		"count", len(alts),
	)

	return &AlternativesResult{
		Category:     key,
		CurrentScore: current,
		Tier:         tier,
		Alternatives: alts,
	}, nil
}

// RefreshCatalog fetches a fresh record set from the source and publishes
// it as the active snapshot. On failure the previous snapshot stays live.
func (e *Engine) RefreshCatalog(ctx context.Context) error {
	records, err := e.source.Fetch(ctx)
	if err != nil {
		metrics.CatalogRefreshErrorsTotal.Inc()
		return fmt.Errorf("refreshing catalog: %w", err)
	}

	snap := catalog.New(records)
	e.holder.Swap(snap)

	metrics.CatalogRefreshesTotal.Inc()
	metrics.CatalogRecords.Set(float64(snap.Total()))

	e.log.Info("catalog refreshed", "records", snap.Total())
	return nil
}

// CatalogStats reports the active snapshot's record counts.
func (e *Engine) CatalogStats() (catalog.Stats, error) {
	snap, err := e.holder.Current()
	if err != nil {
		return catalog.Stats{}, err
	}
	return snap.Stats(), nil
}

// RecordSaving adds a CO2 delta (kg) to the cumulative savings ledger and
// returns the new total. Negative deltas are ignored.
func (e *Engine) RecordSaving(deltaKg float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if deltaKg > 0 {
		e.co2Saved += deltaKg
		metrics.CO2SavedKg.Set(e.co2Saved)
	}
	return e.co2Saved
}

// TotalSaved returns the cumulative kg CO2e recorded so far.
func (e *Engine) TotalSaved() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.co2Saved
}
