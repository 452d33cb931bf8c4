package engine

import (
	score "github.com/greenverse/greenscore/pkg/scorer"
	domain "github.com/greenverse/greenscore/pkg/types"
)

// BuildCatalog runs the scoring pipeline over raw scraped candidates and
// produces the pre-scored alternative records the ranker consumes. This is
// the batch half of the system: the offline scraper collects candidates,
// this turns them into a publishable catalog snapshot.
//
// Candidates without an explicit category get one derived from their title;
// candidates that resolve to no category at all are skipped rather than
// polluting the default bucket.
func (e *Engine) BuildCatalog(candidates []domain.RawCandidate) []domain.AlternativeRecord {
	records := make([]domain.AlternativeRecord, 0, len(candidates))

	for _, c := range candidates {
		key := c.Category
		if key == domain.CategoryUnknown {
			key = score.DeriveCategoryKey(c.Title)
		}
		if key == domain.CategoryUnknown {
			e.log.Warn("skipping candidate with no derivable category", "id", c.ID, "title", c.Title)
			continue
		}

		text := c.AllText
		if text == "" {
			text = c.Title
		}

		carbon := score.EstimateCarbonFootprintWithPolicy(text, key, e.policy)

		price := 0.0
		if c.Price != nil {
			price = *c.Price
		}

		bundle := domain.ScoreBundle{
			Carbon:     carbon,
			Keywords:   score.KeywordScore(text),
			Rating:     score.RatingScore(c.Rating),
			Reviews:    score.ReviewCountScore(c.ReviewCount),
			Price:      price,
			Durability: score.DurabilityScore(text),
		}

		refPrice := score.CategoryMaxValues(key).MaxPrice
		breakdown := score.Compute(bundle, key, refPrice, e.policy)

		records = append(records, domain.AlternativeRecord{
			ID:          c.ID,
			Category:    key,
			Title:       c.Title,
			Score:       breakdown.Total,
			Price:       c.Price,
			Carbon:      carbon,
			Rating:      c.Rating,
			ReviewCount: c.ReviewCount,
			ImgURL:      c.ImgURL,
		})
	}

	return records
}
