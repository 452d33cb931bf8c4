package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"

	domain "github.com/greenverse/greenscore/pkg/types"
)

// Source supplies the raw record list a snapshot is built from.
type Source interface {
	Fetch(ctx context.Context) ([]domain.AlternativeRecord, error)
}

// FileSource reads the catalog from a JSON file on disk, the format written
// by the catalog builder.
type FileSource struct {
	Path string
}

// Fetch reads and parses the catalog file. Errors wrap
// ErrCatalogUnavailable so callers can branch with errors.Is.
func (s *FileSource) Fetch(_ context.Context) ([]domain.AlternativeRecord, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrCatalogUnavailable, s.Path, err)
	}
	return decodeRecords(data)
}

// HTTPSource fetches the catalog snapshot from a remote URL, rate limited
// so scheduled refreshes cannot hammer the producer.
type HTTPSource struct {
	URL     string
	Client  *http.Client
	Limiter *rate.Limiter
}

// NewHTTPSource creates an HTTPSource with a bounded request timeout and a
// token-bucket limiter.
func NewHTTPSource(url string, perSecond float64, burst int) *HTTPSource {
	return &HTTPSource{
		URL:     url,
		Client:  &http.Client{Timeout: 30 * time.Second},
		Limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Fetch downloads and parses the catalog.
func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.AlternativeRecord, error) {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("catalog fetch rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %w", ErrCatalogUnavailable, s.URL, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetching %s: status %d", ErrCatalogUnavailable, s.URL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading catalog body: %w", ErrCatalogUnavailable, err)
	}
	return decodeRecords(data)
}

func decodeRecords(data []byte) ([]domain.AlternativeRecord, error) {
	var records []domain.AlternativeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parsing catalog JSON: %w", ErrCatalogUnavailable, err)
	}
	return records, nil
}
