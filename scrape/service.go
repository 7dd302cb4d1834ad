// Package scrape provides page-level orchestration: fetch a page, run the
// matching extractor, and optionally fan out over a competition's fixture
// links to collect every match report.
package scrape

import (
	"context"
	"net/url"
	"time"

	"github.com/jmarasovic/semafor"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the fixture fan-out. Extraction is pure, so
// concurrent per-page calls are safe; the bound exists for the fetches.
const DefaultConcurrency = 4

// Service coordinates fetching and extraction.
type Service struct {
	Fetcher      semafor.Fetcher
	Matches      semafor.MatchExtractor
	Competitions semafor.CompetitionExtractor

	// Limiter, when set, throttles fetches per domain.
	Limiter *DomainLimiter

	// Concurrency bounds the match-report fan-out in Report.
	// Defaults to DefaultConcurrency when zero.
	Concurrency int

	// RetryDelays configures fetch retry backoff.
	// Defaults to DefaultRetryDelays when nil.
	RetryDelays []time.Duration
}

// Report bundles a competition record with the match reports scraped from
// its fixture links.
type Report struct {
	Competition *semafor.CompetitionRecord `json:"competition"`
	Matches     []*semafor.MatchRecord     `json:"matches"`
	Failed      int                        `json:"failed"`
}

// Match fetches one match-report page and extracts its record.
func (s *Service) Match(ctx context.Context, pageURL string) (*semafor.MatchRecord, error) {
	html, err := s.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return s.Matches.ExtractMatch(html, pageURL)
}

// Competition fetches one competition index page and extracts its record.
func (s *Service) Competition(ctx context.Context, pageURL string) (*semafor.CompetitionRecord, error) {
	html, err := s.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return s.Competitions.ExtractCompetition(html, pageURL)
}

// CompetitionReport extracts a competition page and then every match report
// its fixtures link to. Match pages are fetched concurrently; a failed page
// is counted and skipped rather than failing the whole report.
func (s *Service) CompetitionReport(ctx context.Context, pageURL string) (*Report, error) {
	comp, err := s.Competition(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var urls []string
	for _, fx := range comp.Fixtures {
		if fx.MatchURL == "" || seen[fx.MatchURL] {
			continue
		}
		seen[fx.MatchURL] = true
		urls = append(urls, fx.MatchURL)
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*semafor.MatchRecord, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, matchURL := range urls {
		i, matchURL := i, matchURL
		g.Go(func() error {
			rec, err := s.Match(gctx, matchURL)
			if err != nil {
				return nil // skipped, counted below
			}
			results[i] = rec
			return nil
		})
	}
	_ = g.Wait()

	report := &Report{Competition: comp, Matches: []*semafor.MatchRecord{}}
	for _, rec := range results {
		if rec == nil {
			report.Failed++
			continue
		}
		report.Matches = append(report.Matches, rec)
	}
	return report, nil
}

// fetch applies the rate limit and retry policy around the fetcher.
func (s *Service) fetch(ctx context.Context, pageURL string) (string, error) {
	if s.Limiter != nil {
		if u, err := url.Parse(pageURL); err == nil {
			if err := s.Limiter.Wait(ctx, u.Host); err != nil {
				return "", err
			}
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, pageURL, s.Fetcher.Fetch, delays)
}
