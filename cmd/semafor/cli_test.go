package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jmarasovic/semafor"
	main "github.com/jmarasovic/semafor/cmd/semafor"
	"github.com/jmarasovic/semafor/mock"
	"github.com/jmarasovic/semafor/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(svc *scrape.Service, stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Service: svc,
	}
}

func okFetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<html></html>", nil
		},
	}
}

func TestMatchCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints the match record as JSON", func(t *testing.T) {
		t.Parallel()

		svc := &scrape.Service{
			Fetcher: okFetcher(),
			Matches: &mock.MatchExtractor{
				ExtractMatchFn: func(html string, url string) (*semafor.MatchRecord, error) {
					return &semafor.MatchRecord{
						URL:       url,
						HomeTeam:  "NK Orebić",
						AwayTeam:  "ONK Metković",
						HomeScore: 2,
						AwayScore: 1,
					}, nil
				},
			},
			RetryDelays: []time.Duration{},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		cmd := &main.MatchCmd{URL: "https://example.com/utakmice/1/"}

		err := cmd.Run(testDeps(svc, stdout, stderr))
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), `"homeTeam": "NK Orebić"`)
		assert.Contains(t, stdout.String(), `"awayTeam": "ONK Metković"`)
		assert.Empty(t, stderr.String())
	})

	t.Run("prints diagnostics as warnings on stderr", func(t *testing.T) {
		t.Parallel()

		svc := &scrape.Service{
			Fetcher: okFetcher(),
			Matches: &mock.MatchExtractor{
				ExtractMatchFn: func(html string, url string) (*semafor.MatchRecord, error) {
					return &semafor.MatchRecord{
						URL: url,
						Diagnostics: []semafor.Diagnostic{
							{Stage: "lineups", Detail: "no lineup blocks found"},
						},
					}, nil
				},
			},
			RetryDelays: []time.Duration{},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		cmd := &main.MatchCmd{URL: "https://example.com/utakmice/1/"}

		err := cmd.Run(testDeps(svc, stdout, stderr))
		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "warning: lineups: no lineup blocks found")
	})

	t.Run("reports fatal errors on stderr", func(t *testing.T) {
		t.Parallel()

		svc := &scrape.Service{
			Fetcher: okFetcher(),
			Matches: &mock.MatchExtractor{
				ExtractMatchFn: func(html string, url string) (*semafor.MatchRecord, error) {
					return nil, semafor.Errorf(semafor.EMALFORMED, "no match header found")
				},
			},
			RetryDelays: []time.Duration{},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		cmd := &main.MatchCmd{URL: "https://example.com/utakmice/1/"}

		err := cmd.Run(testDeps(svc, stdout, stderr))
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: no match header found")
		assert.Empty(t, stdout.String())
	})
}

func TestCompetitionCmd(t *testing.T) {
	t.Parallel()

	competitionService := func() *scrape.Service {
		return &scrape.Service{
			Fetcher: okFetcher(),
			Competitions: &mock.CompetitionExtractor{
				ExtractCompetitionFn: func(html string, url string) (*semafor.CompetitionRecord, error) {
					return &semafor.CompetitionRecord{
						URL:  url,
						Name: "2. ŽNL Dubrovačko-neretvanska",
						Standings: []semafor.StandingsRow{
							{Position: 1, Team: "NK Orebić", Played: 10, Wins: 8, Draws: 1, Losses: 1, GoalsFor: 24, GoalsAgainst: 9, Points: 25},
						},
					}, nil
				},
			},
			RetryDelays: []time.Duration{},
		}
	}

	t.Run("prints the competition record as JSON", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		cmd := &main.CompetitionCmd{URL: "https://example.com/natjecanja/1/"}

		err := cmd.Run(testDeps(competitionService(), stdout, stderr))
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"name": "2. ŽNL Dubrovačko-neretvanska"`)
	})

	t.Run("prints a table with --standings", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		cmd := &main.CompetitionCmd{URL: "https://example.com/natjecanja/1/", Standings: true}

		err := cmd.Run(testDeps(competitionService(), stdout, stderr))
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "NK Orebić")
		assert.NotContains(t, stdout.String(), "{")
	})
}

func TestReportCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints the report and warns about failed pages", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if url == "https://example.com/utakmice/2/" {
					return "", semafor.Errorf(semafor.EUNAVAILABLE, "GET %s: HTTP 404", url)
				}
				return "<html></html>", nil
			},
		}
		svc := &scrape.Service{
			Fetcher: fetcher,
			Competitions: &mock.CompetitionExtractor{
				ExtractCompetitionFn: func(html string, url string) (*semafor.CompetitionRecord, error) {
					return &semafor.CompetitionRecord{
						Fixtures: []semafor.FixtureRecord{
							{MatchURL: "https://example.com/utakmice/1/"},
							{MatchURL: "https://example.com/utakmice/2/"},
						},
					}, nil
				},
			},
			Matches: &mock.MatchExtractor{
				ExtractMatchFn: func(html string, url string) (*semafor.MatchRecord, error) {
					return &semafor.MatchRecord{URL: url}, nil
				},
			},
			RetryDelays: []time.Duration{},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		cmd := &main.ReportCmd{URL: "https://example.com/natjecanja/1/"}

		err := cmd.Run(testDeps(svc, stdout, stderr))
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "https://example.com/utakmice/1/")
		assert.Contains(t, stderr.String(), "1 match page(s) could not be scraped")
	})
}

func TestMainRun(t *testing.T) {
	t.Parallel()

	t.Run("no arguments shows help and errors", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{}, stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help flag succeeds", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, stderr)
		require.NoError(t, err)
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"bogus"}, stdout, stderr)
		require.Error(t, err)
	})
}
