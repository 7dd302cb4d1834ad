package goquery_test

import (
	"testing"
	"time"

	"github.com/jmarasovic/semafor"
	"github.com/jmarasovic/semafor/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const competitionPage = `<!DOCTYPE html>
<html>
<head><title>1. ŽNL - semafor</title></head>
<body>
<h1>1. ŽNL Dubrovačko-neretvanska</h1>
<p>Sezona 2025/2026</p>

<ul>
	<li><a href="/klub/12345/nk-orebic/"><img src="/media/kluby/12345.jpg">NK Orebić</a></li>
	<li><a href="/klub/67890/onk-metkovic/">ONK Metković</a></li>
	<li><a href="/klub/nk-croatia/">NK Croatia Gabrili</a></li>
	<li><a href="/klub/12345/nk-orebic/">NK Orebić</a></li>
</ul>

<div>
	<p>1. kolo, 28.09.2025. 16:00</p>
	<div>
		<a href="/klub/12345/">NK Orebić</a>
		<a href="/klub/67890/">ONK Metković</a>
		<span>4:5</span>
		<a href="/utakmice/101386217/nk-orebic-onk-metkovic-4-5/">Detalji</a>
	</div>
	<div>
		<a href="/klub/11111/">NK Croatia Gabrili</a>
		<a href="/klub/22222/">HNK Slaven</a>
		<span>2:2</span>
	</div>
	<p>2. kolo, 05.10.2025. 16:00</p>
	<div>
		<a href="/klub/67890/">ONK Metković</a>
		<a href="/klub/11111/">NK Croatia Gabrili</a>
		<span>1:0</span>
	</div>
</div>

<table>
	<thead><tr><th>Poz.</th><th>Klub</th><th>U</th><th>P</th><th>N</th><th>I</th><th>GD</th><th>GP</th><th>Bod</th></tr></thead>
	<tbody>
		<tr><td>1</td><td>FC Example</td><td>10</td><td>7</td><td>2</td><td>1</td><td>20</td><td>5</td><td>23</td></tr>
		<tr><td>2</td><td>ONK Metković</td><td>x</td><td>6</td><td>2</td><td>2</td><td>18</td><td>9</td><td>20</td></tr>
		<tr><td>-</td><td>suspended</td><td>0</td><td>0</td><td>0</td><td>0</td><td>0</td><td>0</td><td>0</td></tr>
	</tbody>
</table>

<h2>Strijelci</h2>
<div><a href="/igrac/1/">Ivan Ivić</a> 7</div>
<h2>Kartoni</h2>
<div><a href="/igrac/1/">Ivan Ivić</a> 3 1</div>
<h2>Nastupi / minute</h2>
<div><a href="/igrac/1/">Ivan Ivić</a> 12 980</div>
</body>
</html>`

func TestCompetitionExtractor_ExtractCompetition(t *testing.T) {
	t.Parallel()

	lib := semafor.NewPatternLibrary()
	e := goquery.NewCompetitionExtractor(lib)

	t.Run("extracts metadata", func(t *testing.T) {
		t.Parallel()

		rec, err := e.ExtractCompetition(competitionPage, "https://semafor.example/natjecanja/101384257/1-znl-2526/")
		require.NoError(t, err)

		assert.Equal(t, "1. ŽNL Dubrovačko-neretvanska", rec.Name)
		assert.Equal(t, "2025/2026", rec.SeasonLabel)
		assert.Equal(t, "https://semafor.example/natjecanja/101384257/1-znl-2526/", rec.URL)
	})

	t.Run("falls back to the document title and then the url for the name", func(t *testing.T) {
		t.Parallel()

		rec, err := e.ExtractCompetition(`<html><head><title>2. ŽNL</title></head><body></body></html>`, "https://semafor.example/x/")
		require.NoError(t, err)
		assert.Equal(t, "2. ŽNL", rec.Name)
		assert.Empty(t, rec.SeasonLabel)

		rec, err = e.ExtractCompetition(`<html><body></body></html>`, "https://semafor.example/x/")
		require.NoError(t, err)
		assert.Equal(t, "https://semafor.example/x/", rec.Name)
	})

	t.Run("extracts teams from club links, first occurrence wins", func(t *testing.T) {
		t.Parallel()

		rec, err := e.ExtractCompetition(competitionPage, "https://semafor.example/natjecanja/101384257/1-znl-2526/")
		require.NoError(t, err)

		names := make([]string, 0, len(rec.Teams))
		for _, team := range rec.Teams {
			names = append(names, team.Name)
		}
		// deduplicated by visible name across the team list and fixtures
		assert.Equal(t, []string{"NK Orebić", "ONK Metković", "NK Croatia Gabrili", "HNK Slaven"}, names)

		orebic := rec.Teams[0]
		assert.Equal(t, "https://semafor.example/klub/12345/nk-orebic/", orebic.URL)
		assert.Equal(t, "https://semafor.example/media/kluby/12345.jpg", orebic.Crest)
		assert.Equal(t, "12345", orebic.SiteID)

		// no numeric id in the path: falls back to the raw link path
		croatia := rec.Teams[2]
		assert.Equal(t, "/klub/nk-croatia/", croatia.SiteID)
	})

	t.Run("name-only fallback when no club links exist", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><h1>Liga</h1><ul><li>NK Prvi</li><li>NK Drugi</li><li>ostalo</li></ul></body></html>`
		rec, err := e.ExtractCompetition(page, "https://semafor.example/x/")
		require.NoError(t, err)

		require.Len(t, rec.Teams, 2)
		assert.Equal(t, "NK Prvi", rec.Teams[0].Name)
		assert.Empty(t, rec.Teams[0].URL)
		assert.Equal(t, "NK Drugi", rec.Teams[1].Name)
	})

	t.Run("extracts fixtures anchored on round dates", func(t *testing.T) {
		t.Parallel()

		rec, err := e.ExtractCompetition(competitionPage, "https://semafor.example/natjecanja/101384257/1-znl-2526/")
		require.NoError(t, err)

		require.Len(t, rec.Fixtures, 3)

		first := rec.Fixtures[0]
		assert.Equal(t, "NK Orebić", first.HomeTeam)
		assert.Equal(t, "ONK Metković", first.AwayTeam)
		require.NotNil(t, first.HomeGoals)
		require.NotNil(t, first.AwayGoals)
		assert.Equal(t, 4, *first.HomeGoals)
		assert.Equal(t, 5, *first.AwayGoals)
		require.NotNil(t, first.Kickoff)
		assert.Equal(t, time.Date(2025, time.September, 28, 16, 0, 0, 0, time.UTC), *first.Kickoff)
		assert.Equal(t, "https://semafor.example/utakmice/101386217/nk-orebic-onk-metkovic-4-5/", first.MatchURL)

		second := rec.Fixtures[1]
		assert.Equal(t, "NK Croatia Gabrili", second.HomeTeam)
		assert.Equal(t, "HNK Slaven", second.AwayTeam)
		assert.Empty(t, second.MatchURL)

		third := rec.Fixtures[2]
		assert.Equal(t, "ONK Metković", third.HomeTeam)
		require.NotNil(t, third.Kickoff)
		assert.Equal(t, time.Date(2025, time.October, 5, 16, 0, 0, 0, time.UTC), *third.Kickoff)
	})

	t.Run("falls back to a whole-page score scan", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><h1>Liga</h1>
<div><a href="/klub/1/">NK A</a> <a href="/klub/2/">NK B</a> 3:2</div>
</body></html>`
		rec, err := e.ExtractCompetition(page, "https://semafor.example/x/")
		require.NoError(t, err)

		require.Len(t, rec.Fixtures, 1)
		fx := rec.Fixtures[0]
		assert.Equal(t, "NK A", fx.HomeTeam)
		assert.Equal(t, "NK B", fx.AwayTeam)
		require.NotNil(t, fx.HomeGoals)
		assert.Equal(t, 3, *fx.HomeGoals)
		assert.Equal(t, 2, *fx.AwayGoals)
		assert.Nil(t, fx.Kickoff)

		stages := make([]string, 0, len(rec.Diagnostics))
		for _, d := range rec.Diagnostics {
			stages = append(stages, d.Stage)
		}
		assert.Contains(t, stages, "fixtures")
	})

	t.Run("extracts standings rows positionally", func(t *testing.T) {
		t.Parallel()

		rec, err := e.ExtractCompetition(competitionPage, "https://semafor.example/natjecanja/101384257/1-znl-2526/")
		require.NoError(t, err)

		require.Len(t, rec.Standings, 2)

		assert.Equal(t, semafor.StandingsRow{
			Position: 1, Team: "FC Example",
			Played: 10, Wins: 7, Draws: 2, Losses: 1,
			GoalsFor: 20, GoalsAgainst: 5, Points: 23,
		}, rec.Standings[0])

		// non-numeric played cell defaults to 0 without dropping the row
		second := rec.Standings[1]
		assert.Equal(t, 2, second.Position)
		assert.Equal(t, "ONK Metković", second.Team)
		assert.Equal(t, 0, second.Played)
		assert.Equal(t, 6, second.Wins)
		assert.Equal(t, 20, second.Points)
	})

	t.Run("ignores tables without standings keywords", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><h1>Liga</h1>
<table><thead><tr><th>Datum</th><th>Vrijeme</th></tr></thead>
<tbody><tr><td>1</td><td>nešto</td></tr></tbody></table>
</body></html>`
		rec, err := e.ExtractCompetition(page, "https://semafor.example/x/")
		require.NoError(t, err)
		assert.Empty(t, rec.Standings)
	})

	t.Run("accumulates player stats across sections", func(t *testing.T) {
		t.Parallel()

		rec, err := e.ExtractCompetition(competitionPage, "https://semafor.example/natjecanja/101384257/1-znl-2526/")
		require.NoError(t, err)

		require.Contains(t, rec.PlayerStats, "Ivan Ivić")
		stats := rec.PlayerStats["Ivan Ivić"]

		assert.Equal(t, "Ivan Ivić", stats.FullName)
		require.NotNil(t, stats.Goals)
		assert.Equal(t, 7, *stats.Goals)
		require.NotNil(t, stats.YellowCards)
		assert.Equal(t, 3, *stats.YellowCards)
		require.NotNil(t, stats.RedCards)
		assert.Equal(t, 1, *stats.RedCards)
		require.NotNil(t, stats.Appearances)
		assert.Equal(t, 12, *stats.Appearances)
		require.NotNil(t, stats.Minutes)
		assert.Equal(t, 980, *stats.Minutes)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		first, err := e.ExtractCompetition(competitionPage, "https://semafor.example/x/")
		require.NoError(t, err)
		second, err := e.ExtractCompetition(competitionPage, "https://semafor.example/x/")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
