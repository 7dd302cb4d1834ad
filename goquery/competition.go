package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jmarasovic/semafor"
	"golang.org/x/net/html"
)

// DefaultFixtureWindow caps how many sibling elements are scanned after each
// date anchor before giving up on finding fixture rows for that round.
const DefaultFixtureWindow = 40

// Ensure CompetitionExtractor implements semafor.CompetitionExtractor.
var _ semafor.CompetitionExtractor = (*CompetitionExtractor)(nil)

// CompetitionExtractor produces a CompetitionRecord from a competition
// index page.
type CompetitionExtractor struct {
	patterns      *semafor.PatternLibrary
	fixtureWindow int
}

// CompetitionOption configures a CompetitionExtractor.
type CompetitionOption func(*CompetitionExtractor)

// WithFixtureWindow overrides the per-round sibling scan cap.
func WithFixtureWindow(n int) CompetitionOption {
	return func(e *CompetitionExtractor) {
		e.fixtureWindow = n
	}
}

// NewCompetitionExtractor creates a new CompetitionExtractor.
func NewCompetitionExtractor(patterns *semafor.PatternLibrary, opts ...CompetitionOption) *CompetitionExtractor {
	e := &CompetitionExtractor{
		patterns:      patterns,
		fixtureWindow: DefaultFixtureWindow,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractCompetition parses raw HTML and extracts one competition record.
// Every sub-extractor here is best-effort: a section that cannot be located
// leaves its slice empty and appends a Diagnostic. The only error is an
// unparsable document.
func (e *CompetitionExtractor) ExtractCompetition(rawHTML string, pageURL string) (*semafor.CompetitionRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, semafor.Errorf(semafor.EINVALID, "failed to parse HTML for %s: %v", pageURL, err)
	}
	cur := newCursor(doc)

	rec := &semafor.CompetitionRecord{
		URL:         pageURL,
		Teams:       []semafor.TeamInfo{},
		Fixtures:    []semafor.FixtureRecord{},
		Standings:   []semafor.StandingsRow{},
		PlayerStats: make(map[string]*semafor.PlayerStatRecord),
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	e.extractMeta(doc, cur, rec)
	e.extractTeams(doc, base, rec)
	e.extractFixtures(cur, base, rec)
	e.extractStandings(doc, rec)
	e.extractPlayerStats(doc, cur, rec)

	return rec, nil
}

// extractMeta reads the competition name from the page heading, falling back
// to the document title and finally to the page URL, and scans for a season
// label anywhere in the text.
func (e *CompetitionExtractor) extractMeta(doc *goquery.Document, cur *cursor, rec *semafor.CompetitionRecord) {
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		rec.Name = semafor.CollapseSpace(h1.Text())
	}
	if rec.Name == "" {
		rec.Name = semafor.CollapseSpace(doc.Find("title").First().Text())
	}
	if rec.Name == "" {
		rec.Name = rec.URL
		rec.Diagnostics = append(rec.Diagnostics, semafor.Diagnostic{
			Stage:  "meta",
			Detail: "no heading or title; using url as competition name",
		})
	}

	if node := cur.findText(func(s string) bool {
		_, ok := e.patterns.FindSeason(s)
		return ok
	}); node != nil {
		rec.SeasonLabel, _ = e.patterns.FindSeason(node.Data)
	}
}

// extractTeams scans every hyperlink for club candidates: the visible text
// starts with a club-type abbreviation, or the link path points at a club
// page. Teams are deduplicated by visible name, first occurrence wins. When
// the link scan finds nothing, generic containers are scanned for club-named
// text as a name-only fallback.
func (e *CompetitionExtractor) extractTeams(doc *goquery.Document, base *url.URL, rec *semafor.CompetitionRecord) {
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		name := semafor.CollapseSpace(sel.Text())
		if name == "" {
			return
		}
		if !e.patterns.IsClubName(name) && !e.patterns.IsClubPath(href) {
			return
		}
		if seen[name] {
			return
		}
		seen[name] = true

		team := semafor.TeamInfo{
			Name: name,
			URL:  resolveURL(base, href),
		}
		if src, ok := sel.Find("img").First().Attr("src"); ok && src != "" {
			team.Crest = resolveURL(base, src)
		}
		if id := e.patterns.ClubID(href); id != "" {
			team.SiteID = id
		} else {
			team.SiteID = href
		}
		rec.Teams = append(rec.Teams, team)
	})

	if len(rec.Teams) > 0 {
		return
	}
	rec.Diagnostics = append(rec.Diagnostics, semafor.Diagnostic{
		Stage:  "teams",
		Detail: "no club links found; falling back to container text scan",
	})

	doc.Find("div, li, span").Each(func(_ int, sel *goquery.Selection) {
		name := semafor.CollapseSpace(sel.Text())
		if name == "" || !e.patterns.IsClubName(name) || seen[name] {
			return
		}
		seen[name] = true
		rec.Teams = append(rec.Teams, semafor.TeamInfo{Name: name})
	})
}

// extractFixtures anchors on every date-pattern text node and scans a bounded
// run of following sibling elements for rows that carry at least two team
// links plus a score, stopping early when the next round's date appears.
// When no fixture is found that way, it falls back to scanning the whole
// document for score texts and taking the two nearest links as the teams.
func (e *CompetitionExtractor) extractFixtures(cur *cursor, base *url.URL, rec *semafor.CompetitionRecord) {
	anchors := cur.findTexts(func(s string) bool { return e.patterns.HasDate(s) })

	for _, node := range anchors {
		if node.Parent == nil {
			continue
		}
		kickoff := e.patterns.ParseKickoff(strings.TrimSpace(node.Data))

		steps := 0
		for sib := node.Parent.NextSibling; sib != nil && steps < e.fixtureWindow; sib = sib.NextSibling {
			if sib.Type != html.ElementNode {
				continue
			}
			steps++

			rowText := textOf(sib)
			if e.patterns.HasDate(rowText) {
				break // next round begins here
			}

			links := elementsUnder(sib, "a")
			if len(links) < 2 {
				continue
			}
			homeGoals, awayGoals, ok := e.patterns.FindScore(rowText)
			if !ok {
				continue
			}

			fx := semafor.FixtureRecord{
				Kickoff:   kickoff,
				HomeTeam:  semafor.CollapseSpace(textOf(links[0])),
				AwayTeam:  semafor.CollapseSpace(textOf(links[1])),
				HomeGoals: &homeGoals,
				AwayGoals: &awayGoals,
			}
			for _, l := range links {
				if href := attr(l, "href"); href != "" && e.patterns.IsMatchPath(href) {
					fx.MatchURL = resolveURL(base, href)
					break
				}
			}
			rec.Fixtures = append(rec.Fixtures, fx)
		}
	}

	if len(rec.Fixtures) > 0 {
		return
	}
	rec.Diagnostics = append(rec.Diagnostics, semafor.Diagnostic{
		Stage:  "fixtures",
		Detail: "no date-anchored fixture rows; falling back to score scan",
	})

	for _, node := range cur.findTexts(func(s string) bool { return e.patterns.HasScore(s) }) {
		if node.Parent == nil {
			continue
		}
		links := elementsUnder(node.Parent, "a")
		if len(links) < 2 {
			continue
		}
		homeGoals, awayGoals, ok := e.patterns.FindScore(node.Data)
		if !ok {
			continue
		}
		rec.Fixtures = append(rec.Fixtures, semafor.FixtureRecord{
			HomeTeam:  semafor.CollapseSpace(textOf(links[0])),
			AwayTeam:  semafor.CollapseSpace(textOf(links[1])),
			HomeGoals: &homeGoals,
			AwayGoals: &awayGoals,
		})
	}
}

// extractStandings treats a table as a standings table only if its header
// cells carry recognizable keywords. Row parsing is strictly positional;
// a row without a parsable position is skipped silently, and count cells
// default to zero when not purely numeric.
func (e *CompetitionExtractor) extractStandings(doc *goquery.Document, rec *semafor.CompetitionRecord) {
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		var headers []string
		table.Find("th").Each(func(_ int, th *goquery.Selection) {
			headers = append(headers, strings.ToLower(strings.TrimSpace(th.Text())))
		})
		joined := strings.Join(headers, " ")
		if !strings.Contains(joined, "poz") && !strings.Contains(joined, "klub") && !strings.Contains(joined, "bod") {
			return
		}

		seen := make(map[int]bool) // positions are unique within one table
		table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
			cells := tr.Find("td")
			if cells.Length() < 2 {
				return
			}
			texts := make([]string, cells.Length())
			cells.Each(func(i int, td *goquery.Selection) {
				texts[i] = semafor.CollapseSpace(td.Text())
			})

			pos, ok := e.patterns.Number(texts[0])
			if !ok || seen[pos] {
				return
			}
			seen[pos] = true

			points, _ := e.patterns.Number(texts[len(texts)-1])
			rec.Standings = append(rec.Standings, semafor.StandingsRow{
				Position:     pos,
				Team:         texts[1],
				Played:       e.cellNumber(texts, 2),
				Wins:         e.cellNumber(texts, 3),
				Draws:        e.cellNumber(texts, 4),
				Losses:       e.cellNumber(texts, 5),
				GoalsFor:     e.cellNumber(texts, 6),
				GoalsAgainst: e.cellNumber(texts, 7),
				Points:       points,
			})
		})
	})
}

// cellNumber returns the numeric value of column i, or zero when the column
// is absent or not purely numeric.
func (e *CompetitionExtractor) cellNumber(texts []string, i int) int {
	if i >= len(texts) {
		return 0
	}
	n, ok := e.patterns.Number(texts[i])
	if !ok {
		return 0
	}
	return n
}

// extractPlayerStats walks the recognized stat sections (scorers, cards,
// appearances/minutes). For every sibling element up to the next heading,
// each link text is a candidate player name and the integers in the
// sibling's combined text are assigned positionally by section type. Records
// merge into a by-name accumulator; later sections never erase what an
// earlier one found.
func (e *CompetitionExtractor) extractPlayerStats(doc *goquery.Document, cur *cursor, rec *semafor.CompetitionRecord) {
	sections := []string{
		semafor.SectionScorers,
		semafor.SectionCards,
		semafor.SectionAppearances,
	}

	for _, label := range sections {
		heading := findSectionHeading(doc, cur, label)
		if heading == nil {
			rec.Diagnostics = append(rec.Diagnostics, semafor.Diagnostic{
				Stage:  "playerstats",
				Detail: "section " + label + " not found",
			})
			continue
		}

		for sib := heading.NextSibling; sib != nil; sib = sib.NextSibling {
			if sib.Type != html.ElementNode {
				continue
			}
			if isHeadingTag(sib.Data) {
				break // next major section
			}

			numbers := e.patterns.Integers(textOf(sib))
			for _, a := range elementsUnder(sib, "a") {
				name := semafor.CollapseSpace(textOf(a))
				if name == "" {
					continue
				}
				src := e.statRecord(label, name, numbers)
				if existing, ok := rec.PlayerStats[name]; ok {
					existing.Merge(src)
				} else {
					rec.PlayerStats[name] = src
				}
			}
		}
	}
}

// statRecord builds the partial record one section contributes for a player.
func (e *CompetitionExtractor) statRecord(label, name string, numbers []int) *semafor.PlayerStatRecord {
	rec := &semafor.PlayerStatRecord{FullName: name}
	switch label {
	case semafor.SectionScorers:
		goals := 0
		if len(numbers) > 0 {
			goals = numbers[0]
		}
		rec.Goals = &goals
	case semafor.SectionCards:
		yellow, red := 0, 0
		if len(numbers) > 0 {
			yellow = numbers[0]
		}
		if len(numbers) > 1 {
			red = numbers[1]
		}
		rec.YellowCards = &yellow
		rec.RedCards = &red
	case semafor.SectionAppearances:
		if len(numbers) > 0 {
			appearances := numbers[0]
			rec.Appearances = &appearances
		}
		if len(numbers) > 1 {
			minutes := numbers[1]
			rec.Minutes = &minutes
		}
	}
	return rec
}

// findSectionHeading locates a stat-section heading by exact label match on
// heading-level elements, falling back to the parent of any text node that
// carries the label.
func findSectionHeading(doc *goquery.Document, cur *cursor, label string) *html.Node {
	var found *html.Node
	doc.Find("h2, h3, h4, strong").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(sel.Text(), label) {
			found = sel.Nodes[0]
			return false
		}
		return true
	})
	if found != nil {
		return found
	}

	if node := cur.findText(func(s string) bool { return strings.Contains(s, label) }); node != nil {
		return node.Parent
	}
	return nil
}

// resolveURL resolves href against the page URL. Unparsable links resolve
// to "".
func resolveURL(base *url.URL, href string) string {
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base == nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
