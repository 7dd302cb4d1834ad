package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jmarasovic/semafor"
	"golang.org/x/net/html"
)

// Scan bounds for the match-report heuristics. They are configuration, not
// contract: the true DOM shape of the goal block and lineup cards is only
// known from rendered text, so the bounds can be tuned per site revision.
const (
	// DefaultGoalScanWindow caps the forward walk from the referee marker.
	// The goal list has no closing marker; without a cap the walk could
	// scan the whole remainder of the document.
	DefaultGoalScanWindow = 120

	// DefaultShirtLookback is how many text nodes preceding a player-card
	// heading are examined for a shirt number.
	DefaultShirtLookback = 3
)

// Ensure MatchExtractor implements semafor.MatchExtractor at compile time.
var _ semafor.MatchExtractor = (*MatchExtractor)(nil)

// MatchExtractor produces a MatchRecord from a match-report page.
type MatchExtractor struct {
	patterns       *semafor.PatternLibrary
	goalScanWindow int
	shirtLookback  int
}

// MatchOption configures a MatchExtractor.
type MatchOption func(*MatchExtractor)

// WithGoalScanWindow overrides the goal-block forward scan cap.
func WithGoalScanWindow(n int) MatchOption {
	return func(e *MatchExtractor) {
		e.goalScanWindow = n
	}
}

// WithShirtLookback overrides the shirt-number backward scan length.
func WithShirtLookback(n int) MatchOption {
	return func(e *MatchExtractor) {
		e.shirtLookback = n
	}
}

// NewMatchExtractor creates a new MatchExtractor.
func NewMatchExtractor(patterns *semafor.PatternLibrary, opts ...MatchOption) *MatchExtractor {
	e := &MatchExtractor{
		patterns:       patterns,
		goalScanWindow: DefaultGoalScanWindow,
		shirtLookback:  DefaultShirtLookback,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractMatch parses raw HTML and extracts one match record.
//
// The title heading is the one required anchor: without it no downstream
// heuristic can attribute anything, so a missing or malformed title returns
// EMALFORMED. Every other sub-extractor degrades to empty fields plus a
// Diagnostic on the record.
func (e *MatchExtractor) ExtractMatch(rawHTML string, url string) (*semafor.MatchRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, semafor.Errorf(semafor.EINVALID, "failed to parse HTML for %s: %v", url, err)
	}
	cur := newCursor(doc)

	rec := &semafor.MatchRecord{
		URL:     url,
		Goals:   []semafor.GoalEvent{},
		Lineups: make(map[string][]semafor.PlayerInfo),
	}

	if err := e.extractHeader(doc, url, rec); err != nil {
		return nil, err
	}
	e.extractDateVenue(cur, rec)
	e.extractGoals(cur, rec)
	e.extractLineups(cur, rec)

	// Goals leave the extractor with no team; resolve them against the
	// lineup rosters now that both are known.
	index := semafor.PlayerTeamIndex(rec.Lineups, []string{rec.HomeTeam, rec.AwayTeam})
	semafor.ResolveGoalTeams(rec.Goals, index)

	return rec, nil
}

// extractHeader parses the primary heading against the grammar
// "<home> - <away> <homeScore>:<awayScore>, <competition>".
func (e *MatchExtractor) extractHeader(doc *goquery.Document, url string, rec *semafor.MatchRecord) error {
	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		return semafor.Errorf(semafor.EMALFORMED, "no match title <h1> in %s", url)
	}

	title := semafor.CollapseSpace(h1.Text())
	parts, ok := e.patterns.MatchTitle(title)
	if !ok {
		return semafor.Errorf(semafor.EMALFORMED, "unexpected match title format %q in %s", title, url)
	}

	rec.HomeTeam = parts.HomeTeam
	rec.AwayTeam = parts.AwayTeam
	rec.HomeScore = parts.HomeScore
	rec.AwayScore = parts.AwayScore
	rec.Competition = parts.Competition
	return nil
}

// extractDateVenue scans for the first "venue, city, DD.MM.YYYY. HH:MM" text.
// One segment before the timestamp is a venue only; two or more give venue
// and city; anything further is discarded.
func (e *MatchExtractor) extractDateVenue(cur *cursor, rec *semafor.MatchRecord) {
	node := cur.findText(func(s string) bool {
		_, _, ok := e.patterns.FindDateTime(s)
		return ok
	})
	if node == nil {
		rec.Diagnostics = append(rec.Diagnostics, semafor.Diagnostic{
			Stage:  "datevenue",
			Detail: "no date/time text found",
		})
		return
	}

	before, ts, _ := e.patterns.FindDateTime(strings.TrimSpace(node.Data))
	rec.Kickoff = &ts

	if before == "" {
		return
	}
	parts := strings.Split(before, ",")
	rec.Venue = strings.TrimSpace(parts[0])
	if len(parts) >= 2 {
		rec.City = strings.TrimSpace(parts[1])
	}
}

// extractGoals locates the referee list and scans a bounded window of the
// text that follows it with a two-state scanner: any token that is not a
// minute marker (and not the referee label itself) becomes the candidate
// scorer; a minute-marker token emits a goal and clears the candidate, so no
// scorer is ever reused for two minutes.
func (e *MatchExtractor) extractGoals(cur *cursor, rec *semafor.MatchRecord) {
	anchor := cur.findText(func(s string) bool {
		return strings.Contains(s, semafor.RefereeMarker)
	})
	if anchor == nil {
		rec.Diagnostics = append(rec.Diagnostics, semafor.Diagnostic{
			Stage:  "goals",
			Detail: "no referee marker found",
		})
		return
	}

	start := anchor.Parent
	if start == nil {
		start = anchor
	}
	tokens := cur.followingTexts(start, e.goalScanWindow)

	var candidate string
	for _, tok := range tokens {
		if minute, ok := e.patterns.Minute(tok); ok {
			if candidate != "" {
				rec.Goals = append(rec.Goals, semafor.GoalEvent{
					Player: candidate,
					Minute: minute,
				})
				candidate = ""
			}
			continue
		}
		if strings.HasPrefix(tok, "Suci") {
			continue
		}
		candidate = tok
	}
}

// extractLineups locates each team's lineup block by its exact team-name text
// node and parses the player cards inside.
func (e *MatchExtractor) extractLineups(cur *cursor, rec *semafor.MatchRecord) {
	for _, team := range []string{rec.HomeTeam, rec.AwayTeam} {
		rec.Lineups[team] = []semafor.PlayerInfo{}

		node := cur.findText(func(s string) bool { return s == team })
		if node == nil || node.Parent == nil {
			rec.Diagnostics = append(rec.Diagnostics, semafor.Diagnostic{
				Stage:  "lineups",
				Detail: "no lineup block found for " + team,
			})
			continue
		}

		rec.Lineups[team] = e.parsePlayers(cur, node.Parent)
	}
}

// parsePlayers walks every player-card heading inside one team block. A
// malformed or missing card field degrades to its zero value; a single bad
// card never aborts the loop.
func (e *MatchExtractor) parsePlayers(cur *cursor, block *html.Node) []semafor.PlayerInfo {
	headings := elementsUnder(block, "h3")
	players := make([]semafor.PlayerInfo, 0, len(headings))

	// Cards after the reserves marker belong to the bench.
	reserves := cur.findTextUnder(block, func(s string) bool {
		return strings.Contains(s, semafor.ReservesMarker)
	})

	for _, h := range headings {
		name := textOf(h)
		isCaptain := strings.Contains(name, semafor.CaptainMarker)
		if isCaptain {
			name = semafor.CollapseSpace(strings.ReplaceAll(name, semafor.CaptainMarker, ""))
		}

		player := semafor.PlayerInfo{
			Name:       name,
			IsCaptain:  isCaptain,
			IsStarting: true,
		}

		// Shirt number: nearest purely numeric text in the few nodes
		// before the heading.
		for _, txt := range cur.prevTexts(h, e.shirtLookback) {
			if n, ok := e.patterns.Number(txt); ok {
				player.ShirtNumber = &n
				break
			}
		}

		// Position: nearest following sibling element with any text.
		for sib := h.NextSibling; sib != nil; sib = sib.NextSibling {
			if sib.Type != html.ElementNode {
				continue
			}
			if txt := textOf(sib); txt != "" {
				player.Position = txt
				break
			}
		}

		// Per-player events: minute markers in the siblings up to the
		// next player card.
		for sib := h.NextSibling; sib != nil; sib = sib.NextSibling {
			if sib.Type == html.ElementNode && sib.Data == "h3" {
				break
			}
			if sib.Type != html.ElementNode {
				continue
			}
			for _, tok := range textsUnder(sib) {
				if minute, ok := e.patterns.Minute(tok); ok {
					player.Events = append(player.Events, semafor.PlayerEvent{
						Minute: minute,
						Raw:    tok,
					})
				}
			}
		}

		if reserves != nil && cur.before(reserves, h) {
			player.IsStarting = false
		}

		players = append(players, player)
	}

	return players
}
