package semafor

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Fixed marker texts used as positional anchors in the markup. These are the
// Croatian labels the site renders; they are the closest thing to a stable
// contract the pages offer.
const (
	// RefereeMarker labels the referee list that precedes the goal summary.
	RefereeMarker = "Suci:"
	// ReservesMarker separates the starting eleven from the bench.
	ReservesMarker = "Pričuvni igrači"
	// CaptainMarker is appended to the captain's name on lineup cards.
	CaptainMarker = "(C)"

	// Player-statistics section headings, by exact label.
	SectionScorers     = "Strijelci"
	SectionCards       = "Kartoni"
	SectionAppearances = "Nastupi / minute"
)

// Time layouts used by the site (day.month.year. hour:minute).
const (
	kickoffLayout = "02.01.2006. 15:04"
	dateLayout    = "02.01.2006."
)

// TitleParts holds the fields recovered from a match-report title.
type TitleParts struct {
	HomeTeam    string
	AwayTeam    string
	HomeScore   int
	AwayScore   int
	Competition string
}

// PatternLibrary packages every text-matching grammar the extractors use as a
// single immutable value. It carries no mutable state and is safe for
// concurrent use.
type PatternLibrary struct {
	title    *regexp.Regexp
	minute   *regexp.Regexp
	dateTime *regexp.Regexp
	date     *regexp.Regexp
	score    *regexp.Regexp
	season   *regexp.Regexp
	clubName *regexp.Regexp
	clubID   *regexp.Regexp
	integer  *regexp.Regexp
}

// NewPatternLibrary compiles the grammar set.
func NewPatternLibrary() *PatternLibrary {
	return &PatternLibrary{
		// "NK Hajduk 1932 - NK Croatia Gabrili 4:3, 1. ŽNL 25/26"
		title:    regexp.MustCompile(`^(.+?)\s*-\s*(.+?)\s+(\d+):(\d+),\s*(.+)$`),
		minute:   regexp.MustCompile(`^(\d+)'$`),
		dateTime: regexp.MustCompile(`(\d{2}\.\d{2}\.\d{4}\.)\s+(\d{2}:\d{2})`),
		date:     regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}\.?`),
		score:    regexp.MustCompile(`(\d+)\s*:\s*(\d+)`),
		season:   regexp.MustCompile(`\d{4}/\d{4}`),
		clubName: regexp.MustCompile(`^(?i:NK|HNK|ONK|BŠK|GNK)\b`),
		clubID:   regexp.MustCompile(`/klub/(\d+)`),
		integer:  regexp.MustCompile(`\b\d+\b`),
	}
}

// MatchTitle applies the match-title grammar
// "<home> - <away> <homeScore>:<awayScore>, <competition>" to s.
// The input is expected to be whitespace-collapsed; see CollapseSpace.
func (p *PatternLibrary) MatchTitle(s string) (TitleParts, bool) {
	m := p.title.FindStringSubmatch(s)
	if m == nil {
		return TitleParts{}, false
	}
	home, _ := strconv.Atoi(m[3])
	away, _ := strconv.Atoi(m[4])
	return TitleParts{
		HomeTeam:    strings.TrimSpace(m[1]),
		AwayTeam:    strings.TrimSpace(m[2]),
		HomeScore:   home,
		AwayScore:   away,
		Competition: strings.TrimSpace(m[5]),
	}, true
}

// Minute reports whether token is exactly a minute marker ("14'") and
// returns the parsed minute.
func (p *PatternLibrary) Minute(token string) (int, bool) {
	m := p.minute.FindStringSubmatch(token)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// FindDateTime scans s for a "DD.MM.YYYY. HH:MM" substring. On a match it
// returns the text preceding the match (trailing commas and spaces trimmed)
// and the parsed timestamp.
func (p *PatternLibrary) FindDateTime(s string) (before string, t time.Time, ok bool) {
	loc := p.dateTime.FindStringSubmatchIndex(s)
	if loc == nil {
		return "", time.Time{}, false
	}
	datePart := s[loc[2]:loc[3]]
	timePart := s[loc[4]:loc[5]]
	t, err := time.Parse(kickoffLayout, datePart+" "+timePart)
	if err != nil {
		return "", time.Time{}, false
	}
	before = strings.TrimSpace(strings.TrimRight(s[:loc[0]], ", "))
	return before, t, true
}

// ParseKickoff recovers a timestamp from free text that carries either a full
// "DD.MM.YYYY. HH:MM" stamp or a bare "DD.MM.YYYY." date. Returns nil when
// neither parses.
func (p *PatternLibrary) ParseKickoff(s string) *time.Time {
	if _, t, ok := p.FindDateTime(s); ok {
		return &t
	}
	raw := p.date.FindString(s)
	if raw == "" {
		return nil
	}
	if !strings.HasSuffix(raw, ".") {
		raw += "."
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}

// FindScore scans s for the first "N:N" score and returns both goal counts.
func (p *PatternLibrary) FindScore(s string) (home, away int, ok bool) {
	m := p.score.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	home, _ = strconv.Atoi(m[1])
	away, _ = strconv.Atoi(m[2])
	return home, away, true
}

// HasScore reports whether s contains an "N:N" score.
func (p *PatternLibrary) HasScore(s string) bool {
	return p.score.MatchString(s)
}

// HasDate reports whether s contains a "DD.MM.YYYY." date.
func (p *PatternLibrary) HasDate(s string) bool {
	return p.date.MatchString(s)
}

// FindSeason scans s for a season label ("2025/2026").
func (p *PatternLibrary) FindSeason(s string) (string, bool) {
	label := p.season.FindString(s)
	return label, label != ""
}

// IsClubName reports whether s starts with a known club-type abbreviation
// (NK, HNK, ONK, BŠK, GNK).
func (p *PatternLibrary) IsClubName(s string) bool {
	return p.clubName.MatchString(s)
}

// IsClubPath reports whether the link path points at a club page.
func (p *PatternLibrary) IsClubPath(href string) bool {
	return strings.Contains(href, "/klub")
}

// IsMatchPath reports whether the link path points at a match-report page.
func (p *PatternLibrary) IsMatchPath(href string) bool {
	return strings.Contains(href, "/utakmice")
}

// ClubID extracts the numeric club id from a club link path.
// Returns "" when the path carries no numeric id.
func (p *PatternLibrary) ClubID(href string) string {
	m := p.clubID.FindStringSubmatch(href)
	if m == nil {
		return ""
	}
	return m[1]
}

// Integers returns every standalone integer in s, in order of appearance.
func (p *PatternLibrary) Integers(s string) []int {
	var out []int
	for _, raw := range p.integer.FindAllString(s, -1) {
		if n, err := strconv.Atoi(raw); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// Number parses s as a purely numeric token. Returns false for anything that
// is not all digits after trimming.
func (p *PatternLibrary) Number(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CollapseSpace normalizes all runs of whitespace in s to single spaces and
// trims the ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
