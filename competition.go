package semafor

import "time"

// CompetitionRecord represents one extracted competition (league) index page.
type CompetitionRecord struct {
	Name        string                       `json:"name"`
	SeasonLabel string                       `json:"seasonLabel,omitempty"`
	URL         string                       `json:"url"`
	Teams       []TeamInfo                   `json:"teams"`
	Fixtures    []FixtureRecord              `json:"fixtures"`
	Standings   []StandingsRow               `json:"standings"`
	PlayerStats map[string]*PlayerStatRecord `json:"playerStats"`
	Diagnostics []Diagnostic                 `json:"diagnostics,omitempty"`
}

// TeamInfo represents one club registered in a competition.
type TeamInfo struct {
	Name string `json:"name"`
	// URL is the canonical club page, resolved against the competition URL.
	URL string `json:"url,omitempty"`
	// Crest is the club badge image URL, when the club link carries one.
	Crest string `json:"crest,omitempty"`
	// SiteID is the numeric club id parsed out of the link path. When no
	// numeric id is present it falls back to the raw link path.
	SiteID string `json:"siteId,omitempty"`
}

// FixtureRecord represents one scheduled or played match of a competition.
type FixtureRecord struct {
	Kickoff   *time.Time `json:"kickoff,omitempty"`
	HomeTeam  string     `json:"homeTeam"`
	AwayTeam  string     `json:"awayTeam"`
	HomeGoals *int       `json:"homeGoals,omitempty"`
	AwayGoals *int       `json:"awayGoals,omitempty"`
	Venue     string     `json:"venue,omitempty"`
	MatchURL  string     `json:"matchUrl,omitempty"`
}

// StandingsRow represents one row of a league table. Count fields default to
// zero when the source cell is not purely numeric.
type StandingsRow struct {
	Position     int    `json:"position"`
	Team         string `json:"team"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	Points       int    `json:"points"`
}

// PlayerStatRecord accumulates per-player statistics across the stat sections
// of a competition page (scorers, cards, appearances/minutes). Records are
// merged by player name; see Merge.
type PlayerStatRecord struct {
	FullName    string `json:"fullName"`
	Goals       *int   `json:"goals,omitempty"`
	Appearances *int   `json:"appearances,omitempty"`
	Minutes     *int   `json:"minutes,omitempty"`
	YellowCards *int   `json:"yellowCards,omitempty"`
	RedCards    *int   `json:"redCards,omitempty"`
}

// Merge folds other into r. A field already set on r is only replaced when
// other carries a non-nil value for it; later sections augment, they never
// erase what an earlier section found.
func (r *PlayerStatRecord) Merge(other *PlayerStatRecord) {
	if other == nil {
		return
	}
	if other.FullName != "" {
		r.FullName = other.FullName
	}
	if other.Goals != nil {
		r.Goals = other.Goals
	}
	if other.Appearances != nil {
		r.Appearances = other.Appearances
	}
	if other.Minutes != nil {
		r.Minutes = other.Minutes
	}
	if other.YellowCards != nil {
		r.YellowCards = other.YellowCards
	}
	if other.RedCards != nil {
		r.RedCards = other.RedCards
	}
}

// CompetitionExtractor produces one CompetitionRecord from a competition
// index page.
type CompetitionExtractor interface {
	// ExtractCompetition parses raw HTML and returns the extracted record.
	// Every sub-extractor is best-effort; the only error is an unparsable
	// document (EINVALID).
	ExtractCompetition(html string, url string) (*CompetitionRecord, error)
}
