package semafor

import "time"

// TeamUnknown is the sentinel assigned to a goal whose scorer cannot be
// found in either roster.
const TeamUnknown = "Unknown"

// MatchRecord represents one extracted match report.
//
// Scores and team names are always present because they come from the page
// title, the one required anchor. Everything else is best-effort: missing
// sections leave zero values and a Diagnostic instead of failing the
// extraction.
type MatchRecord struct {
	URL         string                  `json:"url"`
	Competition string                  `json:"competition,omitempty"`
	HomeTeam    string                  `json:"homeTeam"`
	AwayTeam    string                  `json:"awayTeam"`
	HomeScore   int                     `json:"homeScore"`
	AwayScore   int                     `json:"awayScore"`
	Venue       string                  `json:"venue,omitempty"`
	City        string                  `json:"city,omitempty"`
	Kickoff     *time.Time              `json:"kickoff,omitempty"`
	Goals       []GoalEvent             `json:"goals"`
	Lineups     map[string][]PlayerInfo `json:"lineups"`
	Diagnostics []Diagnostic            `json:"diagnostics,omitempty"`
}

// GoalEvent represents one entry of the goal-scorer summary block.
// Team is resolved only after lineups are known; see ResolveGoalTeams.
type GoalEvent struct {
	Team   string `json:"team"`
	Player string `json:"player"`
	Minute int    `json:"minute"`
}

// PlayerInfo represents one player card of a lineup section.
type PlayerInfo struct {
	Name        string        `json:"name"`
	ShirtNumber *int          `json:"shirtNumber,omitempty"`
	Position    string        `json:"position,omitempty"`
	IsCaptain   bool          `json:"isCaptain"`
	IsStarting  bool          `json:"isStarting"`
	Events      []PlayerEvent `json:"events,omitempty"`
}

// PlayerEvent is a minute marker attached to a player card. The event type
// (card, substitution) is intentionally left unclassified; Raw preserves the
// source token for later heuristics.
type PlayerEvent struct {
	Minute int    `json:"minute"`
	Raw    string `json:"raw"`
}

// Diagnostic records a best-effort sub-extractor that degraded instead of
// failing, so callers can tell "nothing found" from "found but malformed".
type Diagnostic struct {
	Stage  string `json:"stage"`
	Detail string `json:"detail"`
}

// MatchExtractor produces one MatchRecord from a match-report page.
type MatchExtractor interface {
	// ExtractMatch parses raw HTML and returns the extracted record.
	// Returns EMALFORMED if the page title cannot be resolved; every other
	// miss degrades to empty fields plus a Diagnostic on the record.
	ExtractMatch(html string, url string) (*MatchRecord, error)
}
