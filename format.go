package semafor

import (
	"fmt"
	"strings"
)

// FormatStandings renders a league table for console inspection.
func FormatStandings(rows []StandingsRow) string {
	if len(rows) == 0 {
		return ""
	}

	parts := make([]string, 0, len(rows))
	for _, r := range rows {
		parts = append(parts, fmt.Sprintf("%2d. %-28s %3d %3d %3d %3d %4d:%-4d %3d",
			r.Position, r.Team, r.Played, r.Wins, r.Draws, r.Losses,
			r.GoalsFor, r.GoalsAgainst, r.Points))
	}

	return strings.Join(parts, "\n")
}

// FormatGoals renders the goal list of a match, one goal per line.
func FormatGoals(m *MatchRecord) string {
	if len(m.Goals) == 0 {
		return ""
	}

	parts := make([]string, 0, len(m.Goals))
	for _, g := range m.Goals {
		parts = append(parts, fmt.Sprintf("%3d' %s (%s)", g.Minute, g.Player, g.Team))
	}

	return strings.Join(parts, "\n")
}
