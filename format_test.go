package semafor_test

import (
	"strings"
	"testing"

	"github.com/jmarasovic/semafor"
	"github.com/stretchr/testify/assert"
)

func TestFormatStandings(t *testing.T) {
	t.Parallel()

	t.Run("empty table formats to empty string", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, semafor.FormatStandings(nil))
	})

	t.Run("one line per row", func(t *testing.T) {
		t.Parallel()

		out := semafor.FormatStandings([]semafor.StandingsRow{
			{Position: 1, Team: "NK Orebić", Played: 10, Wins: 7, Draws: 2, Losses: 1, GoalsFor: 20, GoalsAgainst: 5, Points: 23},
			{Position: 2, Team: "ONK Metković", Played: 10, Wins: 6, Draws: 2, Losses: 2, GoalsFor: 18, GoalsAgainst: 9, Points: 20},
		})

		assert.Contains(t, out, "NK Orebić")
		assert.Contains(t, out, "ONK Metković")
		assert.Contains(t, out, "23")
		assert.Len(t, strings.Split(out, "\n"), 2)
	})
}

func TestFormatGoals(t *testing.T) {
	t.Parallel()

	m := &semafor.MatchRecord{
		Goals: []semafor.GoalEvent{
			{Team: "Home", Player: "Bruno Berković", Minute: 14},
			{Team: semafor.TeamUnknown, Player: "Goran Rubeša", Minute: 27},
		},
	}

	out := semafor.FormatGoals(m)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "14'")
	assert.Contains(t, lines[0], "Bruno Berković")
	assert.Contains(t, lines[1], "(Unknown)")
}
