package semafor

// PlayerTeamIndex builds a scorer-name lookup from lineup entities. Teams are
// visited in the given order so that name collisions across rosters resolve
// deterministically: the first team to register a name wins.
func PlayerTeamIndex(lineups map[string][]PlayerInfo, teamOrder []string) map[string]string {
	index := make(map[string]string)
	for _, team := range teamOrder {
		for _, player := range lineups[team] {
			if _, ok := index[player.Name]; !ok {
				index[player.Name] = team
			}
		}
	}
	return index
}

// ResolveGoalTeams assigns each goal's team by looking up the scorer in the
// lineup-derived index. A scorer absent from every roster resolves to
// TeamUnknown. This is the one pass that touches goal events after
// extraction; it never re-reads the document.
func ResolveGoalTeams(goals []GoalEvent, index map[string]string) {
	for i := range goals {
		team, ok := index[goals[i].Player]
		if !ok {
			team = TeamUnknown
		}
		goals[i].Team = team
	}
}
