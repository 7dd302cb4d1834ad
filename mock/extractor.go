package mock

import "github.com/jmarasovic/semafor"

var _ semafor.MatchExtractor = (*MatchExtractor)(nil)

// MatchExtractor is a mock implementation of semafor.MatchExtractor.
type MatchExtractor struct {
	ExtractMatchFn func(html string, url string) (*semafor.MatchRecord, error)
}

func (e *MatchExtractor) ExtractMatch(html string, url string) (*semafor.MatchRecord, error) {
	return e.ExtractMatchFn(html, url)
}

var _ semafor.CompetitionExtractor = (*CompetitionExtractor)(nil)

// CompetitionExtractor is a mock implementation of semafor.CompetitionExtractor.
type CompetitionExtractor struct {
	ExtractCompetitionFn func(html string, url string) (*semafor.CompetitionRecord, error)
}

func (e *CompetitionExtractor) ExtractCompetition(html string, url string) (*semafor.CompetitionRecord, error) {
	return e.ExtractCompetitionFn(html, url)
}
