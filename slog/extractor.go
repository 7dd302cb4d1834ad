package slog

import (
	"log/slog"
	"time"

	"github.com/jmarasovic/semafor"
)

// Ensure LoggingMatchExtractor implements semafor.MatchExtractor.
var _ semafor.MatchExtractor = (*LoggingMatchExtractor)(nil)

// LoggingMatchExtractor wraps a MatchExtractor with extraction logging.
type LoggingMatchExtractor struct {
	next   semafor.MatchExtractor
	logger *slog.Logger
}

// NewLoggingMatchExtractor creates a new LoggingMatchExtractor.
func NewLoggingMatchExtractor(next semafor.MatchExtractor, logger *slog.Logger) *LoggingMatchExtractor {
	return &LoggingMatchExtractor{next: next, logger: logger}
}

// ExtractMatch delegates to the wrapped extractor and logs the outcome.
func (e *LoggingMatchExtractor) ExtractMatch(html string, url string) (rec *semafor.MatchRecord, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Error("extract match", "url", url, "duration", time.Since(begin), "err", err.Error())
			return
		}
		e.logger.Info("extract match",
			"url", url,
			"goals", len(rec.Goals),
			"diagnostics", len(rec.Diagnostics),
			"duration", time.Since(begin),
		)
	}(time.Now())

	return e.next.ExtractMatch(html, url)
}

// Ensure LoggingCompetitionExtractor implements semafor.CompetitionExtractor.
var _ semafor.CompetitionExtractor = (*LoggingCompetitionExtractor)(nil)

// LoggingCompetitionExtractor wraps a CompetitionExtractor with extraction logging.
type LoggingCompetitionExtractor struct {
	next   semafor.CompetitionExtractor
	logger *slog.Logger
}

// NewLoggingCompetitionExtractor creates a new LoggingCompetitionExtractor.
func NewLoggingCompetitionExtractor(next semafor.CompetitionExtractor, logger *slog.Logger) *LoggingCompetitionExtractor {
	return &LoggingCompetitionExtractor{next: next, logger: logger}
}

// ExtractCompetition delegates to the wrapped extractor and logs the outcome.
func (e *LoggingCompetitionExtractor) ExtractCompetition(html string, url string) (rec *semafor.CompetitionRecord, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Error("extract competition", "url", url, "duration", time.Since(begin), "err", err.Error())
			return
		}
		e.logger.Info("extract competition",
			"url", url,
			"teams", len(rec.Teams),
			"fixtures", len(rec.Fixtures),
			"standings", len(rec.Standings),
			"diagnostics", len(rec.Diagnostics),
			"duration", time.Since(begin),
		)
	}(time.Now())

	return e.next.ExtractCompetition(html, url)
}
