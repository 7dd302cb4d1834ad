// Package slog provides logging decorators for the semafor service
// interfaces using log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmarasovic/semafor"
)

// Ensure LoggingFetcher implements semafor.Fetcher at compile time.
var _ semafor.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging of URL, size and duration.
type LoggingFetcher struct {
	next   semafor.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next semafor.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			f.logger.Error("fetch", "url", url, "duration", time.Since(begin), "err", err.Error())
			return
		}
		f.logger.Info("fetch", "url", url, "bytes", len(html), "duration", time.Since(begin))
	}(time.Now())

	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
