package main

import (
	"context"
	"io"
	"time"

	"github.com/jmarasovic/semafor/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Service *scrape.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Match       MatchCmd       `cmd:"" help:"Extract a single match-report page"`
	Competition CompetitionCmd `cmd:"" help:"Extract a competition index page"`
	Report      ReportCmd      `cmd:"" help:"Extract a competition page and every match report it links to"`

	Timeout     time.Duration `help:"HTTP fetch timeout" default:"10s"`
	UserAgent   string        `help:"User-Agent header for fetches"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit for reports"`
	RPS         float64       `help:"Per-domain requests per second (0 disables throttling)"`
	Verbose     bool          `short:"v" help:"Log fetches and extractions to stderr"`
}

// MatchCmd is the "match" subcommand.
type MatchCmd struct {
	URL string `arg:"" help:"Match-report page URL"`
}

// CompetitionCmd is the "competition" subcommand.
type CompetitionCmd struct {
	URL       string `arg:"" help:"Competition page URL"`
	Standings bool   `help:"Print the standings table instead of JSON"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	URL string `arg:"" help:"Competition page URL"`
}
