package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jmarasovic/semafor"
	"github.com/jmarasovic/semafor/goquery"
	semhttp "github.com/jmarasovic/semafor/http"
	"github.com/jmarasovic/semafor/scrape"
	semslog "github.com/jmarasovic/semafor/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("semafor"),
		kong.Description("Extract match reports and competition pages into structured records"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'semafor --help' to see available commands")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	fetcherOpts := []semhttp.Option{semhttp.WithTimeout(timeout)}
	if cli.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, semhttp.WithUserAgent(cli.UserAgent))
	}

	var fetcher semafor.Fetcher = semhttp.NewFetcher(fetcherOpts...)
	defer fetcher.Close()

	patterns := semafor.NewPatternLibrary()
	var matches semafor.MatchExtractor = goquery.NewMatchExtractor(patterns)
	var competitions semafor.CompetitionExtractor = goquery.NewCompetitionExtractor(patterns)

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = semslog.NewLoggingFetcher(fetcher, logger)
		matches = semslog.NewLoggingMatchExtractor(matches, logger)
		competitions = semslog.NewLoggingCompetitionExtractor(competitions, logger)
	}

	svc := &scrape.Service{
		Fetcher:      fetcher,
		Matches:      matches,
		Competitions: competitions,
		Concurrency:  cli.Concurrency,
	}
	if cli.RPS > 0 {
		svc.Limiter = scrape.NewDomainLimiter(cli.RPS)
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Service: svc,
	}

	return kongCtx.Run(deps)
}
