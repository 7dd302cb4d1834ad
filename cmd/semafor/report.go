package main

import (
	"encoding/json"
	"fmt"

	"github.com/jmarasovic/semafor"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	report, err := deps.Service.CompetitionReport(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", semafor.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	if report.Failed > 0 {
		fmt.Fprintf(deps.Stderr, "warning: %d match page(s) could not be scraped\n", report.Failed)
	}

	return nil
}
