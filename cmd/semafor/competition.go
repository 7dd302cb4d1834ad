package main

import (
	"encoding/json"
	"fmt"

	"github.com/jmarasovic/semafor"
)

// Run executes the competition command.
func (c *CompetitionCmd) Run(deps *Dependencies) error {
	rec, err := deps.Service.Competition(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", semafor.ErrorMessage(err))
		return err
	}

	if c.Standings {
		fmt.Fprint(deps.Stdout, semafor.FormatStandings(rec.Standings))
	} else {
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(out))
	}

	for _, d := range rec.Diagnostics {
		fmt.Fprintf(deps.Stderr, "warning: %s: %s\n", d.Stage, d.Detail)
	}

	return nil
}
