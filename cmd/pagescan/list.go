package main

import (
	"fmt"

	"github.com/fwojciec/pagescan"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pagescan.ScanFilter{}
	if c.Status != "" {
		status := pagescan.ScanStatus(c.Status)
		filter.Status = &status
	}

	scans, err := deps.Scans.FindScans(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagescan.ErrorMessage(err))
		return err
	}

	if len(scans) == 0 {
		fmt.Fprintln(deps.Stdout, "No scans found. Use 'pagescan scan' to create one.")
		return nil
	}

	for _, s := range scans {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", s.ID, s.Status, s.SourceURL, s.Area)
	}

	return nil
}
