package main

import (
	"fmt"

	"github.com/fwojciec/pagescan"
)

// Run executes the delete command. Only the scan record is removed; the
// session storage area on disk is left to external cleanup.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Scans.DeleteScan(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagescan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted scan %s\n", c.ID)
	return nil
}
