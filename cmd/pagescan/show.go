package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagescan"
	"github.com/fwojciec/pagescan/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	scan, err := deps.Scans.FindScanByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagescan.ErrorMessage(err))
		return err
	}

	result, err := os.ReadFile(filepath.Join(deps.DataDir, scan.Area, fs.ResultFile))
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(deps.Stderr, "error: scan %s has no stored result (status: %s)\n", scan.ID, scan.Status)
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, string(result))
	return nil
}
