package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/pagescan"
	"golang.org/x/sync/errgroup"
)

// Run executes the scan command. Multiple URLs are scanned concurrently;
// each individual scan stays strictly sequential internally.
func (c *ScanCmd) Run(deps *Dependencies) error {
	if deps.Scanner == nil {
		return pagescan.Errorf(pagescan.EINTERNAL, "scan pipeline not configured")
	}

	if c.HTMLFile != "" {
		if c.URL == "" {
			return pagescan.Errorf(pagescan.EINVALID, "--html-file requires --url for the source URL")
		}
		if len(c.URLs) > 0 {
			return pagescan.Errorf(pagescan.EINVALID, "--html-file cannot be combined with URL arguments")
		}

		html, err := os.ReadFile(c.HTMLFile)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		return c.scanOne(deps.Ctx, deps, string(html), c.URL)
	}

	if len(c.URLs) == 0 {
		return pagescan.Errorf(pagescan.EINVALID, "at least one URL or --html-file required")
	}
	if deps.Fetcher == nil {
		return pagescan.Errorf(pagescan.EINTERNAL, "page fetcher not configured")
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	for _, u := range c.URLs {
		g.Go(func() error {
			html, err := deps.Fetcher.Fetch(ctx, u)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: failed to fetch %s: %v\n", u, err)
				return err
			}
			return c.scanOne(ctx, deps, html, u)
		})
	}

	return g.Wait()
}

func (c *ScanCmd) scanOne(ctx context.Context, deps *Dependencies, html, sourceURL string) error {
	result, err := deps.Scanner.Run(ctx, html, sourceURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", sourceURL, pagescan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s  %s  chunks=%d artifacts=%d\n",
		result.ScanID, result.Area, len(result.Extractions), result.Artifacts)
	return nil
}
