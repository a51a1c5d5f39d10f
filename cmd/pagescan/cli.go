package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagescan"
	"github.com/fwojciec/pagescan/scan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DataDir string
	Scans   pagescan.ScanService
	Scanner *scan.Scanner
	Fetcher pagescan.Fetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log collaborator calls to stderr"`

	Scan   ScanCmd   `cmd:"" help:"Scan web pages into structured extractions"`
	List   ListCmd   `cmd:"" help:"List recorded scans"`
	Show   ShowCmd   `cmd:"" help:"Show a scan's stored result"`
	Delete DeleteCmd `cmd:"" help:"Delete a scan record"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	URLs        []string `arg:"" optional:"" help:"Page URLs to scan"`
	HTMLFile    string   `short:"f" help:"Read HTML from a file instead of fetching (requires --url)"`
	URL         string   `help:"Source URL associated with --html-file input"`
	MaxChunk    int      `default:"20000" help:"Maximum serialized chunk size in bytes"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent page scans"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Status string `help:"Filter by status (pending, complete, failed)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Scan ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Scan ID"`
}
