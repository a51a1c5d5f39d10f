package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagescan"
	"github.com/fwojciec/pagescan/fs"
	"github.com/fwojciec/pagescan/gemini"
	pshttp "github.com/fwojciec/pagescan/http"
	"github.com/fwojciec/pagescan/scan"
	psslog "github.com/fwojciec/pagescan/slog"
	"github.com/fwojciec/pagescan/sqlite"
	"google.golang.org/genai"
)

// imageFetchRPS limits image fetches to one per second per host.
const imageFetchRPS = 1.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Data directory holding scan session areas. Set before calling Run().
	DataDir string

	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the scan service.
	DB *sqlite.DB

	// ScanService for end-to-end testing.
	ScanService pagescan.ScanService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	dataDir := defaultDataDir()
	return &Main{
		DataDir: dataDir,
		DBPath:  defaultDBPath(dataDir),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		DataDir: m.DataDir,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagescan"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagescan --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected command comes from the parser, not from args[0]: global
	// flags like -v may precede the command name.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := os.MkdirAll(filepath.Dir(m.DBPath), 0755); err != nil {
		return err
	}
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGESCAN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ScanService = sqlite.NewScanService(m.DB)
	deps.Scans = m.ScanService

	// Wire the scan pipeline only for the scan command; it needs a Gemini key.
	if cmd == "scan" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		var processor pagescan.TextProcessor = gemini.NewProcessor(client)
		var images pagescan.ImageFetcher = pshttp.NewImageFetcher()

		if cli.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			processor = psslog.NewLoggingProcessor(processor, logger)
			images = psslog.NewLoggingImageFetcher(images, logger)
		}

		deps.Scanner = &scan.Scanner{
			Store:        fs.NewStore(m.DataDir),
			Images:       images,
			Processor:    processor,
			Scans:        m.ScanService,
			Limiter:      scan.NewHostLimiter(imageFetchRPS),
			MaxChunkSize: cli.Scan.MaxChunk,
		}
		deps.Fetcher = pshttp.NewFetcher()
		defer deps.Fetcher.Close()
	}

	return kongCtx.Run(deps)
}

func defaultDataDir() string {
	if v := os.Getenv("PAGESCAN_DATA"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pagescan"
	}
	return filepath.Join(home, ".pagescan")
}

func defaultDBPath(dataDir string) string {
	if v := os.Getenv("PAGESCAN_DB"); v != "" {
		return v
	}
	return filepath.Join(dataDir, "pagescan.db")
}
