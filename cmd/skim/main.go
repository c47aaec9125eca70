package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/fs"
	"github.com/fwojciec/skim/gemini"
	skimgin "github.com/fwojciec/skim/gin"
	"github.com/fwojciec/skim/goquery"
	skimhttp "github.com/fwojciec/skim/http"
	"github.com/fwojciec/skim/pipeline"
	"github.com/fwojciec/skim/readability"
	"github.com/fwojciec/skim/rod"
	skimslog "github.com/fwojciec/skim/slog"
	"github.com/fwojciec/skim/sqlite"
)

// requestsPerSecond is the per-domain fetch rate used in batch mode.
const requestsPerSecond = 1.0

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
	// Database and history paths. Set before calling Run().
	DBPath      string
	HistoryPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SummaryService skim.SummaryService
	History        skim.HistoryStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		HistoryPath: defaultHistoryPath(),
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
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("skim"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'skim --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SKIM_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.SummaryService = sqlite.NewSummaryService(m.DB)
	m.History = fs.NewHistoryStore(m.HistoryPath)
	deps.DB = m.DB
	deps.Summaries = m.SummaryService
	deps.History = m.History

	if cmd == "add" || cmd == "serve" {
		browser := cli.Add.Browser || cli.Serve.Browser

		p, closeFetcher, err := m.buildPipeline(ctx, deps.Logger, browser, cli.Add.Readability, cli.Add.Concurrency)
		if err != nil {
			fmt.Fprintln(stderr, pipelineHint(err))
			return err
		}
		defer closeFetcher()
		deps.Pipeline = p
	}

	if cmd == "serve" {
		deps.Server = skimgin.NewServer(deps.Pipeline, deps.Summaries, deps.Logger, cli.Serve.Origins)
	}

	return kongCtx.Run(deps)
}

// buildPipeline wires a summarization pipeline from environment and flags.
// The returned close function releases fetcher resources.
func (m *Main) buildPipeline(ctx context.Context, logger *slog.Logger, browser, useReadability bool, concurrency int) (*pipeline.Pipeline, func(), error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	client, err := gemini.NewClient(ctx, apiKey)
	if err != nil {
		return nil, nil, err
	}

	var fetcher skim.Fetcher
	if browser {
		f, err := rod.NewFetcher()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = skimhttp.NewFetcher()
	}

	var extractor skim.Extractor
	if useReadability {
		extractor = readability.NewExtractor()
	} else {
		extractor = goquery.NewExtractor()
	}

	model := os.Getenv("SKIM_MODEL")
	if model == "" {
		model = gemini.DefaultModel
	}

	p := &pipeline.Pipeline{
		Fetcher:     skimslog.NewLoggingFetcher(fetcher, logger),
		Extractor:   extractor,
		Summarizer:  skimslog.NewLoggingSummarizer(gemini.NewSummarizer(client, model), logger),
		Summaries:   m.SummaryService,
		RateLimiter: pipeline.NewDomainLimiter(requestsPerSecond),
		Concurrency: concurrency,
	}

	return p, func() { _ = fetcher.Close() }, nil
}

// pipelineHint returns operator guidance for common wiring failures.
func pipelineHint(err error) string {
	switch skim.ErrorCode(err) {
	case skim.EUNAUTHORIZED:
		return "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey"
	default:
		return "Hint: Chrome or Chromium must be installed for --browser mode"
	}
}

func defaultDBPath() string {
	if path := os.Getenv("SKIM_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "skim.db"
	}
	dir := filepath.Join(home, ".skim")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "skim.db")
}

func defaultHistoryPath() string {
	if path := os.Getenv("SKIM_HISTORY"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "history.json"
	}
	return filepath.Join(home, ".skim", "history.json")
}
