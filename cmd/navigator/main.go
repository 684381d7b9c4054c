package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	navigator "github.com/glendon144/ai-navigator"
	"github.com/glendon144/ai-navigator/capture"
	"github.com/glendon144/ai-navigator/export"
	"github.com/glendon144/ai-navigator/gemini"
	"github.com/glendon144/ai-navigator/goquery"
	"github.com/glendon144/ai-navigator/htmltomarkdown"
	navhttp "github.com/glendon144/ai-navigator/http"
	"github.com/glendon144/ai-navigator/readability"
	navslog "github.com/glendon144/ai-navigator/slog"
	"github.com/glendon144/ai-navigator/sqlite"
	"github.com/glendon144/ai-navigator/trafilatura"
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
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the page archive.
	DB *sqlite.DB

	// Archive service for end-to-end testing.
	ArchiveService navigator.ArchiveService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("navigator"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'navigator --help' to see available commands")
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

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Convert and load work on local files; only the archive commands need
	// the database.
	if cmd != "convert" && cmd != "load" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set AI_NAVIGATOR_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.ArchiveService = navslog.NewLoggingArchiveService(sqlite.NewArchiveService(m.DB), deps.Logger)
		deps.DB = m.DB
		deps.Archive = m.ArchiveService
	}

	if cmd == "export" {
		outliner := goquery.NewOutliner()
		outliner.SkipStrayParagraphs = true // archive rows carry their own stray text as snippets
		deps.Exporter = export.NewExporter(deps.Archive, outliner)
	}

	if cmd == "capture" {
		var cleaner navigator.Cleaner
		switch cli.Capture.Cleaner {
		case "readability":
			cleaner = readability.NewCleaner()
		default:
			cleaner = trafilatura.NewCleaner()
		}

		fetcher := navslog.NewLoggingFetcher(navhttp.NewFetcher(), deps.Logger)
		capturer := capture.NewCapturer(fetcher, cleaner, htmltomarkdown.NewConverter(), deps.Archive)
		capturer.Concurrency = cli.Capture.Concurrency
		capturer.Limiter = capture.NewDomainLimiter(cli.Capture.RPS)
		deps.Capturer = capturer
	}

	if cmd == "convert" && cli.Convert.AI {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Suggester = gemini.NewSuggester(client)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("AI_NAVIGATOR_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "archive.db"
	}
	dir := filepath.Join(home, ".ai-navigator")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "archive.db")
}
