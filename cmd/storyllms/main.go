package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/storyllms"
	"github.com/fwojciec/storyllms/fs"
	"github.com/fwojciec/storyllms/htmltomarkdown"
	"github.com/fwojciec/storyllms/rod"
	storyslog "github.com/fwojciec/storyllms/slog"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// Load .env so STORYLLMS_* variables can come from a local file.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Extractor and Pages override the browser-backed implementations.
	// Set both before calling Run() for end-to-end testing.
	Extractor storyllms.Extractor
	Pages     storyllms.PageReader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("storyllms"),
		kong.Description("Generate LLM-ready documentation from a built Storybook site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Load the optional config file and merge with flags
	var fileCfg *fileConfig
	if cli.Config != "" {
		fileCfg, err = loadConfigFile(cli.Config)
		if err != nil {
			return err
		}
	}
	cfg := mergeConfig(cli, fileCfg)

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	// Browser-backed implementations unless overridden for testing
	extractor := m.Extractor
	pages := m.Pages
	if extractor == nil {
		rodExtractor, err := rod.NewExtractor(fs.NewResolver(cfg.DistPath),
			rod.WithRegistryTimeout(cli.Timeout),
			rod.WithLogger(logger),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer rodExtractor.Close()

		extractor = rodExtractor
		pages = rodExtractor
	}

	deps.Extractor = storyslog.NewLoggingExtractor(extractor, logger)
	deps.Pages = storyslog.NewLoggingPageReader(pages, logger)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Docs = storyslog.NewLoggingWriter(fs.NewWriter(cfg.DistPath), logger)

	cmd := &GenerateCmd{Config: cfg}
	return cmd.Run(deps)
}

// newLogger builds the run logger. Records go to stderr so generated output
// stays pipeable; every record carries a run id so interleaved runs can be
// told apart.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run_id", uuid.NewString())
}
