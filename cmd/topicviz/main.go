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
	"github.com/topiclab/topicviz"
	"github.com/topiclab/topicviz/etree"
	"github.com/topiclab/topicviz/fs"
	"github.com/topiclab/topicviz/goquery"
	"github.com/topiclab/topicviz/html"
	"github.com/topiclab/topicviz/site"
	vizslog "github.com/topiclab/topicviz/slog"
	"github.com/topiclab/topicviz/sqlite"
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

	// SQLite database backing the app catalog.
	DB *sqlite.DB

	// Services for end-to-end testing.
	AppService    topicviz.AppService
	BundleService topicviz.BundleService
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("topicviz"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'topicviz --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TOPICVIZ_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.AppService = sqlite.NewAppService(m.DB)
	deps.DB = m.DB
	deps.Apps = m.AppService
	deps.Scanner = fs.NewScanner()
	deps.Locator = fs.NewLocator()
	deps.Plots = vizslog.NewLoggingDetector(goquery.NewDetector(), logger)

	// Wire the bundle pipeline only for the generate command
	if cmd == "generate" {
		renderer, err := html.NewRenderer()
		if err != nil {
			return fmt.Errorf("failed to load templates: %w", err)
		}

		generator := &site.Generator{
			Locator:  deps.Locator,
			Renderer: renderer,
			Plots:    deps.Plots,
			Sitemaps: etree.NewSitemapBuilder(),
			Apps:     m.AppService,
			NewStore: func(baseDir, name string) topicviz.BundleStore {
				return fs.NewBundleStore(baseDir, name)
			},
			OutputDir: cli.Generate.Output,
		}
		m.BundleService = vizslog.NewLoggingBundleService(generator, logger)
		deps.Bundles = m.BundleService
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("TOPICVIZ_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "topicviz.db"
	}
	dir := filepath.Join(home, ".topicviz")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "topicviz.db")
}
