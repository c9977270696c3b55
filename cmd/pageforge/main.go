package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/pageforge/pageforge"
	"github.com/pageforge/pageforge/fs"
	"github.com/pageforge/pageforge/gemini"
	"github.com/pageforge/pageforge/goquery"
	pfhttp "github.com/pageforge/pageforge/http"
	"github.com/pageforge/pageforge/ratelimit"
	"github.com/pageforge/pageforge/readability"
	"github.com/pageforge/pageforge/render"
	"github.com/pageforge/pageforge/sanitize"
	pfslog "github.com/pageforge/pageforge/slog"
	"github.com/pageforge/pageforge/sqlite"
	"google.golang.org/genai"
	"gopkg.in/yaml.v3"
)

func main() {
	ctx := context.Background()

	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

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

	// Extraction tuning file path, optional.
	ConfigPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PageService pageforge.PageService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: os.Getenv("PAGEFORGE_CONFIG"),
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
		kong.Name("pageforge"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pageforge --help' to see available commands")
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

	config, err := loadConfig(m.ConfigPath)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGEFORGE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Wire core services into dependencies
	m.PageService = pfslog.NewLoggingPageService(sqlite.NewPageService(m.DB), logger)
	san := sanitize.New()
	deps.DB = m.DB
	deps.Pages = m.PageService
	deps.Sanitizer = san
	deps.Contacts = goquery.NewContactExtractor(config)
	deps.Products = goquery.NewProductExtractor(config)
	deps.Describer = readability.NewDescriber(goquery.NewDescriber())
	deps.Detector = pfslog.NewLoggingDetector(goquery.NewDetector(), logger)
	deps.Renderer = render.NewRenderer(fs.NewLoader(), san)
	fetcher := pfhttp.NewFetcher()
	defer fetcher.Close()
	deps.Fetcher = fetcher

	// The generator is optional: commands that render without --generate
	// never touch the API.
	if needsGenerator(cli, cmd) {
		generator, err := newGenerator(ctx, logger)
		if err != nil {
			return err
		}
		deps.Generator = generator
	}

	return kongCtx.Run(deps)
}

// needsGenerator reports whether the parsed command asked for AI content.
func needsGenerator(cli *CLI, cmd string) bool {
	switch cmd {
	case "create":
		return cli.Create.Generate
	case "render":
		return cli.Render.Generate
	}
	return false
}

// newGenerator wires the Gemini content generator behind a per-business
// rate limit and logging.
func newGenerator(ctx context.Context, logger *slog.Logger) (pageforge.ContentGenerator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create token counter: %w", err)
	}

	var generator pageforge.ContentGenerator = gemini.NewGenerator(client, tokenCounter)
	generator = ratelimit.NewGenerator(generator, ratelimit.NewKeyLimiter(generateRPS, 1))
	return pfslog.NewLoggingGenerator(generator, logger), nil
}

// tokenizerModel is used for token counting before a generation call.
const tokenizerModel = "gemini-2.5-flash"

// generateRPS caps content generation per business.
const generateRPS = 0.2

func defaultDBPath() string {
	if path := os.Getenv("PAGEFORGE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pageforge.db"
	}
	dir := filepath.Join(home, ".pageforge")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pageforge.db")
}

// loadConfig reads extraction tuning from a YAML file. An unset path means
// defaults; a set path must parse.
func loadConfig(path string) (goquery.Config, error) {
	var config goquery.Config
	if path == "" {
		if _, err := os.Stat("pageforge.yaml"); err != nil {
			return config, nil
		}
		path = "pageforge.yaml"
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return config, nil
}
