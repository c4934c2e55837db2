package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/khartman/linkprune"
	"github.com/khartman/linkprune/check"
	linkprunegoquery "github.com/khartman/linkprune/goquery"
	linkprunehttp "github.com/khartman/linkprune/http"
	linkpruneslog "github.com/khartman/linkprune/slog"
)

func main() {
	// Interrupt cancels the run; validation treats that as a normal,
	// partial outcome rather than an error.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linkprune"),
		kong.Description("Validate the links in a bookmark export and remove the dead ones"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 0 || (len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help")) {
		_, _ = parser.Parse([]string{"--help"})
		if len(args) == 0 {
			return fmt.Errorf("no arguments provided")
		}
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	policy := linkprune.DefaultPolicy()
	if len(cli.Trusted) > 0 {
		policy.Trusted = cli.Trusted
	}
	if len(cli.Skip) > 0 {
		policy.Skip = cli.Skip
	}

	var prober linkprune.Prober = linkprunehttp.NewProber(linkprunehttp.WithTimeout(cli.Timeout))
	if cli.Verbose {
		prober = linkpruneslog.NewLoggingProber(prober, logger)
	}

	checker := &check.Checker{
		Prober:      prober,
		Policy:      policy,
		Concurrency: cli.Concurrency,
		Attempts:    cli.Attempts,
		Delay:       cli.Delay,
	}
	if cli.RPS > 0 {
		checker.Limiter = check.NewHostLimiter(cli.RPS, cli.Burst)
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Extractor: linkprunegoquery.NewExtractor(),
		Rewriter:  linkprunegoquery.NewRewriter(),
		Checker:   checker,
		Confirmer: &stdinConfirmer{in: stdin, out: stderr},
	}

	cmd := &PruneCmd{
		Input:  cli.Input,
		Output: cli.Output,
		Yes:    cli.Yes,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input  string `arg:"" required:"" help:"Bookmark HTML export to validate"`
	Output string `arg:"" optional:"" default:"cleaned_bookmarks.html" help:"Path for the pruned copy"`

	Concurrency int           `short:"c" default:"10" env:"LINKPRUNE_CONCURRENCY" help:"Concurrent link checks"`
	Attempts    int           `default:"5" env:"LINKPRUNE_ATTEMPTS" help:"Probe attempts per link on transport failures"`
	Delay       time.Duration `default:"1s" env:"LINKPRUNE_DELAY" help:"Pause between probe attempts"`
	Timeout     time.Duration `short:"t" default:"10s" env:"LINKPRUNE_TIMEOUT" help:"Per-probe timeout"`
	RPS         float64       `default:"0" env:"LINKPRUNE_RPS" help:"Per-host request rate limit (0 disables)"`
	Burst       int           `default:"1" env:"LINKPRUNE_BURST" help:"Per-host burst allowance when rate limiting"`
	Trusted     []string      `help:"Trusted URL substrings that skip probing (replaces the default list)"`
	Skip        []string      `help:"URL substrings excluded from validation (replaces the default list)"`
	Yes         bool          `short:"y" help:"Remove invalid links without asking"`
	Verbose     bool          `short:"v" help:"Log every probe"`
}
