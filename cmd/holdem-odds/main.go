// Command holdem-odds computes exact Texas Hold'em equities for a set of
// weighted starting-hand ranges against a partial (or empty) board, by
// exhaustively enumerating every legal board completion and hole-card
// assignment rather than sampling.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-odds/config"
	"github.com/lox/holdem-odds/equity"
	"github.com/lox/holdem-odds/holdem"
	"github.com/lox/holdem-odds/preflop"
)

// CLI is the kong-parsed command line: a single flat command, no
// subcommands.
type CLI struct {
	Ranges []string `arg:"" name:"range" help:"one weighted range per player, e.g. 'QQ+,AKs:0.5' 'ATs-A2s'" required:"true"`

	Board         string `short:"b" help:"community board cards, 0-5 of them, e.g. 'Ks8d2h'"`
	Config        string `short:"c" help:"path to an HCL config file" default:"holdem-odds.hcl"`
	Workers       int    `short:"w" help:"worker count for sharded enumeration (overrides config)"`
	Possibilities bool   `short:"p" help:"show each player's hand-category breakdown"`
	LogLevel      string `help:"log level: debug, info, warn, error (overrides config)"`
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	handStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	winStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tieStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	equityStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	catStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	percentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Description("Exact Texas Hold'em equity via exhaustive enumeration."))

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		ctx.Exit(1)
	}
	if cli.Workers > 0 {
		cfg.Workers.Count = cli.Workers
	}
	if cli.LogLevel != "" {
		cfg.Output.LogLevel = cli.LogLevel
	}
	if cli.Possibilities {
		cfg.Output.Style = "possibilities"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		ctx.Exit(1)
	}

	logger := log.New(os.Stderr)
	logger.SetLevel(levelFor(cfg.Output.LogLevel))

	board, err := parseBoard(cli.Board)
	if err != nil {
		logger.Error("failed to parse board", "board", cli.Board, "error", err)
		fmt.Fprintf(os.Stderr, "Error parsing board: %v\n", err)
		ctx.Exit(1)
	}

	ranges, err := parseRanges(cli.Ranges)
	if err != nil {
		logger.Error("failed to parse range", "error", err)
		fmt.Fprintf(os.Stderr, "Error parsing ranges: %v\n", err)
		ctx.Exit(1)
	}

	logger.Info("enumerating",
		"board", cli.Board, "players", len(ranges), "workers", cfg.Workers.Count)

	start := time.Now()
	results, err := equity.RunSharded(context.Background(), board, ranges, cfg.Workers.Count)
	if err != nil {
		logger.Error("enumeration failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
	elapsed := time.Since(start)
	logger.Info("done", "elapsed", elapsed, "materialized", results[0].Materialized)

	render(cli.Ranges, ranges, results, board, cfg.Output.Style, elapsed)
}

func levelFor(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

func parseBoard(s string) ([]holdem.Card, error) {
	if s == "" {
		return nil, nil
	}
	return holdem.ParseBoard(s)
}

func parseRanges(notations []string) ([]*holdem.HandRange, error) {
	ranges := make([]*holdem.HandRange, len(notations))
	for i, n := range notations {
		n = strings.TrimSpace(n)
		r, err := holdem.ParseRange(n)
		if err != nil {
			return nil, fmt.Errorf("player %d (%q): %w", i+1, n, err)
		}
		ranges[i] = r
	}
	return ranges, nil
}

func render(notations []string, ranges []*holdem.HandRange, results []equity.EquityResult, board []holdem.Card, style string, elapsed time.Duration) {
	if len(board) > 0 {
		fmt.Printf("%s\n", headerStyle.Render("board"))
		fmt.Printf("%s\n\n", formatCards(board))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("range"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("equity"),
		headerStyle.Render("strength"))

	for i, notation := range notations {
		res := results[i]
		cat := preflop.ClassifyRange(ranges[i])
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			handStyle.Render(notation),
			winStyle.Render(fmt.Sprintf("%.2f%%", res.WinRate()*100)),
			tieStyle.Render(fmt.Sprintf("%.2f%%", res.TieRate()*100)),
			equityStyle.Render(fmt.Sprintf("%.2f%%", res.Equity()*100)),
			catStyle.Render(cat.Category.String()))
	}
	w.Flush()

	if style == "possibilities" {
		fmt.Printf("\n")
		renderPossibilities(notations, results)
	}

	fmt.Printf("\n%d showdowns materialized in %v\n", results[0].Materialized, elapsed.Truncate(time.Microsecond))
}

var categoryOrder = []holdem.Category{
	holdem.StraightFlush, holdem.FourOfAKind, holdem.FullHouse, holdem.Flush,
	holdem.Straight, holdem.ThreeOfAKind, holdem.TwoPair, holdem.OnePair, holdem.HighCard,
}

func renderPossibilities(notations []string, results []equity.EquityResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s", catStyle.Render("hand"))
	for _, n := range notations {
		fmt.Fprintf(w, "\t%s", handStyle.Render(n))
	}
	fmt.Fprintf(w, "\n")

	for _, cat := range categoryOrder {
		fmt.Fprintf(w, "%s", catStyle.Render(cat.String()))
		for _, res := range results {
			frac := res.CategoryFraction(cat)
			if frac > 0 {
				fmt.Fprintf(w, "\t%s", percentStyle.Render(fmt.Sprintf("%.2f%%", frac*100)))
			} else {
				fmt.Fprintf(w, "\t%s", percentStyle.Render("."))
			}
		}
		fmt.Fprintf(w, "\n")
	}
	w.Flush()
}

func formatCards(cards []holdem.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
