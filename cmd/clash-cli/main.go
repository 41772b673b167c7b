package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterkuimelis/clash/internal/config"
	"github.com/peterkuimelis/clash/internal/game"
	"github.com/peterkuimelis/clash/internal/log"
	clashmcp "github.com/peterkuimelis/clash/internal/mcp"
	"github.com/peterkuimelis/clash/internal/scenario"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "resolve":
		runResolve(os.Args[2:])
	case "batch":
		runBatch(os.Args[2:])
	case "items":
		runItems(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  clash resolve [--config FILE] [--format text|json] SCENARIO")
	fmt.Println("  clash batch [--config FILE] [--jobs N] SCENARIO...")
	fmt.Println("  clash items")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  resolve  Fight the battle described by a scenario file and print its log")
	fmt.Println("  batch    Fight several scenario files concurrently and print one outcome per file")
	fmt.Println("  items    List the built-in items")
}

func runResolve(args []string) {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	configFile := fs.String("config", "clash.yaml", "path to config file")
	format := fs.String("format", "", "output format: text or json (overrides config)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}
	path := fs.Arg(0)

	cfg, err := config.LoadClash(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *format != "" {
		cfg.Format = *format
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	defaults := scenario.Defaults{Gold: cfg.StartingGold, Seed: cfg.Seed}
	slog.Debug("resolving scenario", "path", path, "format", cfg.Format, "seed", cfg.Seed)

	if cfg.Format == "json" {
		err = resolveJSON(path, defaults)
	} else {
		err = resolveText(path, defaults)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func resolveText(path string, defaults scenario.Defaults) error {
	s, err := scenario.Load(path, defaults)
	if err != nil {
		return fmt.Errorf("load scenario %s: %w", path, err)
	}

	res, err := s.Run(log.NewTextLogger(os.Stdout))
	if err != nil {
		return err
	}
	slog.Info("battle resolved",
		"outcome", res.Outcome.String(),
		"steps", len(res.Steps),
		"attacker_hp", s.Attacker.Creature.HP,
		"defender_hp", s.Defender.Creature.HP,
	)
	return nil
}

func resolveJSON(path string, defaults scenario.Defaults) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load scenario %s: %w", path, err)
	}

	resp, err := clashmcp.NewSession(defaults).Resolve(string(data))
	if err != nil {
		return fmt.Errorf("load scenario %s: %w", path, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return err
	}
	if resp.Error != "" {
		return fmt.Errorf("battle failed: %s", resp.Error)
	}
	slog.Info("battle resolved", "outcome", resp.Outcome, "steps", len(resp.Steps))
	return nil
}

func runBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	configFile := fs.String("config", "clash.yaml", "path to config file")
	jobs := fs.Int("jobs", 4, "scenarios resolved at the same time (0 = no limit)")
	fs.Parse(args)

	if fs.NArg() == 0 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.LoadClash(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defaults := scenario.Defaults{Gold: cfg.StartingGold, Seed: cfg.Seed}
	reports, err := scenario.RunFiles(ctx, fs.Args(), defaults, *jobs)

	failed := 0
	for _, r := range reports {
		if r.Err != nil {
			failed++
			fmt.Printf("%s\terror\t%v\n", r.Path, r.Err)
			continue
		}
		if r.Steps == nil {
			continue
		}
		fmt.Printf("%s\t%s\t%d steps\n", r.Path, r.Outcome, len(r.Steps))
	}
	if err != nil {
		slog.Warn("batch interrupted", "error", err)
		os.Exit(1)
	}
	slog.Info("batch done", "scenarios", len(reports), "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func runItems(args []string) {
	fs := flag.NewFlagSet("items", flag.ExitOnError)
	fs.Parse(args)

	for _, name := range game.ItemNames() {
		item := game.LookupItem(name)
		fmt.Printf("%-16s %-6s %3dG  %s\n", item.Name, item.Type, item.Cost(), item.Description)
	}
}
