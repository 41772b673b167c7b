package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/clash/internal/config"
	clashmcp "github.com/peterkuimelis/clash/internal/mcp"
	"github.com/peterkuimelis/clash/internal/scenario"
)

func main() {
	configFile := flag.String("config", "clash.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadClash(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// stdout carries the MCP protocol; process logs go to stderr.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	clashmcp.SetDefaults(scenario.Defaults{Gold: cfg.StartingGold, Seed: cfg.Seed})

	s := server.NewMCPServer("clash", "1.0.0")
	clashmcp.RegisterTools(s)

	slog.Info("serving MCP tools over stdio", "config", *configFile)
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
