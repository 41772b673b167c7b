package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/clash/internal/game"
	"github.com/peterkuimelis/clash/internal/scenario"
)

// activeSession is the singleton session (one per stdio process).
var activeSession = NewSession(scenario.Defaults{Gold: 100, Seed: 1})

// SetDefaults sets the player gold and seed used when a scenario leaves them out.
func SetDefaults(d scenario.Defaults) {
	activeSession = NewSession(d)
}

// RegisterTools adds all battle tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(resolveBattleTool(), handleResolveBattle)
	s.AddTool(listItemsTool(), handleListItems)
	s.AddTool(lastBattleTool(), handleLastBattle)
}

// --- Tool definitions ---

func resolveBattleTool() mcp.Tool {
	return mcp.NewTool("resolve_battle",
		mcp.WithDescription("Resolve a 1v1 creature battle described by a YAML scenario. "+
			"Returns the full step log, the outcome and both sides' state after the battle. "+
			"Items that cannot be equipped are reported in 'error' together with the steps logged so far."),
		mcp.WithString("scenario", mcp.Required(), mcp.Description("Scenario YAML with 'attacker' and 'defender' sides and optional custom 'items'")),
	)
}

func listItemsTool() mcp.Tool {
	return mcp.NewTool("list_items",
		mcp.WithDescription("List the built-in items a scenario can refer to by name. Read-only."),
	)
}

func lastBattleTool() mcp.Tool {
	return mcp.NewTool("last_battle",
		mcp.WithDescription("Get the result of the most recent resolve_battle call again. Read-only."),
	)
}

// --- Tool handlers ---

func handleResolveBattle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc := request.GetString("scenario", "")
	if doc == "" {
		return mcp.NewToolResultError("scenario must not be empty"), nil
	}

	resp, err := activeSession.Resolve(doc)
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid scenario: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleListItems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := game.ItemNames()
	items := make([]ItemView, 0, len(names))
	for _, name := range names {
		items = append(items, itemView(game.LookupItem(name)))
	}
	return mcp.NewToolResultText(respondJSON(items)), nil
}

func handleLastBattle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, ok := activeSession.Last()
	if !ok {
		return mcp.NewToolResultError("No battle has been resolved yet. Use resolve_battle first."), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}
