package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/CannonJunior/x-uav/client"
)

// UAVHandler exposes the core platform tools of the legacy contract.
type UAVHandler struct {
	client *client.Client
}

func NewUAVHandler(c *client.Client) *UAVHandler {
	return &UAVHandler{client: c}
}

// RegisterTools registers uav_health, uav_stats, list_uavs, get_uav,
// compare_uavs and search_uavs.
func (uh *UAVHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("uav_health",
		mcp.WithDescription("Check whether the X-UAV backend is up and its database reachable"),
	), uh.handleHealth)

	s.AddTool(mcp.NewTool("uav_stats",
		mcp.WithDescription("Record counts: total, and grouped by country, type and operational status"),
	), uh.handleStats)

	s.AddTool(mcp.NewTool("list_uavs",
		mcp.WithDescription("List every UAV platform with full specifications"),
	), uh.handleList)

	s.AddTool(mcp.NewTool("get_uav",
		mcp.WithDescription("Get one UAV by designation, e.g. MQ-9 or Bayraktar TB2"),
		mcp.WithString("designation", mcp.Required(), mcp.Description("UAV designation")),
	), uh.handleGet)

	s.AddTool(mcp.NewTool("compare_uavs",
		mcp.WithDescription("Fetch several UAVs side by side for comparison"),
		mcp.WithArray("designations", mcp.Required(),
			mcp.Description("Designations to compare (at least one)"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	), uh.handleCompare)

	s.AddTool(mcp.NewTool("search_uavs",
		mcp.WithDescription("Search UAVs; every filter is optional and omitted filters match everything"),
		mcp.WithString("country", mcp.Description("Country of origin")),
		mcp.WithString("type", mcp.Description("UAV type, e.g. MALE, HALE")),
		mcp.WithString("status", mcp.Description("Operational status")),
		mcp.WithString("nato_class", mcp.Description("NATO class")),
	), uh.handleSearch)
	return nil
}

func (uh *UAVHandler) handleHealth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h, err := uh.client.CheckHealth(ctx)
	if err != nil {
		return toolError("uav_health", err)
	}
	return jsonResult(h)
}

func (uh *UAVHandler) handleStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := uh.client.GetStats(ctx)
	if err != nil {
		return toolError("uav_stats", err)
	}
	return jsonResult(st)
}

func (uh *UAVHandler) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := uh.client.ListUAVs(ctx)
	if err != nil {
		return toolError("list_uavs", err)
	}
	return jsonResult(list)
}

func (uh *UAVHandler) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	designation, err := req.RequireString("designation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	u, err := uh.client.GetUAV(ctx, designation)
	if err != nil {
		return toolError("get_uav", err)
	}
	return jsonResult(u)
}

func (uh *UAVHandler) handleCompare(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	designations := stringList(req.GetArguments(), "designations")
	list, err := uh.client.CompareUAVs(ctx, designations)
	if err != nil {
		return toolError("compare_uavs", err)
	}
	return jsonResult(list)
}

func (uh *UAVHandler) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filters := client.SearchFilters{
		Country:   req.GetString("country", ""),
		Type:      req.GetString("type", ""),
		Status:    req.GetString("status", ""),
		NATOClass: req.GetString("nato_class", ""),
	}
	list, err := uh.client.SearchUAVs(ctx, filters)
	if err != nil {
		return toolError("search_uavs", err)
	}
	return jsonResult(list)
}
