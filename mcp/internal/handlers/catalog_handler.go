package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/CannonJunior/x-uav/client"
)

// CatalogHandler exposes the versioned catalog tools. It is registered when
// the server runs against the v1 contract.
type CatalogHandler struct {
	client *client.V1Client
}

func NewCatalogHandler(c *client.V1Client) *CatalogHandler {
	return &CatalogHandler{client: c}
}

// RegisterTools registers uav_health, list_platforms, get_platform,
// search_catalog, suggest_platforms and platform_neighborhood.
func (ch *CatalogHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("uav_health",
		mcp.WithDescription("Check whether the X-UAV backend is up"),
	), ch.handleHealth)

	s.AddTool(mcp.NewTool("list_platforms",
		mcp.WithDescription("One page of the platform catalog"),
		mcp.WithNumber("skip", mcp.Description("Records to skip (default 0)")),
		mcp.WithNumber("limit", mcp.Description(fmt.Sprintf("Page size (default %d)", client.DefaultPageLimit))),
	), ch.handleList)

	s.AddTool(mcp.NewTool("get_platform",
		mcp.WithDescription("Get one platform by id"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Platform id")),
	), ch.handleGet)

	s.AddTool(mcp.NewTool("search_catalog",
		mcp.WithDescription("Search the catalog with a JSON query object, e.g. {\"text\": \"reaper\"}"),
		mcp.WithString("query", mcp.Required(), mcp.Description("JSON object sent as the search body")),
	), ch.handleSearch)

	s.AddTool(mcp.NewTool("suggest_platforms",
		mcp.WithDescription("Completions for a partial platform name"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Partial name")),
		mcp.WithNumber("limit", mcp.Description("Maximum suggestions")),
	), ch.handleSuggest)

	s.AddTool(mcp.NewTool("platform_neighborhood",
		mcp.WithDescription("Related nodes within a few hops of a platform in the catalog graph"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Graph node id")),
		mcp.WithNumber("depth", mcp.Description(fmt.Sprintf("Hops, 1-%d (default 1)", client.MaxGraphDepth))),
	), ch.handleNeighborhood)
	return nil
}

func (ch *CatalogHandler) handleHealth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h, err := ch.client.CheckHealth(ctx)
	if err != nil {
		return toolError("uav_health", err)
	}
	return jsonResult(h)
}

func (ch *CatalogHandler) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := ch.client.ListUAVs(ctx, req.GetInt("skip", 0), req.GetInt("limit", client.DefaultPageLimit))
	if err != nil {
		return toolError("list_platforms", err)
	}
	return jsonResult(page)
}

func (ch *CatalogHandler) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, err := ch.client.GetUAV(ctx, id)
	if err != nil {
		return toolError("get_platform", err)
	}
	return jsonResult(p)
}

func (ch *CatalogHandler) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var q client.SearchQuery
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search_catalog: query must be a JSON object: %v", err)), nil
	}
	res, err := ch.client.Search(ctx, q)
	if err != nil {
		return toolError("search_catalog", err)
	}
	return jsonResult(res)
}

func (ch *CatalogHandler) handleSuggest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := ch.client.Suggestions(ctx, query, req.GetInt("limit", 0))
	if err != nil {
		return toolError("suggest_platforms", err)
	}
	return jsonResult(res)
}

func (ch *CatalogHandler) handleNeighborhood(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	g, err := ch.client.Neighborhood(ctx, id, req.GetInt("depth", 1))
	if err != nil {
		return toolError("platform_neighborhood", err)
	}
	return jsonResult(g)
}
