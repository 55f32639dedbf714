package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/CannonJunior/x-uav/client"
)

// FilterHandler exposes the list_filter_values tool.
type FilterHandler struct {
	client *client.Client
}

func NewFilterHandler(c *client.Client) *FilterHandler {
	return &FilterHandler{client: c}
}

// RegisterTools registers the list_filter_values tool.
func (fh *FilterHandler) RegisterTools(s *server.MCPServer) error {
	dims := client.Dimensions()
	names := make([]string, 0, len(dims))
	for _, d := range dims {
		names = append(names, string(d))
	}
	s.AddTool(mcp.NewTool("list_filter_values",
		mcp.WithDescription("Distinct values usable as search filters"),
		mcp.WithString("dimension", mcp.Required(), mcp.Enum(names...), mcp.Description("Which values to list")),
	), fh.handleList)
	return nil
}

func (fh *FilterHandler) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dim, err := req.RequireString("dimension")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	values, err := fh.client.ListDistinctValues(ctx, client.Dimension(dim))
	if err != nil {
		return toolError("list_filter_values", err)
	}
	return jsonResult(map[string]any{"dimension": dim, "values": values})
}
