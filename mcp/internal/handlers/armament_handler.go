package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/CannonJunior/x-uav/client"
)

// ArmamentHandler exposes the armament tools.
type ArmamentHandler struct {
	client *client.Client
}

func NewArmamentHandler(c *client.Client) *ArmamentHandler {
	return &ArmamentHandler{client: c}
}

// RegisterTools registers get_uav_armaments and search_armaments.
func (ah *ArmamentHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("get_uav_armaments",
		mcp.WithDescription("Weapons a UAV can carry"),
		mcp.WithString("designation", mcp.Required(), mcp.Description("UAV designation")),
	), ah.handleForUAV)

	s.AddTool(mcp.NewTool("search_armaments",
		mcp.WithDescription("Search weapons; omitted filters match everything"),
		mcp.WithString("weapon_type", mcp.Description("e.g. Missile, Bomb")),
		mcp.WithString("weapon_class", mcp.Description("Weapon class")),
		mcp.WithString("country", mcp.Description("Country of origin")),
		mcp.WithString("guidance_type", mcp.Description("e.g. Laser, GPS/INS")),
	), ah.handleSearch)
	return nil
}

func (ah *ArmamentHandler) handleForUAV(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	designation, err := req.RequireString("designation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := ah.client.GetUAVArmaments(ctx, designation)
	if err != nil {
		return toolError("get_uav_armaments", err)
	}
	return jsonResult(res)
}

func (ah *ArmamentHandler) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := ah.client.SearchArmaments(ctx, client.ArmamentSearch{
		WeaponType:   req.GetString("weapon_type", ""),
		WeaponClass:  req.GetString("weapon_class", ""),
		Country:      req.GetString("country", ""),
		GuidanceType: req.GetString("guidance_type", ""),
	})
	if err != nil {
		return toolError("search_armaments", err)
	}
	return jsonResult(res)
}
