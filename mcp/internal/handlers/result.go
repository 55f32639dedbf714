package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/CannonJunior/x-uav/client"
)

// jsonResult renders v as indented JSON text.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// toolError reports a failed client call as a tool-level error so the model
// can read it; protocol errors are reserved for server faults.
func toolError(tool string, err error) (*mcp.CallToolResult, error) {
	var nf *client.NotFoundError
	var ve *client.ValidationError
	switch {
	case errors.As(err, &nf):
		return mcp.NewToolResultError(fmt.Sprintf("%s: %s %q was not found", tool, nf.Resource, nf.Key)), nil
	case errors.As(err, &ve):
		return mcp.NewToolResultError(fmt.Sprintf("%s: %v", tool, ve)), nil
	}
	if code, ok := client.StatusCode(err); ok {
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: backend returned HTTP %d", tool, code)), nil
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", tool, err)), nil
}

// stringList accepts a JSON array of strings or a comma-separated string.
func stringList(args map[string]any, key string) []string {
	var out []string
	switch v := args[key].(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	case []string:
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			if strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	}
	return out
}
