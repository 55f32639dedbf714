package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/CannonJunior/x-uav/mcp/internal/prompts"
)

// PromptsHandler serves the embedded analyst prompts over prompts/list and
// prompts/get.
type PromptsHandler struct{}

func NewPromptsHandler() *PromptsHandler {
	return &PromptsHandler{}
}

// RegisterTools registers every embedded prompt. The name matches the other
// handlers so the server registers them uniformly.
func (ph *PromptsHandler) RegisterTools(s *server.MCPServer) error {
	all, err := prompts.List()
	if err != nil {
		return fmt.Errorf("load prompts: %w", err)
	}
	for _, p := range all {
		opts := []mcp.PromptOption{mcp.WithPromptDescription(p.Description)}
		for _, a := range p.Arguments {
			opts = append(opts, mcp.WithArgument(a, mcp.ArgumentDescription(a)))
		}
		s.AddPrompt(mcp.NewPrompt(p.Name, opts...), ph.handlerFor(p))
	}
	return nil
}

func (ph *PromptsHandler) handlerFor(p *prompts.Prompt) server.PromptHandlerFunc {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		text, err := p.Render(req.Params.Arguments)
		if err != nil {
			return nil, err
		}
		return mcp.NewGetPromptResult(p.Description, []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		}), nil
	}
}
