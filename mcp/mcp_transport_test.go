package mcp

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	xuav "github.com/CannonJunior/x-uav/client"
	"github.com/CannonJunior/x-uav/internal/config"
)

func newTestMCPServer(t *testing.T, contract xuav.Contract, backendURL string) *server.MCPServer {
	t.Helper()
	base := backendURL
	if contract == xuav.ContractLegacy {
		base += "/api"
	}
	s, err := NewServer(config.NewForTesting(), xuav.Config{BaseURL: base, Contract: contract}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func initialize(ctx context.Context, t *testing.T, c *client.Client) {
	t.Helper()
	_, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: "2024-11-05",
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "test-client",
				Version: "1.0.0",
			},
		},
	})
	if err != nil {
		t.Fatalf("failed to initialize MCP client: %v", err)
	}
}

func toolNames(ctx context.Context, t *testing.T, c *client.Client) map[string]bool {
	t.Helper()
	tools, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		t.Fatalf("tools/list failed: %v", err)
	}
	names := make(map[string]bool, len(tools.Tools))
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	return names
}

func TestMCPServer_InProcess(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/health":
			_, _ = w.Write([]byte(`{"status":"healthy","database":"connected"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Not found"}`))
		}
	}))
	defer backend.Close()

	tests := []struct {
		contract xuav.Contract
		want     []string
		absent   []string
	}{
		{
			contract: xuav.ContractLegacy,
			want:     []string{"uav_health", "uav_stats", "list_uavs", "get_uav", "compare_uavs", "search_uavs", "list_filter_values", "get_uav_armaments"},
			absent:   []string{"list_platforms"},
		},
		{
			contract: xuav.ContractV1,
			want:     []string{"uav_health", "list_platforms", "get_platform", "search_catalog", "suggest_platforms", "platform_neighborhood"},
			absent:   []string{"uav_stats"},
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.contract), func(t *testing.T) {
			inProcessTransport := transport.NewInProcessTransport(newTestMCPServer(t, tt.contract, backend.URL))
			if err := inProcessTransport.Start(context.Background()); err != nil {
				t.Fatalf("failed to start in-process transport: %v", err)
			}
			defer inProcessTransport.Close()

			mcpClient := client.NewClient(inProcessTransport)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			initialize(ctx, t, mcpClient)

			names := toolNames(ctx, t, mcpClient)
			for _, name := range tt.want {
				if !names[name] {
					t.Errorf("expected tool %q not found", name)
				}
			}
			for _, name := range tt.absent {
				if names[name] {
					t.Errorf("tool %q should not be registered", name)
				}
			}

			prompts, err := mcpClient.ListPrompts(ctx, mcp.ListPromptsRequest{})
			if err != nil {
				t.Fatalf("prompts/list failed: %v", err)
			}
			if len(prompts.Prompts) == 0 {
				t.Fatal("expected embedded prompts")
			}
		})
	}
}

func TestMCPServer_CallToolOverInProcess(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy","database":"connected"}`))
	}))
	defer backend.Close()

	inProcessTransport := transport.NewInProcessTransport(newTestMCPServer(t, xuav.ContractLegacy, backend.URL))
	if err := inProcessTransport.Start(context.Background()); err != nil {
		t.Fatalf("failed to start in-process transport: %v", err)
	}
	defer inProcessTransport.Close()

	mcpClient := client.NewClient(inProcessTransport)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	initialize(ctx, t, mcpClient)

	res, err := mcpClient.CallTool(ctx, mcp.CallToolRequest{Params: mcp.CallToolParams{Name: "uav_health"}})
	if err != nil {
		t.Fatalf("tools/call failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}
	if tc, ok := res.Content[0].(mcp.TextContent); !ok || !strings.Contains(tc.Text, "connected") {
		t.Fatalf("unexpected content %+v", res.Content)
	}
}

func TestServeHTTP(t *testing.T) {
	s := newTestMCPServer(t, xuav.ContractLegacy, "http://127.0.0.1:1")
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ServeHTTP(ctx, ln, s, config.NewForTesting(), zerolog.Nop()) }()

	baseURL := "http://" + ln.Addr().String()

	httpTransport, err := transport.NewStreamableHTTP(baseURL + "/mcp")
	if err != nil {
		t.Fatalf("failed to create HTTP transport: %v", err)
	}
	if err := httpTransport.Start(context.Background()); err != nil {
		t.Fatalf("failed to start HTTP transport: %v", err)
	}
	mcpClient := client.NewClient(httpTransport)
	callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer callCancel()
	initialize(callCtx, t, mcpClient)
	if names := toolNames(callCtx, t, mcpClient); !names["get_uav"] {
		t.Fatalf("get_uav missing over HTTP transport")
	}
	_ = httpTransport.Close()

	resp, err := http.Get(baseURL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "go_goroutines") {
		t.Fatalf("unexpected metrics response %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ServeHTTP returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ServeHTTP did not shut down")
	}
}

func TestShouldUseStdio_EnvOverrides(t *testing.T) {
	t.Setenv("MCP_STDIO", "true")
	if !shouldUseStdio() {
		t.Fatal("MCP_STDIO=true should force stdio")
	}
	t.Setenv("MCP_STDIO", "")
	t.Setenv("MCP_HTTP", "true")
	if shouldUseStdio() {
		t.Fatal("MCP_HTTP=true should force HTTP")
	}
}
