// Package mcp serves the X-UAV catalog as Model Context Protocol tools and
// prompts, over stdio or Streamable HTTP.
package mcp

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/CannonJunior/x-uav/client"
	"github.com/CannonJunior/x-uav/internal/config"
	"github.com/CannonJunior/x-uav/internal/logger"
	"github.com/CannonJunior/x-uav/mcp/internal/handlers"
)

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server whose tools match the backend contract in
// apiCfg. Prompts are registered for either contract.
func NewServer(cfg *config.Config, apiCfg client.Config, log zerolog.Logger) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		cfg.MCPServerName,
		cfg.MCPServerVersion,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	)

	regs := map[string]toolRegisterer{"prompts": handlers.NewPromptsHandler()}
	switch apiCfg.Contract {
	case client.ContractV1:
		c, err := client.NewV1FromConfig(apiCfg, client.WithLogger(log))
		if err != nil {
			return nil, fmt.Errorf("create v1 client: %w", err)
		}
		regs["catalog"] = handlers.NewCatalogHandler(c)
	default:
		c, err := client.NewFromConfig(apiCfg, client.WithLogger(log))
		if err != nil {
			return nil, fmt.Errorf("create client: %w", err)
		}
		regs["uav"] = handlers.NewUAVHandler(c)
		regs["filter"] = handlers.NewFilterHandler(c)
		regs["armament"] = handlers.NewArmamentHandler(c)
	}
	for name, h := range regs {
		if err := h.RegisterTools(s); err != nil {
			return nil, fmt.Errorf("register %s tools: %w", name, err)
		}
	}

	log.Info().
		Str("contract", string(apiCfg.Contract)).
		Str("base_url", apiCfg.BaseURL).
		Msg("MCP server configured")
	return s, nil
}

// RunMCPServer loads configuration from the environment and serves until
// SIGINT or SIGTERM. Logs go to stderr so stdio mode keeps stdout for the
// protocol.
func RunMCPServer() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.Setup(cfg.MCPServerName, cfg.LogLevel, cfg.LogFormat, os.Stderr)

	apiCfg, err := client.LoadConfig()
	if err != nil {
		log.Error().Stack().Err(err).Msg("Invalid backend configuration")
		return err
	}
	s, err := NewServer(cfg, apiCfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to build MCP server")
		return err
	}

	if shouldUseStdio() {
		log.Info().Msg("Starting X-UAV MCP server (stdio transport)")
		return server.ServeStdio(s)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ln, err := net.Listen("tcp", cfg.MCPHTTPAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.MCPHTTPAddr, err)
	}
	return ServeHTTP(ctx, ln, s, cfg, log)
}

// ServeHTTP serves s over Streamable HTTP at /mcp, plus Prometheus metrics at
// /metrics, until ctx is cancelled.
func ServeHTTP(ctx context.Context, ln net.Listener, s *server.MCPServer, cfg *config.Config, log zerolog.Logger) error {
	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)

	r := mux.NewRouter()
	r.Handle("/mcp", streamSrv)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	srv := &http.Server{
		Handler:      r,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: 0, // no deadline; SSE responses stay open
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("Starting X-UAV MCP server (Streamable HTTP)")
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err, ok := <-errCh:
		if ok {
			log.Error().Stack().Err(err).Msg("HTTP server error")
			return err
		}
		return nil
	}

	log.Info().Msg("Shutting down MCP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during HTTP server shutdown")
		return err
	}
	if err := streamSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during MCP server shutdown")
		return err
	}
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// shouldUseStdio picks the transport: MCP_STDIO=true or MCP_HTTP=true force
// one, otherwise stdio is used when stdin is not a terminal.
func shouldUseStdio() bool {
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}
	return false
}
