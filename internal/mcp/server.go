package mcp

// Implementation Plan:
// 1. Server struct wrapping the stdio MCP server
// 2. NewServer - creates server, registers the outline and read tools
// 3. Serve - starts MCP server on stdio with graceful shutdown
// 4. Graceful shutdown on SIGTERM/SIGINT

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
)

// ServerConfig carries the identity and tool defaults of an MCP server.
type ServerConfig struct {
	// Version reported to MCP clients during initialization.
	Version string

	// DefaultDepth caps outline entry depth when a tool call does not
	// specify one. Zero means unlimited.
	DefaultDepth int

	// DefaultMode is the extraction mode used when a read call does not
	// specify one.
	DefaultMode string
}

// DefaultServerConfig returns a server configuration with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Version:      "dev",
		DefaultDepth: 0,
		DefaultMode:  "full",
	}
}

// Server manages the MCP server lifecycle.
type Server struct {
	config *ServerConfig
	mcp    *server.MCPServer
}

// NewServer creates an MCP server exposing the markdown outline and read
// tools over stdio.
func NewServer(config *ServerConfig) *Server {
	if config == nil {
		config = DefaultServerConfig()
	}

	mcpServer := server.NewMCPServer(
		"mdi",
		config.Version,
		server.WithToolCapabilities(true),
	)

	AddOutlineTool(mcpServer, config)
	AddReadTool(mcpServer, config)

	return &Server{
		config: config,
		mcp:    mcpServer,
	}
}

// Serve starts the MCP server and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// Start MCP server in goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
