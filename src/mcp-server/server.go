// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/config"
	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/logger"
	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/version"
)

var appVersion = version.Version // default version

// GetVersion returns the current version of the MCP server.
//
// The version is initially set to the default from the version package,
// but can be overridden when calling Run() with a specific version string.
func GetVersion() string {
	return appVersion
}

// NewServer builds the MCP server with every tool, resource and prompt,
// configured by cfg. Log receives loader diagnostics.
func NewServer(cfg *config.Config, version string, log logger.Logger) (*server.MCPServer, error) {
	tools, toolsWithConfig := createTools()

	instructions, err := loadInstructions(tools, toolsWithConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load instructions: %w", err)
	}

	return NewServerBuilder().
		WithConfig(cfg).
		WithVersion(version).
		WithLogger(log).
		WithTools(tools...).
		WithToolsWithConfig(toolsWithConfig...).
		WithResources(createResources()...).
		WithPrompts(createPrompts()...).
		WithInstructions(instructions).
		Build()
}

// Run starts the MCP server on standard input and output.
//
// Parameters:
//   - version: Version string to set for the server (e.g., "0.1.0")
//
// Returns:
//   - error: Server startup or runtime error, or graceful shutdown signal
//
// Configuration:
//   - Loads config from the TLS_NAME_VERIFIER_CONFIG environment variable
//   - Falls back to the default config if the variable is not set
//
// Logs are written to standard error as JSON, and only when the configuration
// sets log.format to "json".
//
// Graceful Shutdown:
//   - Responds to SIGINT (Ctrl+C) and SIGTERM signals
//   - Returns context.Canceled error on signal-based shutdown
func Run(version string) error {
	appVersion = version

	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Logging stays off unless the configuration asks for JSON logs.
	silent := cfg.Log.Silent || cfg.Log.Format != config.LogFormatJSON
	log := logger.NewJSONLogger(os.Stderr, silent).WithComponent("mcp-server")

	s, err := NewServer(cfg, version, log)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}()

	log.Printf("Serving %s %s on stdio", serverName, version)

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
