// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/config"
	x509pem "github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/x509/pem"
	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/logger"
)

// serverName identifies the server to [MCP] clients.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
const serverName = "TLS Certificate Name Verifier"

// ToolHandler defines the signature for tool handlers that matches [MCP] server expectations.
// It processes tool calls and returns results.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolHandlerWithConfig defines tool handlers that read certificate input.
// The [Env] carries the configuration and the loader built from it.
type ToolHandlerWithConfig func(ctx context.Context, request mcp.CallToolRequest, env *Env) (*mcp.CallToolResult, error)

// ResourceHandler defines the signature for resource handlers that provide static or dynamic resources.
type ResourceHandler = func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)

// PromptHandler defines the signature for prompt handlers that provide predefined prompts.
type PromptHandler = func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error)

// Env is the environment shared by tools that read certificate input.
//
// Fields:
//   - Config: Settings the server was started with
//   - Loader: PEM loader honoring the filesystem switch and size limit of Config
type Env struct {
	Config *config.Config
	Loader *x509pem.Loader
}

// ToolDefinition holds a tool definition and its handler.
// It pairs an MCP tool specification with its implementation function.
//
// Fields:
//   - Tool: The MCP tool specification
//   - Handler: The function that implements the tool
//   - Role: Name the tool is referred to by in the server instructions
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ToolDefinitionWithConfig holds a tool definition whose handler receives the [Env].
type ToolDefinitionWithConfig struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithConfig
	Role    string
}

// ServerDependencies holds all dependencies needed to create the MCP server.
// It consolidates all required components for server initialization using the builder pattern.
//
// Fields:
//   - Config: Server configuration; [config.Default] when nil
//   - Version: Server version string
//   - Loader: PEM loader; built from Config when nil
//   - Log: Logger handed to the loader
//   - Tools, ToolsWithConfig, Resources, Prompts: Registered capabilities
//   - Instructions: Text sent to clients on initialization
//
// This struct is used internally by ServerBuilder and should not be instantiated directly.
type ServerDependencies struct {
	Config          *config.Config
	Version         string
	Loader          *x509pem.Loader
	Log             logger.Logger
	Tools           []ToolDefinition
	ToolsWithConfig []ToolDefinitionWithConfig
	Resources       []server.ServerResource
	Prompts         []server.ServerPrompt
	Instructions    string
}

// ServerBuilder helps construct the [MCP] server with proper dependencies using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(cfg).
//	    WithVersion("0.1.0").
//	    WithDefaultTools().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with default empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the server configuration.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithVersion sets the server version string.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithLoader sets the PEM loader used by certificate tools, overriding the
// one Build would derive from the configuration.
func (b *ServerBuilder) WithLoader(loader *x509pem.Loader) *ServerBuilder {
	b.deps.Loader = loader
	return b
}

// WithLogger sets the logger handed to the derived loader.
func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	b.deps.Log = log
	return b
}

// WithTools adds tool definitions that don't need the [Env].
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithToolsWithConfig adds tool definitions whose handlers receive the [Env].
func (b *ServerBuilder) WithToolsWithConfig(tools ...ToolDefinitionWithConfig) *ServerBuilder {
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, tools...)
	return b
}

// WithResources adds static and dynamic resources to the MCP server.
// Clients access resources using URIs like "info://version".
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithPrompts adds predefined prompts to the MCP server for guided workflows.
func (b *ServerBuilder) WithPrompts(prompts ...server.ServerPrompt) *ServerBuilder {
	b.deps.Prompts = append(b.deps.Prompts, prompts...)
	return b
}

// WithInstructions sets the instructions sent to clients on initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithDefaultTools adds the certificate tools returned by createTools.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	tools, toolsWithConfig := createTools()
	b.deps.Tools = append(b.deps.Tools, tools...)
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, toolsWithConfig...)
	return b
}

// env resolves the [Env] handed to config-aware tools.
func (b *ServerBuilder) env() (*Env, error) {
	cfg := b.deps.Config
	if cfg == nil {
		cfg = config.Default()
	}

	// Reject unknown type names before the first tool call does.
	if _, err := cfg.Signature(); err != nil {
		return nil, err
	}

	loader := b.deps.Loader
	if loader == nil {
		log := b.deps.Log
		if log == nil {
			log = logger.Discard
		}
		loader = x509pem.NewLoader(cfg.LoaderOptions(log)...)
	}
	return &Env{Config: cfg, Loader: loader}, nil
}

// Build creates the [MCP] server with all configured dependencies.
//
// Returns:
//   - A pointer to the configured MCPServer instance
//   - An error if the configuration names unknown object types
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	env, err := b.env()
	if err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}

	s := server.NewMCPServer(serverName, b.deps.Version, opts...)

	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, tool.Handler)
	}

	for _, tool := range b.deps.ToolsWithConfig {
		s.AddTool(tool.Tool, bindEnv(tool.Handler, env))
	}

	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	for _, prompt := range b.deps.Prompts {
		s.AddPrompt(prompt.Prompt, prompt.Handler)
	}

	return s, nil
}

// bindEnv adapts a config-aware handler to the plain [ToolHandler] shape.
func bindEnv(handler ToolHandlerWithConfig, env *Env) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handler(ctx, request, env)
	}
}
