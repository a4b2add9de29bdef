// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/config"
	x509pem "github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/x509/pem"
	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/mcp-server/templates"
)

// handleConfigResource serves the default configuration as a JSON template.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP resource read request for the config template
//
// Returns:
//   - A slice containing the configuration template as JSON content
//   - An error if JSON marshaling fails
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(config.Default(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "config://template",
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleSchemaResource serves the JSON Schema configuration files are validated against.
func handleSchemaResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "config://schema",
			MIMEType: "application/schema+json",
			Text:     config.Schema(),
		},
	}, nil
}

// handleVersionResource handles requests for version information resource.
// It provides server metadata including version, capabilities, and supported object kinds.
//
// Tool and prompt names are taken from the definitions the server registers,
// so the resource never drifts from what clients can call.
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	tools, toolsWithConfig := createTools()

	var toolNames []string
	for _, tool := range tools {
		toolNames = append(toolNames, tool.Tool.Name)
	}
	for _, tool := range toolsWithConfig {
		toolNames = append(toolNames, tool.Tool.Name)
	}

	var resourceURIs []string
	for _, resource := range createResources() {
		resourceURIs = append(resourceURIs, resource.Resource.URI)
	}

	var promptNames []string
	for _, prompt := range createPrompts() {
		promptNames = append(promptNames, prompt.Prompt.Name)
	}

	versionInfo := map[string]any{
		"name":    serverName,
		"version": GetVersion(),
		"type":    "MCP Server",
		"capabilities": map[string]any{
			"tools":     toolNames,
			"resources": resourceURIs,
			"prompts":   promptNames,
		},
		"supportedTypes": supportedTypes(),
	}

	jsonData, err := json.MarshalIndent(versionInfo, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "info://version",
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// supportedTypes lists the object kind names accepted by the "types" arguments.
func supportedTypes() []string {
	var names []string
	for sig := x509pem.SigCertificate; sig&x509pem.SigAny != 0; sig <<= 1 {
		names = append(names, sig.String())
	}
	return names
}

// docsResourceHandler returns a handler serving the embedded markdown file name under uri.
func docsResourceHandler(uri, name string) ResourceHandler {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		content, err := templates.MagicEmbed.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s template: %w", name, err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "text/markdown",
				Text:     string(content),
			},
		}, nil
	}
}
