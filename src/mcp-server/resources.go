// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createResources creates and returns all static MCP resources with their handlers.
//
// The function defines the following resources:
//   - config://template: Default configuration as JSON
//   - config://schema: JSON Schema configuration files are validated against
//   - info://version: Server name, version and capabilities
//   - docs://matching-rules: How certificate names are matched against hostnames
//   - docs://pem-objects: Object kinds the PEM decoder recognizes
func createResources() []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource("config://template", "Configuration Template",
				mcp.WithResourceDescription("Default server configuration in JSON"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource("config://schema", "Configuration Schema",
				mcp.WithResourceDescription("JSON Schema of the configuration file"),
				mcp.WithMIMEType("application/schema+json"),
			),
			Handler: handleSchemaResource,
		},
		{
			Resource: mcp.NewResource("info://version", "Version Information",
				mcp.WithResourceDescription("Server version and capabilities"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource,
		},
		{
			Resource: mcp.NewResource("docs://matching-rules", "Name Matching Rules",
				mcp.WithResourceDescription("How certificate names and wildcards are matched against hostnames"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: docsResourceHandler("docs://matching-rules", "matching-rules.md"),
		},
		{
			Resource: mcp.NewResource("docs://pem-objects", "PEM Object Kinds",
				mcp.WithResourceDescription("PEM armor labels recognized by the decoder and their type names"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: docsResourceHandler("docs://pem-objects", "pem-objects.md"),
		},
	}
}
