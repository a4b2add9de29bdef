// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// certificateArgDescription documents the accepted certificate inputs.
const certificateArgDescription = "PEM text, base64-encoded PEM or DER, or a file path when filesystem loading is enabled"

// createTools creates and returns all MCP tool definitions with their handlers.
//
// Returns:
//   - A slice of ToolDefinition for tools without config dependencies
//   - A slice of ToolDefinitionWithConfig for tools that read certificate input
//
// The function defines the following tools:
//   - decode_pem: Lists the PEM objects found in the input
//   - inspect_certificate: Shows the names of every certificate in the input
//   - verify_hostname: Checks a hostname against the names of the certificates
//   - match_domain_name: Matches a hostname against a single name pattern
func createTools() ([]ToolDefinition, []ToolDefinitionWithConfig) {
	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool("match_domain_name",
				mcp.WithDescription("Match a hostname against a certificate name pattern; a leading '*' label covers one or more labels"),
				mcp.WithString("pattern",
					mcp.Required(),
					mcp.Description("Certificate name pattern, e.g. '*.example.com'"),
				),
				mcp.WithString("hostname",
					mcp.Required(),
					mcp.Description("Hostname to match"),
				),
			),
			Handler: handleMatchDomainName,
			Role:    "matcher",
		},
	}

	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool("decode_pem",
				mcp.WithDescription("Decode PEM armored data and list the objects it contains"),
				mcp.WithString("data",
					mcp.Required(),
					mcp.Description(certificateArgDescription),
				),
				mcp.WithString("types",
					mcp.Description("Comma-separated object kinds to decode, e.g. 'certificate,private-key' or 'any' (default: from configuration)"),
				),
				mcp.WithBoolean("armor",
					mcp.Description("Return the decoded objects re-armored as PEM instead of a table (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: handleDecodePEM,
			Role:    "decoder",
		},
		{
			Tool: mcp.NewTool("inspect_certificate",
				mcp.WithDescription("Show the subject common name, DNS names and IP addresses of every certificate; PKCS#7 bundles are expanded"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(certificateArgDescription),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'table' or 'json' (default: table)"),
					mcp.DefaultString("table"),
				),
			),
			Handler: handleInspectCertificate,
			Role:    "inspector",
		},
		{
			Tool: mcp.NewTool("verify_hostname",
				mcp.WithDescription("Check whether a hostname is covered by the common name or DNS names of the certificates"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(certificateArgDescription),
				),
				mcp.WithString("hostname",
					mcp.Required(),
					mcp.Description("Hostname to verify"),
				),
			),
			Handler: handleVerifyHostname,
			Role:    "verifier",
		},
	}

	return tools, toolsWithConfig
}
