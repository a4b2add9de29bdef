// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createPrompts creates and returns all MCP prompt definitions with their handlers
func createPrompts() []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt("hostname-verification",
				mcp.WithPromptDescription("Check which certificate names cover a hostname and explain the result"),
				mcp.WithArgument("certificate",
					mcp.ArgumentDescription("PEM text, base64-encoded certificate data or a file path"),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("hostname",
					mcp.ArgumentDescription("Hostname the certificate is expected to serve"),
					mcp.RequiredArgument(),
				),
			),
			Handler: handleHostnameVerificationPrompt,
		},
		{
			Prompt: mcp.NewPrompt("pem-triage",
				mcp.WithPromptDescription("Identify the objects in a PEM bundle and the certificates it carries"),
				mcp.WithArgument("data",
					mcp.ArgumentDescription("PEM text, base64-encoded data or a file path"),
					mcp.RequiredArgument(),
				),
			),
			Handler: handlePEMTriagePrompt,
		},
	}
}
