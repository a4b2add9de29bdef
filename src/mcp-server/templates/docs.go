// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
// It holds the server instructions, the markdown documents served as resources
// and the prompt templates, behind the [EmbedFS] interface with [MagicEmbed]
// as the default implementation.
//
// Example usage:
//
//	import "github.com/H0llyW00dzZ/tls-cert-name-verifier/src/mcp-server/templates"
//
//	// Read the PEM object kinds documentation
//	content, err := templates.MagicEmbed.ReadFile("pem-objects.md")
//	if err != nil {
//		return fmt.Errorf("failed to read PEM object kinds: %w", err)
//	}
//
//	// List all available template files
//	entries, err := templates.MagicEmbed.ReadDir(".")
//	if err != nil {
//		return fmt.Errorf("failed to list templates: %w", err)
//	}
package templates
