// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/mcp-server/templates"
)

// promptTemplateData holds the data used to populate prompt templates.
type promptTemplateData struct {
	Certificate string
	Hostname    string
	Data        string
}

// Role markers separating messages in prompt templates.
const (
	assistantMarker = "### Assistant:"
	userMarker      = "### User:"
)

// parsePromptTemplate parses a prompt template file and converts it to MCP messages.
//
// The template is executed with data, then split into messages at role
// markers. Markdown headers and blank lines outside messages are dropped.
//
// Parameters:
//   - templateName: Name of the template file (without .md extension)
//   - data: Template data to populate placeholders
//
// Returns:
//   - []mcp.PromptMessage: Parsed MCP messages
//   - error: Any error during template execution or parsing
func parsePromptTemplate(templateName string, data promptTemplateData) ([]mcp.PromptMessage, error) {
	templateContent, err := templates.MagicEmbed.ReadFile(templateName + ".md")
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", templateName, err)
	}

	tmpl, err := template.New(templateName).Parse(string(templateContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	var (
		messages       []mcp.PromptMessage
		currentRole    mcp.Role
		currentContent strings.Builder
	)

	flush := func() {
		if currentContent.Len() > 0 {
			messages = append(messages, mcp.NewPromptMessage(
				currentRole,
				mcp.NewTextContent(strings.TrimSpace(currentContent.String())),
			))
			currentContent.Reset()
		}
	}

	for line := range strings.SplitSeq(buf.String(), "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, assistantMarker):
			flush()
			currentRole = mcp.RoleAssistant
			continue
		case strings.HasPrefix(line, userMarker):
			flush()
			currentRole = mcp.RoleUser
			continue
		}

		if line == "" || strings.HasPrefix(line, "#") || currentRole == "" {
			continue
		}
		if currentContent.Len() > 0 {
			currentContent.WriteString("\n")
		}
		currentContent.WriteString(line)
	}
	flush()

	return messages, nil
}

// handleHostnameVerificationPrompt handles the hostname verification prompt.
//
// Expected arguments in request.Params.Arguments:
//   - certificate: PEM text, base64-encoded certificate data or a file path
//   - hostname: Hostname the certificate is expected to serve
func handleHostnameVerificationPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	messages, err := parsePromptTemplate("hostname-verification-prompt", promptTemplateData{
		Certificate: request.Params.Arguments["certificate"],
		Hostname:    request.Params.Arguments["hostname"],
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse hostname verification template: %w", err)
	}

	return mcp.NewGetPromptResult(
		"Hostname Verification Workflow",
		messages,
	), nil
}

// handlePEMTriagePrompt handles the PEM triage prompt.
//
// Expected arguments in request.Params.Arguments:
//   - data: PEM text, base64-encoded data or a file path
func handlePEMTriagePrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	messages, err := parsePromptTemplate("pem-triage-prompt", promptTemplateData{
		Data: request.Params.Arguments["data"],
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse PEM triage template: %w", err)
	}

	return mcp.NewGetPromptResult(
		"PEM Bundle Triage Workflow",
		messages,
	), nil
}
