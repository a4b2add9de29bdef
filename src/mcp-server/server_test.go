// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/mcptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/config"
	x509pem "github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/x509/pem"
	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/logger"
)

func TestResources(t *testing.T) {
	srv := mcptest.NewUnstartedServer(t)
	srv.AddResources(createResources()...)

	if err := srv.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer srv.Close()

	mcpClient := srv.Client()

	tests := []struct {
		name           string
		uri            string
		expectError    bool
		expectContains []string
		expectMIMEType string
	}{
		{
			name:           "read config template resource",
			uri:            "config://template",
			expectContains: []string{`"filesystem": true`, `"certificate"`, `"maxFileSize"`},
			expectMIMEType: "application/json",
		},
		{
			name:           "read config schema resource",
			uri:            "config://schema",
			expectContains: []string{`"additionalProperties"`, `"maxFileSize"`},
			expectMIMEType: "application/schema+json",
		},
		{
			name:           "read version info resource",
			uri:            "info://version",
			expectContains: []string{`"name"`, `"version"`, `"capabilities"`, `"supportedTypes"`, `"verify_hostname"`},
			expectMIMEType: "application/json",
		},
		{
			name:           "read matching rules resource",
			uri:            "docs://matching-rules",
			expectContains: []string{"Wildcards", "case-insensitive"},
			expectMIMEType: "text/markdown",
		},
		{
			name:           "read PEM object kinds resource",
			uri:            "docs://pem-objects",
			expectContains: []string{"TRUSTED CERTIFICATE", "pkcs7"},
			expectMIMEType: "text/markdown",
		},
		{
			name:        "read nonexistent resource",
			uri:         "nonexistent://resource",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := mcpClient.ReadResource(context.Background(), mcp.ReadResourceRequest{
				Params: mcp.ReadResourceParams{URI: tt.uri},
			})
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, result.Contents, 1)

			contents, ok := result.Contents[0].(mcp.TextResourceContents)
			require.True(t, ok, "expected text resource contents")
			assert.Equal(t, tt.uri, contents.URI)
			assert.Equal(t, tt.expectMIMEType, contents.MIMEType)
			for _, want := range tt.expectContains {
				assert.Contains(t, contents.Text, want)
			}
		})
	}
}

func TestConfigTemplateRoundTrip(t *testing.T) {
	contents, err := handleConfigResource(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)

	text := contents[0].(mcp.TextResourceContents).Text
	cfg, err := config.Parse([]byte(text), config.FormatJSON)
	require.NoError(t, err, "the template must pass schema validation")
	assert.Equal(t, config.Default(), cfg)
}

func TestSupportedTypes(t *testing.T) {
	types := supportedTypes()
	assert.Equal(t, "certificate", types[0])
	assert.Contains(t, types, "pkcs7")
	assert.Contains(t, types, "crl")

	sig, err := x509pem.ParseSignatures(types)
	require.NoError(t, err)
	assert.Equal(t, x509pem.SigAny, sig)
}

func TestPrompts(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Hostname Verification",
			testFunc: func(t *testing.T) {
				result, err := handleHostnameVerificationPrompt(context.Background(), mcp.GetPromptRequest{
					Params: mcp.GetPromptParams{
						Name:      "hostname-verification",
						Arguments: map[string]string{"certificate": "server.pem", "hostname": "www.example.org"},
					},
				})
				require.NoError(t, err)
				assert.Equal(t, "Hostname Verification Workflow", result.Description)
				require.Len(t, result.Messages, 2)

				assert.Equal(t, mcp.RoleUser, result.Messages[0].Role)
				user := result.Messages[0].Content.(mcp.TextContent).Text
				assert.Contains(t, user, "www.example.org")
				assert.Contains(t, user, "server.pem")

				assert.Equal(t, mcp.RoleAssistant, result.Messages[1].Role)
				assistant := result.Messages[1].Content.(mcp.TextContent).Text
				assert.Contains(t, assistant, "verify_hostname")
				assert.NotContains(t, assistant, "###")
			},
		},
		{
			name: "PEM Triage",
			testFunc: func(t *testing.T) {
				result, err := handlePEMTriagePrompt(context.Background(), mcp.GetPromptRequest{
					Params: mcp.GetPromptParams{
						Name:      "pem-triage",
						Arguments: map[string]string{"data": "bundle.pem"},
					},
				})
				require.NoError(t, err)
				require.Len(t, result.Messages, 2)
				assert.Contains(t, result.Messages[0].Content.(mcp.TextContent).Text, "bundle.pem")
				assert.Contains(t, result.Messages[1].Content.(mcp.TextContent).Text, "decode_pem")
			},
		},
		{
			name: "Missing Template",
			testFunc: func(t *testing.T) {
				_, err := parsePromptTemplate("non-existent", promptTemplateData{})
				assert.Error(t, err)
			},
		},
		{
			name: "Registered Prompts",
			testFunc: func(t *testing.T) {
				var names []string
				for _, p := range createPrompts() {
					names = append(names, p.Prompt.Name)
					assert.NotNil(t, p.Handler)
				}
				assert.Equal(t, []string{"hostname-verification", "pem-triage"}, names)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestLoadInstructions(t *testing.T) {
	tools, toolsWithConfig := createTools()
	instructions, err := loadInstructions(tools, toolsWithConfig)
	require.NoError(t, err)

	for _, name := range []string{"decode_pem", "inspect_certificate", "verify_hostname", "match_domain_name"} {
		assert.Contains(t, instructions, "`"+name+"`")
	}
	assert.NotContains(t, instructions, "{{")
	assert.NotContains(t, instructions, "<no value>")
}

func TestServerBuilder(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Defaults",
			testFunc: func(t *testing.T) {
				b := NewServerBuilder().WithDefaultTools()
				env, err := b.env()
				require.NoError(t, err)
				assert.Equal(t, config.Default(), env.Config)
				assert.True(t, env.Loader.FilesystemEnabled())

				s, err := b.Build()
				require.NoError(t, err)
				assert.NotNil(t, s)
			},
		},
		{
			name: "Filesystem Disabled By Config",
			testFunc: func(t *testing.T) {
				disabled := false
				cfg := config.Default()
				cfg.Filesystem = &disabled

				env, err := NewServerBuilder().WithConfig(cfg).env()
				require.NoError(t, err)
				assert.False(t, env.Loader.FilesystemEnabled())
			},
		},
		{
			name: "Explicit Loader Wins",
			testFunc: func(t *testing.T) {
				loader := x509pem.NewLoader(x509pem.WithFilesystem(false))
				env, err := NewServerBuilder().WithLoader(loader).env()
				require.NoError(t, err)
				assert.Same(t, loader, env.Loader)
			},
		},
		{
			name: "Unknown Type In Config",
			testFunc: func(t *testing.T) {
				cfg := config.Default()
				cfg.Types = []string{"bogus"}

				_, err := NewServerBuilder().WithConfig(cfg).Build()
				require.ErrorIs(t, err, x509pem.ErrUnknownType)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestNewServer(t *testing.T) {
	s, err := NewServer(config.Default(), "test", logger.Discard)
	require.NoError(t, err)

	c, err := client.NewInProcessClient(s)
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	require.NoError(t, c.Start(ctx))

	initResult, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			ClientInfo:      mcp.Implementation{Name: "test-client", Version: "test"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, serverName, initResult.ServerInfo.Name)
	assert.Equal(t, "test", initResult.ServerInfo.Version)
	assert.Contains(t, initResult.Instructions, "verify_hostname")

	tools, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	require.NoError(t, err)
	assert.Len(t, tools.Tools, 4)

	prompts, err := c.ListPrompts(ctx, mcp.ListPromptsRequest{})
	require.NoError(t, err)
	assert.Len(t, prompts.Prompts, 2)

	result, err := c.CallTool(ctx, mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "verify_hostname",
			Arguments: map[string]any{
				"certificate": serverPEM,
				"hostname":    "except.for.tests",
			},
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.True(t, strings.HasPrefix(result.Content[0].(mcp.TextContent).Text, "Verification succeeded"))
}

func TestVersionResource(t *testing.T) {
	contents, err := handleVersionResource(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)

	var info struct {
		Name         string `json:"name"`
		Version      string `json:"version"`
		Capabilities struct {
			Tools     []string `json:"tools"`
			Resources []string `json:"resources"`
			Prompts   []string `json:"prompts"`
		} `json:"capabilities"`
	}
	require.NoError(t, json.Unmarshal([]byte(contents[0].(mcp.TextResourceContents).Text), &info))
	assert.Equal(t, serverName, info.Name)
	assert.Equal(t, GetVersion(), info.Version)
	assert.Len(t, info.Capabilities.Tools, 4)
	assert.Len(t, info.Capabilities.Resources, 5)
	assert.Len(t, info.Capabilities.Prompts, 2)
}
