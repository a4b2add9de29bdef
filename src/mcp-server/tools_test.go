// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/mcptest"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/config"
	x509pem "github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/x509/pem"
)

var (
	serverPEM = filepath.Join("testdata", "server.pem")
	mixedPEM  = filepath.Join("testdata", "mixed.pem")
	bundlePEM = filepath.Join("testdata", "bundle.p7b.pem")
)

func readTestdata(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// serverDER returns the base64 DER of the server fixture certificate.
func serverDER(t testing.TB) string {
	t.Helper()
	c, err := x509pem.Decode([]byte(readTestdata(t, serverPEM)), x509pem.SigCertificate)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(c.Object(0).DER)
}

func newEnv(filesystem bool) *Env {
	cfg := config.Default()
	cfg.Filesystem = &filesystem
	return &Env{
		Config: cfg,
		Loader: x509pem.NewLoader(cfg.LoaderOptions(nil)...),
	}
}

// serverTools binds every tool to env for registration on a test server.
func serverTools(env *Env) []server.ServerTool {
	tools, toolsWithConfig := createTools()

	var out []server.ServerTool
	for _, tool := range tools {
		out = append(out, server.ServerTool{Tool: tool.Tool, Handler: tool.Handler})
	}
	for _, tool := range toolsWithConfig {
		out = append(out, server.ServerTool{Tool: tool.Tool, Handler: bindEnv(tool.Handler, env)})
	}
	return out
}

func callTool(t *testing.T, handler ToolHandler, args map[string]any) (string, bool) {
	t.Helper()
	result, err := handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	})
	require.NoError(t, err, "tool failures must be results")
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text, result.IsError
}

func TestCreateTools(t *testing.T) {
	tools, toolsWithConfig := createTools()

	names := make(map[string]string)
	for _, tool := range tools {
		names[tool.Tool.Name] = tool.Role
		assert.NotNil(t, tool.Handler)
	}
	for _, tool := range toolsWithConfig {
		names[tool.Tool.Name] = tool.Role
		assert.NotNil(t, tool.Handler)
	}

	assert.Equal(t, map[string]string{
		"decode_pem":          "decoder",
		"inspect_certificate": "inspector",
		"verify_hostname":     "verifier",
		"match_domain_name":   "matcher",
	}, names)
}

func TestToolHandlers(t *testing.T) {
	env := newEnv(true)

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Verify PEM Text",
			testFunc: func(t *testing.T) {
				text, isErr := callTool(t, bindEnv(handleVerifyHostname, env), map[string]any{
					"certificate": readTestdata(t, serverPEM),
					"hostname":    "never.use.me",
				})
				require.False(t, isErr, text)
				assert.Contains(t, text, "Verification succeeded")
				assert.Contains(t, text, "certificate 1: never.use.me matches never.use.me")
			},
		},
		{
			name: "Verify Base64 DER",
			testFunc: func(t *testing.T) {
				text, isErr := callTool(t, bindEnv(handleVerifyHostname, env), map[string]any{
					"certificate": serverDER(t),
					"hostname":    "DO.NOT.USE.ME",
				})
				require.False(t, isErr, text)
				assert.Contains(t, text, "do.not.use.me matches DO.NOT.USE.ME")
			},
		},
		{
			name: "Verify Base64 PEM",
			testFunc: func(t *testing.T) {
				encoded := base64.StdEncoding.EncodeToString([]byte(readTestdata(t, serverPEM)))
				text, isErr := callTool(t, bindEnv(handleVerifyHostname, env), map[string]any{
					"certificate": encoded,
					"hostname":    "except.for.tests",
				})
				require.False(t, isErr, text)
				assert.Contains(t, text, "Verification succeeded")
			},
		},
		{
			name: "Verify File Path",
			testFunc: func(t *testing.T) {
				text, isErr := callTool(t, bindEnv(handleVerifyHostname, env), map[string]any{
					"certificate": bundlePEM,
					"hostname":    "www.example.org",
				})
				require.False(t, isErr, text)
				assert.Contains(t, text, "certificate 2: *.example.org matches www.example.org")
			},
		},
		{
			name: "Verify Mismatch",
			testFunc: func(t *testing.T) {
				for _, hostname := range []string{"example.com", "xxx", ""} {
					text, isErr := callTool(t, bindEnv(handleVerifyHostname, env), map[string]any{
						"certificate": serverPEM,
						"hostname":    hostname,
					})
					require.False(t, isErr, text)
					assert.Contains(t, text, "Verification failed")
				}
			},
		},
		{
			name: "File Path With Filesystem Disabled",
			testFunc: func(t *testing.T) {
				text, isErr := callTool(t, bindEnv(handleVerifyHostname, newEnv(false)), map[string]any{
					"certificate": serverPEM,
					"hostname":    "never.use.me",
				})
				assert.True(t, isErr)
				assert.Contains(t, text, "filesystem")
			},
		},
		{
			name: "PEM Text With Filesystem Disabled",
			testFunc: func(t *testing.T) {
				text, isErr := callTool(t, bindEnv(handleVerifyHostname, newEnv(false)), map[string]any{
					"certificate": readTestdata(t, serverPEM),
					"hostname":    "never.use.me",
				})
				require.False(t, isErr, text)
				assert.Contains(t, text, "Verification succeeded")
			},
		},
		{
			name: "Unreadable Input",
			testFunc: func(t *testing.T) {
				text, isErr := callTool(t, bindEnv(handleVerifyHostname, env), map[string]any{
					"certificate": "not a certificate!",
					"hostname":    "never.use.me",
				})
				assert.True(t, isErr)
				assert.Contains(t, text, "failed to read certificate")
			},
		},
		{
			name: "Base64 Of Garbage",
			testFunc: func(t *testing.T) {
				text, isErr := callTool(t, bindEnv(handleVerifyHostname, env), map[string]any{
					"certificate": base64.StdEncoding.EncodeToString([]byte("BOOM")),
					"hostname":    "never.use.me",
				})
				assert.True(t, isErr)
				assert.Contains(t, text, "failed to parse certificate")
			},
		},
		{
			name: "Missing Arguments",
			testFunc: func(t *testing.T) {
				handlers := map[string]ToolHandler{
					"data":        bindEnv(handleDecodePEM, env),
					"certificate": bindEnv(handleInspectCertificate, env),
					"pattern":     handleMatchDomainName,
				}
				for param, handler := range handlers {
					text, isErr := callTool(t, handler, map[string]any{})
					assert.True(t, isErr)
					assert.Contains(t, text, param+" parameter required")
				}

				text, isErr := callTool(t, bindEnv(handleVerifyHostname, env), map[string]any{
					"certificate": serverPEM,
				})
				assert.True(t, isErr)
				assert.Contains(t, text, "hostname parameter required")
			},
		},
		{
			name: "Decode Configured Types",
			testFunc: func(t *testing.T) {
				text, isErr := callTool(t, bindEnv(handleDecodePEM, env), map[string]any{
					"data": mixedPEM,
				})
				require.False(t, isErr, text)
				assert.Contains(t, text, "Decoded 1 object(s) of certificate")
			},
		},
		{
			name: "Decode Any",
			testFunc: func(t *testing.T) {
				text, isErr := callTool(t, bindEnv(handleDecodePEM, env), map[string]any{
					"data":  readTestdata(t, mixedPEM),
					"types": "any",
				})
				require.False(t, isErr, text)
				assert.Contains(t, text, "Decoded 2 object(s)")
				assert.Contains(t, text, "PRIVATE KEY")
			},
		},
		{
			name: "Decode Unknown Type",
			testFunc: func(t *testing.T) {
				text, isErr := callTool(t, bindEnv(handleDecodePEM, env), map[string]any{
					"data":  serverPEM,
					"types": "certificate,bogus",
				})
				assert.True(t, isErr)
				assert.Contains(t, text, "invalid types")
			},
		},
		{
			name: "Decode Armor",
			testFunc: func(t *testing.T) {
				text, isErr := callTool(t, bindEnv(handleDecodePEM, env), map[string]any{
					"data":  serverPEM,
					"armor": true,
				})
				require.False(t, isErr, text)
				assert.Equal(t, readTestdata(t, serverPEM), text)
			},
		},
		{
			name: "Decode Without Wanted Objects",
			testFunc: func(t *testing.T) {
				text, isErr := callTool(t, bindEnv(handleDecodePEM, env), map[string]any{
					"data":  serverPEM,
					"types": "crl",
				})
				assert.True(t, isErr)
				assert.Contains(t, text, "no matching PEM objects")
			},
		},
		{
			name: "Inspect JSON",
			testFunc: func(t *testing.T) {
				text, isErr := callTool(t, bindEnv(handleInspectCertificate, env), map[string]any{
					"certificate": bundlePEM,
					"format":      "json",
				})
				require.False(t, isErr, text)

				var summaries []map[string]any
				require.NoError(t, json.Unmarshal([]byte(text), &summaries))
				require.Len(t, summaries, 2)
				assert.Equal(t, "*.example.org", summaries[1]["commonName"])
			},
		},
		{
			name: "Inspect Table",
			testFunc: func(t *testing.T) {
				text, isErr := callTool(t, bindEnv(handleInspectCertificate, env), map[string]any{
					"certificate": serverPEM,
				})
				require.False(t, isErr, text)
				assert.Contains(t, text, "do.not.use.me")
				assert.Contains(t, text, "127.0.0.1")
			},
		},
		{
			name: "Inspect Unsupported Format",
			testFunc: func(t *testing.T) {
				text, isErr := callTool(t, bindEnv(handleInspectCertificate, env), map[string]any{
					"certificate": serverPEM,
					"format":      "yaml",
				})
				assert.True(t, isErr)
				assert.Contains(t, text, "unsupported format")
			},
		},
		{
			name: "Match Domain Name",
			testFunc: func(t *testing.T) {
				cases := []struct {
					pattern, hostname, want string
				}{
					{"*.example.org", "www.example.org", "true"},
					{"*.example.org", "example.org", "false"},
					{"*", "", "false"},
					{"", "", "true"},
				}
				for _, c := range cases {
					text, isErr := callTool(t, handleMatchDomainName, map[string]any{
						"pattern":  c.pattern,
						"hostname": c.hostname,
					})
					require.False(t, isErr, text)
					assert.Equal(t, c.want, text, "%q vs %q", c.pattern, c.hostname)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestToolsOverClient(t *testing.T) {
	srv := mcptest.NewUnstartedServer(t)
	srv.AddTools(serverTools(newEnv(true))...)

	if err := srv.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer srv.Close()

	client := srv.Client()

	tests := []struct {
		name           string
		toolName       string
		args           map[string]any
		expectError    bool
		expectContains []string
	}{
		{
			name:           "verify_hostname with pem text",
			toolName:       "verify_hostname",
			args:           map[string]any{"certificate": readTestdata(t, serverPEM), "hostname": "localhost"},
			expectContains: []string{"localhost matches localhost"},
		},
		{
			name:           "inspect_certificate with pkcs7 bundle",
			toolName:       "inspect_certificate",
			args:           map[string]any{"certificate": bundlePEM, "format": "json"},
			expectContains: []string{`"never.use.me"`, `"*.example.org"`},
		},
		{
			name:           "decode_pem with any type",
			toolName:       "decode_pem",
			args:           map[string]any{"data": mixedPEM, "types": "any"},
			expectContains: []string{"Decoded 2 object(s)"},
		},
		{
			name:           "match_domain_name",
			toolName:       "match_domain_name",
			args:           map[string]any{"pattern": "*.d", "hostname": "a.bc.d"},
			expectContains: []string{"true"},
		},
		{
			name:        "verify_hostname with invalid certificate",
			toolName:    "verify_hostname",
			args:        map[string]any{"certificate": "invalid-cert-data!", "hostname": "localhost"},
			expectError: true,
		},
		{
			name:        "inspect_certificate missing certificate parameter",
			toolName:    "inspect_certificate",
			args:        map[string]any{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := client.CallTool(context.Background(), mcp.CallToolRequest{
				Params: mcp.CallToolParams{
					Name:      tt.toolName,
					Arguments: tt.args,
				},
			})
			require.NoError(t, err)

			var content strings.Builder
			for _, c := range result.Content {
				if tc, ok := c.(mcp.TextContent); ok {
					content.WriteString(tc.Text)
				}
			}

			assert.Equal(t, tt.expectError, result.IsError, content.String())
			for _, want := range tt.expectContains {
				assert.Contains(t, content.String(), want)
			}
		})
	}
}
