// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	x509certs "github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/x509/certs"
	x509pem "github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/x509/pem"
)

// pemPreamble starts every PEM armor line.
const pemPreamble = "-----BEGIN "

// errUnreadableInput indicates input that is neither PEM text, base64 data nor a readable file.
var errUnreadableInput = errors.New("input is not PEM text, base64 data or a readable file")

// load resolves a tool argument to decoded objects of kind want.
//
// Resolution order:
//  1. PEM text, recognized by its BEGIN line
//  2. A file path, when filesystem loading is enabled and the file exists
//  3. Base64 of PEM text, or of a single DER certificate
func (e *Env) load(input string, want x509pem.Signature) (*x509pem.Container, error) {
	if strings.Contains(input, pemPreamble) {
		return e.Loader.Load([]byte(input), want)
	}

	if e.Loader.FilesystemEnabled() {
		if info, err := os.Stat(input); err == nil && info.Mode().IsRegular() {
			return e.Loader.LoadFile(input, want)
		}
	}

	data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(input), ""))
	if err != nil || len(data) == 0 {
		if !e.Loader.FilesystemEnabled() {
			return nil, fmt.Errorf("%w: input is not PEM text or base64 data", x509pem.ErrFilesystemDisabled)
		}
		return nil, errUnreadableInput
	}

	if !bytes.Contains(data, []byte(pemPreamble)) {
		data = x509pem.Encode("CERTIFICATE", data)
	}
	return e.Loader.Load(data, want)
}

// certificates resolves a tool argument to certificates, expanding PKCS#7 bundles.
func (e *Env) certificates(input string) ([]*x509certs.Certificate, error) {
	c, err := e.load(input, x509pem.SigCertificate|x509pem.SigPKCS7)
	if err != nil {
		return nil, err
	}
	return x509certs.Expand(c)
}

// handleDecodePEM lists the PEM objects found in the data argument.
//
// Parameters:
//   - ctx: Context for cancellation
//   - request: Tool call carrying "data", and optionally "types" and "armor"
//   - env: Configuration and loader
//
// Returns:
//   - A markdown table of the decoded objects, or their PEM re-encoding when armor is set
//   - An error result when the input cannot be read or decoded
func handleDecodePEM(ctx context.Context, request mcp.CallToolRequest, env *Env) (*mcp.CallToolResult, error) {
	data, err := request.RequireString("data")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("data parameter required: %v", err)), nil
	}

	want, err := env.Config.Signature()
	if types := request.GetString("types", ""); types != "" {
		want, err = x509pem.ParseSignatures(strings.Split(types, ","))
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid types: %v", err)), nil
	}

	c, err := env.load(data, want)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode PEM: %v", err)), nil
	}
	defer c.Release()

	if request.GetBool("armor", false) {
		return mcp.NewToolResultText(string(c.Encode())), nil
	}

	table, err := c.RenderTable()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render table: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Decoded %d object(s) of %s\n\n%s", c.Len(), want, table)), nil
}

// handleInspectCertificate shows the names of every certificate in the certificate argument.
//
// The "format" argument selects a markdown table (default) or JSON.
func handleInspectCertificate(ctx context.Context, request mcp.CallToolRequest, env *Env) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	certs, err := env.certificates(input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read certificate: %v", err)), nil
	}

	switch format := request.GetString("format", "table"); format {
	case "json":
		out, err := x509certs.ToJSON(certs)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode JSON: %v", err)), nil
		}
		return mcp.NewToolResultText(string(out)), nil
	case "table":
		table, err := x509certs.RenderTable(certs)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to render table: %v", err)), nil
		}
		return mcp.NewToolResultText(table), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q: use 'table' or 'json'", format)), nil
	}
}

// handleVerifyHostname checks the hostname argument against every certificate.
//
// A miss is a successful call whose text reports the mismatch; only unreadable
// input produces an error result.
func handleVerifyHostname(ctx context.Context, request mcp.CallToolRequest, env *Env) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}
	hostname, err := request.RequireString("hostname")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("hostname parameter required: %v", err)), nil
	}

	certs, err := env.certificates(input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read certificate: %v", err)), nil
	}

	var result strings.Builder
	for i, cert := range certs {
		for _, name := range cert.MatchingNames([]byte(hostname)) {
			fmt.Fprintf(&result, "certificate %d: %s matches %s\n", i+1, name, hostname)
		}
	}

	if result.Len() == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("Verification failed: no certificate name matches %s", hostname)), nil
	}
	return mcp.NewToolResultText("Verification succeeded\n\n" + result.String()), nil
}

// handleMatchDomainName reports whether the hostname argument matches the pattern argument.
func handleMatchDomainName(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := request.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("pattern parameter required: %v", err)), nil
	}
	hostname, err := request.RequireString("hostname")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("hostname parameter required: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%t", x509certs.MatchDomainNameString(pattern, hostname))), nil
}
