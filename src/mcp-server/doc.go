// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for [X509] certificate name verification.
// It exposes tools to decode PEM data, inspect certificate names, verify a
// hostname against a certificate and match a single name pattern, together
// with documentation resources and guided prompts.
//
// Certificate arguments accept PEM text or base64 data. File paths are read
// only when the configuration leaves filesystem loading enabled. The package
// uses a builder pattern for server construction and serves over stdio.
//
// [X509]: https://grokipedia.com/page/X.509
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
