// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-cert-name-verifier is a Model Context Protocol (MCP) server that exposes
// certificate name verification to AI assistants and automation clients over stdio.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/tls-cert-name-verifier/cmd/x509-cert-name-verifier@latest
//
// # Environment Variables
//
//	TLS_NAME_VERIFIER_CONFIG  Path to configuration file (JSON or YAML)
//
// Set "filesystem": false in the configuration to stop tools from reading
// file paths; PEM text and base64 input keep working.
//
// # MCP Tools
//
//	decode_pem           List the PEM objects in the input
//	inspect_certificate  Show common name, DNS names and IP addresses
//	verify_hostname      Check a hostname against the certificate names
//	match_domain_name    Match a hostname against a single name pattern
//
// # MCP Resources
//
//	config://template      Default configuration
//	config://schema        Configuration JSON Schema
//	info://version         Server version and capabilities
//	docs://matching-rules  Wildcard and case folding rules
//	docs://pem-objects     Recognized PEM labels
//
// # MCP Prompts
//
//	hostname-verification  Guided hostname check
//	pem-triage             Identify the contents of a PEM bundle
//
// # Client Configuration
//
//	{
//	  "mcpServers": {
//	    "x509-name-verifier": {
//	      "command": "x509-cert-name-verifier",
//	      "env": {"TLS_NAME_VERIFIER_CONFIG": "/path/to/config.yaml"}
//	    }
//	  }
//	}
package main
