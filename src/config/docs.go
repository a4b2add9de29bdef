// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the settings shared by the CLI and the MCP server.
//
// A configuration file is JSON or YAML, chosen by extension, and is
// validated against an embedded [JSON Schema] before it is applied on top
// of [Default]. The file path comes from the caller or, when empty, from
// the TLS_NAME_VERIFIER_CONFIG environment variable.
//
// Example YAML:
//
//	filesystem: false
//	types: [certificate, pkcs7]
//	maxFileSize: 1048576
//	log:
//	  format: json
//	  silent: false
//
// [JSON Schema]: https://json-schema.org
package config
