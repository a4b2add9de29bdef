// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// tls-cert-name-verifier is a command-line tool for decoding PEM data and
// checking hostnames against the names carried by X.509 certificates.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/tls-cert-name-verifier/cmd/tls-cert-name-verifier@latest
//
// # Usage
//
//	tls-cert-name-verifier [GLOBAL FLAGS] COMMAND [ARGS]
//
// # Commands
//
//	pem FILE              List the PEM objects in FILE
//	inspect FILE          Show the names of every certificate in FILE
//	verify FILE HOSTNAME  Check HOSTNAME against the certificates in FILE
//	match PATTERN HOST    Match HOST against a single name pattern
//
// FILE may be "-" to read standard input.
//
// # Global Flags
//
//	-c, --config         Configuration file (JSON or YAML)
//	    --no-filesystem  Refuse to read files; only standard input is accepted
//	-q, --quiet          Silence log output
//	-v, --verbose        Log skipped PEM blocks and decode results
//
// # Environment Variables
//
//	TLS_NAME_VERIFIER_CONFIG  Path to configuration file (alternative to --config)
//
// # Examples
//
// Check a hostname against a server certificate:
//
//	tls-cert-name-verifier verify server.pem www.example.com
//
// List every object in a bundle, including keys:
//
//	tls-cert-name-verifier pem bundle.pem --types any
//
// Inspect certificates piped from OpenSSL:
//
//	openssl s_client -connect example.com:443 -showcerts </dev/null \
//	  | tls-cert-name-verifier inspect - --json
//
// The verify command exits with status 0 on a match and 1 otherwise.
package main
