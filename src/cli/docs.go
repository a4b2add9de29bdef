// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the TLS certificate name verifier.
// It implements a Cobra-based CLI with subcommands to list PEM objects, inspect
// certificate names, verify a hostname against certificates and run the wildcard
// matcher on its own. Tables are rendered as markdown with tablewriter.
//
// Settings come from the config package; the --no-filesystem flag switches the
// PEM loader into its in-memory mode so that only standard input is accepted.
package cli
