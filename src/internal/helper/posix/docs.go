// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX] style helpers for command-line programs.
//
// [ExecutableName] reduces an argv[0] value to the bare program name used in
// usage lines, accepting both slash and backslash separators so that Windows
// paths are handled on any host:
//
//	"/usr/local/bin/tls-cert-name-verifier"     → "tls-cert-name-verifier"
//	"C:\\bin\\tls-cert-name-verifier.exe"       → "tls-cert-name-verifier"
//	""                                          → fallback
//
// [CommandName] applies it to the running process.
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
