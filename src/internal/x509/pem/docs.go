// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509pem decodes [PEM] armored text into typed binary objects.
//
// The decoder is line oriented and tolerant: leading noise, blank lines,
// over-long lines, trailing whitespace and CRLF line endings are accepted.
// Blocks whose label is not in the requested [Signature] set are skipped.
// A request that matches nothing fails with [ErrNoObjects], so a caller
// never receives an empty [Container].
//
// A [Loader] wraps the decoder with configuration: logging, and a
// filesystem switch that makes path-based loads fail deterministically
// when disabled.
//
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509pem
