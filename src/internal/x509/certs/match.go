// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import "bytes"

const wildcard = '*'

// MatchDomainName reports whether hostname is covered by pattern. Letters
// are compared case-insensitively over ASCII only.
//
// A pattern whose first label is exactly "*" matches any hostname that ends
// with the rest of the pattern (including its leading dot) and has at least
// one byte before it. The wildcard may span several labels, so "*.d"
// matches "a.bc.d". A lone "*" matches any non-empty hostname. Every other
// pattern must equal hostname; a "*" inside a larger label is literal.
func MatchDomainName(pattern, hostname []byte) bool {
	dot := bytes.IndexByte(pattern, '.')
	if dot < 0 {
		if len(pattern) == 1 && pattern[0] == wildcard {
			return len(hostname) > 0
		}
		return equalFoldASCII(pattern, hostname)
	}

	if dot != 1 || pattern[0] != wildcard {
		return equalFoldASCII(pattern, hostname)
	}

	// suffix keeps the dot: "*.b" needs hostname to end in ".b".
	suffix := pattern[dot:]
	if len(hostname) <= len(suffix) {
		return false
	}
	return equalFoldASCII(suffix, hostname[len(hostname)-len(suffix):])
}

// MatchDomainNameString is MatchDomainName for strings.
func MatchDomainNameString(pattern, hostname string) bool {
	return MatchDomainName([]byte(pattern), []byte(hostname))
}

func equalFoldASCII(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
