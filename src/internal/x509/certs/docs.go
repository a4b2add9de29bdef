// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides hostname verification over [X.509] certificates.
//
// A [Certificate] is built eagerly from DER, either directly with [New] or
// from objects decoded by the x509pem package, and exposes the subject
// common name and the subjectAltName entries. [Certificate.VerifyName]
// checks a hostname against the common name and every DNS name with
// [MatchDomainName].
//
// Matching is looser than RFC 6125: the common name is
// consulted even when DNS names are present, and a leading "*" label may
// absorb more than one hostname label.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509certs
