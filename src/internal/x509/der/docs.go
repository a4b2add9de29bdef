// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509der extracts the names a hostname check needs from a DER
// encoded X.509 certificate: the subject common name and the subject
// alternative name entries.
//
// It is not a general certificate parser. Signatures, validity periods and
// every other field are skipped after a structural check. All reads are
// bounds-checked with [cryptobyte], so hostile input fails with
// [ErrMalformedCertificate] instead of reading out of range.
//
// [cryptobyte]: https://pkg.go.dev/golang.org/x/crypto/cryptobyte
package x509der
