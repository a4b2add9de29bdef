// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pem

import (
	"fmt"
	"strings"
)

// Signature is a bitmask of PEM object kinds. A decode request passes the
// union of the kinds it accepts.
type Signature uint32

const (
	// SigCertificate matches X.509 certificates.
	SigCertificate Signature = 1 << iota
	// SigCertificateRequest matches PKCS#10 certificate signing requests.
	SigCertificateRequest
	// SigPrivateKey matches PKCS#8 private keys, encrypted or not.
	SigPrivateKey
	// SigRSAPrivateKey matches PKCS#1 RSA private keys.
	SigRSAPrivateKey
	// SigECPrivateKey matches SEC 1 EC private keys.
	SigECPrivateKey
	// SigPublicKey matches SubjectPublicKeyInfo and PKCS#1 public keys.
	SigPublicKey
	// SigPKCS7 matches PKCS#7 / CMS structures.
	SigPKCS7
	// SigCRL matches certificate revocation lists.
	SigCRL

	// SigAny matches every recognized kind.
	SigAny = SigCertificate | SigCertificateRequest | SigPrivateKey |
		SigRSAPrivateKey | SigECPrivateKey | SigPublicKey | SigPKCS7 | SigCRL
)

// labelSignatures maps armor labels to kinds.
var labelSignatures = map[string]Signature{
	"CERTIFICATE":             SigCertificate,
	"X509 CERTIFICATE":        SigCertificate,
	"TRUSTED CERTIFICATE":     SigCertificate,
	"CERTIFICATE REQUEST":     SigCertificateRequest,
	"NEW CERTIFICATE REQUEST": SigCertificateRequest,
	"PRIVATE KEY":             SigPrivateKey,
	"ENCRYPTED PRIVATE KEY":   SigPrivateKey,
	"RSA PRIVATE KEY":         SigRSAPrivateKey,
	"EC PRIVATE KEY":          SigECPrivateKey,
	"PUBLIC KEY":              SigPublicKey,
	"RSA PUBLIC KEY":          SigPublicKey,
	"PKCS7":                   SigPKCS7,
	"CMS":                     SigPKCS7,
	"X509 CRL":                SigCRL,
}

// signatureNames lists kinds in bit order with their configuration names.
var signatureNames = []struct {
	sig  Signature
	name string
}{
	{SigCertificate, "certificate"},
	{SigCertificateRequest, "certificate-request"},
	{SigPrivateKey, "private-key"},
	{SigRSAPrivateKey, "rsa-private-key"},
	{SigECPrivateKey, "ec-private-key"},
	{SigPublicKey, "public-key"},
	{SigPKCS7, "pkcs7"},
	{SigCRL, "crl"},
}

// SignatureForLabel returns the kind for an armor label, or 0 when the
// label is not recognized.
func SignatureForLabel(label string) Signature { return labelSignatures[label] }

// String renders the set as configuration names joined with "|".
func (s Signature) String() string {
	if s == 0 {
		return "none"
	}

	var names []string
	for _, n := range signatureNames {
		if s&n.sig != 0 {
			names = append(names, n.name)
		}
	}
	if rest := s &^ SigAny; rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(names, "|")
}

// ParseSignatures converts configuration names into a set. The name "any"
// selects every kind. Names are case-insensitive.
func ParseSignatures(names []string) (Signature, error) {
	var set Signature
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "any" {
			set |= SigAny
			continue
		}

		found := false
		for _, n := range signatureNames {
			if n.name == name {
				set |= n.sig
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrUnknownType, raw)
		}
	}
	return set, nil
}
