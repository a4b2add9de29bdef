// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der

import (
	"bytes"
	"errors"
	"fmt"
	"net"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

var (
	// ErrMalformedCertificate indicates DER that does not have the shape of
	// an X.509 certificate. The wrapped message names the failing section.
	ErrMalformedCertificate = errors.New("x509der: malformed certificate")

	// ErrDuplicateExtension indicates a certificate carrying more than one
	// subjectAltName extension.
	ErrDuplicateExtension = errors.New("x509der: duplicate subjectAltName extension")
)

var (
	// Encoded OID contents for id-at-commonName and id-ce-subjectAltName.
	oidCommonName     = []byte{0x55, 0x04, 0x03}
	oidSubjectAltName = []byte{0x55, 0x1d, 0x11}
)

var (
	tagVersion         = asn1.Tag(0).Constructed().ContextSpecific()
	tagIssuerUniqueID  = asn1.Tag(1).ContextSpecific()
	tagSubjectUniqueID = asn1.Tag(2).ContextSpecific()
	tagExtensions      = asn1.Tag(3).Constructed().ContextSpecific()
	tagDNSName         = asn1.Tag(2).ContextSpecific()
	tagIPAddress       = asn1.Tag(7).ContextSpecific()
)

// Names holds the name fields of one certificate. Every slice aliases the
// DER passed to [Extract] and stays valid only as long as that buffer does.
type Names struct {
	// CommonName is the raw value of the last CN attribute of the subject,
	// or nil when the subject has none.
	CommonName []byte
	// DNSNames are the subjectAltName dNSName entries in certificate order.
	DNSNames [][]byte
	// IPAddresses are the subjectAltName iPAddress entries in certificate order.
	IPAddresses []net.IP
}

func malformed(section string) error {
	return fmt.Errorf("%w: %s", ErrMalformedCertificate, section)
}

// Extract walks der and returns its name fields. It performs no signature,
// issuer or validity checks. A certificate without a subjectAltName
// extension yields empty lists, not an error.
func Extract(der []byte) (*Names, error) {
	input := cryptobyte.String(der)

	//	Certificate  ::=  SEQUENCE  {
	//	  tbsCertificate     TBSCertificate,
	//	  signatureAlgorithm AlgorithmIdentifier,
	//	  signatureValue     BIT STRING  }
	var certificate, tbs cryptobyte.String
	if !input.ReadASN1(&certificate, asn1.SEQUENCE) || !input.Empty() {
		return nil, malformed("certificate")
	}
	if !certificate.ReadASN1(&tbs, asn1.SEQUENCE) {
		return nil, malformed("tbsCertificate")
	}
	if !certificate.SkipASN1(asn1.SEQUENCE) {
		return nil, malformed("signatureAlgorithm")
	}
	if !certificate.SkipASN1(asn1.BIT_STRING) || !certificate.Empty() {
		return nil, malformed("signatureValue")
	}

	names := &Names{}
	if err := names.readTBS(&tbs); err != nil {
		return nil, err
	}
	return names, nil
}

func (n *Names) readTBS(tbs *cryptobyte.String) error {
	if !tbs.SkipOptionalASN1(tagVersion) {
		return malformed("version")
	}
	if !tbs.SkipASN1(asn1.INTEGER) {
		return malformed("serialNumber")
	}
	if !tbs.SkipASN1(asn1.SEQUENCE) {
		return malformed("signature")
	}
	if !tbs.SkipASN1(asn1.SEQUENCE) {
		return malformed("issuer")
	}
	if !tbs.SkipASN1(asn1.SEQUENCE) {
		return malformed("validity")
	}

	var subject cryptobyte.String
	if !tbs.ReadASN1(&subject, asn1.SEQUENCE) {
		return malformed("subject")
	}
	if err := n.readSubject(&subject); err != nil {
		return err
	}

	if !tbs.SkipASN1(asn1.SEQUENCE) {
		return malformed("subjectPublicKeyInfo")
	}
	if !tbs.SkipOptionalASN1(tagIssuerUniqueID) || !tbs.SkipOptionalASN1(tagSubjectUniqueID) {
		return malformed("uniqueIdentifier")
	}

	var (
		wrapped cryptobyte.String
		present bool
	)
	if !tbs.ReadOptionalASN1(&wrapped, &present, tagExtensions) {
		return malformed("extensions")
	}
	if present {
		var extensions cryptobyte.String
		if !wrapped.ReadASN1(&extensions, asn1.SEQUENCE) || !wrapped.Empty() {
			return malformed("extensions")
		}
		if err := n.readExtensions(&extensions); err != nil {
			return err
		}
	}

	if !tbs.Empty() {
		return malformed("tbsCertificate")
	}
	return nil
}

// readSubject scans an RDNSequence for commonName attributes. The last one wins.
func (n *Names) readSubject(rdns *cryptobyte.String) error {
	for !rdns.Empty() {
		var set cryptobyte.String
		if !rdns.ReadASN1(&set, asn1.SET) {
			return malformed("subject")
		}

		for !set.Empty() {
			var (
				atv, oid, value cryptobyte.String
				tag             asn1.Tag
			)
			if !set.ReadASN1(&atv, asn1.SEQUENCE) ||
				!atv.ReadASN1(&oid, asn1.OBJECT_IDENTIFIER) ||
				!atv.ReadAnyASN1(&value, &tag) ||
				!atv.Empty() {
				return malformed("subject")
			}
			if bytes.Equal(oid, oidCommonName) {
				n.CommonName = value
			}
		}
	}
	return nil
}

func (n *Names) readExtensions(extensions *cryptobyte.String) error {
	seenSAN := false

	for !extensions.Empty() {
		var extension, oid, value cryptobyte.String
		if !extensions.ReadASN1(&extension, asn1.SEQUENCE) ||
			!extension.ReadASN1(&oid, asn1.OBJECT_IDENTIFIER) {
			return malformed("extensions")
		}
		if extension.PeekASN1Tag(asn1.BOOLEAN) {
			var critical bool
			if !extension.ReadASN1Boolean(&critical) {
				return malformed("extensions")
			}
		}
		if !extension.ReadASN1(&value, asn1.OCTET_STRING) || !extension.Empty() {
			return malformed("extensions")
		}

		if !bytes.Equal(oid, oidSubjectAltName) {
			continue
		}
		if seenSAN {
			return ErrDuplicateExtension
		}
		seenSAN = true

		if err := n.readSubjectAltName(&value); err != nil {
			return err
		}
	}
	return nil
}

func (n *Names) readSubjectAltName(value *cryptobyte.String) error {
	var generalNames cryptobyte.String
	if !value.ReadASN1(&generalNames, asn1.SEQUENCE) {
		return malformed("subjectAltName")
	}
	// Some issuers append a single zero byte after the sequence.
	if !value.Empty() && !bytes.Equal(*value, []byte{0}) {
		return malformed("subjectAltName")
	}

	for !generalNames.Empty() {
		var (
			name cryptobyte.String
			tag  asn1.Tag
		)
		if !generalNames.ReadAnyASN1(&name, &tag) {
			return malformed("subjectAltName")
		}

		switch tag {
		case tagDNSName:
			n.DNSNames = append(n.DNSNames, name)
		case tagIPAddress:
			if len(name) == net.IPv4len || len(name) == net.IPv6len {
				n.IPAddresses = append(n.IPAddresses, net.IP(name))
			}
		}
	}
	return nil
}
