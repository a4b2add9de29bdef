// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"errors"
	"fmt"
	"net"

	x509der "github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/x509/der"
	x509pem "github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/x509/pem"
)

var (
	// ErrParseCertificate indicates a failure to extract names from the provided DER.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrNotCertificate indicates a PEM object of a kind other than certificate.
	ErrNotCertificate = errors.New("x509certs: object is not a certificate")

	// ErrNoCertificates indicates a container without certificate objects.
	ErrNoCertificates = errors.New("x509certs: no certificates in container")
)

// certBlockType is the armor label used when re-encoding.
const certBlockType = "CERTIFICATE"

// Certificate is a parsed view over one DER encoded [X.509] certificate,
// exposing the names used for hostname verification.
//
// The Certificate keeps a reference to the DER it was built from, and every
// name it returns aliases that buffer. The buffer must not be modified while
// the Certificate is in use.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Certificate struct {
	der   []byte
	names *x509der.Names
}

// New extracts the names of der and returns a view over it. Construction is
// atomic: on error no Certificate is returned.
func New(der []byte) (*Certificate, error) {
	names, err := x509der.Extract(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseCertificate, err)
	}
	return &Certificate{der: der, names: names}, nil
}

// FromObject builds a Certificate over the DER of a certificate object. The
// Certificate shares the object's buffer and stays valid after the owning
// container is released.
func FromObject(obj *x509pem.Object) (*Certificate, error) {
	if obj == nil || obj.Signature != x509pem.SigCertificate {
		return nil, ErrNotCertificate
	}
	return New(obj.DER)
}

// FromContainer builds a Certificate for every certificate object of c, in
// order. It fails without partial results if any of them is malformed.
func FromContainer(c *x509pem.Container) ([]*Certificate, error) {
	objs := c.Filter(x509pem.SigCertificate)
	if len(objs) == 0 {
		return nil, ErrNoCertificates
	}

	certs := make([]*Certificate, 0, len(objs))
	for i, obj := range objs {
		cert, err := FromObject(obj)
		if err != nil {
			return nil, fmt.Errorf("certificate %d: %w", i, err)
		}
		certs = append(certs, cert)
	}
	return certs, nil
}

// Expand builds a Certificate for every certificate object of c, replacing
// PKCS#7 objects with the certificates they carry.
func Expand(c *x509pem.Container) ([]*Certificate, error) {
	objs, err := x509pem.ExpandAll(c)
	if err != nil {
		return nil, err
	}
	if len(objs) == 0 {
		return nil, ErrNoCertificates
	}

	certs := make([]*Certificate, 0, len(objs))
	for i, obj := range objs {
		cert, err := FromObject(obj)
		if err != nil {
			return nil, fmt.Errorf("certificate %d: %w", i, err)
		}
		certs = append(certs, cert)
	}
	return certs, nil
}

// CommonName returns the raw subject common name, or nil when absent.
func (c *Certificate) CommonName() []byte {
	if c.names == nil {
		return nil
	}
	return c.names.CommonName
}

// AltNames returns the subjectAltName dNSName entries in certificate order.
func (c *Certificate) AltNames() [][]byte {
	if c.names == nil {
		return nil
	}
	return c.names.DNSNames
}

// IPAddresses returns the subjectAltName iPAddress entries in certificate order.
func (c *Certificate) IPAddresses() []net.IP {
	if c.names == nil {
		return nil
	}
	return c.names.IPAddresses
}

// Raw returns the DER the Certificate was built from.
func (c *Certificate) Raw() []byte { return c.der }

// Release drops the view. Afterwards every accessor returns nil and
// VerifyName returns false. Release is idempotent.
func (c *Certificate) Release() {
	c.der = nil
	c.names = nil
}

// EncodePEM encodes the certificate to PEM format.
func (c *Certificate) EncodePEM() []byte {
	if c.der == nil {
		return nil
	}
	return x509pem.Encode(certBlockType, c.der)
}
