// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pem

import (
	"errors"
	"fmt"

	cfsslpkcs7 "github.com/cloudflare/cfssl/crypto/pkcs7"
	"github.com/smallstep/pkcs7"
)

var (
	// ErrNotPKCS7 indicates an object that is not a PKCS#7 block.
	ErrNotPKCS7 = errors.New("x509pem: object is not PKCS7")

	// ErrParsePKCS7 indicates a failure to parse PKCS#7 data.
	ErrParsePKCS7 = errors.New("x509pem: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS#7 data.
	ErrNoCertificatesInPKCS = errors.New("x509pem: no certificates found in PKCS7 data")
)

// ExpandPKCS7 returns a container with one certificate object per
// certificate embedded in a PKCS#7 object, in order.
func ExpandPKCS7(obj *Object) (*Container, error) {
	if obj == nil || obj.Signature != SigPKCS7 {
		return nil, ErrNotPKCS7
	}

	ders, err := pkcs7Certificates(obj.DER)
	if err != nil {
		return nil, err
	}
	if len(ders) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	c := &Container{}
	for _, der := range ders {
		c.objects = append(c.objects, &Object{
			Signature: SigCertificate,
			Label:     "CERTIFICATE",
			DER:       append([]byte(nil), der...),
		})
	}
	return c, nil
}

// pkcs7Certificates returns the raw certificates of a SignedData message.
//
// Cloudflare's parser expects a CRL field between certificates and
// signerInfos, which certs-only bundles such as "openssl crl2pkcs7 -nocrl"
// omit; those fall back to smallstep's parser, which tags the optional fields.
func pkcs7Certificates(der []byte) ([][]byte, error) {
	if p, err := cfsslpkcs7.ParsePKCS7(der); err == nil {
		var out [][]byte
		for _, cert := range p.Content.SignedData.Certificates {
			out = append(out, cert.Raw)
		}
		return out, nil
	}

	p, err := pkcs7.Parse(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsePKCS7, err)
	}
	var out [][]byte
	for _, cert := range p.Certificates {
		out = append(out, cert.Raw)
	}
	return out, nil
}

// ExpandAll returns the certificate objects of c with every PKCS#7 object
// replaced by the certificates it carries. Other kinds are dropped.
func ExpandAll(c *Container) ([]*Object, error) {
	var out []*Object
	for _, obj := range c.Objects() {
		switch obj.Signature {
		case SigCertificate:
			out = append(out, obj)
		case SigPKCS7:
			expanded, err := ExpandPKCS7(obj)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded.objects...)
		}
	}
	return out, nil
}
