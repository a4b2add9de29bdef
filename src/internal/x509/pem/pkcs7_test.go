// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pem_test

import (
	"testing"

	cfsslpkcs7 "github.com/cloudflare/cfssl/crypto/pkcs7"
	"github.com/smallstep/pkcs7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509pem "github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/x509/pem"
)

func TestExpandPKCS7(t *testing.T) {
	bundle, err := x509pem.Decode(readFixture(t, "bundle.p7b.pem"), x509pem.SigPKCS7)
	require.NoError(t, err)
	require.Equal(t, 1, bundle.Len())
	assert.Equal(t, "PKCS7", bundle.Object(0).Label)

	serverDER := stdlibDER(t, readFixture(t, "server.pem"))[0]
	wildDER := stdlibDER(t, readFixture(t, "wild.pem"))[0]

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Certificates In Order",
			testFunc: func(t *testing.T) {
				c, err := x509pem.ExpandPKCS7(bundle.Object(0))
				require.NoError(t, err)
				require.Equal(t, 2, c.Len())

				for i, want := range [][]byte{serverDER, wildDER} {
					obj := c.Object(i)
					assert.Equal(t, x509pem.SigCertificate, obj.Signature)
					assert.Equal(t, "CERTIFICATE", obj.Label)
					assert.Equal(t, want, obj.DER)
				}
			},
		},
		{
			name: "Certs Only Bundle Without CRL Field",
			testFunc: func(t *testing.T) {
				der, err := pkcs7.DegenerateCertificate(append(append([]byte(nil), serverDER...), wildDER...))
				require.NoError(t, err)

				_, err = cfsslpkcs7.ParsePKCS7(der)
				require.Error(t, err, "cfssl reads signerInfos as the CRL field")

				c, err := x509pem.Decode(x509pem.Encode("PKCS7", der), x509pem.SigPKCS7)
				require.NoError(t, err)

				expanded, err := x509pem.ExpandPKCS7(c.Object(0))
				require.NoError(t, err)
				require.Equal(t, 2, expanded.Len())
				assert.Equal(t, serverDER, expanded.Object(0).DER)
				assert.Equal(t, wildDER, expanded.Object(1).DER)
			},
		},
		{
			name: "Not PKCS7",
			testFunc: func(t *testing.T) {
				c, err := x509pem.Decode(readFixture(t, "server.pem"), x509pem.SigCertificate)
				require.NoError(t, err)

				_, err = x509pem.ExpandPKCS7(c.Object(0))
				require.ErrorIs(t, err, x509pem.ErrNotPKCS7)

				_, err = x509pem.ExpandPKCS7(nil)
				require.ErrorIs(t, err, x509pem.ErrNotPKCS7)
			},
		},
		{
			name: "Garbage PKCS7",
			testFunc: func(t *testing.T) {
				c, err := x509pem.Decode([]byte("-----BEGIN PKCS7-----\nAAAA\n-----END PKCS7-----\n"), x509pem.SigPKCS7)
				require.NoError(t, err)

				_, err = x509pem.ExpandPKCS7(c.Object(0))
				require.ErrorIs(t, err, x509pem.ErrParsePKCS7)
			},
		},
		{
			name: "Expand All",
			testFunc: func(t *testing.T) {
				input := append(readFixture(t, "mixed.pem"), readFixture(t, "bundle.p7b.pem")...)
				c, err := x509pem.Decode(input, x509pem.SigAny)
				require.NoError(t, err)
				require.Equal(t, 3, c.Len())

				objs, err := x509pem.ExpandAll(c)
				require.NoError(t, err)
				require.Len(t, objs, 3, "one certificate plus two from the bundle")
				assert.Equal(t, serverDER, objs[1].DER)
				assert.Equal(t, wildDER, objs[2].DER)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}
