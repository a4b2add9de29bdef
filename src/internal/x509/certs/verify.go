// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

// VerifyName reports whether hostname matches the subject common name or
// any subjectAltName dNSName of the certificate. Both sources are always
// consulted. An empty hostname never matches.
func (c *Certificate) VerifyName(hostname []byte) bool {
	if len(hostname) == 0 || c.names == nil {
		return false
	}

	if cn := c.names.CommonName; cn != nil && MatchDomainName(cn, hostname) {
		return true
	}
	for _, name := range c.names.DNSNames {
		if MatchDomainName(name, hostname) {
			return true
		}
	}
	return false
}

// VerifyNameString is VerifyName for a string hostname.
func (c *Certificate) VerifyNameString(hostname string) bool {
	return c.VerifyName([]byte(hostname))
}

// MatchingNames returns every name of the certificate that matches
// hostname, common name first, then subjectAltName entries in order.
func (c *Certificate) MatchingNames(hostname []byte) [][]byte {
	if len(hostname) == 0 || c.names == nil {
		return nil
	}

	var matched [][]byte
	if cn := c.names.CommonName; cn != nil && MatchDomainName(cn, hostname) {
		matched = append(matched, cn)
	}
	for _, name := range c.names.DNSNames {
		if MatchDomainName(name, hostname) {
			matched = append(matched, name)
		}
	}
	return matched
}
