// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Summary is the printable view of one certificate's names.
//
// Names are raw certificate bytes. When any of them is not valid UTF-8,
// Escaped is set and every name of the summary is rendered by [EscapeName].
type Summary struct {
	Index       int      `json:"index"`
	CommonName  *string  `json:"commonName"`
	DNSNames    []string `json:"dnsNames"`
	IPAddresses []string `json:"ipAddresses"`
	Escaped     bool     `json:"escaped,omitempty"`
}

// Summarize converts certs to their printable views, numbered from 1.
// Lists are empty rather than nil so JSON output always carries arrays.
func Summarize(certs []*Certificate) []Summary {
	out := make([]Summary, 0, len(certs))
	for i, cert := range certs {
		s := Summary{
			Index:       i + 1,
			DNSNames:    []string{},
			IPAddresses: []string{},
			Escaped:     !validNames(cert),
		}
		printable := func(b []byte) string {
			if s.Escaped {
				return EscapeName(b)
			}
			return string(b)
		}

		if cn := cert.CommonName(); cn != nil {
			name := printable(cn)
			s.CommonName = &name
		}
		for _, name := range cert.AltNames() {
			s.DNSNames = append(s.DNSNames, printable(name))
		}
		for _, ip := range cert.IPAddresses() {
			s.IPAddresses = append(s.IPAddresses, ip.String())
		}
		out = append(out, s)
	}
	return out
}

// validNames reports whether the common name and every DNS name of cert
// are valid UTF-8.
func validNames(cert *Certificate) bool {
	if !utf8.Valid(cert.CommonName()) {
		return false
	}
	for _, name := range cert.AltNames() {
		if !utf8.Valid(name) {
			return false
		}
	}
	return true
}

// EscapeName renders raw name bytes as valid UTF-8 without losing
// information: a backslash becomes "\\" and each byte that is not part of
// a valid UTF-8 sequence becomes "\xNN".
func EscapeName(b []byte) string {
	var sb strings.Builder
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		switch {
		case r == utf8.RuneError && size == 1:
			fmt.Fprintf(&sb, "\\x%02x", b[0])
		case r == '\\':
			sb.WriteString("\\\\")
		default:
			sb.Write(b[:size])
		}
		b = b[size:]
	}
	return sb.String()
}

// RenderTable renders the names of certs as a markdown table.
//
// Absent values are shown as "-".
func RenderTable(certs []*Certificate) (string, error) {
	if len(certs) == 0 {
		return "No certificates to display", nil
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"#", "Common Name", "DNS Names", "IP Addresses"})

	var rows [][]string
	for _, s := range Summarize(certs) {
		cn := "-"
		if s.CommonName != nil {
			cn = *s.CommonName
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.Index),
			cn,
			joinOrDash(s.DNSNames),
			joinOrDash(s.IPAddresses),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return "", fmt.Errorf("x509certs: render table: %w", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("x509certs: render table: %w", err)
	}
	return buf.String(), nil
}

// ToJSON returns the indented JSON array of the summaries of certs.
func ToJSON(certs []*Certificate) ([]byte, error) {
	return json.MarshalIndent(Summarize(certs), "", "  ")
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
