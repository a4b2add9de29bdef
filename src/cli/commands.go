// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	x509certs "github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/x509/certs"
	x509pem "github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/x509/pem"
)

func newPEMCommand(a *app) *cobra.Command {
	var (
		types []string
		armor bool
	)

	cmd := &cobra.Command{
		Use:   "pem FILE",
		Short: "List the PEM objects in FILE",
		Long: `List the PEM objects in FILE as a markdown table. Object kinds come from
--types, or from the configuration when the flag is absent. Use "-" to read
standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			want, err := a.cfg.Signature()
			if cmd.Flags().Changed("types") {
				want, err = x509pem.ParseSignatures(types)
			}
			if err != nil {
				return err
			}

			c, err := a.load(cmd, args[0], want)
			if err != nil {
				return err
			}
			defer c.Release()

			if armor {
				_, err = cmd.OutOrStdout().Write(c.Encode())
				return err
			}

			a.log.Printf("Decoded %d object(s) from %s", c.Len(), args[0])
			table, err := c.RenderTable()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), table)
			return err
		},
	}

	cmd.Flags().StringSliceVarP(&types, "types", "t", nil, "object kinds to decode (certificate, pkcs7, private-key, ..., any)")
	cmd.Flags().BoolVarP(&armor, "armor", "a", false, "re-armor the decoded objects instead of listing them")
	return cmd
}

func newInspectCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show the names of every certificate in FILE",
		Long: `Show the subject common name, DNS names and IP addresses of every
certificate in FILE. PKCS#7 bundles are expanded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			certs, err := a.certificates(cmd, args[0])
			if err != nil {
				return err
			}

			if asJSON {
				out, err := x509certs.ToJSON(certs)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return err
			}
			table, err := x509certs.RenderTable(certs)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), table)
			return err
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "emit JSON instead of a table")
	return cmd
}

func newVerifyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE HOSTNAME",
		Short: "Check HOSTNAME against the certificates in FILE",
		Long: `Check HOSTNAME against the common name and DNS names of every certificate
in FILE. Exits with status 0 when at least one certificate matches.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			certs, err := a.certificates(cmd, args[0])
			if err != nil {
				return err
			}

			hostname := []byte(args[1])
			matched := false
			for i, cert := range certs {
				for _, name := range cert.MatchingNames(hostname) {
					matched = true
					fmt.Fprintf(cmd.OutOrStdout(), "certificate %d: %s matches %s\n", i+1, name, args[1])
				}
			}

			if !matched {
				return fmt.Errorf("%w: %s", ErrNoMatch, args[1])
			}
			a.log.Printf("Hostname %s verified against %s", args[1], args[0])
			return nil
		},
	}
}

func newMatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "match PATTERN HOSTNAME",
		Short: "Match HOSTNAME against a certificate name PATTERN",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), x509certs.MatchDomainNameString(args[0], args[1]))
			return err
		},
	}
}

// certificates loads every certificate of path, expanding PKCS#7 objects.
func (a *app) certificates(cmd *cobra.Command, path string) ([]*x509certs.Certificate, error) {
	c, err := a.load(cmd, path, x509pem.SigCertificate|x509pem.SigPKCS7)
	if err != nil {
		return nil, err
	}

	certs, err := x509certs.Expand(c)
	if errors.Is(err, x509certs.ErrNoCertificates) {
		return nil, ErrNoCertificates
	}
	return certs, err
}
