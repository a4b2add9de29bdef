// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/config"
	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/helper/posix"
	x509pem "github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/x509/pem"
	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/logger"
)

var (
	// ErrNoMatch indicates that no certificate covers the requested hostname.
	ErrNoMatch = errors.New("cli: no certificate matches hostname")

	// ErrNoCertificates indicates input without any certificate or PKCS#7 object.
	ErrNoCertificates = errors.New("cli: no certificates in input")
)

// commandName is the program name used when argv[0] is unavailable.
const commandName = "tls-cert-name-verifier"

// stdinPath selects standard input instead of a file.
const stdinPath = "-"

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath   string
	noFilesystem bool
	quiet        bool
	verbose      bool
}

// app is the per-invocation state built from flags and configuration.
type app struct {
	cfg    *config.Config
	log    logger.Logger
	loader *x509pem.Loader
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewCommand(version, log).ExecuteContext(ctx)
}

// NewCommand builds the root command. log receives diagnostics when the
// configured log format is text.
func NewCommand(version string, log logger.Logger) *cobra.Command {
	opts := &options{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   posix.CommandName(commandName),
		Short: "Decode PEM material and verify certificate hostnames",
		Long: `tls-cert-name-verifier decodes PEM armored objects, extracts the subject
common name and subjectAltName entries of certificates, and checks
hostnames against them with wildcard matching.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, opts, log)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "configuration file (JSON or YAML); defaults to $"+config.EnvConfigFile)
	flags.BoolVar(&opts.noFilesystem, "no-filesystem", false, "refuse to load files from disk; only \"-\" (stdin) is accepted")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress diagnostics")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log decoder diagnostics")

	rootCmd.AddCommand(
		newPEMCommand(a),
		newInspectCommand(a),
		newVerifyCommand(a),
		newMatchCommand(),
	)

	return rootCmd
}

// setup loads configuration and applies flag overrides.
func (a *app) setup(cmd *cobra.Command, opts *options, log logger.Logger) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.noFilesystem {
		disabled := false
		cfg.Filesystem = &disabled
	}
	if opts.quiet {
		cfg.Log.Silent = true
	}

	switch {
	case cfg.Log.Silent:
		a.log = logger.Discard
	case cfg.Log.Format == config.LogFormatJSON || log == nil:
		a.log = cfg.NewLogger(cmd.ErrOrStderr())
	default:
		a.log = log
	}

	loaderLog := logger.Discard
	if opts.verbose {
		loaderLog = a.log
	}

	a.cfg = cfg
	a.loader = x509pem.NewLoader(cfg.LoaderOptions(loaderLog)...)
	return nil
}

// load decodes objects of kinds want from path, or from stdin for "-".
func (a *app) load(cmd *cobra.Command, path string, want x509pem.Signature) (*x509pem.Container, error) {
	if path != stdinPath {
		return a.loader.LoadFile(path, want)
	}

	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(cmd.InOrStdin(), a.cfg.MaxFileSize+1)); err != nil {
		return nil, fmt.Errorf("cli: read stdin: %w", err)
	}
	if int64(buf.Len()) > a.cfg.MaxFileSize {
		return nil, fmt.Errorf("%w: stdin exceeds %d bytes", x509pem.ErrFileTooLarge, a.cfg.MaxFileSize)
	}
	return a.loader.Load(buf.Bytes(), want)
}
