// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	x509pem "github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/x509/pem"
	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/logger"
)

// EnvConfigFile names the environment variable consulted when no
// configuration path is given.
const EnvConfigFile = "TLS_NAME_VERIFIER_CONFIG"

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// ErrInvalidConfig indicates a configuration document rejected by the schema.
var ErrInvalidConfig = errors.New("config: invalid configuration")

//go:embed schema.json
var schema string

var schemaLoader = gojsonschema.NewStringLoader(schema)

// Schema returns the JSON Schema configuration documents are validated against.
func Schema() string { return schema }

// Format represents supported configuration file formats.
type Format int

const (
	// FormatJSON represents JSON configuration format (.json)
	FormatJSON Format = iota
	// FormatYAML represents YAML configuration format (.yaml, .yml)
	FormatYAML
)

// Config holds loader and logging settings.
type Config struct {
	// Filesystem enables path-based loading. Nil means enabled.
	Filesystem *bool `json:"filesystem,omitempty" yaml:"filesystem,omitempty"`
	// Types lists the object kinds to decode by name.
	Types []string `json:"types,omitempty" yaml:"types,omitempty"`
	// MaxFileSize is the largest file the loader will read, in bytes.
	MaxFileSize int64 `json:"maxFileSize,omitempty" yaml:"maxFileSize,omitempty"`
	// Log selects the log format and silences logging.
	Log Log `json:"log" yaml:"log"`
}

// Log configures the logger.
type Log struct {
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	Silent bool   `json:"silent,omitempty" yaml:"silent,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	enabled := true
	return &Config{
		Filesystem:  &enabled,
		Types:       []string{"certificate"},
		MaxFileSize: x509pem.DefaultMaxFileSize,
		Log:         Log{Format: LogFormatText},
	}
}

// DetectFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; anything but .yaml and .yml is JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads the configuration at path, or at $TLS_NAME_VERIFIER_CONFIG when
// path is empty. With neither set it returns [Default].
//
// Configuration priority:
//  1. Default values are set
//  2. The environment variable is checked if path is empty
//  3. File values override defaults
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates data against the configuration schema and applies it on
// top of [Default]. Empty documents yield the defaults.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var doc any
	if err := unmarshal(data, &doc, format); err != nil {
		return nil, err
	}
	if err := validate(doc); err != nil {
		return nil, err
	}
	if err := unmarshal(data, cfg, format); err != nil {
		return nil, err
	}
	return cfg, nil
}

// unmarshal decodes data with the parser for format.
func unmarshal(data []byte, v any, format Format) error {
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("config: failed to parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("config: failed to parse JSON: %w", err)
		}
	}
	return nil
}

// validate checks a decoded document against the embedded schema.
func validate(doc any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if result.Valid() {
		return nil
	}

	reasons := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		reasons = append(reasons, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(reasons, "; "))
}

// FilesystemEnabled reports whether path-based loading is allowed.
func (c *Config) FilesystemEnabled() bool {
	return c.Filesystem == nil || *c.Filesystem
}

// Signature returns the object kinds named by Types. An empty list selects
// certificates.
func (c *Config) Signature() (x509pem.Signature, error) {
	if len(c.Types) == 0 {
		return x509pem.SigCertificate, nil
	}
	return x509pem.ParseSignatures(c.Types)
}

// LoaderOptions returns the x509pem loader options for this configuration.
func (c *Config) LoaderOptions(log logger.Logger) []x509pem.Option {
	return []x509pem.Option{
		x509pem.WithFilesystem(c.FilesystemEnabled()),
		x509pem.WithMaxFileSize(c.MaxFileSize),
		x509pem.WithLogger(log),
	}
}

// NewLogger builds the configured logger writing to w.
func (c *Config) NewLogger(w io.Writer) logger.Logger {
	if c.Log.Format == LogFormatJSON {
		return logger.NewJSONLogger(w, c.Log.Silent)
	}

	l := logger.NewCLILogger()
	if c.Log.Silent {
		w = io.Discard
	}
	l.SetOutput(w)
	return l
}
