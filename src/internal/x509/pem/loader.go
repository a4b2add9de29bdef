// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pem

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/logger"
)

var (
	// ErrFilesystemDisabled indicates a path-based load on a loader built
	// without filesystem support.
	ErrFilesystemDisabled = errors.New("x509pem: filesystem support disabled")

	// ErrFileTooLarge indicates a file above the loader's size limit.
	ErrFileTooLarge = errors.New("x509pem: file too large")
)

// DefaultMaxFileSize is the default size limit for LoadFile.
const DefaultMaxFileSize int64 = 16 << 20

// Loader decodes PEM material from memory or, when enabled, from files.
// A Loader is immutable after construction and safe for concurrent use.
type Loader struct {
	filesystem  bool
	maxFileSize int64
	log         logger.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithFilesystem switches path-based loading on or off. It is on by default.
func WithFilesystem(enabled bool) Option {
	return func(l *Loader) { l.filesystem = enabled }
}

// WithLogger sets the logger used for decode diagnostics.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithMaxFileSize sets the size limit for LoadFile. Non-positive values
// keep the default.
func WithMaxFileSize(n int64) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxFileSize = n
		}
	}
}

// NewLoader creates a Loader with filesystem support enabled, a
// [DefaultMaxFileSize] limit and a discarding logger, then applies opts.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		filesystem:  true,
		maxFileSize: DefaultMaxFileSize,
		log:         logger.Discard,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FilesystemEnabled reports whether LoadFile may touch the filesystem.
func (l *Loader) FilesystemEnabled() bool { return l.filesystem }

// Load decodes the objects of kinds in want from text. See [Decode].
func (l *Loader) Load(text []byte, want Signature) (*Container, error) {
	c, err := decode(text, want, l.log)
	if err != nil {
		l.log.Printf("x509pem: load failed: %v", err)
		return nil, err
	}
	l.log.Printf("x509pem: decoded %d object(s) of %s", c.Len(), want)
	return c, nil
}

// LoadFile reads path and decodes the objects of kinds in want. It always
// fails with [ErrFilesystemDisabled] when filesystem support is off.
func (l *Loader) LoadFile(path string, want Signature) (*Container, error) {
	if !l.filesystem {
		return nil, ErrFilesystemDisabled
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("x509pem: open %s: %w", path, err)
	}
	defer f.Close()

	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(f, l.maxFileSize+1)); err != nil {
		return nil, fmt.Errorf("x509pem: read %s: %w", path, err)
	}
	if int64(buf.Len()) > l.maxFileSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrFileTooLarge, path, l.maxFileSize)
	}

	// Decode copies everything it keeps, so buf can go back to the pool.
	c, err := l.Load(buf.Bytes(), want)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
