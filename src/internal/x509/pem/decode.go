// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pem

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/logger"
)

var (
	// ErrNoObjects indicates that the input holds no block of a requested kind.
	ErrNoObjects = errors.New("x509pem: no matching PEM objects")

	// ErrUnterminatedBlock indicates a BEGIN line without a matching END line.
	ErrUnterminatedBlock = errors.New("x509pem: unterminated PEM block")

	// ErrMismatchedEnd indicates an END line whose label differs from the open block.
	ErrMismatchedEnd = errors.New("x509pem: mismatched END line")

	// ErrInvalidBase64 indicates a body that is not valid base64.
	ErrInvalidBase64 = errors.New("x509pem: invalid base64 in PEM body")

	// ErrEmptyBlock indicates a block with no body.
	ErrEmptyBlock = errors.New("x509pem: empty PEM block")

	// ErrUnknownType indicates an unrecognized object kind name.
	ErrUnknownType = errors.New("x509pem: unknown object type")
)

var (
	beginPrefix = []byte("-----BEGIN ")
	endPrefix   = []byte("-----END ")
	dashes      = []byte("-----")
)

// Decode extracts every block whose kind is in want from text, in order of
// appearance. Blocks of other kinds are skipped. The returned objects own
// their bytes; text is not retained.
//
// Decode fails with [ErrNoObjects] when nothing matches, and with
// [ErrUnterminatedBlock], [ErrMismatchedEnd], [ErrInvalidBase64] or
// [ErrEmptyBlock] on malformed armor. No container is returned on failure.
func Decode(text []byte, want Signature) (*Container, error) {
	return decode(text, want, logger.Discard)
}

func decode(text []byte, want Signature, log logger.Logger) (*Container, error) {
	s := &lineScanner{rest: text}
	c := &Container{}

	for {
		line, ok := s.next()
		if !ok {
			break
		}

		label, ok := markerLabel(line, beginPrefix)
		if !ok {
			continue
		}

		sig := SignatureForLabel(label)
		if sig&want == 0 {
			log.Printf("x509pem: skipping %s block at line %d", label, s.line)
			if err := s.skip(label); err != nil {
				return nil, err
			}
			continue
		}

		obj, err := s.block(label, sig)
		if err != nil {
			return nil, err
		}
		c.objects = append(c.objects, obj)
	}

	if len(c.objects) == 0 {
		return nil, fmt.Errorf("%w: want %s", ErrNoObjects, want)
	}
	return c, nil
}

// lineScanner walks text one line at a time. Lines may be arbitrarily long;
// they are sub-slices of the input, never copies.
type lineScanner struct {
	rest []byte
	line int
}

// next returns the following line with surrounding whitespace and CR removed.
func (s *lineScanner) next() ([]byte, bool) {
	if len(s.rest) == 0 {
		return nil, false
	}

	var line []byte
	if i := bytes.IndexByte(s.rest, '\n'); i >= 0 {
		line, s.rest = s.rest[:i], s.rest[i+1:]
	} else {
		line, s.rest = s.rest, nil
	}
	s.line++

	return bytes.TrimSpace(line), true
}

// skip consumes lines up to and including the END line for label.
func (s *lineScanner) skip(label string) error {
	start := s.line
	for {
		line, ok := s.next()
		if !ok {
			return fmt.Errorf("%w: %s block opened at line %d", ErrUnterminatedBlock, label, start)
		}
		if end, ok := markerLabel(line, endPrefix); ok && end == label {
			return nil
		}
	}
}

// block reads the body of an open block up to its END line and decodes it.
func (s *lineScanner) block(label string, sig Signature) (*Object, error) {
	start := s.line

	body := gc.Default.Get()
	defer gc.Default.Put(body)

	var headers map[string]string
	inHeaders := true

	for {
		line, ok := s.next()
		if !ok {
			return nil, fmt.Errorf("%w: %s block opened at line %d", ErrUnterminatedBlock, label, start)
		}

		if end, ok := markerLabel(line, endPrefix); ok {
			if end != label {
				return nil, fmt.Errorf("%w: %s block closed by END %s at line %d", ErrMismatchedEnd, label, end, s.line)
			}
			break
		}

		if inHeaders {
			if key, value, ok := headerLine(line); ok {
				if headers == nil {
					headers = make(map[string]string)
				}
				headers[key] = value
				continue
			}
			if len(line) == 0 {
				continue
			}
			inHeaders = false
		}

		for _, c := range line {
			if isSpace(c) {
				continue
			}
			if !isBase64(c) {
				return nil, fmt.Errorf("%w: byte 0x%02x at line %d", ErrInvalidBase64, c, s.line)
			}
			body.WriteByte(c)
		}
	}

	if body.Len() == 0 {
		return nil, fmt.Errorf("%w: %s block at line %d", ErrEmptyBlock, label, start)
	}

	der, err := decodeBase64(body.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %s block at line %d: %v", ErrInvalidBase64, label, start, err)
	}

	return &Object{
		Signature: sig,
		Label:     label,
		Headers:   headers,
		DER:       der,
	}, nil
}

// markerLabel returns the label of a "-----BEGIN <label>-----" or
// "-----END <label>-----" line, depending on prefix.
func markerLabel(line, prefix []byte) (string, bool) {
	if len(line) <= len(prefix)+len(dashes) {
		return "", false
	}
	if !bytes.HasPrefix(line, prefix) || !bytes.HasSuffix(line, dashes) {
		return "", false
	}
	label := bytes.TrimSpace(line[len(prefix) : len(line)-len(dashes)])
	if len(label) == 0 {
		return "", false
	}
	return string(label), true
}

// headerLine splits an RFC 1421 "Key: value" header line.
func headerLine(line []byte) (string, string, bool) {
	key, value, ok := bytes.Cut(line, []byte(":"))
	if !ok {
		return "", "", false
	}
	key = bytes.TrimSpace(key)
	if len(key) == 0 {
		return "", "", false
	}
	return string(key), string(bytes.TrimSpace(value)), true
}

// decodeBase64 decodes standard-alphabet base64 with optional padding into a
// freshly allocated slice.
func decodeBase64(src []byte) ([]byte, error) {
	enc := base64.RawStdEncoding
	if len(src)%4 == 0 {
		enc = base64.StdEncoding
	}

	dst := make([]byte, enc.DecodedLen(len(src)))
	n, err := enc.Decode(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

func isBase64(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '+', c == '/', c == '=':
		return true
	}
	return false
}
