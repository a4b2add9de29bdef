// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/tls-cert-name-verifier/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for formatted output and destination switching.
//
// The PEM loader, the CLI and the [MCP] server all log through this interface,
// so the same decode path can print human-readable lines or structured JSON.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger writing to stderr with timestamps disabled.
// Stdout is left to command results so output can be piped.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.logger.SetOutput(w)
}

// JSONLogger implements Logger with one JSON object per line.
// It suppresses output in silent mode, which is the default for the [MCP]
// server since protocol traffic owns stdio there.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type JSONLogger struct {
	mu        sync.Mutex
	writer    io.Writer
	silent    bool
	component string
}

// entry is the wire shape of a JSONLogger line.
type entry struct {
	Level     string `json:"level"`
	Component string `json:"component,omitempty"`
	Message   string `json:"message"`
}

// NewJSONLogger creates a new JSON logger.
// A nil writer discards everything.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
	}
}

// WithComponent returns a logger sharing the destination and silent flag of j
// that tags every entry with component.
func (j *JSONLogger) WithComponent(component string) *JSONLogger {
	j.mu.Lock()
	defer j.mu.Unlock()

	return &JSONLogger{
		writer:    j.writer,
		silent:    j.silent,
		component: component,
	}
}

// Printf formats and logs a structured message.
//
// Printf is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprintf(format, v...))
}

// Println logs a structured message built with fmt.Sprint semantics.
//
// Println is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprint(v...))
}

func (j *JSONLogger) write(msg string) {
	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	// Encoding a struct of strings cannot fail.
	_ = json.NewEncoder(buf).Encode(entry{
		Level:     "info",
		Component: j.component,
		Message:   msg,
	})

	j.mu.Lock()
	j.writer.Write(buf.Bytes())
	j.mu.Unlock()
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}

// Discard is a Logger that drops everything. It is the default for
// library callers that do not inject a logger.
var Discard Logger = NewJSONLogger(io.Discard, true)
