// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import (
	"io"
	"strings"
	"testing"
)

// embeddedFiles lists every template the server reads.
var embeddedFiles = []string{
	"instructions.md",
	"matching-rules.md",
	"pem-objects.md",
	"hostname-verification-prompt.md",
	"pem-triage-prompt.md",
}

func TestMagicEmbed_ReadFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{name: "read non-existent file", filename: "non-existent.md", wantErr: true},
		{name: "read file with invalid path", filename: "../invalid.md", wantErr: true},
	}
	for _, filename := range embeddedFiles {
		tests = append(tests, struct {
			name     string
			filename string
			wantErr  bool
		}{name: "read " + filename, filename: filename})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MagicEmbed.ReadFile(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("MagicEmbed.ReadFile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !strings.HasPrefix(string(data), "# ") {
				t.Errorf("MagicEmbed.ReadFile() %s does not start with a markdown title", tt.filename)
			}
		})
	}
}

func TestMagicEmbed_ReadDir(t *testing.T) {
	t.Run("read root directory", func(t *testing.T) {
		entries, err := MagicEmbed.ReadDir(".")
		if err != nil {
			t.Fatalf("MagicEmbed.ReadDir() error = %v", err)
		}

		found := make(map[string]bool)
		for _, entry := range entries {
			if entry.IsDir() {
				t.Errorf("Unexpected directory found: %s", entry.Name())
				continue
			}
			found[entry.Name()] = true
		}

		for _, filename := range embeddedFiles {
			if !found[filename] {
				t.Errorf("Expected file %s not found in directory listing", filename)
			}
		}
	})

	t.Run("read non-existent directory", func(t *testing.T) {
		if _, err := MagicEmbed.ReadDir("non-existent"); err == nil {
			t.Error("MagicEmbed.ReadDir() expected error for non-existent directory")
		}
	})
}

func TestMagicEmbed_Open(t *testing.T) {
	t.Run("open instructions template", func(t *testing.T) {
		file, err := MagicEmbed.Open("instructions.md")
		if err != nil {
			t.Fatalf("MagicEmbed.Open() error = %v", err)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			t.Fatalf("Failed to read from opened file: %v", err)
		}

		info, err := file.Stat()
		if err != nil {
			t.Fatalf("Failed to get file info: %v", err)
		}
		if info.IsDir() || info.Size() != int64(len(data)) {
			t.Errorf("file info = %v, read %d bytes", info, len(data))
		}
	})

	t.Run("open non-existent file", func(t *testing.T) {
		if _, err := MagicEmbed.Open("non-existent.md"); err == nil {
			t.Error("MagicEmbed.Open() expected error for non-existent file")
		}
	})
}

func TestMagicEmbed_InterfaceCompliance(t *testing.T) {
	var _ EmbedFS = MagicEmbed
	var _ EmbedFS = &embedFS{}
}

func TestMagicEmbed_PromptMarkers(t *testing.T) {
	for _, filename := range []string{"hostname-verification-prompt.md", "pem-triage-prompt.md"} {
		t.Run(filename, func(t *testing.T) {
			data, err := MagicEmbed.ReadFile(filename)
			if err != nil {
				t.Fatal(err)
			}
			content := string(data)
			for _, marker := range []string{"### User:", "### Assistant:"} {
				if !strings.Contains(content, marker) {
					t.Errorf("%s is missing role marker %q", filename, marker)
				}
			}
		})
	}
}
