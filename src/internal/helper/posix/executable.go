// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// ExecutableName returns the last path element of arg0 without a trailing
// ".exe". Both '/' and '\' separate elements. It returns fallback when
// nothing is left.
func ExecutableName(arg0, fallback string) string {
	name := arg0
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".exe")
	if name == "" {
		return fallback
	}
	return name
}

// CommandName returns the name the current process was invoked as, or
// fallback when os.Args is empty.
func CommandName(fallback string) string {
	if len(os.Args) == 0 {
		return fallback
	}
	return ExecutableName(os.Args[0], fallback)
}
