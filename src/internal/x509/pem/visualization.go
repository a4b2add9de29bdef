// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pem

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderTable renders the objects of c as a markdown table of their kind,
// armor label, header count and DER length.
//
// Thread Safety: Safe for concurrent use as long as c is not released.
func (c *Container) RenderTable() (string, error) {
	if c.Len() == 0 {
		return "No objects to display", nil
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"#", "Type", "Label", "Headers", "DER Bytes"})

	var rows [][]string
	for i, obj := range c.objects {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			obj.Signature.String(),
			obj.Label,
			fmt.Sprintf("%d", len(obj.Headers)),
			fmt.Sprintf("%d", len(obj.DER)),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return "", fmt.Errorf("x509pem: render table: %w", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("x509pem: render table: %w", err)
	}
	return buf.String(), nil
}
