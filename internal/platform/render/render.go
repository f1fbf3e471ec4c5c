// Copyright (c) 2026 Inkwell CMS. All rights reserved.

// Package render converts authored Markdown into sanitized HTML for API responses.
//
// # Pipeline
//
// Post bodies are stored as Markdown and rendered on the way out:
// goldmark produces the HTML, bluemonday strips anything a malicious author
// could smuggle in (scripts, event handlers, dangerous URLs). Comment content
// is plain user-generated text and only passes through the sanitizer.
package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	// markdown is the shared converter. GFM covers tables, strikethrough,
	// and autolinks used throughout existing post content.
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	// policy allows the usual user-generated-content subset (formatting,
	// links, images) and nothing executable.
	policy = bluemonday.UGCPolicy()
)

// Markdown renders a Markdown source into sanitized HTML.
func Markdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render: markdown conversion failed: %w", err)
	}
	return policy.Sanitize(buf.String()), nil
}

// SanitizeUGC strips unsafe markup from user-generated content such as
// comment bodies. The input is treated as HTML fragments, not Markdown.
func SanitizeUGC(content string) string {
	return policy.Sanitize(content)
}
