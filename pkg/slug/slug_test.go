// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-cms/inkwell/pkg/slug"
)

/*
TestFrom verifies slug generation across accents, punctuation, and spacing.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "Getting Started with Inkwell", "getting-started-with-inkwell"},
		{"accented_characters", "Café Crème Brûlée", "cafe-creme-brulee"},
		{"punctuation", "Hello, World! (Part 2)", "hello-world-part-2"},
		{"multiple_spaces", "too    many   spaces", "too-many-spaces"},
		{"leading_trailing_junk", "  --Trimmed--  ", "trimmed"},
		{"already_a_slug", "already-a-slug", "already-a-slug"},
		{"empty_string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
