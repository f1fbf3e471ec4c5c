// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-cms/inkwell/internal/platform/config"
)

/*
TestConfig_AllowedOrigins verifies the EXTRA_ORIGINS parsing: comma-separated,
whitespace-tolerant, empty entries dropped.
*/
func TestConfig_AllowedOrigins(t *testing.T) {
	tests := []struct {
		name  string
		extra string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "https://studio.example.com", []string{"https://studio.example.com"}},
		{"multiple_with_spaces", "https://a.example.com, https://b.example.com", []string{"https://a.example.com", "https://b.example.com"}},
		{"trailing_comma", "https://a.example.com,", []string{"https://a.example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{ExtraOrigins: tt.extra}
			assert.Equal(t, tt.want, cfg.AllowedOrigins())
		})
	}
}
