// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-cms/inkwell/internal/platform/middleware"
)

// stubConfig satisfies middleware.AppConfig for CORS tests.
type stubConfig struct {
	development  bool
	extraOrigins []string
}

func (s stubConfig) IsDevelopment() bool      { return s.development }
func (s stubConfig) AllowedOrigins() []string { return s.extraOrigins }

func corsResponse(t *testing.T, cfg stubConfig, origin string) *httptest.ResponseRecorder {
	t.Helper()

	next := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest("GET", "/api/v1/posts", nil)
	if origin != "" {
		request.Header.Set("Origin", origin)
	}

	recorder := httptest.NewRecorder()
	middleware.CORS(cfg)(next).ServeHTTP(recorder, request)
	return recorder
}

/*
TestCORS_AllowList verifies the origin policy: open in development, and in
production the first-party domain plus the configured extra origins only.
*/
func TestCORS_AllowList(t *testing.T) {
	production := stubConfig{extraOrigins: []string{"https://studio.example.com"}}

	tests := []struct {
		name    string
		cfg     stubConfig
		origin  string
		allowed bool
	}{
		{"dev_any_origin", stubConfig{development: true}, "http://localhost:3000", true},
		{"prod_first_party", production, "https://www.inkwell.blog", true},
		{"prod_extra_origin", production, "https://studio.example.com", true},
		{"prod_unknown_origin", production, "https://evil.example.com", false},
		{"prod_no_extra_config", stubConfig{}, "https://studio.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := corsResponse(t, tt.cfg, tt.origin)

			allowHeader := recorder.Header().Get("Access-Control-Allow-Origin")
			if tt.allowed {
				assert.Equal(t, tt.origin, allowHeader)
			} else {
				assert.Empty(t, allowHeader)
			}
		})
	}
}

/*
TestCORS_Preflight verifies that OPTIONS requests short-circuit with 204 and
never reach the wrapped handler.
*/
func TestCORS_Preflight(t *testing.T) {
	next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("preflight request must not reach the handler")
	})

	request := httptest.NewRequest(http.MethodOptions, "/api/v1/posts", nil)
	request.Header.Set("Origin", "https://www.inkwell.blog")

	recorder := httptest.NewRecorder()
	middleware.CORS(stubConfig{})(next).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "https://www.inkwell.blog", recorder.Header().Get("Access-Control-Allow-Origin"))
}
