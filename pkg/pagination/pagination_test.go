// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

/*
TestNewMeta verifies the total-page calculation, in particular that partial
trailing pages round up.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		totalPages int
	}{
		{"exact_division", 1, 10, 100, 10},
		{"partial_last_page", 1, 10, 101, 11},
		{"single_item", 1, 10, 1, 1},
		{"empty_set", 1, 10, 0, 0},
		{"limit_larger_than_total", 1, 50, 7, 1},
		{"zero_limit_guard", 1, 0, 25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}

/*
TestFromRequest verifies query parsing with clamping of invalid, negative,
and excessive values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
		wantOrder string
	}{
		{"defaults", "/posts", 1, 20, pagination.OrderDesc},
		{"explicit_values", "/posts?page=3&limit=15&order=asc", 3, 15, pagination.OrderAsc},
		{"negative_page", "/posts?page=-2", 1, 20, pagination.OrderDesc},
		{"zero_limit", "/posts?limit=0", 1, 20, pagination.OrderDesc},
		{"excessive_limit", "/posts?limit=9999", 1, 20, pagination.OrderDesc},
		{"garbage_values", "/posts?page=abc&limit=xyz", 1, 20, pagination.OrderDesc},
		{"unknown_order", "/posts?order=sideways", 1, 20, pagination.OrderDesc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			params := pagination.FromRequest(request, 20)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
			assert.Equal(t, tt.wantOrder, params.Order)
		})
	}
}

/*
TestFromRequest_FallbackLimit verifies the guard against a non-positive
injected default.
*/
func TestFromRequest_FallbackLimit(t *testing.T) {
	request := httptest.NewRequest("GET", "/posts", nil)

	params := pagination.FromRequest(request, 0)
	assert.Equal(t, pagination.FallbackLimit, params.Limit)

	params = pagination.FromRequest(request, -5)
	assert.Equal(t, pagination.FallbackLimit, params.Limit)
}

/*
TestParams_Offset verifies the page-to-offset conversion.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 5, Limit: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 10}.Offset())
}

/*
TestParams_OrderSQL verifies that only the two known SQL keywords can ever be
produced.
*/
func TestParams_OrderSQL(t *testing.T) {
	assert.Equal(t, "ASC", pagination.Params{Order: pagination.OrderAsc}.OrderSQL())
	assert.Equal(t, "DESC", pagination.Params{Order: pagination.OrderDesc}.OrderSQL())
	assert.Equal(t, "DESC", pagination.Params{Order: "; DROP TABLE"}.OrderSQL())
}
