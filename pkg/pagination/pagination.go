// Copyright (c) 2026 Inkwell CMS. All rights reserved.

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
// The per-page default is injected by the caller (it is an externally
// configured value, not a package constant).
package pagination

import (
	"net/http"

	"github.com/inkwell-cms/inkwell/pkg/convert"
)

const (
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// FallbackLimit guards against a non-positive injected default.
	FallbackLimit = 10
)

// Sort directions for the "order" query parameter.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Params holds the parsed page, limit, and sort order from a request's query string.
type Params struct {
	Page  int
	Limit int
	Order string
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// OrderSQL returns the SQL keyword for the sort direction.
//
// Only the two known directions are ever returned, so the value is safe to
// interpolate into an ORDER BY clause.
func (p Params) OrderSQL() string {
	if p.Order == OrderAsc {
		return "ASC"
	}
	return "DESC"
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates the TotalPages based on the total count and limit.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FromRequest parses "page", "limit", and "order" query parameters.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], the injected defaultLimit, or [MaxLimit]. Unknown order
// values fall back to newest-first (desc).
func FromRequest(r *http.Request, defaultLimit int) Params {
	if defaultLimit < 1 {
		defaultLimit = FallbackLimit
	}

	query := r.URL.Query()
	page := convert.ToIntD(query.Get("page"), DefaultPage)
	limit := convert.ToIntD(query.Get("limit"), defaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = defaultLimit
	}

	order := query.Get("order")
	if order != OrderAsc && order != OrderDesc {
		order = OrderDesc
	}

	return Params{Page: page, Limit: limit, Order: order}
}
