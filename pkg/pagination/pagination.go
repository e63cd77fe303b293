// Copyright (c) 2026 Theater. All rights reserved.
// Author: bach.nv.dev@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata — total counts and deterministic prev/next
// links — is delivered in the API response envelope.
package pagination

import (
	"fmt"
	"net/http"

	"github.com/nvbach/theater/pkg/convert"
)

const (
	// DefaultPerPage is the number of items per page if not specified.
	DefaultPerPage = 10
	// MaxPerPage is the upper bound for items per page to prevent system abuse.
	MaxPerPage = 20
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and per_page from a request's query string.
type Params struct {
	Page    int
	PerPage int
}

// Offset returns the SQL OFFSET value derived from [Page] and [PerPage].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// Meta is the pagination metadata included in API list responses.
//
// PrevPage and NextPage render as JSON null when the respective page does
// not exist; clients treat null as "no link".
type Meta struct {
	PrevPage   *string `json:"prev_page"`
	NextPage   *string `json:"next_page"`
	TotalPages int     `json:"total_pages"`
	TotalItems int     `json:"total_items"`
}

// TotalPages computes ceil(totalItems / perPage).
func TotalPages(totalItems, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return (totalItems + perPage - 1) / perPage
}

// NewMeta constructs pagination metadata for a response.
//
// # Link Contract
//
// Links are rendered against the provided base path, which is a fixed
// constant owned by the caller and deliberately independent of the API
// mount prefix. Format: "<base>?page=<n>&per_page=<m>".
func NewMeta(base string, params Params, totalItems int) Meta {
	totalPages := TotalPages(totalItems, params.PerPage)

	meta := Meta{
		TotalPages: totalPages,
		TotalItems: totalItems,
	}

	if params.Page > 1 {
		prev := Link(base, params.Page-1, params.PerPage)
		meta.PrevPage = &prev
	}

	if params.Page < totalPages {
		next := Link(base, params.Page+1, params.PerPage)
		meta.NextPage = &next
	}

	return meta
}

// Link renders a single page link against the fixed base path.
func Link(base string, page, perPage int) string {
	return fmt.Sprintf("%s?page=%d&per_page=%d", base, page, perPage)
}

// FromRequest parses "page" and "per_page" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage] and [DefaultPerPage]; per_page is bounded by [MaxPerPage].
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	perPage := parseIntParam(r, "per_page", DefaultPerPage)

	if page < 1 {
		page = DefaultPage
	}

	if perPage < 1 || perPage > MaxPerPage {
		perPage = DefaultPerPage
	}

	return Params{Page: page, PerPage: perPage}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	return convert.ToIntD(r.URL.Query().Get(key), defaultVal)
}
