// Copyright (c) 2026 Theater. All rights reserved.
// Author: bach.nv.dev@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvbach/theater/pkg/pagination"
)

const base = "/theater/movies/"

/*
TestTotalPages verifies the ceiling division used for page counts.
*/
func TestTotalPages(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		perPage int
		want    int
	}{
		{"empty", 0, 10, 0},
		{"exact_multiple", 20, 10, 2},
		{"remainder_rounds_up", 25, 10, 3},
		{"single_item", 1, 20, 1},
		{"per_page_larger_than_total", 5, 20, 1},
		{"zero_per_page", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.TotalPages(tt.total, tt.perPage))
		})
	}
}

/*
TestNewMeta_FirstPage checks link shape on the first page of a multi-page list.
*/
func TestNewMeta_FirstPage(t *testing.T) {
	meta := pagination.NewMeta(base, pagination.Params{Page: 1, PerPage: 10}, 25)

	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 25, meta.TotalItems)
	assert.Nil(t, meta.PrevPage)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, "/theater/movies/?page=2&per_page=10", *meta.NextPage)
}

/*
TestNewMeta_LastPage checks link shape on the final page.
*/
func TestNewMeta_LastPage(t *testing.T) {
	meta := pagination.NewMeta(base, pagination.Params{Page: 3, PerPage: 10}, 25)

	assert.Nil(t, meta.NextPage)
	require.NotNil(t, meta.PrevPage)
	assert.Equal(t, "/theater/movies/?page=2&per_page=10", *meta.PrevPage)
}

/*
TestNewMeta_MiddlePage checks that both links render on interior pages.
*/
func TestNewMeta_MiddlePage(t *testing.T) {
	meta := pagination.NewMeta(base, pagination.Params{Page: 2, PerPage: 10}, 25)

	require.NotNil(t, meta.PrevPage)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, "/theater/movies/?page=1&per_page=10", *meta.PrevPage)
	assert.Equal(t, "/theater/movies/?page=3&per_page=10", *meta.NextPage)
}

/*
TestNewMeta_SinglePage verifies that a one-page list has no links at all.
*/
func TestNewMeta_SinglePage(t *testing.T) {
	meta := pagination.NewMeta(base, pagination.Params{Page: 1, PerPage: 10}, 7)

	assert.Equal(t, 1, meta.TotalPages)
	assert.Nil(t, meta.PrevPage)
	assert.Nil(t, meta.NextPage)
}

/*
TestParams_Offset verifies SQL offset derivation.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 2, PerPage: 10}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 5, PerPage: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, PerPage: 10}.Offset())
}

/*
TestFromRequest covers query parsing and clamping.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "?page=3&per_page=20", 3, 20},
		{"negative_page_clamped", "?page=-2", 1, 10},
		{"zero_per_page_clamped", "?per_page=0", 1, 10},
		{"excessive_per_page_clamped", "?per_page=100", 1, 10},
		{"garbage_ignored", "?page=abc&per_page=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/movies/"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantPerPage, params.PerPage)
		})
	}
}
