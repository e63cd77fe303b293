// Copyright (c) 2026 Theater. All rights reserved.
// Author: bach.nv.dev@gmail.com

package dberr_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvbach/theater/internal/platform/apperr"
	"github.com/nvbach/theater/internal/platform/dberr"
)

/*
TestWrap_Classification verifies the pgx error → AppError mapping.
*/
func TestWrap_Classification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"no_rows_is_not_found", pgx.ErrNoRows, "NOT_FOUND"},
		{"unique_violation_is_conflict", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, "CONFLICT"},
		{"foreign_key_violation_is_internal", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, "INTERNAL_ERROR"},
		{"plain_error_is_internal", errors.New("connection reset"), "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "test_action")
			require.Error(t, wrapped)

			ae := apperr.As(wrapped)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
	assert.False(t, dberr.IsUniqueViolation(errors.New("boom")))
	assert.False(t, dberr.IsUniqueViolation(nil))
}
