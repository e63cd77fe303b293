// Copyright (c) 2026 Theater. All rights reserved.
// Author: bach.nv.dev@gmail.com

package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvbach/theater/internal/platform/apperr"
	"github.com/nvbach/theater/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Inception", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_RangeFloat checks numeric bounds used for the movie score.
*/
func TestValidator_RangeFloat(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		isValid bool
	}{
		{"lower_bound", 0, true},
		{"upper_bound", 100, true},
		{"interior", 73.5, true},
		{"below", -0.1, false},
		{"above", 100.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.RangeFloat("score", tt.value, 0, 100)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_NonNegative covers the budget/revenue rule.
*/
func TestValidator_NonNegative(t *testing.T) {
	v := &validate.Validator{}
	v.NonNegative("budget", 0).NonNegative("revenue", 1_000_000)
	assert.False(t, v.HasErrors())

	v.NonNegative("budget", -1)
	assert.True(t, v.HasErrors())
}

/*
TestValidator_NotAfter covers the release-date ceiling rule.
*/
func TestValidator_NotAfter(t *testing.T) {
	ceiling := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	v := &validate.Validator{}
	v.NotAfter("date", ceiling.AddDate(0, 0, -1), ceiling)
	assert.False(t, v.HasErrors())

	v.NotAfter("date", ceiling, ceiling)
	assert.False(t, v.HasErrors(), "ceiling itself is allowed")

	v.NotAfter("date", ceiling.AddDate(0, 0, 1), ceiling)
	assert.True(t, v.HasErrors())
}

/*
TestValidator_OneOf checks enum membership used for the movie status.
*/
func TestValidator_OneOf(t *testing.T) {
	v := &validate.Validator{}
	v.OneOf("status", "Released", "Released", "Post Production", "In Production")
	assert.False(t, v.HasErrors())

	v.OneOf("status", "Straight To DVD", "Released", "Post Production", "In Production")
	assert.True(t, v.HasErrors())
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "Arrival").
		MaxLen("name", "Arrival", 255).
		RangeFloat("score", 82, 0, 100).
		NonNegative("budget", 47_000_000).
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").             // Fails
		RangeFloat("score", 250, 0, 100). // Fails
		NonNegative("budget", -5).        // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}

/*
TestValidator_ErrWithMessage checks that the contract message overrides the default.
*/
func TestValidator_ErrWithMessage(t *testing.T) {
	v := &validate.Validator{}
	v.Required("name", "")

	err := v.ErrWithMessage("Invalid input data.")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Invalid input data.", ae.Message)
	assert.Equal(t, 400, ae.HTTPStatus)
}
