// Copyright (c) 2026 Theater. All rights reserved.
// Author: bach.nv.dev@gmail.com

/*
Package movie defines the core catalogue domain of the Theater API.

It manages the lifecycle of movie records including metadata, financials,
and the associations to shared reference entities (country, genres, actors,
spoken languages).

Core Responsibility:

  - Catalogue: Defines release statuses and the movie aggregate itself.
  - Associations: Movies reference genres, actors and languages by value;
    missing reference rows are created on demand during persistence.
  - Contract: Fixes the exact client-facing messages for lookup misses,
    duplicates and invalid payloads.

This package acts as the source of truth for all movie-related data models.
*/
package movie

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nvbach/theater/internal/core/reference"
	"github.com/nvbach/theater/internal/platform/apperr"
)

// # Domain Enums

// Status represents the release status of a movie.
type Status string

const (
	// StatusReleased indicates the movie is available to the public.
	StatusReleased Status = "Released"

	// StatusPostProduction indicates filming has wrapped but the movie is unreleased.
	StatusPostProduction Status = "Post Production"

	// StatusInProduction indicates the movie is still being filmed.
	StatusInProduction Status = "In Production"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case
		StatusReleased,
		StatusPostProduction,
		StatusInProduction:
		return true
	}
	return false
}

// # Dates

// DateLayout is the wire format for release dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component. It marshals to and from
// the "YYYY-MM-DD" wire format.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string into a [Date].
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// String renders the date in wire format.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Equal reports whether two dates fall on the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// MarshalJSON implements [json.Marshaler].
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements [json.Unmarshaler].
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", raw)
	}

	*d = parsed
	return nil
}

// # Core Entities

// Movie is the central aggregate of the Theater domain. It represents a
// single catalogue entry with its reference associations fully hydrated.
type Movie struct {
	ID        int64                `json:"id"`
	Name      string               `json:"name"`
	Date      Date                 `json:"date"`
	Score     float64              `json:"score"`
	Overview  string               `json:"overview"`
	Status    Status               `json:"status"`
	Budget    float64              `json:"budget"`
	Revenue   float64              `json:"revenue"`
	Country   *reference.Country   `json:"country"`
	Genres    []reference.Genre    `json:"genres"`
	Actors    []reference.Actor    `json:"actors"`
	Languages []reference.Language `json:"languages"`
}

// Summary is the reduced movie representation used by list endpoints.
type Summary struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Date     Date    `json:"date"`
	Score    float64 `json:"score"`
	Overview string  `json:"overview"`
}

// # Write Models

// CreateInput carries the attributes of a new movie. Country is an ISO
// 3166-1 alpha-2 code; genres, actors and languages are plain names whose
// input order is preserved on the stored associations.
type CreateInput struct {
	Name      string
	Date      Date
	Score     float64
	Overview  string
	Status    Status
	Budget    float64
	Revenue   float64
	Country   string
	Genres    []string
	Actors    []string
	Languages []string
}

// UpdateInput carries a partial movie mutation. Nil fields are left
// untouched; a non-nil slice replaces the full association list.
type UpdateInput struct {
	Name      *string
	Date      *Date
	Score     *float64
	Overview  *string
	Status    *Status
	Budget    *float64
	Revenue   *float64
	Country   *string
	Genres    []string
	Actors    []string
	Languages []string
}

// IsEmpty reports whether the mutation carries no changes at all.
func (in UpdateInput) IsEmpty() bool {
	return in.Name == nil &&
		in.Date == nil &&
		in.Score == nil &&
		in.Overview == nil &&
		in.Status == nil &&
		in.Budget == nil &&
		in.Revenue == nil &&
		in.Country == nil &&
		in.Genres == nil &&
		in.Actors == nil &&
		in.Languages == nil
}

// # Contract Messages

const (
	msgNoMovies      = "No movies found."
	msgMovieNotFound = "Movie with the given ID was not found."
	msgInvalidInput  = "Invalid input data."
	msgUpdatedOK     = "Movie updated successfully."
)

var (
	errNoMovies      = apperr.NotFoundMessage(msgNoMovies)
	errMovieNotFound = apperr.NotFoundMessage(msgMovieNotFound)
)

// duplicateMessage renders the exact conflict wording for a (name, date) clash.
func duplicateMessage(name string, date Date) string {
	return fmt.Sprintf("A movie with the name '%s' and release date '%s' already exists.", name, date)
}

// # Field Identifiers

const (
	FieldName      = "name"
	FieldDate      = "date"
	FieldScore     = "score"
	FieldOverview  = "overview"
	FieldStatus    = "status"
	FieldBudget    = "budget"
	FieldRevenue   = "revenue"
	FieldCountry   = "country"
	FieldGenres    = "genres"
	FieldActors    = "actors"
	FieldLanguages = "languages"
)
