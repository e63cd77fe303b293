// Copyright (c) 2026 Theater. All rights reserved.
// Author: bach.nv.dev@gmail.com

// Package schema centralizes the physical table and column names used by the
// PostgreSQL repositories. Queries are assembled from these definitions so a
// rename touches exactly one file.
package schema

// MovieTable represents the 'theater.movie' table
type MovieTable struct {
	Table     string
	ID        string
	Name      string
	Date      string
	Score     string
	Overview  string
	Status    string
	Budget    string
	Revenue   string
	CountryID string
	CreatedAt string
	UpdatedAt string
}

// Movie is the schema definition for theater.movie
var Movie = MovieTable{
	Table:     "theater.movie",
	ID:        "id",
	Name:      "name",
	Date:      "date",
	Score:     "score",
	Overview:  "overview",
	Status:    "status",
	Budget:    "budget",
	Revenue:   "revenue",
	CountryID: "countryid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t MovieTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Date, t.Score, t.Overview, t.Status,
		t.Budget, t.Revenue, t.CountryID, t.CreatedAt, t.UpdatedAt,
	}
}
