// Copyright (c) 2026 Theater. All rights reserved.
// Author: bach.nv.dev@gmail.com

package movie

import "context"

// Repository defines the persistence contract for the movie catalogue.
//
// Implementations translate row misses into the package's not-found errors
// and surface unique-constraint violations as [dberr.ErrDuplicate] so the
// service can attach the precise conflict message.
type Repository interface {
	// Count returns the total number of movies in the catalogue.
	Count(ctx context.Context) (int, error)

	// List returns a page of movie summaries ordered by ID descending
	// (newest entries first).
	List(ctx context.Context, limit, offset int) ([]*Summary, error)

	// FindByID returns a movie with its country, genre, actor and language
	// associations hydrated.
	FindByID(ctx context.Context, id int64) (*Movie, error)

	// ExistsByNameAndDate reports whether another movie already occupies the
	// (name, date) identity. excludeID skips the row being updated; pass 0
	// when creating.
	ExistsByNameAndDate(ctx context.Context, name string, date Date, excludeID int64) (bool, error)

	// Create persists a new movie and its associations atomically, resolving
	// reference values inside the same transaction. Returns the new ID.
	Create(ctx context.Context, input CreateInput) (int64, error)

	// Update applies a partial mutation. Non-nil association slices replace
	// the stored lists.
	Update(ctx context.Context, id int64, input UpdateInput) error

	// Delete removes a movie; junction rows cascade, reference rows remain.
	Delete(ctx context.Context, id int64) error
}
