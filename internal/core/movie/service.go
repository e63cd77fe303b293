// Copyright (c) 2026 Theater. All rights reserved.
// Author: bach.nv.dev@gmail.com

package movie

import (
	"context"
	"errors"
	"time"

	"github.com/nvbach/theater/internal/platform/apperr"
	"github.com/nvbach/theater/internal/platform/constants"
	"github.com/nvbach/theater/internal/platform/dberr"
	"github.com/nvbach/theater/internal/platform/validate"
	"github.com/nvbach/theater/pkg/pagination"
	"github.com/nvbach/theater/pkg/pointer"
)

// maxNameLen caps movie names at the column width.
const maxNameLen = 255

// releaseDateHorizon is how far into the future a release date may lie.
const releaseDateHorizon = 365 * 24 * time.Hour

// # Service Layer

// Service orchestrates the business logic for the movie catalogue.
// It owns validation, duplicate detection and the contract messages;
// persistence mechanics live behind [Repository].
type Service struct {
	repo Repository
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// # Catalogue Lookups

/*
ListMovies retrieves one page of the catalogue, newest first.

Description: The page window is resolved against the live total count.
An empty catalogue and a page beyond the last one are indistinguishable
to the client; both yield the same not-found response.

Parameters:
  - context: context.Context
  - params: pagination.Params (1-indexed page and per_page, pre-clamped)

Returns:
  - []*Summary: The page of movie summaries
  - pagination.Meta: Prev/next links and totals for the response envelope
  - error: errNoMovies when the page is empty, or repository errors
*/
func (service *Service) ListMovies(context context.Context, params pagination.Params) ([]*Summary, pagination.Meta, error) {
	total, err := service.repo.Count(context)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if total == 0 {
		return nil, pagination.Meta{}, errNoMovies
	}

	if params.Page > pagination.TotalPages(total, params.PerPage) {
		return nil, pagination.Meta{}, errNoMovies
	}

	movies, err := service.repo.List(context, params.PerPage, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if len(movies) == 0 {
		return nil, pagination.Meta{}, errNoMovies
	}

	meta := pagination.NewMeta(constants.MovieListLinkPrefix, params, total)
	return movies, meta, nil
}

/*
GetMovie fetches a single movie by its numeric identifier.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Movie: The hydrated aggregate including all reference associations
  - error: errMovieNotFound if no row matches
*/
func (service *Service) GetMovie(context context.Context, id int64) (*Movie, error) {
	return service.repo.FindByID(context, id)
}

// # Catalogue Management

/*
CreateMovie adds a new entry to the catalogue.

Description: Validates the payload, rejects (name, date) duplicates up
front, then persists movie and associations in a single transaction.
The store's unique constraint remains the authority: a violation slipping
past the pre-check (concurrent create) surfaces as the same conflict.
The persisted aggregate is re-read so the response reflects exactly what
was stored, including resolved reference IDs.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Movie: The freshly persisted aggregate
  - error: Validation, conflict, or repository errors
*/
func (service *Service) CreateMovie(context context.Context, input CreateInput) (*Movie, error) {
	if err := service.validateCreate(input); err != nil {
		return nil, err
	}

	exists, err := service.repo.ExistsByNameAndDate(context, input.Name, input.Date, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict(duplicateMessage(input.Name, input.Date))
	}

	id, err := service.repo.Create(context, input)
	if err != nil {
		if errors.Is(err, dberr.ErrDuplicate) {
			return nil, apperr.Conflict(duplicateMessage(input.Name, input.Date))
		}
		return nil, err
	}

	return service.repo.FindByID(context, id)
}

/*
UpdateMovie applies a partial mutation to an existing movie.

Description: An empty payload is rejected outright. When the mutation
touches the (name, date) identity, the merged identity is checked against
the rest of the catalogue before persisting, excluding the movie itself so
a no-op rename does not conflict with its own row.

Parameters:
  - context: context.Context
  - id: int64
  - input: UpdateInput (nil fields untouched; non-nil slices replace lists)

Returns:
  - error: Validation, not-found, conflict, or repository errors
*/
func (service *Service) UpdateMovie(context context.Context, id int64, input UpdateInput) error {
	if input.IsEmpty() {
		return apperr.ValidationError(msgInvalidInput)
	}
	if err := service.validateUpdate(input); err != nil {
		return err
	}

	current, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}

	// Merged identity for duplicate detection and conflict wording.
	mergedName := pointer.Fallback(input.Name, current.Name)
	mergedDate := current.Date
	if input.Date != nil {
		mergedDate = *input.Date
	}

	if mergedName != current.Name || !mergedDate.Equal(current.Date) {
		exists, err := service.repo.ExistsByNameAndDate(context, mergedName, mergedDate, id)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflict(duplicateMessage(mergedName, mergedDate))
		}
	}

	if err := service.repo.Update(context, id, input); err != nil {
		if errors.Is(err, dberr.ErrDuplicate) {
			return apperr.Conflict(duplicateMessage(mergedName, mergedDate))
		}
		return err
	}

	return nil
}

/*
DeleteMovie removes a movie from the catalogue.

Description: Association rows are removed by the store; the reference
entities themselves (genres, actors, languages, countries) are shared
across the catalogue and always survive.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - error: errMovieNotFound if no row matches, or repository errors
*/
func (service *Service) DeleteMovie(context context.Context, id int64) error {
	return service.repo.Delete(context, id)
}

// # Validation

// validateCreate enforces the full attribute rule set on a new movie.
func (service *Service) validateCreate(input CreateInput) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, maxNameLen)

	validator.Custom(FieldDate, input.Date.IsZero(), "This field is required")
	validator.NotAfter(FieldDate, input.Date.Time, releaseDateCeiling())

	validator.Required(FieldStatus, string(input.Status)).OneOf(FieldStatus, string(input.Status),
		string(StatusReleased),
		string(StatusPostProduction),
		string(StatusInProduction),
	)

	validator.RangeFloat(FieldScore, input.Score, 0, 100)
	validator.NonNegative(FieldBudget, input.Budget)
	validator.NonNegative(FieldRevenue, input.Revenue)

	validator.Required(FieldCountry, input.Country).MinLen(FieldCountry, input.Country, 2).MaxLen(FieldCountry, input.Country, 2)

	validator.Custom(FieldGenres, hasBlank(input.Genres), "Entries must not be blank")
	validator.Custom(FieldActors, hasBlank(input.Actors), "Entries must not be blank")
	validator.Custom(FieldLanguages, hasBlank(input.Languages), "Entries must not be blank")

	return validator.ErrWithMessage(msgInvalidInput)
}

// validateUpdate enforces the same rules as create, but only on fields the
// mutation actually carries.
func (service *Service) validateUpdate(input UpdateInput) error {
	validator := &validate.Validator{}

	if input.Name != nil {
		validator.Required(FieldName, *input.Name).MaxLen(FieldName, *input.Name, maxNameLen)
	}
	if input.Date != nil {
		validator.NotAfter(FieldDate, input.Date.Time, releaseDateCeiling())
	}
	if input.Status != nil {
		validator.OneOf(FieldStatus, string(*input.Status),
			string(StatusReleased),
			string(StatusPostProduction),
			string(StatusInProduction),
		)
	}
	if input.Score != nil {
		validator.RangeFloat(FieldScore, *input.Score, 0, 100)
	}
	if input.Budget != nil {
		validator.NonNegative(FieldBudget, *input.Budget)
	}
	if input.Revenue != nil {
		validator.NonNegative(FieldRevenue, *input.Revenue)
	}
	if input.Country != nil {
		validator.Required(FieldCountry, *input.Country).MinLen(FieldCountry, *input.Country, 2).MaxLen(FieldCountry, *input.Country, 2)
	}

	validator.Custom(FieldGenres, hasBlank(input.Genres), "Entries must not be blank")
	validator.Custom(FieldActors, hasBlank(input.Actors), "Entries must not be blank")
	validator.Custom(FieldLanguages, hasBlank(input.Languages), "Entries must not be blank")

	return validator.ErrWithMessage(msgInvalidInput)
}

// releaseDateCeiling returns the latest acceptable release date: one year
// from today. Announced movies carry future dates; anything beyond the
// horizon is treated as a data entry mistake.
func releaseDateCeiling() time.Time {
	return time.Now().UTC().Add(releaseDateHorizon)
}

func hasBlank(values []string) bool {
	for _, v := range values {
		if v == "" {
			return true
		}
	}
	return false
}
