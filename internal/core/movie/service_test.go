// Copyright (c) 2026 Theater. All rights reserved.
// Author: bach.nv.dev@gmail.com

package movie_test

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvbach/theater/internal/core/movie"
	"github.com/nvbach/theater/internal/core/reference"
	"github.com/nvbach/theater/internal/platform/apperr"
	"github.com/nvbach/theater/internal/platform/dberr"
	"github.com/nvbach/theater/pkg/pagination"
	"github.com/nvbach/theater/pkg/pointer"
)

// # Test Doubles

// fakeRepository is an in-memory [movie.Repository]. Reference values
// resolve to stable IDs per (kind, value), mirroring the get-or-create
// semantics of the real store.
type fakeRepository struct {
	nextID    int64
	movies    map[int64]movie.CreateInput
	refIDs    map[string]int
	nextRefID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		movies: make(map[int64]movie.CreateInput),
		refIDs: make(map[string]int),
	}
}

func (f *fakeRepository) refID(kind, value string) int {
	key := kind + ":" + value
	if id, ok := f.refIDs[key]; ok {
		return id
	}
	f.nextRefID++
	f.refIDs[key] = f.nextRefID
	return f.nextRefID
}

func (f *fakeRepository) Count(_ context.Context) (int, error) {
	return len(f.movies), nil
}

func (f *fakeRepository) List(_ context.Context, limit, offset int) ([]*movie.Summary, error) {
	ids := make([]int64, 0, len(f.movies))
	for id := range f.movies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	var page []*movie.Summary
	for i := offset; i < len(ids) && len(page) < limit; i++ {
		input := f.movies[ids[i]]
		page = append(page, &movie.Summary{
			ID:       ids[i],
			Name:     input.Name,
			Date:     input.Date,
			Score:    input.Score,
			Overview: input.Overview,
		})
	}

	return page, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id int64) (*movie.Movie, error) {
	input, ok := f.movies[id]
	if !ok {
		return nil, apperr.NotFoundMessage("Movie with the given ID was not found.")
	}

	m := &movie.Movie{
		ID:       id,
		Name:     input.Name,
		Date:     input.Date,
		Score:    input.Score,
		Overview: input.Overview,
		Status:   input.Status,
		Budget:   input.Budget,
		Revenue:  input.Revenue,
		Country:  &reference.Country{ID: f.refID("country", input.Country), Code: input.Country},
	}
	for _, name := range input.Genres {
		m.Genres = append(m.Genres, reference.Genre{ID: f.refID("genre", name), Name: name})
	}
	for _, name := range input.Actors {
		m.Actors = append(m.Actors, reference.Actor{ID: f.refID("actor", name), Name: name})
	}
	for _, name := range input.Languages {
		m.Languages = append(m.Languages, reference.Language{ID: f.refID("language", name), Name: name})
	}

	return m, nil
}

func (f *fakeRepository) ExistsByNameAndDate(_ context.Context, name string, date movie.Date, excludeID int64) (bool, error) {
	for id, input := range f.movies {
		if id != excludeID && input.Name == name && input.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) Create(_ context.Context, input movie.CreateInput) (int64, error) {
	for _, existing := range f.movies {
		if existing.Name == input.Name && existing.Date.Equal(input.Date) {
			return 0, dberr.ErrDuplicate
		}
	}

	f.nextID++
	f.movies[f.nextID] = input
	return f.nextID, nil
}

func (f *fakeRepository) Update(_ context.Context, id int64, input movie.UpdateInput) error {
	current, ok := f.movies[id]
	if !ok {
		return apperr.NotFoundMessage("Movie with the given ID was not found.")
	}

	if input.Name != nil {
		current.Name = *input.Name
	}
	if input.Date != nil {
		current.Date = *input.Date
	}
	if input.Score != nil {
		current.Score = *input.Score
	}
	if input.Overview != nil {
		current.Overview = *input.Overview
	}
	if input.Status != nil {
		current.Status = *input.Status
	}
	if input.Budget != nil {
		current.Budget = *input.Budget
	}
	if input.Revenue != nil {
		current.Revenue = *input.Revenue
	}
	if input.Country != nil {
		current.Country = *input.Country
	}
	if input.Genres != nil {
		current.Genres = input.Genres
	}
	if input.Actors != nil {
		current.Actors = input.Actors
	}
	if input.Languages != nil {
		current.Languages = input.Languages
	}

	f.movies[id] = current
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id int64) error {
	if _, ok := f.movies[id]; !ok {
		return apperr.NotFoundMessage("Movie with the given ID was not found.")
	}
	delete(f.movies, id)
	return nil
}

// # Fixtures

func testDate(value string) movie.Date {
	d, err := movie.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

func validInput(name string, date movie.Date) movie.CreateInput {
	return movie.CreateInput{
		Name:      name,
		Date:      date,
		Score:     82.5,
		Overview:  "A heist crew enters dreams.",
		Status:    movie.StatusReleased,
		Budget:    160_000_000,
		Revenue:   825_000_000,
		Country:   "US",
		Genres:    []string{"Action", "Science Fiction"},
		Actors:    []string{"Leonardo DiCaprio"},
		Languages: []string{"English"},
	}
}

func seedCatalog(t *testing.T, service *movie.Service, count int) {
	t.Helper()
	for i := 1; i <= count; i++ {
		input := validInput(fmt.Sprintf("Movie %03d", i), testDate("2020-01-15"))
		input.Date = movie.NewDate(input.Date.AddDate(0, 0, i))
		_, err := service.CreateMovie(context.Background(), input)
		require.NoError(t, err)
	}
}

// # Listing

/*
TestService_ListMovies_EmptyCatalog verifies that an empty catalogue yields
the fixed not-found response rather than an empty page.
*/
func TestService_ListMovies_EmptyCatalog(t *testing.T) {
	service := movie.NewService(newFakeRepository())

	_, _, err := service.ListMovies(context.Background(), pagination.Params{Page: 1, PerPage: 10})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "No movies found.", ae.Message)
}

/*
TestService_ListMovies_PageBeyondEnd verifies that requesting a page past
the last one is indistinguishable from an empty catalogue.
*/
func TestService_ListMovies_PageBeyondEnd(t *testing.T) {
	service := movie.NewService(newFakeRepository())
	seedCatalog(t, service, 25)

	_, _, err := service.ListMovies(context.Background(), pagination.Params{Page: 4, PerPage: 10})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "No movies found.", ae.Message)
}

/*
TestService_ListMovies_PageShapes walks a 25-item catalogue at 10 per page
and checks page sizes, totals and the prev/next link rendering.
*/
func TestService_ListMovies_PageShapes(t *testing.T) {
	service := movie.NewService(newFakeRepository())
	seedCatalog(t, service, 25)

	tests := []struct {
		name     string
		page     int
		wantLen  int
		wantPrev *string
		wantNext *string
	}{
		{
			name:     "first_page",
			page:     1,
			wantLen:  10,
			wantPrev: nil,
			wantNext: pointer.To("/theater/movies/?page=2&per_page=10"),
		},
		{
			name:     "middle_page",
			page:     2,
			wantLen:  10,
			wantPrev: pointer.To("/theater/movies/?page=1&per_page=10"),
			wantNext: pointer.To("/theater/movies/?page=3&per_page=10"),
		},
		{
			name:     "last_page",
			page:     3,
			wantLen:  5,
			wantPrev: pointer.To("/theater/movies/?page=2&per_page=10"),
			wantNext: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movies, meta, err := service.ListMovies(context.Background(), pagination.Params{Page: tt.page, PerPage: 10})
			require.NoError(t, err)

			assert.Len(t, movies, tt.wantLen)
			assert.Equal(t, 3, meta.TotalPages)
			assert.Equal(t, 25, meta.TotalItems)
			assert.Equal(t, tt.wantPrev, meta.PrevPage)
			assert.Equal(t, tt.wantNext, meta.NextPage)
		})
	}
}

/*
TestService_ListMovies_NewestFirst verifies descending ID ordering.
*/
func TestService_ListMovies_NewestFirst(t *testing.T) {
	service := movie.NewService(newFakeRepository())
	seedCatalog(t, service, 3)

	movies, _, err := service.ListMovies(context.Background(), pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)

	require.Len(t, movies, 3)
	assert.Equal(t, "Movie 003", movies[0].Name)
	assert.Equal(t, "Movie 001", movies[2].Name)
}

// # Creation

/*
TestService_CreateMovie_RoundTrip verifies that a created movie is re-read
with its references resolved and ordered as submitted.
*/
func TestService_CreateMovie_RoundTrip(t *testing.T) {
	service := movie.NewService(newFakeRepository())

	created, err := service.CreateMovie(context.Background(), validInput("Inception", testDate("2010-07-16")))
	require.NoError(t, err)

	assert.Equal(t, "Inception", created.Name)
	assert.Equal(t, "2010-07-16", created.Date.String())
	assert.Equal(t, movie.StatusReleased, created.Status)

	require.NotNil(t, created.Country)
	assert.Equal(t, "US", created.Country.Code)

	require.Len(t, created.Genres, 2)
	assert.Equal(t, "Action", created.Genres[0].Name)
	assert.Equal(t, "Science Fiction", created.Genres[1].Name)

	fetched, err := service.GetMovie(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

/*
TestService_CreateMovie_Duplicate verifies the exact conflict wording for a
(name, date) clash.
*/
func TestService_CreateMovie_Duplicate(t *testing.T) {
	service := movie.NewService(newFakeRepository())

	_, err := service.CreateMovie(context.Background(), validInput("Inception", testDate("2010-07-16")))
	require.NoError(t, err)

	_, err = service.CreateMovie(context.Background(), validInput("Inception", testDate("2010-07-16")))

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "A movie with the name 'Inception' and release date '2010-07-16' already exists.", ae.Message)
}

/*
TestService_CreateMovie_SameNameDifferentDate verifies that the identity is
the (name, date) pair, not the name alone.
*/
func TestService_CreateMovie_SameNameDifferentDate(t *testing.T) {
	service := movie.NewService(newFakeRepository())

	_, err := service.CreateMovie(context.Background(), validInput("Dune", testDate("1984-12-14")))
	require.NoError(t, err)

	_, err = service.CreateMovie(context.Background(), validInput("Dune", testDate("2021-10-22")))
	assert.NoError(t, err)
}

/*
TestService_CreateMovie_Validation exercises the attribute rule set and
checks the fixed top-level message.
*/
func TestService_CreateMovie_Validation(t *testing.T) {
	farFuture := movie.NewDate(time.Now().UTC().Add(366 * 24 * time.Hour))

	tests := []struct {
		name   string
		mutate func(*movie.CreateInput)
	}{
		{"missing_name", func(in *movie.CreateInput) { in.Name = "" }},
		{"date_beyond_horizon", func(in *movie.CreateInput) { in.Date = farFuture }},
		{"unknown_status", func(in *movie.CreateInput) { in.Status = "Straight To DVD" }},
		{"score_above_range", func(in *movie.CreateInput) { in.Score = 100.5 }},
		{"negative_budget", func(in *movie.CreateInput) { in.Budget = -1 }},
		{"bad_country_code", func(in *movie.CreateInput) { in.Country = "USA" }},
		{"blank_genre", func(in *movie.CreateInput) { in.Genres = []string{"Action", ""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := movie.NewService(newFakeRepository())

			input := validInput("Inception", testDate("2010-07-16"))
			tt.mutate(&input)

			_, err := service.CreateMovie(context.Background(), input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, "Invalid input data.", ae.Message)
			assert.NotEmpty(t, ae.Details)
		})
	}
}

/*
TestService_CreateMovie_SharedReferences verifies that resolving the same
genre from two movies converges on one reference row.
*/
func TestService_CreateMovie_SharedReferences(t *testing.T) {
	service := movie.NewService(newFakeRepository())

	first, err := service.CreateMovie(context.Background(), validInput("Heat", testDate("1995-12-15")))
	require.NoError(t, err)

	second, err := service.CreateMovie(context.Background(), validInput("Ronin", testDate("1998-09-25")))
	require.NoError(t, err)

	assert.Equal(t, first.Genres[0].ID, second.Genres[0].ID)
	assert.Equal(t, first.Country.ID, second.Country.ID)
}

// # Mutation

/*
TestService_UpdateMovie_EmptyPayload verifies that a mutation carrying no
changes is rejected with the fixed wording.
*/
func TestService_UpdateMovie_EmptyPayload(t *testing.T) {
	service := movie.NewService(newFakeRepository())
	seedCatalog(t, service, 1)

	err := service.UpdateMovie(context.Background(), 1, movie.UpdateInput{})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, "Invalid input data.", ae.Message)
}

/*
TestService_UpdateMovie_NotFound verifies the lookup-miss wording.
*/
func TestService_UpdateMovie_NotFound(t *testing.T) {
	service := movie.NewService(newFakeRepository())

	err := service.UpdateMovie(context.Background(), 99, movie.UpdateInput{Name: pointer.To("Renamed")})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "Movie with the given ID was not found.", ae.Message)
}

/*
TestService_UpdateMovie_PartialFields verifies that untouched fields survive
a partial mutation.
*/
func TestService_UpdateMovie_PartialFields(t *testing.T) {
	service := movie.NewService(newFakeRepository())

	created, err := service.CreateMovie(context.Background(), validInput("Inception", testDate("2010-07-16")))
	require.NoError(t, err)

	err = service.UpdateMovie(context.Background(), created.ID, movie.UpdateInput{
		Score:  pointer.To(91.0),
		Genres: []string{"Thriller"},
	})
	require.NoError(t, err)

	updated, err := service.GetMovie(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, 91.0, updated.Score)
	assert.Equal(t, "Inception", updated.Name)
	assert.Equal(t, movie.StatusReleased, updated.Status)
	require.Len(t, updated.Genres, 1)
	assert.Equal(t, "Thriller", updated.Genres[0].Name)
	assert.Len(t, updated.Actors, 1)
}

/*
TestService_UpdateMovie_DuplicateIdentity verifies that renaming a movie
onto another movie's (name, date) identity conflicts with exact wording.
*/
func TestService_UpdateMovie_DuplicateIdentity(t *testing.T) {
	service := movie.NewService(newFakeRepository())

	_, err := service.CreateMovie(context.Background(), validInput("Heat", testDate("1995-12-15")))
	require.NoError(t, err)

	second, err := service.CreateMovie(context.Background(), validInput("Ronin", testDate("1998-09-25")))
	require.NoError(t, err)

	err = service.UpdateMovie(context.Background(), second.ID, movie.UpdateInput{
		Name: pointer.To("Heat"),
		Date: pointer.To(testDate("1995-12-15")),
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "A movie with the name 'Heat' and release date '1995-12-15' already exists.", ae.Message)
}

/*
TestService_UpdateMovie_OwnIdentityNoConflict verifies that re-submitting a
movie's current name does not collide with its own row.
*/
func TestService_UpdateMovie_OwnIdentityNoConflict(t *testing.T) {
	service := movie.NewService(newFakeRepository())

	created, err := service.CreateMovie(context.Background(), validInput("Heat", testDate("1995-12-15")))
	require.NoError(t, err)

	err = service.UpdateMovie(context.Background(), created.ID, movie.UpdateInput{
		Name:  pointer.To("Heat"),
		Score: pointer.To(88.0),
	})
	assert.NoError(t, err)
}

/*
TestService_UpdateMovie_Validation verifies that present-but-invalid fields
are rejected even in a partial mutation.
*/
func TestService_UpdateMovie_Validation(t *testing.T) {
	service := movie.NewService(newFakeRepository())
	seedCatalog(t, service, 1)

	err := service.UpdateMovie(context.Background(), 1, movie.UpdateInput{
		Status: pointer.To(movie.Status("Cancelled")),
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, "Invalid input data.", ae.Message)
}

// # Deletion

/*
TestService_DeleteMovie verifies deletion and the lookup-miss wording for a
second delete of the same ID.
*/
func TestService_DeleteMovie(t *testing.T) {
	service := movie.NewService(newFakeRepository())

	created, err := service.CreateMovie(context.Background(), validInput("Inception", testDate("2010-07-16")))
	require.NoError(t, err)

	require.NoError(t, service.DeleteMovie(context.Background(), created.ID))

	err = service.DeleteMovie(context.Background(), created.ID)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "Movie with the given ID was not found.", ae.Message)
}
