// Copyright (c) 2026 Theater. All rights reserved.
// Author: bach.nv.dev@gmail.com

/*
Package movie also provides the HTTP interface for the catalogue.

The handler translates between the web/JSON layer and the internal domain
[Service]. Responses use the platform envelopes; error wording is owned by
the service layer and passed through verbatim.

# Routing Strategy

All movie routes require the trailing slash; it is part of the public
contract and is not redirected.
*/
package movie

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/nvbach/theater/internal/platform/request"
	"github.com/nvbach/theater/internal/platform/respond"
	"github.com/nvbach/theater/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalogue browsing and management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new movie [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the movie endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listMovies)
	router.Post("/", handler.createMovie)

	router.Get("/{id}/", handler.getMovie)
	router.Patch("/{id}/", handler.updateMovie)
	router.Delete("/{id}/", handler.deleteMovie)

	return router
}

// # Request Payloads

// createMovieRequest defines the inbound JSON schema for movie creation.
type createMovieRequest struct {
	Name      string   `json:"name"`
	Date      Date     `json:"date"`
	Score     float64  `json:"score"`
	Overview  string   `json:"overview"`
	Status    Status   `json:"status"`
	Budget    float64  `json:"budget"`
	Revenue   float64  `json:"revenue"`
	Country   string   `json:"country"`
	Genres    []string `json:"genres"`
	Actors    []string `json:"actors"`
	Languages []string `json:"languages"`
}

func (payload createMovieRequest) toInput() CreateInput {
	return CreateInput{
		Name:      payload.Name,
		Date:      payload.Date,
		Score:     payload.Score,
		Overview:  payload.Overview,
		Status:    payload.Status,
		Budget:    payload.Budget,
		Revenue:   payload.Revenue,
		Country:   payload.Country,
		Genres:    payload.Genres,
		Actors:    payload.Actors,
		Languages: payload.Languages,
	}
}

// updateMovieRequest defines the inbound JSON schema for partial updates.
// Absent fields stay nil and leave the stored value untouched.
type updateMovieRequest struct {
	Name      *string  `json:"name"`
	Date      *Date    `json:"date"`
	Score     *float64 `json:"score"`
	Overview  *string  `json:"overview"`
	Status    *Status  `json:"status"`
	Budget    *float64 `json:"budget"`
	Revenue   *float64 `json:"revenue"`
	Country   *string  `json:"country"`
	Genres    []string `json:"genres"`
	Actors    []string `json:"actors"`
	Languages []string `json:"languages"`
}

func (payload updateMovieRequest) toInput() UpdateInput {
	return UpdateInput{
		Name:      payload.Name,
		Date:      payload.Date,
		Score:     payload.Score,
		Overview:  payload.Overview,
		Status:    payload.Status,
		Budget:    payload.Budget,
		Revenue:   payload.Revenue,
		Country:   payload.Country,
		Genres:    payload.Genres,
		Actors:    payload.Actors,
		Languages: payload.Languages,
	}
}

// updateAck is the success body for PATCH responses.
type updateAck struct {
	Detail string `json:"detail"`
}

// # Endpoints

/*
GET /movies/.

Description: Retrieves one page of the catalogue, newest first.

Request:
  - page: int (1-indexed, default 1)
  - per_page: int (default 10, max 20)

Response:
  - 200: []Summary with pagination metadata
  - 404: Empty catalogue or page beyond the last one
*/
func (handler *Handler) listMovies(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	movies, meta, err := handler.service.ListMovies(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, movies, meta)
}

/*
GET /movies/{id}/.

Response:
  - 200: Movie: The full aggregate
  - 400: Non-integer identifier
  - 404: Movie not found
*/
func (handler *Handler) getMovie(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie, err := handler.service.GetMovie(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, movie)
}

/*
POST /movies/.

Description: Creates a catalogue entry. Reference values (country code,
genre/actor/language names) are resolved or created server-side.

Response:
  - 201: Movie: The persisted aggregate, re-read from storage
  - 400: Invalid payload
  - 409: Duplicate (name, date) identity
*/
func (handler *Handler) createMovie(writer http.ResponseWriter, request *http.Request) {
	var payload createMovieRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie, err := handler.service.CreateMovie(request.Context(), payload.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, movie)
}

/*
PATCH /movies/{id}/.

Description: Applies a partial mutation. An empty JSON object is rejected.

Response:
  - 200: {"detail": "Movie updated successfully."}
  - 400: Empty or invalid payload, or non-integer identifier
  - 404: Movie not found
  - 409: Mutation would collide with another movie's (name, date)
*/
func (handler *Handler) updateMovie(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload updateMovieRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateMovie(request.Context(), id, payload.toInput()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updateAck{Detail: msgUpdatedOK})
}

/*
DELETE /movies/{id}/.

Response:
  - 204: Deleted; junction rows cascade, reference rows remain
  - 400: Non-integer identifier
  - 404: Movie not found
*/
func (handler *Handler) deleteMovie(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteMovie(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
