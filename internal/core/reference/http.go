package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nvbach/theater/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the read-only reference listings. Trailing slashes
// are part of the public contract.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/countries/", handler.listCountries)
	router.Get("/genres/", handler.listGenres)
	router.Get("/actors/", handler.listActors)
	router.Get("/languages/", handler.listLanguages)
}

func (handler *Handler) listCountries(writer http.ResponseWriter, request *http.Request) {
	countries, err := handler.service.ListCountries(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, countries)
}

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genres)
}

func (handler *Handler) listActors(writer http.ResponseWriter, request *http.Request) {
	actors, err := handler.service.ListActors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, actors)
}

func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {
	langs, err := handler.service.ListLanguages(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, langs)
}
