// Package reference holds the shared lookup entities of the catalogue:
// countries, genres, actors and spoken languages. Movies associate to these
// by value (code or name); the resolver materialises missing rows on demand
// so callers never manage reference IDs directly.
package reference

// Country identifies a production country by its ISO 3166-1 alpha-2 code.
type Country struct {
	ID   int     `json:"id"`
	Code string  `json:"code"`
	Name *string `json:"name"`
}

// Genre classifies a movie (e.g. "Drama", "Science Fiction").
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Actor is a cast member credited on a movie.
type Actor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Language is a spoken language credited on a movie.
type Language struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
