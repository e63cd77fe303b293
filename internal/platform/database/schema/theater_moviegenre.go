package schema

// MovieGenreTable represents the 'theater.movie_genres' junction table
type MovieGenreTable struct {
	Table    string
	MovieID  string
	GenreID  string
	Position string
}

// MovieGenre is the schema definition for theater.movie_genres
var MovieGenre = MovieGenreTable{
	Table:    "theater.movie_genres",
	MovieID:  "movieid",
	GenreID:  "genreid",
	Position: "position",
}
