package schema

// MovieLanguageTable represents the 'theater.movie_languages' junction table
type MovieLanguageTable struct {
	Table      string
	MovieID    string
	LanguageID string
	Position   string
}

// MovieLanguage is the schema definition for theater.movie_languages
var MovieLanguage = MovieLanguageTable{
	Table:      "theater.movie_languages",
	MovieID:    "movieid",
	LanguageID: "languageid",
	Position:   "position",
}
