package schema

// RefGenreTable represents the 'theater.genre' table
type RefGenreTable struct {
	Table string
	ID    string
	Name  string
}

// RefGenre is the schema definition for theater.genre
var RefGenre = RefGenreTable{
	Table: "theater.genre",
	ID:    "id",
	Name:  "name",
}

func (t RefGenreTable) Columns() []string { return []string{t.ID, t.Name} }
