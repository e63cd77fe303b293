package schema

// RefLanguageTable represents the 'theater.language' table
type RefLanguageTable struct {
	Table string
	ID    string
	Name  string
}

// RefLanguage is the schema definition for theater.language
var RefLanguage = RefLanguageTable{
	Table: "theater.language",
	ID:    "id",
	Name:  "name",
}

func (t RefLanguageTable) Columns() []string { return []string{t.ID, t.Name} }
