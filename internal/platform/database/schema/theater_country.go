package schema

// RefCountryTable represents the 'theater.country' table
type RefCountryTable struct {
	Table string
	ID    string
	Code  string
	Name  string
}

// RefCountry is the schema definition for theater.country
var RefCountry = RefCountryTable{
	Table: "theater.country",
	ID:    "id",
	Code:  "code",
	Name:  "name",
}

func (t RefCountryTable) Columns() []string { return []string{t.ID, t.Code, t.Name} }
