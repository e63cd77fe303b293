package schema

// RefActorTable represents the 'theater.actor' table
type RefActorTable struct {
	Table string
	ID    string
	Name  string
}

// RefActor is the schema definition for theater.actor
var RefActor = RefActorTable{
	Table: "theater.actor",
	ID:    "id",
	Name:  "name",
}

func (t RefActorTable) Columns() []string { return []string{t.ID, t.Name} }
