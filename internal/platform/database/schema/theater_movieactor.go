package schema

// MovieActorTable represents the 'theater.movie_actors' junction table
type MovieActorTable struct {
	Table    string
	MovieID  string
	ActorID  string
	Position string
}

// MovieActor is the schema definition for theater.movie_actors
var MovieActor = MovieActorTable{
	Table:    "theater.movie_actors",
	MovieID:  "movieid",
	ActorID:  "actorid",
	Position: "position",
}
