package reference

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx operations shared by *pgxpool.Pool and pgx.Tx.
// Resolver methods accept it so reference rows can be created inside the
// caller's transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository provides read access to the reference tables.
type Repository interface {
	ListCountries(ctx context.Context) ([]*Country, error)
	ListGenres(ctx context.Context) ([]*Genre, error)
	ListActors(ctx context.Context) ([]*Actor, error)
	ListLanguages(ctx context.Context) ([]*Language, error)
}

// Resolver looks up a reference entity by its natural key, creating the row
// when it does not exist yet. Resolving the same value twice yields the same
// row. Lookups are case-sensitive and values are used exactly as given.
type Resolver interface {
	ResolveCountry(ctx context.Context, db DBTX, code string) (*Country, error)
	ResolveGenre(ctx context.Context, db DBTX, name string) (*Genre, error)
	ResolveActor(ctx context.Context, db DBTX, name string) (*Actor, error)
	ResolveLanguage(ctx context.Context, db DBTX, name string) (*Language, error)
}
