package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nvbach/theater/internal/platform/database/schema"
	"github.com/nvbach/theater/internal/platform/dberr"
)

// PostgresRepository implements [Repository] and [Resolver] against the
// theater reference tables.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Listings

func (repository *PostgresRepository) ListCountries(context context.Context) ([]*Country, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.RefCountry.ID,
		schema.RefCountry.Code,
		schema.RefCountry.Name,
		schema.RefCountry.Table,
		schema.RefCountry.Code,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_countries")
	}
	defer rows.Close()

	var countries []*Country
	for rows.Next() {
		c := &Country{}
		if err := rows.Scan(&c.ID, &c.Code, &c.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_country")
		}
		countries = append(countries, c)
	}

	return countries, nil
}

func (repository *PostgresRepository) ListGenres(context context.Context) ([]*Genre, error) {
	rows, err := repository.listNamed(context, schema.RefGenre.Table, schema.RefGenre.ID, schema.RefGenre.Name)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	var genres []*Genre
	for rows.Next() {
		g := &Genre{}
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, g)
	}

	return genres, nil
}

func (repository *PostgresRepository) ListActors(context context.Context) ([]*Actor, error) {
	rows, err := repository.listNamed(context, schema.RefActor.Table, schema.RefActor.ID, schema.RefActor.Name)
	if err != nil {
		return nil, dberr.Wrap(err, "list_actors")
	}
	defer rows.Close()

	var actors []*Actor
	for rows.Next() {
		a := &Actor{}
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_actor")
		}
		actors = append(actors, a)
	}

	return actors, nil
}

func (repository *PostgresRepository) ListLanguages(context context.Context) ([]*Language, error) {
	rows, err := repository.listNamed(context, schema.RefLanguage.Table, schema.RefLanguage.ID, schema.RefLanguage.Name)
	if err != nil {
		return nil, dberr.Wrap(err, "list_languages")
	}
	defer rows.Close()

	var langs []*Language
	for rows.Next() {
		l := &Language{}
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_language")
		}
		langs = append(langs, l)
	}

	return langs, nil
}

func (repository *PostgresRepository) listNamed(context context.Context, table, idCol, nameCol string) (pgx.Rows, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC;
	`, idCol, nameCol, table, nameCol)

	return repository.db.Query(context, query)
}

// # Get-or-Create Resolution

/*
ResolveCountry returns the country row for the given ISO code, inserting it
when absent.

Description: The insert uses ON CONFLICT DO NOTHING so two concurrent
resolutions of the same code converge on a single row; the loser of the race
falls back to the follow-up select. The country name stays NULL until an
external enrichment fills it in.

Parameters:
  - context: context.Context
  - db: DBTX (pool or the caller's open transaction)
  - code: string (ISO 3166-1 alpha-2)

Returns:
  - *Country: The existing or freshly created row
  - error: Repository level errors
*/
func (repository *PostgresRepository) ResolveCountry(context context.Context, db DBTX, code string) (*Country, error) {
	selectQuery := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.RefCountry.ID,
		schema.RefCountry.Code,
		schema.RefCountry.Name,
		schema.RefCountry.Table,
		schema.RefCountry.Code,
	)

	country := &Country{}
	err := db.QueryRow(context, selectQuery, code).Scan(&country.ID, &country.Code, &country.Name)
	if err == nil {
		return country, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, dberr.Wrap(err, "resolve_country")
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1)
		ON CONFLICT (%s) DO NOTHING
		RETURNING %s, %s, %s;
	`,
		schema.RefCountry.Table,
		schema.RefCountry.Code,
		schema.RefCountry.Code,
		schema.RefCountry.ID,
		schema.RefCountry.Code,
		schema.RefCountry.Name,
	)

	err = db.QueryRow(context, insertQuery, code).Scan(&country.ID, &country.Code, &country.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		// Lost the race to a concurrent insert; the row exists now.
		err = db.QueryRow(context, selectQuery, code).Scan(&country.ID, &country.Code, &country.Name)
	}
	if err != nil {
		return nil, dberr.Wrap(err, "resolve_country")
	}

	return country, nil
}

// ResolveGenre returns the genre row for the given name, inserting it when absent.
func (repository *PostgresRepository) ResolveGenre(context context.Context, db DBTX, name string) (*Genre, error) {
	id, err := repository.resolveNamed(context, db, schema.RefGenre.Table, schema.RefGenre.ID, schema.RefGenre.Name, name)
	if err != nil {
		return nil, dberr.Wrap(err, "resolve_genre")
	}
	return &Genre{ID: id, Name: name}, nil
}

// ResolveActor returns the actor row for the given name, inserting it when absent.
func (repository *PostgresRepository) ResolveActor(context context.Context, db DBTX, name string) (*Actor, error) {
	id, err := repository.resolveNamed(context, db, schema.RefActor.Table, schema.RefActor.ID, schema.RefActor.Name, name)
	if err != nil {
		return nil, dberr.Wrap(err, "resolve_actor")
	}
	return &Actor{ID: id, Name: name}, nil
}

// ResolveLanguage returns the language row for the given name, inserting it when absent.
func (repository *PostgresRepository) ResolveLanguage(context context.Context, db DBTX, name string) (*Language, error) {
	id, err := repository.resolveNamed(context, db, schema.RefLanguage.Table, schema.RefLanguage.ID, schema.RefLanguage.Name, name)
	if err != nil {
		return nil, dberr.Wrap(err, "resolve_language")
	}
	return &Language{ID: id, Name: name}, nil
}

// resolveNamed is the shared get-or-create path for the name-keyed tables
// (genre, actor, language), which all have the same two-column shape.
func (repository *PostgresRepository) resolveNamed(context context.Context, db DBTX, table, idCol, nameCol, name string) (int, error) {
	selectQuery := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1;
	`, idCol, table, nameCol)

	var id int
	err := db.QueryRow(context, selectQuery, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1)
		ON CONFLICT (%s) DO NOTHING
		RETURNING %s;
	`, table, nameCol, nameCol, idCol)

	err = db.QueryRow(context, insertQuery, name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		// Lost the race to a concurrent insert; the row exists now.
		err = db.QueryRow(context, selectQuery, name).Scan(&id)
	}
	if err != nil {
		return 0, err
	}

	return id, nil
}
