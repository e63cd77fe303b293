// Copyright (c) 2026 Theater. All rights reserved.
// Author: bach.nv.dev@gmail.com

package movie

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nvbach/theater/internal/core/reference"
	"github.com/nvbach/theater/internal/platform/database/schema"
	"github.com/nvbach/theater/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on top of pgx.
//
// Reference resolution happens through the injected [reference.Resolver]
// against the repository's own transactions, so a movie and its freshly
// created genres/actors/languages commit or roll back together.
type PostgresRepository struct {
	db       *pgxpool.Pool
	resolver reference.Resolver
}

// NewPostgresRepository constructs the movie store.
func NewPostgresRepository(db *pgxpool.Pool, resolver reference.Resolver) *PostgresRepository {
	return &PostgresRepository{db: db, resolver: resolver}
}

// # Reads

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s;`, schema.Movie.Table)

	var total int
	if err := repository.db.QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_movies")
	}

	return total, nil
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Summary, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2;
	`,
		schema.Movie.ID,
		schema.Movie.Name,
		schema.Movie.Date,
		schema.Movie.Score,
		schema.Movie.Overview,
		schema.Movie.Table,
		schema.Movie.ID,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, dberr.Wrap(err, "list_movies")
	}
	defer rows.Close()

	var movies []*Summary
	for rows.Next() {
		m := &Summary{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Date.Time, &m.Score, &m.Overview); err != nil {
			return nil, dberr.Wrap(err, "scan_movie_summary")
		}
		movies = append(movies, m)
	}

	return movies, nil
}

/*
FindByID hydrates the full movie aggregate in a single round trip.

Description: Employs Postgres json_agg sub-queries to collapse the three
junction tables into ordered JSON arrays, avoiding N+1 lookups. The
ORDER BY position clause inside each aggregate preserves the association
order exactly as it was submitted.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Movie: The aggregate with country, genres, actors and languages
  - error: errMovieNotFound when no row matches
*/
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Movie, error) {
	query := fmt.Sprintf(`
		SELECT
			m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s,
			c.%s, c.%s, c.%s,
			COALESCE((
				SELECT json_agg(json_build_object('id', g.%s, 'name', g.%s) ORDER BY mg.%s)
				FROM %s mg
				JOIN %s g ON g.%s = mg.%s
				WHERE mg.%s = m.%s
			), '[]'::json) AS genres,
			COALESCE((
				SELECT json_agg(json_build_object('id', a.%s, 'name', a.%s) ORDER BY ma.%s)
				FROM %s ma
				JOIN %s a ON a.%s = ma.%s
				WHERE ma.%s = m.%s
			), '[]'::json) AS actors,
			COALESCE((
				SELECT json_agg(json_build_object('id', l.%s, 'name', l.%s) ORDER BY ml.%s)
				FROM %s ml
				JOIN %s l ON l.%s = ml.%s
				WHERE ml.%s = m.%s
			), '[]'::json) AS languages
		FROM %s m
		JOIN %s c ON c.%s = m.%s
		WHERE m.%s = $1;
	`,
		schema.Movie.ID, schema.Movie.Name, schema.Movie.Date, schema.Movie.Score,
		schema.Movie.Overview, schema.Movie.Status, schema.Movie.Budget, schema.Movie.Revenue,
		schema.RefCountry.ID, schema.RefCountry.Code, schema.RefCountry.Name,
		schema.RefGenre.ID, schema.RefGenre.Name, schema.MovieGenre.Position,
		schema.MovieGenre.Table,
		schema.RefGenre.Table, schema.RefGenre.ID, schema.MovieGenre.GenreID,
		schema.MovieGenre.MovieID, schema.Movie.ID,
		schema.RefActor.ID, schema.RefActor.Name, schema.MovieActor.Position,
		schema.MovieActor.Table,
		schema.RefActor.Table, schema.RefActor.ID, schema.MovieActor.ActorID,
		schema.MovieActor.MovieID, schema.Movie.ID,
		schema.RefLanguage.ID, schema.RefLanguage.Name, schema.MovieLanguage.Position,
		schema.MovieLanguage.Table,
		schema.RefLanguage.Table, schema.RefLanguage.ID, schema.MovieLanguage.LanguageID,
		schema.MovieLanguage.MovieID, schema.Movie.ID,
		schema.Movie.Table,
		schema.RefCountry.Table, schema.RefCountry.ID, schema.Movie.CountryID,
		schema.Movie.ID,
	)

	movie := &Movie{Country: &reference.Country{}}
	err := repository.db.QueryRow(context, query, id).Scan(
		&movie.ID, &movie.Name, &movie.Date.Time, &movie.Score,
		&movie.Overview, &movie.Status, &movie.Budget, &movie.Revenue,
		&movie.Country.ID, &movie.Country.Code, &movie.Country.Name,
		&movie.Genres, &movie.Actors, &movie.Languages,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errMovieNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_movie")
	}

	return movie, nil
}

func (repository *PostgresRepository) ExistsByNameAndDate(context context.Context, name string, date Date, excludeID int64) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s
			WHERE %s = $1 AND %s = $2 AND %s <> $3
		);
	`,
		schema.Movie.Table,
		schema.Movie.Name, schema.Movie.Date, schema.Movie.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, name, date.Time, excludeID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_movie_duplicate")
	}

	return exists, nil
}

// # Writes

/*
Create persists a movie and its associations atomically.

Description: Opens a single transaction, resolves the country and the
association names to reference IDs (creating missing rows on demand),
inserts the movie row, then batch-inserts the junction rows carrying
their input positions. A unique-constraint violation on (name, date)
surfaces as [dberr.ErrDuplicate] for the service to translate.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - int64: The new movie ID
  - error: dberr.ErrDuplicate or wrapped repository errors
*/
func (repository *PostgresRepository) Create(context context.Context, input CreateInput) (int64, error) {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return 0, dberr.Wrap(err, "begin_create_movie")
	}
	defer transaction.Rollback(context)

	country, err := repository.resolver.ResolveCountry(context, transaction, input.Country)
	if err != nil {
		return 0, err
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s;
	`,
		schema.Movie.Table,
		schema.Movie.Name, schema.Movie.Date, schema.Movie.Score, schema.Movie.Overview,
		schema.Movie.Status, schema.Movie.Budget, schema.Movie.Revenue, schema.Movie.CountryID,
		schema.Movie.ID,
	)

	var id int64
	err = transaction.QueryRow(context, insertQuery,
		input.Name, input.Date.Time, input.Score, input.Overview,
		string(input.Status), input.Budget, input.Revenue, country.ID,
	).Scan(&id)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return 0, dberr.ErrDuplicate
		}
		return 0, dberr.Wrap(err, "insert_movie")
	}

	if err := repository.syncAssociations(context, transaction, id, input.Genres, input.Actors, input.Languages); err != nil {
		return 0, err
	}

	if err := transaction.Commit(context); err != nil {
		return 0, dberr.Wrap(err, "commit_create_movie")
	}

	return id, nil
}

/*
Update applies a partial mutation inside one transaction.

Description: Builds the SET clause dynamically from the non-nil fields.
The updated-at column is always touched, which doubles as the existence
probe: zero rows affected means the movie does not exist. Non-nil
association slices are resolved and fully replaced, preserving input order.

Parameters:
  - context: context.Context
  - id: int64
  - input: UpdateInput

Returns:
  - error: errMovieNotFound, dberr.ErrDuplicate, or wrapped repository errors
*/
func (repository *PostgresRepository) Update(context context.Context, id int64, input UpdateInput) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_movie")
	}
	defer transaction.Rollback(context)

	setClauses := []string{fmt.Sprintf("%s = NOW()", schema.Movie.UpdatedAt)}
	args := []any{}

	appendSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.Name != nil {
		appendSet(schema.Movie.Name, *input.Name)
	}
	if input.Date != nil {
		appendSet(schema.Movie.Date, input.Date.Time)
	}
	if input.Score != nil {
		appendSet(schema.Movie.Score, *input.Score)
	}
	if input.Overview != nil {
		appendSet(schema.Movie.Overview, *input.Overview)
	}
	if input.Status != nil {
		appendSet(schema.Movie.Status, string(*input.Status))
	}
	if input.Budget != nil {
		appendSet(schema.Movie.Budget, *input.Budget)
	}
	if input.Revenue != nil {
		appendSet(schema.Movie.Revenue, *input.Revenue)
	}
	if input.Country != nil {
		country, err := repository.resolver.ResolveCountry(context, transaction, *input.Country)
		if err != nil {
			return err
		}
		appendSet(schema.Movie.CountryID, country.ID)
	}

	args = append(args, id)
	updateQuery := fmt.Sprintf(`
		UPDATE %s
		SET %s
		WHERE %s = $%d;
	`,
		schema.Movie.Table,
		strings.Join(setClauses, ", "),
		schema.Movie.ID, len(args),
	)

	tag, err := transaction.Exec(context, updateQuery, args...)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return dberr.ErrDuplicate
		}
		return dberr.Wrap(err, "update_movie")
	}
	if tag.RowsAffected() == 0 {
		return errMovieNotFound
	}

	if input.Genres != nil {
		ids, err := repository.resolveGenres(context, transaction, input.Genres)
		if err != nil {
			return err
		}
		if err := repository.replaceJunction(context, transaction, schema.MovieGenre.Table, schema.MovieGenre.MovieID, schema.MovieGenre.GenreID, schema.MovieGenre.Position, id, ids); err != nil {
			return err
		}
	}
	if input.Actors != nil {
		ids, err := repository.resolveActors(context, transaction, input.Actors)
		if err != nil {
			return err
		}
		if err := repository.replaceJunction(context, transaction, schema.MovieActor.Table, schema.MovieActor.MovieID, schema.MovieActor.ActorID, schema.MovieActor.Position, id, ids); err != nil {
			return err
		}
	}
	if input.Languages != nil {
		ids, err := repository.resolveLanguages(context, transaction, input.Languages)
		if err != nil {
			return err
		}
		if err := repository.replaceJunction(context, transaction, schema.MovieLanguage.Table, schema.MovieLanguage.MovieID, schema.MovieLanguage.LanguageID, schema.MovieLanguage.Position, id, ids); err != nil {
			return err
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_update_movie")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`, schema.Movie.Table, schema.Movie.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_movie")
	}
	if tag.RowsAffected() == 0 {
		return errMovieNotFound
	}

	return nil
}

// # Association Helpers

// syncAssociations resolves and writes all three association lists for a
// freshly inserted movie.
func (repository *PostgresRepository) syncAssociations(context context.Context, transaction pgx.Tx, movieID int64, genres, actors, languages []string) error {
	genreIDs, err := repository.resolveGenres(context, transaction, genres)
	if err != nil {
		return err
	}
	if err := repository.replaceJunction(context, transaction, schema.MovieGenre.Table, schema.MovieGenre.MovieID, schema.MovieGenre.GenreID, schema.MovieGenre.Position, movieID, genreIDs); err != nil {
		return err
	}

	actorIDs, err := repository.resolveActors(context, transaction, actors)
	if err != nil {
		return err
	}
	if err := repository.replaceJunction(context, transaction, schema.MovieActor.Table, schema.MovieActor.MovieID, schema.MovieActor.ActorID, schema.MovieActor.Position, movieID, actorIDs); err != nil {
		return err
	}

	languageIDs, err := repository.resolveLanguages(context, transaction, languages)
	if err != nil {
		return err
	}
	return repository.replaceJunction(context, transaction, schema.MovieLanguage.Table, schema.MovieLanguage.MovieID, schema.MovieLanguage.LanguageID, schema.MovieLanguage.Position, movieID, languageIDs)
}

func (repository *PostgresRepository) resolveGenres(context context.Context, db reference.DBTX, names []string) ([]int, error) {
	ids := make([]int, 0, len(names))
	for _, name := range names {
		genre, err := repository.resolver.ResolveGenre(context, db, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, genre.ID)
	}
	return ids, nil
}

func (repository *PostgresRepository) resolveActors(context context.Context, db reference.DBTX, names []string) ([]int, error) {
	ids := make([]int, 0, len(names))
	for _, name := range names {
		actor, err := repository.resolver.ResolveActor(context, db, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, actor.ID)
	}
	return ids, nil
}

func (repository *PostgresRepository) resolveLanguages(context context.Context, db reference.DBTX, names []string) ([]int, error) {
	ids := make([]int, 0, len(names))
	for _, name := range names {
		language, err := repository.resolver.ResolveLanguage(context, db, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, language.ID)
	}
	return ids, nil
}

/*
replaceJunction synchronizes one many-to-many association list.

Description: Clears the movie's existing junction rows, then queues one
insert per reference ID through the pgx.Batch pipeline. The position
column records the input index so reads can restore the submitted order.
Duplicate entries in the input collapse via ON CONFLICT DO NOTHING, with
the first occurrence keeping its position.

Parameters:
  - context: context.Context
  - transaction: pgx.Tx
  - table, movieCol, refCol, posCol: string (Junction table layout)
  - movieID: int64
  - refIDs: []int (Resolved reference IDs in input order)

Returns:
  - error: Wrapped repository errors
*/
func (repository *PostgresRepository) replaceJunction(context context.Context, transaction pgx.Tx, table, movieCol, refCol, posCol string, movieID int64, refIDs []int) error {
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`, table, movieCol)
	if _, err := transaction.Exec(context, deleteQuery, movieID); err != nil {
		return dberr.Wrap(err, "clear_junction")
	}

	if len(refIDs) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING;
	`, table, movieCol, refCol, posCol)

	batch := &pgx.Batch{}
	for position, refID := range refIDs {
		batch.Queue(insertQuery, movieID, refID, position)
	}

	response := transaction.SendBatch(context, batch)
	defer response.Close()

	for range refIDs {
		if _, err := response.Exec(); err != nil {
			return dberr.Wrap(err, "insert_junction")
		}
	}

	return response.Close()
}
