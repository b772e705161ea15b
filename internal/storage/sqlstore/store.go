// Package sqlstore implements the storage queries shared by the SQLite and
// PostgreSQL backends. Dialect differences are limited to the placeholder
// format and the mapping of constraint errors.
package sqlstore

import (
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/julianstephens/cadence/internal/storage"
)

const (
	categoriesTable  = "categories"
	tasksTable       = "todos"
	completionsTable = "todo_completions"
)

// ErrorClassifier maps a driver error to storage.ErrConflict or
// storage.ErrReferenced, returning err unchanged otherwise.
type ErrorClassifier func(err error) error

type Store struct {
	db       *sqlx.DB
	builder  sq.StatementBuilderType
	classify ErrorClassifier
}

func New(db *sqlx.DB, placeholder sq.PlaceholderFormat, classify ErrorClassifier) *Store {
	if classify == nil {
		classify = func(err error) error { return err }
	}
	return &Store{
		db:       db,
		builder:  sq.StatementBuilder.PlaceholderFormat(placeholder),
		classify: classify,
	}
}

// DB returns the underlying connection.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	return err
}

// requireRow converts a zero-row write into storage.ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
