// Package sqlite provides an API access store backed by SQLite through the
// pure-Go modernc.org/sqlite driver. Uniqueness checks and writes run inside a
// single transaction, and UNIQUE indexes back them up.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/api-access-service/internal/domain"
	"github.com/jsamuelsen11/api-access-service/internal/domain/apiaccess"
	"github.com/jsamuelsen11/api-access-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.APIAccessStore = (*Store)(nil)
	_ ports.HealthChecker  = (*Store)(nil)
)

// Store implements ports.APIAccessStore on a SQLite database.
type Store struct {
	db *sql.DB
}

// New opens the database at dsn. Callers must run ApplyMigrations before use.
// The pool is capped at one connection so that ":memory:" databases are
// shared and writers are serialised.
func New(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %q: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configuring sqlite: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "sqlite" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: sqlite ping: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// Add inserts a new API access.
func (s *Store) Add(ctx context.Context, a apiaccess.APIAccess) (apiaccess.ID, error) {
	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := checkUnique(ctx, tx, a, 0, true, true); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO api_access (client_name, api_client_id, enabled, description) VALUES (?, ?, ?, ?)`,
			a.ClientName, a.APIClientID, a.Enabled, a.Description,
		)
		if err != nil {
			return mapConstraint(fmt.Errorf("inserting api access: %w", err))
		}

		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return apiaccess.ID(id), nil
}

// Get reads one API access.
func (s *Store) Get(ctx context.Context, id apiaccess.ID) (apiaccess.APIAccess, error) {
	return getAPIAccess(ctx, s.db, id)
}

// Update applies the present patch fields.
func (s *Store) Update(ctx context.Context, id apiaccess.ID, patch apiaccess.Patch) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := getAPIAccess(ctx, tx, id)
		if err != nil {
			return err
		}

		next := patch.Apply(current)
		if err := checkUnique(ctx, tx, next, id,
			patch.Has(apiaccess.FieldClientName),
			patch.Has(apiaccess.FieldAPIClientID),
		); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE api_access
			    SET client_name = ?, api_client_id = ?, enabled = ?, description = ?,
			        updated_at = CURRENT_TIMESTAMP
			  WHERE id = ?`,
			next.ClientName, next.APIClientID, next.Enabled, next.Description, int64(id),
		)
		if err != nil {
			return mapConstraint(fmt.Errorf("updating api access %d: %w", int64(id), err))
		}
		return nil
	})
}

// withTx runs fn in a transaction, committing on success.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getAPIAccess(ctx context.Context, q querier, id apiaccess.ID) (apiaccess.APIAccess, error) {
	var a apiaccess.APIAccess
	var rawID int64
	err := q.QueryRowContext(ctx,
		`SELECT id, client_name, api_client_id, enabled, description FROM api_access WHERE id = ?`,
		int64(id),
	).Scan(&rawID, &a.ClientName, &a.APIClientID, &a.Enabled, &a.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return apiaccess.APIAccess{}, &apiaccess.NotFoundError{ID: id}
	}
	if err != nil {
		return apiaccess.APIAccess{}, fmt.Errorf("reading api access %d: %w", int64(id), err)
	}
	a.ID = apiaccess.ID(rawID)
	return a, nil
}

// checkUnique looks for another row holding the candidate's client name, then
// its client id. self is excluded so an entity never conflicts with itself.
func checkUnique(ctx context.Context, q querier, candidate apiaccess.APIAccess, self apiaccess.ID, name, clientID bool) error {
	if name {
		taken, err := exists(ctx, q, `client_name`, candidate.ClientName, self)
		if err != nil {
			return err
		}
		if taken {
			return apiaccess.NewConstraintError(apiaccess.FieldClientName, apiaccess.KindAlreadyUsed)
		}
	}
	if clientID {
		taken, err := exists(ctx, q, `api_client_id`, candidate.APIClientID, self)
		if err != nil {
			return err
		}
		if taken {
			return apiaccess.NewConstraintError(apiaccess.FieldAPIClientID, apiaccess.KindAlreadyUsed)
		}
	}
	return nil
}

// exists reports whether a row other than self has column = value. column is
// always a constant from checkUnique, never caller input.
func exists(ctx context.Context, q querier, column, value string, self apiaccess.ID) (bool, error) {
	var found bool
	query := `SELECT EXISTS (SELECT 1 FROM api_access WHERE ` + column + ` = ? AND id <> ?)`
	if err := q.QueryRowContext(ctx, query, value, int64(self)).Scan(&found); err != nil {
		return false, fmt.Errorf("checking %s uniqueness: %w", column, err)
	}
	return found, nil
}

// uniqueColumns maps the columns of the UNIQUE indexes to their fields.
var uniqueColumns = map[string]apiaccess.Field{
	"api_access.client_name":   apiaccess.FieldClientName,
	"api_access.api_client_id": apiaccess.FieldAPIClientID,
}

// mapConstraint translates UNIQUE index violations into constraint errors.
// The driver reports the failing column only in the message text, after the
// result code has identified the violation.
func mapConstraint(err error) error {
	var serr *sqlite.Error
	if !errors.As(err, &serr) || serr.Code() != sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return err
	}
	msg := serr.Error()
	for column, field := range uniqueColumns {
		if strings.Contains(msg, column) {
			return apiaccess.NewConstraintError(field, apiaccess.KindAlreadyUsed)
		}
	}
	return err
}
