// Package repoerr defines the error taxonomy shared by the storage and
// ingestion layers. Handlers map these onto HTTP statuses.
package repoerr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound reports that a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// StockUpdateError reports a failed archive refresh for one working
// directory. The run it belongs to is rolled back entirely.
type StockUpdateError struct {
	Dir string
	Err error
}

func (e *StockUpdateError) Error() string {
	return fmt.Sprintf("stock update failed for %s: %v", e.Dir, e.Err)
}

func (e *StockUpdateError) Unwrap() error { return e.Err }

// ReadError reports a failed read-side query.
type ReadError struct {
	Op  string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// SQLState extracts the Postgres SQLSTATE code from err, if any.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
