package applier

import (
	"context"
	"database/sql"
)

// Execer is the minimal interface needed to define views on an execution
// engine. Implemented by *sql.DB, *sql.Tx, and *sql.Conn with any driver
// that speaks the target SQL dialect.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
