// Package dialect provides the database dialect abstraction for sequelgo.
//
// This package defines the interfaces and name constants used for
// database-specific operations, allowing the query-generation engine to
// target multiple backends.
//
// # Dialect Constants
//
// Each dialect is identified by a constant string:
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// # Driver Interface
//
// The package defines the Driver interface for database operations:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// The Tx interface extends ExecQuerier with Commit and Rollback, and the
// ExecQuerier interface is implemented by both Driver and Tx.
//
// # Sub-packages
//
//   - dialect/sql: database/sql driver wrapper and plan execution
//   - dialect/sql/sqlgen: dialect-aware SQL statement generation
//   - dialect/sql/sqljson: JSON path translation and validation
package dialect
