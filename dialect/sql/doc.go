// Package sql provides a thin wrapper around database/sql implementing
// the dialect.Driver interface, plus helpers for executing generated
// statements and plans.
//
// Opening a connection:
//
//	drv, err := sql.Open(dialect.SQLite, "file:app.db?_pragma=foreign_keys(1)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Close()
//
// Executing a multi-statement plan atomically:
//
//	plan, err := gen.RemoveColumn(sqlgen.Table("users"), cols, "age")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := sql.ExecPlan(ctx, drv, plan); err != nil {
//	    log.Fatal(err)
//	}
//
// The DebugDriver wraps a Driver with slog-based statement logging.
package sql
