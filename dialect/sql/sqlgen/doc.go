// Package sqlgen turns abstract, dialect-independent database
// operations into syntactically correct, safely escaped SQL text for a
// specific backend grammar.
//
// A Generator is constructed from a Features struct describing the
// dialect's capabilities and an Overrides hook table replacing the
// divergent fragments. The full operation set is resolved to a support
// table (Native, Emulated or Unsupported) once, at construction time;
// requesting an unsupported operation yields a CapabilityError rather
// than wrong SQL.
//
// The package is pure computation: no I/O, no blocking, no shared
// mutable state across calls. Generation calls on one Generator may run
// concurrently without coordination. Multi-statement plans produced by
// capability emulation must be executed in order inside a single
// transaction; dialect/sql.ExecPlan does exactly that.
//
// Ready-made dialects live in the sqlite and postgres sub-packages.
package sqlgen
