// Package sqlite configures the query-generation engine for the SQLite
// grammar, the most divergent of the supported dialects: no schema
// namespaces, no native ALTER COLUMN forms (emulated by rebuilding the
// table), no TRUNCATE, no boolean literals, no LIMIT on UPDATE/DELETE,
// and catalog introspection through PRAGMA statements.
package sqlite

import (
	"github.com/sequelgo/sequelgo/dialect"
	"github.com/sequelgo/sequelgo/dialect/sql/sqlgen"
)

// Features returns the SQLite capability description.
func Features() sqlgen.Features {
	return sqlgen.Features{
		Name:                   dialect.SQLite,
		IdentQuote:             '"',
		Placeholder:            sqlgen.Question,
		NativeBoolean:          false,
		TemporalLiterals:       false,
		Schemas:                false,
		AlterColumn:            false,
		DMLLimit:               false,
		RowID:                  "rowid",
		LimitRequiredForOffset: true,
		UnboundedLimit:         "-1",
		Truncate:               false,
		RestartIdentity:        false,
		CreateIfNotExists:      true,
		AutoIncrement:          "AUTOINCREMENT",
		TxModes:                []string{"DEFERRED", "IMMEDIATE", "EXCLUSIVE"},
	}
}

// New returns a Generator targeting SQLite.
func New() *sqlgen.Generator {
	return sqlgen.New(Features(), sqlgen.Overrides{
		PostDDL:         RewriteBooleanDefaults,
		ShowTables:      showTables,
		ShowIndexes:     showIndexes,
		DescribeTable:   describeTable,
		ShowConstraints: showConstraints,
		ForeignKeys:     foreignKeys,
		Version:         version,
		Truncate:        truncate,
		IsolationLevel:  isolationLevel,
	})
}

func showTables(*sqlgen.Generator) (sqlgen.Statement, error) {
	return sqlgen.Statement{
		Query: "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name;",
	}, nil
}

func showIndexes(g *sqlgen.Generator, t sqlgen.TableName) (sqlgen.Statement, error) {
	tbl, err := g.QuoteTable(t)
	if err != nil {
		return sqlgen.Statement{}, err
	}
	return sqlgen.Statement{Query: "PRAGMA index_list(" + tbl + ");"}, nil
}

func describeTable(g *sqlgen.Generator, t sqlgen.TableName) (sqlgen.Statement, error) {
	tbl, err := g.QuoteTable(t)
	if err != nil {
		return sqlgen.Statement{}, err
	}
	return sqlgen.Statement{Query: "PRAGMA table_info(" + tbl + ");"}, nil
}

// showConstraints returns the defining SQL of the table; SQLite keeps
// constraint definitions only inside the original CREATE statement.
func showConstraints(g *sqlgen.Generator, t sqlgen.TableName) (sqlgen.Statement, error) {
	if t.Name == "" {
		return sqlgen.Statement{}, sqlgen.NewMalformedInputError("empty table name", nil)
	}
	if t.Schema != "" {
		return sqlgen.Statement{}, sqlgen.NewCapabilityError(g.Dialect(), "schema-qualified table names")
	}
	b := sqlgen.NewBinder(sqlgen.Question)
	return sqlgen.Statement{
		Query: "SELECT sql FROM sqlite_master WHERE type = 'table' AND tbl_name = " + b.Add(t.Name) + ";",
		Args:  b.Args(),
	}, nil
}

func foreignKeys(g *sqlgen.Generator, t sqlgen.TableName) (sqlgen.Statement, error) {
	tbl, err := g.QuoteTable(t)
	if err != nil {
		return sqlgen.Statement{}, err
	}
	return sqlgen.Statement{Query: "PRAGMA foreign_key_list(" + tbl + ");"}, nil
}

func version(*sqlgen.Generator) (sqlgen.Statement, error) {
	return sqlgen.Statement{Query: "SELECT sqlite_version() AS version;"}, nil
}

// truncate emulates TRUNCATE with DELETE. With RestartIdentity the
// sqlite_sequence row of the table is removed as well, resetting its
// AUTOINCREMENT counter.
func truncate(g *sqlgen.Generator, t sqlgen.TableName, opts sqlgen.Options) (sqlgen.Plan, error) {
	tbl, err := g.QuoteTable(t)
	if err != nil {
		return sqlgen.Plan{}, err
	}
	stmts := []sqlgen.Statement{{Query: "DELETE FROM " + tbl + ";"}}
	if opts.RestartIdentity {
		b := sqlgen.NewBinder(sqlgen.Question)
		stmts = append(stmts, sqlgen.Statement{
			Query: "DELETE FROM sqlite_sequence WHERE name = " + b.Add(t.Name) + ";",
			Args:  b.Args(),
		})
	}
	return sqlgen.Plan{Statements: stmts}, nil
}

// isolationLevel maps levels onto PRAGMA read_uncommitted. SERIALIZABLE
// is SQLite's default and maps to a no-op comment; REPEATABLE READ has
// no representation at all.
func isolationLevel(g *sqlgen.Generator, l sqlgen.IsolationLevel) (sqlgen.Statement, error) {
	switch l {
	case sqlgen.ReadUncommitted:
		return sqlgen.Statement{Query: "PRAGMA read_uncommitted = ON;"}, nil
	case sqlgen.ReadCommitted:
		return sqlgen.Statement{Query: "PRAGMA read_uncommitted = OFF;"}, nil
	case sqlgen.Serializable:
		return sqlgen.Statement{Query: "-- SQLite's default isolation level is SERIALIZABLE"}, nil
	default:
		return sqlgen.Statement{}, sqlgen.NewCapabilityError(g.Dialect(), "isolation level "+l.String())
	}
}
