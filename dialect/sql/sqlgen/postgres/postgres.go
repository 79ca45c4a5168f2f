// Package postgres configures the query-generation engine for the
// PostgreSQL grammar. Nearly every operation of the abstract set maps
// to a native statement, so the dialect mostly exercises the Native row
// of the capability table: dollar placeholders, TRUE/FALSE literals,
// schema namespaces, native ALTER forms and TRUNCATE ... RESTART
// IDENTITY.
package postgres

import (
	"github.com/sequelgo/sequelgo/dialect"
	"github.com/sequelgo/sequelgo/dialect/sql/sqlgen"
)

// Features returns the PostgreSQL capability description.
func Features() sqlgen.Features {
	return sqlgen.Features{
		Name:             dialect.Postgres,
		IdentQuote:       '"',
		Placeholder:      sqlgen.Dollar,
		NativeBoolean:    true,
		TemporalLiterals: true,
		Schemas:          true,
		AlterColumn:      true,
		DMLLimit:         false,
		// ctid restricts UPDATE/DELETE row caps through a subquery;
		// postgres has no LIMIT clause on DML either.
		RowID:                  "ctid",
		LimitRequiredForOffset: false,
		Truncate:               true,
		RestartIdentity:        true,
		CreateIfNotExists:      false,
	}
}

// New returns a Generator targeting PostgreSQL.
func New() *sqlgen.Generator {
	return sqlgen.New(Features(), sqlgen.Overrides{
		ShowTables:  showTables,
		ShowIndexes: showIndexes,
		Version:     version,
	})
}

func showTables(*sqlgen.Generator) (sqlgen.Statement, error) {
	return sqlgen.Statement{
		Query: "SELECT table_name FROM information_schema.tables WHERE table_schema = current_schema() ORDER BY table_name;",
	}, nil
}

func showIndexes(g *sqlgen.Generator, t sqlgen.TableName) (sqlgen.Statement, error) {
	if t.Name == "" {
		return sqlgen.Statement{}, sqlgen.NewMalformedInputError("empty table name", nil)
	}
	b := sqlgen.NewBinder(sqlgen.Dollar)
	q := "SELECT indexname, indexdef FROM pg_indexes WHERE tablename = " + b.Add(t.Name)
	if t.Schema != "" {
		q += " AND schemaname = " + b.Add(t.Schema)
	}
	return sqlgen.Statement{Query: q + ";", Args: b.Args()}, nil
}

func version(*sqlgen.Generator) (sqlgen.Statement, error) {
	return sqlgen.Statement{Query: "SHOW server_version;"}, nil
}
