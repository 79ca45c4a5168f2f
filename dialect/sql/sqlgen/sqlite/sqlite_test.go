package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sequelgo/sequelgo/dialect/sql/sqlgen"
)

func TestCreateTable(t *testing.T) {
	g := New()
	st, err := g.CreateTable(sqlgen.Table("t"), []sqlgen.Column{
		{Name: "id", Type: "INTEGER", PrimaryKey: true, AutoIncrement: true},
		{Name: "name", Type: "TEXT"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		`CREATE TABLE IF NOT EXISTS "t" ("id" INTEGER PRIMARY KEY AUTOINCREMENT, "name" TEXT NOT NULL);`,
		st.Query)
}

func TestCreateTableBooleanDefaults(t *testing.T) {
	g := New()
	st, err := g.CreateTable(sqlgen.Table("flags"), []sqlgen.Column{
		{Name: "id", Type: "INTEGER", PrimaryKey: true},
		{Name: "enabled", Type: "BOOLEAN", Default: true},
		// Raw string defaults arrive as text and are caught by the
		// post transform instead of the literal escaper.
		{Name: "hidden", Type: "BOOLEAN", Default: "false"},
	})
	require.NoError(t, err)
	assert.Contains(t, st.Query, `"enabled" BOOLEAN NOT NULL DEFAULT 1`)
	assert.Contains(t, st.Query, `"hidden" BOOLEAN NOT NULL DEFAULT 0`)
	assert.NotContains(t, st.Query, "true")
	assert.NotContains(t, st.Query, "false")
}

func TestRewriteBooleanDefaultsIdempotent(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{`"a" BOOLEAN DEFAULT true, "b" BOOLEAN DEFAULT false`, `"a" BOOLEAN DEFAULT 1, "b" BOOLEAN DEFAULT 0`},
		{`"a" BOOLEAN DEFAULT 'true')`, `"a" BOOLEAN DEFAULT 1)`},
		{`"a" BOOLEAN DEFAULT 'FALSE')`, `"a" BOOLEAN DEFAULT 0)`},
		// Not boolean-like: left alone.
		{`"a" TEXT DEFAULT 'truest')`, `"a" TEXT DEFAULT 'truest')`},
		{`"a" INTEGER DEFAULT 1)`, `"a" INTEGER DEFAULT 1)`},
	} {
		once := RewriteBooleanDefaults(tt.in)
		assert.Equal(t, tt.want, once, "input %q", tt.in)
		assert.Equal(t, once, RewriteBooleanDefaults(once), "rewrite must be idempotent for %q", tt.in)
	}
}

func TestSchemaOperationsRejected(t *testing.T) {
	g := New()
	_, err := g.CreateSchema("app")
	assert.True(t, sqlgen.IsCapabilityError(err))

	_, err = g.CreateTable(sqlgen.SchemaTable("app", "users"), []sqlgen.Column{{Name: "id", Type: "INTEGER"}})
	assert.True(t, sqlgen.IsCapabilityError(err))

	assert.Equal(t, sqlgen.Unsupported, g.Supports(sqlgen.OpCreateSchema))
	assert.Equal(t, sqlgen.Unsupported, g.Supports(sqlgen.OpShowSchemas))
}

func TestDeleteWithLimit(t *testing.T) {
	g := New()
	st, err := g.Delete(sqlgen.Table("users"), sqlgen.EQ("name", "ada"), sqlgen.Options{Limit: 1})
	require.NoError(t, err)
	// No trailing LIMIT on DELETE; the cap runs through a rowid subquery.
	assert.Equal(t,
		`DELETE FROM "users" WHERE rowid IN (SELECT rowid FROM "users" WHERE "name" = ? LIMIT 1);`,
		st.Query)
	assert.Equal(t, []any{"ada"}, st.Args)
}

func TestUpdateWithLimit(t *testing.T) {
	g := New()
	st, err := g.Update(sqlgen.Table("users"),
		[]sqlgen.ColumnValue{{Column: "active", Value: false}},
		sqlgen.EQ("role", "guest"),
		sqlgen.Options{Limit: 5},
	)
	require.NoError(t, err)
	assert.Equal(t,
		`UPDATE "users" SET "active" = ? WHERE rowid IN (SELECT rowid FROM "users" WHERE "role" = ? LIMIT 5);`,
		st.Query)
	assert.Equal(t, []any{false, "guest"}, st.Args)
}

func TestLimitOffsetSentinel(t *testing.T) {
	g := New()
	assert.Equal(t, "LIMIT -1 OFFSET 20", g.LimitOffset(sqlgen.Options{Offset: 20}))
}

func TestRemoveColumnRebuild(t *testing.T) {
	g := New()
	cols := []sqlgen.Column{
		{Name: "id", Type: "INTEGER", PrimaryKey: true},
		{Name: "name", Type: "TEXT"},
		{Name: "age", Type: "INTEGER", Nullable: true},
	}
	plan, err := g.RemoveColumn(sqlgen.Table("users"), cols, "age")
	require.NoError(t, err)
	require.Len(t, plan.Statements, 4)
	assert.Equal(t,
		`CREATE TABLE IF NOT EXISTS "users_backup" ("id" INTEGER PRIMARY KEY, "name" TEXT NOT NULL);`,
		plan.Statements[0].Query)
	// The insert selects only the surviving columns, never the removed one.
	assert.Equal(t,
		`INSERT INTO "users_backup" SELECT "id", "name" FROM "users";`,
		plan.Statements[1].Query)
	assert.Equal(t, `DROP TABLE "users";`, plan.Statements[2].Query)
	assert.Equal(t, `ALTER TABLE "users_backup" RENAME TO "users";`, plan.Statements[3].Query)
}

func TestRemoveColumnMissing(t *testing.T) {
	g := New()
	_, err := g.RemoveColumn(sqlgen.Table("users"),
		[]sqlgen.Column{{Name: "id", Type: "INTEGER"}}, "nope")
	assert.True(t, sqlgen.IsPreconditionError(err))

	_, err = g.RemoveColumn(sqlgen.Table("users"),
		[]sqlgen.Column{{Name: "id", Type: "INTEGER"}}, "id")
	assert.True(t, sqlgen.IsPreconditionError(err))
}

func TestRenameColumnRebuild(t *testing.T) {
	g := New()
	cols := []sqlgen.Column{
		{Name: "id", Type: "INTEGER", PrimaryKey: true},
		{Name: "nick", Type: "TEXT"},
	}
	plan, err := g.RenameColumn(sqlgen.Table("users"), cols, "nick", "nickname")
	require.NoError(t, err)
	require.Len(t, plan.Statements, 4)
	assert.Contains(t, plan.Statements[0].Query, `"nickname" TEXT NOT NULL`)
	// The select list aliases the old column to the new one so data
	// lands in the correct destination column.
	assert.Equal(t,
		`INSERT INTO "users_backup" SELECT "id", "nick" AS "nickname" FROM "users";`,
		plan.Statements[1].Query)
}

func TestChangeColumnRebuild(t *testing.T) {
	g := New()
	cols := []sqlgen.Column{
		{Name: "id", Type: "INTEGER", PrimaryKey: true},
		{Name: "note", Type: "TEXT", Nullable: true},
	}
	plan, err := g.ChangeColumn(sqlgen.Table("users"), cols,
		sqlgen.Column{Name: "note", Type: "TEXT", Default: "n/a"})
	require.NoError(t, err)
	require.Len(t, plan.Statements, 4)
	assert.Contains(t, plan.Statements[0].Query, `"note" TEXT NOT NULL DEFAULT 'n/a'`)
}

func TestTruncateEmulation(t *testing.T) {
	g := New()
	plan, err := g.Truncate(sqlgen.Table("users"), sqlgen.Options{})
	require.NoError(t, err)
	require.Len(t, plan.Statements, 1)
	assert.Equal(t, `DELETE FROM "users";`, plan.Statements[0].Query)

	plan, err = g.Truncate(sqlgen.Table("users"), sqlgen.Options{RestartIdentity: true})
	require.NoError(t, err)
	require.Len(t, plan.Statements, 2)
	assert.Equal(t, `DELETE FROM sqlite_sequence WHERE name = ?;`, plan.Statements[1].Query)
	assert.Equal(t, []any{"users"}, plan.Statements[1].Args)
}

func TestIntrospection(t *testing.T) {
	g := New()

	st, err := g.ShowTables()
	require.NoError(t, err)
	assert.Contains(t, st.Query, "sqlite_master")

	st, err = g.DescribeTable(sqlgen.Table("users"))
	require.NoError(t, err)
	assert.Equal(t, `PRAGMA table_info("users");`, st.Query)

	st, err = g.ShowIndexes(sqlgen.Table("users"))
	require.NoError(t, err)
	assert.Equal(t, `PRAGMA index_list("users");`, st.Query)

	st, err = g.ForeignKeys(sqlgen.Table("users"))
	require.NoError(t, err)
	assert.Equal(t, `PRAGMA foreign_key_list("users");`, st.Query)

	st, err = g.ShowConstraints(sqlgen.Table("users"))
	require.NoError(t, err)
	assert.Equal(t, `SELECT sql FROM sqlite_master WHERE type = 'table' AND tbl_name = ?;`, st.Query)
	assert.Equal(t, []any{"users"}, st.Args)

	st, err = g.Version()
	require.NoError(t, err)
	assert.Equal(t, "SELECT sqlite_version() AS version;", st.Query)
}

func TestIsolationLevels(t *testing.T) {
	g := New()

	st, err := g.SetIsolationLevel(sqlgen.ReadUncommitted)
	require.NoError(t, err)
	assert.Equal(t, "PRAGMA read_uncommitted = ON;", st.Query)

	st, err = g.SetIsolationLevel(sqlgen.ReadCommitted)
	require.NoError(t, err)
	assert.Equal(t, "PRAGMA read_uncommitted = OFF;", st.Query)

	// SERIALIZABLE is the default and maps to a no-op comment.
	st, err = g.SetIsolationLevel(sqlgen.Serializable)
	require.NoError(t, err)
	assert.Contains(t, st.Query, "--")

	_, err = g.SetIsolationLevel(sqlgen.RepeatableRead)
	require.Error(t, err)
	assert.True(t, sqlgen.IsCapabilityError(err))
}

func TestBeginModes(t *testing.T) {
	g := New()

	st, err := g.Begin(sqlgen.BeginOptions{Mode: "IMMEDIATE"})
	require.NoError(t, err)
	assert.Equal(t, "BEGIN IMMEDIATE TRANSACTION;", st.Query)

	_, err = g.Begin(sqlgen.BeginOptions{Mode: "BOGUS"})
	assert.True(t, sqlgen.IsCapabilityError(err))
}
