package sqlgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTableRequiresColumns(t *testing.T) {
	g := testGen()
	_, err := g.CreateTable(Table("empty"), nil)
	require.Error(t, err)
	assert.True(t, IsPreconditionError(err))
}

func TestCreateTableRejectsDuplicateColumns(t *testing.T) {
	g := testGen()
	_, err := g.CreateTable(Table("t"), []Column{
		{Name: "a", Type: "INTEGER"},
		{Name: "a", Type: "TEXT"},
	})
	assert.True(t, IsPreconditionError(err))
}

func TestCreateTableSinglePrimaryKey(t *testing.T) {
	g := testGen()
	st, err := g.CreateTable(Table("users"), []Column{
		{Name: "id", Type: "INTEGER", PrimaryKey: true},
		{Name: "name", Type: "TEXT"},
	})
	require.NoError(t, err)
	assert.Equal(t, `CREATE TABLE "users" ("id" INTEGER PRIMARY KEY, "name" TEXT NOT NULL);`, st.Query)
	assert.Empty(t, st.Args)
}

func TestCreateTableCompositePrimaryKey(t *testing.T) {
	g := testGen()
	st, err := g.CreateTable(Table("memberships"), []Column{
		{Name: "user_id", Type: "INTEGER", PrimaryKey: true},
		{Name: "group_id", Type: "INTEGER", PrimaryKey: true},
		{Name: "role", Type: "TEXT", Nullable: true, PrimaryKey: true},
	})
	require.NoError(t, err)
	// A single trailing constraint in declaration order, no inline markers.
	assert.Equal(t, 1, strings.Count(st.Query, "PRIMARY KEY"))
	assert.Contains(t, st.Query, `PRIMARY KEY ("user_id", "group_id", "role")`)
	// Non-nullable key parts keep NOT NULL; nullable ones stay bare.
	assert.Contains(t, st.Query, `"user_id" INTEGER NOT NULL`)
	assert.Contains(t, st.Query, `"role" TEXT,`)
}

func TestCreateTableDefaultsAndReferences(t *testing.T) {
	g := testGen()
	st, err := g.CreateTable(Table("posts"), []Column{
		{Name: "id", Type: "INTEGER", PrimaryKey: true},
		{Name: "views", Type: "INTEGER", Default: 0},
		{Name: "author_id", Type: "INTEGER", Ref: &Reference{
			Table: "users", Column: "id", OnDelete: Cascade, OnUpdate: NoAction,
		}},
	})
	require.NoError(t, err)
	assert.Contains(t, st.Query, `"views" INTEGER NOT NULL DEFAULT 0`)
	assert.Contains(t, st.Query, `"author_id" INTEGER NOT NULL REFERENCES "users" ("id") ON DELETE CASCADE ON UPDATE NO ACTION`)
}

func TestAddColumn(t *testing.T) {
	g := testGen()
	st, err := g.AddColumn(Table("users"), Column{Name: "age", Type: "INTEGER", Nullable: true})
	require.NoError(t, err)
	assert.Equal(t, `ALTER TABLE "users" ADD COLUMN "age" INTEGER;`, st.Query)
}

func TestInsertBindParams(t *testing.T) {
	g := testGen()
	st, err := g.Insert(Table("users"), []ColumnValue{
		{Column: "name", Value: "ada"},
		{Column: "age", Value: 36},
	}, Options{})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "users" ("name", "age") VALUES (?, ?);`, st.Query)
	assert.Equal(t, []any{"ada", 36}, st.Args)
}

func TestInsertInlineValues(t *testing.T) {
	g := testGen()
	st, err := g.Insert(Table("users"), []ColumnValue{
		{Column: "name", Value: "o'hara"},
	}, Options{InlineValues: true})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "users" ("name") VALUES ('o''hara');`, st.Query)
	assert.Empty(t, st.Args)
}

func TestInsertOmitNull(t *testing.T) {
	g := testGen()
	st, err := g.Insert(Table("users"), []ColumnValue{
		{Column: "name", Value: "ada"},
		{Column: "nickname", Value: nil},
	}, Options{OmitNull: true})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "users" ("name") VALUES (?);`, st.Query)
	assert.Equal(t, []any{"ada"}, st.Args)
}

func TestInsertDefaultValues(t *testing.T) {
	g := testGen()
	st, err := g.Insert(Table("events"), nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "events" DEFAULT VALUES;`, st.Query)
}

func TestUpdate(t *testing.T) {
	g := testGen()
	st, err := g.Update(Table("users"), []ColumnValue{
		{Column: "name", Value: "grace"},
	}, EQ("id", 7), Options{})
	require.NoError(t, err)
	assert.Equal(t, `UPDATE "users" SET "name" = ? WHERE "id" = ?;`, st.Query)
	assert.Equal(t, []any{"grace", 7}, st.Args)
}

func TestUpdateRequiresAssignments(t *testing.T) {
	g := testGen()
	_, err := g.Update(Table("users"), nil, nil, Options{})
	assert.True(t, IsPreconditionError(err))

	// OmitNull can empty the assignment list as well.
	_, err = g.Update(Table("users"), []ColumnValue{{Column: "a", Value: nil}}, nil, Options{OmitNull: true})
	assert.True(t, IsPreconditionError(err))
}

func TestUpdateWithNativeLimit(t *testing.T) {
	g := testGen() // DMLLimit: true
	st, err := g.Update(Table("users"), []ColumnValue{
		{Column: "active", Value: false},
	}, nil, Options{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, `UPDATE "users" SET "active" = ? LIMIT 10;`, st.Query)
}

func TestDeleteWithRowIDFallback(t *testing.T) {
	g := New(Features{
		Name:       "rowcap",
		IdentQuote: '"',
		RowID:      "rowid",
	}, Overrides{})
	st, err := g.Delete(Table("logs"), EQ("level", "debug"), Options{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t,
		`DELETE FROM "logs" WHERE rowid IN (SELECT rowid FROM "logs" WHERE "level" = ? LIMIT 100);`,
		st.Query)
	assert.Equal(t, []any{"debug"}, st.Args)
}

func TestDeleteLimitWithoutRowID(t *testing.T) {
	g := New(Features{Name: "nocap", IdentQuote: '"'}, Overrides{})
	_, err := g.Delete(Table("logs"), nil, Options{Limit: 1})
	require.Error(t, err)
	assert.True(t, IsCapabilityError(err))
}

func TestLimitOffsetFragment(t *testing.T) {
	strict := New(Features{
		Name:                   "strict",
		IdentQuote:             '"',
		LimitRequiredForOffset: true,
		UnboundedLimit:         "-1",
	}, Overrides{})
	relaxed := testGen()

	assert.Equal(t, "", strict.LimitOffset(Options{}))
	assert.Equal(t, "LIMIT 5", strict.LimitOffset(Options{Limit: 5}))
	assert.Equal(t, "LIMIT 5 OFFSET 10", strict.LimitOffset(Options{Limit: 5, Offset: 10}))
	// Offset alone must synthesize the unbounded sentinel.
	assert.Equal(t, "LIMIT -1 OFFSET 10", strict.LimitOffset(Options{Offset: 10}))
	assert.Equal(t, "OFFSET 10", relaxed.LimitOffset(Options{Offset: 10}))

	// A dialect declaring the requirement without naming a sentinel
	// still gets a well-formed fragment.
	bare := New(Features{Name: "bare", IdentQuote: '"', LimitRequiredForOffset: true}, Overrides{})
	assert.Equal(t, "LIMIT -1 OFFSET 10", bare.LimitOffset(Options{Offset: 10}))
}

func TestTruncateNative(t *testing.T) {
	g := New(Features{Name: "trunc", IdentQuote: '"', Truncate: true, RestartIdentity: true}, Overrides{})
	plan, err := g.Truncate(Table("users"), Options{})
	require.NoError(t, err)
	require.Len(t, plan.Statements, 1)
	assert.Equal(t, `TRUNCATE TABLE "users";`, plan.Statements[0].Query)

	plan, err = g.Truncate(Table("users"), Options{RestartIdentity: true})
	require.NoError(t, err)
	assert.Equal(t, `TRUNCATE TABLE "users" RESTART IDENTITY;`, plan.Statements[0].Query)
}

func TestTruncateRestartIdentityUnsupported(t *testing.T) {
	g := New(Features{Name: "trunc", IdentQuote: '"', Truncate: true}, Overrides{})
	_, err := g.Truncate(Table("users"), Options{RestartIdentity: true})
	assert.True(t, IsCapabilityError(err))
}

func TestSchemaOperations(t *testing.T) {
	g := testGen()
	st, err := g.CreateSchema("app")
	require.NoError(t, err)
	assert.Equal(t, `CREATE SCHEMA "app";`, st.Query)

	st, err = g.DropSchema("app")
	require.NoError(t, err)
	assert.Equal(t, `DROP SCHEMA "app";`, st.Query)

	st, err = g.ShowSchemas()
	require.NoError(t, err)
	assert.Contains(t, st.Query, "information_schema.schemata")
}

func TestSchemaOperationsUnsupported(t *testing.T) {
	g := New(Features{Name: "flat", IdentQuote: '"'}, Overrides{})
	for _, err := range []error{
		func() error { _, err := g.CreateSchema("app"); return err }(),
		func() error { _, err := g.DropSchema("app"); return err }(),
		func() error { _, err := g.ShowSchemas(); return err }(),
	} {
		require.Error(t, err)
		assert.True(t, IsCapabilityError(err))
	}
}

func TestSupportTableIsTotal(t *testing.T) {
	g := New(Features{Name: "flat", IdentQuote: '"'}, Overrides{})
	for op := Op(0); op < endOps; op++ {
		s := g.Supports(op)
		assert.Contains(t, []Support{Native, Emulated, Unsupported}, s, "op %s", op)
	}
	assert.Equal(t, Unsupported, g.Supports(OpCreateSchema))
	assert.Equal(t, Emulated, g.Supports(OpRemoveColumn))
	assert.Equal(t, Emulated, g.Supports(OpTruncate))
}
