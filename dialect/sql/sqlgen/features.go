package sqlgen

// PlaceholderStyle selects the bind-parameter placeholder format.
type PlaceholderStyle int

const (
	// Question uses "?" placeholders (sqlite, mysql).
	Question PlaceholderStyle = iota
	// Dollar uses "$1", "$2", ... placeholders (postgres).
	Dollar
)

// Features is the static capability description of a dialect. The
// generator threads it through every composition step, so divergent
// behavior is decided in one pass instead of patching generated text
// afterwards. The support table for the full operation set is resolved
// from it once, at construction time.
type Features struct {
	// Name is the dialect name (see the dialect package constants).
	Name string
	// IdentQuote is the identifier quoting character.
	IdentQuote byte
	// Placeholder is the bind-parameter placeholder style.
	Placeholder PlaceholderStyle
	// NativeBoolean reports whether the grammar has TRUE/FALSE literals.
	// Without it, booleans render as the integers 1/0.
	NativeBoolean bool
	// TemporalLiterals reports whether the grammar can cast temporal
	// literals natively. Without it, times render as ISO-8601 strings,
	// since comparison and cast operators only operate on text.
	TemporalLiterals bool
	// Schemas reports whether the grammar has schema namespaces.
	Schemas bool
	// AlterColumn reports whether column removal/rename/alteration is
	// expressible with native ALTER TABLE forms. Without it, those
	// operations are emulated by rebuilding the table.
	AlterColumn bool
	// DMLLimit reports whether UPDATE/DELETE accept a trailing LIMIT.
	DMLLimit bool
	// RowID is the internal row identifier column used to emulate a DML
	// row cap via a subquery. Empty disables the emulation.
	RowID string
	// LimitRequiredForOffset reports whether the grammar requires a
	// LIMIT clause whenever OFFSET appears.
	LimitRequiredForOffset bool
	// UnboundedLimit is the sentinel "no limit" value synthesized when
	// only an offset was requested (e.g. "-1" for sqlite).
	UnboundedLimit string
	// Truncate reports whether the grammar has a TRUNCATE statement.
	// Without it, truncation is emulated with DELETE.
	Truncate bool
	// RestartIdentity reports whether TRUNCATE accepts RESTART IDENTITY.
	RestartIdentity bool
	// CreateIfNotExists adds IF NOT EXISTS to CREATE TABLE.
	CreateIfNotExists bool
	// AutoIncrement is the auto-increment column keyword, e.g.
	// "AUTOINCREMENT" or "AUTO_INCREMENT". Empty omits the keyword.
	AutoIncrement string
	// TxModes lists the accepted BEGIN locking-mode tokens. An empty
	// list rejects any requested mode.
	TxModes []string
}

// Overrides is the per-dialect hook table. A nil field keeps the base
// behavior; a non-nil one fully replaces it. Operations a dialect cannot
// express at all are rejected through the support table, not through
// hooks, so every operation has a defined outcome.
type Overrides struct {
	// CreateTableSuffix appends dialect-specific text (engine, charset)
	// after the closing parenthesis of CREATE TABLE.
	CreateTableSuffix func() string
	// PostDDL is a post text transform applied to composed DDL, for
	// grammar quirks that are simpler to patch than to thread through
	// every path (e.g. boolean DEFAULT rewriting).
	PostDDL func(query string) string

	// Introspection replacements.
	ShowTables      func(g *Generator) (Statement, error)
	ShowIndexes     func(g *Generator, t TableName) (Statement, error)
	DescribeTable   func(g *Generator, t TableName) (Statement, error)
	ShowConstraints func(g *Generator, t TableName) (Statement, error)
	ForeignKeys     func(g *Generator, t TableName) (Statement, error)
	Version         func(g *Generator) (Statement, error)

	// Truncate supplies the emulation plan for dialects without a
	// native TRUNCATE statement.
	Truncate func(g *Generator, t TableName, opts Options) (Plan, error)

	// Transaction-control replacements.
	Begin          func(g *Generator, opts BeginOptions) (Statement, error)
	IsolationLevel func(g *Generator, l IsolationLevel) (Statement, error)
}

// resolveSupport derives the operation support table from the dialect
// features. The table is total over the operation set: every Op has an
// entry.
func resolveSupport(f Features) map[Op]Support {
	m := make(map[Op]Support, int(endOps))
	for op := Op(0); op < endOps; op++ {
		m[op] = Native
	}
	if !f.Schemas {
		m[OpCreateSchema] = Unsupported
		m[OpDropSchema] = Unsupported
		m[OpShowSchemas] = Unsupported
	}
	if !f.AlterColumn {
		m[OpRemoveColumn] = Emulated
		m[OpRenameColumn] = Emulated
		m[OpChangeColumn] = Emulated
	}
	if !f.Truncate {
		m[OpTruncate] = Emulated
	}
	return m
}
