package sqlgen

// Op identifies an abstract statement kind exposed by the generator.
// Every dialect resolves each Op to a Support level at construction
// time; there is no implicit fallthrough.
type Op int

// The full abstract operation set.
const (
	OpCreateTable Op = iota
	OpDropTable
	OpAddColumn
	OpRemoveColumn
	OpRenameColumn
	OpChangeColumn
	OpInsert
	OpUpdate
	OpDelete
	OpTruncate
	OpDescribeTable
	OpShowTables
	OpShowIndexes
	OpShowConstraints
	OpForeignKeys
	OpVersion
	OpCreateSchema
	OpDropSchema
	OpShowSchemas
	OpBegin
	OpIsolationLevel
	endOps // sentinel for iteration
)

var opNames = map[Op]string{
	OpCreateTable:     "create table",
	OpDropTable:       "drop table",
	OpAddColumn:       "add column",
	OpRemoveColumn:    "remove column",
	OpRenameColumn:    "rename column",
	OpChangeColumn:    "change column",
	OpInsert:          "insert",
	OpUpdate:          "update",
	OpDelete:          "delete",
	OpTruncate:        "truncate",
	OpDescribeTable:   "describe table",
	OpShowTables:      "show tables",
	OpShowIndexes:     "show indexes",
	OpShowConstraints: "show constraints",
	OpForeignKeys:     "foreign keys",
	OpVersion:         "version",
	OpCreateSchema:    "create schema",
	OpDropSchema:      "drop schema",
	OpShowSchemas:     "show schemas",
	OpBegin:           "begin",
	OpIsolationLevel:  "isolation level",
}

// String returns the human-readable operation name.
func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return "unknown"
}

// Support classifies how a dialect realizes an operation.
type Support int

const (
	// Native indicates the operation maps to a single statement in the
	// dialect's own grammar.
	Native Support = iota
	// Emulated indicates the operation is reproduced with a sequence of
	// supported statements.
	Emulated
	// Unsupported indicates the operation has no representation in the
	// dialect and requesting it yields a CapabilityError.
	Unsupported
)

// String returns the support level name.
func (s Support) String() string {
	switch s {
	case Native:
		return "native"
	case Emulated:
		return "emulated"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// RefAction is a referential action for ON DELETE / ON UPDATE clauses.
type RefAction string

// Referential actions.
const (
	NoAction   RefAction = "NO ACTION"
	Restrict   RefAction = "RESTRICT"
	Cascade    RefAction = "CASCADE"
	SetNull    RefAction = "SET NULL"
	SetDefault RefAction = "SET DEFAULT"
)

// Reference describes a foreign-key reference of a column.
type Reference struct {
	// Table and Column are the referenced table and column names.
	Table  string
	Column string
	// OnDelete and OnUpdate are optional referential actions.
	OnDelete RefAction
	OnUpdate RefAction
}

// Column describes a single attribute of a table. Columns are owned by
// the caller and only borrowed for the duration of one generation call;
// the generator never mutates them.
type Column struct {
	// Name is the column name.
	Name string
	// Type is the SQL type token (e.g. "INTEGER", "VARCHAR(255)").
	Type string
	// Nullable reports whether NULL values are allowed. The zero value
	// declares the column NOT NULL.
	Nullable bool
	// Default is an optional default value, rendered as a literal.
	// A nil Default means no DEFAULT clause.
	Default any
	// Unique adds a UNIQUE constraint to the column.
	Unique bool
	// PrimaryKey marks the column as (part of) the primary key.
	PrimaryKey bool
	// AutoIncrement requests the dialect's auto-increment keyword.
	// Only meaningful on primary-key columns.
	AutoIncrement bool
	// Ref is an optional foreign-key reference.
	Ref *Reference
}

// TableName is either a bare table name or a schema-qualified one.
// Schema-qualified names are valid only for dialects with schema
// support; others reject them with a CapabilityError instead of
// silently dropping the qualifier.
type TableName struct {
	Schema string
	Name   string
	// Delimiter separates the quoted schema from the quoted name.
	// Empty means ".".
	Delimiter string
}

// Table returns a bare TableName.
func Table(name string) TableName {
	return TableName{Name: name}
}

// SchemaTable returns a schema-qualified TableName.
func SchemaTable(schema, name string) TableName {
	return TableName{Schema: schema, Name: name}
}

// Statement pairs generated SQL text with its ordered bind arguments.
// Args is empty when the statement was generated with inlined literals.
type Statement struct {
	Query string
	Args  []any
}

// Plan is an ordered sequence of statements that must be executed in
// order and atomically. If the surrounding transaction aborts mid-plan,
// the database must roll back to the pre-plan state.
type Plan struct {
	Statements []Statement
}

// single wraps one statement in a plan.
func single(st Statement) Plan {
	return Plan{Statements: []Statement{st}}
}

// ColumnValue is one column assignment in an INSERT or UPDATE. Values
// are kept as an ordered slice so generated SQL is deterministic.
type ColumnValue struct {
	Column string
	Value  any
}

// Options carries the recognized per-call option keys of the input
// contract.
type Options struct {
	// Limit caps the number of affected rows. Zero means no cap.
	Limit int
	// Offset skips rows. Zero means no offset.
	Offset int
	// RestartIdentity resets auto-increment counters on TRUNCATE.
	RestartIdentity bool
	// InlineValues disables bound-parameter mode (bindParam: false);
	// all values are escaped and inlined as literals instead.
	InlineValues bool
	// OmitNull strips nil values from value lists before building
	// SET / VALUES clauses.
	OmitNull bool
}

// IsolationLevel is a transaction isolation level. A dialect maps each
// level to a native statement, a no-op comment, or rejects it.
type IsolationLevel int

// Isolation levels.
const (
	ReadUncommitted IsolationLevel = iota
	ReadCommitted
	RepeatableRead
	Serializable
)

// String returns the SQL spelling of the isolation level.
func (l IsolationLevel) String() string {
	switch l {
	case ReadUncommitted:
		return "READ UNCOMMITTED"
	case ReadCommitted:
		return "READ COMMITTED"
	case RepeatableRead:
		return "REPEATABLE READ"
	case Serializable:
		return "SERIALIZABLE"
	default:
		return "UNKNOWN"
	}
}

// BeginOptions configures a transaction-begin statement.
type BeginOptions struct {
	// Nested requests a savepoint form instead of a top-level BEGIN,
	// for operations logically nested inside an outer transaction.
	Nested bool
	// SavepointName names the savepoint. Generated when empty.
	SavepointName string
	// Mode is an optional locking mode token (e.g. DEFERRED, IMMEDIATE,
	// EXCLUSIVE) for dialects that accept one.
	Mode string
}
