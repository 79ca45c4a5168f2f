package sqlgen

import (
	"strconv"
	"strings"
)

// Generator builds SQL statements for the dialect described by its
// Features. It holds no mutable state across calls: every method is a
// pure function over its inputs, and concurrent use from multiple
// goroutines needs no coordination.
type Generator struct {
	features Features
	hooks    Overrides
	support  map[Op]Support
}

// New returns a Generator for the given dialect features and hook table.
// The operation support table is resolved here, once.
func New(f Features, hooks Overrides) *Generator {
	if f.IdentQuote == 0 {
		f.IdentQuote = '"'
	}
	if f.LimitRequiredForOffset && f.UnboundedLimit == "" {
		f.UnboundedLimit = "-1"
	}
	return &Generator{features: f, hooks: hooks, support: resolveSupport(f)}
}

// Dialect returns the dialect name.
func (g *Generator) Dialect() string { return g.features.Name }

// Features returns a copy of the dialect features.
func (g *Generator) Features() Features { return g.features }

// Supports reports how the dialect realizes the given operation.
func (g *Generator) Supports(op Op) Support { return g.support[op] }

// postDDL applies the dialect's post text transform, if any.
func (g *Generator) postDDL(query string) string {
	if g.hooks.PostDDL != nil {
		return g.hooks.PostDDL(query)
	}
	return query
}

// columnDDL renders one column definition. inlinePK controls whether a
// primary-key marker is emitted on the column itself; for composite
// keys the marker is stripped and replaced with NOT NULL when the
// column was declared non-nullable.
func (g *Generator) columnDDL(c Column, inlinePK bool) (string, error) {
	if c.Name == "" {
		return "", NewMalformedInputError("empty column name", nil)
	}
	if c.Type == "" {
		return "", NewMalformedInputError("empty column type", c.Name)
	}
	var sb strings.Builder
	sb.WriteString(g.QuoteIdent(c.Name))
	sb.WriteString(" ")
	sb.WriteString(c.Type)
	switch {
	case c.PrimaryKey && inlinePK:
		sb.WriteString(" PRIMARY KEY")
		if c.AutoIncrement && g.features.AutoIncrement != "" {
			sb.WriteString(" " + g.features.AutoIncrement)
		}
	case !c.Nullable:
		sb.WriteString(" NOT NULL")
	}
	if c.Unique && !(c.PrimaryKey && inlinePK) {
		sb.WriteString(" UNIQUE")
	}
	if c.Default != nil {
		lit, err := g.EscapeLiteral(c.Default)
		if err != nil {
			return "", err
		}
		sb.WriteString(" DEFAULT " + lit)
	}
	if c.Ref != nil {
		sb.WriteString(" REFERENCES ")
		sb.WriteString(g.QuoteIdent(c.Ref.Table))
		sb.WriteString(" (" + g.QuoteIdent(c.Ref.Column) + ")")
		if c.Ref.OnDelete != "" {
			sb.WriteString(" ON DELETE " + string(c.Ref.OnDelete))
		}
		if c.Ref.OnUpdate != "" {
			sb.WriteString(" ON UPDATE " + string(c.Ref.OnUpdate))
		}
	}
	return sb.String(), nil
}

// CreateTable builds a CREATE TABLE statement for the given attribute
// set. When more than one attribute carries a primary-key marker, the
// inline markers are consolidated into a single trailing composite
// PRIMARY KEY constraint listing the columns in declaration order.
func (g *Generator) CreateTable(t TableName, cols []Column) (Statement, error) {
	if len(cols) == 0 {
		return Statement{}, NewPreconditionError(OpCreateTable, "at least one column is required")
	}
	tbl, err := g.QuoteTable(t)
	if err != nil {
		return Statement{}, err
	}
	var pks []string
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if _, ok := seen[c.Name]; ok {
			return Statement{}, NewPreconditionError(OpCreateTable, "duplicate column "+strconv.Quote(c.Name))
		}
		seen[c.Name] = struct{}{}
		if c.PrimaryKey {
			pks = append(pks, c.Name)
		}
	}
	composite := len(pks) > 1
	defs := make([]string, 0, len(cols)+1)
	for _, c := range cols {
		def, err := g.columnDDL(c, c.PrimaryKey && !composite)
		if err != nil {
			return Statement{}, err
		}
		defs = append(defs, def)
	}
	if composite {
		quoted := make([]string, len(pks))
		for i, name := range pks {
			quoted[i] = g.QuoteIdent(name)
		}
		defs = append(defs, "PRIMARY KEY ("+strings.Join(quoted, ", ")+")")
	}
	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	if g.features.CreateIfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(tbl)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(defs, ", "))
	sb.WriteString(")")
	if g.hooks.CreateTableSuffix != nil {
		sb.WriteString(g.hooks.CreateTableSuffix())
	}
	sb.WriteString(";")
	return Statement{Query: g.postDDL(sb.String())}, nil
}

// DropTable builds a DROP TABLE statement.
func (g *Generator) DropTable(t TableName) (Statement, error) {
	tbl, err := g.QuoteTable(t)
	if err != nil {
		return Statement{}, err
	}
	return Statement{Query: "DROP TABLE " + tbl + ";"}, nil
}

// AddColumn builds an ALTER TABLE ... ADD COLUMN statement.
func (g *Generator) AddColumn(t TableName, c Column) (Statement, error) {
	tbl, err := g.QuoteTable(t)
	if err != nil {
		return Statement{}, err
	}
	def, err := g.columnDDL(c, c.PrimaryKey)
	if err != nil {
		return Statement{}, err
	}
	return Statement{Query: g.postDDL("ALTER TABLE " + tbl + " ADD COLUMN " + def + ";")}, nil
}

// Insert builds an INSERT statement. With OmitNull, nil values are
// stripped from the value list first; an empty list yields the DEFAULT
// VALUES form.
func (g *Generator) Insert(t TableName, values []ColumnValue, opts Options) (Statement, error) {
	tbl, err := g.QuoteTable(t)
	if err != nil {
		return Statement{}, err
	}
	if opts.OmitNull {
		values = omitNull(values)
	}
	if len(values) == 0 {
		return Statement{Query: "INSERT INTO " + tbl + " DEFAULT VALUES;"}, nil
	}
	var b *Binder
	if !opts.InlineValues {
		b = NewBinder(g.features.Placeholder)
	}
	names := make([]string, len(values))
	vals := make([]string, len(values))
	for i, cv := range values {
		names[i] = g.QuoteIdent(cv.Column)
		v, err := g.renderValue(cv.Value, b)
		if err != nil {
			return Statement{}, err
		}
		vals[i] = v
	}
	st := Statement{
		Query: "INSERT INTO " + tbl + " (" + strings.Join(names, ", ") + ") VALUES (" + strings.Join(vals, ", ") + ");",
	}
	if b != nil {
		st.Args = b.Args()
	}
	return st, nil
}

// Update builds an UPDATE statement. A row cap (Options.Limit) is
// appended natively where the grammar allows it; otherwise the affected
// rows are restricted through a subquery on the dialect's internal row
// identifier, since a trailing LIMIT on UPDATE is illegal there.
func (g *Generator) Update(t TableName, values []ColumnValue, where Predicate, opts Options) (Statement, error) {
	tbl, err := g.QuoteTable(t)
	if err != nil {
		return Statement{}, err
	}
	if opts.OmitNull {
		values = omitNull(values)
	}
	if len(values) == 0 {
		return Statement{}, NewPreconditionError(OpUpdate, "at least one column assignment is required")
	}
	var b *Binder
	if !opts.InlineValues {
		b = NewBinder(g.features.Placeholder)
	}
	var sb strings.Builder
	sb.WriteString("UPDATE " + tbl + " SET ")
	for i, cv := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		v, err := g.renderValue(cv.Value, b)
		if err != nil {
			return Statement{}, err
		}
		sb.WriteString(g.QuoteIdent(cv.Column) + " = " + v)
	}
	if err := g.dmlTail(&sb, tbl, where, opts, b, OpUpdate); err != nil {
		return Statement{}, err
	}
	sb.WriteString(";")
	st := Statement{Query: sb.String()}
	if b != nil {
		st.Args = b.Args()
	}
	return st, nil
}

// Delete builds a DELETE statement, applying the same row-cap rules as
// Update.
func (g *Generator) Delete(t TableName, where Predicate, opts Options) (Statement, error) {
	tbl, err := g.QuoteTable(t)
	if err != nil {
		return Statement{}, err
	}
	var b *Binder
	if !opts.InlineValues {
		b = NewBinder(g.features.Placeholder)
	}
	var sb strings.Builder
	sb.WriteString("DELETE FROM " + tbl)
	if err := g.dmlTail(&sb, tbl, where, opts, b, OpDelete); err != nil {
		return Statement{}, err
	}
	sb.WriteString(";")
	st := Statement{Query: sb.String()}
	if b != nil {
		st.Args = b.Args()
	}
	return st, nil
}

// dmlTail renders the WHERE clause and row cap of an UPDATE or DELETE.
func (g *Generator) dmlTail(sb *strings.Builder, tbl string, where Predicate, opts Options, b *Binder, op Op) error {
	capped := opts.Limit > 0
	switch {
	case capped && !g.features.DMLLimit:
		if g.features.RowID == "" {
			return NewCapabilityError(g.features.Name, op.String()+" with a row limit")
		}
		sb.WriteString(" WHERE " + g.features.RowID + " IN (SELECT " + g.features.RowID + " FROM " + tbl)
		if where != nil {
			sb.WriteString(" WHERE ")
			if err := g.renderPredicate(sb, where, b); err != nil {
				return err
			}
		}
		sb.WriteString(" LIMIT " + strconv.Itoa(opts.Limit) + ")")
	default:
		if where != nil {
			sb.WriteString(" WHERE ")
			if err := g.renderPredicate(sb, where, b); err != nil {
				return err
			}
		}
		if capped {
			sb.WriteString(" LIMIT " + strconv.Itoa(opts.Limit))
		}
	}
	return nil
}

// LimitOffset renders the LIMIT/OFFSET fragment for opts, synthesizing
// the dialect's unbounded-limit sentinel when only an offset was
// requested but the grammar requires LIMIT to accompany OFFSET.
func (g *Generator) LimitOffset(opts Options) string {
	switch {
	case opts.Limit > 0 && opts.Offset > 0:
		return "LIMIT " + strconv.Itoa(opts.Limit) + " OFFSET " + strconv.Itoa(opts.Offset)
	case opts.Limit > 0:
		return "LIMIT " + strconv.Itoa(opts.Limit)
	case opts.Offset > 0:
		if g.features.LimitRequiredForOffset {
			return "LIMIT " + g.features.UnboundedLimit + " OFFSET " + strconv.Itoa(opts.Offset)
		}
		return "OFFSET " + strconv.Itoa(opts.Offset)
	default:
		return ""
	}
}

// Truncate builds the statements that empty a table. Dialects without a
// native TRUNCATE emulate it through their hook table.
func (g *Generator) Truncate(t TableName, opts Options) (Plan, error) {
	if g.support[OpTruncate] == Emulated {
		if g.hooks.Truncate == nil {
			return Plan{}, NewCapabilityError(g.features.Name, OpTruncate.String())
		}
		return g.hooks.Truncate(g, t, opts)
	}
	tbl, err := g.QuoteTable(t)
	if err != nil {
		return Plan{}, err
	}
	q := "TRUNCATE TABLE " + tbl
	if opts.RestartIdentity {
		if !g.features.RestartIdentity {
			return Plan{}, NewCapabilityError(g.features.Name, "TRUNCATE ... RESTART IDENTITY")
		}
		q += " RESTART IDENTITY"
	}
	return single(Statement{Query: q + ";"}), nil
}

// omitNull strips nil values from a value list.
func omitNull(values []ColumnValue) []ColumnValue {
	kept := make([]ColumnValue, 0, len(values))
	for _, cv := range values {
		if cv.Value != nil {
			kept = append(kept, cv)
		}
	}
	return kept
}
