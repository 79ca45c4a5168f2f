package sqlgen

// Introspection statements. All are read-only, parameterized only by
// table or schema identifiers, and always dialect-escaped. The base
// forms query the standard information_schema; dialects with their own
// catalog replace them through the hook table.

// ShowTables builds a statement listing the tables of the current
// database.
func (g *Generator) ShowTables() (Statement, error) {
	if g.hooks.ShowTables != nil {
		return g.hooks.ShowTables(g)
	}
	return Statement{
		Query: "SELECT table_name FROM information_schema.tables ORDER BY table_name;",
	}, nil
}

// ShowIndexes builds a statement listing the indexes of a table.
func (g *Generator) ShowIndexes(t TableName) (Statement, error) {
	if g.hooks.ShowIndexes != nil {
		return g.hooks.ShowIndexes(g, t)
	}
	if t.Name == "" {
		return Statement{}, NewMalformedInputError("empty table name", nil)
	}
	b := NewBinder(g.features.Placeholder)
	return Statement{
		Query: "SELECT index_name, column_name FROM information_schema.statistics WHERE table_name = " + b.Add(t.Name) + ";",
		Args:  b.Args(),
	}, nil
}

// DescribeTable builds a statement describing the columns of a table.
func (g *Generator) DescribeTable(t TableName) (Statement, error) {
	if g.hooks.DescribeTable != nil {
		return g.hooks.DescribeTable(g, t)
	}
	if t.Name == "" {
		return Statement{}, NewMalformedInputError("empty table name", nil)
	}
	b := NewBinder(g.features.Placeholder)
	q := "SELECT column_name, data_type, is_nullable, column_default FROM information_schema.columns WHERE table_name = " + b.Add(t.Name)
	if t.Schema != "" {
		if !g.features.Schemas {
			return Statement{}, NewCapabilityError(g.features.Name, "schema-qualified table names")
		}
		q += " AND table_schema = " + b.Add(t.Schema)
	}
	return Statement{Query: q + ";", Args: b.Args()}, nil
}

// ShowConstraints builds a statement listing the constraint definitions
// of a table.
func (g *Generator) ShowConstraints(t TableName) (Statement, error) {
	if g.hooks.ShowConstraints != nil {
		return g.hooks.ShowConstraints(g, t)
	}
	if t.Name == "" {
		return Statement{}, NewMalformedInputError("empty table name", nil)
	}
	b := NewBinder(g.features.Placeholder)
	return Statement{
		Query: "SELECT constraint_name, constraint_type FROM information_schema.table_constraints WHERE table_name = " + b.Add(t.Name) + ";",
		Args:  b.Args(),
	}, nil
}

// ForeignKeys builds a statement enumerating the foreign keys of a
// table.
func (g *Generator) ForeignKeys(t TableName) (Statement, error) {
	if g.hooks.ForeignKeys != nil {
		return g.hooks.ForeignKeys(g, t)
	}
	if t.Name == "" {
		return Statement{}, NewMalformedInputError("empty table name", nil)
	}
	b := NewBinder(g.features.Placeholder)
	return Statement{
		Query: "SELECT constraint_name, column_name, referenced_table_name, referenced_column_name " +
			"FROM information_schema.key_column_usage WHERE table_name = " + b.Add(t.Name) +
			" AND referenced_table_name IS NOT NULL;",
		Args: b.Args(),
	}, nil
}

// Version builds the server-version query.
func (g *Generator) Version() (Statement, error) {
	if g.hooks.Version != nil {
		return g.hooks.Version(g)
	}
	return Statement{Query: "SELECT version();"}, nil
}

// CreateSchema builds a CREATE SCHEMA statement. Dialects without
// schema namespaces reject it with a CapabilityError.
func (g *Generator) CreateSchema(name string) (Statement, error) {
	if g.support[OpCreateSchema] == Unsupported {
		return Statement{}, NewCapabilityError(g.features.Name, OpCreateSchema.String())
	}
	if name == "" {
		return Statement{}, NewMalformedInputError("empty schema name", nil)
	}
	return Statement{Query: "CREATE SCHEMA " + g.QuoteIdent(name) + ";"}, nil
}

// DropSchema builds a DROP SCHEMA statement.
func (g *Generator) DropSchema(name string) (Statement, error) {
	if g.support[OpDropSchema] == Unsupported {
		return Statement{}, NewCapabilityError(g.features.Name, OpDropSchema.String())
	}
	if name == "" {
		return Statement{}, NewMalformedInputError("empty schema name", nil)
	}
	return Statement{Query: "DROP SCHEMA " + g.QuoteIdent(name) + ";"}, nil
}

// ShowSchemas builds a statement listing the schemas of the server.
func (g *Generator) ShowSchemas() (Statement, error) {
	if g.support[OpShowSchemas] == Unsupported {
		return Statement{}, NewCapabilityError(g.features.Name, OpShowSchemas.String())
	}
	return Statement{Query: "SELECT schema_name FROM information_schema.schemata ORDER BY schema_name;"}, nil
}
