package sqlgen

import "strings"

// backupSuffix is appended to the original table name to derive the
// temporary table used during a rebuild. The planner does not check for
// a pre-existing table of that name; avoiding the collision is the
// caller's responsibility.
const backupSuffix = "_backup"

// RemoveColumn builds the statements removing a column. cols is the
// current attribute set of the table, in declaration order. Dialects
// with a native DROP COLUMN form emit a single statement; others
// rebuild the table without the column.
func (g *Generator) RemoveColumn(t TableName, cols []Column, name string) (Plan, error) {
	tbl, err := g.QuoteTable(t)
	if err != nil {
		return Plan{}, err
	}
	if g.support[OpRemoveColumn] == Native {
		return single(Statement{Query: "ALTER TABLE " + tbl + " DROP COLUMN " + g.QuoteIdent(name) + ";"}), nil
	}
	kept := make([]Column, 0, len(cols))
	found := false
	for _, c := range cols {
		if c.Name == name {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return Plan{}, NewPreconditionError(OpRemoveColumn, "column "+name+" does not exist")
	}
	if len(kept) == 0 {
		return Plan{}, NewPreconditionError(OpRemoveColumn, "cannot remove the only column")
	}
	selects := make([]string, len(kept))
	for i, c := range kept {
		selects[i] = g.QuoteIdent(c.Name)
	}
	return g.rebuild(t, kept, selects)
}

// RenameColumn builds the statements renaming a column. Without a
// native RENAME COLUMN form, the table is rebuilt with the select list
// aliasing the old column name to the new one so data lands in the
// correct destination column.
func (g *Generator) RenameColumn(t TableName, cols []Column, oldName, newName string) (Plan, error) {
	tbl, err := g.QuoteTable(t)
	if err != nil {
		return Plan{}, err
	}
	if g.support[OpRenameColumn] == Native {
		return single(Statement{
			Query: "ALTER TABLE " + tbl + " RENAME COLUMN " + g.QuoteIdent(oldName) + " TO " + g.QuoteIdent(newName) + ";",
		}), nil
	}
	renamed := make([]Column, len(cols))
	selects := make([]string, len(cols))
	found := false
	for i, c := range cols {
		renamed[i] = c
		selects[i] = g.QuoteIdent(c.Name)
		if c.Name == oldName {
			found = true
			renamed[i].Name = newName
			selects[i] = g.QuoteIdent(oldName) + " AS " + g.QuoteIdent(newName)
		}
	}
	if !found {
		return Plan{}, NewPreconditionError(OpRenameColumn, "column "+oldName+" does not exist")
	}
	return g.rebuild(t, renamed, selects)
}

// ChangeColumn builds the statements replacing a column definition.
// The native form emits discrete ALTER COLUMN actions (TYPE, SET/DROP
// DEFAULT, SET/DROP NOT NULL) derived from the new definition, since a
// bare column definition after ALTER COLUMN is not valid grammar there.
// Without a native ALTER COLUMN form, the table is rebuilt with the
// modified definition.
func (g *Generator) ChangeColumn(t TableName, cols []Column, c Column) (Plan, error) {
	tbl, err := g.QuoteTable(t)
	if err != nil {
		return Plan{}, err
	}
	if g.support[OpChangeColumn] == Native {
		if c.Name == "" {
			return Plan{}, NewMalformedInputError("empty column name", nil)
		}
		if c.Type == "" {
			return Plan{}, NewMalformedInputError("empty column type", c.Name)
		}
		col := g.QuoteIdent(c.Name)
		actions := []string{"ALTER COLUMN " + col + " TYPE " + c.Type}
		if c.Default != nil {
			lit, err := g.EscapeLiteral(c.Default)
			if err != nil {
				return Plan{}, err
			}
			actions = append(actions, "ALTER COLUMN "+col+" SET DEFAULT "+lit)
		} else {
			actions = append(actions, "ALTER COLUMN "+col+" DROP DEFAULT")
		}
		if c.Nullable {
			actions = append(actions, "ALTER COLUMN "+col+" DROP NOT NULL")
		} else {
			actions = append(actions, "ALTER COLUMN "+col+" SET NOT NULL")
		}
		return single(Statement{Query: "ALTER TABLE " + tbl + " " + strings.Join(actions, ", ") + ";"}), nil
	}
	changed := make([]Column, len(cols))
	selects := make([]string, len(cols))
	found := false
	for i, cur := range cols {
		changed[i] = cur
		selects[i] = g.QuoteIdent(cur.Name)
		if cur.Name == c.Name {
			found = true
			changed[i] = c
		}
	}
	if !found {
		return Plan{}, NewPreconditionError(OpChangeColumn, "column "+c.Name+" does not exist")
	}
	return g.rebuild(t, changed, selects)
}

// rebuild emulates an ALTER capability by recreating the table:
//
//  1. CREATE the temporary table with the post-change attribute set.
//  2. INSERT INTO it selecting the surviving columns from the original.
//  3. DROP the original table.
//  4. RENAME the temporary table to the original name.
//
// The four statements must run as one atomic unit; if the surrounding
// transaction aborts mid-sequence, the database rolls back to the
// original table. Foreign keys referencing the rebuilt table are NOT
// preserved: the target grammar does not allow adding foreign-key
// constraints during a rename-based rebuild. This is a documented
// capability gap surfaced to callers, not fixed silently.
func (g *Generator) rebuild(t TableName, cols []Column, selects []string) (Plan, error) {
	tmp := TableName{Schema: t.Schema, Name: t.Name + backupSuffix, Delimiter: t.Delimiter}
	create, err := g.CreateTable(tmp, cols)
	if err != nil {
		return Plan{}, err
	}
	tbl, err := g.QuoteTable(t)
	if err != nil {
		return Plan{}, err
	}
	tmpTbl, err := g.QuoteTable(tmp)
	if err != nil {
		return Plan{}, err
	}
	return Plan{Statements: []Statement{
		create,
		{Query: "INSERT INTO " + tmpTbl + " SELECT " + strings.Join(selects, ", ") + " FROM " + tbl + ";"},
		{Query: "DROP TABLE " + tbl + ";"},
		{Query: "ALTER TABLE " + tmpTbl + " RENAME TO " + g.QuoteIdent(t.Name) + ";"},
	}}, nil
}
