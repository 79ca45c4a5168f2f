package sqlgen

import (
	"slices"

	"github.com/google/uuid"
)

// Begin builds a transaction-begin statement: a SAVEPOINT form when the
// operation is logically nested inside an outer transaction, and a
// top-level BEGIN otherwise.
func (g *Generator) Begin(opts BeginOptions) (Statement, error) {
	if g.hooks.Begin != nil {
		return g.hooks.Begin(g, opts)
	}
	if opts.Nested {
		name := opts.SavepointName
		if name == "" {
			name = "sp_" + uuid.NewString()
		}
		return Statement{Query: "SAVEPOINT " + g.QuoteIdent(name) + ";"}, nil
	}
	if opts.Mode != "" {
		if !slices.Contains(g.features.TxModes, opts.Mode) {
			return Statement{}, NewCapabilityError(g.features.Name, "transaction mode "+opts.Mode)
		}
		return Statement{Query: "BEGIN " + opts.Mode + " TRANSACTION;"}, nil
	}
	return Statement{Query: "BEGIN TRANSACTION;"}, nil
}

// Commit builds the transaction-commit statement.
func (g *Generator) Commit() Statement {
	return Statement{Query: "COMMIT;"}
}

// Rollback builds the transaction-rollback statement.
func (g *Generator) Rollback() Statement {
	return Statement{Query: "ROLLBACK;"}
}

// RollbackTo builds a rollback-to-savepoint statement.
func (g *Generator) RollbackTo(name string) (Statement, error) {
	if name == "" {
		return Statement{}, NewMalformedInputError("empty savepoint name", nil)
	}
	return Statement{Query: "ROLLBACK TO SAVEPOINT " + g.QuoteIdent(name) + ";"}, nil
}

// Release builds a release-savepoint statement.
func (g *Generator) Release(name string) (Statement, error) {
	if name == "" {
		return Statement{}, NewMalformedInputError("empty savepoint name", nil)
	}
	return Statement{Query: "RELEASE SAVEPOINT " + g.QuoteIdent(name) + ";"}, nil
}

// SetIsolationLevel builds the statement mapping the isolation level to
// the dialect's grammar: a native statement, a no-op comment when the
// dialect default already satisfies the level, or a CapabilityError for
// an unrecognized or unsupported level.
func (g *Generator) SetIsolationLevel(l IsolationLevel) (Statement, error) {
	if l < ReadUncommitted || l > Serializable {
		return Statement{}, NewCapabilityError(g.features.Name, "isolation level "+l.String())
	}
	if g.hooks.IsolationLevel != nil {
		return g.hooks.IsolationLevel(g, l)
	}
	return Statement{Query: "SET TRANSACTION ISOLATION LEVEL " + l.String() + ";"}, nil
}
