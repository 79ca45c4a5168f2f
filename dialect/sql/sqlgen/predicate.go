package sqlgen

import "strings"

// Predicate is a node in a WHERE-clause condition tree. Predicates are
// read-only during generation and never mutated.
type Predicate interface {
	pred()
}

type comparePred struct {
	col string
	op  string
	v   any
}

type junctionPred struct {
	op    string // "AND" or "OR"
	preds []Predicate
}

type notPred struct {
	p Predicate
}

type inPred struct {
	col string
	not bool
	vs  []any
}

type nullPred struct {
	col string
	not bool
}

type rawPred struct {
	text string
}

func (comparePred) pred()  {}
func (junctionPred) pred() {}
func (notPred) pred()      {}
func (inPred) pred()       {}
func (nullPred) pred()     {}
func (rawPred) pred()      {}

// EQ returns a column = value predicate.
func EQ(col string, v any) Predicate { return comparePred{col: col, op: "=", v: v} }

// NEQ returns a column <> value predicate.
func NEQ(col string, v any) Predicate { return comparePred{col: col, op: "<>", v: v} }

// GT returns a column > value predicate.
func GT(col string, v any) Predicate { return comparePred{col: col, op: ">", v: v} }

// GTE returns a column >= value predicate.
func GTE(col string, v any) Predicate { return comparePred{col: col, op: ">=", v: v} }

// LT returns a column < value predicate.
func LT(col string, v any) Predicate { return comparePred{col: col, op: "<", v: v} }

// LTE returns a column <= value predicate.
func LTE(col string, v any) Predicate { return comparePred{col: col, op: "<=", v: v} }

// Like returns a column LIKE pattern predicate.
func Like(col string, pattern string) Predicate {
	return comparePred{col: col, op: "LIKE", v: pattern}
}

// And joins predicates with AND.
func And(preds ...Predicate) Predicate { return junctionPred{op: "AND", preds: preds} }

// Or joins predicates with OR.
func Or(preds ...Predicate) Predicate { return junctionPred{op: "OR", preds: preds} }

// Not negates a predicate.
func Not(p Predicate) Predicate { return notPred{p: p} }

// In returns a column IN (...) predicate. An empty list renders as a
// constant-false condition.
func In(col string, vs ...any) Predicate { return inPred{col: col, vs: vs} }

// NotIn returns a column NOT IN (...) predicate. An empty list renders
// as a constant-true condition.
func NotIn(col string, vs ...any) Predicate { return inPred{col: col, not: true, vs: vs} }

// IsNull returns a column IS NULL predicate.
func IsNull(col string) Predicate { return nullPred{col: col} }

// NotNull returns a column IS NOT NULL predicate.
func NotNull(col string) Predicate { return nullPred{col: col, not: true} }

// Raw returns a predicate holding pre-escaped SQL text. The text is
// emitted verbatim; callers are responsible for its safety.
func Raw(text string) Predicate { return rawPred{text: text} }

// renderValue renders v either as a placeholder (binder mode) or as an
// escaped literal (inline mode, b == nil).
func (g *Generator) renderValue(v any, b *Binder) (string, error) {
	if b != nil {
		return b.Add(v), nil
	}
	return g.EscapeLiteral(v)
}

// renderPredicate writes the SQL form of p to sb.
func (g *Generator) renderPredicate(sb *strings.Builder, p Predicate, b *Binder) error {
	switch p := p.(type) {
	case comparePred:
		v, err := g.renderValue(p.v, b)
		if err != nil {
			return err
		}
		sb.WriteString(g.QuoteIdent(p.col))
		sb.WriteString(" ")
		sb.WriteString(p.op)
		sb.WriteString(" ")
		sb.WriteString(v)
	case junctionPred:
		if len(p.preds) == 0 {
			return NewMalformedInputError("empty predicate junction", nil)
		}
		if len(p.preds) == 1 {
			return g.renderPredicate(sb, p.preds[0], b)
		}
		sb.WriteString("(")
		for i, sub := range p.preds {
			if i > 0 {
				sb.WriteString(" " + p.op + " ")
			}
			if err := g.renderPredicate(sb, sub, b); err != nil {
				return err
			}
		}
		sb.WriteString(")")
	case notPred:
		sb.WriteString("NOT (")
		if err := g.renderPredicate(sb, p.p, b); err != nil {
			return err
		}
		sb.WriteString(")")
	case inPred:
		if len(p.vs) == 0 {
			if p.not {
				sb.WriteString("1 = 1")
			} else {
				sb.WriteString("1 = 0")
			}
			return nil
		}
		sb.WriteString(g.QuoteIdent(p.col))
		if p.not {
			sb.WriteString(" NOT IN (")
		} else {
			sb.WriteString(" IN (")
		}
		for i, v := range p.vs {
			if i > 0 {
				sb.WriteString(", ")
			}
			s, err := g.renderValue(v, b)
			if err != nil {
				return err
			}
			sb.WriteString(s)
		}
		sb.WriteString(")")
	case nullPred:
		sb.WriteString(g.QuoteIdent(p.col))
		if p.not {
			sb.WriteString(" IS NOT NULL")
		} else {
			sb.WriteString(" IS NULL")
		}
	case rawPred:
		sb.WriteString(p.text)
	default:
		return NewMalformedInputError("unknown predicate node", p)
	}
	return nil
}

// WherePredicate renders a standalone predicate tree into SQL text and
// bind arguments, for callers composing their own statements.
func (g *Generator) WherePredicate(p Predicate, inline bool) (string, []any, error) {
	var b *Binder
	if !inline {
		b = NewBinder(g.features.Placeholder)
	}
	var sb strings.Builder
	if err := g.renderPredicate(&sb, p, b); err != nil {
		return "", nil, err
	}
	if b != nil {
		return sb.String(), b.Args(), nil
	}
	return sb.String(), nil, nil
}
