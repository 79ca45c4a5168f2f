package sqlgen

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// QuoteIdent wraps name in the dialect's quoting character, doubling any
// embedded occurrence of that character. The caller is never trusted to
// have pre-escaped the name.
func (g *Generator) QuoteIdent(name string) string {
	q := string(g.features.IdentQuote)
	return q + strings.ReplaceAll(name, q, q+q) + q
}

// QuoteTable renders a table name, schema-qualified if requested.
// Dialects without schema support reject qualified names with a
// CapabilityError rather than silently dropping the qualifier.
func (g *Generator) QuoteTable(t TableName) (string, error) {
	if t.Name == "" {
		return "", NewMalformedInputError("empty table name", nil)
	}
	if t.Schema == "" {
		return g.QuoteIdent(t.Name), nil
	}
	if !g.features.Schemas {
		return "", NewCapabilityError(g.features.Name, "schema-qualified table names")
	}
	d := t.Delimiter
	if d == "" {
		d = "."
	}
	return g.QuoteIdent(t.Schema) + d + g.QuoteIdent(t.Name), nil
}

// quoteString wraps s in single quotes, doubling embedded quotes.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// EscapeLiteral converts a typed value into the dialect's SQL literal
// syntax. It is a pure function over its inputs: values that are not
// representable as a literal yield a MalformedInputError, never a
// silently wrong literal.
func (g *Generator) EscapeLiteral(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "NULL", nil
	case string:
		return quoteString(v), nil
	case bool:
		switch {
		case g.features.NativeBoolean && v:
			return "TRUE", nil
		case g.features.NativeBoolean:
			return "FALSE", nil
		case v:
			return "1", nil
		default:
			return "0", nil
		}
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case time.Time:
		if g.features.TemporalLiterals {
			return quoteString(v.UTC().Format("2006-01-02 15:04:05.999999-07")), nil
		}
		// Dialects without a temporal cast compare timestamps as text,
		// so the literal must be ISO-8601.
		return quoteString(v.UTC().Format("2006-01-02T15:04:05.999Z07:00")), nil
	case []byte:
		return "X'" + hex.EncodeToString(v) + "'", nil
	default:
		return "", NewMalformedInputError("value is not representable as a SQL literal", v)
	}
}
