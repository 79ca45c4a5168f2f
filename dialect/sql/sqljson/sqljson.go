// Package sqljson translates abstract JSON path expressions into
// dialect-specific accessor syntax, and validates that SQL fragments
// claiming to be JSON function calls are not statement-splitting
// injection attempts.
package sqljson

import (
	"strconv"
	"strings"

	"github.com/sequelgo/sequelgo/dialect"
	"github.com/sequelgo/sequelgo/dialect/sql/sqlgen"
)

// ExtractPath builds the dialect's JSON-extraction expression for the
// given column and path segments. Segments are either string keys or
// integer array indexes; []any{"a", 0, "b"} normalizes to $.a[0].b.
// The column is quoted unless it already is, and the path is escaped as
// a string literal.
func ExtractPath(dialectName, column string, path ...any) (string, error) {
	if column == "" {
		return "", sqlgen.NewMalformedInputError("empty column", nil)
	}
	if len(path) == 0 {
		return "", sqlgen.NewMalformedInputError("empty JSON path", nil)
	}
	col := column
	if !strings.HasPrefix(col, `"`) {
		col = `"` + strings.ReplaceAll(col, `"`, `""`) + `"`
	}
	switch dialectName {
	case dialect.SQLite, dialect.MySQL:
		p, err := rootedPath(path)
		if err != nil {
			return "", err
		}
		return "json_extract(" + col + ", '" + strings.ReplaceAll(p, "'", "''") + "')", nil
	case dialect.Postgres:
		parts := make([]string, len(path))
		for i, seg := range path {
			s, err := segmentString(seg)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		lit := strings.ReplaceAll("{"+strings.Join(parts, ",")+"}", "'", "''")
		return col + "#>'" + lit + "'", nil
	default:
		return "", sqlgen.NewCapabilityError(dialectName, "JSON path extraction")
	}
}

// rootedPath normalizes path segments into the $-rooted form, with
// numeric segments in bracket-index notation.
func rootedPath(path []any) (string, error) {
	var sb strings.Builder
	sb.WriteString("$")
	for _, seg := range path {
		switch seg := seg.(type) {
		case string:
			if err := validateKey(seg); err != nil {
				return "", err
			}
			sb.WriteString("." + seg)
		case int:
			if seg < 0 {
				return "", sqlgen.NewMalformedInputError("negative JSON array index", seg)
			}
			sb.WriteString("[" + strconv.Itoa(seg) + "]")
		default:
			return "", sqlgen.NewMalformedInputError("JSON path segment must be a string or an int", seg)
		}
	}
	return sb.String(), nil
}

func segmentString(seg any) (string, error) {
	switch seg := seg.(type) {
	case string:
		if err := validateKey(seg); err != nil {
			return "", err
		}
		return seg, nil
	case int:
		if seg < 0 {
			return "", sqlgen.NewMalformedInputError("negative JSON array index", seg)
		}
		return strconv.Itoa(seg), nil
	default:
		return "", sqlgen.NewMalformedInputError("JSON path segment must be a string or an int", seg)
	}
}

func validateKey(key string) error {
	if key == "" {
		return sqlgen.NewMalformedInputError("empty JSON path segment", nil)
	}
	if strings.ContainsAny(key, ";()[]'\"") {
		return sqlgen.NewMalformedInputError("JSON path segment contains unsafe characters", key)
	}
	return nil
}

// ParsePath splits a dot/bracket accessor string such as "a[0].b" into
// ordered path segments suitable for ExtractPath.
func ParsePath(accessor string) ([]any, error) {
	if accessor == "" {
		return nil, sqlgen.NewMalformedInputError("empty JSON accessor", nil)
	}
	var (
		segs []any
		cur  strings.Builder
	)
	flush := func() error {
		if cur.Len() == 0 {
			return nil
		}
		key := cur.String()
		cur.Reset()
		if err := validateKey(key); err != nil {
			return err
		}
		segs = append(segs, key)
		return nil
	}
	for i := 0; i < len(accessor); i++ {
		switch c := accessor[i]; c {
		case '.':
			if err := flush(); err != nil {
				return nil, err
			}
		case '[':
			if err := flush(); err != nil {
				return nil, err
			}
			end := strings.IndexByte(accessor[i:], ']')
			if end < 0 {
				return nil, sqlgen.NewMalformedInputError("unbalanced bracket in JSON accessor", accessor)
			}
			idx, err := strconv.Atoi(accessor[i+1 : i+end])
			if err != nil || idx < 0 {
				return nil, sqlgen.NewMalformedInputError("invalid JSON array index", accessor[i+1:i+end])
			}
			segs = append(segs, idx)
			i += end
			// Only another accessor (or the end) may follow an index.
			if i+1 < len(accessor) && accessor[i+1] != '.' && accessor[i+1] != '[' {
				return nil, sqlgen.NewMalformedInputError("missing separator after JSON array index", accessor)
			}
		case ']':
			return nil, sqlgen.NewMalformedInputError("unbalanced bracket in JSON accessor", accessor)
		default:
			cur.WriteByte(c)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		return nil, sqlgen.NewMalformedInputError("empty JSON accessor", nil)
	}
	return segs, nil
}
