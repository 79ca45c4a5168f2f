package sqljson

import (
	"regexp"
	"strings"

	"github.com/sequelgo/sequelgo/dialect/sql/sqlgen"
)

// jsonFuncName matches the known JSON function name patterns at the
// start of a fragment, up to and including the opening parenthesis.
var jsonFuncName = regexp.MustCompile(`(?i)^\s*(json_[a-z0-9_]+|jsonb_[a-z0-9_]+|json)\s*\(`)

// IsFunctionCall reports whether the fragment is a single JSON function
// invocation, e.g. to decide whether a value expression needs further
// casting. The check runs in two passes: the first matches the function
// name pattern, the second tokenizes the remainder (quoted strings,
// word runs, punctuation) while tracking parenthesis balance. A bare
// semicolon encountered mid-scan, trailing text after the call closes,
// or unbalanced parentheses by end-of-scan are treated as an
// injection risk and rejected with a MalformedInputError: a statement
// terminator hidden inside a value that superficially looks like a JSON
// function call would otherwise split the surrounding statement.
func IsFunctionCall(fragment string) (bool, error) {
	loc := jsonFuncName.FindStringIndex(fragment)
	if loc == nil {
		return false, nil
	}
	rest := fragment[loc[1]:]
	depth := 1
	for i := 0; i < len(rest); i++ {
		switch c := rest[i]; c {
		case '\'', '"':
			end, err := scanQuoted(rest, i, c)
			if err != nil {
				return false, err
			}
			i = end
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				if tail := strings.TrimSpace(rest[i+1:]); tail != "" {
					return false, sqlgen.NewMalformedInputError("trailing text after JSON function call", tail)
				}
				return true, nil
			}
		case ';':
			return false, sqlgen.NewMalformedInputError("statement terminator inside JSON function call", fragment)
		}
	}
	return false, sqlgen.NewMalformedInputError("unbalanced parentheses in JSON function call", fragment)
}

// scanQuoted returns the index of the closing quote of the literal
// starting at start, honoring doubled-quote escapes.
func scanQuoted(s string, start int, quote byte) (int, error) {
	for i := start + 1; i < len(s); i++ {
		if s[i] != quote {
			continue
		}
		// A doubled quote is an escaped quote, not a terminator.
		if i+1 < len(s) && s[i+1] == quote {
			i++
			continue
		}
		return i, nil
	}
	return 0, sqlgen.NewMalformedInputError("unterminated string literal in JSON function call", s[start:])
}
