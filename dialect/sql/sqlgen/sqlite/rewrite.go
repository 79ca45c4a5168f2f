package sqlite

import (
	"regexp"
	"strings"
)

// boolDefault matches DEFAULT clauses carrying boolean-like tokens,
// quoted or bare, followed by a clause delimiter.
var boolDefault = regexp.MustCompile(`(?i)(DEFAULT\s+)'?(true|false)'?(\s|,|\)|$)`)

// RewriteBooleanDefaults converts boolean-like DEFAULT clauses in
// composed DDL to SQLite's integer representation: DEFAULT true and
// DEFAULT 'true' become DEFAULT 1, and likewise false becomes 0. The
// default-value path and the general literal-escaping path are not
// always unified (raw string defaults arrive as text), so this runs as
// a final transform over the statement. The rewrite is idempotent.
func RewriteBooleanDefaults(query string) string {
	return boolDefault.ReplaceAllStringFunc(query, func(m string) string {
		sub := boolDefault.FindStringSubmatch(m)
		v := "0"
		if strings.EqualFold(sub[2], "true") {
			v = "1"
		}
		return sub[1] + v + sub[3]
	})
}
