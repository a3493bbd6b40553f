package dialects

import (
	"sort"
	"strings"

	"github.com/ghetzel/rollup/dal"
)

// A Dialect hides the SQL syntax differences between database families that
// matter to aggregate compilation: string concatenation, casting values to
// text, null coalescing, and group concatenation (including how that family
// expresses a deterministic ordering of the grouped values).  Dialects are
// stateless translation layers; a single instance may be shared by any number
// of concurrent compilations.
type Dialect interface {
	Name() string
	Concat(exprs ...string) string
	CastToText(expr string) string
	Coalesce(expr string, fallback string) string
	GroupConcat(expr string, rowDelimiter string, sortSpec string) string
	QuoteString(literal string) string
}

var registry = map[string]Dialect{
	`sqlite`:   new(SqliteDialect),
	`mysql`:    new(MysqlDialect),
	`postgres`: new(PostgresDialect),
}

// Get returns the dialect registered under the given name.  The set of
// dialects is fixed; asking for an unknown one is a configuration error.
func Get(name string) (Dialect, error) {
	if dialect, ok := registry[name]; ok {
		return dialect, nil
	}

	return nil, dal.ConfigurationError("unknown SQL dialect %q", name)
}

func All() []string {
	names := make([]string, 0)

	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// quoteStringLiteral is the SQL-92 single-quoted literal shared by every
// supported dialect.
func quoteStringLiteral(literal string) string {
	return `'` + strings.Replace(literal, `'`, `''`, -1) + `'`
}
