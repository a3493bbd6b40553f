package dialects

import (
	"fmt"
	"strings"
)

type SqliteDialect struct{}

func (self *SqliteDialect) Name() string {
	return `sqlite`
}

func (self *SqliteDialect) Concat(exprs ...string) string {
	return strings.Join(exprs, ` || `)
}

// sqlite coerces operands of || to text on its own, so no explicit cast is
// needed.
func (self *SqliteDialect) CastToText(expr string) string {
	return expr
}

func (self *SqliteDialect) Coalesce(expr string, fallback string) string {
	return fmt.Sprintf("COALESCE(%s, %s)", expr, self.QuoteString(fallback))
}

// sqlite's GROUP_CONCAT has no ORDER BY clause; concatenation order follows
// the order rows arrive from the enclosing query, so callers wanting the
// sortSpec honored must order the input relation.  The sortSpec argument is
// accepted for interface parity and intentionally unused.
func (self *SqliteDialect) GroupConcat(expr string, rowDelimiter string, _ string) string {
	return fmt.Sprintf("GROUP_CONCAT(%s, %s)", expr, self.QuoteString(rowDelimiter))
}

func (self *SqliteDialect) QuoteString(literal string) string {
	return quoteStringLiteral(literal)
}
