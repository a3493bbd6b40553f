package dialects

import (
	"fmt"
	"strings"
)

type PostgresDialect struct{}

func (self *PostgresDialect) Name() string {
	return `postgres`
}

func (self *PostgresDialect) Concat(exprs ...string) string {
	return strings.Join(exprs, ` || `)
}

// postgres will not implicitly cast non-text operands of || or STRING_AGG.
func (self *PostgresDialect) CastToText(expr string) string {
	return fmt.Sprintf("CAST(%s AS VARCHAR)", expr)
}

func (self *PostgresDialect) Coalesce(expr string, fallback string) string {
	return fmt.Sprintf("COALESCE(%s, %s)", expr, self.QuoteString(fallback))
}

func (self *PostgresDialect) GroupConcat(expr string, rowDelimiter string, sortSpec string) string {
	if sortSpec == `` {
		return fmt.Sprintf("STRING_AGG(%s, %s)", expr, self.QuoteString(rowDelimiter))
	}

	return fmt.Sprintf(
		"STRING_AGG(%s, %s ORDER BY %s)",
		expr,
		self.QuoteString(rowDelimiter),
		sortSpec,
	)
}

func (self *PostgresDialect) QuoteString(literal string) string {
	return quoteStringLiteral(literal)
}
