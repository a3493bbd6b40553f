package dialects

import (
	"fmt"
	"strings"
)

type MysqlDialect struct{}

func (self *MysqlDialect) Name() string {
	return `mysql`
}

func (self *MysqlDialect) Concat(exprs ...string) string {
	if len(exprs) == 1 {
		return exprs[0]
	}

	return fmt.Sprintf("CONCAT(%s)", strings.Join(exprs, `, `))
}

func (self *MysqlDialect) CastToText(expr string) string {
	return fmt.Sprintf("CAST(%s AS CHAR)", expr)
}

func (self *MysqlDialect) Coalesce(expr string, fallback string) string {
	return fmt.Sprintf("COALESCE(%s, %s)", expr, self.QuoteString(fallback))
}

func (self *MysqlDialect) GroupConcat(expr string, rowDelimiter string, sortSpec string) string {
	if sortSpec == `` {
		return fmt.Sprintf("GROUP_CONCAT(%s SEPARATOR %s)", expr, self.QuoteString(rowDelimiter))
	}

	return fmt.Sprintf(
		"GROUP_CONCAT(%s ORDER BY %s SEPARATOR %s)",
		expr,
		sortSpec,
		self.QuoteString(rowDelimiter),
	)
}

func (self *MysqlDialect) QuoteString(literal string) string {
	return quoteStringLiteral(literal)
}
