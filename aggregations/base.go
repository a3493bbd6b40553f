package aggregations

import (
	"github.com/ghetzel/rollup/dal"
	"github.com/ghetzel/rollup/dialects"
)

// CompileFields is the default field compilation shared by every variant: a
// single-field column passes through unchanged, a composite column is joined
// with the dialect's native concatenation, unaggregated.
func CompileFields(d dialects.Dialect, fields []string) string {
	if len(fields) == 1 {
		return fields[0]
	}

	return d.Concat(fields...)
}

// FormatRowValue is the default formatting shared by every variant: run the
// column's formatter chain over the primary value with the row as sibling
// context.
func FormatRowValue(column *dal.Column, value interface{}, row dal.RawRow) (string, error) {
	return column.ApplyFormatters(value, row)
}
