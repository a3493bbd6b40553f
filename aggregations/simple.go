package aggregations

import (
	"fmt"

	"github.com/ghetzel/rollup/dal"
	"github.com/ghetzel/rollup/dialects"
)

// simpleAggregation covers every variant that is just "wrap one field in a
// SQL aggregate function": count, sum, average, minimum, maximum.
type simpleAggregation struct {
	label       string
	function    string
	numericOnly bool
}

func (self *simpleAggregation) Name() string {
	return self.label
}

func (self *simpleAggregation) Compatible(columnType dal.ColumnType) bool {
	if self.numericOnly {
		return columnType.IsNumeric()
	}

	return true
}

func (self *simpleAggregation) Sortable(columnSortable bool) bool {
	return columnSortable
}

func (self *simpleAggregation) CompileFieldExpression(d dialects.Dialect, fields []string) string {
	return CompileFields(d, fields)
}

func (self *simpleAggregation) CompileAggregateExpression(_ dialects.Dialect, field string, _ dal.ColumnType) string {
	return fmt.Sprintf("%s(%s)", self.function, field)
}

func (self *simpleAggregation) FormatValue(column *dal.Column, value interface{}, row dal.RawRow) (string, error) {
	return FormatRowValue(column, value, row)
}
