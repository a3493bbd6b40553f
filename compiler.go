package rollup

import (
	"github.com/ghetzel/go-stockutil/log"
	"github.com/ghetzel/rollup/aggregations"
	"github.com/ghetzel/rollup/dal"
	"github.com/ghetzel/rollup/dialects"
)

// A Compiler turns report columns into SQL select fragments for one resolved
// dialect, and formats raw result rows into display strings.  It holds no
// per-query state; one Compiler per database connection may be shared across
// any number of concurrent report builds.
type Compiler struct {
	Dialect dialects.Dialect
}

func NewCompiler(dialect dialects.Dialect) *Compiler {
	return &Compiler{
		Dialect: dialect,
	}
}

// ValidateColumn checks a column definition against its declared aggregation.
// Every error it returns is a configuration error: the report editor must
// refuse to save the column, and compilation will never be attempted.
func (self *Compiler) ValidateColumn(column *dal.Column) error {
	if err := column.Validate(); err != nil {
		return err
	}

	if column.Aggregation == `` {
		return nil
	}

	aggregation, err := aggregations.Get(column.Aggregation)

	if err != nil {
		return err
	}

	if !aggregation.Compatible(column.Type) {
		return dal.ConfigurationError(
			"aggregation %q cannot apply to %v column %q",
			column.Aggregation,
			column.Type,
			column.Name,
		)
	}

	// summing a concatenation of fields is not meaningful, so composite
	// columns only take the numeric aggregations when the column itself is
	// numeric
	if len(column.Fields) > 1 && aggregations.NumericOnly(column.Aggregation) && !column.Type.IsNumeric() {
		return dal.ConfigurationError(
			"aggregation %q cannot apply to multi-field column %q of type %v",
			column.Aggregation,
			column.Name,
			column.Type,
		)
	}

	return nil
}

// CompileFieldExpression produces the SQL expression representing the
// column's per-row value: the single raw field expression, or the column's
// fields combined per its aggregation.
func (self *Compiler) CompileFieldExpression(column *dal.Column) (string, error) {
	if err := self.ValidateColumn(column); err != nil {
		return ``, err
	}

	if column.Aggregation == `` {
		return aggregations.CompileFields(self.Dialect, column.Fields), nil
	}

	aggregation, err := aggregations.Get(column.Aggregation)

	if err != nil {
		return ``, err
	}

	return aggregation.CompileFieldExpression(self.Dialect, column.Fields), nil
}

// CompileColumn produces the full select fragment for a column: the compiled
// field expression, wrapped in the column's aggregate function if the column
// is aggregated.
func (self *Compiler) CompileColumn(column *dal.Column) (string, error) {
	defer stats.NewTiming().Send(`rollup.compiler.compile_time`)

	fieldExpr, err := self.CompileFieldExpression(column)

	if err != nil {
		return ``, err
	}

	if column.Aggregation == `` {
		return fieldExpr, nil
	}

	aggregation, err := aggregations.Get(column.Aggregation)

	if err != nil {
		return ``, err
	}

	compiled := aggregation.CompileAggregateExpression(self.Dialect, fieldExpr, column.Type)

	log.Debugf("[%v] column %q compiled to: %s", self.Dialect.Name(), column.Name, compiled)

	return compiled, nil
}

// FormatValue produces the display string for the given column in one raw
// result row.  Aggregated columns decode and format through their variant;
// everything else runs the formatter chain directly.
func (self *Compiler) FormatValue(column *dal.Column, row dal.RawRow) (string, error) {
	defer stats.NewTiming().Send(`rollup.compiler.format_time`)

	value := row.Get(column.PrimaryAlias())

	if column.Aggregation == `` {
		return column.ApplyFormatters(value, row)
	}

	aggregation, err := aggregations.Get(column.Aggregation)

	if err != nil {
		return ``, err
	}

	return aggregation.FormatValue(column, value, row)
}

// Sortable reports whether results may be ordered by the given column,
// accounting for its aggregation.
func (self *Compiler) Sortable(column *dal.Column) bool {
	if column.Aggregation != `` {
		if aggregation, err := aggregations.Get(column.Aggregation); err == nil {
			return aggregation.Sortable(column.Sortable)
		}

		return false
	}

	return column.Sortable
}
