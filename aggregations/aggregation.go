// Package aggregations implements the closed set of per-column aggregation
// variants a report column may carry, the compilation of column field
// expressions into dialect-portable aggregate SQL, and the decoding of
// aggregated result strings back into per-row values for display formatting.
package aggregations

import (
	"sort"

	"github.com/ghetzel/rollup/dal"
	"github.com/ghetzel/rollup/dialects"
)

// Aggregation variant identifiers as persisted in a column's stored
// configuration.
const (
	Count       = `count`
	Sum         = `sum`
	Average     = `average`
	Minimum     = `minimum`
	Maximum     = `maximum`
	GroupConcat = `groupconcat`
)

// An Aggregation is one variant of collapsing many source-row values into a
// single result value.  Implementations are stateless and reentrant: the same
// instance serves every column and every concurrent query.
type Aggregation interface {
	// Name returns the human-readable label for this variant.
	Name() string

	// Compatible reports whether this variant may legally be attached to a
	// column of the given type.  Incompatible pairings are configuration
	// errors caught before SQL compilation.
	Compatible(columnType dal.ColumnType) bool

	// Sortable reports whether the aggregated column may be used for result
	// ordering, given whether the unaggregated column is sortable.
	Sortable(columnSortable bool) bool

	// CompileFieldExpression combines a column's raw field expressions into
	// one SQL expression representing that column's per-row value.
	CompileFieldExpression(d dialects.Dialect, fields []string) string

	// CompileAggregateExpression wraps the compiled field expression in this
	// variant's aggregate SQL function.
	CompileAggregateExpression(d dialects.Dialect, field string, columnType dal.ColumnType) string

	// FormatValue produces the display string for one result cell, running
	// the column's formatter chain with the row as sibling context.
	FormatValue(column *dal.Column, value interface{}, row dal.RawRow) (string, error)
}

// The variant set is fixed and dispatch over it is exhaustive, so the
// registry is closed: there is deliberately no Register function.
var registry = map[string]Aggregation{
	Count:       &simpleAggregation{label: `Count`, function: `COUNT`},
	Sum:         &simpleAggregation{label: `Sum`, function: `SUM`, numericOnly: true},
	Average:     &simpleAggregation{label: `Average`, function: `AVG`, numericOnly: true},
	Minimum:     &simpleAggregation{label: `Minimum`, function: `MIN`, numericOnly: true},
	Maximum:     &simpleAggregation{label: `Maximum`, function: `MAX`, numericOnly: true},
	GroupConcat: &groupConcatAggregation{},
}

// Get returns the variant registered under the given identifier.
func Get(identifier string) (Aggregation, error) {
	if aggregation, ok := registry[identifier]; ok {
		return aggregation, nil
	}

	return nil, dal.ConfigurationError("unknown aggregation %q", identifier)
}

// All returns every registered variant identifier, sorted.
func All() []string {
	identifiers := make([]string, 0)

	for identifier := range registry {
		identifiers = append(identifiers, identifier)
	}

	sort.Strings(identifiers)

	return identifiers
}

// NumericOnly reports whether the given identifier names a variant that only
// applies to numeric columns (sum, average, minimum, maximum).
func NumericOnly(identifier string) bool {
	if aggregation, ok := registry[identifier]; ok {
		if simple, ok := aggregation.(*simpleAggregation); ok {
			return simple.numericOnly
		}
	}

	return false
}
