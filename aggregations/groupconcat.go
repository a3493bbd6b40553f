package aggregations

import (
	"strings"

	"github.com/ghetzel/rollup/dal"
	"github.com/ghetzel/rollup/dialects"
	"github.com/spf13/cast"
)

// Delimiters used to flatten multi-field, multi-row data into the single
// string a group concatenation yields.  They must never collide with each
// other, and are chosen to be implausible in ordinary data; values that do
// contain them will decode with misattributed boundaries (accepted
// limitation, the delimiters are not escaped).
const (
	FieldDelimiter = `|#|`
	RowDelimiter   = `|@|`
)

// NullPlaceholder substitutes for NULL fields at compile time so that a null
// never collapses the delimiter sequence and every logical row decodes to the
// full declared field count.
const NullPlaceholder = ` `

// DisplaySeparator joins the per-row formatted values in the final display
// string.
const DisplaySeparator = `, `

// groupConcatAggregation collapses every contributing row's value into one
// delimited string at query time, then inverts that encoding at format time
// so the column's formatter chain runs against each contributing row's own
// field values.
type groupConcatAggregation struct{}

func (self *groupConcatAggregation) Name() string {
	return `Group Concatenation`
}

// Timestamps have no meaningful concatenation semantics; every other type is
// accepted.
func (self *groupConcatAggregation) Compatible(columnType dal.ColumnType) bool {
	return (columnType != dal.TimestampType)
}

// The encoded multi-row string has no stable natural order to sort on.
func (self *groupConcatAggregation) Sortable(_ bool) bool {
	return false
}

// Single-field columns pass through untouched.  Composite columns have each
// field cast to text and null-coalesced, then joined in declaration order
// with the field delimiter, yielding one expression per logical row that the
// decode step can split positionally.
func (self *groupConcatAggregation) CompileFieldExpression(d dialects.Dialect, fields []string) string {
	if len(fields) == 1 {
		return fields[0]
	}

	exprs := make([]string, 0)

	for i, field := range fields {
		if i > 0 {
			exprs = append(exprs, d.QuoteString(FieldDelimiter))
		}

		exprs = append(exprs, d.Coalesce(d.CastToText(field), NullPlaceholder))
	}

	return d.Concat(exprs...)
}

// The flattened expression is grouped with the row delimiter and an explicit
// sort on the expression itself, so concatenation order is deterministic and
// reproducible across executions.
func (self *groupConcatAggregation) CompileAggregateExpression(d dialects.Dialect, field string, _ dal.ColumnType) string {
	return d.GroupConcat(field, RowDelimiter, field)
}

// FormatValue inverts the group-concat encoding: split the raw string into
// logical rows, split each row into exactly as many field values as the
// column declares aliases, rebuild the per-row alias map, and format each
// row's primary value with its own siblings as context.  A token count that
// does not match the declared alias count means the compiled SQL or a dialect
// adapter is broken, and fails hard.
func (self *groupConcatAggregation) FormatValue(column *dal.Column, value interface{}, _ dal.RawRow) (string, error) {
	if value == nil {
		return ``, nil
	}

	raw, err := cast.ToStringE(value)

	if err != nil {
		return ``, err
	}

	aliases := column.Aliases
	formatted := make([]string, 0)

	for _, segment := range strings.Split(raw, RowDelimiter) {
		tokens := strings.Split(segment, FieldDelimiter)

		if len(tokens) != len(aliases) {
			return ``, dal.InternalConsistencyError(
				"column %q: decoded %d fields, declared %d",
				column.Name,
				len(tokens),
				len(aliases),
			)
		}

		row := make(dal.RawRow)

		for i, alias := range aliases {
			row[alias] = tokens[i]
		}

		if v, err := FormatRowValue(column, row.Get(column.PrimaryAlias()), row); err == nil {
			formatted = append(formatted, v)
		} else {
			return ``, err
		}
	}

	return strings.Join(formatted, DisplaySeparator), nil
}
