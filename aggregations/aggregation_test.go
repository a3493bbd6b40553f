package aggregations

import (
	"testing"

	"github.com/ghetzel/rollup/dal"
	"github.com/ghetzel/rollup/dialects"
	"github.com/stretchr/testify/require"
)

func TestGetAggregations(t *testing.T) {
	assert := require.New(t)

	assert.Equal([]string{
		`average`,
		`count`,
		`groupconcat`,
		`maximum`,
		`minimum`,
		`sum`,
	}, All())

	for _, identifier := range All() {
		aggregation, err := Get(identifier)
		assert.NoError(err)
		assert.NotEmpty(aggregation.Name())
	}

	_, err := Get(`median`)
	assert.Error(err)
	assert.True(dal.IsConfigurationErr(err))
}

func TestCompatibility(t *testing.T) {
	assert := require.New(t)

	numericOnly := []string{Sum, Average, Minimum, Maximum}

	for _, identifier := range numericOnly {
		aggregation, err := Get(identifier)
		assert.NoError(err)

		assert.True(aggregation.Compatible(dal.NumericType), identifier)
		assert.False(aggregation.Compatible(dal.TextType), identifier)
		assert.False(aggregation.Compatible(dal.TimestampType), identifier)
		assert.False(aggregation.Compatible(dal.LongtextType), identifier)
	}

	count, err := Get(Count)
	assert.NoError(err)

	for _, ct := range dal.AllColumnTypes {
		assert.True(count.Compatible(ct), ct.String())
	}

	groupconcat, err := Get(GroupConcat)
	assert.NoError(err)

	for _, ct := range dal.AllColumnTypes {
		if ct == dal.TimestampType {
			assert.False(groupconcat.Compatible(ct))
		} else {
			assert.True(groupconcat.Compatible(ct), ct.String())
		}
	}
}

func TestSortable(t *testing.T) {
	assert := require.New(t)

	for _, identifier := range []string{Count, Sum, Average, Minimum, Maximum} {
		aggregation, err := Get(identifier)
		assert.NoError(err)

		// passthrough
		assert.True(aggregation.Sortable(true), identifier)
		assert.False(aggregation.Sortable(false), identifier)
	}

	groupconcat, err := Get(GroupConcat)
	assert.NoError(err)
	assert.False(groupconcat.Sortable(true))
	assert.False(groupconcat.Sortable(false))
}

func TestNumericOnly(t *testing.T) {
	assert := require.New(t)

	for _, identifier := range []string{Sum, Average, Minimum, Maximum} {
		assert.True(NumericOnly(identifier), identifier)
	}

	assert.False(NumericOnly(Count))
	assert.False(NumericOnly(GroupConcat))
	assert.False(NumericOnly(`median`))
}

func TestSimpleCompile(t *testing.T) {
	assert := require.New(t)

	dialect, err := dialects.Get(`sqlite`)
	assert.NoError(err)

	tests := map[string]string{
		Count:   `COUNT(amount)`,
		Sum:     `SUM(amount)`,
		Average: `AVG(amount)`,
		Minimum: `MIN(amount)`,
		Maximum: `MAX(amount)`,
	}

	for identifier, expected := range tests {
		aggregation, err := Get(identifier)
		assert.NoError(err)

		field := aggregation.CompileFieldExpression(dialect, []string{`amount`})
		assert.Equal(`amount`, field, identifier)
		assert.Equal(expected, aggregation.CompileAggregateExpression(dialect, field, dal.NumericType), identifier)
	}
}

func TestSimpleMultiFieldCompile(t *testing.T) {
	assert := require.New(t)

	count, err := Get(Count)
	assert.NoError(err)

	sqlite, err := dialects.Get(`sqlite`)
	assert.NoError(err)
	assert.Equal(
		`first_name || last_name`,
		count.CompileFieldExpression(sqlite, []string{`first_name`, `last_name`}),
	)

	mysql, err := dialects.Get(`mysql`)
	assert.NoError(err)
	assert.Equal(
		`CONCAT(first_name, last_name)`,
		count.CompileFieldExpression(mysql, []string{`first_name`, `last_name`}),
	)
}

func TestSimpleFormatValue(t *testing.T) {
	assert := require.New(t)

	sum, err := Get(Sum)
	assert.NoError(err)

	column := &dal.Column{
		Name:        `total`,
		Fields:      []string{`amount`},
		Aliases:     []string{`amount`},
		Type:        dal.NumericType,
		Aggregation: Sum,
	}

	v, err := sum.FormatValue(column, 1234.5, dal.RawRow{`amount`: 1234.5})
	assert.NoError(err)
	assert.Equal(`1234.5`, v)
}
