package dal

type ColumnType string

const (
	NumericType   ColumnType = `numeric`
	TextType      ColumnType = `text`
	TimestampType ColumnType = `timestamp`
	LongtextType  ColumnType = `longtext`
)

func (self ColumnType) String() string {
	return string(self)
}

func (self ColumnType) IsNumeric() bool {
	return self == NumericType
}

// AllColumnTypes enumerates every type a report column may be tagged with.
var AllColumnTypes = []ColumnType{
	NumericType,
	TextType,
	TimestampType,
	LongtextType,
}

// A FieldFormatterFunc transforms a raw column value into its display
// representation.  The full reconstructed row is passed alongside the value so
// that formatters may consult sibling fields (e.g. combining a first and last
// name); formatters are applied in the order they appear on the column.
type FieldFormatterFunc func(value interface{}, row RawRow) (interface{}, error)
