package dal

import (
	"github.com/spf13/cast"
)

// A Column is one report display unit: an ordered, non-empty list of raw SQL
// field expressions (more than one only for composite display columns such as
// "full name"), a parallel list of result-set aliases, a type tag, an optional
// aggregation identifier, and an ordered formatter chain.  Columns are never
// mutated by the engine; they may be shared freely across concurrent queries.
type Column struct {
	Name        string               `json:"name"`
	Fields      []string             `json:"fields"`
	Aliases     []string             `json:"aliases"`
	Type        ColumnType           `json:"type"`
	Aggregation string               `json:"aggregation,omitempty"`
	Sortable    bool                 `json:"sortable,omitempty"`
	Formatters  []FieldFormatterFunc `json:"-"`
}

// PrimaryAlias returns the alias of the first-declared field, whose value is
// the one handed to the formatter chain.
func (self *Column) PrimaryAlias() string {
	if len(self.Aliases) > 0 {
		return self.Aliases[0]
	}

	return ``
}

func (self *Column) Validate() error {
	if len(self.Fields) == 0 {
		return ConfigurationError("column %q must declare at least one field", self.Name)
	}

	if len(self.Aliases) != len(self.Fields) {
		return ConfigurationError(
			"column %q declares %d fields but %d aliases",
			self.Name,
			len(self.Fields),
			len(self.Aliases),
		)
	}

	for i, alias := range self.Aliases {
		if alias == `` {
			return ConfigurationError("column %q: alias #%d cannot be empty", self.Name, i)
		}
	}

	return nil
}

// ApplyFormatters runs the column's formatter chain, in order, over the given
// value; row supplies sibling-field context to each formatter.  The final
// value is coerced to a string.
func (self *Column) ApplyFormatters(value interface{}, row RawRow) (string, error) {
	var err error

	for _, formatter := range self.Formatters {
		if value, err = formatter(value, row); err != nil {
			return ``, err
		}
	}

	if value == nil {
		return ``, nil
	}

	return cast.ToStringE(value)
}
