package dal

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/ghetzel/go-stockutil/stringutil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

// DeriveFromFields returns a formatter that replaces the incoming value with
// a string built from the named sibling aliases interpolated into format.
func DeriveFromFields(format string, aliases ...string) FieldFormatterFunc {
	return func(_ interface{}, row RawRow) (interface{}, error) {
		values := make([]interface{}, len(aliases))

		for i, alias := range aliases {
			values[i] = row.Get(alias)
		}

		return fmt.Sprintf(format, values...), nil
	}
}

// JoinFields returns a formatter that joins the named sibling aliases with
// separator, skipping empty values.
func JoinFields(separator string, aliases ...string) FieldFormatterFunc {
	return func(_ interface{}, row RawRow) (interface{}, error) {
		values := make([]string, 0)

		for _, alias := range aliases {
			if v := row.Get(alias); !typeutil.IsZero(v) {
				if s, err := stringutil.ToString(v); err == nil {
					if s = strings.TrimSpace(s); s != `` {
						values = append(values, s)
					}
				} else {
					return nil, err
				}
			}
		}

		return strings.Join(values, separator), nil
	}
}

// ExprFormatter compiles the given expression once and returns a formatter
// that evaluates it per row.  The expression sees the incoming value as
// "value" and every sibling alias as a top-level variable, which lets the
// report editor persist formatting callbacks as plain text.
func ExprFormatter(expression string) (FieldFormatterFunc, error) {
	program, err := expr.Compile(expression, expr.AllowUndefinedVariables())

	if err != nil {
		return nil, ConfigurationError("invalid formatter expression: %v", err)
	}

	return func(value interface{}, row RawRow) (interface{}, error) {
		env := make(map[string]interface{})

		for alias, v := range row {
			env[alias] = v
		}

		env[`value`] = value

		return expr.Run(program, env)
	}, nil
}
