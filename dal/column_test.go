package dal

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumnValidate(t *testing.T) {
	assert := require.New(t)

	column := &Column{
		Name:    `city`,
		Fields:  []string{`city`},
		Aliases: []string{`city`},
		Type:    TextType,
	}

	assert.NoError(column.Validate())

	err := (&Column{Name: `empty`}).Validate()
	assert.Error(err)
	assert.True(IsConfigurationErr(err))

	err = (&Column{
		Name:    `lopsided`,
		Fields:  []string{`firstname`, `lastname`},
		Aliases: []string{`firstname`},
	}).Validate()
	assert.Error(err)
	assert.True(IsConfigurationErr(err))

	err = (&Column{
		Name:    `anonymous`,
		Fields:  []string{`firstname`},
		Aliases: []string{``},
	}).Validate()
	assert.Error(err)
	assert.True(IsConfigurationErr(err))
}

func TestColumnPrimaryAlias(t *testing.T) {
	assert := require.New(t)

	column := &Column{
		Fields:  []string{`firstname`, `lastname`},
		Aliases: []string{`firstname`, `lastname`},
	}

	assert.Equal(`firstname`, column.PrimaryAlias())
	assert.Equal(``, new(Column).PrimaryAlias())
}

func TestApplyFormattersInOrder(t *testing.T) {
	assert := require.New(t)

	column := &Column{
		Name:    `city`,
		Fields:  []string{`city`},
		Aliases: []string{`city`},
		Formatters: []FieldFormatterFunc{
			func(value interface{}, _ RawRow) (interface{}, error) {
				return strings.ToUpper(fmt.Sprintf("%v", value)), nil
			},
			func(value interface{}, _ RawRow) (interface{}, error) {
				return fmt.Sprintf("[%v]", value), nil
			},
		},
	}

	v, err := column.ApplyFormatters(`london`, nil)
	assert.NoError(err)
	assert.Equal(`[LONDON]`, v)
}

func TestApplyFormattersError(t *testing.T) {
	assert := require.New(t)

	column := &Column{
		Name:    `city`,
		Fields:  []string{`city`},
		Aliases: []string{`city`},
		Formatters: []FieldFormatterFunc{
			func(_ interface{}, _ RawRow) (interface{}, error) {
				return nil, fmt.Errorf(`broken formatter`)
			},
		},
	}

	_, err := column.ApplyFormatters(`london`, nil)
	assert.Error(err)
}

func TestApplyFormattersNil(t *testing.T) {
	assert := require.New(t)

	column := &Column{
		Name:    `city`,
		Fields:  []string{`city`},
		Aliases: []string{`city`},
	}

	v, err := column.ApplyFormatters(nil, nil)
	assert.NoError(err)
	assert.Equal(``, v)
}
