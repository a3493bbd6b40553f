package dal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveFromFields(t *testing.T) {
	assert := require.New(t)

	formatter := DeriveFromFields(`%v, %v`, `lastname`, `firstname`)

	v, err := formatter(`Ada`, RawRow{
		`firstname`: `Ada`,
		`lastname`:  `Lovelace`,
	})
	assert.NoError(err)
	assert.Equal(`Lovelace, Ada`, v)
}

func TestJoinFields(t *testing.T) {
	assert := require.New(t)

	formatter := JoinFields(` `, `firstname`, `lastname`)

	v, err := formatter(`Ada`, RawRow{
		`firstname`: `Ada`,
		`lastname`:  `Lovelace`,
	})
	assert.NoError(err)
	assert.Equal(`Ada Lovelace`, v)

	// blank and missing siblings are skipped, not joined as empty tokens
	v, err = formatter(`Ada`, RawRow{
		`firstname`: `Ada`,
		`lastname`:  ` `,
	})
	assert.NoError(err)
	assert.Equal(`Ada`, v)

	v, err = formatter(`Ada`, RawRow{
		`firstname`: `Ada`,
	})
	assert.NoError(err)
	assert.Equal(`Ada`, v)
}

func TestExprFormatter(t *testing.T) {
	assert := require.New(t)

	formatter, err := ExprFormatter(`firstname + " " + lastname`)
	assert.NoError(err)

	v, err := formatter(`Grace`, RawRow{
		`firstname`: `Grace`,
		`lastname`:  `Hopper`,
	})
	assert.NoError(err)
	assert.Equal(`Grace Hopper`, v)

	// the incoming value is visible as "value"
	formatter, err = ExprFormatter(`upper(value)`)
	assert.NoError(err)

	v, err = formatter(`grace`, RawRow{})
	assert.NoError(err)
	assert.Equal(`GRACE`, v)
}

func TestExprFormatterInvalid(t *testing.T) {
	assert := require.New(t)

	_, err := ExprFormatter(`firstname +`)
	assert.Error(err)
	assert.True(IsConfigurationErr(err))
}
