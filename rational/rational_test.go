// Copyright (c) 2023 Colin McRae

package rational

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
)

func checkNewFromString_NoError(t *testing.T, input string, expected *big.Rat) {
	actual, err := NewFromString(input)
	assert.NoErrorf(t, err, "unexpected error from NewFromString(%q)", input)
	if err == nil {
		assert.Equalf(t, 0, actual.Cmp(expected), "NewFromString(%q) = %s", input, actual.RatString())
	}
}

func checkNewFromString_Error(t *testing.T, input string) {
	actual, err := NewFromString(input)
	assert.Nil(t, actual)
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
}

func TestNewFromString(t *testing.T) {
	checkNewFromString_NoError(t, "14", big.NewRat(14, 1))
	checkNewFromString_NoError(t, "-3/7", big.NewRat(-3, 7))
	checkNewFromString_NoError(t, " 6/4 ", big.NewRat(3, 2))
	checkNewFromString_NoError(t, "0.25", big.NewRat(1, 4))
	checkNewFromString_NoError(t, "-0", big.NewRat(0, 1))

	checkNewFromString_Error(t, "")
	checkNewFromString_Error(t, "--1")
	checkNewFromString_Error(t, "3/-7")
	checkNewFromString_Error(t, "1e3")
	checkNewFromString_Error(t, "x")
	checkNewFromString_Error(t, "1/0")
}

func TestNewFromValue(t *testing.T) {
	r, err := NewFromValue(3)
	assert.NoError(t, err)
	assert.Equal(t, "3", r.RatString())

	r, err = NewFromValue(int64(-2))
	assert.NoError(t, err)
	assert.Equal(t, "-2", r.RatString())

	r, err = NewFromValue("1/2")
	assert.NoError(t, err)
	assert.Equal(t, "1/2", r.RatString())

	input := big.NewRat(5, 3)
	r, err = NewFromValue(input)
	assert.NoError(t, err)
	assert.Equal(t, "5/3", r.RatString())
	r.SetInt64(0)
	assert.Equal(t, "5/3", input.RatString())

	r, err = NewFromValue(big.NewInt(7))
	assert.NoError(t, err)
	assert.Equal(t, "7", r.RatString())

	_, err = NewFromValue(1.5)
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
	_, err = NewFromValue((*big.Rat)(nil))
	assert.Error(t, err)
}

func TestNewFromFraction(t *testing.T) {
	r, err := NewFromFraction(4, -6)
	assert.NoError(t, err)
	assert.Equal(t, "-2/3", r.RatString())

	_, err = NewFromFraction(1, 0)
	assert.Error(t, err)
}

func TestHelpers(t *testing.T) {
	assert.True(t, IsOne(big.NewRat(2, 2)))
	assert.False(t, IsOne(big.NewRat(-1, 1)))
	assert.False(t, IsOne(big.NewRat(1, 2)))

	x := big.NewRat(3, 4)
	assert.Equal(t, "-3/4", Signed(-1, x).RatString())
	assert.Equal(t, "0", Signed(0, x).RatString())
	assert.Equal(t, "3/4", Signed(1, x).RatString())
	assert.Equal(t, "3/4", x.RatString())

	assert.Equal(t, "\\frac{3}{4}", LaTeX(big.NewRat(-3, 4)))
	assert.Equal(t, "12", LaTeX(big.NewRat(12, 1)))
}
