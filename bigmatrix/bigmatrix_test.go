// Copyright (c) 2023 Colin McRae

package bigmatrix

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
)

// fromRows builds a matrix from rows of numerator/denominator pairs.
func fromRows(t *testing.T, rows ...[][2]int64) *BigMatrix {
	retVal := NewEmpty(len(rows), len(rows[0]))
	for i, row := range rows {
		require.Equal(t, retVal.NumCols(), len(row))
		for j, entry := range row {
			require.NoError(t, retVal.Set(i, j, big.NewRat(entry[0], entry[1])))
		}
	}
	return retVal
}

func assertEntries(t *testing.T, bm *BigMatrix, rows ...[][2]int64) {
	require.Equal(t, len(rows), bm.NumRows())
	for i, row := range rows {
		require.Equal(t, len(row), bm.NumCols())
		for j, entry := range row {
			value, err := bm.Get(i, j)
			require.NoError(t, err)
			assert.Equalf(t, 0, value.Cmp(big.NewRat(entry[0], entry[1])), "entry (%d, %d) is %s", i, j, value)
		}
	}
}

func TestNewEmpty(t *testing.T) {
	bm := NewEmpty(2, 3)
	assert.Equal(t, 2, bm.NumRows())
	assert.Equal(t, 3, bm.NumCols())
	assert.True(t, bm.IsZero())

	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		bm = NewEmpty(dims[0], dims[1])
		assert.Equal(t, 0, bm.NumRows())
		assert.Equal(t, 0, bm.NumCols())
		assert.True(t, bm.IsZero())
		assert.Equal(t, 0, bm.Rank())
	}
}

func TestSetGet(t *testing.T) {
	bm := NewEmpty(2, 2)
	x := big.NewRat(-3, 4)
	require.NoError(t, bm.Set(1, 0, x))

	// Set copies its argument
	x.SetInt64(5)
	value, err := bm.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "-3/4", value.RatString())
	assert.False(t, bm.IsZero())

	for _, ij := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 2}} {
		assert.Error(t, bm.Set(ij[0], ij[1], x))
		_, err = bm.Get(ij[0], ij[1])
		assert.Error(t, err)
	}
}

func TestMul(t *testing.T) {
	// A 2 x 3 by 3 x 2 product with a zero column and a fractional entry
	x := fromRows(t,
		[][2]int64{{1, 1}, {0, 1}, {-2, 1}},
		[][2]int64{{1, 2}, {3, 1}, {0, 1}},
	)
	y := fromRows(t,
		[][2]int64{{2, 1}, {1, 1}},
		[][2]int64{{0, 1}, {-1, 3}},
		[][2]int64{{1, 1}, {0, 1}},
	)
	product, err := NewEmpty(0, 0).Mul(x, y)
	require.NoError(t, err)
	assertEntries(t, product,
		[][2]int64{{0, 1}, {1, 1}},
		[][2]int64{{1, 1}, {-1, 2}},
	)

	// The receiver may be one of the operands
	_, err = x.Mul(x, y)
	require.NoError(t, err)
	assertEntries(t, x,
		[][2]int64{{0, 1}, {1, 1}},
		[][2]int64{{1, 1}, {-1, 2}},
	)

	_, err = NewEmpty(0, 0).Mul(y, y)
	assert.True(t, errors.Is(err, formerr.ErrDimensionMismatch))
}

func TestMulOfNilpotent(t *testing.T) {
	// A strictly upper triangular 3 x 3 matrix cubes to zero
	n := fromRows(t,
		[][2]int64{{0, 1}, {1, 1}, {5, 2}},
		[][2]int64{{0, 1}, {0, 1}, {-7, 1}},
		[][2]int64{{0, 1}, {0, 1}, {0, 1}},
	)
	square, err := NewEmpty(0, 0).Mul(n, n)
	require.NoError(t, err)
	assert.False(t, square.IsZero())
	cube, err := NewEmpty(0, 0).Mul(square, n)
	require.NoError(t, err)
	assert.True(t, cube.IsZero())
}

func TestRank(t *testing.T) {
	// Third row is the sum of the first two
	bm := fromRows(t,
		[][2]int64{{1, 1}, {2, 1}, {0, 1}, {1, 3}},
		[][2]int64{{0, 1}, {1, 1}, {1, 1}, {0, 1}},
		[][2]int64{{1, 1}, {3, 1}, {1, 1}, {1, 3}},
	)
	assert.Equal(t, 2, bm.Rank())

	// Rank leaves bm unchanged
	value, err := bm.Get(2, 1)
	require.NoError(t, err)
	assert.Equal(t, "3", value.RatString())

	// A pivot found below the first row
	bm = fromRows(t,
		[][2]int64{{0, 1}, {1, 1}},
		[][2]int64{{1, 1}, {0, 1}},
	)
	assert.Equal(t, 2, bm.Rank())

	assert.Equal(t, 0, NewEmpty(3, 2).Rank())
	assert.Equal(t, 1, fromRows(t, [][2]int64{{0, 1}, {-1, 2}}).Rank())
}
