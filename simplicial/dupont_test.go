// Copyright (c) 2023 Colin McRae

package simplicial

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielRobertNicoud/dupont-contraction/bigmatrix"
	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
	"github.com/DanielRobertNicoud/dupont-contraction/operad"
	"github.com/DanielRobertNicoud/dupont-contraction/util"
)

func newDupont(t *testing.T, n int, form map[string]any) *DupontForm {
	df, err := NewDupontForm(n, form)
	require.NoError(t, err)
	return df
}

func omega(t *testing.T, n int, vertices ...int) *DupontForm {
	df, err := Omega(n, vertices...)
	require.NoError(t, err)
	return df
}

func TestNewDupontForm(t *testing.T) {
	// The empty key is the constant 1
	one := newDupont(t, 2, map[string]any{"": 1})
	assert.Equal(t, "\\omega_{0} + \\omega_{1} + \\omega_{2}", one.String())
	assert.True(t, one.I().Equal(newSullivan(t, 2, map[string]map[string]any{"": {"0|0|0": 1}})))

	a := newDupont(t, 2, map[string]any{"2|1": 1})
	assert.True(t, a.Equal(omega(t, 2, 1, 2).Neg()))
	assert.Equal(t, "-1", a.Coefficient(1, 2).RatString())
	assert.Equal(t, "1", a.Coefficient(2, 1).RatString())
	assert.True(t, newDupont(t, 2, map[string]any{"1|1": 1}).IsZero())

	df := newDupont(t, 3, map[string]any{"0|2|1": "3/4", "0|1": -1})
	assert.Equal(t, "-\\omega_{0|1} - \\frac{3}{4}\\omega_{0|1|2}", df.LaTeX())
	assert.Equal(t, -1, df.Degree())
	assert.Equal(t, 2, omega(t, 3, 0, 1, 2).Degree())

	// The top cell of the simplex has n+1 vertices
	assert.False(t, newDupont(t, 2, map[string]any{"0|1|2": 1}).IsZero())

	_, err := NewDupontForm(2, map[string]any{"3": 1})
	assert.True(t, errors.Is(err, formerr.ErrInvalidForm))
	_, err = NewDupontForm(2, map[string]any{"0|a": 1})
	assert.True(t, errors.Is(err, formerr.ErrInvalidForm))
	_, err = NewDupontForm(2, map[string]any{"0": []int{1}})
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
	_, err = Omega(2)
	assert.True(t, errors.Is(err, formerr.ErrInvalidForm))
	_, err = Omega(2, 0, 4)
	assert.True(t, errors.Is(err, formerr.ErrInvalidForm))
	_, err = ZeroDupont(-2)
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
}

func TestDupontArithmetic(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	a := newDupont(t, 3, util.RandomVertexSetSpec(rng, 3, 1, 4))
	b := newDupont(t, 3, util.RandomVertexSetSpec(rng, 3, 2, 4))

	sum, err := a.Add(b)
	require.NoError(t, err)
	sum2, err := b.Add(a)
	require.NoError(t, err)
	assert.True(t, sum.Equal(sum2))

	difference, err := sum.Sub(b)
	require.NoError(t, err)
	assert.True(t, difference.Equal(a))

	double, err := a.Add(a)
	require.NoError(t, err)
	assert.True(t, double.Equal(a.Scale(big.NewRat(2, 1))))
	assert.True(t, a.Scale(new(big.Rat)).IsZero())
	assert.True(t, a.Zero().IsZero())

	// I is linear
	assert.True(t, sum.I().Equal(add(t, a.I(), b.I())))

	_, err = a.Add(omega(t, 2, 0))
	assert.True(t, errors.Is(err, formerr.ErrDimensionMismatch))
	_, err = a.Sub(omega(t, 2, 0))
	assert.True(t, errors.Is(err, formerr.ErrDimensionMismatch))
	assert.False(t, a.Equal(omega(t, 2, 0)))
}

func TestDupontD(t *testing.T) {
	// d omega_0 = -omega_{01} on the 1-simplex
	assert.True(t, omega(t, 1, 0).D().Equal(omega(t, 1, 0, 1).Neg()))
	assert.True(t, omega(t, 1, 1).D().Equal(omega(t, 1, 0, 1)))

	// d 1 = 0
	assert.True(t, newDupont(t, 3, map[string]any{"": 1}).D().IsZero())

	for n := 1; n <= 3; n++ {
		basis, err := Basis(n)
		require.NoError(t, err)
		for _, df := range basis {
			assert.True(t, df.D().D().IsZero())
			assert.Truef(t, df.D().I().Equal(df.I().D()), "n = %d, %s", n, df)
		}
	}
}

func TestBasis(t *testing.T) {
	basis, err := Basis(3)
	require.NoError(t, err)
	assert.Equal(t, 15, len(basis))
	assert.Equal(t, "\\omega_{0}", basis[0].String())
	assert.Equal(t, "\\omega_{0|1|2|3}", basis[14].String())

	edges, err := BasisOfDegree(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, len(edges))
	assert.Equal(t, "\\omega_{0|3}", edges[2].String())

	_, err = BasisOfDegree(3, 4)
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
	_, err = Basis(-1)
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
}

func TestDifferentialMatrix(t *testing.T) {
	for n := 1; n <= 4; n++ {
		d0, err := DifferentialMatrix(n, 0)
		require.NoError(t, err)
		assert.Equal(t, n, d0.Rank())

		for k := 0; k+1 < n; k++ {
			dk, err := DifferentialMatrix(n, k)
			require.NoError(t, err)
			dk1, err := DifferentialMatrix(n, k+1)
			require.NoError(t, err)
			product, err := bigmatrix.NewEmpty(dk1.NumRows(), dk.NumCols()).Mul(dk1, dk)
			require.NoError(t, err)
			assert.True(t, product.IsZero())
		}
	}

	// d omega_0 = -omega_01 and d omega_1 = omega_01
	d0, err := DifferentialMatrix(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1, d0.NumRows())
	for col, expected := range []int64{-1, 1} {
		entry, err := d0.Get(0, col)
		require.NoError(t, err)
		assert.Equal(t, 0, entry.Cmp(big.NewRat(expected, 1)))
	}

	_, err = DifferentialMatrix(2, 2)
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
}

func TestTreeProduct(t *testing.T) {
	// The root of a two leaf tree is p(i(a) i(b))
	a := omega(t, 2, 0, 1)
	b := omega(t, 2, 1, 2)
	product, err := TreeProduct(operad.MustNode(operad.Leaf(a), operad.Leaf(b)))
	require.NoError(t, err)
	assert.True(t, product.Equal(mul(t, a.I(), b.I()).P()))
	assert.Equal(t, "\\frac{1}{6}\\omega_{0|1|2}", product.String())

	leaf, err := TreeProduct(operad.Leaf(a))
	require.NoError(t, err)
	assert.True(t, leaf.Equal(a))

	// A zero leaf gives the zero form of the right dimension
	zero, err := TreeProduct(operad.MustNode(operad.Leaf(a), operad.Leaf(a.Zero())))
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.Equal(t, 2, zero.Dim())

	_, err = TreeProduct(operad.MustNode(operad.Leaf(a), operad.Leaf(omega(t, 1, 0))))
	assert.True(t, errors.Is(err, formerr.ErrDimensionMismatch))
	_, err = TreeProduct(nil)
	assert.True(t, errors.Is(err, formerr.ErrInvalidTree))
}

func TestAInfinityProduct(t *testing.T) {
	l2 := func(a, b *DupontForm) *DupontForm {
		product, err := AInfinityProduct([]*DupontForm{a, b})
		require.NoError(t, err)
		return product
	}
	assert.True(t, l2(omega(t, 1, 0), omega(t, 1, 0)).Equal(omega(t, 1, 0)))
	assert.True(t, l2(omega(t, 1, 0), omega(t, 1, 1)).IsZero())
	assert.True(t, l2(omega(t, 1, 0), omega(t, 1, 0, 1)).Equal(omega(t, 1, 0, 1).Scale(big.NewRat(1, 2))))
	assert.True(t, l2(omega(t, 1, 0, 1), omega(t, 1, 0)).Equal(omega(t, 1, 0, 1).Scale(big.NewRat(1, 2))))
	assert.True(t, l2(omega(t, 2, 0), omega(t, 2, 0, 1, 2)).Equal(omega(t, 2, 0, 1, 2).Scale(big.NewRat(1, 3))))

	// Arity 3 is T(a, [b, c]) - T([a, b], c)
	a, b, c := omega(t, 2, 0, 1), omega(t, 2, 0, 1), omega(t, 2, 1, 2)
	l3, err := AInfinityProduct([]*DupontForm{a, b, c})
	require.NoError(t, err)
	right, err := TreeProduct(operad.MustNode(operad.Leaf(a), operad.MustNode(operad.Leaf(b), operad.Leaf(c))))
	require.NoError(t, err)
	left, err := TreeProduct(operad.MustNode(operad.MustNode(operad.Leaf(a), operad.Leaf(b)), operad.Leaf(c)))
	require.NoError(t, err)
	expected, err := right.Sub(left)
	require.NoError(t, err)
	assert.True(t, l3.Equal(expected))
	assert.Equal(t, "-\\frac{1}{72}\\omega_{0|1|2}", l3.String())

	// The unit is strict in arity 3
	one := newDupont(t, 1, map[string]any{"": 1})
	l3, err = AInfinityProduct([]*DupontForm{omega(t, 1, 0, 1), one, omega(t, 1, 0, 1)})
	require.NoError(t, err)
	assert.True(t, l3.IsZero())

	l1, err := AInfinityProduct([]*DupontForm{a})
	require.NoError(t, err)
	assert.True(t, l1.Equal(a))

	_, err = AInfinityProduct(nil)
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
	_, err = AInfinityProduct([]*DupontForm{a, omega(t, 1, 0)})
	assert.True(t, errors.Is(err, formerr.ErrDimensionMismatch))
}
