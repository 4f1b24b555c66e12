// Copyright (c) 2023 Colin McRae

package cubical

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

func omega(t *testing.T, n int, key string) *DupontForm {
	df, err := Omega(n, key)
	require.NoError(t, err)
	return df
}

func TestNewDupontForm(t *testing.T) {
	df := newDupont(t, 2, map[string]any{",01": 1, "2|1,": "-1/2"})
	assert.Equal(t, "\\omega_{\\emptyset,01} + \\frac{1}{2}\\omega_{1|2,\\emptyset}", df.String())
	assert.Equal(t, "1/2", df.Coefficient("1|2,").RatString())
	assert.Equal(t, "-1/2", df.Coefficient("2|1,").RatString())
	assert.Equal(t, -1, df.Degree())

	df = newDupont(t, 4, map[string]any{"4|2,01": 3})
	assert.Equal(t, "-3\\omega_{2|4,01}", df.String())
	assert.Equal(t, 2, df.Degree())

	// The constant 1 is the sum of the vertices
	one := newDupont(t, 2, map[string]any{"": 1})
	assert.Equal(t, 4, len(one.terms))
	assert.True(t, one.I().Equal(parse(t, 2, "1")))

	// A repeated direction gives zero but the key still needs its bits
	assert.True(t, newDupont(t, 2, map[string]any{"1|1,0": 1}).IsZero())
	assert.True(t, newDupont(t, 3, map[string]any{"2|1|2,1": 1}).IsZero())

	for _, key := range []string{"1,00", "3,0", "1,2", "1", "1,0,0", "0,1", "1|1,", "1|1,00", "1|3,0"} {
		_, err := NewDupontForm(2, map[string]any{key: 1})
		assert.Truef(t, errors.Is(err, formerr.ErrInvalidForm), "key %q", key)
	}
	_, err := NewDupontForm(2, map[string]any{"1,0": 1.5})
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
	_, err = Omega(2, "")
	assert.True(t, errors.Is(err, formerr.ErrInvalidForm))
}

func TestDupontArithmetic(t *testing.T) {
	rng := rand.New(rand.NewSource(61))
	a := newDupont(t, 3, util.RandomCubeCellSpec(rng, 3, 1, 4))
	b := newDupont(t, 3, util.RandomCubeCellSpec(rng, 3, 2, 4))

	sum, err := a.Add(b)
	require.NoError(t, err)
	difference, err := sum.Sub(b)
	require.NoError(t, err)
	assert.True(t, difference.Equal(a))
	assert.True(t, a.Scale(big.NewRat(0, 1)).IsZero())
	assert.True(t, sum.I().Equal(add(t, a.I(), b.I())))

	_, err = a.Add(omega(t, 2, "1,0"))
	assert.True(t, errors.Is(err, formerr.ErrDimensionMismatch))
}

func TestI(t *testing.T) {
	assert.Equal(t, "1 - x_{1}", omega(t, 1, ",0").I().String())
	assert.Equal(t, "x_{1}", omega(t, 1, ",1").I().String())
	assert.Equal(t, "dx_{1}", omega(t, 1, "1,").I().String())
	assert.True(t, omega(t, 3, "2,01").I().Equal(parse(t, 3, "x_3*dx_2 - x_1*x_3*dx_2")))
}

func TestDupontD(t *testing.T) {
	// On the interval d(1 - x) = -dx, so d omega_{0} = -omega_{dx}
	assert.True(t, omega(t, 1, ",0").D().Equal(omega(t, 1, "1,").Neg()))
	assert.True(t, omega(t, 1, ",1").D().Equal(omega(t, 1, "1,")))
	assert.True(t, omega(t, 1, ",0").I().D().Equal(omega(t, 1, ",0").D().I()))

	expected := newDupont(t, 2, map[string]any{"1,1": -1, "2,0": 1})
	assert.True(t, omega(t, 2, ",01").D().Equal(expected))

	expected = newDupont(t, 3, map[string]any{"1|2,1": -1, "2|3,0": -1})
	assert.True(t, omega(t, 3, "2,01").D().Equal(expected))

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
	basis, err := Basis(2)
	require.NoError(t, err)
	keys := make([]string, len(basis))
	for i, df := range basis {
		for cell := range df.terms {
			keys[i] = cell.String()
		}
	}
	assert.Equal(t, []string{",00", ",01", ",10", ",11", "1,0", "1,1", "2,0", "2,1", "1|2,"}, keys)

	edges, err := BasisOfDegree(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 12, len(edges))

	_, err = BasisOfDegree(3, 4)
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
}

func TestDifferentialMatrix(t *testing.T) {
	for n := 1; n <= 4; n++ {
		d0, err := DifferentialMatrix(n, 0)
		require.NoError(t, err)
		assert.Equal(t, (1<<n)-1, d0.Rank())

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

	_, err := DifferentialMatrix(2, 2)
	assert.True(t, errors.Is(err, formerr.ErrInvalidArgumentType))
}

func TestAInfinityProduct(t *testing.T) {
	l := func(forms ...*DupontForm) *DupontForm {
		product, err := AInfinityProduct(forms)
		require.NoError(t, err)
		return product
	}
	half := big.NewRat(1, 2)
	assert.True(t, l(omega(t, 1, ",0"), omega(t, 1, ",0")).Equal(omega(t, 1, ",0")))
	assert.True(t, l(omega(t, 1, ",0"), omega(t, 1, ",1")).IsZero())
	assert.True(t, l(omega(t, 1, ",1"), omega(t, 1, "1,")).Equal(omega(t, 1, "1,").Scale(half)))
	assert.True(t, l(omega(t, 1, "1,"), omega(t, 1, ",0"), omega(t, 1, "1,")).IsZero())

	assert.Equal(t, "\\frac{1}{4}\\omega_{1|2,\\emptyset}", l(omega(t, 2, "1,0"), omega(t, 2, "2,0")).String())
	assert.Equal(t, "-\\frac{1}{4}\\omega_{1|2,\\emptyset}", l(omega(t, 2, "2,0"), omega(t, 2, "1,0")).String())
	assert.Equal(t, "\\frac{1}{8}\\omega_{1|2|3,\\emptyset}", l(omega(t, 3, "1|2,0"), omega(t, 3, "3,01")).String())
	assert.True(t, l(omega(t, 3, "1|2,0"), omega(t, 3, "1|3,0")).IsZero())

	assert.Equal(t, "\\frac{7}{288}\\omega_{1|2,\\emptyset}",
		l(omega(t, 2, "1,0"), omega(t, 2, "1,0"), omega(t, 2, "2,0")).String())
	assert.Equal(t, "\\frac{5}{288}\\omega_{1|2,\\emptyset}",
		l(omega(t, 2, "1,0"), omega(t, 2, "2,0"), omega(t, 2, "2,1")).String())
	assert.True(t, l(omega(t, 2, "1,0"), omega(t, 2, ",00"), omega(t, 2, "2,0")).IsZero())

	// The binary product is the tree product of the single binary tree
	a, b := omega(t, 2, "1,1"), omega(t, 2, "2,0")
	tree, err := TreeProduct(operad.MustNode(operad.Leaf(a), operad.Leaf(b)))
	require.NoError(t, err)
	assert.True(t, tree.Equal(l(a, b)))

	_, err = AInfinityProduct([]*DupontForm{a, omega(t, 1, ",0")})
	assert.True(t, errors.Is(err, formerr.ErrDimensionMismatch))
}
