// Copyright (c) 2023 Colin McRae

package cubical

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/DanielRobertNicoud/dupont-contraction/bigmatrix"
	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
	"github.com/DanielRobertNicoud/dupont-contraction/multiindex"
	"github.com/DanielRobertNicoud/dupont-contraction/operad"
	"github.com/DanielRobertNicoud/dupont-contraction/rational"
)

// DupontForm is a linear combination of the forms omega_{I,J} dual to the
// cells of the n-cube. omega_{I,J} has degree |I|.
type DupontForm struct {
	n     int
	terms map[Cell]*big.Rat
}

// NewDupontForm creates a form on the n-cube from a map whose keys are cells
// "i_1|...|i_k,b_1...b_{n-k}" and whose values are coefficients accepted by
// rational.NewFromValue. The empty key denotes the constant 1, the sum of
// the forms of all vertices.
func NewDupontForm(n int, form map[string]any) (*DupontForm, error) {
	const caller = "cubical.NewDupontForm"
	if err := checkDimension(caller, n); err != nil {
		return nil, err
	}
	retVal := zeroDupont(n)
	for key, value := range form {
		coeff, err := rational.NewFromValue(value)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(key) == "" {
			for _, vertex := range cells(n, 0) {
				retVal.addTerm(vertex, coeff)
			}
			continue
		}
		cell, sign, err := parseCell(n, key)
		if err != nil {
			return nil, formerr.InvalidForm(caller, "%s", err.Error())
		}
		if sign != 0 {
			retVal.addTerm(cell, rational.Signed(sign, coeff))
		}
	}
	return retVal, nil
}

// Omega returns the basis form omega_{key} on the n-cube.
func Omega(n int, key string) (*DupontForm, error) {
	if strings.TrimSpace(key) == "" {
		return nil, formerr.InvalidForm("cubical.Omega", "a basis form needs a cell")
	}
	return NewDupontForm(n, map[string]any{key: 1})
}

// ZeroDupont returns the zero form on the n-cube.
func ZeroDupont(n int) (*DupontForm, error) {
	if err := checkDimension("cubical.ZeroDupont", n); err != nil {
		return nil, err
	}
	return zeroDupont(n), nil
}

func zeroDupont(n int) *DupontForm {
	return &DupontForm{n: n, terms: map[Cell]*big.Rat{}}
}

func (df *DupontForm) addTerm(cell Cell, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	existing, ok := df.terms[cell]
	if !ok {
		df.terms[cell] = new(big.Rat).Set(c)
		return
	}
	existing.Add(existing, c)
	if existing.Sign() == 0 {
		delete(df.terms, cell)
	}
}

// Dim returns the dimension of the cube.
func (df *DupontForm) Dim() int {
	return df.n
}

// IsZero reports whether df has no nonzero coefficient.
func (df *DupontForm) IsZero() bool {
	return len(df.terms) == 0
}

// Zero returns the zero form on the cube of df.
func (df *DupontForm) Zero() *DupontForm {
	return zeroDupont(df.n)
}

// Degree returns the degree of a homogeneous nonzero form, and -1 otherwise.
func (df *DupontForm) Degree() int {
	degree := -1
	for cell := range df.terms {
		if degree != -1 && cell.Degree() != degree {
			return -1
		}
		degree = cell.Degree()
	}
	return degree
}

// Coefficient returns the coefficient of omega_{key}, with the sign of
// sorting its directions. Invalid keys have coefficient 0.
func (df *DupontForm) Coefficient(key string) *big.Rat {
	cell, sign, err := parseCell(df.n, key)
	if err != nil || sign == 0 {
		return new(big.Rat)
	}
	c, ok := df.terms[cell]
	if !ok {
		return new(big.Rat)
	}
	return rational.Signed(sign, c)
}

// Add returns df + other. Forms on cubes of different dimensions give an
// error wrapping formerr.ErrDimensionMismatch.
func (df *DupontForm) Add(other *DupontForm) (*DupontForm, error) {
	if df.n != other.n {
		return nil, formerr.DimensionMismatch("cubical.DupontForm.Add", df.n, other.n)
	}
	retVal := df.Scale(big.NewRat(1, 1))
	for cell, c := range other.terms {
		retVal.addTerm(cell, c)
	}
	return retVal, nil
}

// Sub returns df - other.
func (df *DupontForm) Sub(other *DupontForm) (*DupontForm, error) {
	if df.n != other.n {
		return nil, formerr.DimensionMismatch("cubical.DupontForm.Sub", df.n, other.n)
	}
	return df.Add(other.Neg())
}

// Neg returns -df.
func (df *DupontForm) Neg() *DupontForm {
	return df.Scale(big.NewRat(-1, 1))
}

// Scale returns c * df as a new form.
func (df *DupontForm) Scale(c *big.Rat) *DupontForm {
	retVal := zeroDupont(df.n)
	if c.Sign() == 0 {
		return retVal
	}
	for cell, coeff := range df.terms {
		retVal.terms[cell] = new(big.Rat).Mul(coeff, c)
	}
	return retVal
}

// Equal reports whether df and other have the same dimension and
// coefficients.
func (df *DupontForm) Equal(other *DupontForm) bool {
	if df.n != other.n || len(df.terms) != len(other.terms) {
		return false
	}
	for cell, c := range df.terms {
		c2, ok := other.terms[cell]
		if !ok || c.Cmp(c2) != 0 {
			return false
		}
	}
	return true
}

// I includes df in Sullivan forms: omega_{I,J} is sent to dx_I times x_k
// for each fixed coordinate k with bit 1 and 1 - x_k for each with bit 0.
func (df *DupontForm) I() *SullivanForm {
	retVal := zeroSullivan(df.n)
	exponents := make([]int, df.n)
	for cell, c := range df.terms {
		var zeros []int
		for i := range exponents {
			exponents[i] = 0
		}
		for pos, k := range cell.complement(df.n) {
			if cell.bits[pos] == '1' {
				exponents[k-1] = 1
			} else {
				zeros = append(zeros, k-1)
			}
		}

		// prod_{k in zeros} (1 - x_k) = sum_{T subset of zeros} (-1)^|T| x_T
		for mask := 0; mask < 1<<len(zeros); mask++ {
			sign := 1
			for b, k := range zeros {
				exponents[k] = (mask >> b) & 1
				if exponents[k] == 1 {
					sign = -sign
				}
			}
			m, _ := multiindex.NewMonomial(exponents...)
			retVal.addTerm(cell.directions, m, rational.Signed(sign, c))
		}
	}
	return retVal
}

// D returns the cellular coboundary: for each fixed coordinate i with bit j,
// omega_{I,J} contributes (-1)^(j+1+|{k in I : k < i}|) omega_{I+i,J-j}.
// I commutes with D.
func (df *DupontForm) D() *DupontForm {
	retVal := zeroDupont(df.n)
	for cell, c := range df.terms {
		for pos, i := range cell.complement(df.n) {
			directions, _ := cell.directions.Insert(i)
			below := directions.Position(i)
			j := int(cell.bits[pos] - '0')
			sign := 1
			if (j+1+below)%2 == 1 {
				sign = -1
			}
			face := Cell{directions: directions, bits: cell.bits[:pos] + cell.bits[pos+1:]}
			retVal.addTerm(face, rational.Signed(sign, c))
		}
	}
	return retVal
}

func (df *DupontForm) String() string {
	return df.LaTeX()
}

// LaTeX writes df with cells in increasing order, e.g.
// "\omega_{\emptyset,01} - \frac{1}{2}\omega_{1|2,\emptyset}".
func (df *DupontForm) LaTeX() string {
	if df.IsZero() {
		return "0"
	}
	keys := make([]Cell, 0, len(df.terms))
	for cell := range df.terms {
		keys = append(keys, cell)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	var sb strings.Builder
	for i, cell := range keys {
		c := df.terms[cell]
		switch {
		case i == 0 && c.Sign() < 0:
			sb.WriteString("-")
		case i > 0 && c.Sign() < 0:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		if !rational.IsOne(new(big.Rat).Abs(c)) {
			sb.WriteString(rational.LaTeX(c))
		}
		sb.WriteString(cell.LaTeX())
	}
	return sb.String()
}

// Basis returns the forms omega_{I,J} on the n-cube ordered by degree, then
// directions, then bits.
func Basis(n int) ([]*DupontForm, error) {
	if err := checkDimension("cubical.Basis", n); err != nil {
		return nil, err
	}
	var retVal []*DupontForm
	for k := 0; k <= n; k++ {
		retVal = append(retVal, basisOfDegree(n, k)...)
	}
	return retVal, nil
}

// BasisOfDegree returns the forms omega_{I,J} on the n-cube with |I| = k.
func BasisOfDegree(n, k int) ([]*DupontForm, error) {
	if err := checkDimension("cubical.BasisOfDegree", n); err != nil {
		return nil, err
	}
	if k < 0 || k > n {
		return nil, formerr.InvalidArgumentType("cubical.BasisOfDegree", "degree %d is not in {0,...,%d}", k, n)
	}
	return basisOfDegree(n, k), nil
}

func basisOfDegree(n, k int) []*DupontForm {
	faces := cells(n, k)
	retVal := make([]*DupontForm, len(faces))
	for i, face := range faces {
		retVal[i] = zeroDupont(n)
		retVal[i].addTerm(face, big.NewRat(1, 1))
	}
	return retVal
}

// DifferentialMatrix returns the matrix of D from degree k to degree k+1 in
// the bases of BasisOfDegree.
func DifferentialMatrix(n, k int) (*bigmatrix.BigMatrix, error) {
	const caller = "cubical.DifferentialMatrix"
	if err := checkDimension(caller, n); err != nil {
		return nil, err
	}
	if k < 0 || k >= n {
		return nil, formerr.InvalidArgumentType(caller, "degree %d is not in {0,...,%d}", k, n-1)
	}
	sources := cells(n, k)
	targets := cells(n, k+1)
	retVal := bigmatrix.NewEmpty(len(targets), len(sources))
	for col, source := range sources {
		basis := zeroDupont(n)
		basis.addTerm(source, big.NewRat(1, 1))
		image := basis.D()
		for row, target := range targets {
			if c, ok := image.terms[target]; ok {
				if err := retVal.Set(row, col, c); err != nil {
					return nil, fmt.Errorf("%s: %w", caller, err)
				}
			}
		}
	}
	return retVal, nil
}

// TreeProduct evaluates a tree of forms on the cube through the cubical
// contraction.
func TreeProduct(tree *operad.Tree[*DupontForm], opts ...operad.Option) (*DupontForm, error) {
	return operad.TreeProduct[*DupontForm, *SullivanForm](tree, opts...)
}

// AInfinityProduct returns the transferred product of forms on the cube.
func AInfinityProduct(forms []*DupontForm, opts ...operad.Option) (*DupontForm, error) {
	return operad.AInfinityProduct[*DupontForm, *SullivanForm](forms, opts...)
}
