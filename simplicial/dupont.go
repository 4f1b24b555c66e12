// Copyright (c) 2023 Colin McRae

package simplicial

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

// DupontForm is a linear combination of the Whitney forms omega_I of the
// n-simplex, where I is a nonempty set of vertices. omega_I has degree
// |I| - 1.
type DupontForm struct {
	n     int
	terms map[multiindex.Index]*big.Rat
}

// NewDupontForm creates a form of dimension n from a map whose keys are
// vertex sets "i|j|k" and whose values are coefficients accepted by
// rational.NewFromValue. The empty key denotes the constant 1, which is
// omega_0 + ... + omega_n.
func NewDupontForm(n int, form map[string]any) (*DupontForm, error) {
	const caller = "simplicial.NewDupontForm"
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
			for v := 0; v <= n; v++ {
				retVal.addTerm(multiindex.MustNew(v), coeff)
			}
			continue
		}
		vertices, sign, err := multiindex.ParseInRange(key, 0, n)
		if err != nil {
			return nil, formerr.InvalidForm(caller, "invalid vertex set %q: %s", key, err.Error())
		}
		if sign == 0 {
			continue
		}
		retVal.addTerm(vertices, rational.Signed(sign, coeff))
	}
	return retVal, nil
}

// Omega returns the basis form omega_{vertices} of dimension n. Vertices may
// be unsorted; a repeated vertex gives the zero form.
func Omega(n int, vertices ...int) (*DupontForm, error) {
	const caller = "simplicial.Omega"
	if err := checkDimension(caller, n); err != nil {
		return nil, err
	}
	if len(vertices) == 0 {
		return nil, formerr.InvalidForm(caller, "a basis form needs at least one vertex")
	}
	for _, v := range vertices {
		if v < 0 || v > n {
			return nil, formerr.InvalidForm(caller, "vertex %d is not in {0,...,%d}", v, n)
		}
	}
	idx, sign, err := multiindex.New(vertices...)
	if err != nil {
		return nil, formerr.InvalidForm(caller, "%s", err.Error())
	}
	retVal := zeroDupont(n)
	if sign != 0 {
		retVal.addTerm(idx, big.NewRat(int64(sign), 1))
	}
	return retVal, nil
}

// ZeroDupont returns the zero form of dimension n.
func ZeroDupont(n int) (*DupontForm, error) {
	if err := checkDimension("simplicial.ZeroDupont", n); err != nil {
		return nil, err
	}
	return zeroDupont(n), nil
}

func zeroDupont(n int) *DupontForm {
	return &DupontForm{n: n, terms: map[multiindex.Index]*big.Rat{}}
}

// addTerm adds c * omega_vertices in place, without taking ownership of c.
func (df *DupontForm) addTerm(vertices multiindex.Index, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	existing, ok := df.terms[vertices]
	if !ok {
		df.terms[vertices] = new(big.Rat).Set(c)
		return
	}
	existing.Add(existing, c)
	if existing.Sign() == 0 {
		delete(df.terms, vertices)
	}
}

// Dim returns the dimension n of the simplex df lives on.
func (df *DupontForm) Dim() int {
	return df.n
}

// IsZero reports whether every coefficient of df is 0.
func (df *DupontForm) IsZero() bool {
	return len(df.terms) == 0
}

// Zero returns the zero form with the dimension of df.
func (df *DupontForm) Zero() *DupontForm {
	return zeroDupont(df.n)
}

// Degree returns the degree of a homogeneous nonzero form, and -1 for the
// zero form and for forms mixing degrees.
func (df *DupontForm) Degree() int {
	degree := -1
	for vertices := range df.terms {
		if degree != -1 && vertices.Len()-1 != degree {
			return -1
		}
		degree = vertices.Len() - 1
	}
	return degree
}

// Coefficient returns the coefficient of omega_{vertices} in df, with the
// sign of sorting vertices.
func (df *DupontForm) Coefficient(vertices ...int) *big.Rat {
	idx, sign, err := multiindex.New(vertices...)
	if err != nil || sign == 0 {
		return new(big.Rat)
	}
	c, ok := df.terms[idx]
	if !ok {
		return new(big.Rat)
	}
	return rational.Signed(sign, c)
}

// Add returns df + other. An error wrapping formerr.ErrDimensionMismatch is
// returned if the forms live on simplices of different dimensions.
func (df *DupontForm) Add(other *DupontForm) (*DupontForm, error) {
	if df.n != other.n {
		return nil, formerr.DimensionMismatch("DupontForm.Add", df.n, other.n)
	}
	retVal := df.clone()
	for vertices, c := range other.terms {
		retVal.addTerm(vertices, c)
	}
	return retVal, nil
}

// Sub returns df - other, with the same dimension check as Add.
func (df *DupontForm) Sub(other *DupontForm) (*DupontForm, error) {
	if df.n != other.n {
		return nil, formerr.DimensionMismatch("DupontForm.Sub", df.n, other.n)
	}
	return df.Add(other.Neg())
}

func (df *DupontForm) clone() *DupontForm {
	retVal := zeroDupont(df.n)
	for vertices, c := range df.terms {
		retVal.terms[vertices] = new(big.Rat).Set(c)
	}
	return retVal
}

// Neg returns -df.
func (df *DupontForm) Neg() *DupontForm {
	return df.Scale(big.NewRat(-1, 1))
}

// Scale returns c * df. Scaling by 0 gives the zero form.
func (df *DupontForm) Scale(c *big.Rat) *DupontForm {
	retVal := zeroDupont(df.n)
	if c.Sign() == 0 {
		return retVal
	}
	for vertices, coeff := range df.terms {
		retVal.terms[vertices] = new(big.Rat).Mul(coeff, c)
	}
	return retVal
}

// Equal reports whether df and other have the same dimension and
// coefficients.
func (df *DupontForm) Equal(other *DupontForm) bool {
	if df.n != other.n || len(df.terms) != len(other.terms) {
		return false
	}
	for vertices, c := range df.terms {
		c2, ok := other.terms[vertices]
		if !ok || c.Cmp(c2) != 0 {
			return false
		}
	}
	return true
}

// I includes df in Sullivan forms, sending omega_I to its Whitney form.
func (df *DupontForm) I() *SullivanForm {
	retVal := zeroSullivan(df.n)
	for vertices, c := range df.terms {
		retVal = retVal.add(whitney(df.n, vertices, c), nil)
	}
	return retVal
}

// D returns the differential d omega_I = sum_{v not in I} omega_{vI}, the
// coboundary of the simplex. I commutes with D.
func (df *DupontForm) D() *DupontForm {
	retVal := zeroDupont(df.n)
	for vertices, c := range df.terms {
		for v := 0; v <= df.n; v++ {
			face, sign := vertices.Insert(v)
			if sign == 0 {
				continue
			}
			retVal.addTerm(face, rational.Signed(sign, c))
		}
	}
	return retVal
}

// String writes df in LaTeX, e.g. "\omega_{0} - \frac{3}{4}\omega_{0|1|2}".
func (df *DupontForm) String() string {
	return df.LaTeX()
}

func (df *DupontForm) LaTeX() string {
	if df.IsZero() {
		return "0"
	}
	keys := make([]multiindex.Index, 0, len(df.terms))
	for vertices := range df.terms {
		keys = append(keys, vertices)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	var sb strings.Builder
	for i, vertices := range keys {
		c := df.terms[vertices]
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
		sb.WriteString(fmt.Sprintf("\\omega_{%s}", vertices.String()))
	}
	return sb.String()
}

// Basis returns the forms omega_I of dimension n, ordered by degree and then
// lexicographically.
func Basis(n int) ([]*DupontForm, error) {
	if err := checkDimension("simplicial.Basis", n); err != nil {
		return nil, err
	}
	var retVal []*DupontForm
	for k := 0; k <= n; k++ {
		retVal = append(retVal, basisOfDegree(n, k)...)
	}
	return retVal, nil
}

// BasisOfDegree returns the forms omega_I of dimension n and degree k in
// lexicographic order.
func BasisOfDegree(n, k int) ([]*DupontForm, error) {
	if err := checkDimension("simplicial.BasisOfDegree", n); err != nil {
		return nil, err
	}
	if k < 0 || k > n {
		return nil, formerr.InvalidArgumentType("simplicial.BasisOfDegree", "degree %d is not in {0,...,%d}", k, n)
	}
	return basisOfDegree(n, k), nil
}

func basisOfDegree(n, k int) []*DupontForm {
	faces := multiindex.Subsets(0, n, k+1)
	retVal := make([]*DupontForm, len(faces))
	for i, face := range faces {
		retVal[i] = zeroDupont(n)
		retVal[i].addTerm(face, big.NewRat(1, 1))
	}
	return retVal
}

// DifferentialMatrix returns the matrix of D from degree k to degree k+1 in
// the bases of BasisOfDegree: column c holds the coordinates of D applied to
// the c-th basis form of degree k.
func DifferentialMatrix(n, k int) (*bigmatrix.BigMatrix, error) {
	const caller = "simplicial.DifferentialMatrix"
	if err := checkDimension(caller, n); err != nil {
		return nil, err
	}
	if k < 0 || k >= n {
		return nil, formerr.InvalidArgumentType(caller, "degree %d is not in {0,...,%d}", k, n-1)
	}
	sources := multiindex.Subsets(0, n, k+1)
	targets := multiindex.Subsets(0, n, k+2)
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

// TreeProduct evaluates a tree of Dupont forms with the Dupont contraction:
// leaves are included with I, children are multiplied, internal nodes apply
// H and the root applies P.
func TreeProduct(tree *operad.Tree[*DupontForm], opts ...operad.Option) (*DupontForm, error) {
	return operad.TreeProduct[*DupontForm, *SullivanForm](tree, opts...)
}

// AInfinityProduct returns the transferred product of forms, the signed sum
// of TreeProduct over the planar binary trees with len(forms) leaves.
func AInfinityProduct(forms []*DupontForm, opts ...operad.Option) (*DupontForm, error) {
	return operad.AInfinityProduct[*DupontForm, *SullivanForm](forms, opts...)
}
