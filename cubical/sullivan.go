// Copyright (c) 2023 Colin McRae

// Package cubical implements polynomial differential forms on the cube
// [0,1]^n (Sullivan forms), the forms dual to the faces of the cube (Dupont
// forms), and the contraction between them obtained as the tensor power of
// the contraction of the interval.
//
// Coordinates are x_1, ..., x_n and carry no relations, so two Sullivan
// forms are equal exactly when their stored terms agree.
package cubical

import (
	"math/big"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
	"github.com/DanielRobertNicoud/dupont-contraction/multiindex"
	"github.com/DanielRobertNicoud/dupont-contraction/polynomial"
	"github.com/DanielRobertNicoud/dupont-contraction/rational"
)

var notation = polynomial.Notation{Variable: "x", Differential: "dx", Offset: 1}

// SullivanForm is a sum of terms polynomial * dx_{i_1} ... dx_{i_k} on the
// n-cube. Wedges hold coordinates in {1,...,n}; monomial position j holds the
// exponent of x_{j+1}.
type SullivanForm struct {
	n     int
	terms map[multiindex.Index]polynomial.Polynomial
}

// SullivanTerm is one term Coefficient * x^Exponents * dx_Wedge, with
// Exponents[j] the exponent of x_{j+1}. Wedge may be unsorted.
type SullivanTerm struct {
	Wedge       []int
	Exponents   []int
	Coefficient *big.Rat
}

func checkDimension(caller string, n int) error {
	if n < 1 || n > multiindex.MaxLength {
		return formerr.InvalidArgumentType(caller, "dimension %d is not in {1,...,%d}", n, multiindex.MaxLength)
	}
	return nil
}

// NewSullivanForm creates a form on the n-cube from a map whose keys are
// wedges "i|j" of coordinates in {1,...,n} (the empty string for functions)
// and whose values map monomials "e_1|...|e_n" to coefficients accepted by
// rational.NewFromValue.
func NewSullivanForm(n int, form map[string]map[string]any) (*SullivanForm, error) {
	const caller = "cubical.NewSullivanForm"
	if err := checkDimension(caller, n); err != nil {
		return nil, err
	}
	retVal := zeroSullivan(n)
	for key, monomials := range form {
		wedge, sign, err := multiindex.ParseInRange(key, 1, n)
		if err != nil {
			return nil, formerr.InvalidForm(caller, "invalid wedge %q: %s", key, err.Error())
		}
		for monomialKey, value := range monomials {
			m, err := multiindex.ParseMonomial(monomialKey)
			if err != nil {
				return nil, formerr.InvalidForm(caller, "invalid monomial %q: %s", monomialKey, err.Error())
			}
			if m.Len() != n {
				return nil, formerr.InvalidForm(
					caller, "monomial %q has %d exponents, expected %d", monomialKey, m.Len(), n,
				)
			}
			coeff, err := rational.NewFromValue(value)
			if err != nil {
				return nil, err
			}
			if sign == 0 {
				continue
			}
			retVal.addTerm(wedge, m, rational.Signed(sign, coeff))
		}
	}
	return retVal, nil
}

// NewSullivanFormFromTerms creates a form on the n-cube as the sum of terms.
func NewSullivanFormFromTerms(n int, terms []SullivanTerm) (*SullivanForm, error) {
	const caller = "cubical.NewSullivanFormFromTerms"
	if err := checkDimension(caller, n); err != nil {
		return nil, err
	}
	retVal := zeroSullivan(n)
	for _, term := range terms {
		for _, v := range term.Wedge {
			if v < 1 || v > n {
				return nil, formerr.InvalidForm(caller, "wedge index %d is not in {1,...,%d}", v, n)
			}
		}
		wedge, sign, err := multiindex.New(term.Wedge...)
		if err != nil {
			return nil, formerr.InvalidForm(caller, "invalid wedge %v: %s", term.Wedge, err.Error())
		}
		if len(term.Exponents) != n {
			return nil, formerr.InvalidForm(
				caller, "monomial %v has %d exponents, expected %d", term.Exponents, len(term.Exponents), n,
			)
		}
		m, err := multiindex.NewMonomial(term.Exponents...)
		if err != nil {
			return nil, formerr.InvalidForm(caller, "invalid monomial %v: %s", term.Exponents, err.Error())
		}
		if term.Coefficient == nil {
			return nil, formerr.InvalidArgumentType(caller, "nil coefficient")
		}
		if sign != 0 {
			retVal.addTerm(wedge, m, rational.Signed(sign, term.Coefficient))
		}
	}
	return retVal, nil
}

// Coordinate returns the function x_i on the n-cube.
func Coordinate(n, i int) (*SullivanForm, error) {
	if err := checkDimension("cubical.Coordinate", n); err != nil {
		return nil, err
	}
	if i < 1 || i > n {
		return nil, formerr.InvalidForm("cubical.Coordinate", "coordinate %d is not in {1,...,%d}", i, n)
	}
	retVal := zeroSullivan(n)
	retVal.addTerm(multiindex.Index{}, multiindex.Variable(n, i-1), big.NewRat(1, 1))
	return retVal, nil
}

// ZeroSullivan returns the zero form on the n-cube.
func ZeroSullivan(n int) (*SullivanForm, error) {
	if err := checkDimension("cubical.ZeroSullivan", n); err != nil {
		return nil, err
	}
	return zeroSullivan(n), nil
}

func zeroSullivan(n int) *SullivanForm {
	return &SullivanForm{n: n, terms: map[multiindex.Index]polynomial.Polynomial{}}
}

func (sf *SullivanForm) addTerm(wedge multiindex.Index, m multiindex.Monomial, c *big.Rat) {
	p, ok := sf.terms[wedge]
	if !ok {
		p = polynomial.Polynomial{}
		sf.terms[wedge] = p
	}
	polynomial.AddTo(p, m, c)
	if polynomial.IsZero(p) {
		delete(sf.terms, wedge)
	}
}

// addPolynomial adds c * q * dx_wedge in place; c == nil means 1.
func (sf *SullivanForm) addPolynomial(wedge multiindex.Index, q polynomial.Polynomial, c *big.Rat) {
	p, ok := sf.terms[wedge]
	if !ok {
		p = polynomial.Polynomial{}
		sf.terms[wedge] = p
	}
	polynomial.AddScaledTo(p, q, c)
	if polynomial.IsZero(p) {
		delete(sf.terms, wedge)
	}
}

// Dim returns the dimension of the cube.
func (sf *SullivanForm) Dim() int {
	return sf.n
}

// IsZero reports whether sf has no nonzero term. The cube imposes no
// relations, so this is equality with zero.
func (sf *SullivanForm) IsZero() bool {
	return len(sf.terms) == 0
}

// Zero returns the zero form on the cube of sf.
func (sf *SullivanForm) Zero() *SullivanForm {
	return zeroSullivan(sf.n)
}

// Degree returns the wedge degree of a homogeneous nonzero form, and -1
// otherwise.
func (sf *SullivanForm) Degree() int {
	degree := -1
	for wedge := range sf.terms {
		if degree != -1 && wedge.Len() != degree {
			return -1
		}
		degree = wedge.Len()
	}
	return degree
}

// Coefficient returns the coefficient of x^exponents * dx_wedge, with the
// sign of sorting wedge.
func (sf *SullivanForm) Coefficient(wedge []int, exponents []int) *big.Rat {
	idx, sign, err := multiindex.New(wedge...)
	if err != nil || sign == 0 {
		return new(big.Rat)
	}
	m, err := multiindex.NewMonomial(exponents...)
	if err != nil {
		return new(big.Rat)
	}
	c, ok := sf.terms[idx][m]
	if !ok {
		return new(big.Rat)
	}
	return rational.Signed(sign, c)
}

// Add returns sf + other, or an error wrapping formerr.ErrDimensionMismatch.
func (sf *SullivanForm) Add(other *SullivanForm) (*SullivanForm, error) {
	if sf.n != other.n {
		return nil, formerr.DimensionMismatch("cubical.SullivanForm.Add", sf.n, other.n)
	}
	return sf.add(other, nil), nil
}

// Sub returns sf - other.
func (sf *SullivanForm) Sub(other *SullivanForm) (*SullivanForm, error) {
	if sf.n != other.n {
		return nil, formerr.DimensionMismatch("cubical.SullivanForm.Sub", sf.n, other.n)
	}
	return sf.add(other, big.NewRat(-1, 1)), nil
}

func (sf *SullivanForm) add(other *SullivanForm, c *big.Rat) *SullivanForm {
	retVal := zeroSullivan(sf.n)
	for wedge, p := range sf.terms {
		retVal.terms[wedge] = polynomial.Clone(p)
	}
	for wedge, p := range other.terms {
		retVal.addPolynomial(wedge, p, c)
	}
	return retVal
}

// Neg returns -sf.
func (sf *SullivanForm) Neg() *SullivanForm {
	return sf.Scale(big.NewRat(-1, 1))
}

// Scale returns c * sf.
func (sf *SullivanForm) Scale(c *big.Rat) *SullivanForm {
	retVal := zeroSullivan(sf.n)
	if c.Sign() == 0 {
		return retVal
	}
	for wedge, p := range sf.terms {
		retVal.terms[wedge] = polynomial.Scale(p, c)
	}
	return retVal
}

// Mul returns the wedge product sf * other.
func (sf *SullivanForm) Mul(other *SullivanForm) (*SullivanForm, error) {
	if sf.n != other.n {
		return nil, formerr.DimensionMismatch("cubical.SullivanForm.Mul", sf.n, other.n)
	}
	return sf.mul(other)
}

func (sf *SullivanForm) mul(other *SullivanForm) (*SullivanForm, error) {
	retVal := zeroSullivan(sf.n)
	for w1, p1 := range sf.terms {
		for w2, p2 := range other.terms {
			wedge, sign := multiindex.Union(w1, w2)
			if sign == 0 {
				continue
			}
			product, err := polynomial.Multiply(p1, p2)
			if err != nil {
				return nil, err
			}
			retVal.addPolynomial(wedge, product, big.NewRat(int64(sign), 1))
		}
	}
	return retVal, nil
}

// D returns the exterior derivative, d(x^e dx_I) = sum_i e_i x^{e - 1_i}
// dx_i dx_I.
func (sf *SullivanForm) D() *SullivanForm {
	retVal := zeroSullivan(sf.n)
	for wedge, p := range sf.terms {
		for m, c := range p {
			for j := 0; j < sf.n; j++ {
				e := m.Get(j)
				if e == 0 {
					continue
				}
				newWedge, sign := wedge.Insert(j + 1)
				if sign == 0 {
					continue
				}
				coeff := new(big.Rat).Mul(c, big.NewRat(int64(sign*e), 1))
				retVal.addTerm(newWedge, m.With(j, e-1), coeff)
			}
		}
	}
	return retVal
}

// Equal reports whether sf and other have the same dimension and terms.
func (sf *SullivanForm) Equal(other *SullivanForm) bool {
	if sf.n != other.n || len(sf.terms) != len(other.terms) {
		return false
	}
	for wedge, p := range sf.terms {
		q, ok := other.terms[wedge]
		if !ok || !polynomial.Equal(p, q) {
			return false
		}
	}
	return true
}

// String writes sf in LaTeX, e.g. "\left(1 - x_{1}\right)dx_{2}".
func (sf *SullivanForm) String() string {
	return sf.LaTeX()
}

func (sf *SullivanForm) LaTeX() string {
	return polynomial.FormLaTeX(sf.terms, notation)
}
