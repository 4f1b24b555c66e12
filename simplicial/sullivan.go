// Copyright (c) 2023 Colin McRae

// Package simplicial implements polynomial differential forms on the standard
// n-simplex (Sullivan forms), the Whitney forms spanned by the vertex sets of
// the simplex (Dupont forms), and the Dupont contraction between them.
//
// A Sullivan form of dimension n is written in the barycentric coordinates
// t_0, ..., t_n subject to t_0 + ... + t_n = 1 and dt_0 + ... + dt_n = 0.
// Forms are stored without imposing these relations; Reduce eliminates one
// coordinate and Equal compares forms after eliminating t_0.
//
// All forms are immutable. Every operation returns a new form.
package simplicial

import (
	"math/big"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
	"github.com/DanielRobertNicoud/dupont-contraction/multiindex"
	"github.com/DanielRobertNicoud/dupont-contraction/polynomial"
	"github.com/DanielRobertNicoud/dupont-contraction/rational"
	"github.com/DanielRobertNicoud/dupont-contraction/util"
)

var notation = polynomial.Notation{Variable: "t", Differential: "dt", Offset: 0}

// SullivanForm is a sum of terms polynomial * dt_{i_1} ... dt_{i_k} on the
// n-simplex. Wedge indices are canonical and every stored polynomial is
// nonzero.
type SullivanForm struct {
	n     int
	terms map[multiindex.Index]polynomial.Polynomial
}

// SullivanTerm is one term Coefficient * t^Exponents * dt_Wedge. Wedge may be
// unsorted; its sorting sign is folded into the coefficient.
type SullivanTerm struct {
	Wedge       []int
	Exponents   []int
	Coefficient *big.Rat
}

func checkDimension(caller string, n int) error {
	if n < 0 || n+1 > multiindex.MaxLength {
		return formerr.InvalidArgumentType(
			caller, "dimension %d is not in {0,...,%d}", n, multiindex.MaxLength-1,
		)
	}
	return nil
}

// NewSullivanForm creates a form of dimension n from a map whose keys are
// wedges "i|j|k" (the empty string for functions) and whose values map
// monomials "e_0|...|e_n" to coefficients. Coefficients are anything
// rational.NewFromValue accepts. Repeated wedge indices and wedges of
// length n+1 or more give zero terms.
func NewSullivanForm(n int, form map[string]map[string]any) (*SullivanForm, error) {
	const caller = "simplicial.NewSullivanForm"
	if err := checkDimension(caller, n); err != nil {
		return nil, err
	}
	retVal := zeroSullivan(n)
	for key, monomials := range form {
		wedge, sign, err := multiindex.ParseInRange(key, 0, n)
		if err != nil {
			return nil, formerr.InvalidForm(caller, "invalid wedge %q: %s", key, err.Error())
		}
		for monomialKey, value := range monomials {
			m, err := multiindex.ParseMonomial(monomialKey)
			if err != nil {
				return nil, formerr.InvalidForm(caller, "invalid monomial %q: %s", monomialKey, err.Error())
			}
			if m.Len() != n+1 {
				return nil, formerr.InvalidForm(
					caller, "monomial %q has %d exponents, expected %d", monomialKey, m.Len(), n+1,
				)
			}
			coeff, err := rational.NewFromValue(value)
			if err != nil {
				return nil, err
			}
			if sign == 0 || wedge.Len() > n {
				continue
			}
			retVal.addTerm(wedge, m, rational.Signed(sign, coeff))
		}
	}
	return retVal, nil
}

// NewSullivanFormFromTerms creates a form of dimension n as the sum of terms.
func NewSullivanFormFromTerms(n int, terms []SullivanTerm) (*SullivanForm, error) {
	const caller = "simplicial.NewSullivanFormFromTerms"
	if err := checkDimension(caller, n); err != nil {
		return nil, err
	}
	retVal := zeroSullivan(n)
	for _, term := range terms {
		for _, v := range term.Wedge {
			if v < 0 || v > n {
				return nil, formerr.InvalidForm(caller, "wedge index %d is not in {0,...,%d}", v, n)
			}
		}
		wedge, sign, err := multiindex.New(term.Wedge...)
		if err != nil {
			return nil, formerr.InvalidForm(caller, "invalid wedge %v: %s", term.Wedge, err.Error())
		}
		if len(term.Exponents) != n+1 {
			return nil, formerr.InvalidForm(
				caller, "monomial %v has %d exponents, expected %d", term.Exponents, len(term.Exponents), n+1,
			)
		}
		m, err := multiindex.NewMonomial(term.Exponents...)
		if err != nil {
			return nil, formerr.InvalidForm(caller, "invalid monomial %v: %s", term.Exponents, err.Error())
		}
		if term.Coefficient == nil {
			return nil, formerr.InvalidArgumentType(caller, "nil coefficient")
		}
		if sign == 0 || wedge.Len() > n {
			continue
		}
		retVal.addTerm(wedge, m, rational.Signed(sign, term.Coefficient))
	}
	return retVal, nil
}

// Coordinate returns the function t_i on the n-simplex.
func Coordinate(n, i int) (*SullivanForm, error) {
	if err := checkDimension("simplicial.Coordinate", n); err != nil {
		return nil, err
	}
	if i < 0 || i > n {
		return nil, formerr.InvalidForm("simplicial.Coordinate", "coordinate %d is not in {0,...,%d}", i, n)
	}
	retVal := zeroSullivan(n)
	retVal.addTerm(multiindex.Index{}, multiindex.Variable(n+1, i), big.NewRat(1, 1))
	return retVal, nil
}

// ZeroSullivan returns the zero form of dimension n.
func ZeroSullivan(n int) (*SullivanForm, error) {
	if err := checkDimension("simplicial.ZeroSullivan", n); err != nil {
		return nil, err
	}
	return zeroSullivan(n), nil
}

func zeroSullivan(n int) *SullivanForm {
	return &SullivanForm{n: n, terms: map[multiindex.Index]polynomial.Polynomial{}}
}

// addTerm adds c * m * dt_wedge to sf in place. Only used on forms under
// construction.
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

// addPolynomial adds c * q * dt_wedge to sf in place; c == nil means 1.
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

// Dim returns the dimension n of the simplex.
func (sf *SullivanForm) Dim() int {
	return sf.n
}

// IsZero reports whether sf has no terms. A form that vanishes only modulo
// the simplex relations is not reported as zero; use Equal for that.
func (sf *SullivanForm) IsZero() bool {
	return len(sf.terms) == 0
}

// Zero returns the zero form with the dimension of sf.
func (sf *SullivanForm) Zero() *SullivanForm {
	return zeroSullivan(sf.n)
}

// Degree returns the wedge degree of a homogeneous nonzero form, and -1 for
// the zero form and for forms mixing degrees.
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

// IsHomogeneous reports whether all terms of sf have the same wedge degree.
func (sf *SullivanForm) IsHomogeneous() bool {
	return sf.IsZero() || sf.Degree() >= 0
}

// Coefficient returns the coefficient of t^exponents * dt_wedge in the stored
// representation of sf, with the sign of sorting wedge.
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

// Add returns sf + other.
func (sf *SullivanForm) Add(other *SullivanForm) (*SullivanForm, error) {
	if sf.n != other.n {
		return nil, formerr.DimensionMismatch("SullivanForm.Add", sf.n, other.n)
	}
	return sf.add(other, nil), nil
}

// Sub returns sf - other.
func (sf *SullivanForm) Sub(other *SullivanForm) (*SullivanForm, error) {
	if sf.n != other.n {
		return nil, formerr.DimensionMismatch("SullivanForm.Sub", sf.n, other.n)
	}
	return sf.add(other, big.NewRat(-1, 1)), nil
}

// add returns sf + c * other; c == nil means 1
func (sf *SullivanForm) add(other *SullivanForm, c *big.Rat) *SullivanForm {
	retVal := sf.clone()
	for wedge, p := range other.terms {
		retVal.addPolynomial(wedge, p, c)
	}
	return retVal
}

func (sf *SullivanForm) clone() *SullivanForm {
	retVal := zeroSullivan(sf.n)
	for wedge, p := range sf.terms {
		retVal.terms[wedge] = polynomial.Clone(p)
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

// Mul returns the wedge product sf * other. The wedge of two terms is the
// canonical union of their wedges, signed by the shuffle that sorts it, and
// vanishes when the wedges intersect.
func (sf *SullivanForm) Mul(other *SullivanForm) (*SullivanForm, error) {
	if sf.n != other.n {
		return nil, formerr.DimensionMismatch("SullivanForm.Mul", sf.n, other.n)
	}
	return sf.mul(other)
}

func (sf *SullivanForm) mul(other *SullivanForm) (*SullivanForm, error) {
	retVal := zeroSullivan(sf.n)
	for w1, p1 := range sf.terms {
		for w2, p2 := range other.terms {
			wedge, sign := multiindex.Union(w1, w2)
			if sign == 0 || wedge.Len() > sf.n {
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

// D returns the exterior differential of sf. The derivative with respect to
// t_j is wedged on the left: d(t^e dt_I) = sum_j e_j t^(e - 1_j) dt_j dt_I.
func (sf *SullivanForm) D() *SullivanForm {
	retVal := zeroSullivan(sf.n)
	for wedge, p := range sf.terms {
		for m, c := range p {
			for j := 0; j <= sf.n; j++ {
				e := m.Get(j)
				if e == 0 {
					continue
				}
				newWedge, sign := wedge.Insert(j)
				if sign == 0 || newWedge.Len() > sf.n {
					continue
				}
				coeff := new(big.Rat).Mul(c, big.NewRat(int64(sign*e), 1))
				retVal.addTerm(newWedge, m.With(j, e-1), coeff)
			}
		}
	}
	return retVal
}

// Reduce eliminates t_eliminate and dt_eliminate using
// t_eliminate = 1 - sum_{j != eliminate} t_j and
// dt_eliminate = -sum_{j != eliminate} dt_j. The result is the unique
// representative of sf that does not involve the coordinate.
func (sf *SullivanForm) Reduce(eliminate int) (*SullivanForm, error) {
	if eliminate < 0 || eliminate > sf.n {
		return nil, formerr.InvalidArgumentType(
			"SullivanForm.Reduce", "coordinate %d is not in {0,...,%d}", eliminate, sf.n,
		)
	}
	return sf.reduce(eliminate)
}

func (sf *SullivanForm) reduce(eliminate int) (*SullivanForm, error) {
	numCoords := sf.n + 1

	// complement = 1 - sum_{j != eliminate} t_j
	complement := polynomial.Polynomial{multiindex.One(numCoords): big.NewRat(1, 1)}
	for j := 0; j < numCoords; j++ {
		if j != eliminate {
			complement[multiindex.Variable(numCoords, j)] = big.NewRat(-1, 1)
		}
	}
	powers := map[int]polynomial.Polynomial{}
	power := func(e int) (polynomial.Polynomial, error) {
		if p, ok := powers[e]; ok {
			return p, nil
		}
		p, err := polynomial.Power(complement, e, numCoords)
		if err != nil {
			return nil, err
		}
		powers[e] = p
		return p, nil
	}

	type signedWedge struct {
		wedge multiindex.Index
		sign  *big.Rat
	}
	retVal := zeroSullivan(sf.n)
	for wedge, p := range sf.terms {
		var wedges []signedWedge
		pos := wedge.Position(eliminate)
		if pos < 0 {
			wedges = []signedWedge{{wedge: wedge, sign: big.NewRat(1, 1)}}
		} else {
			values := wedge.Values()
			for j := 0; j < numCoords; j++ {
				if j == eliminate || wedge.Contains(j) {
					continue
				}
				values[pos] = j
				newWedge, sign, _ := multiindex.New(values...)
				wedges = append(wedges, signedWedge{wedge: newWedge, sign: big.NewRat(int64(-sign), 1)})
			}
		}
		for m, c := range p {
			complementPower, err := power(m.Get(eliminate))
			if err != nil {
				return nil, err
			}
			expanded, err := polynomial.Multiply(polynomial.Monomial(m.With(eliminate, 0), c), complementPower)
			if err != nil {
				return nil, err
			}
			for _, sw := range wedges {
				retVal.addPolynomial(sw.wedge, expanded, sw.sign)
			}
		}
	}
	return retVal, nil
}

// Equal reports whether sf and other are the same form on the simplex, that
// is whether they agree after eliminating t_0. Forms of different dimensions
// are never equal.
func (sf *SullivanForm) Equal(other *SullivanForm) bool {
	if sf.n != other.n {
		return false
	}
	// Eliminating t_0 preserves the degree of every monomial, so neither
	// reduction can fail.
	a, err := sf.reduce(0)
	if err != nil {
		return false
	}
	b, err := other.reduce(0)
	if err != nil {
		return false
	}
	return a.Identical(b)
}

// Identical reports whether sf and other have the same stored terms, without
// applying the simplex relations.
func (sf *SullivanForm) Identical(other *SullivanForm) bool {
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

// Permute relabels the vertices of the simplex by t_i -> t_perm(i). perm may
// be partial; it is completed by util.CompletePermutation. An error is
// returned if perm is not injective or leaves {0,...,n}.
func (sf *SullivanForm) Permute(perm map[int]int) (*SullivanForm, error) {
	full, err := util.CompletePermutation(perm, sf.n+1)
	if err != nil {
		return nil, formerr.InvalidMap("SullivanForm.Permute", "%s", err.Error())
	}
	return sf.permute(full), nil
}

// permute applies the full permutation perm of {0,...,n}
func (sf *SullivanForm) permute(perm []int) *SullivanForm {
	retVal := zeroSullivan(sf.n)
	exponents := make([]int, sf.n+1)
	for wedge, p := range sf.terms {
		values := wedge.Values()
		for i, v := range values {
			values[i] = perm[v]
		}
		newWedge, sign, _ := multiindex.New(values...)
		for m, c := range p {
			for i := range exponents {
				exponents[perm[i]] = m.Get(i)
			}
			newMonomial, _ := multiindex.NewMonomial(exponents...)
			retVal.addTerm(newWedge, newMonomial, rational.Signed(sign, c))
		}
	}
	return retVal
}

// Pullback restricts sf to the face of the simplex spanned by the vertices
// f[0] < ... < f[m] and writes the result on the standard m-simplex, with
// vertex k of the face corresponding to vertex f[k]. Terms involving a
// coordinate outside the face vanish.
func (sf *SullivanForm) Pullback(f []int) (*SullivanForm, error) {
	const caller = "SullivanForm.Pullback"
	if len(f) == 0 || len(f) > sf.n+1 {
		return nil, formerr.InvalidMap(caller, "a face of the %d-simplex has 1 to %d vertices, got %d", sf.n, sf.n+1, len(f))
	}
	inverse := make([]int, sf.n+1)
	for i := range inverse {
		inverse[i] = -1
	}
	for k, v := range f {
		if v < 0 || v > sf.n {
			return nil, formerr.InvalidMap(caller, "vertex %d is not in {0,...,%d}", v, sf.n)
		}
		if k > 0 && v <= f[k-1] {
			return nil, formerr.InvalidMap(caller, "face map %v is not strictly increasing", f)
		}
		inverse[v] = k
	}

	m := len(f) - 1
	retVal := zeroSullivan(m)
	exponents := make([]int, m+1)
outer:
	for wedge, p := range sf.terms {
		if wedge.Len() > m {
			continue
		}
		values := wedge.Values()
		for i, v := range values {
			if inverse[v] < 0 {
				continue outer
			}
			values[i] = inverse[v]
		}
		newWedge := multiindex.MustNew(values...)
	monomials:
		for monomial, c := range p {
			for i := 0; i <= sf.n; i++ {
				if monomial.Get(i) > 0 && inverse[i] < 0 {
					continue monomials
				}
			}
			for k, v := range f {
				exponents[k] = monomial.Get(v)
			}
			newMonomial, _ := multiindex.NewMonomial(exponents...)
			retVal.addTerm(newWedge, newMonomial, c)
		}
	}
	return retVal, nil
}

// EvaluateAtVertex returns the value of the function part of sf at vertex v,
// where t_v = 1 and every other coordinate is 0.
func (sf *SullivanForm) EvaluateAtVertex(v int) (*big.Rat, error) {
	if v < 0 || v > sf.n {
		return nil, formerr.InvalidArgumentType(
			"SullivanForm.EvaluateAtVertex", "vertex %d is not in {0,...,%d}", v, sf.n,
		)
	}
	return sf.evaluateAtVertex(v), nil
}

func (sf *SullivanForm) evaluateAtVertex(v int) *big.Rat {
	retVal := new(big.Rat)
	for m, c := range sf.terms[multiindex.Index{}] {
		if m.Degree() == m.Get(v) {
			retVal.Add(retVal, c)
		}
	}
	return retVal
}

// String writes sf in LaTeX, e.g. "t_{0}t_{1} - \frac{1}{2}t_{2}^{2}dt_{0}dt_{1}".
func (sf *SullivanForm) String() string {
	return sf.LaTeX()
}

// LaTeX writes sf in LaTeX, wedges in increasing order.
func (sf *SullivanForm) LaTeX() string {
	return polynomial.FormLaTeX(sf.terms, notation)
}
