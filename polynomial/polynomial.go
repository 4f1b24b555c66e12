// Copyright (c) 2023 Colin McRae

// Package polynomial implements sparse multivariate polynomials with exact
// rational coefficients. A Polynomial maps exponent vectors to nonzero
// coefficients; the empty map is the zero polynomial.
//
// Functions in this package never modify their inputs and never share
// coefficients between input and output, so polynomials can be treated as
// values.
package polynomial

import (
	"math/big"
	"sort"

	"github.com/DanielRobertNicoud/dupont-contraction/multiindex"
)

type Polynomial map[multiindex.Monomial]*big.Rat

// Monomial returns the polynomial c * m. The result is zero if c is zero.
func Monomial(m multiindex.Monomial, c *big.Rat) Polynomial {
	if c.Sign() == 0 {
		return Polynomial{}
	}
	return Polynomial{m: new(big.Rat).Set(c)}
}

// Clone returns a deep copy of p
func Clone(p Polynomial) Polynomial {
	retVal := make(Polynomial, len(p))
	for m, c := range p {
		retVal[m] = new(big.Rat).Set(c)
	}
	return retVal
}

// Add returns p1 + p2, dropping the monomials whose coefficients cancel
func Add(p1, p2 Polynomial) Polynomial {
	retVal := Clone(p1)
	accumulate(retVal, p2, nil)
	return retVal
}

// Multiply returns p1 * p2. Exponent vectors of p1 and p2 must have the
// same number of coordinates. An error is returned if a product monomial
// exceeds multiindex.MaxDegree.
func Multiply(p1, p2 Polynomial) (Polynomial, error) {
	retVal := Polynomial{}
	for m1, c1 := range p1 {
		for m2, c2 := range p2 {
			m, err := m1.Mul(m2)
			if err != nil {
				return nil, err
			}
			addTerm(retVal, m, new(big.Rat).Mul(c1, c2))
		}
	}
	return retVal, nil
}

// Scale returns c * p
func Scale(p Polynomial, c *big.Rat) Polynomial {
	retVal := Polynomial{}
	if c.Sign() == 0 {
		return retVal
	}
	for m, coeff := range p {
		retVal[m] = new(big.Rat).Mul(coeff, c)
	}
	return retVal
}

// Negate returns -p
func Negate(p Polynomial) Polynomial {
	retVal := make(Polynomial, len(p))
	for m, c := range p {
		retVal[m] = new(big.Rat).Neg(c)
	}
	return retVal
}

// Power returns p^e for e >= 0. p^0 is the constant 1 in numCoords
// coordinates.
func Power(p Polynomial, e int, numCoords int) (Polynomial, error) {
	retVal := Polynomial{multiindex.One(numCoords): big.NewRat(1, 1)}
	for i := 0; i < e; i++ {
		var err error
		if retVal, err = Multiply(retVal, p); err != nil {
			return nil, err
		}
	}
	return retVal, nil
}

// Equal reports whether p1 and p2 have the same coefficients
func Equal(p1, p2 Polynomial) bool {
	if len(p1) != len(p2) {
		return false
	}
	for m, c1 := range p1 {
		c2, ok := p2[m]
		if !ok || c1.Cmp(c2) != 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether p is the zero polynomial
func IsZero(p Polynomial) bool {
	return len(p) == 0
}

// AddTo adds c * m to p in place. It is the accumulation primitive the form
// packages use while building a new polynomial that is not yet shared.
func AddTo(p Polynomial, m multiindex.Monomial, c *big.Rat) {
	addTerm(p, m, new(big.Rat).Set(c))
}

// AddScaledTo adds c * q to p in place; c == nil means 1.
func AddScaledTo(p Polynomial, q Polynomial, c *big.Rat) {
	accumulate(p, q, c)
}

// SortedMonomials returns the monomials of p in the order of
// multiindex.Monomial.Less, for deterministic output
func SortedMonomials(p Polynomial) []multiindex.Monomial {
	retVal := make([]multiindex.Monomial, 0, len(p))
	for m := range p {
		retVal = append(retVal, m)
	}
	sort.Slice(retVal, func(i, j int) bool { return retVal[i].Less(retVal[j]) })
	return retVal
}

// accumulate adds c * q to p; c == nil means 1
func accumulate(p Polynomial, q Polynomial, c *big.Rat) {
	for m, coeff := range q {
		term := new(big.Rat).Set(coeff)
		if c != nil {
			term.Mul(term, c)
		}
		addTerm(p, m, term)
	}
}

// addTerm adds c to the coefficient of m in p, taking ownership of c
func addTerm(p Polynomial, m multiindex.Monomial, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	existing, ok := p[m]
	if !ok {
		p[m] = c
		return
	}
	existing.Add(existing, c)
	if existing.Sign() == 0 {
		delete(p, m)
	}
}
