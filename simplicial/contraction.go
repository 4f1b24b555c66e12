// Copyright (c) 2023 Colin McRae

package simplicial

import (
	"math/big"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
	"github.com/DanielRobertNicoud/dupont-contraction/multiindex"
	"github.com/DanielRobertNicoud/dupont-contraction/util"
)

// whitney returns the Whitney form of the face with vertices face,
// k! sum_m (-1)^m t_{i_m} dt_{i_0} ... dt_{i_m}^ ... dt_{i_k}, scaled by c.
func whitney(n int, face multiindex.Index, c *big.Rat) *SullivanForm {
	retVal := zeroSullivan(n)
	k := face.Len() - 1
	factor := new(big.Rat).Mul(c, util.FactorialRat(k))
	for m := 0; m <= k; m++ {
		coeff := new(big.Rat).Set(factor)
		if m%2 == 1 {
			coeff.Neg(coeff)
		}
		retVal.addTerm(face.Remove(m), multiindex.Variable(n+1, face.At(m)), coeff)
	}
	return retVal
}

// P projects sf onto Dupont forms: the coefficient of omega_I is the
// integral of sf over the face spanned by I. A function is sent to the sum
// of its values at the vertices.
func (sf *SullivanForm) P() *DupontForm {
	retVal := zeroDupont(sf.n)
	exponents := make([]int, 0, sf.n+1)
	for wedge, p := range sf.terms {
		k := wedge.Len()
		if k == 0 {
			for v := 0; v <= sf.n; v++ {
				value := sf.evaluateAtVertex(v)
				if value.Sign() != 0 {
					retVal.addTerm(multiindex.MustNew(v), value)
				}
			}
			continue
		}
		for v := 0; v <= sf.n; v++ {
			if wedge.Contains(v) {
				continue
			}
			face, _ := wedge.Insert(v)
			position := face.Position(v)
		monomials:
			for m, c := range p {
				exponents = exponents[:0]
				for i := 0; i <= sf.n; i++ {
					if !face.Contains(i) {
						if m.Get(i) > 0 {
							continue monomials
						}
						continue
					}
					exponents = append(exponents, m.Get(i))
				}
				integral := util.DirichletIntegral(exponents, k)
				integral.Mul(integral, c)
				if position%2 == 1 {
					integral.Neg(integral)
				}
				retVal.addTerm(face, integral)
			}
		}
	}
	return retVal
}

// HVertex returns h_v(sf), the radial homotopy contracting the simplex to
// vertex v: d h_v + h_v d = id - e_v, where e_v evaluates functions at v and
// vanishes on forms of positive degree.
func (sf *SullivanForm) HVertex(v int) (*SullivanForm, error) {
	if v < 0 || v > sf.n {
		return nil, formerr.InvalidArgumentType("SullivanForm.HVertex", "vertex %d is not in {0,...,%d}", v, sf.n)
	}
	return sf.hVertex(v)
}

// hVertex writes sf in the affine coordinates centered at v, then sends
// t^e dt_J to (1/(|J| + |e|)) sum_m (-1)^m t_{j_m} t^e dt_{J - j_m}.
func (sf *SullivanForm) hVertex(v int) (*SullivanForm, error) {
	reduced, err := sf.reduce(v)
	if err != nil {
		return nil, err
	}
	retVal := zeroSullivan(sf.n)
	for wedge, p := range reduced.terms {
		k := wedge.Len()
		if k == 0 {
			continue
		}
		for m, c := range p {
			base := new(big.Rat).Quo(c, big.NewRat(int64(k+m.Degree()), 1))
			for pos := 0; pos < k; pos++ {
				j := wedge.At(pos)
				coeff := new(big.Rat).Set(base)
				if pos%2 == 1 {
					coeff.Neg(coeff)
				}
				raised, err := m.Increment(j)
				if err != nil {
					return nil, err
				}
				retVal.addTerm(wedge.Remove(pos), raised, coeff)
			}
		}
	}
	return retVal, nil
}

// H returns Dupont's homotopy
//
//	h = sum_{k=0}^{n-1} (-1)^k sum_{i_0 < ... < i_k} omega_{i_0...i_k} h_{i_k} ... h_{i_0},
//
// with omega the Whitney forms. It satisfies id - i p = d h + h d. An error
// is returned if a monomial of the result would exceed multiindex.MaxDegree.
func (sf *SullivanForm) H() (*SullivanForm, error) {
	retVal := zeroSullivan(sf.n)
	maxDegree := 0
	for wedge := range sf.terms {
		if wedge.Len() > maxDegree {
			maxDegree = wedge.Len()
		}
	}

	// h_{i_k} ... h_{i_0}(sf) depends only on the prefix, so chains are
	// extended one vertex at a time.
	type chain struct {
		face  multiindex.Index
		value *SullivanForm
	}
	level := []chain{}
	for v := 0; v <= sf.n; v++ {
		value, err := sf.hVertex(v)
		if err != nil {
			return nil, err
		}
		level = append(level, chain{face: multiindex.MustNew(v), value: value})
	}
	sign := big.NewRat(1, 1)
	for k := 0; k < sf.n && k < maxDegree; k++ {
		var next []chain
		for _, c := range level {
			if c.value.IsZero() {
				continue
			}
			term, err := whitney(sf.n, c.face, sign).mul(c.value)
			if err != nil {
				return nil, err
			}
			retVal = retVal.add(term, nil)
			last := c.face.At(c.face.Len() - 1)
			for v := last + 1; v <= sf.n; v++ {
				face, _ := c.face.Insert(v)
				value, err := c.value.hVertex(v)
				if err != nil {
					return nil, err
				}
				next = append(next, chain{face: face, value: value})
			}
		}
		level = next
		sign = new(big.Rat).Neg(sign)
	}
	return retVal, nil
}

// HSymmetric returns the average of sigma^-1 h sigma over all permutations
// sigma of the vertices, a homotopy that commutes with relabeling the
// simplex.
func (sf *SullivanForm) HSymmetric() (*SullivanForm, error) {
	retVal := zeroSullivan(sf.n)
	perms := util.Permutations(sf.n + 1)
	for _, perm := range perms {
		inverse, _ := util.Invert(perm)
		h, err := sf.permute(perm).H()
		if err != nil {
			return nil, err
		}
		retVal = retVal.add(h.permute(inverse), nil)
	}
	return retVal.Scale(new(big.Rat).Inv(util.FactorialRat(sf.n + 1))), nil
}
