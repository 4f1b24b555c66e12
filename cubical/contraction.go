// Copyright (c) 2023 Colin McRae

package cubical

import (
	"math/big"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
	"github.com/DanielRobertNicoud/dupont-contraction/util"
)

// P projects sf onto Dupont forms. The coefficient of omega_{I,J} is the
// integral of the dx_I part of sf over the face I, J: each coordinate k in I
// contributes 1/(e_k + 1), a fixed coordinate with bit 1 contributes 1 and
// one with bit 0 contributes 1 only if e_k = 0.
func (sf *SullivanForm) P() *DupontForm {
	retVal := zeroDupont(sf.n)
	for wedge, p := range sf.terms {
		complement := Cell{directions: wedge}.complement(sf.n)
		for m, c := range p {
			integral := new(big.Rat).Set(c)
			for i := 0; i < wedge.Len(); i++ {
				k := wedge.At(i)
				integral.Quo(integral, big.NewRat(int64(m.Get(k-1)+1), 1))
			}
			var free []int
			fixed := make([]byte, len(complement))
			for pos, k := range complement {
				fixed[pos] = '1'
				if m.Get(k-1) == 0 {
					free = append(free, pos)
				}
			}
			for _, choice := range bitStrings(len(free)) {
				for i, pos := range free {
					fixed[pos] = choice[i]
				}
				retVal.addTerm(Cell{directions: wedge, bits: string(fixed)}, integral)
			}
		}
	}
	return retVal
}

// H returns the symmetric homotopy of the cube,
//
//	h = sum_i sum_{S subset of the other coordinates} |S|! (n-1-|S|)! / n! h_{i,S},
//
// the average over all orderings of the coordinates of HOrdered. An error is
// returned if a monomial of the result would exceed multiindex.MaxDegree.
func (sf *SullivanForm) H() (*SullivanForm, error) {
	retVal := zeroSullivan(sf.n)
	weights := make([]*big.Rat, sf.n)
	for k := range weights {
		weights[k] = new(big.Rat).SetFrac(
			new(big.Int).Mul(util.Factorial(k), util.Factorial(sf.n-1-k)), util.Factorial(sf.n),
		)
	}
	for i := 1; i <= sf.n; i++ {
		others := make([]int, 0, sf.n-1)
		for k := 1; k <= sf.n; k++ {
			if k != i {
				others = append(others, k)
			}
		}
		for mask := 0; mask < 1<<len(others); mask++ {
			var before []int
			for b, k := range others {
				if mask&(1<<b) != 0 {
					before = append(before, k)
				}
			}
			h, err := sf.hCoordinate(i, before)
			if err != nil {
				return nil, err
			}
			retVal = retVal.add(h, weights[len(before)])
		}
	}
	return retVal, nil
}

// HOrdered returns the homotopy of the cube as the tensor product of
// intervals taken in the given order of the coordinates: h_{i,S} summed over
// i, with S the coordinates before i. order must list 1, ..., n once each.
func (sf *SullivanForm) HOrdered(order []int) (*SullivanForm, error) {
	const caller = "cubical.SullivanForm.HOrdered"
	if len(order) != sf.n {
		return nil, formerr.InvalidMap(caller, "order %v does not list %d coordinates", order, sf.n)
	}
	seen := make([]bool, sf.n+1)
	for _, k := range order {
		if k < 1 || k > sf.n || seen[k] {
			return nil, formerr.InvalidMap(caller, "order %v is not a permutation of {1,...,%d}", order, sf.n)
		}
		seen[k] = true
	}
	retVal := zeroSullivan(sf.n)
	for pos, i := range order {
		h, err := sf.hCoordinate(i, order[:pos])
		if err != nil {
			return nil, err
		}
		retVal = retVal.add(h, nil)
	}
	return retVal, nil
}

// hCoordinate applies i p on the coordinates in before, the homotopy of the
// interval on coordinate i and the identity elsewhere. On the interval,
// h(f) = 0 and h(x^e dx) = (x^(e+1) - x)/(e+1). Moving h past the dx_k with
// k < i gives the sign.
func (sf *SullivanForm) hCoordinate(i int, before []int) (*SullivanForm, error) {
	retVal := zeroSullivan(sf.n)
	for wedge, p := range sf.terms {
		pos := wedge.Position(i)
		if pos < 0 {
			continue
		}
		newWedge := wedge.Remove(pos)
		for m, c := range p {
			coeff := new(big.Rat).Set(c)
			if pos%2 == 1 {
				coeff.Neg(coeff)
			}
			for _, k := range before {
				e := m.Get(k - 1)
				if wedge.Contains(k) {
					coeff.Quo(coeff, big.NewRat(int64(e+1), 1))
					m = m.With(k-1, 0)
				} else if e > 1 {
					m = m.With(k-1, 1)
				}
			}
			e := m.Get(i - 1)
			if e == 0 {
				continue
			}
			coeff.Quo(coeff, big.NewRat(int64(e+1), 1))
			raised, err := m.Increment(i - 1)
			if err != nil {
				return nil, err
			}
			retVal.addTerm(newWedge, raised, coeff)
			retVal.addTerm(newWedge, m.With(i-1, 1), new(big.Rat).Neg(coeff))
		}
	}
	return retVal, nil
}
