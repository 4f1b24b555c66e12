// Copyright (c) 2023 Colin McRae

package multiindex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
)

// MaxDegree bounds the total degree of a Monomial, hence every exponent.
const MaxDegree = 1<<31 - 1

// Monomial is the exponent vector of a monomial in a fixed number of
// coordinates: x_0^e[0] ... x_{k-1}^e[k-1]. It is comparable and can be used
// as a map key. Its total degree is at most MaxDegree.
type Monomial struct {
	length    uint8
	exponents [MaxLength]uint32
}

// NewMonomial returns the monomial with the given exponents. An error is
// returned for negative exponents, a total degree above MaxDegree and for
// too many coordinates.
func NewMonomial(exponents ...int) (Monomial, error) {
	if len(exponents) > MaxLength {
		return Monomial{}, fmt.Errorf(
			"multiindex.NewMonomial: %d coordinates exceed the maximum %d", len(exponents), MaxLength,
		)
	}
	var retVal Monomial
	retVal.length = uint8(len(exponents))
	degree := 0
	for i, e := range exponents {
		if e < 0 || e > MaxDegree-degree {
			return Monomial{}, fmt.Errorf(
				"multiindex.NewMonomial: exponent %d is out of range, the degree is at most %d", e, MaxDegree,
			)
		}
		degree += e
		retVal.exponents[i] = uint32(e)
	}
	return retVal, nil
}

// One returns the constant monomial in numCoords coordinates.
func One(numCoords int) Monomial {
	return Monomial{length: uint8(numCoords)}
}

// Variable returns the monomial x_i in numCoords coordinates.
func Variable(numCoords, i int) Monomial {
	return One(numCoords).With(i, 1)
}

// ParseMonomial reads a monomial written as "e0|e1|...".
func ParseMonomial(key string) (Monomial, error) {
	parts := strings.Split(key, "|")
	exponents := make([]int, len(parts))
	for i, part := range parts {
		e, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Monomial{}, fmt.Errorf("multiindex.ParseMonomial: could not parse %q: %q", key, err.Error())
		}
		exponents[i] = e
	}
	return NewMonomial(exponents...)
}

// Len returns the number of coordinates.
func (m Monomial) Len() int {
	return int(m.length)
}

// Get returns the exponent of coordinate i.
func (m Monomial) Get(i int) int {
	return int(m.exponents[i])
}

// With returns a copy of m with the exponent of coordinate i set to e. It
// lowers an exponent or sets it to 0 or 1; Increment and Mul raise degrees.
func (m Monomial) With(i, e int) Monomial {
	m.exponents[i] = uint32(e)
	return m
}

// Increment returns m times x_i. An error wrapping formerr.ErrInvalidForm is
// returned if the degree would exceed MaxDegree.
func (m Monomial) Increment(i int) (Monomial, error) {
	if m.Degree() >= MaxDegree {
		return Monomial{}, formerr.InvalidForm(
			"multiindex.Monomial.Increment", "degree of %s times x_%d exceeds %d", m, i, MaxDegree,
		)
	}
	m.exponents[i]++
	return m, nil
}

// Exponents returns the exponents as a fresh slice.
func (m Monomial) Exponents() []int {
	retVal := make([]int, m.length)
	for i := range retVal {
		retVal[i] = int(m.exponents[i])
	}
	return retVal
}

// Degree returns the total degree.
func (m Monomial) Degree() int {
	retVal := 0
	for i := 0; i < int(m.length); i++ {
		retVal += int(m.exponents[i])
	}
	return retVal
}

// Mul returns the product of two monomials in the same coordinates, that is
// the elementwise sum of the exponents. An error wrapping
// formerr.ErrInvalidForm is returned if the degree would exceed MaxDegree.
func (m Monomial) Mul(other Monomial) (Monomial, error) {
	if d1, d2 := m.Degree(), other.Degree(); d1 > MaxDegree-d2 {
		return Monomial{}, formerr.InvalidForm(
			"multiindex.Monomial.Mul", "degree %d + %d exceeds %d", d1, d2, MaxDegree,
		)
	}
	for i := 0; i < int(m.length); i++ {
		m.exponents[i] += other.exponents[i]
	}
	return m, nil
}

// Less orders monomials by total degree, then lexicographically with
// larger leading exponents first.
func (m Monomial) Less(other Monomial) bool {
	if d1, d2 := m.Degree(), other.Degree(); d1 != d2 {
		return d1 < d2
	}
	for i := 0; i < int(m.length); i++ {
		if m.exponents[i] != other.exponents[i] {
			return m.exponents[i] > other.exponents[i]
		}
	}
	return false
}

// String writes m as "e0|e1|...".
func (m Monomial) String() string {
	parts := make([]string, m.length)
	for i := range parts {
		parts[i] = strconv.Itoa(int(m.exponents[i]))
	}
	return strings.Join(parts, "|")
}
