// Copyright (c) 2023 Colin McRae

package polynomial

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/DanielRobertNicoud/dupont-contraction/multiindex"
	"github.com/DanielRobertNicoud/dupont-contraction/rational"
)

// Notation names the symbols used to render a form: variable "t" with
// offset 0 writes t_{0}, t_{1}, ...; differential "dx" with offset 1
// writes dx_{1}, dx_{2}, ...
type Notation struct {
	Variable     string
	Differential string
	Offset       int
}

// LaTeX writes p with the variables of notation, e.g.
// "3t_{0}t_{1}^{2} - \frac{1}{2}". The zero polynomial is written "0".
func LaTeX(p Polynomial, notation Notation) string {
	if IsZero(p) {
		return "0"
	}
	var sb strings.Builder
	for i, m := range SortedMonomials(p) {
		c := p[m]
		switch {
		case i == 0 && c.Sign() < 0:
			sb.WriteString("-")
		case i > 0 && c.Sign() < 0:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		sb.WriteString(termBody(m, c, notation, true))
	}
	return sb.String()
}

// FormLaTeX writes the form sum_w terms[w] d_w with wedges w in increasing
// order. A polynomial with several monomials is parenthesized unless it is
// the leading function part; a single monomial carries its sign out to the
// joining operator.
func FormLaTeX(terms map[multiindex.Index]Polynomial, notation Notation) string {
	wedges := make([]multiindex.Index, 0, len(terms))
	for wedge := range terms {
		wedges = append(wedges, wedge)
	}
	sort.Slice(wedges, func(i, j int) bool { return wedges[i].Less(wedges[j]) })

	var sb strings.Builder
	written := 0
	for _, wedge := range wedges {
		p := terms[wedge]
		if IsZero(p) {
			continue
		}
		negative := false
		var body string
		if len(p) == 1 {
			for m, c := range p {
				negative = c.Sign() < 0
				body = termBody(m, c, notation, wedge.Len() == 0)
			}
		} else if wedge.Len() == 0 && written == 0 {
			body = LaTeX(p, notation)
		} else {
			body = fmt.Sprintf("\\left(%s\\right)", LaTeX(p, notation))
		}
		switch {
		case written == 0 && negative:
			sb.WriteString("-")
		case written > 0 && negative:
			sb.WriteString(" - ")
		case written > 0:
			sb.WriteString(" + ")
		}
		sb.WriteString(body)
		for i := 0; i < wedge.Len(); i++ {
			sb.WriteString(fmt.Sprintf("%s_{%d}", notation.Differential, wedge.At(i)))
		}
		written++
	}
	if written == 0 {
		return "0"
	}
	return sb.String()
}

// termBody writes |c| m. A unit coefficient is omitted unless m is constant
// and writeOne is set.
func termBody(m multiindex.Monomial, c *big.Rat, notation Notation, writeOne bool) string {
	var sb strings.Builder
	constant := m.Degree() == 0
	if abs := new(big.Rat).Abs(c); !rational.IsOne(abs) || (constant && writeOne) {
		sb.WriteString(rational.LaTeX(c))
	}
	for j := 0; j < m.Len(); j++ {
		switch e := m.Get(j); e {
		case 0:
		case 1:
			sb.WriteString(fmt.Sprintf("%s_{%d}", notation.Variable, j+notation.Offset))
		default:
			sb.WriteString(fmt.Sprintf("%s_{%d}^{%d}", notation.Variable, j+notation.Offset, e))
		}
	}
	return sb.String()
}
