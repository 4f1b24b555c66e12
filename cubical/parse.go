// Copyright (c) 2023 Colin McRae

package cubical

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
	"github.com/DanielRobertNicoud/dupont-contraction/multiindex"
	"github.com/DanielRobertNicoud/dupont-contraction/rational"
)

// ParseSullivanForm reads a form on the n-cube written as a sum of terms,
// e.g. "3*x_1*x_2^2*dx_1*dx_2 - 1/2*x_3 + 1". Terms are separated by + and
// -, factors by *. A factor is a rational coefficient, x_i, x_i^e or dx_i.
// There are no parentheses and no operator precedence beyond this. The
// string "0" is the zero form.
func ParseSullivanForm(n int, input string) (*SullivanForm, error) {
	const caller = "cubical.ParseSullivanForm"
	if err := checkDimension(caller, n); err != nil {
		return nil, err
	}
	compact := strings.Join(strings.Fields(input), "")
	if compact == "" {
		return nil, formerr.InvalidForm(caller, "empty input")
	}
	retVal := zeroSullivan(n)
	for _, term := range splitTerms(compact) {
		if term.body == "" {
			return nil, formerr.InvalidForm(caller, "empty term in %q", input)
		}
		wedge, exponents, coeff, err := parseTerm(n, term.body)
		if err != nil {
			return nil, formerr.InvalidForm(caller, "term %q: %s", term.body, err.Error())
		}
		idx, sign, err := multiindex.New(wedge...)
		if err != nil {
			return nil, formerr.InvalidForm(caller, "term %q: %s", term.body, err.Error())
		}
		m, err := multiindex.NewMonomial(exponents...)
		if err != nil {
			return nil, formerr.InvalidForm(caller, "term %q: %s", term.body, err.Error())
		}
		retVal.addTerm(idx, m, rational.Signed(sign*term.sign, coeff))
	}
	return retVal, nil
}

type signedTerm struct {
	sign int
	body string
}

// splitTerms cuts s at every + and -, keeping the sign with the term that
// follows it. A leading sign applies to the first term.
func splitTerms(s string) []signedTerm {
	var retVal []signedTerm
	sign := 1
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '+' && s[i] != '-' {
			continue
		}
		if i > 0 {
			retVal = append(retVal, signedTerm{sign: sign, body: s[start:i]})
		}
		sign = 1
		if s[i] == '-' {
			sign = -1
		}
		start = i + 1
	}
	return append(retVal, signedTerm{sign: sign, body: s[start:]})
}

func parseTerm(n int, body string) ([]int, []int, *big.Rat, error) {
	var wedge []int
	exponents := make([]int, n)
	coeff := big.NewRat(1, 1)
	for _, factor := range strings.Split(body, "*") {
		switch {
		case factor == "":
			return nil, nil, nil, errEmptyFactor
		case strings.HasPrefix(factor, "dx_"):
			i, err := parseCoordinate(n, factor[len("dx_"):])
			if err != nil {
				return nil, nil, nil, err
			}
			wedge = append(wedge, i)
		case strings.HasPrefix(factor, "x_"):
			name, power, found := strings.Cut(factor[len("x_"):], "^")
			i, err := parseCoordinate(n, name)
			if err != nil {
				return nil, nil, nil, err
			}
			e := 1
			if found {
				e, err = strconv.Atoi(power)
				if err != nil || e < 0 || e > multiindex.MaxDegree {
					return nil, nil, nil, formerr.InvalidForm("cubical.parseTerm", "invalid exponent %q", power)
				}
			}
			exponents[i-1] += e
		default:
			c, err := rational.NewFromString(factor)
			if err != nil {
				return nil, nil, nil, err
			}
			coeff.Mul(coeff, c)
		}
	}
	return wedge, exponents, coeff, nil
}

var errEmptyFactor = formerr.InvalidForm("cubical.parseTerm", "empty factor")

func parseCoordinate(n int, s string) (int, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 || i > n {
		return 0, formerr.InvalidForm("cubical.parseCoordinate", "coordinate %q is not in {1,...,%d}", s, n)
	}
	return i, nil
}
