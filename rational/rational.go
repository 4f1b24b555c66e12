// Copyright (c) 2023 Colin McRae

// Package rational converts boundary values (integers, decimal and fraction
// strings) into the exact *big.Rat coefficients used by every form, and
// renders coefficients for display. All arithmetic is done with math/big.
package rational

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
)

// NewFromInt64 returns input as a rational number with denominator 1
func NewFromInt64(input int64) *big.Rat {
	return new(big.Rat).SetInt64(input)
}

// NewFromFraction returns numerator / denominator in lowest terms. An error
// is returned if denominator is 0.
func NewFromFraction(numerator, denominator int64) (*big.Rat, error) {
	if denominator == 0 {
		return nil, formerr.InvalidArgumentType("rational.NewFromFraction", "denominator is 0")
	}
	return big.NewRat(numerator, denominator), nil
}

// NewFromString parses input, which is an optionally signed integer
// ("-14"), fraction ("3/7", "-3/7") or decimal number ("0.25"). Surrounding
// white space is ignored.
func NewFromString(input string) (*big.Rat, error) {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return nil, formerr.InvalidArgumentType("rational.NewFromString", "input must have length > 0")
	}
	body := strings.TrimPrefix(strings.TrimPrefix(input, "-"), "+")
	if strings.ContainsAny(body, "+-") {
		return nil, formerr.InvalidArgumentType(
			"rational.NewFromString", "input %q has extraneous signs", input,
		)
	}
	if strings.ContainsAny(body, "eE") {
		return nil, formerr.InvalidArgumentType(
			"rational.NewFromString", "input %q uses exponent notation", input,
		)
	}
	retVal, ok := new(big.Rat).SetString(input)
	if !ok {
		return nil, formerr.InvalidArgumentType(
			"rational.NewFromString", "could not parse %q as a rational number", input,
		)
	}
	return retVal, nil
}

// NewFromValue converts the kinds of values a caller may supply at the
// boundary of the library: Go integers, strings accepted by NewFromString,
// *big.Rat and *big.Int. The result never aliases input.
func NewFromValue(input any) (*big.Rat, error) {
	switch v := input.(type) {
	case int:
		return NewFromInt64(int64(v)), nil
	case int64:
		return NewFromInt64(v), nil
	case int32:
		return NewFromInt64(int64(v)), nil
	case string:
		return NewFromString(v)
	case *big.Rat:
		if v == nil {
			break
		}
		return new(big.Rat).Set(v), nil
	case *big.Int:
		if v == nil {
			break
		}
		return new(big.Rat).SetInt(v), nil
	}
	return nil, formerr.InvalidArgumentType(
		"rational.NewFromValue", "%v of type %T is not a rational number", input, input,
	)
}

// IsOne reports whether r == 1
func IsOne(r *big.Rat) bool {
	return r.IsInt() && r.Num().IsInt64() && r.Num().Int64() == 1
}

// Signed returns sign * r as a fresh value, for sign in {-1, 0, 1}
func Signed(sign int, r *big.Rat) *big.Rat {
	retVal := new(big.Rat).Set(r)
	switch {
	case sign < 0:
		retVal.Neg(retVal)
	case sign == 0:
		retVal.SetInt64(0)
	}
	return retVal
}

// LaTeX writes the absolute value of r as "a" or "\frac{a}{b}". The sign
// is left to the caller, which places it between terms.
func LaTeX(r *big.Rat) string {
	abs := new(big.Rat).Abs(r)
	if abs.IsInt() {
		return abs.Num().String()
	}
	return fmt.Sprintf("\\frac{%s}{%s}", abs.Num().String(), abs.Denom().String())
}
