// Copyright (c) 2023 Colin McRae

// Package formerr holds the error values shared by the form packages.
// Every error returned by this module wraps exactly one of the sentinels
// below, so callers can classify failures with errors.Is.
package formerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgumentType reports a parameter of the wrong kind, e.g. a
	// negative dimension or a coefficient that is not a rational number.
	ErrInvalidArgumentType = errors.New("invalid argument type")

	// ErrInvalidForm reports a malformed basis key, an out-of-range index or
	// a monomial with the wrong number of exponents.
	ErrInvalidForm = errors.New("invalid form")

	// ErrInvalidMap reports a face map or permutation that is not valid for
	// the dimension of the form it is applied to.
	ErrInvalidMap = fmt.Errorf("%w: invalid map", ErrInvalidForm)

	// ErrDimensionMismatch reports a binary operation between forms of
	// different dimensions.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrTypeMismatch reports operands of different kinds.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidTree reports a tree node with fewer than two children.
	ErrInvalidTree = errors.New("invalid tree")

	// ErrUnsupportedOperation reports an input variant that is not implemented.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

func wrap(sentinel error, caller string, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", caller, fmt.Sprintf(format, args...), sentinel)
}

func InvalidArgumentType(caller string, format string, args ...any) error {
	return wrap(ErrInvalidArgumentType, caller, format, args...)
}

func InvalidForm(caller string, format string, args ...any) error {
	return wrap(ErrInvalidForm, caller, format, args...)
}

func InvalidMap(caller string, format string, args ...any) error {
	return wrap(ErrInvalidMap, caller, format, args...)
}

// DimensionMismatch formats the standard message for operands of dimension
// n1 and n2.
func DimensionMismatch(caller string, n1, n2 int) error {
	return wrap(
		ErrDimensionMismatch, caller,
		"forms need to have the same dimension, got %d and %d", n1, n2,
	)
}

func TypeMismatch(caller string, format string, args ...any) error {
	return wrap(ErrTypeMismatch, caller, format, args...)
}

func InvalidTree(caller string, format string, args ...any) error {
	return wrap(ErrInvalidTree, caller, format, args...)
}

func UnsupportedOperation(caller string, format string, args ...any) error {
	return wrap(ErrUnsupportedOperation, caller, format, args...)
}
