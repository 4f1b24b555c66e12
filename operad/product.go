// Copyright (c) 2023 Colin McRae

package operad

import (
	"math/big"

	"github.com/go-logr/logr"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
)

// Dupont is the small algebra of a contraction. D is the implementing type
// itself and S the Sullivan type it includes into.
type Dupont[D any, S any] interface {
	I() S
	Add(D) (D, error)
	Scale(*big.Rat) D
	Zero() D
	IsZero() bool
	Dim() int
	String() string
}

// Sullivan is the large algebra of a contraction, with its product, the
// projection P and the homotopy H.
type Sullivan[S any, D any] interface {
	Mul(S) (S, error)
	P() D
	H() (S, error)
	IsZero() bool
}

type options struct {
	logger logr.Logger
}

// Option configures TreeProduct and AInfinityProduct.
type Option func(*options)

// WithLogger traces the evaluated trees at verbosity 4.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: logr.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// TreeProduct evaluates tree bottom up: a leaf x becomes I(x), a node
// multiplies its children from left to right and applies H, except at the
// root where it applies P. A zero leaf or a zero intermediate result gives
// the zero form. All leaves must have the same dimension.
func TreeProduct[D Dupont[D, S], S Sullivan[S, D]](tree *Tree[D], opts ...Option) (D, error) {
	o := newOptions(opts)
	var zero D
	if tree == nil {
		return zero, formerr.InvalidTree("operad.TreeProduct", "nil tree")
	}
	leaves := tree.Leaves()
	for _, leaf := range leaves[1:] {
		if leaf.Dim() != leaves[0].Dim() {
			return zero, formerr.DimensionMismatch("operad.TreeProduct", leaves[0].Dim(), leaf.Dim())
		}
	}
	value, err := evaluate[D, S](tree, true)
	if err != nil {
		return zero, err
	}
	if value.isZero {
		o.logger.V(4).Info("tree product vanishes", "arity", tree.Arity())
		return leaves[0].Zero(), nil
	}
	retVal := value.form.P()
	o.logger.V(4).Info("tree product", "arity", tree.Arity(), "result", retVal.String())
	return retVal, nil
}

type evaluation[S any] struct {
	form   S
	isZero bool
}

func evaluate[D Dupont[D, S], S Sullivan[S, D]](tree *Tree[D], isRoot bool) (evaluation[S], error) {
	if tree.IsLeaf() {
		leaf := tree.Value()
		if leaf.IsZero() {
			return evaluation[S]{isZero: true}, nil
		}
		return evaluation[S]{form: leaf.I()}, nil
	}
	var product S
	for i, child := range tree.Children() {
		value, err := evaluate[D, S](child, false)
		if err != nil {
			return evaluation[S]{}, err
		}
		if value.isZero {
			return evaluation[S]{isZero: true}, nil
		}
		if i == 0 {
			product = value.form
			continue
		}
		product, err = product.Mul(value.form)
		if err != nil {
			return evaluation[S]{}, err
		}
		if product.IsZero() {
			return evaluation[S]{isZero: true}, nil
		}
	}
	if isRoot {
		return evaluation[S]{form: product}, nil
	}
	product, err := product.H()
	if err != nil {
		return evaluation[S]{}, err
	}
	return evaluation[S]{form: product, isZero: product.IsZero()}, nil
}

// AInfinityProduct returns the signed sum of TreeProduct over the planar
// binary trees of BinaryTrees(len(forms)), with forms at the leaves from left
// to right. All forms must have the same dimension.
func AInfinityProduct[D Dupont[D, S], S Sullivan[S, D]](forms []D, opts ...Option) (D, error) {
	o := newOptions(opts)
	var zero D
	if len(forms) == 0 {
		return zero, formerr.InvalidArgumentType("operad.AInfinityProduct", "no forms")
	}
	for _, form := range forms[1:] {
		if form.Dim() != forms[0].Dim() {
			return zero, formerr.DimensionMismatch("operad.AInfinityProduct", forms[0].Dim(), form.Dim())
		}
	}
	trees, err := BinaryTrees(len(forms))
	if err != nil {
		return zero, err
	}
	retVal := forms[0].Zero()
	for _, signed := range trees {
		tree, err := MapArgs(signed.Tree, forms)
		if err != nil {
			return zero, err
		}
		value, err := TreeProduct[D, S](tree, opts...)
		if err != nil {
			return zero, err
		}
		o.logger.V(4).Info("signed tree", "shape", signed.Tree.String(), "sign", signed.Sign)
		if value.IsZero() {
			continue
		}
		retVal, err = retVal.Add(value.Scale(big.NewRat(int64(signed.Sign), 1)))
		if err != nil {
			return zero, err
		}
	}
	return retVal, nil
}
