// Copyright (c) 2023 Colin McRae

// Package operad evaluates planar trees of operations. It enumerates the
// planar binary trees with their Koszul signs and evaluates trees of Dupont
// forms through a contraction onto Sullivan forms, which yields the
// transferred A-infinity products.
package operad

import (
	"fmt"
	"strings"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
)

// Tree is a planar rooted tree whose leaves carry values of type T. It is
// either a leaf or a node with at least two children; the shape is checked
// when a node is built.
type Tree[T any] struct {
	value    T
	children []*Tree[T]
	arity    int
}

// Leaf returns the tree with the single leaf value.
func Leaf[T any](value T) *Tree[T] {
	return &Tree[T]{value: value, arity: 1}
}

// Node returns the tree whose root has the given children, in order. An
// error is returned for fewer than two children.
func Node[T any](children ...*Tree[T]) (*Tree[T], error) {
	if len(children) < 2 {
		return nil, formerr.InvalidTree("operad.Node", "a node needs at least 2 children, got %d", len(children))
	}
	arity := 0
	for i, child := range children {
		if child == nil {
			return nil, formerr.InvalidTree("operad.Node", "child %d is nil", i)
		}
		arity += child.arity
	}
	return &Tree[T]{children: append([]*Tree[T]{}, children...), arity: arity}, nil
}

// MustNode is Node for shapes known to be valid. It panics otherwise.
func MustNode[T any](children ...*Tree[T]) *Tree[T] {
	node, err := Node(children...)
	if err != nil {
		panic(err.Error())
	}
	return node
}

// IsLeaf reports whether t is a single leaf.
func (t *Tree[T]) IsLeaf() bool {
	return len(t.children) == 0
}

// Value returns the value of a leaf, and the zero value of T for a node.
func (t *Tree[T]) Value() T {
	return t.value
}

// Children returns the subtrees of the root, in order.
func (t *Tree[T]) Children() []*Tree[T] {
	return t.children
}

// Arity returns the number of leaves.
func (t *Tree[T]) Arity() int {
	return t.arity
}

// Leaves returns the leaf values from left to right.
func (t *Tree[T]) Leaves() []T {
	if t.IsLeaf() {
		return []T{t.value}
	}
	var retVal []T
	for _, child := range t.children {
		retVal = append(retVal, child.Leaves()...)
	}
	return retVal
}

// String writes t as nested brackets, e.g. "[[0, 1], 2]".
func (t *Tree[T]) String() string {
	if t.IsLeaf() {
		return fmt.Sprint(t.value)
	}
	parts := make([]string, len(t.children))
	for i, child := range t.children {
		parts[i] = child.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// SignedTree is a planar binary tree with leaves 0, ..., arity-1 and its
// sign in the transferred structure.
type SignedTree struct {
	Sign int
	Tree *Tree[int]
}

// BinaryTrees returns every planar binary tree with arity leaves, numbered
// 0, ..., arity-1 from left to right. Arity 1 gives the leaf and arity 2 the
// single node, both with sign 1. Otherwise the root splits the leaves into
// n1 + n2 = arity and the tree with subtrees t1, t2 has sign
// -sign(t1) sign(t2) (-1)^n1. There are Catalan(arity-1) trees.
func BinaryTrees(arity int) ([]SignedTree, error) {
	if arity < 1 {
		return nil, formerr.InvalidArgumentType("operad.BinaryTrees", "arity %d < 1", arity)
	}
	return binaryTrees(arity, 0), nil
}

func binaryTrees(arity, shift int) []SignedTree {
	if arity == 1 {
		return []SignedTree{{Sign: 1, Tree: Leaf(shift)}}
	}
	if arity == 2 {
		return []SignedTree{{Sign: 1, Tree: MustNode(Leaf(shift), Leaf(shift+1))}}
	}
	var retVal []SignedTree
	for n1 := 1; n1 < arity; n1++ {
		n2 := arity - n1
		parity := 1
		if n1%2 == 1 {
			parity = -1
		}
		for _, left := range binaryTrees(n1, shift) {
			for _, right := range binaryTrees(n2, shift+n1) {
				retVal = append(retVal, SignedTree{
					Sign: -left.Sign * right.Sign * parity,
					Tree: MustNode(left.Tree, right.Tree),
				})
			}
		}
	}
	return retVal
}

// MapArgs returns the tree of shape shape whose leaves are args, consumed
// from left to right. The leaf labels of shape are ignored. An error is
// returned if len(args) differs from the arity of shape.
func MapArgs[S any, T any](shape *Tree[S], args []T) (*Tree[T], error) {
	if len(args) != shape.Arity() {
		return nil, formerr.InvalidArgumentType(
			"operad.MapArgs", "tree of arity %d cannot take %d arguments", shape.Arity(), len(args),
		)
	}
	return mapArgs(shape, args), nil
}

func mapArgs[S any, T any](shape *Tree[S], args []T) *Tree[T] {
	if shape.IsLeaf() {
		return Leaf(args[0])
	}
	children := make([]*Tree[T], len(shape.children))
	offset := 0
	for i, child := range shape.children {
		children[i] = mapArgs(child, args[offset:offset+child.arity])
		offset += child.arity
	}
	return &Tree[T]{children: children, arity: shape.arity}
}
