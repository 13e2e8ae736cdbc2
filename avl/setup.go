// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	arena   arena[T]
	root    int
	count   int
	compare func(a, b T) int
	path    []slot // reused by insert
}

// New - create an initially empty tree of naturally ordered values
func New[T cmp.Ordered]() *Tree[T] {
	return NewWithCompare[T](cmp.Compare[T])
}

// NewWithCompare - create an initially empty tree ordered by compare
//
// compare must return a negative number when a < b, zero when a == b
// and a positive number when a > b
func NewWithCompare[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{
		root:    none,
		count:   0,
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return none == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[T]) Height() int {
	return tree.arena.height(tree.root)
}

// Root - the value held at the root node
func (tree *Tree[T]) Root() (T, bool) {
	if none == tree.root {
		var zero T
		return zero, false
	}
	return tree.arena.nodes[tree.root].value, true
}

// Allocated - total nodes ever created by this tree
func (tree *Tree[T]) Allocated() int {
	return tree.arena.totalNodes
}

// Freed - total nodes ever released by this tree
func (tree *Tree[T]) Freed() int {
	return tree.arena.freedNodes
}

// Release - destroy all nodes, returns the number of nodes freed
//
// the tree is empty afterwards and may be reused
func (tree *Tree[T]) Release() int {
	n := tree.arena.release()
	tree.root = none
	tree.count = 0
	tree.path = nil
	return n
}
