// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CheckBalance - true if every balance factor is in -1…+1
func (tree *Tree[T]) CheckBalance() bool {
	return tree.checkBalance(tree.root)
}

func (tree *Tree[T]) checkBalance(p int) bool {
	if none == p {
		return true
	}
	bf := tree.arena.balance(p)
	if bf < -1 || bf > 1 {
		return false
	}
	return tree.checkBalance(tree.arena.nodes[p].left) && tree.checkBalance(tree.arena.nodes[p].right)
}

// CheckHeights - true if every cached height matches the actual
// height of its sub-tree
func (tree *Tree[T]) CheckHeights() bool {
	_, ok := tree.checkHeights(tree.root)
	return ok
}

// internal: returns the actual height
func (tree *Tree[T]) checkHeights(p int) (int, bool) {
	if none == p {
		return 0, true
	}
	lh, ok := tree.checkHeights(tree.arena.nodes[p].left)
	if !ok {
		return 0, false
	}
	rh, ok := tree.checkHeights(tree.arena.nodes[p].right)
	if !ok {
		return 0, false
	}
	h := 1 + max(lh, rh)
	return h, h == tree.arena.nodes[p].height
}

// CheckOrder - true if for every node no value to its left is
// greater and no value to its right is less than the node's value
func (tree *Tree[T]) CheckOrder() bool {
	return tree.checkOrder(tree.root, none, none)
}

// internal: lower and upper are the indices of the nodes bounding
// this sub-tree (inclusive) or none when unbounded
func (tree *Tree[T]) checkOrder(p int, lower int, upper int) bool {
	if none == p {
		return true
	}
	nodes := tree.arena.nodes
	value := nodes[p].value
	if none != lower && tree.compare(nodes[lower].value, value) > 0 {
		return false
	}
	if none != upper && tree.compare(value, nodes[upper].value) > 0 {
		return false
	}
	return tree.checkOrder(nodes[p].left, lower, p) && tree.checkOrder(nodes[p].right, p, upper)
}
