// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// values at the root and its two children
func shape(tree *Tree[int]) (int, int, int) {
	n := tree.arena.nodes
	r := n[tree.root]
	return r.value, n[r.left].value, n[r.right].value
}

func TestRotationCases(t *testing.T) {
	cases := []struct {
		name  string
		order []int
	}{
		{"right-right", []int{1, 2, 3}},
		{"left-right", []int{3, 1, 2}},
		{"left-left", []int{3, 2, 1}},
		{"right-left", []int{1, 3, 2}},
	}

	for _, c := range cases {
		tree := New[int]()
		for _, v := range c.order {
			tree.Insert(v)
		}

		v, l, r := shape(tree)
		assert.Equal(t, 2, v, c.name+": root")
		assert.Equal(t, 1, l, c.name+": left")
		assert.Equal(t, 3, r, c.name+": right")
		assert.Equal(t, 2, tree.Height(), c.name+": height")

		n := tree.arena.nodes
		assert.Equal(t, 1, n[n[tree.root].left].height, c.name+": left height")
		assert.Equal(t, 1, n[n[tree.root].right].height, c.name+": right height")
	}
}

// before the third insert the tree leans, which is what selects the case
func TestImbalanceBeforeRotation(t *testing.T) {
	tree := New[int]()
	tree.Insert(3)
	tree.Insert(1)

	assert.Equal(t, 1, tree.arena.balance(tree.root), "root balance")
	assert.Equal(t, 0, tree.arena.balance(tree.arena.nodes[tree.root].left), "left balance")

	tree.Insert(2)
	assert.Equal(t, 0, tree.arena.balance(tree.root), "root balance after rotation")
}

func TestRotateLeft(t *testing.T) {
	a := arena[string]{}
	p := a.newNode("p")
	x := a.newNode("x")
	r := a.newNode("r")
	y := a.newNode("y")
	z := a.newNode("z")

	// p(x, r(y, z))
	a.nodes[p].left = x
	a.nodes[p].right = r
	a.nodes[r].left = y
	a.nodes[r].right = z
	a.update(r)
	a.update(p)
	assert.Equal(t, 3, a.nodes[p].height, "height before rotation")

	top := a.rotateLeft(p)

	// r(p(x, y), z)
	assert.Equal(t, r, top, "new root")
	assert.Equal(t, p, a.nodes[r].left, "old root is left child")
	assert.Equal(t, z, a.nodes[r].right, "right child kept")
	assert.Equal(t, x, a.nodes[p].left, "left child kept")
	assert.Equal(t, y, a.nodes[p].right, "inner sub-tree moved")
	assert.Equal(t, 2, a.nodes[p].height, "old root height")
	assert.Equal(t, 3, a.nodes[r].height, "new root height")
	assert.Equal(t, "p", a.nodes[p].value, "value untouched")
}

func TestRotateRight(t *testing.T) {
	a := arena[string]{}
	p := a.newNode("p")
	l := a.newNode("l")
	x := a.newNode("x")

	// p(l(x, -), -)
	a.nodes[p].left = l
	a.nodes[l].left = x
	a.update(l)
	a.update(p)
	assert.Equal(t, 2, a.balance(p), "balance before rotation")

	top := a.rotateRight(p)

	// l(x, p)
	assert.Equal(t, l, top, "new root")
	assert.Equal(t, x, a.nodes[l].left, "left child kept")
	assert.Equal(t, p, a.nodes[l].right, "old root is right child")
	assert.Equal(t, none, a.nodes[p].left, "inner sub-tree was empty")
	assert.Equal(t, 1, a.nodes[p].height, "old root height")
	assert.Equal(t, 2, a.nodes[l].height, "new root height")
	assert.Equal(t, 0, a.balance(l), "balance after rotation")
}

// equal values descend right so the first copy is the one found
func TestDuplicateRoutesRight(t *testing.T) {
	tree := New[int]()
	tree.Insert(5)
	tree.Insert(5)

	n := tree.arena.nodes
	assert.Equal(t, none, n[tree.root].left, "duplicate went left")
	assert.NotEqual(t, none, n[tree.root].right, "duplicate not on the right")
	assert.Equal(t, 0, tree.root, "first copy stays at the root")
}
