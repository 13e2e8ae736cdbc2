// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// which link of a parent holds a sub-tree
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// a link to a sub-tree: the tree root or one side of a parent node
type slot struct {
	parent int
	side   branch
}

// the node index held by a slot
func (tree *Tree[T]) get(s slot) int {
	switch s.side {
	case left:
		return tree.arena.nodes[s.parent].left
	case right:
		return tree.arena.nodes[s.parent].right
	default:
		return tree.root
	}
}

// store a node index into a slot
func (tree *Tree[T]) set(s slot, i int) {
	switch s.side {
	case left:
		tree.arena.nodes[s.parent].left = i
	case right:
		tree.arena.nodes[s.parent].right = i
	default:
		tree.root = i
	}
}

// Insert - add a new node to the tree
//
// a value equal to an existing one is added again, to the right
func (tree *Tree[T]) Insert(value T) {

	path := tree.path[:0]
	s := slot{parent: none, side: root}

	// locate the empty slot, recording each slot passed through
	for {
		p := tree.get(s)
		if none == p {
			break
		}
		path = append(path, s)
		if tree.compare(tree.arena.nodes[p].value, value) > 0 { // p.value > value
			s = slot{parent: p, side: left}
		} else {
			s = slot{parent: p, side: right}
		}
	}

	tree.set(s, tree.arena.newNode(value))
	tree.count += 1
	path = append(path, s)

	// new leaf upwards to the root
	for i := len(path) - 1; i >= 0; i -= 1 {
		tree.rebalance(path[i])
	}
	tree.path = path
}

// refresh height of the node in a slot and rotate it if it has
// become unbalanced; the resulting sub-tree root is written back
func (tree *Tree[T]) rebalance(s slot) {
	a := &tree.arena
	p := tree.get(s)

	a.update(p)
	bf := a.balance(p)

	switch {
	case bf >= 2 && a.balance(a.nodes[p].left) >= 1:
		// single LL rotation
		p = a.rotateRight(p)

	case bf >= 2:
		// double LR rotation
		a.nodes[p].left = a.rotateLeft(a.nodes[p].left)
		p = a.rotateRight(p)

	case bf <= -2 && a.balance(a.nodes[p].right) <= -1:
		// single RR rotation
		p = a.rotateLeft(p)

	case bf <= -2:
		// double RL rotation
		a.nodes[p].right = a.rotateRight(a.nodes[p].right)
		p = a.rotateLeft(p)

	default:
		return
	}
	tree.set(s, p)
}
