// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// none - index of an absent child or of the root of an empty tree
const none = -1

// a node in the tree
type node[T any] struct {
	value  T   // never changed after allocation
	left   int // left sub-tree
	right  int // right sub-tree
	height int // height of sub-tree rooted here, a leaf is 1
}

// backing store for all nodes of a single tree
type arena[T any] struct {
	nodes      []node[T]
	totalNodes int // total nodes created
	freedNodes int // total nodes released
}

// allocate a new leaf node and return its index
func (a *arena[T]) newNode(value T) int {
	a.nodes = append(a.nodes, node[T]{
		value:  value,
		left:   none,
		right:  none,
		height: 1,
	})
	a.totalNodes += 1
	return len(a.nodes) - 1
}

// drop every node at once, returns the number released
func (a *arena[T]) release() int {
	n := len(a.nodes)
	a.nodes = nil
	a.freedNodes += n
	return n
}

// height of a sub-tree, an absent sub-tree is 0
func (a *arena[T]) height(i int) int {
	if none == i {
		return 0
	}
	return a.nodes[i].height
}

// recompute the cached height from the current children
func (a *arena[T]) update(i int) {
	p := &a.nodes[i]
	p.height = 1 + max(a.height(p.left), a.height(p.right))
}

// left height minus right height
func (a *arena[T]) balance(i int) int {
	p := &a.nodes[i]
	return a.height(p.left) - a.height(p.right)
}

// promote the right child, returns the new sub-tree root
func (a *arena[T]) rotateLeft(i int) int {
	r := a.nodes[i].right
	a.nodes[i].right = a.nodes[r].left
	a.nodes[r].left = i

	// old root is now the deeper node
	a.update(i)
	a.update(r)
	return r
}

// promote the left child, returns the new sub-tree root
func (a *arena[T]) rotateRight(i int) int {
	l := a.nodes[i].left
	a.nodes[i].left = a.nodes[l].right
	a.nodes[l].right = i

	a.update(i)
	a.update(l)
	return l
}
