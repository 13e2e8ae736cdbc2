// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - true if some node holds a value equal to value
func (tree *Tree[T]) Find(value T) bool {
	nodes := tree.arena.nodes
	p := tree.root
	for none != p {
		c := tree.compare(nodes[p].value, value)
		if 0 == c {
			return true
		}
		if c > 0 { // p.value > value
			p = nodes[p].left
		} else {
			p = nodes[p].right
		}
	}
	return false
}
