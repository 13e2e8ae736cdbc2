// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// Print - display an ASCII graphic representation of the tree
// returns the maximum depth of the tree
func (tree *Tree[T]) Print(w io.Writer) int {
	return tree.printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[T]) printTree(w io.Writer, p int, prefix string, br branch) int {
	if none == p {
		return 0
	}
	n := &tree.arena.nodes[p]
	rd := 0
	ld := 0
	if none != n.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, n.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v %+2d/%d\n", n.value, tree.arena.balance(p), n.height)
	if none != n.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, n.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
