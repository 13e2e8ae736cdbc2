// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding ordered values for
// membership lookup
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes live in an arena owned by the tree and refer to their
// children by index.  Insertion records the path of slots visited on
// the way down and then walks it back up recomputing cached heights
// and rotating any node whose balance factor leaves the range -1…+1.
//
// Equal values are not merged: a value equal to a node's value
// routes to the right, both on insert and on find, so duplicates are
// retained as separate nodes.  There is no delete and no iteration.
package avl
