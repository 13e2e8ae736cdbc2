// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package benchmark - time insertion and lookup of word lists in an
// AVL tree
//
// For every dataset a fresh tree is filled with the dataset values,
// then searched for a list of values expected to be present and a
// list expected to be absent.  Each of the three phases is timed on
// its own and the tree is released afterwards.
package benchmark
