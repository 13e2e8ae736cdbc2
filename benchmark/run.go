// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbench/avl"
)

// Dataset - named list of values to insert
type Dataset struct {
	Name   string
	Values []string
}

// Queries - values to look up after all inserts
type Queries struct {
	Found    []string // expected to be present
	NotFound []string // expected to be absent
}

// Result - timings and outcome for one dataset
type Result struct {
	Dataset string

	Inserted       int
	InsertDuration time.Duration
	Nodes          int
	Height         int
	Freed          int

	FoundQueries  int
	FoundDuration time.Duration
	Missing       []string // expected, but not found

	NotFoundQueries  int
	NotFoundDuration time.Duration
	Unexpected       []string // not expected, but found
}

// Run - fill a new tree from a dataset and time lookups against it
func Run(log *logger.L, clock Clock, dataset Dataset, queries Queries) Result {

	result := Result{
		Dataset:         dataset.Name,
		Inserted:        len(dataset.Values),
		FoundQueries:    len(queries.Found),
		NotFoundQueries: len(queries.NotFound),
		Missing:         []string{},
		Unexpected:      []string{},
	}

	log.Infof("processing: %s  values: %d", dataset.Name, len(dataset.Values))

	tree := avl.New[string]()

	start := clock.Now()
	for _, value := range dataset.Values {
		tree.Insert(value)
	}
	result.InsertDuration = clock.Now().Sub(start)

	result.Nodes = tree.Count()
	result.Height = tree.Height()
	log.Debugf("%s: nodes: %d  height: %d", dataset.Name, result.Nodes, result.Height)

	start = clock.Now()
	for _, value := range queries.Found {
		if !tree.Find(value) {
			result.Missing = append(result.Missing, value)
		}
	}
	result.FoundDuration = clock.Now().Sub(start)

	start = clock.Now()
	for _, value := range queries.NotFound {
		if tree.Find(value) {
			result.Unexpected = append(result.Unexpected, value)
		}
	}
	result.NotFoundDuration = clock.Now().Sub(start)

	// report outside of the timed loops
	for _, value := range result.Missing {
		log.Warnf("%s: could not find: %q", dataset.Name, value)
	}
	for _, value := range result.Unexpected {
		log.Warnf("%s: could find: %q", dataset.Name, value)
	}

	result.Freed = tree.Release()
	log.Debugf("%s: released: %d nodes", dataset.Name, result.Freed)

	log.Infof("%s: insert: %s  found: %s  not found: %s",
		dataset.Name, result.InsertDuration, result.FoundDuration, result.NotFoundDuration)

	return result
}
