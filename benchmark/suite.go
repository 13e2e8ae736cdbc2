// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"io"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/schollz/progressbar/v3"

	"github.com/bitmark-inc/avlbench/fault"
)

// Loader - fetch the values held in a named list
type Loader func(fileName string) ([]string, error)

// Suite - runs a series of datasets against the same queries
type Suite struct {
	Log      *logger.L
	Clock    Clock
	Load     Loader
	Progress io.Writer // optional, show a progress bar here
}

// Run - load the query lists once and then process each dataset in
// turn, stopping at the first file that cannot be loaded
func (s *Suite) Run(datasets []string, found string, notFound string) ([]Result, error) {
	if 0 == len(datasets) {
		return nil, fault.ErrNoDatasets
	}

	clock := s.Clock
	if nil == clock {
		clock = SystemClock{}
	}

	queries := Queries{}
	var err error

	queries.Found, err = s.Load(found)
	if nil != err {
		s.Log.Errorf("load: %q  error: %s", found, err)
		return nil, err
	}
	queries.NotFound, err = s.Load(notFound)
	if nil != err {
		s.Log.Errorf("load: %q  error: %s", notFound, err)
		return nil, err
	}
	s.Log.Infof("queries: found: %d  not found: %d", len(queries.Found), len(queries.NotFound))

	var bar *progressbar.ProgressBar
	if nil != s.Progress {
		bar = progressbar.NewOptions(len(datasets),
			progressbar.OptionSetWriter(s.Progress),
			progressbar.OptionSetDescription("datasets"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
		)
	}

	results := make([]Result, 0, len(datasets))
	for _, fileName := range datasets {
		values, err := s.Load(fileName)
		if nil != err {
			s.Log.Errorf("load: %q  error: %s", fileName, err)
			return results, err
		}

		dataset := Dataset{
			Name:   filepath.Base(fileName),
			Values: values,
		}
		results = append(results, Run(s.Log, clock, dataset, queries))

		if nil != bar {
			_ = bar.Add(1)
		}
	}
	if nil != bar {
		_ = bar.Finish()
	}

	return results, nil
}
