// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package report - render benchmark results
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/avlbench/benchmark"
	"github.com/bitmark-inc/avlbench/fault"
)

// the available formats
const (
	Text  = "text"
	Table = "table"
	YAML  = "yaml"
	JSON  = "json"
)

// one dataset, durations converted to seconds
type record struct {
	Dataset         string   `json:"dataset" yaml:"dataset"`
	Values          int      `json:"values" yaml:"values"`
	Nodes           int      `json:"nodes" yaml:"nodes"`
	Height          int      `json:"height" yaml:"height"`
	Freed           int      `json:"freed" yaml:"freed"`
	InsertSeconds   float64  `json:"insert_seconds" yaml:"insert_seconds"`
	FoundQueries    int      `json:"found_queries" yaml:"found_queries"`
	FoundSeconds    float64  `json:"found_seconds" yaml:"found_seconds"`
	Missing         []string `json:"missing" yaml:"missing"`
	NotFoundQueries int      `json:"not_found_queries" yaml:"not_found_queries"`
	NotFoundSeconds float64  `json:"not_found_seconds" yaml:"not_found_seconds"`
	Unexpected      []string `json:"unexpected" yaml:"unexpected"`
}

type document struct {
	Results []record `json:"results" yaml:"results"`
}

// Valid - true if format is one that Write accepts
func Valid(format string) bool {
	switch strings.ToLower(format) {
	case Text, Table, YAML, JSON:
		return true
	default:
		return false
	}
}

// Write - render results to w in the given format
func Write(w io.Writer, format string, results []benchmark.Result) error {
	switch strings.ToLower(format) {
	case Text:
		return writeText(w, results)
	case Table:
		return writeTable(w, results)
	case YAML:
		return writeYAML(w, results)
	case JSON:
		return writeJSON(w, results)
	default:
		return fault.ErrUnknownReportFormat
	}
}

func makeDocument(results []benchmark.Result) document {
	d := document{
		Results: make([]record, 0, len(results)),
	}
	for _, r := range results {
		d.Results = append(d.Results, record{
			Dataset:         r.Dataset,
			Values:          r.Inserted,
			Nodes:           r.Nodes,
			Height:          r.Height,
			Freed:           r.Freed,
			InsertSeconds:   r.InsertDuration.Seconds(),
			FoundQueries:    r.FoundQueries,
			FoundSeconds:    r.FoundDuration.Seconds(),
			Missing:         r.Missing,
			NotFoundQueries: r.NotFoundQueries,
			NotFoundSeconds: r.NotFoundDuration.Seconds(),
			Unexpected:      r.Unexpected,
		})
	}
	return d
}

// the classic line by line output
func writeText(w io.Writer, results []benchmark.Result) error {
	for _, r := range results {
		lines := make([]string, 0, 6+len(r.Missing)+len(r.Unexpected))
		lines = append(lines,
			fmt.Sprintf("Processing %s", r.Dataset),
			fmt.Sprintf("Duration to insert into AVL Tree: %fs", r.InsertDuration.Seconds()),
		)
		for _, value := range r.Missing {
			lines = append(lines, fmt.Sprintf("Couldn't find: %s", value))
		}
		lines = append(lines, fmt.Sprintf("Total duration to search from AVL Tree in found.txt: %fs", r.FoundDuration.Seconds()))
		for _, value := range r.Unexpected {
			lines = append(lines, fmt.Sprintf("Could find: %s", value))
		}
		lines = append(lines,
			fmt.Sprintf("Total duration to search from AVL Tree in notfound.txt: %fs", r.NotFoundDuration.Seconds()),
			"",
		)
		if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); nil != err {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, results []benchmark.Result) error {
	data := pterm.TableData{
		{"Dataset", "Values", "Height", "Insert (s)", "Found (s)", "Not found (s)", "Missing", "Unexpected"},
	}
	for _, r := range results {
		data = append(data, []string{
			r.Dataset,
			strconv.Itoa(r.Inserted),
			strconv.Itoa(r.Height),
			strconv.FormatFloat(r.InsertDuration.Seconds(), 'f', 6, 64),
			strconv.FormatFloat(r.FoundDuration.Seconds(), 'f', 6, 64),
			strconv.FormatFloat(r.NotFoundDuration.Seconds(), 'f', 6, 64),
			strconv.Itoa(len(r.Missing)),
			strconv.Itoa(len(r.Unexpected)),
		})
	}

	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if nil != err {
		return fault.ErrReportRenderFailed
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func writeYAML(w io.Writer, results []benchmark.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(makeDocument(results)); nil != err {
		return err
	}
	return enc.Close()
}

func writeJSON(w io.Writer, results []benchmark.Result) error {
	b, err := json.MarshalIndent(makeDocument(results), "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
