// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbench/benchmark"
	"github.com/bitmark-inc/avlbench/report"
	"github.com/bitmark-inc/avlbench/wordlist"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "progress", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "report", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "found", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "not-found", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--progress] [--config-file=FILE] [--report=text|table|yaml|json] [--found=FILE] [--not-found=FILE] [dataset...]", program)
	}

	configurationFile := ""
	switch n := len(options["config-file"]); n {
	case 0:
	case 1:
		configurationFile = options["config-file"][0]
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, n)
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	err = applyOptions(masterConfiguration, options, arguments)
	if nil != err {
		exitwithstatus.Message("%s: invalid option: %s", program, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	var progress io.Writer
	if masterConfiguration.Progress {
		progress = os.Stderr
	}

	suite := benchmark.Suite{
		Log:      logger.New("benchmark"),
		Clock:    benchmark.SystemClock{},
		Load:     wordlist.Read,
		Progress: progress,
	}

	results, err := suite.Run(masterConfiguration.Datasets, masterConfiguration.Found, masterConfiguration.NotFound)
	if nil != err {
		log.Criticalf("benchmark error: %s", err)
		exitwithstatus.Message("%s: benchmark failed: %s", program, err)
	}

	err = report.Write(os.Stdout, masterConfiguration.Report, results)
	if nil != err {
		log.Criticalf("report error: %s", err)
		exitwithstatus.Message("%s: report failed: %s", program, err)
	}
}
