// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbench/configuration"
	"github.com/bitmark-inc/avlbench/fault"
	"github.com/bitmark-inc/avlbench/report"
	"github.com/bitmark-inc/avlbench/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultFoundFile    = "found.txt"
	defaultNotFoundFile = "notFound.txt"
	defaultReport       = report.Text

	defaultLogDirectory = "log"
	defaultLogFile      = "avlbench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultDatasets = []string{"setA.txt", "setB.txt", "setC.txt"}

	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"benchmark":       "warn",
		logger.DefaultTag: "critical",
	}
)

// Configuration - everything needed for a benchmark run
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Datasets      []string             `gluamapper:"datasets" json:"datasets"`
	Found         string               `gluamapper:"found" json:"found"`
	NotFound      string               `gluamapper:"not_found" json:"not_found"`
	Report        string               `gluamapper:"report" json:"report"`
	Progress      bool                 `gluamapper:"progress" json:"progress"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration(dataDirectory string) *Configuration {

	// the file may add to the levels, so never share the defaults
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	return &Configuration{
		DataDirectory: dataDirectory,
		Datasets:      nil, // defaultDatasets unless configured
		Found:         defaultFoundFile,
		NotFound:      defaultNotFoundFile,
		Report:        defaultReport,
		Progress:      false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
//
// with no configuration file all defaults apply and the data
// directory is the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	if "" == configurationFileName {
		dataDirectory, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		options := defaultConfiguration(dataDirectory)
		return options, finishConfiguration(options)
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration("")

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)

	return options, finishConfiguration(options)
}

// check values and expand all paths relative to the data directory
func finishConfiguration(options *Configuration) error {

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fault.ErrDataDirectoryIsNotADirectory
	}

	options.Report = strings.ToLower(options.Report)
	if !report.Valid(options.Report) {
		return fault.ErrUnknownReportFormat
	}

	if 0 == len(options.Datasets) {
		options.Datasets = append([]string{}, defaultDatasets...)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	util.EnsureAllAbsolute(options.DataDirectory, options.Datasets)
	mustBeAbsolute := []*string{
		&options.Found,
		&options.NotFound,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// log file must be a simple name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fault.ErrNotPlainFileName
	}

	// create log directory if it does not already exist
	return os.MkdirAll(options.Logging.Directory, 0700)
}

// command line values replace those from the configuration file;
// file arguments are relative to the current directory
func applyOptions(options *Configuration, flags map[string][]string, arguments []string) error {

	absolute := func(fileName string) (string, error) {
		return filepath.Abs(filepath.Clean(fileName))
	}

	if len(arguments) > 0 {
		datasets := make([]string, len(arguments))
		for i, a := range arguments {
			f, err := absolute(a)
			if nil != err {
				return err
			}
			datasets[i] = f
		}
		options.Datasets = datasets
	}

	if n := len(flags["found"]); n > 0 {
		f, err := absolute(flags["found"][n-1])
		if nil != err {
			return err
		}
		options.Found = f
	}
	if n := len(flags["not-found"]); n > 0 {
		f, err := absolute(flags["not-found"][n-1])
		if nil != err {
			return err
		}
		options.NotFound = f
	}

	if n := len(flags["report"]); n > 0 {
		r := strings.ToLower(flags["report"][n-1])
		if !report.Valid(r) {
			return fault.ErrUnknownReportFormat
		}
		options.Report = r
	}

	if len(flags["progress"]) > 0 {
		options.Progress = true
	}

	// verbose copies the log to the console and lowers the
	// threshold for this program's own channels
	if len(flags["verbose"]) > 0 {
		levels := make(map[string]string, len(options.Logging.Levels)+2)
		for k, v := range options.Logging.Levels {
			levels[k] = v
		}
		levels["main"] = "debug"
		levels["benchmark"] = "info"
		options.Logging.Levels = levels
		options.Logging.Console = true
	}

	return nil
}
