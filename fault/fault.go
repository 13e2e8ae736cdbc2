// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrConfigurationIsNotATable     = InvalidError("configuration did not return a table")
	ErrDataDirectoryIsNotADirectory = InvalidError("data directory is not a directory")
	ErrInvalidDataDirectory         = InvalidError("data directory is invalid")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrMissingFileName              = InvalidError("file name is missing")
	ErrNoDatasets                   = NotFoundError("no datasets to process")
	ErrNotPlainFileName             = InvalidError("file name must not contain a directory")
	ErrReportRenderFailed           = ProcessError("report render failed")
	ErrUnknownReportFormat          = InvalidError("unknown report format")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
