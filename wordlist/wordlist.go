// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wordlist - read line oriented text files of values
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/avlbench/fault"
)

// lines longer than this are an error
const maximumLineLength = 1024 * 1024

// Read - return every line of a file in order
func Read(fileName string) ([]string, error) {
	if "" == fileName {
		return nil, fault.ErrMissingFileName
	}

	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	return Scan(f)
}

// Scan - return every line from a reader in order
//
// a trailing carriage return is removed so CRLF files give the same
// values; blank lines are kept as empty strings
func Scan(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maximumLineLength)

	words := make([]string, 0, 1024)
	for scanner.Scan() {
		words = append(words, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return words, nil
}
