// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordlist_test

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbench/fault"
	"github.com/bitmark-inc/avlbench/wordlist"
)

func TestScan(t *testing.T) {
	words, err := wordlist.Scan(strings.NewReader("apple\nbanana\r\n\ncherry\napple"))
	assert.Nil(t, err, "scan error")
	assert.Equal(t, []string{"apple", "banana", "", "cherry", "apple"}, words, "wrong words")
}

func TestScanEmpty(t *testing.T) {
	words, err := wordlist.Scan(strings.NewReader(""))
	assert.Nil(t, err, "scan error")
	assert.Equal(t, 0, len(words), "words from empty input")
}

func TestScanTrailingNewline(t *testing.T) {
	words, err := wordlist.Scan(strings.NewReader("one\ntwo\n"))
	assert.Nil(t, err, "scan error")
	assert.Equal(t, []string{"one", "two"}, words, "final newline gave an extra value")
}

func TestScanLongLine(t *testing.T) {
	long := strings.Repeat("x", 2*1024*1024)
	_, err := wordlist.Scan(strings.NewReader(long))
	assert.Equal(t, bufio.ErrTooLong, err, "long line accepted")
}

func TestRead(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "set.txt")
	err := os.WriteFile(fileName, []byte("zebra\naardvark\n"), 0600)
	assert.Nil(t, err, "write file")

	words, err := wordlist.Read(fileName)
	assert.Nil(t, err, "read error")
	assert.Equal(t, []string{"zebra", "aardvark"}, words, "wrong words")
}

func TestReadMissing(t *testing.T) {
	_, err := wordlist.Read(filepath.Join(t.TempDir(), "absent.txt"))
	assert.True(t, os.IsNotExist(err), "expected not exist: %v", err)

	_, err = wordlist.Read("")
	assert.Equal(t, fault.ErrMissingFileName, err, "wrong error")
}
