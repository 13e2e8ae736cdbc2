// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"time"
)

//go:generate mockgen -source=clock.go -destination=mocks/clock.go -package=mocks

// Clock - source of wall clock time for timing a phase
type Clock interface {
	Now() time.Time
}

// SystemClock - the real time of day
type SystemClock struct{}

// Now - current time
func (SystemClock) Now() time.Time {
	return time.Now()
}
