// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scoreboard

import (
	"math"
)

// Rank - position of an identifier, 1 = highest score
//
// derived from the reversed ascending export; false when the
// identifier is not tracked
func (board *Scoreboard) Rank(id string) (int, bool) {
	board.RLock()
	defer board.RUnlock()

	score, ok := board.entries[id]
	if !ok {
		return 0, false
	}

	target := Key{Score: score, ID: id}
	keys := board.ascending()
	for i := len(keys) - 1; i >= 0; i -= 1 {
		if 0 == keys[i].Compare(target) {
			return len(keys) - i, true
		}
	}
	return 0, false
}

// Percentile - fraction of entries scoring strictly below, as 0..100
//
// an empty board yields 0; the result is rounded to one decimal
func (board *Scoreboard) Percentile(score float64) float64 {
	board.RLock()
	defer board.RUnlock()

	keys := board.ascending()
	if 0 == len(keys) {
		return 0.0
	}

	below := 0
	for _, k := range keys {
		if k.Score < score {
			below += 1
		}
	}
	return math.Round(float64(below)/float64(len(keys))*1000) / 10
}

// Top - the n highest composite keys, highest first
//
// n is clamped to the board size; zero or negative yields an empty
// slice
func (board *Scoreboard) Top(n int) []Key {
	board.RLock()
	defer board.RUnlock()

	keys := board.ascending()
	if n < 0 {
		n = 0
	}
	if n > len(keys) {
		n = len(keys)
	}
	top := make([]Key, 0, n)
	for i := len(keys) - 1; i >= len(keys)-n; i -= 1 {
		top = append(top, keys[i])
	}
	return top
}

// Bottom - the n lowest composite keys, lowest first
//
// n is clamped to the board size; zero or negative yields an empty
// slice
func (board *Scoreboard) Bottom(n int) []Key {
	board.RLock()
	defer board.RUnlock()

	keys := board.ascending()
	if n < 0 {
		n = 0
	}
	if n > len(keys) {
		n = len(keys)
	}
	return keys[:n]
}
