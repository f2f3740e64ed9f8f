// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scoreboard

// Above - entries scoring at or above min, highest first
func (board *Scoreboard) Above(min float64) []Key {
	board.RLock()
	defer board.RUnlock()

	keys := board.ascending()
	selected := make([]Key, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i -= 1 {
		if keys[i].Score < min {
			break // ascending input: nothing further qualifies
		}
		selected = append(selected, keys[i])
	}
	return selected
}

// Below - entries scoring strictly below max, lowest first
func (board *Scoreboard) Below(max float64) []Key {
	board.RLock()
	defer board.RUnlock()

	keys := board.ascending()
	selected := make([]Key, 0, len(keys))
	for _, k := range keys {
		if k.Score >= max {
			break
		}
		selected = append(selected, k)
	}
	return selected
}

// Between - entries with min <= score <= max, lowest first
func (board *Scoreboard) Between(min float64, max float64) []Key {
	board.RLock()
	defer board.RUnlock()

	keys := board.ascending()
	selected := make([]Key, 0, len(keys))
	for _, k := range keys {
		if k.Score > max {
			break
		}
		if k.Score >= min {
			selected = append(selected, k)
		}
	}
	return selected
}
