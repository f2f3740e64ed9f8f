// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scoreboard

import (
	"github.com/bitmark-inc/scoretree/avl"
	"github.com/bitmark-inc/scoretree/fault"
)

// Export - snapshot of all composite keys in ascending order
func (board *Scoreboard) Export() []Key {
	board.RLock()
	defer board.RUnlock()
	return board.ascending()
}

// Restore - replace the whole board from an exported key list
//
// equivalent to a clear followed by sequential inserts, so a
// duplicate composite key is dropped silently; a repeated identifier
// with different scores cannot be represented and is rejected before
// anything is discarded
func (board *Scoreboard) Restore(keys []Key) error {
	seen := make(map[string]float64, len(keys))
	for _, k := range keys {
		if err := validateEntry(k.ID, k.Score); nil != err {
			return err
		}
		if score, ok := seen[k.ID]; ok && score != k.Score {
			return fault.InvalidRestoreData
		}
		seen[k.ID] = k.Score
	}

	items := make([]avl.Item, len(keys))
	for i, k := range keys {
		items[i] = k
	}

	board.Lock()
	defer board.Unlock()

	if err := board.tree.FromList(items); nil != err {
		// the load may have stopped part way: rebuild the map so it
		// matches whatever the tree now holds
		board.entries = make(map[string]float64)
		for _, item := range board.tree.InOrder() {
			k := item.(Key)
			board.entries[k.ID] = k.Score
		}
		return err
	}
	board.entries = seen

	board.log.Infof("restored %d entries", len(seen))
	return nil
}
