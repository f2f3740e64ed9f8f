// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scoreboard

import (
	"io"
	"math"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/scoretree/avl"
	"github.com/bitmark-inc/scoretree/fault"
)

// Scoreboard - scored identifiers with ranking derivations
type Scoreboard struct {
	sync.RWMutex // to allow locking

	// logger
	log *logger.L

	// ordered index of composite keys
	tree *avl.Tree

	// identifier to current score for O(1) lookup
	entries map[string]float64
}

// New - create an empty scoreboard
//
// maxEntries limits the number of tracked identifiers, zero or
// negative for unlimited
func New(maxEntries int) *Scoreboard {
	return &Scoreboard{
		log:     logger.New("scoreboard"),
		tree:    avl.NewWithLimits(maxEntries, 0),
		entries: make(map[string]float64),
	}
}

// ensure the identifier and score are usable
func validateEntry(id string, score float64) error {
	if "" == id {
		return fault.RequiredIdentifier
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return fault.InvalidScoreValue
	}
	return nil
}

// Add - record or update the score for an identifier
//
// the index never updates a key in place, so a re-score deletes the
// old composite key before inserting the new one; returns true when
// the identifier was seen for the first time
func (board *Scoreboard) Add(id string, score float64) (bool, error) {
	if err := validateEntry(id, score); nil != err {
		return false, err
	}

	board.Lock()
	defer board.Unlock()

	old, exists := board.entries[id]
	if exists {
		if old == score {
			return false, nil
		}
		if _, err := board.tree.Delete(Key{Score: old, ID: id}); nil != err {
			return false, err
		}
	}

	if _, err := board.tree.Insert(Key{Score: score, ID: id}); nil != err {
		if exists {
			// put the previous score back so tree and map agree
			if _, e := board.tree.Insert(Key{Score: old, ID: id}); nil != e {
				// old key could not be restored either, drop
				// the map entry so tree and map still agree
				delete(board.entries, id)
				board.log.Errorf("rollback of: %s to: %g failed: %s", id, old, e)
			}
		}
		return false, err
	}
	board.entries[id] = score

	if exists {
		board.log.Debugf("re-scored: %s: %g -> %g", id, old, score)
	} else {
		board.log.Debugf("added: %s: %g", id, score)
	}
	return !exists, nil
}

// Remove - drop an identifier from the board
func (board *Scoreboard) Remove(id string) bool {
	board.Lock()
	defer board.Unlock()

	score, ok := board.entries[id]
	if !ok {
		return false
	}
	_, _ = board.tree.Delete(Key{Score: score, ID: id})
	delete(board.entries, id)

	board.log.Debugf("removed: %s", id)
	return true
}

// Score - current score of an identifier
func (board *Scoreboard) Score(id string) (float64, bool) {
	board.RLock()
	defer board.RUnlock()
	score, ok := board.entries[id]
	return score, ok
}

// Count - number of tracked identifiers
func (board *Scoreboard) Count() int {
	board.RLock()
	defer board.RUnlock()
	return board.tree.Count()
}

// Clear - drop everything, keeping the configured limit
func (board *Scoreboard) Clear() {
	board.Lock()
	defer board.Unlock()

	board.tree.Clear()
	board.entries = make(map[string]float64)
	board.log.Info("cleared")
}

// Check - run the index consistency scan and verify the entry map
// matches the stored keys; test and debug use
func (board *Scoreboard) Check() bool {
	board.RLock()
	defer board.RUnlock()

	if !board.tree.Check() {
		return false
	}
	keys := board.tree.InOrder()
	if len(keys) != len(board.entries) {
		return false
	}
	for _, item := range keys {
		k := item.(Key)
		score, ok := board.entries[k.ID]
		if !ok || score != k.Score {
			return false
		}
	}
	return true
}

// Print - ASCII dump of the underlying tree structure
func (board *Scoreboard) Print(w io.Writer, showHeight bool) int {
	board.RLock()
	defer board.RUnlock()
	return board.tree.Print(w, showHeight)
}

// ascending composite keys; assumes any required locking is done
func (board *Scoreboard) ascending() []Key {
	items := board.tree.InOrder()
	keys := make([]Key, len(items))
	for i, item := range items {
		keys[i] = item.(Key)
	}
	return keys
}
