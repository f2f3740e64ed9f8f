// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scoreboard

import (
	"fmt"
)

// Key - composite ordering key for one scored identifier
//
// ordered by score, then by identifier, so two entries only compare
// equal when both parts match
type Key struct {
	Score float64
	ID    string
}

// Compare - composite comparison for the avl Item interface
func (k Key) Compare(x interface{}) int {
	q := x.(Key)
	switch {
	case k.Score < q.Score:
		return -1
	case k.Score > q.Score:
		return +1
	case k.ID < q.ID:
		return -1
	case k.ID > q.ID:
		return +1
	default:
		return 0
	}
}

// String - conversion for diagnostic output
func (k Key) String() string {
	return fmt.Sprintf("%g/%s", k.Score, k.ID)
}
