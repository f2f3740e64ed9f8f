// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scoreboard - ranking layer on top of the ordered index
//
// Scores are stored in an avl tree under composite keys of
// (score, identifier), ordered by score first and identifier second,
// so equal scores stay distinguishable.  The tree never moves a key
// in place: re-scoring an identifier deletes the old composite key
// and inserts a new one.
//
// Every derivation - rank, percentile, top/bottom and threshold
// subsets - is computed from the ascending in-order export, never by
// walking the tree structure itself.
package scoreboard
